package discovery

import "strings"

const fallbackDescription = "Python application"

const tripleQuote = `"""`

// Describe pulls a one-line description out of entry-file text: the
// module docstring collapsed to a single line, else the first comment
// line, else a fixed fallback.
//
// The docstring walk intentionally keeps the original tool's shape:
// text sharing a line with the opening or closing quotes is dropped,
// only whole lines between them are collected.
func Describe(text string) string {
	lines := strings.Split(text, "\n")

	inDocstring := false
	collected := []string{}
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if !inDocstring && strings.HasPrefix(stripped, tripleQuote) {
			inDocstring = true
			if strings.HasSuffix(stripped, tripleQuote) && len(stripped) > 6 {
				return strings.TrimSpace(stripped[3 : len(stripped)-3])
			}
			continue
		}
		if inDocstring {
			if strings.HasSuffix(stripped, tripleQuote) {
				break
			}
			collected = append(collected, stripped)
		}
	}
	if len(collected) > 0 {
		return strings.TrimSpace(strings.Join(collected, " "))
	}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "#") && len(stripped) > 2 {
			return strings.TrimSpace(stripped[1:])
		}
	}

	return fallbackDescription
}
