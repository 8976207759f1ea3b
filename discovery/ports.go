package discovery

import (
	"regexp"
	"strconv"
)

// Port patterns are tried in order; the first pattern that matches
// anywhere in the text decides, using its first capture group. The
// heuristic can latch onto unrelated numbers (any "port=" substring
// qualifies) and that looseness is part of the contract.
var portPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)port[=\s]*(\d+)`),
	regexp.MustCompile(`(?i)\.run\([^)]*port[=\s]*(\d+)`),
	regexp.MustCompile(`(?i)--port[=\s]*(\d+)`),
	regexp.MustCompile(`(?i)uvicorn.*:(\d+)`),
}

// ExtractPort returns the advertised network port, or zero when no
// pattern yields a usable positive number.
func ExtractPort(text string) int {
	for _, pattern := range portPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		port, err := strconv.Atoi(match[1])
		if err != nil || port <= 0 {
			continue
		}
		return port
	}
	return 0
}
