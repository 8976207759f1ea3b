package pretty

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// BoxStyle holds the characters used for drawing framed blocks.
type BoxStyle struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var (
	BoxRounded = BoxStyle{
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
		Horizontal:  "─",
		Vertical:    "│",
	}

	BoxASCII = BoxStyle{
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
		Horizontal:  "-",
		Vertical:    "|",
	}
)

// ActiveBoxStyle picks rounded corners on capable terminals and plain
// ASCII on dumb ones.
func ActiveBoxStyle() BoxStyle {
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return BoxASCII
	}
	if Iconic {
		return BoxRounded
	}
	return BoxASCII
}

// Frame renders a titled, framed block of lines as one string. The
// frame grows to the widest line but never past the terminal; lines
// that would not fit are clipped. The title is embedded into the top
// border.
func Frame(title string, lines []string) string {
	style := ActiveBoxStyle()
	limit := TerminalWidth() - 4
	if limit < 20 {
		limit = 20
	}
	width := utf8.RuneCountInString(title) + 2
	for _, line := range lines {
		if size := utf8.RuneCountInString(line); size > width {
			width = size
		}
	}
	if width > limit {
		width = limit
	}

	result := strings.Builder{}
	heading := ""
	if len(title) > 0 {
		heading = fmt.Sprintf(" %s ", clip(title, width))
	}
	result.WriteString(style.TopLeft)
	result.WriteString(heading)
	result.WriteString(strings.Repeat(style.Horizontal, width+2-utf8.RuneCountInString(heading)))
	result.WriteString(style.TopRight)
	result.WriteString("\n")
	for _, line := range lines {
		line = clip(line, width)
		padding := width - utf8.RuneCountInString(line)
		result.WriteString(fmt.Sprintf("%s %s%s %s\n", style.Vertical, line, strings.Repeat(" ", padding), style.Vertical))
	}
	result.WriteString(style.BottomLeft)
	result.WriteString(strings.Repeat(style.Horizontal, width+2))
	result.WriteString(style.BottomRight)
	result.WriteString("\n")
	return result.String()
}

func clip(text string, width int) string {
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	runes := []rune(text)
	return string(runes[:width-3]) + "..."
}
