package pretty

import (
	"os"
	"strings"
)

// ColorMode is the level of color support detected on the terminal.
type ColorMode int

const (
	ColorModeNone ColorMode = iota
	ColorModeBasic
	ColorMode256
	ColorModeTrueColor
)

var (
	detectedColorMode ColorMode
	colorModeDetected bool
)

// DetectColorMode inspects NO_COLOR, COLORTERM and TERM, in that
// order, and caches the verdict for the rest of the run.
func DetectColorMode() ColorMode {
	if colorModeDetected {
		return detectedColorMode
	}
	colorModeDetected = true

	if os.Getenv("NO_COLOR") != "" {
		detectedColorMode = ColorModeNone
		return detectedColorMode
	}
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		detectedColorMode = ColorModeTrueColor
		return detectedColorMode
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		detectedColorMode = ColorModeNone
		return detectedColorMode
	}
	if strings.Contains(term, "256color") {
		detectedColorMode = ColorMode256
		return detectedColorMode
	}
	detectedColorMode = ColorModeBasic
	return detectedColorMode
}

// StatusColor maps a process/run status word to an ANSI color.
func StatusColor(status string) string {
	if Colorless || Disabled {
		return ""
	}
	switch strings.ToLower(status) {
	case "pending":
		return Grey
	case "running":
		return Cyan
	case "completed", "done", "ok":
		return Green
	case "failed", "error", "crashed":
		return Red
	case "stopped", "skipped":
		return Faint
	default:
		return ""
	}
}
