package pretty

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/logbuf"
)

var (
	Colorless   bool
	Iconic      bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Black       string
	Red         string
	Green       string
	Blue        string
	Yellow      string
	Magenta     string
	Cyan        string
	Reset       string
	Bold        string
	Faint       string
	Italic      string
	Underline   string
	Rocket      string
	Gear        string
)

func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	if DetectColorMode() == ColorModeNone {
		Colorless = true
	}

	// Prompting needs all three streams on a terminal; colors only
	// need stdout there.
	Interactive = stdin && stdout && stderr
	visual := stdout && !Colorless

	localSetup(Interactive)
	logbuf.Iconic = Iconic && !Colorless

	common.Trace("Interactive mode: %v; colors: %v; icons: %v", Interactive, visual && !Disabled, Iconic)
	if visual && !Disabled {
		White = csi("97m")
		Grey = csi("90m")
		Black = csi("30m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Blue = csi("94m")
		Magenta = csi("95m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Bold = csi("1m")
		Faint = csi("2m")
		Italic = csi("3m")
		Underline = csi("4m")
	}
	if Iconic && !Colorless {
		Rocket = "\U0001F680 "
		Gear = "⚙ "
	}
}

// Success outputs a success message in green with a newline.
func Success(message string) {
	common.Stdout("%s%s%s\n", Green, message, Reset)
}

// Header outputs a section header in bold with a newline.
func Header(text string) {
	common.Stdout("%s%s%s\n", Bold, text, Reset)
}
