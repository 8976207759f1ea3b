package pretty

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/flightdeck-io/flightdeck/common"
)

func csi(body string) string {
	return fmt.Sprintf("\x1b[%s", body)
}

func csif(form string, details ...interface{}) string {
	return csi(fmt.Sprintf(form, details...))
}

// Exit flushes pending logs and terminates the process with the given
// code. Zero is reported in green on stdout, anything else in red on
// the log stream.
func Exit(code int, format string, rest ...interface{}) {
	message := format
	if len(rest) > 0 {
		message = fmt.Sprintf(format, rest...)
	}
	if code == 0 {
		common.Stdout("%s%s%s\n", Green, message, Reset)
	} else {
		common.Log("%s%s%s", Red, message, Reset)
	}
	common.WaitLogs()
	os.Exit(code)
}

// Guard is the CLI boundary assertion: when the condition fails, the
// process exits with the given code and message.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}

func Ok() error {
	common.Log("%sOK.%s", Green, Reset)
	return nil
}

func Note(format string, rest ...interface{}) {
	common.Log("%sNote: %s%s%s", Cyan, White, fmt.Sprintf(format, rest...), Reset)
}

func Warning(format string, rest ...interface{}) {
	common.Log("%sWarning: %s%s", Yellow, fmt.Sprintf(format, rest...), Reset)
}

func Highlight(format string, rest ...interface{}) {
	common.Stdout("%s%s%s\n", Bold, fmt.Sprintf(format, rest...), Reset)
}

func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
