package pretty_test

import (
	"strings"
	"testing"

	"github.com/flightdeck-io/flightdeck/hamlet"
	"github.com/flightdeck-io/flightdeck/logbuf"
	"github.com/flightdeck-io/flightdeck/pretty"
)

func TestStatusColorMapping(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	pretty.Colorless = false
	pretty.Disabled = false
	pretty.Grey = "<grey>"
	pretty.Cyan = "<cyan>"
	pretty.Green = "<green>"
	pretty.Red = "<red>"
	pretty.Faint = "<faint>"

	must_be.Equal("<cyan>", pretty.StatusColor("running"))
	must_be.Equal("<green>", pretty.StatusColor("Completed"))
	must_be.Equal("<red>", pretty.StatusColor("FAILED"))
	must_be.Equal("<faint>", pretty.StatusColor("stopped"))
	must_be.Equal("<grey>", pretty.StatusColor("pending"))
	must_be.Equal("", pretty.StatusColor("nonsense"))

	pretty.Colorless = true
	wont_be.True(pretty.StatusColor("running") == "<cyan>")
	pretty.Colorless = false
}

func TestFrameRendersAllLines(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	t.Setenv("TERM", "dumb")
	rendered := pretty.Frame("status", []string{"alpha", "beta longer line"})
	wont_be.Equal("", rendered)
	must_be.True(strings.Contains(rendered, "alpha"))
	must_be.True(strings.Contains(rendered, "beta longer line"))
	must_be.True(strings.Contains(rendered, " status "))
	must_be.Equal(4, len(strings.Split(strings.TrimRight(rendered, "\n"), "\n")))
	must_be.True(strings.HasPrefix(rendered, "+"))
}

func TestFrameNeverOutgrowsTheTerminal(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	t.Setenv("TERM", "dumb")
	// Off a terminal, width falls back to 80 columns.
	oversize := strings.Repeat("x", 200)
	rendered := pretty.Frame("wide", []string{"short", oversize})
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		must_be.True(len([]rune(line)) <= 80)
	}
	must_be.True(strings.Contains(rendered, "..."))
	must_be.True(strings.Contains(rendered, "short"))
}

func TestSetupAlignsLogIconsWithTerminalIcons(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	pretty.Setup()
	must_be.Equal(pretty.Iconic && !pretty.Colorless, logbuf.Iconic)
}
