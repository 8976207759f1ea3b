package interactive

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/logbuf"
	"github.com/flightdeck-io/flightdeck/supervisor"
)

// RunView supervises one launched unit: it starts the process, drains
// its output one line per poll tick into the log, and reports the exit
// code. Leaving the view does not stop the process; only the explicit
// stop key does.
type RunView struct {
	shell   *Shell
	styles  *Styles
	unit    discovery.Descriptor
	handle  *supervisor.Handle
	log     *logbuf.LogBuffer
	output  viewport.Model
	width   int
	height  int
	polling bool
	pinned  bool // user scrolled; stop following the tail
	ended   bool
}

func NewRunView(shell *Shell, styles *Styles, unit discovery.Descriptor, width, height int) *RunView {
	view := &RunView{
		shell:  shell,
		styles: styles,
		unit:   unit,
		log:    logbuf.NewLogBuffer(2000),
		width:  width,
		height: height,
	}
	view.output = viewport.New(view.logWidth(), view.logHeight())
	return view
}

func (v *RunView) Init() tea.Cmd {
	return v.start
}

// start launches the unit off the update loop. A start failure is a
// log line, never a crash of the shell.
func (v *RunView) start() tea.Msg {
	handle, err := v.shell.Boss.Start(v.unit)
	return startedMsg{handle: handle, err: err}
}

func (v *RunView) pollCmd() tea.Cmd {
	return tea.Tick(v.shell.Poll, func(at time.Time) tea.Msg {
		return pollTickMsg(at)
	})
}

func (v *RunView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return v.started(msg)

	case pollTickMsg:
		return v.poll()

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.output.Width = v.logWidth()
		v.output.Height = v.logHeight()
		v.refreshOutput()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg { return backToDeckMsg{} }
		case "s":
			v.stop()
		case "up", "k":
			v.pinned = true
			v.output.LineUp(1)
		case "down", "j":
			v.output.LineDown(1)
			if v.output.AtBottom() {
				v.pinned = false
			}
		case "g":
			v.pinned = true
			v.output.GotoTop()
		case "G":
			v.pinned = false
			v.output.GotoBottom()
		}
	}

	return v, nil
}

func (v *RunView) started(msg startedMsg) (View, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, supervisor.ErrAlreadyRunning) {
			// Attach to the live run instead of starting another.
			if handle, ok := v.shell.Boss.Handle(v.unit.Name); ok {
				v.handle = handle
				v.note(logbuf.LogWarn, "already running as pid %d, attaching", handle.Pid())
				v.polling = true
				return v, v.pollCmd()
			}
		}
		v.note(logbuf.LogError, "start failed: %v", msg.err)
		v.ended = true
		return v, nil
	}
	v.handle = msg.handle
	v.note(logbuf.LogInfo, "started %q as pid %d", v.unit.Command, msg.handle.Pid())
	v.polling = true
	return v, v.pollCmd()
}

// poll drains at most one output line per tick, so a chatty child
// cannot starve rendering and a silent one cannot stall it.
func (v *RunView) poll() (View, tea.Cmd) {
	if v.handle == nil || !v.polling {
		return v, nil
	}

	line, drained := v.handle.TryLine()
	if drained {
		v.log.AddLine(line)
		v.refreshOutput()
	}

	if !drained && !v.handle.Alive() {
		if code, done := v.handle.ExitCode(); done {
			if code == 0 {
				v.note(logbuf.LogInfo, "process exited with code 0")
			} else {
				v.note(logbuf.LogError, "process exited with code %d", code)
			}
		}
		v.polling = false
		v.ended = true
		return v, nil
	}

	return v, v.pollCmd()
}

func (v *RunView) stop() {
	if v.shell.Boss.Stop(v.unit.Name) {
		v.note(logbuf.LogInfo, "stop requested, process terminated")
		v.polling = false
		v.ended = true
	} else {
		v.note(logbuf.LogWarn, "nothing to stop")
	}
}

func (v *RunView) note(level logbuf.LogLevel, form string, details ...interface{}) {
	v.log.Add(level, "flightdeck", fmt.Sprintf(form, details...))
	v.refreshOutput()
}

func (v *RunView) logWidth() int {
	width := v.width - 14
	if width < 40 {
		width = 40
	}
	return width
}

func (v *RunView) logHeight() int {
	height := v.height - 16
	if height < 5 {
		height = 5
	}
	return height
}

func (v *RunView) refreshOutput() {
	vs := NewViewStyles(v.styles.theme)
	entries := v.log.All()
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		stamp := vs.Subtext.Render(entry.Time.Format("15:04:05"))
		icon := entry.Level.Icon()
		var style = vs.Text
		switch entry.Level {
		case logbuf.LogError:
			style = vs.Error
		case logbuf.LogWarn:
			style = vs.Warning
		case logbuf.LogDebug, logbuf.LogTrace:
			style = vs.Subtext
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", stamp, icon, style.Render(entry.Message)))
	}
	v.output.SetContent(strings.Join(lines, "\n"))
	if !v.pinned {
		v.output.GotoBottom()
	}
}

func (v *RunView) status(vs ViewStyles) string {
	switch {
	case v.handle == nil && !v.ended:
		return vs.Subtext.Render("starting...")
	case v.handle != nil && v.handle.Alive():
		return vs.Success.Render(fmt.Sprintf("running (pid %d)", v.handle.Pid()))
	case v.handle != nil:
		code, _ := v.handle.ExitCode()
		if code == 0 {
			return vs.Subtext.Render("exited (code 0)")
		}
		return vs.Error.Render(fmt.Sprintf("exited (code %d)", code))
	default:
		return vs.Error.Render("failed to start")
	}
}

func (v *RunView) View() string {
	vb := NewViewBox(v.width, v.height, v.styles.theme)
	vs := NewViewStyles(v.styles.theme)

	var b strings.Builder

	b.WriteString(RenderHeader(vs, v.unit.Name, "("+v.unit.Category.Label()+")", vb.ContentWidth))
	b.WriteString("\n")

	b.WriteString(vs.Label.Render("Command"))
	b.WriteString(vs.Info.Render(v.unit.Command))
	b.WriteString("\n")
	b.WriteString(vs.Label.Render("Status"))
	b.WriteString(v.status(vs))
	if v.unit.HasPort() {
		b.WriteString("\n")
		b.WriteString(vs.Label.Render("Port"))
		b.WriteString(vs.Accent.Render(fmt.Sprintf("%d", v.unit.Port)))
	}
	b.WriteString("\n\n")
	b.WriteString(vs.Separator.Render(strings.Repeat("-", vb.ContentWidth)))
	b.WriteString("\n")

	if v.log.Len() == 0 {
		b.WriteString(vs.Subtext.Render("(no output yet)"))
	} else {
		b.WriteString(v.output.View())
	}
	b.WriteString("\n")

	hints := []KeyHint{
		{"s", "stop"},
		{"Esc", "back"},
		{"j/k", "scroll"},
	}
	b.WriteString(RenderFooter(vs, hints, vb.ContentWidth))

	return vb.Render(b.String(), v.width, v.height)
}

func (v *RunView) Name() string {
	return "Run"
}

func (v *RunView) ShortHelp() string {
	return "s:stop Esc:back j/k:scroll"
}
