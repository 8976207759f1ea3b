package interactive

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/logbuf"
	"github.com/flightdeck-io/flightdeck/settings"
	"github.com/flightdeck-io/flightdeck/supervisor"
	"github.com/flightdeck-io/flightdeck/watcher"
)

// ViewType identifies the active view of the shell state machine.
type ViewType int

const (
	ViewDeck ViewType = iota
	ViewRun
)

// Shell bundles the engine state the views share. It is owned by the
// App; views receive it by reference. All mutation of view state
// happens on the bubbletea update loop, background work communicates
// only through messages.
type Shell struct {
	Scanner *discovery.Scanner
	Boss    *supervisor.Supervisor
	Watch   *watcher.Watcher // nil when watching is disabled
	Poll    time.Duration
}

// View interface that all views must implement
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	Name() string
	ShortHelp() string
}

// Messages passed between the engine and the views.

type deckLoadedMsg struct {
	units []discovery.Descriptor
	err   error
}

type deckChangedMsg struct{}

type runUnitMsg struct {
	unit discovery.Descriptor
}

type backToDeckMsg struct{}

type startedMsg struct {
	handle *supervisor.Handle
	err    error
}

type pollTickMsg time.Time

// App is the main model for the interactive shell.
type App struct {
	shell      *Shell
	activeView ViewType
	deck       *DeckView
	run        *RunView
	width      int
	height     int
	styles     *Styles
	spinner    spinner.Model
	startTime  time.Time
	quitting   bool
	showHelp   bool
}

func NewApp(shell *Shell) *App {
	styles := NewStyles()

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = styles.Spinner

	return &App{
		shell:      shell,
		activeView: ViewDeck,
		deck:       NewDeckView(shell, styles),
		width:      120,
		height:     30,
		styles:     styles,
		spinner:    s,
		startTime:  time.Now(),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick, a.deck.Init()}
	if a.shell.Watch != nil {
		cmds = append(cmds, a.waitForChange())
	}
	return tea.Batch(cmds...)
}

// waitForChange blocks on the watcher off the update loop and turns
// notifications into deck refreshes.
func (a *App) waitForChange() tea.Cmd {
	changes := a.shell.Watch.Changes()
	return func() tea.Msg {
		_, ok := <-changes
		if !ok {
			return nil
		}
		return deckChangedMsg{}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit) && a.activeView == ViewDeck:
			a.quitting = true
			return a, tea.Quit

		case msg.String() == "ctrl+c":
			a.quitting = true
			return a, tea.Quit

		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case spinner.TickMsg:
		a.spinner, cmd = a.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case deckChangedMsg:
		cmds = append(cmds, a.deck.Rescan(), a.waitForChange())

	case runUnitMsg:
		a.run = NewRunView(a.shell, a.styles, msg.unit, a.width, a.height)
		a.activeView = ViewRun
		return a, a.run.Init()

	case backToDeckMsg:
		// Leaving the run view never kills the process; only an
		// explicit stop does.
		a.activeView = ViewDeck
		a.run = nil
		return a, nil
	}

	// Key messages should only go to the active view; other messages
	// (async results) go to all views.
	if _, isKey := msg.(tea.KeyMsg); isKey {
		cmds = append(cmds, a.updateActive(msg))
	} else {
		newDeck, viewCmd := a.deck.Update(msg)
		a.deck = newDeck.(*DeckView)
		cmds = append(cmds, viewCmd)
		if a.run != nil {
			newRun, runCmd := a.run.Update(msg)
			a.run = newRun.(*RunView)
			cmds = append(cmds, runCmd)
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) updateActive(msg tea.Msg) tea.Cmd {
	switch a.activeView {
	case ViewRun:
		if a.run == nil {
			return nil
		}
		newRun, cmd := a.run.Update(msg)
		a.run = newRun.(*RunView)
		return cmd
	default:
		newDeck, cmd := a.deck.Update(msg)
		a.deck = newDeck.(*DeckView)
		return cmd
	}
}

func (a *App) active() View {
	if a.activeView == ViewRun && a.run != nil {
		return a.run
	}
	return a.deck
}

// View implements tea.Model
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	headerHeight := 4
	menuHeight := 3
	contentHeight := a.height - headerHeight - menuHeight

	header := a.renderHeader()
	var content string
	if a.showHelp {
		content = a.renderHelp(contentHeight)
	} else {
		content = a.renderContent(contentHeight)
	}
	menu := a.renderMenu()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, menu)
}

func (a *App) renderHeader() string {
	logo := a.renderLogo()
	status := a.renderStatus()

	gap := a.width - lipgloss.Width(logo) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Repeat(" ", gap), status)

	crumbs := a.renderCrumbs()
	divider := a.styles.Divider.Render(strings.Repeat("─", a.width))

	return lipgloss.JoinVertical(lipgloss.Left, topRow, crumbs, divider)
}

func (a *App) renderLogo() string {
	spinnerView := a.spinner.View()
	title := a.styles.LogoText.Render(" FLIGHTDECK ")
	subtitle := a.styles.LogoSubtle.Render(filepath.Base(a.shell.Boss.Root()))

	return lipgloss.JoinHorizontal(lipgloss.Center, spinnerView, title, subtitle)
}

func (a *App) renderStatus() string {
	elapsed := time.Since(a.startTime).Round(time.Second)
	running := len(a.shell.Boss.Running())

	version := a.styles.StatusKey.Render("ver:") + a.styles.StatusValue.Render(common.Version)
	live := a.styles.StatusKey.Render(" live:") + a.styles.StatusValue.Render(fmt.Sprintf("%d", running))
	uptime := a.styles.StatusKey.Render(" up:") + a.styles.StatusValue.Render(elapsed.String())

	return version + live + uptime + " "
}

func (a *App) renderCrumbs() string {
	root := a.styles.CrumbInactive.Render(" <flightdeck> ")
	active := a.styles.CrumbActive.Render(fmt.Sprintf(" <%s> ", strings.ToLower(a.active().Name())))
	return root + active
}

func (a *App) renderContent(height int) string {
	contentStyle := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		PaddingLeft(1).
		PaddingRight(1)

	return contentStyle.Render(a.active().View())
}

func (a *App) renderHelp(height int) string {
	var b strings.Builder

	header := a.styles.Info.Render("####") + "  " + a.styles.PanelTitle.Render("Help") + "  " + a.styles.Info.Render("####")
	b.WriteString(header)
	b.WriteString("\n\n")

	sections := []struct {
		title string
		keys  []struct{ key, desc string }
	}{
		{"Deck", []struct{ key, desc string }{
			{"j/↓ k/↑", "Move selection"},
			{"g/G", "Jump top/bottom"},
			{"Enter", "Run selected application"},
			{"r", "Refresh (re-scan)"},
		}},
		{"Running", []struct{ key, desc string }{
			{"s", "Stop the process"},
			{"Esc", "Back to deck (process keeps running)"},
			{"j/k", "Scroll output log"},
		}},
		{"Global", []struct{ key, desc string }{
			{"?", "Toggle this help"},
			{"q", "Quit (from deck)"},
			{"Ctrl+C", "Force quit"},
		}},
	}

	for _, section := range sections {
		b.WriteString(a.styles.PanelTitle.Render("    " + section.title))
		b.WriteString("\n\n")
		for _, k := range section.keys {
			b.WriteString("      " + a.styles.HelpKey.Render("<"+k.key+">") + " " + a.styles.HelpDesc.Render(k.desc) + "\n")
		}
		b.WriteString("\n")
	}

	contentStyle := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		PaddingLeft(1).
		PaddingRight(1)

	return contentStyle.Render(b.String())
}

func (a *App) renderMenu() string {
	divider := a.styles.Divider.Render(strings.Repeat("─", a.width))

	hints := a.active().ShortHelp()
	global := a.formatHint("?", "Help") + a.formatHint("q", "Quit")
	line := a.styles.MenuDesc.Render(hints) + a.styles.MenuSeparator.Render(" │ ") + global

	return lipgloss.JoinVertical(lipgloss.Left, divider, line)
}

func (a *App) formatHint(key, desc string) string {
	k := a.styles.MenuKey.Render("<" + key + ">")
	d := a.styles.MenuDesc.Render(desc)
	return k + d + " "
}

// Run builds the shell around the given monorepo root and drives the
// interactive application until the user quits. Processes left running
// on purpose stay attached to the supervisor until the shell exits.
func Run(root string) error {
	config, err := settings.SummonSettings()
	if err != nil {
		return err
	}

	scanner := discovery.NewScanner(root)
	scanner.Applications = config.ApplicationsDirectory()
	scanner.Scripts = config.ScriptsDirectory()
	scanner.Entry = config.EntryFile()
	scanner.Glob = config.ScriptGlob()

	shell := &Shell{
		Scanner: scanner,
		Boss:    supervisor.New(root, config.StopTimeout()),
		Poll:    config.PollInterval(),
	}

	if config.WatchEnabled() {
		watch, err := watcher.New(watcher.DefaultDebounce)
		if err != nil {
			common.Debug("filesystem watching unavailable: %v", err)
		} else {
			watch.Watch(
				filepath.Join(scanner.Root, scanner.Applications),
				filepath.Join(scanner.Root, scanner.Scripts),
			)
			shell.Watch = watch
			defer watch.Close()
		}
	}

	// While bubbletea owns the terminal, engine logs are rerouted out
	// of the way instead of corrupting the screen.
	engine := logbuf.NewLogBuffer(500)
	common.SetLogInterceptor(func(message string) bool {
		engine.AddLine(message)
		return true
	})
	defer common.ClearLogInterceptor()

	program := tea.NewProgram(NewApp(shell), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	for _, name := range shell.Boss.Running() {
		common.Log("Note: unit %q is still running; stopping it now", name)
	}
	shell.Boss.StopAll()
	return nil
}
