package interactive

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flightdeck-io/flightdeck/discovery"
)

// DeckView lists the discovered applications and scripts. It is the
// initial view; selecting a unit hands control to the run view.
type DeckView struct {
	shell   *Shell
	styles  *Styles
	units   []discovery.Descriptor
	changed map[string]bool
	width   int
	height  int
	loading bool
	err     error
	cursor  int
}

func NewDeckView(shell *Shell, styles *Styles) *DeckView {
	return &DeckView{
		shell:   shell,
		styles:  styles,
		units:   []discovery.Descriptor{},
		width:   120,
		height:  30,
		loading: true,
	}
}

func (v *DeckView) Init() tea.Cmd {
	return v.scan
}

// Rescan marks the deck stale and kicks a fresh scan off the update
// loop.
func (v *DeckView) Rescan() tea.Cmd {
	v.loading = true
	return v.scan
}

// scan runs discovery off the update loop; the result arrives as one
// message and replaces the unit list wholesale.
func (v *DeckView) scan() tea.Msg {
	units, err := v.shell.Scanner.Scan()
	return deckLoadedMsg{units: units, err: err}
}

func (v *DeckView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case deckLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.changed = discovery.Changed(v.units, msg.units)
		v.units = msg.units
		if v.cursor >= len(v.units) {
			v.cursor = 0
		}

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.units)-1 {
				v.cursor++
			}
		case "g":
			v.cursor = 0
		case "G":
			if len(v.units) > 0 {
				v.cursor = len(v.units) - 1
			}
		case "r":
			return v, v.Rescan()
		case "enter":
			if unit := v.selected(); unit != nil {
				chosen := *unit
				return v, func() tea.Msg { return runUnitMsg{unit: chosen} }
			}
		}
	}

	return v, nil
}

func (v *DeckView) selected() *discovery.Descriptor {
	if v.cursor >= 0 && v.cursor < len(v.units) {
		return &v.units[v.cursor]
	}
	return nil
}

// CategoryIcon gives the deck row marker for one category.
func CategoryIcon(category discovery.Category) string {
	switch category {
	case discovery.CategoryWeb:
		return "🌐"
	case discovery.CategoryCli:
		return "⌨"
	case discovery.CategoryTui:
		return "▦"
	case discovery.CategoryGui:
		return "🖥"
	default:
		return "⚙"
	}
}

// FormatUnitRow renders one fixed-width deck row: category label,
// name, port and description columns.
func FormatUnitRow(unit discovery.Descriptor, running bool) string {
	marker := " "
	if running {
		marker = "▶"
	}
	port := ""
	if unit.HasPort() {
		port = fmt.Sprintf(":%d", unit.Port)
	}
	name := unit.Name
	if len(name) > 22 {
		name = name[:19] + "..."
	}
	description := unit.Description
	if len(description) > 38 {
		description = description[:35] + "..."
	}
	return fmt.Sprintf("%s %-12s %-23s %-6s %s", marker, unit.Category.Label(), name, port, description)
}

func (v *DeckView) View() string {
	vb := NewViewBox(v.width, v.height, v.styles.theme)
	vs := NewViewStyles(v.styles.theme)

	var b strings.Builder

	subtitle := ""
	if !v.loading && len(v.units) > 0 {
		subtitle = fmt.Sprintf("(%d found)", len(v.units))
	}
	b.WriteString(RenderHeader(vs, "Deck", subtitle, vb.ContentWidth))
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(vs.Subtext.Render("Scanning for applications..."))

	case v.err != nil:
		b.WriteString(vs.Error.Render("Error: " + v.err.Error()))

	case len(v.units) == 0:
		b.WriteString(vs.Subtext.Render("No applications found under " + v.shell.Scanner.Root))
		b.WriteString("\n\n")
		b.WriteString(vs.Label.Render("Create one"))
		b.WriteString(vs.Info.Render("flightdeck create <name>"))

	default:
		b.WriteString(v.renderRows(vs))
	}

	b.WriteString("\n\n")
	hints := []KeyHint{
		{"Enter", "run"},
		{"j/k", "navigate"},
		{"r", "refresh"},
	}
	b.WriteString(RenderFooter(vs, hints, vb.ContentWidth))

	return vb.Render(b.String(), v.width, v.height)
}

func (v *DeckView) renderRows(vs ViewStyles) string {
	var b strings.Builder

	maxVisible := v.height - 14
	if maxVisible < 5 {
		maxVisible = 5
	}
	start := 0
	if v.cursor >= maxVisible {
		start = v.cursor - maxVisible + 1
	}

	for at := start; at < len(v.units) && at < start+maxVisible; at++ {
		unit := v.units[at]
		running := v.shell.Boss.IsRunning(unit.Name)
		row := CategoryIcon(unit.Category) + " " + FormatUnitRow(unit, running)
		if v.changed[unit.Name] {
			row += " *"
		}

		switch {
		case at == v.cursor:
			b.WriteString(vs.Selected.Render("> " + row))
		case running:
			b.WriteString(vs.Success.Render("  " + row))
		default:
			b.WriteString(vs.Normal.Render("  " + row))
		}
		b.WriteString("\n")
	}

	if remaining := len(v.units) - start - maxVisible; remaining > 0 {
		b.WriteString(vs.Subtext.Render(fmt.Sprintf("  ... +%d more (use arrows)", remaining)))
		b.WriteString("\n")
	}

	if unit := v.selected(); unit != nil {
		b.WriteString("\n")
		b.WriteString(vs.Separator.Render(strings.Repeat("-", 40)))
		b.WriteString("\n")
		b.WriteString(vs.Info.Render("  " + unit.Command))
	}

	return b.String()
}

func (v *DeckView) Name() string {
	return "Deck"
}

func (v *DeckView) ShortHelp() string {
	return "j/k:navigate Enter:run r:refresh"
}
