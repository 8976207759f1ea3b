package interactive

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles shared by the shell chrome (header,
// crumbs, menu). View bodies use ViewStyles instead.
type Styles struct {
	theme Theme

	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style

	Divider lipgloss.Style

	LogoText   lipgloss.Style
	LogoSubtle lipgloss.Style

	CrumbActive   lipgloss.Style
	CrumbInactive lipgloss.Style

	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style

	MenuKey       lipgloss.Style
	MenuDesc      lipgloss.Style
	MenuSeparator lipgloss.Style

	PanelTitle lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Spinner lipgloss.Style
}

func NewStyles() *Styles {
	return NewStylesWithTheme(DefaultTheme())
}

func NewStylesWithTheme(theme Theme) *Styles {
	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtle: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Info: lipgloss.NewStyle().
			Foreground(theme.Info),

		Divider: lipgloss.NewStyle().
			Foreground(theme.BorderDim),

		LogoText: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.TextBright).
			Background(theme.Primary),

		LogoSubtle: lipgloss.NewStyle().
			Foreground(theme.TextMuted).
			PaddingLeft(1),

		CrumbActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.TextBright).
			Background(theme.Secondary),

		CrumbInactive: lipgloss.NewStyle().
			Foreground(theme.TextMuted).
			Background(theme.Surface),

		StatusKey: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		StatusValue: lipgloss.NewStyle().
			Foreground(theme.Accent),

		MenuKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		MenuDesc: lipgloss.NewStyle().
			Foreground(theme.Text),

		MenuSeparator: lipgloss.NewStyle().
			Foreground(theme.BorderDim),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		HelpDesc: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),
	}
}
