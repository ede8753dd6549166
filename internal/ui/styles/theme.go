package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand gradient, cyan into blue
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Map canvas
	Street      lipgloss.Color
	MinorStreet lipgloss.Color
	Block       lipgloss.Color
	Landmark    lipgloss.Color

	// Highlights
	Like   lipgloss.Color
	Gold   lipgloss.Color
	Silver lipgloss.Color
	Bronze lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Accent   lipgloss.Style // cyan, bold
	Active   lipgloss.Style // selected card or tab
	Cursor   lipgloss.Style
	Badge    lipgloss.Style // level and count badges
	Liked    lipgloss.Style
	Marker   lipgloss.Style
	Here     lipgloss.Style
	Street   lipgloss.Style
	Minor    lipgloss.Style
	Block    lipgloss.Style
	Landmark lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#22d3ee"),
	Secondary: lipgloss.Color("#3b82f6"),

	FgBase:   lipgloss.Color("#d4d4d8"),
	FgMuted:  lipgloss.Color("#8b8b94"),
	FgSubtle: lipgloss.Color("#55555c"),

	BgBase:   lipgloss.Color("#18181b"),
	BgCursor: lipgloss.Color("#27303f"),

	Border:      lipgloss.Color("#3f3f46"),
	BorderFocus: lipgloss.Color("#22d3ee"),

	Street:      lipgloss.Color("#9ca3af"),
	MinorStreet: lipgloss.Color("#52525b"),
	Block:       lipgloss.Color("#2e2e33"),
	Landmark:    lipgloss.Color("#60a5fa"),

	Like:   lipgloss.Color("#f43f5e"),
	Gold:   lipgloss.Color("#facc15"),
	Silver: lipgloss.Color("#cbd5e1"),
	Bronze: lipgloss.Color("#d97706"),

	Success: lipgloss.Color("#34d399"),
	Error:   lipgloss.Color("#f87171"),
	Warning: lipgloss.Color("#fbbf24"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// Rank returns the color of a top three badge, or muted text past third.
func (t *Theme) Rank(rank int) lipgloss.Color {
	switch rank {
	case 1:
		return t.Gold
	case 2:
		return t.Silver
	case 3:
		return t.Bronze
	}
	return t.FgMuted
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Badge: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Background(t.Secondary).
			Bold(true),
		Liked:    lipgloss.NewStyle().Foreground(t.Like),
		Marker:   lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Here:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Street:   lipgloss.NewStyle().Foreground(t.Street),
		Minor:    lipgloss.NewStyle().Foreground(t.MinorStreet),
		Block:    lipgloss.NewStyle().Foreground(t.Block),
		Landmark: lipgloss.NewStyle().Foreground(t.Landmark),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
	}
}
