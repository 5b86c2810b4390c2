package sidebar

import "github.com/charmbracelet/lipgloss"

// dark mode text, the terminal stand-in for rgba(255,255,255,0.9)
const darkText = "#e6e6e6"

// Theme is the resolved look handed to every renderer.
type Theme struct {
	Text       lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color
	Mode       Mode
	Direction  Direction
	Title      string
}

// DeriveTheme resolves options into a Theme. Dark mode overrides the text
// color and background.
func DeriveTheme(o Options) Theme {
	o = o.withDefaults()
	t := Theme{
		Text:       lipgloss.Color(o.TextColor),
		Accent:     lipgloss.Color(o.ThemeColor),
		Secondary:  lipgloss.Color(o.SecondaryColor),
		Background: lipgloss.Color("#ffffff"),
		Border:     lipgloss.Color("#dddddd"),
		Mode:       o.Mode,
		Direction:  o.Direction,
		Title:      o.Title,
	}
	if o.Mode == ModeDark {
		t.Text = lipgloss.Color(darkText)
		t.Background = lipgloss.Color("#222222")
		t.Border = lipgloss.Color("#444444")
	}
	return t
}

// RTL reports whether text reads right to left.
func (t Theme) RTL() bool {
	return t.Direction != LTR
}

func (t Theme) base() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text).Background(t.Background)
}

func (t Theme) heading() lipgloss.Style {
	return t.base().Bold(true)
}

func (t Theme) logo() lipgloss.Style {
	return t.base().Bold(true).Foreground(t.Accent)
}

func (t Theme) item(selected, disabled, hovered bool) lipgloss.Style {
	switch {
	case selected:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(t.Accent).Bold(true)
	case disabled:
		return t.base().Faint(true)
	case hovered:
		return t.base().Foreground(t.Accent)
	}
	return t.base()
}

func (t Theme) badge(color string) lipgloss.Style {
	c := t.Secondary
	if color != "" {
		c = lipgloss.Color(color)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(c)
}

func (t Theme) profile() lipgloss.Style {
	return t.base()
}

func (t Theme) muted() lipgloss.Style {
	return t.base().Faint(true)
}

func (t Theme) danger() lipgloss.Style {
	return t.base().Foreground(lipgloss.Color("#fa896b"))
}
