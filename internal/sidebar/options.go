// Package sidebar implements the collapsible navigation shell: a side panel
// on wide terminals and an overlay drawer on narrow ones.
//
// Configuration reaches the renderers as an explicit Theme value; nothing is
// looked up from shared state.
package sidebar

import (
	"hamgaman/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the color scheme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Direction is the reading direction. It decides which edge the panel sits on.
type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

// LogoutNotice is what the default logout callback reports.
const LogoutNotice = "خروج با موفقیت انجام شد"

// User is shown in the profile block.
type User struct {
	Name        string
	Designation string
	Image       string
}

// Options configures a Shell. Zero fields take defaults.
type Options struct {
	Width          int
	CollapsedWidth int
	Breakpoint     int
	TextColor      string
	ThemeColor     string
	SecondaryColor string
	Mode           Mode
	Direction      Direction
	Title          string
	User           User
	// OnLogout runs when the user logs out. Nil shows LogoutNotice.
	OnLogout func() tea.Msg
}

// DefaultOptions returns the stock look.
func DefaultOptions() Options {
	return Options{
		Width:          30,
		CollapsedWidth: 6,
		Breakpoint:     100,
		TextColor:      "#2b2b2b",
		ThemeColor:     "#5d87ff",
		SecondaryColor: "#49beff",
		Mode:           ModeLight,
		Direction:      RTL,
		Title:          "همگامان دانش",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.CollapsedWidth <= 0 {
		o.CollapsedWidth = d.CollapsedWidth
	}
	if o.Breakpoint <= 0 {
		o.Breakpoint = d.Breakpoint
	}
	if o.TextColor == "" {
		o.TextColor = d.TextColor
	}
	if o.ThemeColor == "" {
		o.ThemeColor = d.ThemeColor
	}
	if o.SecondaryColor == "" {
		o.SecondaryColor = d.SecondaryColor
	}
	if o.Mode == "" {
		o.Mode = d.Mode
	}
	if o.Direction == "" {
		o.Direction = d.Direction
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.OnLogout == nil {
		o.OnLogout = func() tea.Msg { return nav.NoticeMsg{Text: LogoutNotice} }
	}
	return o
}
