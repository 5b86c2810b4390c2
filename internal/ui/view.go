package ui

import tea "github.com/charmbracelet/bubbletea"

// View is one page, modal or detail screen with its own Elm-style
// Init/Update/View. Update returns the view to keep, which may be a new one.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Sizer is implemented by views that lay themselves out for a given area.
type Sizer interface {
	SetSize(width, height int)
}

// InputCapturer is implemented by views that take raw keys while a text
// field is active. Leader and focus keys are not applied to them.
type InputCapturer interface {
	CapturesInput() bool
}

// Closer is implemented by views that hold resources until they leave the
// screen, like the course editor and its previews.
type Closer interface {
	Close()
}

// resizeViews sizes every view that supports it to width×height.
func resizeViews(width, height int, views ...View) {
	for _, v := range views {
		if s, ok := v.(Sizer); ok {
			s.SetSize(width, height)
		}
	}
}

// capturingInput reports whether v is typing into a text field.
func capturingInput(v View) bool {
	c, ok := v.(InputCapturer)
	return ok && c.CapturesInput()
}
