package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a modal (confirmation, notice, file picker) drawn centered over
// the shell. Modals dismiss themselves by sending DismissModalMsg.
type Overlay struct {
	View View
}

// Render centers the modal in a width×height terminal.
func (o Overlay) Render(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, o.View.View())
}

// OverlayStack holds the open modals; the topmost receives input first.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens v on top of any open modal.
func (s *OverlayStack) Push(v View) {
	s.Stack = append(s.Stack, Overlay{View: v})
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// topModal returns the top overlay's view if it is a T.
func topModal[T View](s *OverlayStack) (T, bool) {
	var zero T
	top, ok := s.Peek()
	if !ok {
		return zero, false
	}
	v, ok := top.View.(T)
	return v, ok
}
