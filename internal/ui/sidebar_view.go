package ui

import (
	"hamgaman/internal/sidebar"

	tea "github.com/charmbracelet/bubbletea"
)

// SidebarView adapts the sidebar shell to View so it can sit in a Panel and
// take keyboard focus.
type SidebarView struct {
	Shell  *sidebar.Shell
	Height int
}

// Ensure SidebarView implements View.
var _ View = (*SidebarView)(nil)

// Init implements View.
func (v *SidebarView) Init() tea.Cmd {
	return nil
}

// Update implements View. Arrow keys move the item cursor; Enter activates.
func (v *SidebarView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch km.String() {
	case "up", "k":
		v.Shell.MoveCursor(-1)
	case "down", "j":
		v.Shell.MoveCursor(1)
	case "enter":
		return v, v.Shell.ActivateCursor()
	case "esc":
		v.Shell.CloseDrawer()
	}
	return v, nil
}

// View implements View.
func (v *SidebarView) View() string {
	return v.Shell.View(v.Height)
}
