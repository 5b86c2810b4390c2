package ui

import "hamgaman/internal/sidebar"

// Focus targets, also the panel IDs of the shell layout.
const (
	FocusSidebar = "sidebar"
	FocusContent = "content"
)

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// ShellLayout puts the sidebar on its reading-start edge and gives the rest
// to the content. An open drawer overlays the content and takes no columns.
type ShellLayout struct {
	Shell   *sidebar.Shell
	Sidebar View
	Content View
}

// Ensure ShellLayout implements Layout.
var _ Layout = ShellLayout{}

// Panels implements Layout.
func (l ShellLayout) Panels() []Panel {
	return []Panel{
		{ID: FocusSidebar, View: l.Sidebar, Bounds: l.sidebarBounds},
		{ID: FocusContent, View: l.Content, Bounds: l.contentBounds},
	}
}

// FocusOrder implements Layout. A hidden sidebar cannot take focus.
func (l ShellLayout) FocusOrder() []string {
	if !l.Shell.Visible() {
		return []string{FocusContent}
	}
	return []string{FocusSidebar, FocusContent}
}

func (l ShellLayout) sidebarBounds(width, height int) (x, y, w, h int) {
	r := l.Shell.Bounds(width, height)
	return r.X, r.Y, r.W, r.H
}

func (l ShellLayout) contentBounds(width, height int) (x, y, w, h int) {
	pw := min(l.Shell.PanelWidth(), width)
	if l.Shell.Small() {
		// the first row holds the drawer's open button
		return 0, 1, width, max(height-1, 0)
	}
	if l.Shell.Theme().RTL() {
		return 0, 0, width - pw, height
	}
	return pw, 0, width - pw, height
}

// PanelByID returns the panel with the given id.
func PanelByID(l Layout, id string) (Panel, bool) {
	for _, p := range l.Panels() {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}
