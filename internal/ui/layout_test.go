package ui

import (
	"testing"

	"hamgaman/internal/sidebar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLayout(t *testing.T, dir sidebar.Direction, width int) (ShellLayout, *sidebar.Shell) {
	t.Helper()
	vp := sidebar.NewViewport(100)
	opts := sidebar.DefaultOptions()
	opts.Direction = dir
	s := sidebar.New(opts, sidebar.DefaultMenus(), vp, nil)
	t.Cleanup(s.Close)
	vp.Update(width)
	return ShellLayout{Shell: s, Sidebar: &SidebarView{Shell: s}, Content: NewManageView(nil)}, s
}

func bounds(t *testing.T, l Layout, id string, w, h int) [4]int {
	t.Helper()
	p, ok := PanelByID(l, id)
	require.True(t, ok, id)
	x, y, pw, ph := p.Bounds(w, h)
	return [4]int{x, y, pw, ph}
}

func TestShellLayout_RTLDesktop(t *testing.T) {
	l, s := newLayout(t, sidebar.RTL, 160)
	assert.Equal(t, []string{FocusSidebar, FocusContent}, l.FocusOrder())
	assert.Equal(t, [4]int{130, 0, 30, 40}, bounds(t, l, FocusSidebar, 160, 40))
	assert.Equal(t, [4]int{0, 0, 130, 40}, bounds(t, l, FocusContent, 160, 40))

	s.Toggle()
	assert.Equal(t, [4]int{154, 0, 6, 40}, bounds(t, l, FocusSidebar, 160, 40))
	assert.Equal(t, [4]int{0, 0, 154, 40}, bounds(t, l, FocusContent, 160, 40))
}

func TestShellLayout_LTRDesktop(t *testing.T) {
	l, _ := newLayout(t, sidebar.LTR, 160)
	assert.Equal(t, [4]int{0, 0, 30, 40}, bounds(t, l, FocusSidebar, 160, 40))
	assert.Equal(t, [4]int{30, 0, 130, 40}, bounds(t, l, FocusContent, 160, 40))
}

func TestShellLayout_Small(t *testing.T) {
	l, s := newLayout(t, sidebar.RTL, 60)
	require.True(t, s.Small())
	assert.Equal(t, []string{FocusContent}, l.FocusOrder())
	assert.Equal(t, [4]int{0, 1, 60, 39}, bounds(t, l, FocusContent, 60, 40))

	s.OpenDrawer()
	assert.Equal(t, []string{FocusSidebar, FocusContent}, l.FocusOrder())
	assert.Equal(t, [4]int{30, 0, 30, 40}, bounds(t, l, FocusSidebar, 60, 40))
	assert.Equal(t, [4]int{0, 1, 60, 39}, bounds(t, l, FocusContent, 60, 40), "the drawer takes no columns")
}

func TestPanelByID_Unknown(t *testing.T) {
	l, _ := newLayout(t, sidebar.RTL, 160)
	_, ok := PanelByID(l, "missing")
	assert.False(t, ok)
}

func TestFocusManager_FollowsOrder(t *testing.T) {
	var changes []string
	f := &FocusManager{
		Current:  FocusContent,
		Order:    []string{FocusSidebar, FocusContent},
		OnChange: func(from, to string) { changes = append(changes, from+">"+to) },
	}
	assert.Equal(t, FocusSidebar, f.Next())
	assert.Equal(t, FocusContent, f.Prev())
	assert.False(t, f.SetFocus("missing"))
	assert.True(t, f.SetFocus(FocusContent))
	assert.Equal(t, []string{"content>sidebar", "sidebar>content"}, changes)

	f.SetFocus(FocusSidebar)
	f.SetOrder([]string{FocusContent})
	assert.True(t, f.Is(FocusContent), "a hidden sidebar loses focus")
	assert.Equal(t, FocusContent, f.Next())
}

func TestPanel_Size(t *testing.T) {
	l, _ := newLayout(t, sidebar.RTL, 160)
	p, ok := PanelByID(l, FocusContent)
	require.True(t, ok)
	w, h := p.Size(160, 40)
	assert.Equal(t, 130, w)
	assert.Equal(t, 40, h)
}
