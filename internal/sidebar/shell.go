package sidebar

import (
	"hamgaman/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// State is the shell's own state. Collapsed drives the desktop panel and
// DrawerOpen the mobile drawer; both are kept while the other one is active.
type State struct {
	Collapsed  bool
	DrawerOpen bool
}

// Shell owns the sidebar state machine and renders the panel or drawer.
type Shell struct {
	opts        Options
	theme       Theme
	menus       []Menu
	navigator   *nav.Navigator
	viewport    *Viewport
	unsubscribe func()

	state   State
	small   bool
	pointer Pointer
	route   string
	focused bool
	cursor  int
	hover   int
}

// New builds a shell and subscribes it to viewport. A nil viewport gets a
// private one using opts.Breakpoint. Call Close to unsubscribe.
func New(opts Options, menus []Menu, viewport *Viewport, navigator *nav.Navigator) *Shell {
	opts = opts.withDefaults()
	if viewport == nil {
		viewport = NewViewport(opts.Breakpoint)
	}
	if navigator == nil {
		navigator = nav.NewNavigator(nil, nil)
	}
	s := &Shell{
		opts:      opts,
		theme:     DeriveTheme(opts),
		menus:     menus,
		navigator: navigator,
		viewport:  viewport,
		small:     viewport.Small(),
		hover:     -1,
	}
	s.unsubscribe = viewport.Subscribe(func(small bool) { s.small = small })
	return s
}

// Close unsubscribes from the viewport. Safe to call more than once.
func (s *Shell) Close() {
	s.unsubscribe()
}

// State returns both stored booleans.
func (s *Shell) State() State { return s.state }

// Small reports whether the mobile drawer machine is active.
func (s *Shell) Small() bool { return s.small }

// Theme returns the resolved theme.
func (s *Shell) Theme() Theme { return s.theme }

// Options returns the options with defaults applied.
func (s *Shell) Options() Options { return s.opts }

// SetRoute marks the items pointing at route as selected.
func (s *Shell) SetRoute(route string) {
	s.route = route
}

// Route returns the current route.
func (s *Shell) Route() string { return s.route }

// Menus returns the menus with selection derived from the current route.
func (s *Shell) Menus() []Menu {
	return WithSelected(s.menus, s.route)
}

// Items returns every item in display order.
func (s *Shell) Items() []NavItem {
	return flatten(s.Menus())
}

// PointerEnter expands a collapsed desktop panel.
func (s *Shell) PointerEnter() {
	if s.small {
		return
	}
	if s.state.Collapsed {
		s.state.Collapsed = false
	}
}

// PointerLeave collapses an expanded desktop panel.
func (s *Shell) PointerLeave() {
	if s.small {
		return
	}
	if !s.state.Collapsed {
		s.state.Collapsed = true
	}
}

// Toggle flips the desktop panel regardless of pointer position.
func (s *Shell) Toggle() {
	if s.small {
		return
	}
	s.state.Collapsed = !s.state.Collapsed
}

// OpenDrawer opens the mobile drawer.
func (s *Shell) OpenDrawer() {
	if !s.small {
		return
	}
	s.state.DrawerOpen = true
}

// CloseDrawer closes the mobile drawer.
func (s *Shell) CloseDrawer() {
	if !s.small {
		return
	}
	s.state.DrawerOpen = false
}

// Activate navigates to item i. Disabled items do nothing. On mobile the
// drawer closes.
func (s *Shell) Activate(i int) tea.Cmd {
	items := s.Items()
	if i < 0 || i >= len(items) {
		return nil
	}
	it := items[i]
	if it.Disabled || it.Destination == nil {
		return nil
	}
	s.cursor = i
	if s.small {
		s.state.DrawerOpen = false
	}
	return s.navigator.Go(it.Destination)
}

// Logout runs the logout callback.
func (s *Shell) Logout() tea.Cmd {
	fn := s.opts.OnLogout
	return func() tea.Msg { return fn() }
}

// SetFocused shows or hides the keyboard cursor.
func (s *Shell) SetFocused(f bool) { s.focused = f }

// Focused reports whether the keyboard cursor is shown.
func (s *Shell) Focused() bool { return s.focused }

// Cursor returns the keyboard cursor's item index.
func (s *Shell) Cursor() int { return s.cursor }

// MoveCursor moves the keyboard cursor by delta, clamped to the item list.
func (s *Shell) MoveCursor(delta int) {
	n := len(s.Items())
	if n == 0 {
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), n-1)
}

// ActivateCursor activates the item under the keyboard cursor.
func (s *Shell) ActivateCursor() tea.Cmd {
	return s.Activate(s.cursor)
}

// Visible reports whether anything is drawn.
func (s *Shell) Visible() bool {
	return !s.small || s.state.DrawerOpen
}

// Overlay reports whether the shell is drawn over the content (open drawer).
func (s *Shell) Overlay() bool {
	return s.small && s.state.DrawerOpen
}

// PanelWidth is the number of columns the desktop panel takes from the
// content. The drawer overlays content and takes none.
func (s *Shell) PanelWidth() int {
	if s.small {
		return 0
	}
	if s.state.Collapsed {
		return s.opts.CollapsedWidth
	}
	return s.opts.Width
}

// Bounds returns where the panel or drawer is drawn in a width×height terminal.
// It sits on the reading-start edge: right for rtl, left for ltr.
func (s *Shell) Bounds(width, height int) Rect {
	var w int
	switch {
	case s.Overlay():
		w = min(s.opts.Width, width)
	case s.small:
		return Rect{}
	default:
		w = min(s.PanelWidth(), width)
	}
	x := 0
	if s.theme.RTL() {
		x = width - w
	}
	return Rect{X: x, Y: 0, W: w, H: height}
}

// Mouse handles terminal mouse events for a width×height terminal. Motion
// across the panel edge expands or collapses it; left clicks hit rows.
func (s *Shell) Mouse(msg tea.MouseMsg, width, height int) tea.Cmd {
	bounds := s.Bounds(width, height)
	switch msg.Action {
	case tea.MouseActionMotion:
		switch s.pointer.Move(msg.X, msg.Y, bounds) {
		case EdgeEnter:
			s.PointerEnter()
		case EdgeLeave:
			s.PointerLeave()
		}
		// Bounds can change after an edge.
		s.hover = s.itemAt(msg.X, msg.Y, s.Bounds(width, height))
		return nil
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !bounds.Contains(msg.X, msg.Y) {
			return nil
		}
		return s.click(msg.Y-bounds.Y, bounds.H)
	}
	return nil
}

func (s *Shell) itemAt(x, y int, bounds Rect) int {
	if !bounds.Contains(x, y) {
		return -1
	}
	rows := s.rows(bounds.H)
	i := y - bounds.Y
	if i < 0 || i >= len(rows) || rows[i].kind != rowItem {
		return -1
	}
	return rows[i].item
}

func (s *Shell) click(rowIndex, height int) tea.Cmd {
	rows := s.rows(height)
	if rowIndex < 0 || rowIndex >= len(rows) {
		return nil
	}
	switch r := rows[rowIndex]; r.kind {
	case rowItem:
		return s.Activate(r.item)
	case rowLogout:
		return s.Logout()
	case rowToggle:
		s.Toggle()
	case rowClose:
		s.CloseDrawer()
	case rowLogo:
		return s.navigator.Go(nav.Internal{Route: nav.RootRoute})
	}
	return nil
}
