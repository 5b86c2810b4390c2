package ui

import "slices"

// FocusManager tracks which shell panel receives keys.
type FocusManager struct {
	Current  string   // ID of the focused panel
	Order    []string // Tab order; only panels currently drawn
	OnChange func(from, to string)
}

// SetOrder replaces the tab order. If the focused panel is no longer part of
// it, focus falls to the last panel, which is the page content.
func (f *FocusManager) SetOrder(order []string) {
	f.Order = order
	if len(order) > 0 && !slices.Contains(order, f.Current) {
		f.move(order[len(order)-1])
	}
}

// Next advances focus to the next panel in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	f.move(f.Order[(idx+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous panel in order.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current) - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.move(f.Order[idx])
	return f.Current
}

// SetFocus sets focus to the given panel ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.move(id)
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
