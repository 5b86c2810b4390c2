package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel is one region of the shell: the sidebar or the page content.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Size returns the panel's width and height in a width×height terminal.
func (p Panel) Size(width, height int) (w, h int) {
	_, _, w, h = p.Bounds(width, height)
	return w, h
}
