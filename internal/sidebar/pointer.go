package sidebar

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Edge is a pointer crossing.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeEnter
	EdgeLeave
)

// Pointer turns a stream of mouse positions into enter/leave edges for one area.
type Pointer struct {
	inside bool
}

// Move records a pointer position and returns the crossing it caused, if any.
func (p *Pointer) Move(x, y int, bounds Rect) Edge {
	in := bounds.Contains(x, y)
	switch {
	case in && !p.inside:
		p.inside = true
		return EdgeEnter
	case !in && p.inside:
		p.inside = false
		return EdgeLeave
	}
	return EdgeNone
}

// Inside reports whether the last position was inside the area.
func (p *Pointer) Inside() bool {
	return p.inside
}
