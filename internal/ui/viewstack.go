package ui

// ViewStack is the drill-down navigation of one page: the page's root view
// at the bottom and detail views pushed above it (course list → editor).
type ViewStack struct {
	Stack []View
}

// Push opens v above the current top.
func (s *ViewStack) Push(v View) {
	s.Stack = append(s.Stack, v)
}

// Pop removes and returns the top view.
// Returns nil if the stack is empty.
func (s *ViewStack) Pop() View {
	if len(s.Stack) == 0 {
		return nil
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top
}

// Back leaves the top detail view and closes it if it holds resources.
// The root view is never popped. Returns false when only the root is left.
func (s *ViewStack) Back() bool {
	if len(s.Stack) <= 1 {
		return false
	}
	if c, ok := s.Pop().(Closer); ok {
		c.Close()
	}
	return true
}

// Peek returns the top view without removing it.
func (s *ViewStack) Peek() View {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// Root returns the bottom view.
func (s *ViewStack) Root() View {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[0]
}

// ReplaceTop swaps the top view for the one an Update returned.
func (s *ViewStack) ReplaceTop(v View) {
	if len(s.Stack) == 0 {
		return
	}
	s.Stack[len(s.Stack)-1] = v
}

// Len returns the number of views in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}
