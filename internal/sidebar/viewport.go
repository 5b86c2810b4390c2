package sidebar

import "sync"

// Viewport classifies the terminal width as small or not against a fixed
// breakpoint and notifies subscribers when the classification changes.
type Viewport struct {
	mu         sync.Mutex
	breakpoint int
	width      int
	small      bool
	nextID     int
	subs       map[int]func(small bool)
}

// NewViewport returns a viewport that treats widths below breakpoint as small.
// Until the first Update it reports not small.
func NewViewport(breakpoint int) *Viewport {
	return &Viewport{breakpoint: breakpoint, subs: map[int]func(bool){}}
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (v *Viewport) Subscribe(fn func(small bool)) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

// Update records a new width. Subscribers are called, outside the lock, only
// when the small/not-small classification flips.
func (v *Viewport) Update(width int) {
	v.mu.Lock()
	v.width = width
	small := width < v.breakpoint
	if small == v.small {
		v.mu.Unlock()
		return
	}
	v.small = small
	fns := make([]func(bool), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(small)
	}
}

// Small reports the current classification.
func (v *Viewport) Small() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.small
}

// Width returns the last width passed to Update.
func (v *Viewport) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// Subscribers returns the number of registered callbacks.
func (v *Viewport) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}
