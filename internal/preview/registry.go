// Package preview tracks transient preview handles for video files that were
// picked in the course editor but not saved yet. A handle pins the opened file
// until it is released; every handle must be released exactly once.
package preview

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Handle is a revocable reference to a picked file.
// The zero Handle is "no preview".
type Handle struct {
	ID   string
	Path string
}

// IsZero reports whether h refers to nothing.
func (h Handle) IsZero() bool {
	return h.ID == ""
}

// String returns the handle in the "preview://<id>" form shown in the UI.
func (h Handle) String() string {
	if h.IsZero() {
		return ""
	}
	return "preview://" + h.ID
}

// Opener opens the file backing a handle.
// In production this is os.Open; tests can inject a stub.
type Opener func(path string) (io.Closer, error)

func openFile(path string) (io.Closer, error) {
	return os.Open(path)
}

type entry struct {
	handle     Handle
	closer     io.Closer
	acquiredAt time.Time
}

// Registry owns every outstanding handle.
// Safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries map[string]entry
	open    Opener
}

// NewRegistry creates a Registry. If open is nil, files are opened with os.Open.
func NewRegistry(open Opener) *Registry {
	if open == nil {
		open = openFile
	}
	return &Registry{
		entries: make(map[string]entry),
		open:    open,
	}
}

// Acquire opens path and returns a fresh handle for it.
func (r *Registry) Acquire(path string) (Handle, error) {
	c, err := r.open(path)
	if err != nil {
		return Handle{}, fmt.Errorf("preview %q: %w", path, err)
	}
	h := Handle{ID: uuid.NewString(), Path: path}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[h.ID] = entry{handle: h, closer: c, acquiredAt: time.Now()}
	return h, nil
}

// Release closes the file behind h.
// Returns false if h is unknown or was already released; nothing is closed twice.
func (r *Registry) Release(h Handle) bool {
	if h.IsZero() {
		return false
	}
	r.mu.Lock()
	e, ok := r.entries[h.ID]
	if ok {
		delete(r.entries, h.ID)
	}
	r.mu.Unlock()
	if !ok {
		return false
	}
	_ = e.closer.Close() // close errors on a read-only file carry nothing actionable
	return true
}

// Path returns the file path for a live handle.
func (r *Registry) Path(h Handle) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[h.ID]
	if !ok {
		return "", false
	}
	return e.handle.Path, true
}

// Outstanding returns the number of handles not yet released.
func (r *Registry) Outstanding() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// ReleaseAll releases every outstanding handle and returns how many were released.
func (r *Registry) ReleaseAll() int {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]entry)
	r.mu.Unlock()
	for _, e := range entries {
		_ = e.closer.Close()
	}
	return len(entries)
}
