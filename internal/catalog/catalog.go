// Package catalog holds the sample courses and users the console starts with,
// and keeps saved courses for the rest of the session.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"hamgaman/internal/course"
	"hamgaman/internal/preview"
	"hamgaman/internal/roster"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the on-disk shape of a catalog file.
type Seed struct {
	Courses []course.Course `yaml:"courses"`
	Users   []roster.User   `yaml:"users"`
}

// Parse decodes a seed document.
func Parse(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	for _, u := range s.Users {
		if err := roster.Validate(u); err != nil {
			return Seed{}, fmt.Errorf("parse seed: user %s: %w", u.ID, err)
		}
	}
	return s, nil
}

// Default returns the embedded sample data.
func Default() Seed {
	s, err := Parse(seedYAML)
	if err != nil {
		// The embedded file is part of the binary; failing here is a build defect.
		panic(err)
	}
	return s
}

// Load reads a seed file, or the embedded one when path is empty.
func Load(path string) (Seed, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(data)
}

// Store is the session's course list. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	courses []course.Course
	newID   course.IDFunc
}

// NewStore returns a store holding copies of courses.
func NewStore(courses []course.Course) *Store {
	s := &Store{newID: course.NewID}
	for _, c := range courses {
		s.courses = append(s.courses, c.Normalize(s.newID))
	}
	return s
}

// Courses returns copies of every course in order.
func (s *Store) Courses() []course.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]course.Course, len(s.courses))
	for i, c := range s.courses {
		out[i] = c.Clone()
	}
	return out
}

// Len returns the number of courses.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.courses)
}

// Course returns a copy of the course with the given id.
func (s *Store) Course(id string) (course.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return course.Course{}, false
}

// NewCourse returns an unsaved course titled course.NewCourseTitle.
// It is only stored once it is passed to Upsert.
func (s *Store) NewCourse() course.Course {
	return course.Course{ID: s.newID(), Title: course.NewCourseTitle, Chapters: []course.Chapter{}}
}

// Upsert replaces the course with the same id, or appends it.
// Preview handles are editor state and are not kept.
func (s *Store) Upsert(c course.Course) (created bool) {
	c = stripPreviews(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID == c.ID {
			s.courses[i] = c
			return false
		}
	}
	s.courses = append(s.courses, c)
	return true
}

// Export writes every course as indented JSON.
func (s *Store) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s.Courses()); err != nil {
		return fmt.Errorf("export courses: %w", err)
	}
	return nil
}

func stripPreviews(c course.Course) course.Course {
	out := c.Clone()
	for i := range out.Chapters {
		for j := range out.Chapters[i].Lessons {
			out.Chapters[i].Lessons[j].Preview = preview.Handle{}
		}
	}
	return out
}
