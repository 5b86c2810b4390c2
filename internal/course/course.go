// Package course holds the course aggregate (course → chapters → lessons) and
// the editor that mutates it.
//
// Operations on Course values are pure: they return a new snapshot and never
// modify the receiver. The Editor applies them one at a time and owns the side
// effects that come with lessons, namely releasing preview handles.
package course

import (
	"hamgaman/internal/preview"

	"github.com/google/uuid"
)

// NewCourseTitle is the title given to courses created from the course list.
const NewCourseTitle = "دوره جدید"

// Course is the aggregate root. Identity is ID.
type Course struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Chapters    []Chapter `json:"chapters" yaml:"chapters"`
}

// Chapter is owned by exactly one Course.
type Chapter struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Lessons []Lesson `json:"lessons" yaml:"lessons"`
}

// VideoFile is a picked video file that has not been uploaded anywhere.
type VideoFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Lesson is owned by exactly one Chapter.
// At most one of VideoURL and VideoFile is the playback source; setting the
// file clears the URL.
type Lesson struct {
	ID        string         `yaml:"id"`
	Title     string         `yaml:"title"`
	VideoURL  string         `yaml:"video_url"`
	VideoFile *VideoFile     `yaml:"-"`
	Preview   preview.Handle `yaml:"-"`
}

// IDFunc generates fresh entity ids.
type IDFunc func() string

// NewID is the default IDFunc.
func NewID() string {
	return uuid.NewString()
}

// Summary holds the counts shown on a course card.
type Summary struct {
	Chapters int
	Lessons  int
}

// Summary counts chapters and lessons.
func (c Course) Summary() Summary {
	s := Summary{Chapters: len(c.Chapters)}
	for _, ch := range c.Chapters {
		s.Lessons += len(ch.Lessons)
	}
	return s
}

// Chapter returns the chapter with the given id.
func (c Course) Chapter(id string) (Chapter, bool) {
	for _, ch := range c.Chapters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Chapter{}, false
}

// Lesson returns the lesson with the given id.
func (ch Chapter) Lesson(id string) (Lesson, bool) {
	for _, l := range ch.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// HasFile reports whether a picked file is the lesson's playback source.
func (l Lesson) HasFile() bool {
	return l.VideoFile != nil
}

// ActiveSource returns what a player should open: the picked file when there is
// one, otherwise the URL. Empty means the lesson has no source.
func (l Lesson) ActiveSource() string {
	if l.VideoFile != nil {
		if l.Preview.Path != "" {
			return l.Preview.Path
		}
		return l.VideoFile.Path
	}
	return l.VideoURL
}

// Clone returns a deep copy. Picked files are copied by value; preview handles
// are plain references and keep pointing at the same registry entry.
func (c Course) Clone() Course {
	out := c
	if c.Chapters == nil {
		return out
	}
	out.Chapters = make([]Chapter, len(c.Chapters))
	for i, ch := range c.Chapters {
		out.Chapters[i] = ch.clone()
	}
	return out
}

func (ch Chapter) clone() Chapter {
	out := ch
	if ch.Lessons == nil {
		return out
	}
	out.Lessons = make([]Lesson, len(ch.Lessons))
	for i, l := range ch.Lessons {
		out.Lessons[i] = l.clone()
	}
	return out
}

func (l Lesson) clone() Lesson {
	out := l
	if l.VideoFile != nil {
		f := *l.VideoFile
		out.VideoFile = &f
	}
	return out
}
