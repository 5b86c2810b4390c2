package course

import (
	"errors"
	"strings"
)

// Validation failures, in the order they are checked.
var (
	ErrEmptyCourseTitle   = errors.New("empty course title")
	ErrEmptyChapterTitle  = errors.New("empty chapter title")
	ErrEmptyLessonTitle   = errors.New("empty lesson title")
	ErrMissingVideoSource = errors.New("missing video source")
)

// messages are the user-facing texts shown when a save is blocked.
var messages = map[error]string{
	ErrEmptyCourseTitle:   "عنوان دوره را وارد کنید.",
	ErrEmptyChapterTitle:  "عنوان یک یا چند فصل خالی است.",
	ErrEmptyLessonTitle:   "عنوان یک یا چند درس خالی است.",
	ErrMissingVideoSource: "برای هر درس آدرس یا فایل ویدیویی تعیین کنید.",
}

// ValidationError is the first violation found in a course.
type ValidationError struct {
	Err       error
	ChapterID string // empty for course-level failures
	LessonID  string // empty unless a lesson failed
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validate course")
	if e.ChapterID != "" {
		b.WriteString(" chapter " + e.ChapterID)
	}
	if e.LessonID != "" {
		b.WriteString(" lesson " + e.LessonID)
	}
	b.WriteString(": " + e.Err.Error())
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Message returns the Persian text for the blocking notice.
func (e *ValidationError) Message() string {
	return messages[e.Err]
}

// Validate returns the first violation in course → chapters → lessons order,
// or nil when the course can be saved.
func (c Course) Validate() error {
	if blank(c.Title) {
		return &ValidationError{Err: ErrEmptyCourseTitle}
	}
	for _, ch := range c.Chapters {
		if blank(ch.Title) {
			return &ValidationError{Err: ErrEmptyChapterTitle, ChapterID: ch.ID}
		}
		for _, l := range ch.Lessons {
			if blank(l.Title) {
				return &ValidationError{Err: ErrEmptyLessonTitle, ChapterID: ch.ID, LessonID: l.ID}
			}
			if l.VideoURL == "" && l.VideoFile == nil {
				return &ValidationError{Err: ErrMissingVideoSource, ChapterID: ch.ID, LessonID: l.ID}
			}
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
