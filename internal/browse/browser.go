// Package browse implements the read-only course browser: a course list,
// the chapters of the selected course as an accordion, and the selected lesson.
package browse

import "hamgaman/internal/course"

// Prompt texts shown when a pane has nothing to show.
const (
	PromptSelectCourse = "لطفا یک دوره را انتخاب کنید"
	PromptSelectLesson = "لطفا یک درس را انتخاب کنید تا ویدیو نمایش داده شود"
)

// Browser holds three cascading selections. The zero value is not usable; use New.
type Browser struct {
	courses  []course.Course
	selected string          // course id, empty when none
	expanded map[string]bool // chapter id → expanded
	lesson   *lessonRef
}

type lessonRef struct {
	chapterID string
	lessonID  string
}

// New returns a browser over courses with nothing selected.
func New(courses []course.Course) *Browser {
	cs := make([]course.Course, len(courses))
	for i, c := range courses {
		cs[i] = c.Clone()
	}
	return &Browser{courses: cs, expanded: map[string]bool{}}
}

// Courses returns the browsable courses in order.
func (b *Browser) Courses() []course.Course {
	return b.courses
}

// SetCourses replaces the course list. A selection that no longer exists is dropped.
func (b *Browser) SetCourses(courses []course.Course) {
	b.courses = make([]course.Course, len(courses))
	for i, c := range courses {
		b.courses[i] = c.Clone()
	}
	if _, ok := b.find(b.selected); !ok {
		b.reset("")
		return
	}
	if b.lesson != nil {
		if _, ok := b.SelectedLesson(); !ok {
			b.lesson = nil
		}
	}
}

// SelectCourse replaces the selected course and clears chapter expansion and the
// selected lesson, also when the same course is selected again. Unknown ids are ignored.
func (b *Browser) SelectCourse(id string) {
	if _, ok := b.find(id); !ok {
		return
	}
	b.reset(id)
}

func (b *Browser) reset(id string) {
	b.selected = id
	b.expanded = map[string]bool{}
	b.lesson = nil
}

// ToggleChapter flips one chapter of the selected course between expanded and collapsed.
func (b *Browser) ToggleChapter(chapterID string) {
	c, ok := b.SelectedCourse()
	if !ok {
		return
	}
	if _, ok := c.Chapter(chapterID); !ok {
		return
	}
	b.expanded[chapterID] = !b.expanded[chapterID]
}

// IsExpanded reports whether the chapter is expanded. Chapters start collapsed.
func (b *Browser) IsExpanded(chapterID string) bool {
	return b.expanded[chapterID]
}

// ExpandedCount returns how many chapters are expanded.
func (b *Browser) ExpandedCount() int {
	n := 0
	for _, v := range b.expanded {
		if v {
			n++
		}
	}
	return n
}

// SelectLesson selects a lesson of the selected course. Expansion is untouched.
func (b *Browser) SelectLesson(chapterID, lessonID string) {
	c, ok := b.SelectedCourse()
	if !ok {
		return
	}
	ch, ok := c.Chapter(chapterID)
	if !ok {
		return
	}
	if _, ok := ch.Lesson(lessonID); !ok {
		return
	}
	b.lesson = &lessonRef{chapterID: chapterID, lessonID: lessonID}
}

// SelectedCourse returns the selected course.
func (b *Browser) SelectedCourse() (course.Course, bool) {
	return b.find(b.selected)
}

// SelectedLesson returns the selected lesson.
func (b *Browser) SelectedLesson() (course.Lesson, bool) {
	if b.lesson == nil {
		return course.Lesson{}, false
	}
	c, ok := b.SelectedCourse()
	if !ok {
		return course.Lesson{}, false
	}
	ch, ok := c.Chapter(b.lesson.chapterID)
	if !ok {
		return course.Lesson{}, false
	}
	return ch.Lesson(b.lesson.lessonID)
}

// Detail returns the prompt for the chapter pane, or "" when a course is selected.
func (b *Browser) Detail() string {
	if _, ok := b.SelectedCourse(); ok {
		return ""
	}
	return PromptSelectCourse
}

// Preview returns the prompt for the preview pane, or "" when a lesson is selected.
func (b *Browser) Preview() string {
	if _, ok := b.SelectedLesson(); ok {
		return ""
	}
	return PromptSelectLesson
}

func (b *Browser) find(id string) (course.Course, bool) {
	if id == "" {
		return course.Course{}, false
	}
	for _, c := range b.courses {
		if c.ID == id {
			return c, true
		}
	}
	return course.Course{}, false
}
