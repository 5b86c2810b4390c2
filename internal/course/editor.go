package course

import (
	"context"
	"errors"
	"fmt"

	"hamgaman/internal/preview"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Previews hands out and revokes preview handles.
// *preview.Registry implements it.
type Previews interface {
	Acquire(path string) (preview.Handle, error)
	Release(h preview.Handle) bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDFunc overrides id generation (tests use deterministic ids).
func WithIDFunc(fn IDFunc) Option {
	return func(e *Editor) { e.newID = fn }
}

// WithTracer overrides the tracer used for save spans.
func WithTracer(t trace.Tracer) Option {
	return func(e *Editor) { e.tracer = t }
}

// Editor keeps one course under interactive edit.
// Every mutation replaces the current snapshot as a whole; unknown ids are no-ops.
// After Teardown the editor is closed and mutations do nothing.
type Editor struct {
	course   Course
	previews Previews
	newID    IDFunc
	tracer   trace.Tracer
	closed   bool
}

// NewEditor starts editing initial, or a fresh empty course when initial is nil.
// Missing ids are generated. Preview handles in initial are dropped since they
// belong to whoever acquired them.
func NewEditor(initial *Course, previews Previews, opts ...Option) *Editor {
	e := &Editor{
		previews: previews,
		newID:    NewID,
		tracer:   otel.Tracer("hamgaman/course"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.previews == nil {
		e.previews = preview.NewRegistry(nil)
	}
	if initial == nil {
		e.course = Course{ID: e.newID(), Chapters: []Chapter{}}
		return e
	}
	c := initial.Normalize(e.newID)
	for i := range c.Chapters {
		for j := range c.Chapters[i].Lessons {
			c.Chapters[i].Lessons[j].Preview = preview.Handle{}
		}
	}
	e.course = c
	return e
}

// Course returns a copy of the current snapshot.
func (e *Editor) Course() Course {
	return e.course.Clone()
}

// Closed reports whether Teardown has run.
func (e *Editor) Closed() bool {
	return e.closed
}

func (e *Editor) apply(next Course) {
	if e.closed {
		return
	}
	e.course = next
}

// SetTitle replaces the course title.
func (e *Editor) SetTitle(title string) {
	e.apply(e.course.WithTitle(title))
}

// SetDescription replaces the course description.
func (e *Editor) SetDescription(desc string) {
	e.apply(e.course.WithDescription(desc))
}

// AddChapter appends an empty chapter and returns its id.
func (e *Editor) AddChapter() string {
	if e.closed {
		return ""
	}
	id := e.newID()
	e.apply(e.course.WithChapter(id))
	return id
}

// RemoveChapter deletes a chapter and releases the previews of all its lessons.
func (e *Editor) RemoveChapter(chapterID string) {
	if e.closed {
		return
	}
	next, removed := e.course.WithoutChapter(chapterID)
	for _, l := range removed {
		e.release(l.Preview)
	}
	e.apply(next)
}

// UpdateChapterTitle replaces one chapter's title.
func (e *Editor) UpdateChapterTitle(chapterID, title string) {
	e.apply(e.course.WithChapterTitle(chapterID, title))
}

// AddLesson appends an empty lesson to the chapter and returns its id.
// Returns false if the chapter does not exist.
func (e *Editor) AddLesson(chapterID string) (string, bool) {
	if e.closed {
		return "", false
	}
	if _, ok := e.course.Chapter(chapterID); !ok {
		return "", false
	}
	id := e.newID()
	e.apply(e.course.WithLesson(chapterID, id))
	return id, true
}

// RemoveLesson deletes a lesson, releasing its preview first.
func (e *Editor) RemoveLesson(chapterID, lessonID string) {
	if e.closed {
		return
	}
	next, removed := e.course.WithoutLesson(chapterID, lessonID)
	if removed != nil {
		e.release(removed.Preview)
	}
	e.apply(next)
}

// UpdateLessonField replaces the lesson title or URL.
// URL edits are ignored while a picked file is attached.
func (e *Editor) UpdateLessonField(chapterID, lessonID string, field LessonField, value string) {
	e.apply(e.course.WithLessonField(chapterID, lessonID, field, value))
}

// SelectVideoFile attaches a picked file to the lesson. A new preview handle
// is acquired, any previous one is released, and the URL is cleared.
// If the file cannot be opened the lesson is left unchanged.
func (e *Editor) SelectVideoFile(chapterID, lessonID string, file VideoFile) error {
	if e.closed {
		return nil
	}
	current, ok := e.course.findLesson(chapterID, lessonID)
	if !ok {
		return nil
	}
	h, err := e.previews.Acquire(file.Path)
	if err != nil {
		return fmt.Errorf("select video file: %w", err)
	}
	e.release(current.Preview)
	e.apply(e.course.WithLessonUpdate(chapterID, lessonID, func(l Lesson) Lesson {
		f := file
		l.VideoFile = &f
		l.VideoURL = ""
		l.Preview = h
		return l
	}))
	return nil
}

// ClearVideoFile detaches the picked file and releases its preview.
// The URL stays as it is, which after SelectVideoFile is empty.
func (e *Editor) ClearVideoFile(chapterID, lessonID string) {
	if e.closed {
		return
	}
	current, ok := e.course.findLesson(chapterID, lessonID)
	if !ok {
		return
	}
	e.release(current.Preview)
	e.apply(e.course.WithLessonUpdate(chapterID, lessonID, func(l Lesson) Lesson {
		l.VideoFile = nil
		l.Preview = preview.Handle{}
		return l
	}))
}

// Validate checks the current snapshot. See Course.Validate.
func (e *Editor) Validate() error {
	return e.course.Validate()
}

// Save validates the snapshot and returns it for persisting.
// The returned course still carries preview handles in memory; they are
// dropped when it is serialized.
func (e *Editor) Save(ctx context.Context) (Course, error) {
	_, span := e.tracer.Start(ctx, "course.save")
	defer span.End()

	summary := e.course.Summary()
	span.SetAttributes(
		attribute.String("course.id", e.course.ID),
		attribute.Int("course.chapters", summary.Chapters),
		attribute.Int("course.lessons", summary.Lessons),
	)

	if err := e.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			span.SetAttributes(attribute.String("course.validation", verr.Err.Error()))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return Course{}, err
	}
	return e.Course(), nil
}

// OutstandingPreviews counts lessons that currently hold a preview handle.
func (e *Editor) OutstandingPreviews() int {
	n := 0
	for _, ch := range e.course.Chapters {
		for _, l := range ch.Lessons {
			if !l.Preview.IsZero() {
				n++
			}
		}
	}
	return n
}

// Teardown releases every outstanding preview handle exactly once and closes
// the editor. Calling it again does nothing.
func (e *Editor) Teardown() {
	if e.closed {
		return
	}
	for i := range e.course.Chapters {
		lessons := e.course.Chapters[i].Lessons
		for j := range lessons {
			e.release(lessons[j].Preview)
			lessons[j].Preview = preview.Handle{}
		}
	}
	e.closed = true
}

func (e *Editor) release(h preview.Handle) {
	if h.IsZero() {
		return
	}
	e.previews.Release(h)
}
