package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"hamgaman/internal/course"
	"hamgaman/internal/nav"
	"hamgaman/internal/preview"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rows for editorCourse: 0 course title, 1 description, 2 chapter,
// 3 lesson title, 4 lesson source, 5 add lesson, 6 add chapter.
func editorCourse() *course.Course {
	return &course.Course{
		ID:    "c",
		Title: "پایتون",
		Chapters: []course.Chapter{{
			ID:    "ch1",
			Title: "مقدمه",
			Lessons: []course.Lesson{
				{ID: "l1", Title: "نصب", VideoURL: "https://cdn.example.com/1.mp4"},
			},
		}},
	}
}

func newEditorView(t *testing.T, reg *preview.Registry) *EditorView {
	t.Helper()
	n := 0
	ids := course.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("id%d", n)
	})
	v := NewEditorView(context.Background(), course.NewEditor(editorCourse(), reg, ids))
	v.SetSize(100, 30)
	return v
}

func moveTo(t *testing.T, v *EditorView, row int) {
	t.Helper()
	for v.Cursor() < row {
		pressView(v, "down")
	}
	for v.Cursor() > row {
		pressView(v, "up")
	}
	require.Equal(t, row, v.Cursor())
}

func pickedFile(v *EditorView) tea.Cmd {
	_, cmd := v.Update(VideoFilePickedMsg{
		ChapterID: "ch1",
		LessonID:  "l1",
		File:      course.VideoFile{Name: "intro.mp4", Path: "/videos/intro.mp4", Size: 2000},
	})
	return cmd
}

func TestEditorView_EditTitle(t *testing.T) {
	v := newEditorView(t, stubRegistry())

	pressView(v, "enter")
	require.True(t, v.CapturesInput())
	pressView(v, "backspace", "backspace", "backspace")
	typeText(v, "گو")
	pressView(v, "enter")

	assert.False(t, v.CapturesInput())
	assert.Equal(t, "پایگو", v.Editor().Course().Title)
}

func TestEditorView_EscCancelsEdit(t *testing.T) {
	v := newEditorView(t, stubRegistry())
	moveTo(t, v, 2)
	pressView(v, "enter")
	typeText(v, "!!!")
	pressView(v, "esc")

	assert.False(t, v.CapturesInput())
	ch, _ := v.Editor().Course().Chapter("ch1")
	assert.Equal(t, "مقدمه", ch.Title)
}

func TestEditorView_EscOutsideInputCloses(t *testing.T) {
	v := newEditorView(t, stubRegistry())
	_, cmd := pressView(v, "esc")
	require.NotNil(t, cmd)
	assert.IsType(t, CloseEditorMsg{}, cmd())
}

func TestEditorView_AddLessonAndChapter(t *testing.T) {
	v := newEditorView(t, stubRegistry())

	moveTo(t, v, 5)
	pressView(v, "enter")
	ch, _ := v.Editor().Course().Chapter("ch1")
	require.Len(t, ch.Lessons, 2)
	assert.Equal(t, 5, v.Cursor(), "cursor lands on the new lesson title")
	assert.Equal(t, rowLessonTitle, v.rows()[v.Cursor()].kind)

	moveTo(t, v, len(v.rows())-1)
	pressView(v, "enter")
	c := v.Editor().Course()
	require.Len(t, c.Chapters, 2)
	r := v.rows()[v.Cursor()]
	assert.Equal(t, rowChapterTitle, r.kind)
	assert.Equal(t, c.Chapters[1].ID, r.chapterID)
}

func TestEditorView_EditURL(t *testing.T) {
	v := newEditorView(t, stubRegistry())
	moveTo(t, v, 4)
	pressView(v, "enter")
	for range len("https://cdn.example.com/1.mp4") {
		pressView(v, "backspace")
	}
	typeText(v, " https://cdn.example.com/2.mp4 ")
	pressView(v, "tab")

	l, _ := lessonOf(v, "l1")
	assert.Equal(t, "https://cdn.example.com/2.mp4", l.VideoURL)
}

func TestEditorView_PickFile(t *testing.T) {
	reg := stubRegistry()
	v := newEditorView(t, reg)
	moveTo(t, v, 3)

	_, cmd := pressView(v, "f")
	require.NotNil(t, cmd)
	assert.Equal(t, PickVideoFileMsg{ChapterID: "ch1", LessonID: "l1"}, cmd())

	assert.Nil(t, pickedFile(v))
	assert.Equal(t, 4, v.Cursor())
	assert.Equal(t, 1, reg.Outstanding())

	l, _ := lessonOf(v, "l1")
	assert.Empty(t, l.VideoURL)
	require.NotNil(t, l.VideoFile)
	assert.Contains(t, v.View(), "2.0 kB")
	assert.Contains(t, v.View(), "intro.mp4")

	// the URL row is locked while a file is attached
	pressView(v, "enter")
	assert.False(t, v.CapturesInput())

	pressView(v, "x")
	assert.Equal(t, 0, reg.Outstanding())
	l, _ = lessonOf(v, "l1")
	assert.Nil(t, l.VideoFile)
	pressView(v, "enter")
	assert.True(t, v.CapturesInput())
}

func TestEditorView_PickFileOpenFails(t *testing.T) {
	reg := preview.NewRegistry(func(string) (io.Closer, error) { return nil, errors.New("permission denied") })
	v := newEditorView(t, reg)

	cmd := pickedFile(v)
	require.NotNil(t, cmd)
	notice, ok := cmd().(nav.NoticeMsg)
	require.True(t, ok)
	assert.Contains(t, notice.Text, "intro.mp4")
	assert.Error(t, notice.Err)

	l, _ := lessonOf(v, "l1")
	assert.Nil(t, l.VideoFile)
	assert.Equal(t, "https://cdn.example.com/1.mp4", l.VideoURL)
}

func TestEditorView_DeleteChapterReleasesPreviews(t *testing.T) {
	reg := stubRegistry()
	v := newEditorView(t, reg)
	pickedFile(v)
	require.Equal(t, 1, reg.Outstanding())

	moveTo(t, v, 2)
	pressView(v, "d")
	assert.Empty(t, v.Editor().Course().Chapters)
	assert.Equal(t, 0, reg.Outstanding())
	assert.Less(t, v.Cursor(), len(v.rows()))
}

func TestEditorView_DeleteLesson(t *testing.T) {
	v := newEditorView(t, stubRegistry())
	moveTo(t, v, 4)
	pressView(v, "delete")
	ch, _ := v.Editor().Course().Chapter("ch1")
	assert.Empty(t, ch.Lessons)
}

func TestEditorView_SaveInvalidFocusesRow(t *testing.T) {
	v := newEditorView(t, stubRegistry())
	moveTo(t, v, 5)
	pressView(v, "enter") // new lesson, no title
	moveTo(t, v, 0)

	_, cmd := pressView(v, "ctrl+s")
	require.NotNil(t, cmd)
	notice, ok := cmd().(nav.NoticeMsg)
	require.True(t, ok)
	assert.ErrorIs(t, notice.Err, course.ErrEmptyLessonTitle)
	assert.NotEmpty(t, notice.Text)
	assert.Equal(t, 5, v.Cursor())

	// give it a title; the missing source is next
	pressView(v, "enter")
	typeText(v, "متغیرها")
	pressView(v, "enter")
	_, cmd = pressView(v, "s")
	notice = cmd().(nav.NoticeMsg)
	assert.ErrorIs(t, notice.Err, course.ErrMissingVideoSource)
	assert.Equal(t, 6, v.Cursor())
	assert.Equal(t, rowLessonSource, v.rows()[6].kind)
}

func TestEditorView_SaveValid(t *testing.T) {
	v := newEditorView(t, stubRegistry())
	_, cmd := pressView(v, "s")
	require.NotNil(t, cmd)
	saved, ok := cmd().(CourseSavedMsg)
	require.True(t, ok)
	assert.Equal(t, "c", saved.Course.ID)
	assert.False(t, v.Editor().Closed())
}

func TestEditorView_CloseTearsDown(t *testing.T) {
	reg := stubRegistry()
	v := newEditorView(t, reg)
	pickedFile(v)
	v.Close()
	assert.True(t, v.Editor().Closed())
	assert.Equal(t, 0, reg.Outstanding())
	v.Close()
	assert.Equal(t, 0, reg.Outstanding())
}

func TestEditorView_ViewScrollsToCursor(t *testing.T) {
	v := newEditorView(t, stubRegistry())
	v.SetSize(80, 7)
	moveTo(t, v, 5)
	for range 8 {
		pressView(v, "enter") // add lesson focuses the new title
		moveTo(t, v, v.Cursor()+2)
	}
	moveTo(t, v, len(v.rows())-1)
	assert.Contains(t, v.View(), "افزودن فصل")
	assert.NotContains(t, v.View(), "عنوان دوره")
	moveTo(t, v, 0)
	assert.Contains(t, v.View(), "عنوان دوره")
}

func lessonOf(v *EditorView, id string) (course.Lesson, bool) {
	ch, _ := v.Editor().Course().Chapter("ch1")
	return ch.Lesson(id)
}
