package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hamgaman/internal/course"
	"hamgaman/internal/nav"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// SavedNotice is shown after a course passes validation and is stored.
const SavedNotice = "دوره ذخیره شد (برای نمونه در state محلی ذخیره شد)."

type editorRowKind int

const (
	rowCourseTitle editorRowKind = iota
	rowCourseDescription
	rowChapterTitle
	rowLessonTitle
	rowLessonSource
	rowAddLesson
	rowAddChapter
)

// editorRow is one cursor stop in the editor form.
type editorRow struct {
	kind      editorRowKind
	chapterID string
	lessonID  string
	chapterNo int
	lessonNo  int
}

func (r editorRow) textual() bool {
	switch r.kind {
	case rowCourseTitle, rowCourseDescription, rowChapterTitle, rowLessonTitle, rowLessonSource:
		return true
	}
	return false
}

// EditorView edits one course through a course.Editor.
type EditorView struct {
	editor *course.Editor
	ctx    context.Context
	cursor int
	input  textinput.Model
	// editing is true while input holds the value of the row under the cursor.
	editing bool
	// form scrolls so the cursor row stays visible.
	form   viewport.Model
	width  int
	height int
}

// Ensure EditorView implements View.
var _ View = (*EditorView)(nil)

// NewEditorView wraps editor.
func NewEditorView(ctx context.Context, editor *course.Editor) *EditorView {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 200
	ti.Width = 40
	return &EditorView{editor: editor, ctx: ctx, input: ti, form: viewport.New(60, 20)}
}

// Editor returns the wrapped editor.
func (v *EditorView) Editor() *course.Editor {
	return v.editor
}

// Close tears the editor down, releasing every preview it holds.
func (v *EditorView) Close() {
	v.editor.Teardown()
}

// CapturesInput reports whether keys go to a text field.
func (v *EditorView) CapturesInput() bool {
	return v.editing
}

// SetSize fits the form into the content area.
func (v *EditorView) SetSize(width, height int) {
	v.width, v.height = width, height
	v.input.Width = max(width-16, 10)
	v.form.Width = width
	// title and hint lines stay outside the scrolling form
	v.form.Height = max(height-4, 3)
}

// Cursor returns the index of the focused row.
func (v *EditorView) Cursor() int {
	return v.cursor
}

func (v *EditorView) rows() []editorRow {
	c := v.editor.Course()
	rows := []editorRow{{kind: rowCourseTitle}, {kind: rowCourseDescription}}
	for i, ch := range c.Chapters {
		rows = append(rows, editorRow{kind: rowChapterTitle, chapterID: ch.ID, chapterNo: i + 1})
		for j, l := range ch.Lessons {
			base := editorRow{chapterID: ch.ID, lessonID: l.ID, chapterNo: i + 1, lessonNo: j + 1}
			title, source := base, base
			title.kind, source.kind = rowLessonTitle, rowLessonSource
			rows = append(rows, title, source)
		}
		rows = append(rows, editorRow{kind: rowAddLesson, chapterID: ch.ID, chapterNo: i + 1})
	}
	return append(rows, editorRow{kind: rowAddChapter})
}

func (v *EditorView) current() (editorRow, bool) {
	rows := v.rows()
	if v.cursor < 0 || v.cursor >= len(rows) {
		return editorRow{}, false
	}
	return rows[v.cursor], true
}

func (v *EditorView) clampCursor() {
	n := len(v.rows())
	v.cursor = min(max(v.cursor, 0), n-1)
}

// focusRow moves the cursor to the first row matching kind and ids.
func (v *EditorView) focusRow(kind editorRowKind, chapterID, lessonID string) {
	for i, r := range v.rows() {
		if r.kind == kind && r.chapterID == chapterID && r.lessonID == lessonID {
			v.cursor = i
			return
		}
	}
}

// Init implements View.
func (v *EditorView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *EditorView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case VideoFilePickedMsg:
		return v, v.selectFile(msg)
	case tea.KeyMsg:
		if v.editing {
			return v, v.updateInput(msg)
		}
		return v, v.updateKey(msg)
	}
	return v, nil
}

func (v *EditorView) updateKey(msg tea.KeyMsg) tea.Cmd {
	r, _ := v.current()
	switch msg.String() {
	case "up", "k":
		v.cursor--
		v.clampCursor()
	case "down", "j":
		v.cursor++
		v.clampCursor()
	case "enter":
		return v.activate(r)
	case "f":
		if r.lessonID != "" {
			chapterID, lessonID := r.chapterID, r.lessonID
			return func() tea.Msg { return PickVideoFileMsg{ChapterID: chapterID, LessonID: lessonID} }
		}
	case "x":
		if r.lessonID != "" {
			v.editor.ClearVideoFile(r.chapterID, r.lessonID)
		}
	case "d", "delete":
		switch {
		case r.lessonID != "":
			v.editor.RemoveLesson(r.chapterID, r.lessonID)
		case r.kind == rowChapterTitle:
			v.editor.RemoveChapter(r.chapterID)
		}
		v.clampCursor()
	case "ctrl+s", "s":
		return v.save()
	case "esc", "b":
		return func() tea.Msg { return CloseEditorMsg{} }
	}
	return nil
}

func (v *EditorView) activate(r editorRow) tea.Cmd {
	switch r.kind {
	case rowAddChapter:
		id := v.editor.AddChapter()
		v.focusRow(rowChapterTitle, id, "")
		return nil
	case rowAddLesson:
		if id, ok := v.editor.AddLesson(r.chapterID); ok {
			v.focusRow(rowLessonTitle, r.chapterID, id)
		}
		return nil
	}
	if !r.textual() {
		return nil
	}
	value, ok := v.value(r)
	if !ok {
		return nil
	}
	v.editing = true
	v.input.SetValue(value)
	v.input.CursorEnd()
	return v.input.Focus()
}

// value returns the current text of r. Source rows are only editable while
// the lesson has no picked file.
func (v *EditorView) value(r editorRow) (string, bool) {
	c := v.editor.Course()
	switch r.kind {
	case rowCourseTitle:
		return c.Title, true
	case rowCourseDescription:
		return c.Description, true
	case rowChapterTitle:
		ch, ok := c.Chapter(r.chapterID)
		return ch.Title, ok
	case rowLessonTitle, rowLessonSource:
		ch, ok := c.Chapter(r.chapterID)
		if !ok {
			return "", false
		}
		l, ok := ch.Lesson(r.lessonID)
		if !ok {
			return "", false
		}
		if r.kind == rowLessonTitle {
			return l.Title, true
		}
		return l.VideoURL, !l.HasFile()
	}
	return "", false
}

func (v *EditorView) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.stopInput()
		return nil
	case "enter", "tab":
		r, ok := v.current()
		if ok {
			v.commit(r, v.input.Value())
		}
		v.stopInput()
		return nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *EditorView) stopInput() {
	v.editing = false
	v.input.Blur()
	v.input.SetValue("")
}

func (v *EditorView) commit(r editorRow, value string) {
	switch r.kind {
	case rowCourseTitle:
		v.editor.SetTitle(value)
	case rowCourseDescription:
		v.editor.SetDescription(value)
	case rowChapterTitle:
		v.editor.UpdateChapterTitle(r.chapterID, value)
	case rowLessonTitle:
		v.editor.UpdateLessonField(r.chapterID, r.lessonID, course.FieldTitle, value)
	case rowLessonSource:
		v.editor.UpdateLessonField(r.chapterID, r.lessonID, course.FieldVideoURL, strings.TrimSpace(value))
	}
}

func (v *EditorView) selectFile(msg VideoFilePickedMsg) tea.Cmd {
	if err := v.editor.SelectVideoFile(msg.ChapterID, msg.LessonID, msg.File); err != nil {
		return func() tea.Msg {
			return nav.NoticeMsg{Text: "فایل ویدیو باز نشد: " + msg.File.Name, Err: err}
		}
	}
	v.focusRow(rowLessonSource, msg.ChapterID, msg.LessonID)
	return nil
}

func (v *EditorView) save() tea.Cmd {
	saved, err := v.editor.Save(v.ctx)
	if err != nil {
		var verr *course.ValidationError
		if !errors.As(err, &verr) {
			return func() tea.Msg { return nav.NoticeMsg{Text: err.Error(), Err: err} }
		}
		v.focusInvalid(verr)
		return func() tea.Msg { return nav.NoticeMsg{Text: verr.Message(), Err: err} }
	}
	return func() tea.Msg { return CourseSavedMsg{Course: saved} }
}

// focusInvalid puts the cursor on the row that failed validation.
func (v *EditorView) focusInvalid(verr *course.ValidationError) {
	switch {
	case errors.Is(verr, course.ErrEmptyCourseTitle):
		v.focusRow(rowCourseTitle, "", "")
	case errors.Is(verr, course.ErrEmptyChapterTitle):
		v.focusRow(rowChapterTitle, verr.ChapterID, "")
	case errors.Is(verr, course.ErrEmptyLessonTitle):
		v.focusRow(rowLessonTitle, verr.ChapterID, verr.LessonID)
	case errors.Is(verr, course.ErrMissingVideoSource):
		v.focusRow(rowLessonSource, verr.ChapterID, verr.LessonID)
	}
}

// View implements View.
func (v *EditorView) View() string {
	c := v.editor.Course()
	heading := "ویرایش دوره"
	if c.Title != "" {
		heading += ": " + c.Title
	}

	var lines []string
	cursorLine := 0
	for i, r := range v.rows() {
		selected := i == v.cursor
		var line string
		if selected && v.editing {
			line = v.label(r) + v.input.View()
		} else {
			line = v.label(r) + v.display(c, r)
		}
		if r.kind == rowChapterTitle {
			lines = append(lines, "")
		}
		if selected {
			cursorLine = len(lines)
			lines = append(lines, Styles.Selected.Render("▸ ")+line)
		} else {
			lines = append(lines, "  "+line)
		}
	}
	v.form.SetContent(strings.Join(lines, "\n"))
	if cursorLine < v.form.YOffset {
		v.form.SetYOffset(cursorLine)
	} else if cursorLine >= v.form.YOffset+v.form.Height {
		v.form.SetYOffset(cursorLine - v.form.Height + 1)
	}

	return Styles.Title.Render(heading) + "\n\n" + v.form.View() + "\n" +
		Styles.Hint.Render("Enter: ویرایش/افزودن  f: انتخاب فایل  x: حذف فایل  d: حذف  s: ذخیره  Esc: بازگشت")
}

func (v *EditorView) label(r editorRow) string {
	switch r.kind {
	case rowCourseTitle:
		return Styles.Muted.Render("عنوان دوره: ")
	case rowCourseDescription:
		return Styles.Muted.Render("توضیحات: ")
	case rowChapterTitle:
		return Styles.Section.Render(fmt.Sprintf("فصل %d: ", r.chapterNo))
	case rowLessonTitle:
		return "    " + Styles.Muted.Render(fmt.Sprintf("درس %d: ", r.lessonNo))
	case rowLessonSource:
		return "      " + Styles.Muted.Render("ویدیو: ")
	}
	return ""
}

func (v *EditorView) display(c course.Course, r editorRow) string {
	switch r.kind {
	case rowAddLesson:
		return "    " + Styles.Status.Render("+ افزودن درس")
	case rowAddChapter:
		return Styles.Status.Render("+ افزودن فصل")
	case rowLessonSource:
		ch, _ := c.Chapter(r.chapterID)
		l, _ := ch.Lesson(r.lessonID)
		if l.HasFile() {
			s := fmt.Sprintf("%s (%s)", l.VideoFile.Name, humanize.Bytes(uint64(max(l.VideoFile.Size, 0))))
			if !l.Preview.IsZero() {
				s += " " + Styles.Success.Render("✓")
			}
			return s
		}
	}
	value, _ := v.value(r)
	if value == "" {
		return Styles.Empty.Render("(خالی)")
	}
	return value
}
