package ui

import (
	"fmt"

	"hamgaman/internal/course"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// courseItem implements list.Item for a course card.
type courseItem struct {
	course course.Course
}

func (c courseItem) FilterValue() string { return c.course.Title }
func (c courseItem) Title() string {
	if c.course.Title == "" {
		return "(بدون عنوان)"
	}
	return c.course.Title
}
func (c courseItem) Description() string {
	s := c.course.Summary()
	line := fmt.Sprintf("%d فصل، %d درس", s.Chapters, s.Lessons)
	if c.course.Description != "" {
		line = c.course.Description + " · " + line
	}
	return line
}

// ManageView lists course cards; Enter opens a card in the editor.
type ManageView struct {
	list list.Model
}

// Ensure ManageView implements View.
var _ View = (*ManageView)(nil)

// NewManageView creates the course list.
func NewManageView(courses []course.Course) *ManageView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "مدیریت دوره ها"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	v := &ManageView{list: l}
	v.SetCourses(courses)
	return v
}

// SetCourses replaces the cards, keeping the cursor where possible.
func (v *ManageView) SetCourses(courses []course.Course) {
	items := make([]list.Item, len(courses))
	for i, c := range courses {
		items[i] = courseItem{course: c}
	}
	idx := v.list.Index()
	v.list.SetItems(items)
	if idx >= len(items) && len(items) > 0 {
		idx = len(items) - 1
	}
	v.list.Select(idx)
}

// Selected returns the course under the cursor.
func (v *ManageView) Selected() (course.Course, bool) {
	it, ok := v.list.SelectedItem().(courseItem)
	if !ok {
		return course.Course{}, false
	}
	return it.course, true
}

// SetSize fits the list into the content area.
func (v *ManageView) SetSize(width, height int) {
	v.list.SetSize(width, max(height-2, 4))
}

// Init implements View.
func (v *ManageView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ManageView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "e":
			if c, ok := v.Selected(); ok {
				id := c.ID
				return v, func() tea.Msg { return OpenEditorMsg{CourseID: id} }
			}
			return v, nil
		case "n", "a":
			return v, func() tea.Msg { return OpenEditorMsg{} }
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ManageView) View() string {
	if v.list.Width() == 0 {
		v.list.SetSize(60, 16)
	}
	out := v.list.View()
	if len(v.list.Items()) == 0 {
		out += "\n" + Styles.Empty.Render("دوره ای وجود ندارد")
	}
	return out + "\n" + Styles.Hint.Render("Enter: ویرایش  n: دوره جدید")
}
