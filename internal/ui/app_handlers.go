package ui

import (
	"hamgaman/internal/course"
	"hamgaman/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSize feeds the new width to the viewport observer and lays the pages out again.
func (a *appModelAdapter) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	a.Viewport.Update(msg.Width)
	a.Sidebar.Height = msg.Height
	a.resize()
	a.syncFocus()
	if fp, ok := topModal[*FilePickerModal](&a.Overlays); ok {
		cmd, _ := a.Overlays.UpdateTop(fp.Sized(msg.Width, msg.Height))
		return a, cmd
	}
	return a, nil
}

// handleKey routes a key to the overlay, a text field, the keybind system,
// or the focused panel, in that order.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a.handleQuit()
	}
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	if a.Focus.Is(FocusContent) && a.capturesInput() {
		return a, a.updateContent(msg)
	}
	if a.KeyHandler != nil {
		a.KeyHandler.Page = a.Page
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}
	if a.Focus.Is(FocusSidebar) {
		_, cmd := a.Sidebar.Update(msg)
		a.syncFocus()
		return a, cmd
	}
	return a, a.updateContent(msg)
}

// handleMouse gives the pointer to the sidebar. On small terminals the top
// row opens the drawer and a click on the backdrop closes it.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.Overlays.Len() > 0 {
		return a, nil
	}
	width, height := a.size()
	leftPress := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if a.Shell.Small() {
		if !a.Shell.Overlay() {
			if leftPress && msg.Y == 0 {
				a.Shell.OpenDrawer()
				a.focusPanel(FocusSidebar)
			}
			return a, nil
		}
		if leftPress && !a.Shell.Bounds(width, height).Contains(msg.X, msg.Y) {
			a.Shell.CloseDrawer()
			a.syncFocus()
			return a, nil
		}
	}
	before := a.Shell.PanelWidth()
	cmd := a.Shell.Mouse(msg, width, height)
	if a.Shell.PanelWidth() != before {
		a.resize()
	}
	a.syncFocus()
	return a, cmd
}

// handleNavigate switches pages. Leaving the manage page tears the editor down.
func (a *appModelAdapter) handleNavigate(msg nav.NavigateMsg) (tea.Model, tea.Cmd) {
	page, ok := PageForRoute(msg.Route)
	if !ok {
		a.Log.Warn("unknown route", "route", msg.Route)
		return a, nil
	}
	if page != PageManage {
		a.closeEditor()
	}
	a.Page = page
	a.Shell.SetRoute(page.Route())
	switch page {
	case PageMyCourses:
		a.Courses.SetCourses(a.Catalog.Courses())
	case PageManage:
		if mv := a.manageList(); mv != nil {
			mv.SetCourses(a.Catalog.Courses())
		}
	}
	a.focusPanel(FocusContent)
	a.Log.Debug("navigate", "route", msg.Route, "page", page.String())
	return a, a.content().Init()
}

// handleNotice shows a blocking notice.
func (a *appModelAdapter) handleNotice(msg nav.NoticeMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.Log.Warn("notice", "text", msg.Text, "error", msg.Err)
	} else {
		a.Log.Info("notice", "text", msg.Text)
	}
	a.Overlays.Push(NewNoticeModal(msg.Text, msg.Err != nil))
	return a, nil
}

// handleDeleteUser removes a confirmed user row.
func (a *appModelAdapter) handleDeleteUser(msg DeleteUserMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	a.Users.Delete(msg.ID)
	a.Log.Info("user deleted", "user_id", msg.ID)
	return a, nil
}

// handleOpenEditor pushes an editor for a stored course, or for a new one.
func (a *appModelAdapter) handleOpenEditor(msg OpenEditorMsg) (tea.Model, tea.Cmd) {
	if _, open := a.editor(); open {
		return a, nil
	}
	var initial course.Course
	if msg.CourseID == "" {
		initial = a.Catalog.NewCourse()
	} else {
		c, ok := a.Catalog.Course(msg.CourseID)
		if !ok {
			return a, nil
		}
		initial = c
	}
	a.Page = PageManage
	a.Shell.SetRoute(PageManage.Route())
	ev := NewEditorView(a.ctx, course.NewEditor(&initial, a.Previews))
	a.Manage.Push(ev)
	a.resize()
	a.focusPanel(FocusContent)
	return a, ev.Init()
}

// handleCourseSaved stores the course and refreshes both course pages.
func (a *appModelAdapter) handleCourseSaved(msg CourseSavedMsg) (tea.Model, tea.Cmd) {
	created := a.Catalog.Upsert(msg.Course)
	a.Log.Info("course saved", "course_id", msg.Course.ID, "created", created)
	if mv := a.manageList(); mv != nil {
		mv.SetCourses(a.Catalog.Courses())
	}
	a.Courses.SetCourses(a.Catalog.Courses())
	return a.handleNotice(nav.NoticeMsg{Text: SavedNotice})
}

// handlePickVideoFile opens the file picker sized to the terminal.
func (a *appModelAdapter) handlePickVideoFile(msg PickVideoFileMsg) (tea.Model, tea.Cmd) {
	modal := NewFilePickerModal(a.PickerDir, msg.ChapterID, msg.LessonID)
	width, height := a.size()
	v, sizeCmd := modal.Update(modal.Sized(width, height))
	a.Overlays.Push(v)
	return a, tea.Batch(modal.Init(), sizeCmd)
}

// handleVideoFilePicked closes the picker and hands the file to the editor.
func (a *appModelAdapter) handleVideoFilePicked(msg VideoFilePickedMsg) (tea.Model, tea.Cmd) {
	if _, ok := topModal[*FilePickerModal](&a.Overlays); ok {
		a.Overlays.Pop()
	}
	ev, ok := a.editor()
	if !ok {
		return a, nil
	}
	_, cmd := ev.Update(msg)
	return a, cmd
}

// handleQuit tears down the editor and playback before quitting.
func (a *appModelAdapter) handleQuit() (tea.Model, tea.Cmd) {
	a.closeEditor()
	a.Courses.Stop()
	a.Shell.Close()
	return a, tea.Quit
}
