package ui

import (
	"context"
	"io"
	"strings"
	"testing"

	"hamgaman/internal/catalog"
	"hamgaman/internal/course"
	"hamgaman/internal/nav"
	"hamgaman/internal/player"
	"hamgaman/internal/preview"
	"hamgaman/internal/roster"
	"hamgaman/internal/sidebar"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func stubRegistry() *preview.Registry {
	return preview.NewRegistry(func(string) (io.Closer, error) { return nopCloser{}, nil })
}

// fakePlayer records sessions without starting processes.
type fakePlayer struct {
	played  []string
	stopped int
	playing string
	resized []player.Size
	done    chan struct{}
}

func (p *fakePlayer) Play(source string) (<-chan struct{}, error) {
	if source == "" {
		return nil, player.ErrNoSource
	}
	p.played = append(p.played, source)
	p.playing = source
	p.done = make(chan struct{})
	return p.done, nil
}

func (p *fakePlayer) Playing() (string, bool) { return p.playing, p.playing != "" }

func (p *fakePlayer) Stop() {
	p.stopped++
	p.playing = ""
}

func (p *fakePlayer) Resize(s player.Size) { p.resized = append(p.resized, s) }

func testCourses() []course.Course {
	return []course.Course{
		{
			ID:    "c1",
			Title: "برنامه نویسی Go",
			Chapters: []course.Chapter{
				{ID: "ch1", Title: "مقدمه", Lessons: []course.Lesson{
					{ID: "l1", Title: "نصب", VideoURL: "https://example.com/install.mp4"},
					{ID: "l2", Title: "سلام دنیا", VideoURL: "https://example.com/hello.mp4"},
				}},
			},
		},
		{
			ID:    "c2",
			Title: "پایگاه داده",
			Chapters: []course.Chapter{
				{ID: "ch1", Title: "فصل اول", Lessons: []course.Lesson{
					{ID: "l1", Title: "بدون ویدیو"},
				}},
			},
		},
	}
}

func testUsers() []roster.User {
	return []roster.User{
		{ID: "u1", Name: "علی", Email: "ali@example.com", Role: roster.RoleStudent},
		{ID: "u2", Name: "سارا", Email: "sara@example.com", Role: roster.RoleTeacher},
	}
}

type testApp struct {
	*AppModel
	model    tea.Model
	previews *preview.Registry
	player   *fakePlayer
}

func newTestApp(t *testing.T, route string, width int) *testApp {
	t.Helper()
	reg := stubRegistry()
	p := &fakePlayer{}
	a := NewAppModel(Deps{
		Context:  context.Background(),
		Catalog:  catalog.NewStore(testCourses()),
		Roster:   roster.New(testUsers()),
		Previews: reg,
		Player:   p,
		Route:    route,
	})
	m := a.AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: width, Height: 40})
	return &testApp{AppModel: a, model: m, previews: reg, player: p}
}

// feedable lists the messages the app produces for itself. Anything else
// (cursor blinks, directory reads, playback waits) is not run by drain.
func feedable(msg tea.Msg) bool {
	switch msg.(type) {
	case nav.NavigateMsg, nav.NoticeMsg, DismissModalMsg, QuitMsg,
		ToggleSidebarMsg, OpenDrawerMsg, LogoutMsg, FocusNextMsg, FocusPrevMsg,
		ConfirmDeleteUserMsg, DeleteUserMsg, OpenEditorMsg, CloseEditorMsg,
		CourseSavedMsg, PickVideoFileMsg, VideoFilePickedMsg:
		return true
	}
	return false
}

// send delivers msg and then every app message its commands produce.
// It returns the produced messages in order.
func (ta *testApp) send(msg tea.Msg) []tea.Msg {
	_, cmd := ta.model.Update(msg)
	return ta.drain(cmd)
}

func (ta *testApp) drain(cmd tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 && len(seen) < 50 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			seen = append(seen, msg)
		default:
			if !feedable(msg) {
				continue
			}
			seen = append(seen, msg)
			_, next := ta.model.Update(msg)
			queue = append(queue, next)
		}
	}
	return seen
}

// press sends keys one at a time.
func (ta *testApp) press(keys ...string) []tea.Msg {
	var seen []tea.Msg
	for _, k := range keys {
		seen = append(seen, ta.send(keyMsg(k))...)
	}
	return seen
}

func (ta *testApp) topOverlay(t *testing.T) View {
	t.Helper()
	top, ok := ta.Overlays.Peek()
	require.True(t, ok, "expected an overlay")
	return top.View
}

func TestNewAppModel_StartRoute(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteUsers, 160)
	assert.Equal(t, PageUsers, ta.Page)
	assert.Equal(t, sidebar.RouteUsers, ta.Shell.Route())

	ta = newTestApp(t, "/nowhere", 160)
	assert.Equal(t, PageMyCourses, ta.Page)
}

func TestNewAppModel_Defaults(t *testing.T) {
	a := NewAppModel(Deps{})
	assert.NotNil(t, a.Catalog)
	assert.NotNil(t, a.Roster)
	assert.Equal(t, 2, a.Catalog.Len())
	assert.Equal(t, FocusContent, a.Focus.Current)
}

func TestPageForRoute(t *testing.T) {
	tests := []struct {
		route string
		page  Page
		ok    bool
	}{
		{sidebar.RouteUsers, PageUsers, true},
		{sidebar.RouteManage, PageManage, true},
		{sidebar.RouteMyCourses, PageMyCourses, true},
		{nav.RootRoute, PageMyCourses, true},
		{"/other", PageMyCourses, false},
	}
	for _, tt := range tests {
		page, ok := PageForRoute(tt.route)
		assert.Equal(t, tt.page, page, tt.route)
		assert.Equal(t, tt.ok, ok, tt.route)
	}
	for _, p := range []Page{PageUsers, PageManage, PageMyCourses} {
		back, ok := PageForRoute(p.Route())
		assert.True(t, ok)
		assert.Equal(t, p, back)
	}
}

func TestLeaderKeysNavigate(t *testing.T) {
	ta := newTestApp(t, "", 160)

	ta.press(" ", "u")
	assert.Equal(t, PageUsers, ta.Page)
	assert.Equal(t, sidebar.RouteUsers, ta.Shell.Route())

	ta.press(" ", "m")
	assert.Equal(t, PageManage, ta.Page)

	ta.press(" ", "c")
	assert.Equal(t, PageMyCourses, ta.Page)
}

func TestSidebarFocusAndActivate(t *testing.T) {
	ta := newTestApp(t, "", 160)

	ta.press("tab")
	require.Equal(t, FocusSidebar, ta.Focus.Current)
	assert.True(t, ta.Shell.Focused())

	// first item is the users page
	msgs := ta.press("enter")
	require.NotEmpty(t, msgs)
	assert.Equal(t, nav.NavigateMsg{Route: sidebar.RouteUsers}, msgs[0])
	assert.Equal(t, PageUsers, ta.Page)
	assert.Equal(t, FocusContent, ta.Focus.Current)
	assert.False(t, ta.Shell.Focused())

	ta.press("shift+tab")
	assert.Equal(t, FocusSidebar, ta.Focus.Current)
}

func TestToggleSidebarResizesContent(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteUsers, 160)
	require.False(t, ta.Shell.State().Collapsed)
	_, _, before, _ := ta.layout().contentBounds(160, 40)

	ta.press(" ", "t")
	assert.True(t, ta.Shell.State().Collapsed)
	_, _, after, _ := ta.layout().contentBounds(160, 40)
	assert.Greater(t, after, before)
	assert.Equal(t, 160-ta.Shell.Options().CollapsedWidth, after)
}

func TestSmallTerminalDrawer(t *testing.T) {
	ta := newTestApp(t, "", 80)
	require.True(t, ta.Shell.Small())
	assert.Equal(t, []string{FocusContent}, ta.layout().FocusOrder())

	ta.press(" ", "o")
	require.True(t, ta.Shell.State().DrawerOpen)
	assert.Equal(t, FocusSidebar, ta.Focus.Current)

	// rtl: the drawer is on the right, so the left edge is backdrop
	ta.send(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, ta.Shell.State().DrawerOpen)
	assert.Equal(t, FocusContent, ta.Focus.Current)

	// the top row opens it again
	ta.send(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, ta.Shell.State().DrawerOpen)
}

func TestDrawerClosesAfterNavigation(t *testing.T) {
	ta := newTestApp(t, "", 80)
	ta.press(" ", "o")
	require.Equal(t, FocusSidebar, ta.Focus.Current)

	ta.press("down", "enter") // manage page
	assert.Equal(t, PageManage, ta.Page)
	assert.False(t, ta.Shell.State().DrawerOpen)
	assert.Equal(t, FocusContent, ta.Focus.Current)
}

func TestResizeAcrossBreakpointKeepsState(t *testing.T) {
	ta := newTestApp(t, "", 160)
	ta.press(" ", "t")
	require.True(t, ta.Shell.State().Collapsed)

	ta.send(tea.WindowSizeMsg{Width: 80, Height: 40})
	ta.press(" ", "o")
	ta.send(tea.WindowSizeMsg{Width: 160, Height: 40})

	st := ta.Shell.State()
	assert.True(t, st.Collapsed)
	assert.True(t, st.DrawerOpen)
	assert.False(t, ta.Shell.Small())
}

func TestLogoutShowsNotice(t *testing.T) {
	ta := newTestApp(t, "", 160)
	ta.press(" ", "l")
	notice, ok := ta.topOverlay(t).(*NoticeModal)
	require.True(t, ok)
	assert.Equal(t, sidebar.LogoutNotice, notice.Text)

	ta.press("enter")
	assert.Equal(t, 0, ta.Overlays.Len())
}

func TestDeleteUserNeedsConfirmation(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteUsers, 160)

	ta.press("d")
	confirm, ok := ta.topOverlay(t).(*ConfirmModal)
	require.True(t, ok)
	assert.Equal(t, DeleteRowPrompt, confirm.Label)

	ta.press("esc")
	assert.Equal(t, 0, ta.Overlays.Len())
	assert.Equal(t, 2, ta.Roster.Len())

	ta.press("d", "y")
	assert.Equal(t, 0, ta.Overlays.Len())
	assert.Equal(t, 1, ta.Roster.Len())
	_, ok = ta.Roster.Get("u1")
	assert.False(t, ok)
}

func TestInputCaptureBypassesLeader(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteUsers, 160)
	ta.press("a")
	_, editing := ta.Users.Editing()
	require.True(t, editing)

	ta.press(" ", "u", "q")
	assert.False(t, ta.KeyHandler.LeaderWaiting)
	assert.Equal(t, PageUsers, ta.Page)
	assert.Equal(t, " uq", ta.Users.inputs[userFieldName].Value())
}

func TestEditorLifecycle_NavigationTearsDown(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteManage, 160)

	ta.press("enter")
	ev, ok := ta.editor()
	require.True(t, ok)
	assert.Equal(t, "c1", ev.Editor().Course().ID)
	assert.Equal(t, 2, ta.Manage.Len())

	ta.send(PickVideoFileMsg{ChapterID: "ch1", LessonID: "l1"})
	_, isPicker := ta.topOverlay(t).(*FilePickerModal)
	require.True(t, isPicker)

	ta.send(VideoFilePickedMsg{ChapterID: "ch1", LessonID: "l1", File: course.VideoFile{Name: "a.mp4", Path: "/tmp/a.mp4", Size: 10}})
	assert.Equal(t, 0, ta.Overlays.Len())
	assert.Equal(t, 1, ta.previews.Outstanding())

	ta.press(" ", "u")
	assert.Equal(t, PageUsers, ta.Page)
	assert.Equal(t, 1, ta.Manage.Len())
	assert.True(t, ev.Editor().Closed())
	assert.Equal(t, 0, ta.previews.Outstanding())
}

func TestEditorBackTearsDown(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteManage, 160)
	ta.press("enter")
	ev, ok := ta.editor()
	require.True(t, ok)
	ta.send(VideoFilePickedMsg{ChapterID: "ch1", LessonID: "l2", File: course.VideoFile{Name: "b.mp4", Path: "/tmp/b.mp4"}})
	require.Equal(t, 1, ta.previews.Outstanding())

	ta.press("esc")
	assert.Equal(t, 1, ta.Manage.Len())
	assert.True(t, ev.Editor().Closed())
	assert.Equal(t, 0, ta.previews.Outstanding())
}

func TestSaveValidCourse(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteManage, 160)
	ta.press("enter")

	ta.send(VideoFilePickedMsg{ChapterID: "ch1", LessonID: "l1", File: course.VideoFile{Name: "a.mp4", Path: "/tmp/a.mp4"}})
	msgs := ta.press("s")
	require.NotEmpty(t, msgs)
	_, saved := msgs[0].(CourseSavedMsg)
	require.True(t, saved)

	notice, ok := ta.topOverlay(t).(*NoticeModal)
	require.True(t, ok)
	assert.Equal(t, SavedNotice, notice.Text)
	assert.False(t, notice.Error)

	stored, ok := ta.Catalog.Course("c1")
	require.True(t, ok)
	l, _ := stored.Chapters[0].Lesson("l1")
	require.NotNil(t, l.VideoFile)
	assert.Empty(t, l.VideoURL)
	assert.True(t, l.Preview.IsZero(), "stored courses carry no preview")
	// the editor still owns its preview
	assert.Equal(t, 1, ta.previews.Outstanding())
}

func TestSaveInvalidCourseBlocks(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteManage, 160)
	ta.press("n")
	ev, ok := ta.editor()
	require.True(t, ok)
	assert.Equal(t, course.NewCourseTitle, ev.Editor().Course().Title)

	// title, description, add-chapter row
	ta.press("down", "down", "enter", "s")

	notice, ok := ta.topOverlay(t).(*NoticeModal)
	require.True(t, ok)
	assert.True(t, notice.Error)
	assert.Equal(t, (&course.ValidationError{Err: course.ErrEmptyChapterTitle}).Message(), notice.Text)
	assert.Equal(t, 2, ta.Catalog.Len(), "invalid course is not stored")
}

func TestNewCourseStoredOnSave(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteManage, 160)
	ta.press(" ", "n", "s")

	assert.Equal(t, 3, ta.Catalog.Len())
	ta.press("enter", "esc")
	assert.Len(t, ta.manageList().list.Items(), 3)
	assert.Len(t, ta.Courses.Browser().Courses(), 3)
}

func TestNewCourseBindingOnlyOnManage(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteUsers, 160)
	ta.press(" ", "n")
	_, ok := ta.editor()
	assert.False(t, ok)
	assert.Equal(t, PageUsers, ta.Page)
}

func TestQuitTearsDown(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteManage, 160)
	ta.press("enter")
	ta.send(VideoFilePickedMsg{ChapterID: "ch1", LessonID: "l1", File: course.VideoFile{Name: "a.mp4", Path: "/tmp/a.mp4"}})
	require.Equal(t, 1, ta.previews.Outstanding())

	msgs := ta.press("q")
	require.NotEmpty(t, msgs)
	assert.IsType(t, tea.QuitMsg{}, msgs[len(msgs)-1])
	assert.Equal(t, 0, ta.previews.Outstanding())
	assert.Equal(t, 1, ta.player.stopped)
	assert.Equal(t, 0, ta.Viewport.Subscribers())
}

func TestCtrlCQuitsWhileTyping(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteUsers, 160)
	ta.press("a")
	msgs := ta.press("ctrl+c")
	require.NotEmpty(t, msgs)
	assert.IsType(t, tea.QuitMsg{}, msgs[len(msgs)-1])
}

func TestPlayBinding(t *testing.T) {
	ta := newTestApp(t, "", 160)
	ta.Courses.Browser().SelectCourse("c1")
	ta.Courses.Browser().SelectLesson("ch1", "l2")

	ta.press(" ", "p")
	assert.True(t, ta.KeyHandler.LeaderWaiting)
	_, cmd := ta.model.Update(keyMsg("p"))
	require.NotNil(t, cmd)
	msg := cmd()
	_, cmd = ta.model.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"https://example.com/hello.mp4"}, ta.player.played)

	close(ta.player.done)
	assert.Equal(t, PlaybackEndedMsg{Source: "https://example.com/hello.mp4"}, cmd())
}

func TestView_RTLLayout(t *testing.T) {
	ta := newTestApp(t, sidebar.RouteUsers, 160)
	out := ta.model.View()
	assert.Contains(t, out, "مدیریت کاربران")
	assert.Contains(t, out, "علی")

	first := strings.Split(out, "\n")[0]
	title := ta.Shell.Options().Title
	require.Contains(t, out, title)
	// the sidebar is drawn after the content on each line
	if strings.Contains(first, title) {
		assert.Greater(t, strings.Index(first, title), strings.Index(first, "مدیریت کاربران"))
	}
}

func TestView_OverlayAndLeaderHelp(t *testing.T) {
	ta := newTestApp(t, "", 160)
	ta.press(" ")
	assert.Contains(t, ta.model.View(), "SPC")

	ta.press("esc")
	ta.send(nav.NoticeMsg{Text: "پیام آزمایشی"})
	assert.Contains(t, ta.model.View(), "پیام آزمایشی")
}

func TestView_SmallHeader(t *testing.T) {
	ta := newTestApp(t, "", 80)
	out := ta.model.View()
	first := strings.Split(out, "\n")[0]
	assert.Contains(t, first, ta.Shell.Options().Title)
}
