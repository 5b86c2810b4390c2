package ui

import (
	"context"

	"hamgaman/internal/browse"
	"hamgaman/internal/catalog"
	"hamgaman/internal/course"
	"hamgaman/internal/logger"
	"hamgaman/internal/nav"
	"hamgaman/internal/preview"
	"hamgaman/internal/roster"
	"hamgaman/internal/sidebar"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Deps are the collaborators of the app. Nil fields get working defaults.
type Deps struct {
	Context   context.Context
	Options   sidebar.Options
	Menus     []sidebar.Menu
	Navigator *nav.Navigator
	Catalog   *catalog.Store
	Roster    *roster.Roster
	Previews  course.Previews
	Player    Player
	Log       *logger.Logger
	// Route is the page shown first; empty shows the learner's courses.
	Route string
	// PickerDir is where the video file picker starts.
	PickerDir string
}

// AppModel is the root model: the sidebar shell, the page selected by the
// route, and the overlays drawn on top.
type AppModel struct {
	Page       Page
	Shell      *sidebar.Shell
	Sidebar    *SidebarView
	Viewport   *sidebar.Viewport
	KeyHandler *KeyHandler
	Focus      *FocusManager
	Overlays   OverlayStack

	Users   *UsersView
	Manage  ViewStack // ManageView at the bottom, EditorView above it while editing
	Courses *CoursesView

	Catalog   *catalog.Store
	Roster    *roster.Roster
	Previews  course.Previews
	Player    Player
	Log       *logger.Logger
	PickerDir string

	ctx    context.Context
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(d Deps) *AppModel {
	if d.Context == nil {
		d.Context = context.Background()
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Catalog == nil || d.Roster == nil {
		seed := catalog.Default()
		if d.Catalog == nil {
			d.Catalog = catalog.NewStore(seed.Courses)
		}
		if d.Roster == nil {
			d.Roster = roster.New(seed.Users)
		}
	}
	if d.Previews == nil {
		d.Previews = preview.NewRegistry(nil)
	}
	if d.Menus == nil {
		d.Menus = sidebar.DefaultMenus()
	}
	if d.Navigator == nil {
		d.Navigator = nav.NewNavigator(nil, d.Log)
	}
	breakpoint := d.Options.Breakpoint
	if breakpoint <= 0 {
		breakpoint = sidebar.DefaultOptions().Breakpoint
	}
	vp := sidebar.NewViewport(breakpoint)
	shell := sidebar.New(d.Options, d.Menus, vp, d.Navigator)

	a := &AppModel{
		Shell:      shell,
		Sidebar:    &SidebarView{Shell: shell},
		Viewport:   vp,
		KeyHandler: NewKeyHandler(newKeybindRegistry(d.Player != nil)),
		Catalog:    d.Catalog,
		Roster:     d.Roster,
		Previews:   d.Previews,
		Player:     d.Player,
		Log:        d.Log,
		PickerDir:  d.PickerDir,
		ctx:        d.Context,
	}
	a.Focus = &FocusManager{
		Current:  FocusContent,
		Order:    []string{FocusSidebar, FocusContent},
		OnChange: func(_, to string) { shell.SetFocused(to == FocusSidebar) },
	}
	a.Users = NewUsersView(d.Context, d.Roster)
	a.Manage.Push(NewManageView(d.Catalog.Courses()))
	a.Courses = NewCoursesView(browse.New(d.Catalog.Courses()), d.Player, shell.Theme().RTL())

	page, ok := PageForRoute(d.Route)
	if !ok {
		page = PageMyCourses
	}
	a.Page = page
	shell.SetRoute(page.Route())
	return a
}

func newKeybindRegistry(playback bool) *KeybindRegistry {
	quit := func() tea.Msg { return QuitMsg{} }
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", quit, "خروج")
	reg.BindWithDesc("ctrl+c", quit, "خروج")
	reg.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "تغییر تمرکز")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "تمرکز قبلی")
	reg.BindWithDesc("SPC q", quit, "خروج")
	reg.BindWithDesc("SPC t", func() tea.Msg { return ToggleSidebarMsg{} }, "جمع/باز کردن منو")
	reg.BindWithDesc("SPC o", func() tea.Msg { return OpenDrawerMsg{} }, "باز کردن منو")
	reg.BindWithDesc("SPC l", func() tea.Msg { return LogoutMsg{} }, "خروج از حساب")
	for seq, p := range map[string]Page{"SPC u": PageUsers, "SPC c": PageMyCourses, "SPC m": PageManage} {
		route := p.Route()
		reg.BindWithDesc(seq, func() tea.Msg { return nav.NavigateMsg{Route: route} }, pageTitle(p))
	}
	reg.BindWithDescForPage("SPC n", func() tea.Msg { return OpenEditorMsg{} }, "دوره جدید", []Page{PageManage})
	if playback {
		reg.Menu("SPC p", "پخش")
		reg.BindWithDescForPage("SPC p p", func() tea.Msg { return PlayLessonMsg{} }, "پخش درس", []Page{PageMyCourses})
		reg.BindWithDescForPage("SPC p s", func() tea.Msg { return StopPlaybackMsg{} }, "توقف پخش", []Page{PageMyCourses})
	}
	return reg
}

func pageTitle(p Page) string {
	switch p {
	case PageUsers:
		return "مدیریت کاربران"
	case PageManage:
		return "مدیریت دوره ها"
	default:
		return "دوره های من"
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.content().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	case nav.NavigateMsg:
		return a.handleNavigate(msg)
	case nav.NoticeMsg:
		return a.handleNotice(msg)
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case QuitMsg:
		return a.handleQuit()
	case ToggleSidebarMsg:
		a.Shell.Toggle()
		a.resize()
		return a, nil
	case OpenDrawerMsg:
		a.Shell.OpenDrawer()
		if a.Shell.Overlay() {
			a.focusPanel(FocusSidebar)
		}
		return a, nil
	case LogoutMsg:
		return a, a.Shell.Logout()
	case FocusNextMsg:
		a.Focus.SetOrder(a.layout().FocusOrder())
		a.Focus.Next()
		return a, nil
	case FocusPrevMsg:
		a.Focus.SetOrder(a.layout().FocusOrder())
		a.Focus.Prev()
		return a, nil
	case ConfirmDeleteUserMsg:
		a.Overlays.Push(NewDeleteUserConfirmModal(msg.User))
		return a, nil
	case DeleteUserMsg:
		return a.handleDeleteUser(msg)
	case OpenEditorMsg:
		return a.handleOpenEditor(msg)
	case CloseEditorMsg:
		a.closeEditor()
		return a, nil
	case CourseSavedMsg:
		return a.handleCourseSaved(msg)
	case PickVideoFileMsg:
		return a.handlePickVideoFile(msg)
	case VideoFilePickedMsg:
		return a.handleVideoFilePicked(msg)
	case PlayLessonMsg:
		return a, a.Courses.Play()
	case StopPlaybackMsg:
		a.Courses.Stop()
		return a, nil
	case PlaybackEndedMsg:
		a.Log.Debug("playback ended", "source", msg.Source)
		return a, nil
	}

	// Everything else (cursor blinks, directory reads) belongs to the top
	// overlay or the current page.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	return a, a.updateContent(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	width, height := a.size()
	if top, ok := a.Overlays.Peek(); ok {
		return top.Render(width, height)
	}

	var help string
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		help = RenderKeybindHelp(a.KeyHandler, a.Page)
	}
	layout := a.layout()
	_, _, cw, ch := layout.contentBounds(width, height)
	if help != "" {
		ch = max(ch-lipgloss.Height(help), 1)
	}
	body := lipgloss.NewStyle().
		Width(cw).MaxWidth(cw).
		Height(ch).MaxHeight(ch).
		Render(a.content().View())

	a.Sidebar.Height = height
	switch {
	case a.Shell.Overlay():
		body = a.drawer(width, ch)
	case a.Shell.Small():
	default:
		if a.Shell.Theme().RTL() {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, a.Sidebar.View())
		} else {
			body = lipgloss.JoinHorizontal(lipgloss.Top, a.Sidebar.View(), body)
		}
	}
	if a.Shell.Small() {
		body = a.header(width) + "\n" + body
	}
	if help != "" {
		body += "\n" + help
	}
	return body
}

// header is the top bar of small terminals, holding the drawer's open button.
func (a *appModelAdapter) header(width int) string {
	title := Styles.Title.Render(a.Shell.Options().Title)
	button := a.Shell.OpenButton()
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(button), 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")
	if a.Shell.Theme().RTL() {
		return title + spacer + button
	}
	return button + spacer + title
}

// drawer draws the open drawer over a blank backdrop that hides the page.
func (a *appModelAdapter) drawer(width, height int) string {
	a.Sidebar.Height = height
	d := a.Sidebar.View()
	backdrop := lipgloss.NewStyle().
		Width(max(width-lipgloss.Width(d), 0)).
		Height(height).
		Render("")
	if a.Shell.Theme().RTL() {
		return lipgloss.JoinHorizontal(lipgloss.Top, backdrop, d)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, d, backdrop)
}

func (a *AppModel) size() (int, int) {
	w, h := a.width, a.height
	if w == 0 {
		w = 120
	}
	if h == 0 {
		h = 30
	}
	return w, h
}

func (a *AppModel) layout() ShellLayout {
	return ShellLayout{Shell: a.Shell, Sidebar: a.Sidebar, Content: a.content()}
}

// content returns the view of the current page.
func (a *AppModel) content() View {
	switch a.Page {
	case PageUsers:
		return a.Users
	case PageManage:
		if v := a.Manage.Peek(); v != nil {
			return v
		}
	}
	return a.Courses
}

func (a *AppModel) setContent(v View) {
	if a.Page == PageManage {
		a.Manage.ReplaceTop(v)
	}
}

func (a *AppModel) updateContent(msg tea.Msg) tea.Cmd {
	v, cmd := a.content().Update(msg)
	a.setContent(v)
	return cmd
}

// editor returns the open course editor.
func (a *AppModel) editor() (*EditorView, bool) {
	ev, ok := a.Manage.Peek().(*EditorView)
	return ev, ok
}

// manageList returns the course list at the bottom of the manage stack.
func (a *AppModel) manageList() *ManageView {
	mv, _ := a.Manage.Root().(*ManageView)
	return mv
}

// resize lays every page out for the current content area.
func (a *AppModel) resize() {
	width, height := a.size()
	content, _ := PanelByID(a.layout(), FocusContent)
	cw, ch := content.Size(width, height)
	resizeViews(cw, ch, append([]View{a.Users, a.Courses}, a.Manage.Stack...)...)
}

// syncFocus moves focus off a sidebar that is no longer drawn.
func (a *AppModel) syncFocus() {
	a.Focus.SetOrder(a.layout().FocusOrder())
}

// focusPanel focuses id if the current layout can focus it.
func (a *AppModel) focusPanel(id string) bool {
	a.Focus.SetOrder(a.layout().FocusOrder())
	return a.Focus.SetFocus(id)
}

func (a *AppModel) capturesInput() bool {
	return capturingInput(a.content())
}

// closeEditor pops and tears down the editor, if one is open.
func (a *AppModel) closeEditor() {
	if _, ok := a.editor(); !ok {
		return
	}
	a.Manage.Back()
	if mv := a.manageList(); mv != nil {
		mv.SetCourses(a.Catalog.Courses())
	}
}
