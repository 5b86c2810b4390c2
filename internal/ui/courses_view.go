package ui

import (
	"errors"
	"fmt"
	"strings"

	"hamgaman/internal/browse"
	"hamgaman/internal/course"
	"hamgaman/internal/nav"
	"hamgaman/internal/player"
	"hamgaman/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NoSourceNotice is shown when a lesson without a video is played.
const NoSourceNotice = "برای این درس ویدیویی تعیین نشده است"

// Player plays lesson sources. *player.Player implements it.
type Player interface {
	Play(source string) (<-chan struct{}, error)
	Playing() (string, bool)
	Stop()
	Resize(player.Size)
}

// Browser panes, in reading order.
const (
	paneCourses = iota
	paneChapters
	panePreview
	paneCount
)

// chapterRow is one line of the chapter accordion.
type chapterRow struct {
	chapterID string
	lessonID  string // empty for the chapter header
}

// CoursesView is the learner page: course list, chapter accordion and the
// selected lesson, side by side.
type CoursesView struct {
	browser *browse.Browser
	player  Player
	rtl     bool

	pane          int
	courseCursor  int
	chapterCursor int
	width         int
	height        int
}

// Ensure CoursesView implements View.
var _ View = (*CoursesView)(nil)

// NewCoursesView creates the page. A nil player disables playback.
func NewCoursesView(b *browse.Browser, p Player, rtl bool) *CoursesView {
	return &CoursesView{browser: b, player: p, rtl: rtl}
}

// Browser returns the underlying selection state.
func (v *CoursesView) Browser() *browse.Browser {
	return v.browser
}

// Pane returns the focused pane.
func (v *CoursesView) Pane() int {
	return v.pane
}

// SetCourses replaces the browsable courses after the catalog changed.
func (v *CoursesView) SetCourses(courses []course.Course) {
	v.browser.SetCourses(courses)
	v.courseCursor = min(v.courseCursor, max(len(courses)-1, 0))
	v.chapterCursor = min(v.chapterCursor, max(len(v.chapterRows())-1, 0))
}

// SetSize splits the content area into the three panes.
func (v *CoursesView) SetSize(width, height int) {
	v.width, v.height = width, height
	if v.player != nil {
		_, _, pw := v.paneWidths()
		v.player.Resize(player.Size{Rows: uint16(max(height-4, 1)), Cols: uint16(max(pw-4, 1))})
	}
}

func (v *CoursesView) paneWidths() (courses, chapters, preview int) {
	w := max(v.width, 60)
	courses = w / 4
	chapters = w / 3
	preview = w - courses - chapters
	return
}

func (v *CoursesView) chapterRows() []chapterRow {
	c, ok := v.browser.SelectedCourse()
	if !ok {
		return nil
	}
	var rows []chapterRow
	for _, ch := range c.Chapters {
		rows = append(rows, chapterRow{chapterID: ch.ID})
		if !v.browser.IsExpanded(ch.ID) {
			continue
		}
		for _, l := range ch.Lessons {
			rows = append(rows, chapterRow{chapterID: ch.ID, lessonID: l.ID})
		}
	}
	return rows
}

// Init implements View.
func (v *CoursesView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *CoursesView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch k := km.String(); k {
	case "left", "h", "right", "l":
		// Panes run in reading order, so in rtl "left" moves forward.
		forward := k == "right" || k == "l"
		if v.rtl {
			forward = !forward
		}
		if forward {
			v.pane = min(v.pane+1, paneCount-1)
		} else {
			v.pane = max(v.pane-1, 0)
		}
	case "up", "k":
		v.moveCursor(-1)
	case "down", "j":
		v.moveCursor(1)
	case "enter":
		return v, v.activate()
	case "p":
		return v, v.Play()
	case "s":
		v.Stop()
	}
	return v, nil
}

func (v *CoursesView) moveCursor(delta int) {
	switch v.pane {
	case paneCourses:
		n := len(v.browser.Courses())
		if n > 0 {
			v.courseCursor = min(max(v.courseCursor+delta, 0), n-1)
		}
	case paneChapters:
		n := len(v.chapterRows())
		if n > 0 {
			v.chapterCursor = min(max(v.chapterCursor+delta, 0), n-1)
		}
	}
}

func (v *CoursesView) activate() tea.Cmd {
	switch v.pane {
	case paneCourses:
		courses := v.browser.Courses()
		if v.courseCursor < len(courses) {
			v.browser.SelectCourse(courses[v.courseCursor].ID)
			v.chapterCursor = 0
			v.pane = paneChapters
		}
	case paneChapters:
		rows := v.chapterRows()
		if v.chapterCursor >= len(rows) {
			return nil
		}
		r := rows[v.chapterCursor]
		if r.lessonID == "" {
			v.browser.ToggleChapter(r.chapterID)
			return nil
		}
		v.browser.SelectLesson(r.chapterID, r.lessonID)
		v.pane = panePreview
	case panePreview:
		return v.Play()
	}
	return nil
}

// Play starts the selected lesson. The returned command reports when the
// session ends.
func (v *CoursesView) Play() tea.Cmd {
	l, ok := v.browser.SelectedLesson()
	if !ok || v.player == nil {
		return nil
	}
	source := l.ActiveSource()
	done, err := v.player.Play(source)
	if err != nil {
		text := fmt.Sprintf("پخش ویدیو ممکن نشد: %v", err)
		if errors.Is(err, player.ErrNoSource) {
			text = NoSourceNotice
		}
		return func() tea.Msg { return nav.NoticeMsg{Text: text, Err: err} }
	}
	return func() tea.Msg {
		<-done
		return PlaybackEndedMsg{Source: source}
	}
}

// Stop ends playback.
func (v *CoursesView) Stop() {
	if v.player != nil {
		v.player.Stop()
	}
}

// View implements View.
func (v *CoursesView) View() string {
	cw, chw, pw := v.paneWidths()
	h := max(v.height-2, 8)
	panes := []string{
		v.pane0(cw, h),
		v.pane1(chw, h),
		v.pane2(pw, h),
	}
	if v.rtl {
		panes[0], panes[2] = panes[2], panes[0]
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	return Styles.Title.Render("دوره های من") + "\n" + body + "\n" +
		Styles.Hint.Render("←/→: پنل  Enter: انتخاب  p: پخش  s: توقف")
}

func (v *CoursesView) box(pane, width, height int, content string) string {
	style := Styles.Pane
	if pane == v.pane {
		style = Styles.PaneActive
	}
	// Width and Height exclude the border.
	return style.Width(max(width-2, 4)).Height(max(height-2, 1)).Render(content)
}

func (v *CoursesView) line(s string, width int, selected bool) string {
	s = textutil.Align(textutil.Truncate(s, max(width-6, 1)), max(width-6, 1), v.rtl)
	if selected {
		return Styles.Selected.Render(s)
	}
	return s
}

func (v *CoursesView) pane0(width, height int) string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("دوره ها") + "\n")
	selected, _ := v.browser.SelectedCourse()
	for i, c := range v.browser.Courses() {
		mark := "  "
		if c.ID == selected.ID {
			mark = "● "
		}
		cursor := v.pane == paneCourses && i == v.courseCursor
		b.WriteString(v.line(mark+c.Title, width, cursor) + "\n")
	}
	return v.box(paneCourses, width, height, b.String())
}

func (v *CoursesView) pane1(width, height int) string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("فصل ها") + "\n")
	if prompt := v.browser.Detail(); prompt != "" {
		b.WriteString(Styles.Empty.Render(prompt))
		return v.box(paneChapters, width, height, b.String())
	}
	c, _ := v.browser.SelectedCourse()
	current, hasLesson := v.browser.SelectedLesson()
	for i, r := range v.chapterRows() {
		ch, _ := c.Chapter(r.chapterID)
		var text string
		if r.lessonID == "" {
			arrow := "▸ "
			if v.browser.IsExpanded(ch.ID) {
				arrow = "▾ "
			}
			text = arrow + ch.Title
		} else {
			l, _ := ch.Lesson(r.lessonID)
			mark := "   "
			if hasLesson && l.ID == current.ID {
				mark = " ● "
			}
			text = mark + l.Title
		}
		cursor := v.pane == paneChapters && i == v.chapterCursor
		b.WriteString(v.line(text, width, cursor) + "\n")
	}
	return v.box(paneChapters, width, height, b.String())
}

func (v *CoursesView) pane2(width, height int) string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("ویدیو") + "\n")
	if prompt := v.browser.Preview(); prompt != "" {
		b.WriteString(Styles.Empty.Render(prompt))
		return v.box(panePreview, width, height, b.String())
	}
	l, _ := v.browser.SelectedLesson()
	b.WriteString(Styles.Normal.Render(l.Title) + "\n\n")
	source := l.ActiveSource()
	if source == "" {
		b.WriteString(Styles.Empty.Render(NoSourceNotice) + "\n")
	} else {
		b.WriteString(Styles.Muted.Render(textutil.Truncate(source, max(width-6, 1))) + "\n")
	}
	if v.player != nil {
		if playing, ok := v.player.Playing(); ok && playing == source && source != "" {
			b.WriteString("\n" + Styles.Success.Render("▶ در حال پخش"))
		}
	}
	return v.box(panePreview, width, height, b.String())
}
