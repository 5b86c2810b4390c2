package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"hamgaman/internal/course"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// VideoExtensions are the files the picker offers.
var VideoExtensions = []string{".mp4", ".mkv", ".webm", ".mov", ".avi", ".m4v"}

// FilePickerModal picks a local video file for one lesson.
type FilePickerModal struct {
	ChapterID string
	LessonID  string
	picker    filepicker.Model
	err       error
	stat      func(string) (os.FileInfo, error)
}

// Ensure FilePickerModal implements View.
var _ View = (*FilePickerModal)(nil)

// NewFilePickerModal starts in dir, or the working directory when dir is empty.
func NewFilePickerModal(dir, chapterID, lessonID string) *FilePickerModal {
	fp := filepicker.New()
	fp.AllowedTypes = VideoExtensions
	fp.ShowPermissions = false
	// Esc dismisses the modal instead of walking up a directory.
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	if dir != "" {
		fp.CurrentDirectory = dir
	}
	return &FilePickerModal{
		ChapterID: chapterID,
		LessonID:  lessonID,
		picker:    fp,
		stat:      os.Stat,
	}
}

// pickerRows is how many entries the picker lists at once.
const pickerRows = 12

// Sized returns the window size message that fits the picker into a terminal
// of the given height. The picker sizes itself from window size messages.
func (m *FilePickerModal) Sized(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: min(height, pickerRows+5)}
}

// Init implements View.
func (m *FilePickerModal) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements View.
func (m *FilePickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return m, dismissModal
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		picked, err := m.videoFile(path)
		if err != nil {
			m.err = err
			return m, cmd
		}
		chapterID, lessonID := m.ChapterID, m.LessonID
		return m, func() tea.Msg {
			return VideoFilePickedMsg{ChapterID: chapterID, LessonID: lessonID, File: picked}
		}
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.err = fmt.Errorf("%s: فقط فایل ویدیویی قابل انتخاب است", filepath.Base(path))
	}
	return m, cmd
}

func (m *FilePickerModal) videoFile(path string) (course.VideoFile, error) {
	info, err := m.stat(path)
	if err != nil {
		return course.VideoFile{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return course.VideoFile{Name: filepath.Base(path), Path: path, Size: info.Size()}, nil
}

// View implements View.
func (m *FilePickerModal) View() string {
	content := Styles.Title.Render("انتخاب فایل ویدیو") + "\n"
	content += Styles.Muted.Render(m.picker.CurrentDirectory) + "\n\n"
	content += m.picker.View()
	if m.err != nil {
		content += "\n" + Styles.Error.Render(m.err.Error())
	}
	content += "\n\n" + Styles.Hint.Render("Enter: انتخاب  h: بالا  Esc: انصراف")
	return Styles.BoxCompact.Render(content)
}
