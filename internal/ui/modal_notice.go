package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NoticeModal shows a message that blocks input until acknowledged.
type NoticeModal struct {
	Text  string
	Error bool
}

// Ensure NoticeModal implements View.
var _ View = (*NoticeModal)(nil)

// NewNoticeModal creates a notice. Error notices use the warning box.
func NewNoticeModal(text string, isError bool) *NoticeModal {
	return &NoticeModal{Text: text, Error: isError}
}

// Init implements View.
func (m *NoticeModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *NoticeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", " ":
			return m, dismissModal
		}
	}
	return m, nil
}

// View implements View.
func (m *NoticeModal) View() string {
	box, title := Styles.Box, Styles.Title
	if m.Error {
		box, title = Styles.BoxDanger, Styles.TitleWarning
	}
	content := title.Render("پیام") + "\n\n"
	content += Styles.Label.Render(m.Text)
	content += "\n\n" + Styles.Hint.Render("Enter: تایید")
	return box.Render(content)
}
