package ui

import (
	"hamgaman/internal/roster"

	tea "github.com/charmbracelet/bubbletea"
)

// DeleteRowPrompt is asked before a user row is removed.
const DeleteRowPrompt = "آیا مطمئن هستید که می‌خواهید این ردیف حذف شود؟"

// ConfirmModal is a generic confirmation modal.
// Enter or y confirms; Esc or n cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
	}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteUserConfirmModal asks before removing u from the roster.
func NewDeleteUserConfirmModal(u roster.User) *ConfirmModal {
	label := u.Name
	if label == "" {
		label = u.Email
	}
	m := NewConfirmModal("حذف ردیف", DeleteRowPrompt, func() tea.Msg { return DeleteUserMsg{ID: u.ID} })
	if label != "" {
		m.WithDetails(label)
	}
	return m
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "n":
			return m, dismissModal
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
			return m, dismissModal
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: تایید  Esc: انصراف")
	return Styles.BoxDanger.Render(content)
}

func dismissModal() tea.Msg {
	return DismissModalMsg{}
}
