package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// leaderHelp is the help model styled for the leader bar.
func leaderHelp() help.Model {
	m := help.New()
	m.ShortSeparator = "  "
	m.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	m.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortSeparator = m.Styles.ShortDesc
	return m
}

// RenderKeybindHelp draws the bar shown while a leader sequence is pending:
// the sequence typed so far and the keys that can follow it on page.
func RenderKeybindHelp(keyHandler *KeyHandler, page Page) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, page).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	pending := keyHandler.Pending()
	if pending == "" {
		pending = leaderSeq
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return box.Render(Styles.Hint.Render(pending) + " " + leaderHelp().ShortHelpView(bindings))
}
