package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd != nil {
		cmd()
		if !executed {
			t.Error("expected command to execute")
		}
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeyHandler_PageFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForPage("SPC n", func() tea.Msg { return OpenEditorMsg{} }, "دوره جدید", []Page{PageManage})
	h := NewKeyHandler(reg)

	h.Page = PageUsers
	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("n"))
	if !consumed || cmd != nil {
		t.Errorf("SPC n on users: consumed=%v cmd=%v", consumed, cmd != nil)
	}

	h.Page = PageManage
	h.Handle(keyMsg(" "))
	_, cmd = h.Handle(keyMsg("n"))
	if cmd == nil {
		t.Fatal("SPC n on manage: expected command")
	}
	if _, ok := cmd().(OpenEditorMsg); !ok {
		t.Error("expected OpenEditorMsg")
	}
}

func TestLeaderHints_SubmenuAndPages(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC t", tea.Quit, "جمع کردن")
	reg.BindWithDescForPage("SPC p p", tea.Quit, "پخش درس", []Page{PageMyCourses})
	reg.BindWithDescForPage("SPC p s", tea.Quit, "توقف", []Page{PageMyCourses})
	reg.Menu("SPC p", "پخش")

	hints := reg.LeaderHints("", PageMyCourses)
	if hints["t"] != "جمع کردن" {
		t.Errorf("t hint = %q", hints["t"])
	}
	if hints["p"] != "پخش" {
		t.Errorf("p hint = %q, want submenu label", hints["p"])
	}

	if _, ok := reg.LeaderHints("", PageUsers)["p"]; ok {
		t.Error("play submenu should be hidden on users page")
	}

	h := NewKeyHandler(reg)
	h.Page = PageUsers
	h.Handle(keyMsg(" "))
	h.Handle(keyMsg("p"))
	if h.LeaderWaiting {
		t.Error("a submenu with no bindings on this page should not keep waiting")
	}

	reg.BindWithDesc("SPC x y", tea.Quit, "")
	if got := reg.LeaderHints("", PageUsers)["x"]; got != "x…" {
		t.Errorf("unnamed submenu hint = %q", got)
	}

	next := reg.LeaderHints("SPC p", PageMyCourses)
	if next["s"] != "توقف" || next["p"] != "پخش درس" {
		t.Errorf("next-level hints = %v", next)
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC t", tea.Quit, "جمع کردن")
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "))

	out := RenderKeybindHelp(h, PageUsers)
	if !strings.Contains(out, "SPC") || !strings.Contains(out, "جمع کردن") {
		t.Errorf("help missing content:\n%s", out)
	}
	if RenderKeybindHelp(nil, PageUsers) != "" {
		t.Error("nil handler should render nothing")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText feeds s to v one rune at a time.
func typeText(v View, s string) View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}
