package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// leaderKey is how Bubble Tea reports the space bar.
	leaderKey = " "
	leaderSeq = "SPC"
)

// keybinding is one registered sequence.
type keybinding struct {
	cmd   tea.Cmd
	desc  string
	pages []Page // empty applies everywhere
}

func (b keybinding) on(page Page) bool {
	return len(b.pages) == 0 || slices.Contains(b.pages, page)
}

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC" for space, "SPC p s" for
// SPC then p then s. Single keys are written as Bubble Tea reports them:
// "q", "tab", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]keybinding
	menus    map[string]string // prefix sequence → submenu label
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]keybinding),
		menus:    make(map[string]string),
	}
}

// Bind registers a key sequence to a command on every page.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a sequence with the text shown in the leader help.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForPage(seq, cmd, desc, nil)
}

// BindWithDescForPage registers a sequence that only fires, and is only
// hinted, while one of pages is shown. No pages means every page.
func (r *KeybindRegistry) BindWithDescForPage(seq string, cmd tea.Cmd, desc string, pages []Page) {
	r.bindings[normalizeSeq(seq)] = keybinding{cmd: cmd, desc: desc, pages: pages}
}

// Menu names the submenu opened by prefix, e.g. Menu("SPC p", "پخش").
func (r *KeybindRegistry) Menu(prefix, label string) {
	r.menus[normalizeSeq(prefix)] = label
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// LookupForPage is Lookup restricted to bindings that apply to page.
func (r *KeybindRegistry) LookupForPage(seq string, page Page) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.on(page) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer binding continues seq on any page.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	return r.continues(normalizeSeq(seq), nil)
}

// continues reports whether a bound sequence extends seq. A nil page
// matches every page.
func (r *KeybindRegistry) continues(seq string, page *Page) bool {
	prefix := seq + " "
	for s, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(s, prefix) {
			continue
		}
		if page == nil || b.on(*page) {
			return true
		}
	}
	return false
}

// LeaderHints returns the next keys after currentSeq ("" means just SPC)
// with their descriptions, for bindings active on page. A key that opens a
// submenu is labeled with the submenu's name.
func (r *KeybindRegistry) LeaderHints(currentSeq string, page Page) map[string]string {
	base := leaderSeq
	if currentSeq != "" {
		base = normalizeSeq(currentSeq)
	}
	prefix := base + " "
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !b.on(page) || !strings.HasPrefix(seq, prefix) {
			continue
		}
		next, _, _ := strings.Cut(strings.TrimPrefix(seq, prefix), " ")
		sub := base + " " + next
		if r.continues(sub, &page) {
			label, ok := r.menus[sub]
			if !ok {
				label = next + "…"
			}
			out[next] = label
			continue
		}
		if b.desc != "" {
			out[next] = b.desc
		} else {
			out[next] = seq
		}
	}
	return out
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == leaderKey || s == "space" {
		return leaderSeq
	}
	return s
}

// KeyHandler tracks the leader sequence being typed and dispatches
// completed sequences through the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool     // true after SPC until a sequence completes or fails
	Buffer        []string // sequence typed so far, starting with SPC
	Page          Page     // page-filtered bindings only fire on their pages
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Pending returns the sequence typed so far, e.g. "SPC p".
func (h *KeyHandler) Pending() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// A consumed key must not reach the views; cmd is the bound command, if any.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	switch {
	case s == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.reset()
		return true, nil
	case s == leaderKey:
		h.LeaderWaiting = true
		h.Buffer = []string{leaderSeq}
		return true, nil
	case h.LeaderWaiting:
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := h.Pending()
		if c := h.Registry.LookupForPage(seq, h.Page); c != nil {
			h.reset()
			return true, c
		}
		// Keep waiting while a longer sequence is bound on this page.
		if !h.Registry.continues(seq, &h.Page) {
			h.reset()
		}
		return true, nil
	}

	if c := h.Registry.LookupForPage(keyToSeqPart(s), h.Page); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap adapts the leader hints to help.KeyMap so bubbles/help can render them.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	page       Page
}

// NewKeyMap creates a KeyMap for the given registry, handler, and page.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, page Page) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, page: page}
}

// ShortHelp returns the next keys of the pending sequence, sorted, followed by esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	var pending string
	if km.keyHandler != nil {
		pending = km.keyHandler.Pending()
	}
	hints := km.registry.LeaderHints(pending, km.page)
	if len(hints) == 0 {
		return nil
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "انصراف")))
}

// FullHelp splits the short help into columns of at most five keys.
func (km *KeyMap) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	for col := range slices.Chunk(km.ShortHelp(), 5) {
		cols = append(cols, col)
	}
	return cols
}
