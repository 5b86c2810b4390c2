package sidebar

import (
	"strings"

	"hamgaman/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Glyphs for the shell's own controls.
const (
	glyphMenu   = "☰"
	glyphClose  = "✕"
	glyphLogout = "⏻"
	glyphExpand = "»"
	glyphShrink = "«"
	labelClose  = "بستن منو"
	labelLogout = "خروج"
	labelOpen   = "باز کردن منو"
	placeholder = "( )"
)

type rowKind int

const (
	rowBlank rowKind = iota
	rowClose
	rowLogo
	rowHeading
	rowItem
	rowProfile
	rowDesignation
	rowLogout
	rowToggle
)

type row struct {
	kind    rowKind
	item    int
	heading string
}

// collapsed reports whether the rendered panel shows icons only. The drawer
// never does.
func (s *Shell) collapsed() bool {
	return !s.small && s.state.Collapsed
}

// rows lays out the visible panel for the given height. Rendering and
// click hit-testing both read it.
func (s *Shell) rows(height int) []row {
	if !s.Visible() {
		return nil
	}
	drawer := s.small
	collapsed := s.collapsed()

	var rows []row
	if drawer {
		rows = append(rows, row{kind: rowClose})
	}
	rows = append(rows, row{kind: rowLogo}, row{kind: rowBlank})

	idx := 0
	for _, m := range s.menus {
		rows = append(rows, row{kind: rowHeading, heading: m.SubHeading})
		for range m.Items {
			rows = append(rows, row{kind: rowItem, item: idx})
			idx++
		}
		rows = append(rows, row{kind: rowBlank})
	}
	if !collapsed {
		rows = append(rows, row{kind: rowProfile}, row{kind: rowDesignation}, row{kind: rowLogout})
	}
	if drawer {
		return rows
	}
	for len(rows) < height-1 {
		rows = append(rows, row{kind: rowBlank})
	}
	return append(rows, row{kind: rowToggle})
}

// View renders the panel (desktop) or drawer (mobile, when open) at the given
// height. It returns "" when nothing is visible.
func (s *Shell) View(height int) string {
	if !s.Visible() {
		return ""
	}
	var width int
	if s.small {
		width = s.opts.Width
	} else {
		width = s.PanelWidth()
	}
	// one column for the border on the content side, one space each side
	inner := max(width-3, 1)

	rows := s.rows(height)
	if len(rows) > height && height > 0 {
		rows = rows[:height]
	}
	items := s.Items()
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, " "+s.renderRow(r, items, inner)+" ")
	}

	t := s.theme
	border := lipgloss.NewStyle().
		Background(t.Background).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background)
	if t.RTL() {
		border = border.BorderLeft(true)
	} else {
		border = border.BorderRight(true)
	}
	return border.Render(strings.Join(lines, "\n"))
}

func (s *Shell) renderRow(r row, items []NavItem, w int) string {
	t := s.theme
	rtl := t.RTL()
	collapsed := s.collapsed()

	switch r.kind {
	case rowClose:
		return t.base().Render(textutil.Align(glyphClose+" "+labelClose, w, !rtl))
	case rowLogo:
		return t.logo().Render(textutil.Align(t.Title, w, rtl))
	case rowHeading:
		if collapsed {
			return t.base().Render(strings.Repeat(" ", w))
		}
		return t.heading().Render(textutil.Align(r.heading, w, rtl))
	case rowItem:
		if r.item >= len(items) {
			return t.base().Render(strings.Repeat(" ", w))
		}
		return s.renderItem(items[r.item], r.item, w)
	case rowProfile:
		return t.profile().Bold(true).Render(textutil.Align(avatarLine(s.opts.User, rtl), w, rtl))
	case rowDesignation:
		return t.muted().Render(textutil.Align(s.opts.User.Designation, w, rtl))
	case rowLogout:
		return t.danger().Render(textutil.Align(joinIcon(glyphLogout, labelLogout, rtl), w, rtl))
	case rowToggle:
		return t.muted().Render(textutil.Center(s.toggleGlyph(), w))
	}
	return t.base().Render(strings.Repeat(" ", w))
}

func (s *Shell) renderItem(it NavItem, i, w int) string {
	t := s.theme
	rtl := t.RTL()
	hovered := i == s.hover || (s.focused && i == s.cursor)
	style := t.item(it.Selected, it.Disabled, hovered)

	icon := it.Icon
	if icon == "" {
		icon = IconDefault
	}
	if s.collapsed() {
		return style.Render(textutil.Center(icon, w))
	}
	label := joinIcon(icon, it.Label, rtl)
	if it.Badge == nil {
		return style.Render(textutil.Align(label, w, rtl))
	}
	badge := " " + it.Badge.Content + " "
	gap := w - textutil.VisualWidth(label) - textutil.VisualWidth(badge)
	if gap < 1 {
		return style.Render(textutil.Align(label, w, rtl))
	}
	styledBadge := t.badge(it.Badge.Color).Render(badge)
	pad := strings.Repeat(" ", gap)
	if rtl {
		return styledBadge + style.Render(pad+label)
	}
	return style.Render(label+pad) + styledBadge
}

func (s *Shell) toggleGlyph() string {
	expand, shrink := glyphExpand, glyphShrink
	if s.theme.RTL() {
		expand, shrink = shrink, expand
	}
	if s.state.Collapsed {
		return expand
	}
	return shrink
}

// OpenButton renders the control that opens the drawer on small terminals.
func (s *Shell) OpenButton() string {
	t := s.theme
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(t.Accent).
		Padding(0, 1).
		Render(glyphMenu + " " + labelOpen)
}

// joinIcon puts the icon at the reading start of the label.
func joinIcon(icon, label string, rtl bool) string {
	if rtl {
		return label + " " + icon
	}
	return icon + " " + label
}

// avatarLine renders the user's initial and name. A missing name degrades to
// an empty placeholder.
func avatarLine(u User, rtl bool) string {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return placeholder
	}
	initial := []rune(name)[0]
	return joinIcon("("+string(initial)+")", name, rtl)
}
