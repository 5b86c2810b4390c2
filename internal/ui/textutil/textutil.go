// Package textutil provides unicode-aware text utilities for TUI rendering,
// including right-to-left alignment.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a styled string, ignoring ANSI codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate cuts s to at most maxWidth columns, ending with … when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > available {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + TruncateEllipsis
}

// PadRightVisual left-aligns s in targetWidth columns, truncating if needed.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-VisualWidth(s))
}

// PadLeftVisual right-aligns s in targetWidth columns, truncating if needed.
func PadLeftVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return strings.Repeat(" ", targetWidth-VisualWidth(s)) + s
}

// Align places s at the reading start of a targetWidth line: the right edge
// for right-to-left text, the left edge otherwise.
func Align(s string, targetWidth int, rtl bool) string {
	if rtl {
		return PadLeftVisual(s, targetWidth)
	}
	return PadRightVisual(s, targetWidth)
}

// Center centers s in targetWidth columns.
func Center(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	left := (targetWidth - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", targetWidth-w-left)
}

// Join places start and end at the two edges of a targetWidth line, reading
// direction aware: in rtl, start is on the right.
func Join(start, end string, targetWidth int, rtl bool) string {
	gap := targetWidth - VisualWidth(start) - VisualWidth(end)
	if gap < 1 {
		return Align(start, targetWidth, rtl)
	}
	if rtl {
		return end + strings.Repeat(" ", gap) + start
	}
	return start + strings.Repeat(" ", gap) + end
}
