package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 0, ""},
		{"hello", 1, "…"},
		{"دوره React پیشرفته", 8, "دوره Re…"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.max)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.max)
		assert.LessOrEqual(t, VisualWidth(got), max(tt.max, 0))
	}
}

func TestAlign(t *testing.T) {
	assert.Equal(t, "   ab", Align("ab", 5, true))
	assert.Equal(t, "ab   ", Align("ab", 5, false))
	assert.Equal(t, "abcd…", Align("abcdefgh", 5, true))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " ab  ", Center("ab", 5))
	assert.Equal(t, "ab", Center("ab", 2))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "b   a", Join("a", "b", 5, true))
	assert.Equal(t, "a   b", Join("a", "b", 5, false))
	assert.Equal(t, "  abc", Join("abc", "de", 5, true), "no room for end keeps start only")
}

func TestVisualWidth_Wide(t *testing.T) {
	assert.Equal(t, 4, VisualWidth("日本"))
	assert.Equal(t, 4, VisualWidth("سلام"))
}
