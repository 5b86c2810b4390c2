package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubView counts Close calls and echoes the last key it saw.
type stubView struct {
	name   string
	closed int
	last   string
}

func (v *stubView) Init() tea.Cmd { return nil }
func (v *stubView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		v.last = k.String()
	}
	return v, nil
}
func (v *stubView) View() string { return v.name }
func (v *stubView) Close()        { v.closed++ }

func TestViewStack_BackKeepsRoot(t *testing.T) {
	root, detail := &stubView{name: "list"}, &stubView{name: "editor"}
	var s ViewStack
	assert.Nil(t, s.Peek())
	assert.Nil(t, s.Root())
	assert.False(t, s.Back())

	s.Push(root)
	s.Push(detail)
	assert.Equal(t, detail, s.Peek())
	assert.Equal(t, root, s.Root())

	require.True(t, s.Back())
	assert.Equal(t, 1, detail.closed)
	assert.Equal(t, 1, s.Len())

	assert.False(t, s.Back(), "the root view stays")
	assert.Equal(t, 0, root.closed)
}

func TestViewStack_ReplaceTop(t *testing.T) {
	var s ViewStack
	s.ReplaceTop(&stubView{})
	assert.Equal(t, 0, s.Len())

	s.Push(&stubView{name: "a"})
	b := &stubView{name: "b"}
	s.ReplaceTop(b)
	assert.Equal(t, b, s.Peek())
	assert.Equal(t, 1, s.Len())
}

func TestOverlayStack_TopReceivesInput(t *testing.T) {
	var s OverlayStack
	_, ok := s.UpdateTop(keyMsg("x"))
	assert.False(t, ok)

	bottom, top := &stubView{name: "bottom"}, &stubView{name: "top"}
	s.Push(bottom)
	s.Push(top)
	_, ok = s.UpdateTop(keyMsg("y"))
	require.True(t, ok)
	assert.Equal(t, "y", top.last)
	assert.Empty(t, bottom.last)

	_, isNotice := topModal[*NoticeModal](&s)
	assert.False(t, isNotice)
	got, isStub := topModal[*stubView](&s)
	require.True(t, isStub)
	assert.Equal(t, top, got)

	o, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, top, o.View)
	assert.Contains(t, o.Render(20, 3), "top")
}
