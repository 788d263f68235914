package components

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTextField_SubmitsInitialValue(t *testing.T) {
	f := NewTextField("Project name").WithValue("lib")

	m, cmd := f.Update(enter)
	got := m.(TextField)

	assert.True(t, got.Submitted())
	assert.Equal(t, "lib", got.Value())
	assert.True(t, isQuit(cmd))
	assert.Contains(t, got.View(), "Project name")
	assert.Contains(t, got.View(), "lib")
}

func TestTextField_TypingAppends(t *testing.T) {
	var m tea.Model = NewTextField("Project name").WithValue("li")

	m, _ = m.Update(runes("b"))
	m, _ = m.Update(enter)

	assert.Equal(t, "lib", m.(TextField).Value())
}

func TestTextField_ValidatorBlocksSubmit(t *testing.T) {
	validate := func(v string) error {
		if v == "" {
			return errors.New("Project name cannot be empty")
		}
		return nil
	}
	var m tea.Model = NewTextField("Project name").WithValidator(validate)

	m, cmd := m.Update(enter)
	f := m.(TextField)
	require.Error(t, f.Error())
	assert.False(t, f.Submitted())
	assert.False(t, isQuit(cmd))
	assert.Contains(t, f.View(), "Project name cannot be empty")

	m, _ = m.Update(runes("x"))
	assert.NoError(t, m.(TextField).Error(), "typing clears the error")

	m, cmd = m.Update(enter)
	assert.True(t, m.(TextField).Submitted())
	assert.True(t, isQuit(cmd))
}

func TestTextField_LongInitialValueSubmittedUnchanged(t *testing.T) {
	long := strings.Repeat("d", 400)
	f := NewTextField("Project description").WithValue(long)

	m, cmd := f.Update(enter)
	got := m.(TextField)
	require.True(t, got.Submitted())
	assert.True(t, isQuit(cmd))
	assert.Equal(t, long, got.Value())

	typed, _ := NewTextField("Project description").WithValue(long).Update(runes("!"))
	assert.Equal(t, long+"!", typed.(TextField).Value())
}

func TestTextField_ValueIsTrimmed(t *testing.T) {
	f := NewTextField("q").WithValue("  padded  ").WithPlaceholder("hint").WithWidth(20)
	assert.Equal(t, "padded", f.Value())
}

func TestSelector_InitialAndNavigation(t *testing.T) {
	var m tea.Model = NewSelector("Include a logo?", []string{"Yes", "No"}).WithInitial(1)

	m, cmd := m.Update(enter)
	s := m.(Selector)
	assert.True(t, s.Submitted())
	assert.Equal(t, 1, s.Selected())
	assert.Equal(t, "No", s.Choice())
	assert.True(t, isQuit(cmd))
}

func TestSelector_MovesWithinBounds(t *testing.T) {
	var m tea.Model = NewSelector("pick", []string{"a", "b", "c"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(runes("l"))
	m, _ = m.Update(runes("l"))
	m, _ = m.Update(enter)

	assert.Equal(t, 2, m.(Selector).Selected())
}

func TestSelector_DigitPicksDirectly(t *testing.T) {
	var m tea.Model = NewSelector("pick", []string{"a", "b", "c"})

	m, _ = m.Update(runes("4"))
	assert.False(t, m.(Selector).Submitted())

	m, cmd := m.Update(runes("2"))
	assert.Equal(t, 1, m.(Selector).Selected())
	assert.True(t, isQuit(cmd))
}

func TestSelector_NothingSelectedBeforeSubmit(t *testing.T) {
	s := NewSelector("pick", []string{"a", "b"}).WithInitial(5).WithShowHelp(true)

	assert.Equal(t, -1, s.Selected())
	assert.Empty(t, s.Choice())
	assert.False(t, s.Submitted())
	assert.Contains(t, s.View(), "pick")
	assert.Contains(t, s.View(), "1-2 pick")
}
