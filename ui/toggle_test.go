package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	toggle := NewToggle("Dark mode", false)
	assert.False(t, toggle.On())

	toggle.Toggle()
	assert.True(t, toggle.On())

	toggle.Toggle()
	assert.False(t, toggle.On())

	toggle.Set(true)
	assert.True(t, toggle.On())
	toggle.Set(true)
	assert.True(t, toggle.On(), "set is idempotent")
}

func TestToggleKeys(t *testing.T) {
	toggle := NewToggle("Dark mode", false)

	toggle, _ = toggle.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, toggle.On())

	toggle, _ = toggle.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, toggle.On())

	toggle, _ = toggle.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.False(t, toggle.On(), "other keys are ignored")
}

func TestToggleView(t *testing.T) {
	toggle := NewToggle("Dark mode", false)
	assert.Equal(t, "[ ] Dark mode", toggle.View())

	toggle.Set(true)
	assert.Equal(t, "[x] Dark mode", toggle.View())
}
