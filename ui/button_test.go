package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestButtonClasses(t *testing.T) {
	tests := []struct {
		name   string
		button ButtonModel
		want   string
	}{
		{
			name:   "defaults",
			button: NewButton("Save", nil),
			want:   "btn btn-primary btn-md",
		},
		{
			name:   "danger small",
			button: ButtonModel{Variant: VariantDanger, Size: SizeSmall},
			want:   "btn btn-danger btn-sm",
		},
		{
			name:   "disabled",
			button: ButtonModel{Variant: VariantSecondary, Size: SizeLarge, Disabled: true},
			want:   "btn btn-secondary btn-lg btn-disabled",
		},
		{
			name:   "extra class",
			button: ButtonModel{Variant: VariantPrimary, Size: SizeMedium, Class: "w-full"},
			want:   "btn btn-primary btn-md w-full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.button.Classes())
		})
	}
}

func TestButtonClick(t *testing.T) {
	clicks := 0
	button := NewButton("Save", func() { clicks++ })

	button.Click()
	assert.Equal(t, 1, clicks)

	button.Disabled = true
	button.Click()
	assert.Equal(t, 1, clicks, "disabled button swallows the click")
}

func TestButtonKeysFireClick(t *testing.T) {
	clicks := 0
	button := NewButton("Save", func() { clicks++ })

	button, _ = button.Update(tea.KeyMsg{Type: tea.KeyEnter})
	button, _ = button.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 2, clicks)

	button.Disabled = true
	button, _ = button.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, clicks)
}

func TestButtonView(t *testing.T) {
	assert.Contains(t, NewButton("Save", nil).View(), "[ Save ]")
}
