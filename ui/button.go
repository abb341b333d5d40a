package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Variant selects a button's color treatment.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantDanger    Variant = "danger"
)

// Size selects a button's padding.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// ButtonModel is a focusable action trigger. Enter or space fires OnClick
// unless the button is disabled.
type ButtonModel struct {
	Label    string
	Variant  Variant
	Size     Size
	Disabled bool
	Class    string
	OnClick  func()
}

// NewButton builds a primary medium button.
func NewButton(label string, onClick func()) ButtonModel {
	return ButtonModel{
		Label:   label,
		Variant: VariantPrimary,
		Size:    SizeMedium,
		OnClick: onClick,
	}
}

func (m ButtonModel) Init() tea.Cmd {
	return nil
}

func (m ButtonModel) Update(msg tea.Msg) (ButtonModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter, tea.KeySpace:
			m.Click()
		}
	}
	return m, nil
}

// Click fires OnClick. Disabled buttons swallow the click.
func (m ButtonModel) Click() {
	if m.Disabled || m.OnClick == nil {
		return
	}
	m.OnClick()
}

// Classes returns the space-joined class list for the current state, e.g.
// "btn btn-primary btn-md".
func (m ButtonModel) Classes() string {
	classes := "btn btn-" + string(m.Variant) + " btn-" + string(m.Size)
	if m.Disabled {
		classes += " btn-disabled"
	}
	if m.Class != "" {
		classes += " " + m.Class
	}
	return classes
}

func (m ButtonModel) View() string {
	style := lipgloss.NewStyle().Bold(true)
	switch m.Variant {
	case VariantDanger:
		style = style.Foreground(ColorDanger)
	case VariantSecondary:
		style = style.Foreground(ColorMuted)
	default:
		style = style.Foreground(ColorPrimary)
	}
	switch m.Size {
	case SizeSmall:
		style = style.Padding(0)
	case SizeLarge:
		style = style.Padding(0, 3)
	default:
		style = style.Padding(0, 1)
	}
	if m.Disabled {
		style = style.Faint(true)
	}
	return style.Render("[ " + m.Label + " ]")
}
