package ui

import tea "github.com/charmbracelet/bubbletea"

// ToggleModel is an on/off switch flipped with enter or space.
type ToggleModel struct {
	Label string
	on    bool
}

// NewToggle builds a toggle in the given initial state.
func NewToggle(label string, initial bool) ToggleModel {
	return ToggleModel{Label: label, on: initial}
}

func (m ToggleModel) Init() tea.Cmd {
	return nil
}

func (m ToggleModel) Update(msg tea.Msg) (ToggleModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter, tea.KeySpace:
			m.on = !m.on
		}
	}
	return m, nil
}

// On reports the current state.
func (m ToggleModel) On() bool { return m.on }

// Toggle flips the state.
func (m *ToggleModel) Toggle() { m.on = !m.on }

// Set forces the state.
func (m *ToggleModel) Set(on bool) { m.on = on }

func (m ToggleModel) View() string {
	box := "[ ]"
	if m.on {
		box = "[x]"
	}
	if m.Label == "" {
		return box
	}
	return box + " " + m.Label
}
