package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BugInput is the payload handed to the form's creation callback.
type BugInput struct {
	Title       string
	Description string
}

// BugFormModel is the bug report form: a title field, a description field,
// and an onCreate callback fired on submit. Submitting with a blank title is
// a no-op, matching the server-side "Title is required" rule.
type BugFormModel struct {
	title       textinput.Model
	description textinput.Model
	focus       int
	onCreate    func(BugInput)
	styles      Styles
}

// NewBugForm builds a form with focus on the title field.
func NewBugForm(onCreate func(BugInput)) BugFormModel {
	title := textinput.New()
	title.Placeholder = "Bug title"
	title.CharLimit = 120
	title.Width = 40
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Describe the bug"
	description.CharLimit = 500
	description.Width = 40

	return BugFormModel{
		title:       title,
		description: description,
		onCreate:    onCreate,
		styles:      DefaultStyles(),
	}
}

func (m BugFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input: tab moves between fields, enter submits, and
// everything else is routed to the focused field.
func (m BugFormModel) Update(msg tea.Msg) (BugFormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyShiftTab:
			return m.cycleFocus(), nil
		case tea.KeyEnter:
			return m.Submit(), nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m BugFormModel) cycleFocus() BugFormModel {
	m.focus = (m.focus + 1) % 2
	if m.focus == 0 {
		m.title.Focus()
		m.description.Blur()
	} else {
		m.title.Blur()
		m.description.Focus()
	}
	return m
}

// Submit fires onCreate with trimmed values and clears the form. A title
// that is empty after trimming suppresses the submission entirely: no
// callback, and the typed values stay in place.
func (m BugFormModel) Submit() BugFormModel {
	title := strings.TrimSpace(m.title.Value())
	if title == "" {
		return m
	}
	if m.onCreate != nil {
		m.onCreate(BugInput{
			Title:       title,
			Description: strings.TrimSpace(m.description.Value()),
		})
	}
	m.title.SetValue("")
	m.description.SetValue("")
	return m
}

// Title returns the current title field value.
func (m BugFormModel) Title() string { return m.title.Value() }

// Description returns the current description field value.
func (m BugFormModel) Description() string { return m.description.Value() }

// SetTitle replaces the title field value.
func (m *BugFormModel) SetTitle(s string) { m.title.SetValue(s) }

// SetDescription replaces the description field value.
func (m *BugFormModel) SetDescription(s string) { m.description.SetValue(s) }

func (m BugFormModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Report a Bug"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Description"))
	b.WriteString("\n")
	b.WriteString(m.description.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter: submit • tab: next field"))
	return b.String()
}
