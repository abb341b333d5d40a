package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// BugView is one row of the list as the server reports it.
type BugView struct {
	ID          string
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
}

// StatusOptions returns the selectable statuses in display order.
func StatusOptions() []string {
	return []string{"open", "in-progress", "resolved"}
}

// BugListModel renders the reported bugs with a cursor row. Digit keys set
// the selected bug's status, d deletes it; both go through callbacks so the
// host program owns the API round trip.
type BugListModel struct {
	OnUpdateStatus func(id, status string)
	OnDelete       func(id string)

	bugs   []BugView
	cursor int
	styles Styles
}

// NewBugList builds an empty list with the given mutation callbacks.
func NewBugList(onUpdateStatus func(id, status string), onDelete func(id string)) BugListModel {
	return BugListModel{
		OnUpdateStatus: onUpdateStatus,
		OnDelete:       onDelete,
		styles:         DefaultStyles(),
	}
}

func (m BugListModel) Init() tea.Cmd {
	return nil
}

// SetBugs replaces the rows, clamping the cursor into range.
func (m *BugListModel) SetBugs(bugs []BugView) {
	m.bugs = bugs
	if m.cursor >= len(bugs) {
		m.cursor = len(bugs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Bugs returns the current rows.
func (m BugListModel) Bugs() []BugView { return m.bugs }

// Selected returns the cursor row, if any.
func (m BugListModel) Selected() (BugView, bool) {
	if len(m.bugs) == 0 {
		return BugView{}, false
	}
	return m.bugs[m.cursor], true
}

func (m BugListModel) Update(msg tea.Msg) (BugListModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.bugs)-1 {
			m.cursor++
		}
	case "1", "2", "3":
		if selected, ok := m.Selected(); ok && m.OnUpdateStatus != nil {
			m.OnUpdateStatus(selected.ID, StatusOptions()[int(key.String()[0]-'1')])
		}
	case "d":
		if selected, ok := m.Selected(); ok && m.OnDelete != nil {
			m.OnDelete(selected.ID)
		}
	}
	return m, nil
}

func (m BugListModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Reported Bugs"))
	b.WriteString("\n\n")

	if len(m.bugs) == 0 {
		b.WriteString(m.styles.Muted.Render("No bugs reported."))
		b.WriteString("\n")
		return b.String()
	}

	for i, bug := range m.bugs {
		marker := "  "
		title := bug.Title
		if i == m.cursor {
			marker = "> "
			title = m.styles.Selected.Render(title)
		}
		status := bug.Status
		if style, ok := m.styles.Status[status]; ok {
			status = style.Render(status)
		}
		b.WriteString(fmt.Sprintf("%s%s [%s] %s\n", marker, title, status, FormatDateISO(bug.CreatedAt)))
		if bug.Description != "" {
			b.WriteString(m.styles.Muted.Render("    " + bug.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("1/2/3: set status • d: delete • ↑/↓: move"))
	return b.String()
}
