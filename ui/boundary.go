package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// BoundaryModel wraps a child model and traps panics raised by its Update or
// View. After a fault the child is not invoked again until Reset; the fault
// counter is monotonic across resets. OnError fires once per fault.
type BoundaryModel struct {
	OnError   func(error)
	DevMode   bool
	ShowCount bool

	child   tea.Model
	faulted bool
	err     error
	count   int
	styles  Styles
}

// NewBoundary wraps child in a fresh boundary.
func NewBoundary(child tea.Model) *BoundaryModel {
	return &BoundaryModel{child: child, styles: DefaultStyles()}
}

func (m *BoundaryModel) Init() tea.Cmd {
	if m.faulted || m.child == nil {
		return nil
	}
	return m.child.Init()
}

// Update routes msg to the child. While faulted, only the r key is handled
// and everything else is dropped.
func (m *BoundaryModel) Update(msg tea.Msg) tea.Cmd {
	if m.faulted {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "r" {
			m.Reset()
		}
		return nil
	}

	child, cmd, err := m.updateChild(msg)
	if err != nil {
		m.trap(err)
		return nil
	}
	m.child = child
	return cmd
}

func (m *BoundaryModel) updateChild(msg tea.Msg) (child tea.Model, cmd tea.Cmd, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = faultError(r)
		}
	}()
	child, cmd = m.child.Update(msg)
	return child, cmd, nil
}

func (m *BoundaryModel) View() string {
	if !m.faulted {
		view, err := m.viewChild()
		if err == nil {
			return view
		}
		m.trap(err)
	}
	return m.fallback()
}

func (m *BoundaryModel) viewChild() (view string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = faultError(r)
		}
	}()
	return m.child.View(), nil
}

func (m *BoundaryModel) trap(err error) {
	m.faulted = true
	m.err = err
	m.count++
	if m.OnError != nil {
		m.OnError(err)
	}
}

// Reset clears the fault so the child renders again. The fault counter is
// deliberately kept.
func (m *BoundaryModel) Reset() {
	m.faulted = false
	m.err = nil
}

// Faulted reports whether the boundary is showing its fallback.
func (m *BoundaryModel) Faulted() bool { return m.faulted }

// FaultCount returns the number of faults trapped so far.
func (m *BoundaryModel) FaultCount() int { return m.count }

// Err returns the trapped error, or nil when healthy.
func (m *BoundaryModel) Err() error { return m.err }

func (m *BoundaryModel) fallback() string {
	var b strings.Builder
	b.WriteString(m.styles.Error.Render("Something went wrong"))
	b.WriteString("\n")
	b.WriteString("An unexpected error occurred in the application.")
	b.WriteString("\n")
	if m.DevMode && m.err != nil {
		b.WriteString(m.styles.Muted.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.ShowCount {
		b.WriteString(fmt.Sprintf("Error count: %d\n", m.count))
	}
	b.WriteString(m.styles.Muted.Render("r: try again"))
	return b.String()
}

func faultError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
