// Package console is an interactive bubbletea session over one integer list.
//
// Each line typed at the prompt is run through [Exec]:
//
//	add 5        append 5
//	insert 0 7   insert 7 before index 0
//	sort desc    sort with a named order
//
// # Key Bindings
//
//	Enter   - run the current line
//	Up/Down - recall previous lines
//	Esc     - clear the line
//	Ctrl+C  - quit
package console

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/dynlist/internal/arraylist"
	"github.com/san-kum/dynlist/internal/orders"
)

const maxHistory = 8

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type entry struct {
	line   string
	output string
	failed bool
}

type model struct {
	list   *arraylist.ArrayList[int]
	orders *orders.Registry[int]

	input   string
	history []entry
	recall  int

	width int
}

// New returns the console model over list.
func New(list *arraylist.ArrayList[int], reg *orders.Registry[int]) tea.Model {
	return model{
		list:   list,
		orders: reg,
		recall: -1,
		width:  80,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.run()
	case tea.KeyEsc:
		m.input = ""
		m.recall = -1
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyUp:
		if m.recall < len(m.history)-1 {
			m.recall++
			m.input = m.history[len(m.history)-1-m.recall].line
		}
	case tea.KeyDown:
		if m.recall > 0 {
			m.recall--
			m.input = m.history[len(m.history)-1-m.recall].line
		} else {
			m.recall = -1
			m.input = ""
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m model) run() (model, tea.Cmd) {
	line := strings.TrimSpace(m.input)
	m.input = ""
	m.recall = -1
	if line == "" {
		return m, nil
	}

	out, err := Exec(m.list, m.orders, line)
	if errors.Is(err, ErrQuit) {
		return m, tea.Quit
	}

	e := entry{line: line, output: out}
	if err != nil {
		e.output = err.Error()
		e.failed = true
	}
	m.history = append(m.history, e)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("d y n l i s t") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	contents := m.list.String()
	if limit := m.width - 8; limit > 3 && len(contents) > limit {
		contents = contents[:limit-3] + "..."
	}
	b.WriteString("    " + white.Render(contents) + "\n")
	b.WriteString("    " + dim.Render(fmt.Sprintf("size %d   capacity %d", m.list.Size(), m.list.Cap())) + "\n")
	b.WriteString(dimmer.Render("    "+strings.Repeat("─", 30)) + "\n")

	for _, e := range m.history {
		b.WriteString("    " + dim.Render("› "+e.line) + "\n")
		if e.failed {
			b.WriteString("      " + red.Render(e.output) + "\n")
		} else if e.output != "" {
			b.WriteString("      " + green.Render(e.output) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("    " + magenta.Render("› ") + white.Render(m.input) + cyan.Render("▋") + "\n\n")
	b.WriteString(dim.Render("    "+helpText) + "\n")
	b.WriteString(dim.Render("    orders: "+strings.Join(m.orders.List(), " ")+"   ↑↓ history   ctrl+c quit") + "\n")

	return b.String()
}

// Run starts the console on the terminal.
func Run(list *arraylist.ArrayList[int], reg *orders.Registry[int]) error {
	p := tea.NewProgram(New(list, reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
