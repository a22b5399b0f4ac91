package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// MultiChoice is a numbered multiple-choice selector. Options can be
// picked with the arrow keys and enter, or directly by number.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.choose(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.choose(i)
			}
		}
	}

	return m, nil
}

func (m *MultiChoice) choose(i int) {
	m.Selected = i
	m.ChosenIndex = i
	m.Submitted = true
}

// Answer returns the chosen option as the 1-based index string the answer
// checker accepts.
func (m MultiChoice) Answer() string {
	return fmt.Sprintf("%d", m.ChosenIndex+1)
}

// View renders the options, coloring correct and chosen ones once submitted.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Submitted && i == m.CorrectIndex:
			style = style.Foreground(theme.Success).Bold(true)
		case m.Submitted && i == m.ChosenIndex:
			style = style.Foreground(theme.Error).Bold(true)
		case m.Submitted:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}
	return s
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
