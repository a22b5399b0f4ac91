package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.step(-1)
	case "down", "j":
		m.Selected = m.step(1)
	case "enter":
		if item, ok := m.Current(); ok && item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}

	return m, nil
}

func (m Menu) step(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

// Current returns the selected item.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			s += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("    "+item.Label) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+item.Label) + "\n"
		default:
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+item.Label) + "\n"
		}
	}
	return s
}
