package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

const titleFull = ` ██╗     ███████╗██╗  ██╗██╗███████╗
 ██║     ██╔════╝╚██╗██╔╝██║╚══███╔╝
 ██║     █████╗   ╚███╔╝ ██║  ███╔╝
 ██║     ██╔══╝   ██╔██╗ ██║ ███╔╝
 ███████╗███████╗██╔╝ ██╗██║███████╗
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝╚══════╝`

const titleCompact = "L · E · X · I · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(art))
}

// renderStatsBar renders table, word and practice counts in a bordered box.
func renderStatsBar(st stats, cw int, compact bool) string {
	tableStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	wordStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	practicedStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			tableStyle.Render(fmt.Sprintf("▤%d", st.Tables)),
			wordStyle.Render(fmt.Sprintf("≡%d", st.Words)),
			practicedStyle.Render(fmt.Sprintf("✓%d", st.Practiced)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			tableStyle.Render(fmt.Sprintf("▤ %d TABLES", st.Tables)),
			wordStyle.Render(fmt.Sprintf("≡ %d WORDS", st.Words)),
			practicedStyle.Render(fmt.Sprintf("✓ %d PRACTICED", st.Practiced)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderFilter renders the table selector as a row of tabs.
func renderFilter(labels []string, selected, cw int) string {
	tabs := make([]string, len(labels))
	for i, l := range labels {
		tabs[i] = components.Tab(l, i == selected)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(row) > cw {
		// Too many tables to show side by side; show only the current one.
		row = lipgloss.NewStyle().Foreground(theme.TextDim).Render("◂ ") +
			components.Tab(labels[selected], true) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(" ▸")
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(row)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []components.MenuItem, selected int, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	var buttons []string
	for i, item := range items {
		switch {
		case item.Disabled:
			buttons = append(buttons, base.Foreground(theme.TextDim).BorderForeground(theme.Border).Render(item.Label))
		case i == selected:
			buttons = append(buttons, base.
				Bold(true).
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				BorderForeground(theme.ArcadeYellow).
				Render("▸ "+item.Label))
		default:
			buttons = append(buttons, base.Foreground(theme.Text).BorderForeground(theme.Border).Render(item.Label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderHint renders a dim one-line note below the menu.
func renderHint(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
