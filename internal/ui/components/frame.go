package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every boxed section so that
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	return min(max(w, 20), 60)
}

// CabinetFrame wraps content in a double-border frame, centered within the
// given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel wraps content in a rounded-border box at content width cw.
func Panel(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Flashcard renders one side of a card. The back uses the secondary accent.
func Flashcard(text string, flipped bool, cw int) string {
	style := theme.CardFront
	if flipped {
		style = theme.CardBack
	}
	return style.Width(cw - 2).Height(7).Render(text)
}

// Tab renders a selectable label, highlighted when selected.
func Tab(label string, selected bool) string {
	if selected {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Padding(0, 1).
			Render(label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 1).
		Render(label)
}
