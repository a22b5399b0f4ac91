package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

func centered(width int, fg lipgloss.Style, text string) string {
	return fg.Width(width).Align(lipgloss.Center).Render(text)
}

// QuitConfirm renders the "end session early?" dialog.
func QuitConfirm(width int, what string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
		fmt.Sprintf("End %s early?", what)))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim),
		"Your progress will be saved."))
	b.WriteString("\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, end it"))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}

// Loading renders a dim placeholder while a screen initializes.
func Loading(width int, text string) string {
	return centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), "\n\n\n  "+text)
}

// ErrorView renders an error with a hint to go back.
func ErrorView(width int, msg string) string {
	return centered(width, lipgloss.NewStyle().Foreground(theme.Error),
		fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", msg))
}

// Centered renders text centered across width in the given color.
func Centered(width int, text string, fg lipgloss.Style) string {
	return centered(width, fg, text)
}
