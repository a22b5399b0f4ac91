package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// The study screens need room for a card plus the word bank.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Header is what the top bar shows.
type Header struct {
	Title  string
	XP     int
	Streak int
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nLexiz needs at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the brand on the left, the screen title centered and
// lifetime XP on the right, followed by the streak while one is running.
func RenderHeader(h Header, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Lexiz")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(h.Title)

	right := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(fmt.Sprintf("✦ %d XP", h.XP))
	if h.Streak > 0 {
		right += "   " + lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d", h.Streak))
	}

	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter draws the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer, sizing the content to
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return header + "\n" + body + "\n" + footer
}
