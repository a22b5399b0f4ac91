package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
	"github.com/abhisek/lexiz/internal/vocab"
)

// SummaryScreen displays the outcome of a finished session.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var (
	_ screen.Screen          = (*SummaryScreen)(nil)
	_ screen.KeyHintProvider = (*SummaryScreen)(nil)
	_ screen.EscapeHandler   = (*SummaryScreen)(nil)
)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) CapturesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{Refresh: true} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	text := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString(components.Centered(width, "Session complete!",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(components.Centered(width, fmt.Sprintf("Duration: %d:%02d", mins, secs), dim))
	b.WriteString("\n\n")

	if sum.Kind == session.KindFlashcards {
		b.WriteString(components.Centered(width, fmt.Sprintf("Cards reviewed: %d", sum.TotalQuestions), text))
	} else {
		b.WriteString(components.Centered(width, fmt.Sprintf(
			"Questions: %d        Correct: %d        Accuracy: %.0f%%",
			sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100), text))
	}
	b.WriteString("\n")
	xpLine := fmt.Sprintf("✦ +%d XP", sum.XP)
	if sum.BestStreak > 0 {
		xpLine += fmt.Sprintf("      🔥 best streak %d", sum.BestStreak)
	}
	b.WriteString(components.Centered(width, xpLine,
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	if len(sum.TableResults) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("Tables")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		for _, tr := range sum.TableResults {
			line := fmt.Sprintf("  %s    %d/%d correct    %.0f%%",
				tr.TableName, tr.Correct, tr.Attempted, tr.Accuracy*100)
			style := text
			if tr.Attempted > 0 && tr.Correct == tr.Attempted {
				style = style.Foreground(theme.Success)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	if len(sum.Ratings) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("Ratings")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		var parts []string
		for _, st := range vocab.Ratings {
			n := sum.Ratings[st]
			if n == 0 {
				continue
			}
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.RatingColor(st)).
				Render(fmt.Sprintf("%s %d", st.Label(), n)))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "    ")))
		b.WriteString("\n")
	}

	return b.String()
}
