package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/studygen"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/theme"
	"github.com/abhisek/lexiz/internal/vocab"
)

// renderInfoLine renders the source label on the left and question
// counter, score and clock on the right.
func (s *StudyScreen) renderInfoLine(width int, label string) string {
	state := s.state
	mins := int(state.Elapsed.Minutes())
	secs := int(state.Elapsed.Seconds()) % 60

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + label)

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %s %d:%02d",
			state.Index+1, state.Len(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.TotalCorrect,
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("✦"),
			mins, secs,
		))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	progress := components.NewProgressBar("", state.Index, state.Len(), min(width-4, 60))
	return line + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()) + "\n\n"
}

// sourceLabel names the table and relation a question came from.
func (s *StudyScreen) sourceLabel(tableID, relationID string) string {
	tbl, ok := vocab.FindTable(s.tables, tableID)
	if !ok {
		return tableID
	}
	label := tbl.Name
	if rel, ok := tbl.Relation(relationID); ok {
		label += " · " + rel.Name
	}
	return label
}

func (s *StudyScreen) renderQuestion(width int) string {
	if q := s.state.CurrentQuestion(); q != nil {
		return s.renderQuizQuestion(width, q)
	}
	if sq := s.state.CurrentScramble(); sq != nil {
		return s.renderScramble(width, sq)
	}
	return components.Loading(width, "Loading question...")
}

func (s *StudyScreen) renderQuizQuestion(width int, q *studygen.Question) string {
	var b strings.Builder
	b.WriteString(s.renderInfoLine(width, s.sourceLabel(q.TableID, q.RelationID)))

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if len(q.QuestionSourceColumnNames) > 0 {
		b.WriteString(components.Centered(width, strings.Join(q.QuestionSourceColumnNames, studygen.AnswerSeparator), dim))
		b.WriteString("\n")
	}
	b.WriteString(components.Centered(width, q.QuestionText,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true)))
	b.WriteString("\n\n")

	switch q.Type {
	case vocab.ModeMultipleChoice:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
		b.WriteString("\n")
		b.WriteString(components.Centered(width, "Select (1-3) or use arrows + Enter", dim))
	case vocab.ModeTrueFalse:
		b.WriteString(components.Centered(width, "= "+q.ShownAnswer,
			lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)))
		b.WriteString("\n\n")
		b.WriteString(components.Centered(width, "Is this pairing right?  [Y] True   [N] False", dim))
	default:
		b.WriteString(components.Centered(width, "Answer: "+s.input.View(), lipgloss.NewStyle()))
	}
	return b.String()
}

func (s *StudyScreen) renderScramble(width int, sq *studygen.ScrambleQuestion) string {
	var b strings.Builder
	b.WriteString(s.renderInfoLine(width, s.sourceLabel(sq.TableID, sq.RelationID)))

	cw := components.ContentWidth(width)
	if sq.InteractionMode == studygen.InteractionType {
		parts := make([]string, len(sq.ScrambledParts))
		for i, p := range sq.ScrambledParts {
			parts[i] = theme.Chip.Render(p)
		}
		bank := lipgloss.NewStyle().Width(cw).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bank))
		b.WriteString("\n\n")
		b.WriteString(components.Centered(width, "Sentence: "+s.input.View(), lipgloss.NewStyle()))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.bank.View(cw)))
	return b.String()
}

func (s *StudyScreen) renderFeedback(width int) string {
	state := s.state
	var b strings.Builder
	b.WriteString("\n\n")

	if state.LastAnswerCorrect {
		b.WriteString(components.Centered(width, "Correct!", theme.Correct))
	} else {
		b.WriteString(components.Centered(width, "Not quite", theme.Incorrect))
		if want := s.expectedAnswer(); want != "" {
			b.WriteString("\n")
			b.WriteString(components.Centered(width, "Correct answer: "+want,
				lipgloss.NewStyle().Foreground(theme.TextDim)))
		}
	}
	b.WriteString("\n\n")

	if state.LastXP > 0 {
		b.WriteString(components.Centered(width, fmt.Sprintf("+%d XP", state.LastXP),
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)))
		b.WriteString("\n")
	}
	if state.LastAnswerCorrect && state.ConsecutiveCorrect >= sess.BaseStreakThreshold {
		b.WriteString(components.Centered(width, fmt.Sprintf("🔥 %d in a row!", state.ConsecutiveCorrect),
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.Centered(width, "Press any key to continue...",
		lipgloss.NewStyle().Foreground(theme.TextDim)))
	return b.String()
}

// expectedAnswer describes the right answer to the question just answered.
func (s *StudyScreen) expectedAnswer() string {
	if q := s.state.CurrentQuestion(); q != nil {
		if q.Type == vocab.ModeTrueFalse {
			if q.PairingCorrect {
				return "True"
			}
			return "False (" + q.CorrectAnswer + ")"
		}
		return q.CorrectAnswer
	}
	if sq := s.state.CurrentScramble(); sq != nil {
		return sq.OriginalSentence
	}
	return ""
}
