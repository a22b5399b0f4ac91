package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/screen"
	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Err      error
}

type reviewsLoadedMsg struct {
	SessionID string
	Reviews   []store.ReviewEventData
}

// HistoryScreen lists past sessions. Enter expands a flashcard session
// into its ratings.
type HistoryScreen struct {
	svc      *sess.Service
	sessions []store.SessionSummaryRecord
	reviews  map[string][]store.ReviewEventData
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(svc *sess.Service) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		reviews:  make(map[string][]store.ReviewEventData),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		sessions, err := svc.RecentSessions(context.Background(), pageSize)
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case reviewsLoadedMsg:
		s.reviews[msg.SessionID] = msg.Reviews
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			if s.selected >= len(s.sessions) {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, s.loadReviews(s.sessions[s.selected])
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadReviews(rec store.SessionSummaryRecord) tea.Cmd {
	if rec.Reviews == 0 {
		return nil
	}
	if _, ok := s.reviews[rec.SessionID]; ok {
		return nil
	}
	svc := s.svc
	id := rec.SessionID
	return func() tea.Msg {
		reviews, _ := svc.SessionReviews(context.Background(), id)
		return reviewsLoadedMsg{SessionID: id, Reviews: reviews}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n  No sessions yet. Start studying!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.sessions {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+sessionLine(rec))))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, line := range s.detailLines(rec) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func sessionLine(rec store.SessionSummaryRecord) string {
	date := rec.Timestamp.Local().Format("Jan 02, 2006")
	dur := fmt.Sprintf("%d:%02d", rec.DurationSecs/60, rec.DurationSecs%60)

	if sess.Kind(rec.Kind) == sess.KindFlashcards {
		return fmt.Sprintf("%s  %s  %-10s  %d cards  +%d XP", date, dur, rec.Kind, rec.Questions, rec.XP)
	}
	var acc float64
	if rec.Questions > 0 {
		acc = float64(rec.Correct) / float64(rec.Questions) * 100
	}
	return fmt.Sprintf("%s  %s  %-10s  %d questions  %.0f%% accuracy  +%d XP",
		date, dur, rec.Kind, rec.Questions, acc, rec.XP)
}

func (s *HistoryScreen) detailLines(rec store.SessionSummaryRecord) []string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if rec.Reviews == 0 {
		return []string{dim.Render(fmt.Sprintf("    %d of %d correct", rec.Correct, rec.Questions))}
	}
	reviews, ok := s.reviews[rec.SessionID]
	if !ok {
		return []string{dim.Render("    Loading ratings...")}
	}

	counts := make(map[string]int)
	for _, r := range reviews {
		counts[r.Status.Label()]++
	}
	// One line per status, in order of first rating.
	var lines []string
	for _, r := range reviews {
		label := r.Status.Label()
		if counts[label] == 0 {
			continue
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.RatingColor(r.Status)).
			Render(fmt.Sprintf("    %-8s %d", label, counts[label])))
		counts[label] = 0
	}
	return lines
}
