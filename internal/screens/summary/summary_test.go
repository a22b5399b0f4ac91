package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/vocab"
)

func testSummary() *session.SessionSummary {
	return &session.SessionSummary{
		Kind:           session.KindQuiz,
		Duration:       4 * time.Minute,
		TotalQuestions: 10,
		TotalCorrect:   8,
		Accuracy:       0.8,
		XP:             75,
		BestStreak:     6,
		TableResults: []session.TableResult{
			{TableID: "fruits", TableName: "Fruits", Attempted: 6, Correct: 6, Accuracy: 1},
			{TableID: "verbs", TableName: "Verbs", Attempted: 4, Correct: 2, Accuracy: 0.5},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	for _, want := range []string{"Session complete!", "Fruits", "Verbs", "+75 XP", "80%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_FlashcardRatings(t *testing.T) {
	s := New(&session.SessionSummary{
		Kind:           session.KindFlashcards,
		TotalQuestions: 3,
		XP:             6,
		Ratings:        map[vocab.FlashcardStatus]int{vocab.StatusGood: 2, vocab.StatusAgain: 1},
	})
	view := s.View(80, 24)
	if !strings.Contains(view, "Cards reviewed: 3") {
		t.Error("expected cards reviewed line")
	}
	if !strings.Contains(view, vocab.StatusGood.Label()+" 2") {
		t.Errorf("expected Good rating count in view")
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	if v := New(nil).View(80, 24); v != "" {
		t.Errorf("expected empty view, got %q", v)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if msg, ok := cmd().(router.PopScreenMsg); !ok || !msg.Refresh {
		t.Errorf("expected PopScreenMsg with refresh, got %#v", cmd())
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	if !s.CapturesEscape() {
		t.Error("summary should handle esc itself")
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
