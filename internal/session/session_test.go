package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/lexiz/internal/studygen"
	"github.com/abhisek/lexiz/internal/vocab"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func typingQuestions(n int) []studygen.Question {
	qs := make([]studygen.Question, n)
	for i := range qs {
		qs[i] = studygen.Question{
			RowID:         fmt.Sprintf("r%d", i),
			TableID:       "t1",
			RelationID:    "rel",
			QuestionText:  fmt.Sprintf("q%d", i),
			CorrectAnswer: fmt.Sprintf("a%d", i),
			Type:          vocab.ModeTyping,
		}
	}
	return qs
}

func testState(n int) *SessionState {
	return NewQuizState("test-session-id", typingQuestions(n), t0)
}

func TestHandleAnswer_Correct(t *testing.T) {
	state := testState(2)

	res := HandleAnswer(state, "  A0 ", t0.Add(3*time.Second))
	if res == nil {
		t.Fatal("expected a result")
	}
	if !res.Correct {
		t.Error("expected answer to be correct")
	}
	if res.XP != 10 {
		t.Errorf("XP = %d, want 10", res.XP)
	}
	if state.TotalQuestions != 1 || state.TotalCorrect != 1 {
		t.Errorf("totals = %d/%d, want 1/1", state.TotalCorrect, state.TotalQuestions)
	}
	if state.Phase != PhaseFeedback || !state.ShowingFeedback {
		t.Error("expected feedback phase after answering")
	}
	if state.Elapsed != 3*time.Second {
		t.Errorf("Elapsed = %v, want 3s", state.Elapsed)
	}
}

func TestHandleAnswer_WrongResetsStreak(t *testing.T) {
	state := testState(3)
	HandleAnswer(state, "a0", t0)
	Advance(state)
	HandleAnswer(state, "a1", t0)
	Advance(state)

	if state.ConsecutiveCorrect != 2 {
		t.Fatalf("ConsecutiveCorrect = %d, want 2", state.ConsecutiveCorrect)
	}

	res := HandleAnswer(state, "nope", t0)
	if res.Correct {
		t.Error("expected wrong answer")
	}
	if res.XP != 0 {
		t.Errorf("XP = %d, want 0 for a wrong answer", res.XP)
	}
	if state.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d, want 0", state.ConsecutiveCorrect)
	}
	if state.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", state.BestStreak)
	}
	if state.XP != 20 {
		t.Errorf("XP = %d, want 20", state.XP)
	}
}

func TestHandleAnswer_StreakBonus(t *testing.T) {
	state := testState(10)
	for i := 0; i < 10; i++ {
		HandleAnswer(state, fmt.Sprintf("a%d", i), t0)
		if i == 4 && state.LastXP != 10+StreakBonusXP {
			t.Errorf("5th answer XP = %d, want %d", state.LastXP, 10+StreakBonusXP)
		}
		Advance(state)
	}

	// 10 answers at 10 XP, plus bonuses at 5 and 10.
	if state.XP != 100+2*StreakBonusXP {
		t.Errorf("XP = %d, want %d", state.XP, 100+2*StreakBonusXP)
	}
	if state.NextStreakThreshold != 15 {
		t.Errorf("NextStreakThreshold = %d, want 15", state.NextStreakThreshold)
	}
}

func TestHandleAnswer_NoActiveQuestion(t *testing.T) {
	state := testState(0)
	if res := HandleAnswer(state, "x", t0); res != nil {
		t.Error("expected nil result for empty session")
	}
	if state.TotalQuestions != 0 {
		t.Error("empty session should not count answers")
	}
}

func TestAdvance_EndsSession(t *testing.T) {
	state := testState(2)
	HandleAnswer(state, "a0", t0)
	if !Advance(state) {
		t.Error("expected more questions")
	}
	if state.Phase != PhaseActive || state.ShowingFeedback {
		t.Error("expected active phase after advancing")
	}
	HandleAnswer(state, "a1", t0)
	if Advance(state) {
		t.Error("expected session to end")
	}
	if state.Phase != PhaseEnding {
		t.Errorf("Phase = %v, want PhaseEnding", state.Phase)
	}
	if state.CurrentQuestion() != nil {
		t.Error("expected no current question after the last one")
	}
}

func TestHandleScramble(t *testing.T) {
	state := NewScrambleState("s", []studygen.ScrambleQuestion{{
		RowID:            "s1",
		TableID:          "t1",
		RelationID:       "scramble",
		OriginalSentence: "the cat sat",
		ScrambledParts:   []string{"sat", "the", "cat"},
	}}, t0)

	if state.CurrentQuestion() != nil {
		t.Error("scramble session should not expose quiz questions")
	}

	res := HandleScramble(state, []string{"The", "cat", "sat"}, t0)
	if res == nil || !res.Correct {
		t.Fatal("expected correct scramble answer")
	}
	if res.Mode != vocab.ModeScrambled {
		t.Errorf("Mode = %q, want scrambled", res.Mode)
	}
	if res.XP != 8 {
		t.Errorf("XP = %d, want 8", res.XP)
	}
	if res.Input != "The cat sat" {
		t.Errorf("Input = %q", res.Input)
	}
}

func TestApplyResults(t *testing.T) {
	tables := []vocab.Table{{
		ID:   "t1",
		Name: "Words",
		Rows: []vocab.Row{
			{ID: "r0", Stats: vocab.RowStats{Correct: 2}},
			{ID: "r1"},
			{ID: "r2"},
		},
	}}
	results := []Result{
		{RowID: "r0", TableID: "t1", Correct: true},
		{RowID: "r1", TableID: "t1", Correct: false},
		{RowID: "r0", TableID: "t1", Correct: false},
		{RowID: "gone", TableID: "t1", Correct: true},
		{RowID: "r0", TableID: "other", Correct: true},
	}
	now := t0.Add(time.Hour)

	changed := ApplyResults(tables, results, now)
	if len(changed) != 1 || len(changed["t1"]) != 2 {
		t.Fatalf("changed = %+v, want 2 rows in t1", changed)
	}
	if changed["t1"][0].ID != "r0" || changed["t1"][1].ID != "r1" {
		t.Errorf("changed rows out of table order: %+v", changed["t1"])
	}

	r0 := tables[0].Rows[0].Stats
	if r0.Correct != 3 || r0.Incorrect != 1 {
		t.Errorf("r0 stats = %d/%d, want 3 correct 1 incorrect", r0.Correct, r0.Incorrect)
	}
	if !r0.LastStudied.Equal(now) {
		t.Errorf("LastStudied = %v, want %v", r0.LastStudied, now)
	}
	if !tables[0].Rows[2].Stats.LastStudied.IsZero() {
		t.Error("untouched row should not be stamped")
	}
}
