package session

import (
	"strings"
	"time"

	"github.com/abhisek/lexiz/internal/studygen"
	"github.com/abhisek/lexiz/internal/vocab"
)

// HandleAnswer checks the learner's answer to the current quiz question and
// updates totals, streak and XP. Returns nil if there is no active question.
func HandleAnswer(state *SessionState, input string, now time.Time) *Result {
	q := state.CurrentQuestion()
	if q == nil {
		return nil
	}

	res := Result{
		RowID:      q.RowID,
		TableID:    q.TableID,
		RelationID: q.RelationID,
		Mode:       q.Type,
		Input:      strings.TrimSpace(input),
		Correct:    studygen.CheckAnswer(q, input),
		AnsweredAt: now,
	}
	return record(state, res, now)
}

// HandleScramble checks an ordering of the current scramble question's parts.
func HandleScramble(state *SessionState, parts []string, now time.Time) *Result {
	q := state.CurrentScramble()
	if q == nil {
		return nil
	}

	res := Result{
		RowID:      q.RowID,
		TableID:    q.TableID,
		RelationID: q.RelationID,
		Mode:       vocab.ModeScrambled,
		Input:      strings.Join(parts, " "),
		Correct:    studygen.CheckScramble(q, parts),
		AnsweredAt: now,
	}
	return record(state, res, now)
}

func record(state *SessionState, res Result, now time.Time) *Result {
	state.TotalQuestions++
	state.LastAnswerCorrect = res.Correct
	state.Elapsed = now.Sub(state.StartTime)

	xp := XPFor(res.Mode, res.Correct)
	if res.Correct {
		state.TotalCorrect++
		state.ConsecutiveCorrect++
		if state.ConsecutiveCorrect > state.BestStreak {
			state.BestStreak = state.ConsecutiveCorrect
		}
		if state.ConsecutiveCorrect >= state.NextStreakThreshold {
			xp += StreakBonusXP
			state.NextStreakThreshold = NextStreakThreshold(state.ConsecutiveCorrect)
		}
	} else {
		state.ConsecutiveCorrect = 0
		state.NextStreakThreshold = BaseStreakThreshold
	}

	res.XP = xp
	state.XP += xp
	state.LastXP = xp
	state.Results = append(state.Results, res)
	state.ShowingFeedback = true
	state.Phase = PhaseFeedback
	return &state.Results[len(state.Results)-1]
}

// Advance moves past the answered question.
// Returns false when the session has no more questions.
func Advance(state *SessionState) bool {
	state.ShowingFeedback = false
	state.Index++
	if state.Finished() {
		state.Phase = PhaseEnding
		return false
	}
	state.Phase = PhaseActive
	return true
}

// ApplyResults folds answer results into row statistics and returns the
// changed rows grouped by table ID. Results for unknown rows are ignored.
func ApplyResults(tables []vocab.Table, results []Result, now time.Time) map[string][]vocab.Row {
	touched := make(map[string]map[string]bool)
	for _, r := range results {
		tbl, ok := vocab.FindTable(tables, r.TableID)
		if !ok {
			continue
		}
		row, ok := tbl.Row(r.RowID)
		if !ok {
			continue
		}
		if r.Correct {
			row.Stats.Correct++
		} else {
			row.Stats.Incorrect++
		}
		row.Stats.LastStudied = now
		if touched[tbl.ID] == nil {
			touched[tbl.ID] = make(map[string]bool)
		}
		touched[tbl.ID][row.ID] = true
	}

	changed := make(map[string][]vocab.Row, len(touched))
	for tableID, rows := range touched {
		tbl, _ := vocab.FindTable(tables, tableID)
		for _, row := range tbl.Rows {
			if rows[row.ID] {
				changed[tableID] = append(changed[tableID], row)
			}
		}
	}
	return changed
}
