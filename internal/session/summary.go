package session

import (
	"time"

	"github.com/abhisek/lexiz/internal/flashcard"
	"github.com/abhisek/lexiz/internal/vocab"
)

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Kind           Kind
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	XP             int
	BestStreak     int
	TableResults   []TableResult

	// Ratings counts flashcard ratings by status. Only set for flashcard sessions.
	Ratings map[vocab.FlashcardStatus]int
}

// BuildSummary creates a SessionSummary from a finished quiz or scramble session.
// Table results are listed in order of first appearance.
func BuildSummary(state *SessionState, tables []vocab.Table) *SessionSummary {
	var results []TableResult
	index := make(map[string]int)
	for _, r := range state.Results {
		i, ok := index[r.TableID]
		if !ok {
			i = len(results)
			index[r.TableID] = i
			tr := TableResult{TableID: r.TableID, TableName: r.TableID}
			if tbl, found := vocab.FindTable(tables, r.TableID); found && tbl.Name != "" {
				tr.TableName = tbl.Name
			}
			results = append(results, tr)
		}
		results[i].Record(r.Correct)
	}

	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	return &SessionSummary{
		Kind:           state.Kind,
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		XP:             state.XP,
		BestStreak:     state.BestStreak,
		TableResults:   results,
	}
}

// BuildFlashcardSummary creates a SessionSummary for a flashcard session.
func BuildFlashcardSummary(fs *flashcard.Session, now time.Time) *SessionSummary {
	ratings := make(map[vocab.FlashcardStatus]int)
	for _, r := range fs.History {
		ratings[r.Status]++
	}
	return &SessionSummary{
		Kind:           KindFlashcards,
		Duration:       fs.Elapsed(now),
		TotalQuestions: len(fs.History),
		XP:             len(fs.History) * FlashcardXP,
		Ratings:        ratings,
	}
}
