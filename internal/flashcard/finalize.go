package flashcard

import (
	"time"

	"github.com/abhisek/lexiz/internal/vocab"
)

// RowUpdate is the per-row outcome of a finished session.
type RowUpdate struct {
	RowID string

	// Status is the last rating given to the row.
	Status vocab.FlashcardStatus

	// Encounters is the number of ratings given to the row this session.
	Encounters int

	PracticedAt time.Time
}

// Finalize summarizes the history into one update per touched row,
// in order of first review.
func (s *Session) Finalize(now time.Time) []RowUpdate {
	index := make(map[string]int)
	var updates []RowUpdate
	for _, r := range s.History {
		i, ok := index[r.RowID]
		if !ok {
			i = len(updates)
			index[r.RowID] = i
			updates = append(updates, RowUpdate{RowID: r.RowID, PracticedAt: now})
		}
		updates[i].Status = r.Status
		updates[i].Encounters++
	}
	return updates
}

// ApplyUpdates folds session updates into the matching rows of table and
// returns the rows that changed. Unknown row IDs are ignored.
func ApplyUpdates(table *vocab.Table, updates []RowUpdate) []vocab.Row {
	var changed []vocab.Row
	for _, u := range updates {
		row, ok := table.Row(u.RowID)
		if !ok {
			continue
		}
		row.Stats.FlashcardStatus = u.Status
		row.Stats.FlashcardEncounters += u.Encounters
		row.Stats.Reviewed = true
		row.Stats.LastPracticed = u.PracticedAt
		changed = append(changed, *row)
	}
	return changed
}

// StatusCounts tallies the flashcard status of every row in table.
// Rows never reviewed count as New.
func StatusCounts(table *vocab.Table) map[vocab.FlashcardStatus]int {
	counts := make(map[vocab.FlashcardStatus]int)
	for _, r := range table.Rows {
		st := r.Stats.FlashcardStatus
		if st == "" {
			st = vocab.StatusNew
		}
		counts[st]++
	}
	return counts
}
