package flashcard

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexiz/internal/vocab"
)

// AgainOffset is how many slots back an Again card is reinserted.
const AgainOffset = 1

// multipliers scale the remaining tail length into a reinsertion offset.
var multipliers = map[vocab.FlashcardStatus]float64{
	vocab.StatusHard:    0.25,
	vocab.StatusGood:    0.5,
	vocab.StatusEasy:    0.75,
	vocab.StatusPerfect: 1.0,
}

// Review is one rating given during a session.
type Review struct {
	RowID     string
	Status    vocab.FlashcardStatus
	Timestamp time.Time
}

// Session tracks the review order of an active flashcard session.
type Session struct {
	ID          string
	TableIDs    []string
	RelationIDs []string

	// Queue is the remaining study order; Queue[CurrentIndex] is shown next.
	Queue        []string
	CurrentIndex int

	SessionEncounters int
	StartTime         time.Time
	History           []Review
}

// NewSession starts a session over the given queue. The queue is copied.
func NewSession(tableIDs, relationIDs, queue []string, now time.Time) *Session {
	return &Session{
		ID:          uuid.New().String(),
		TableIDs:    slices.Clone(tableIDs),
		RelationIDs: slices.Clone(relationIDs),
		Queue:       slices.Clone(queue),
		StartTime:   now,
	}
}

// Key returns the saved-queue key for this session's tables and relations.
func (s *Session) Key() string {
	return QueueKey(s.TableIDs, s.RelationIDs)
}

// Current returns the row to show next, or false if the queue is empty.
func (s *Session) Current() (string, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Queue) {
		return "", false
	}
	return s.Queue[s.CurrentIndex], true
}

// InsertOffset returns how far behind the current position a card rated
// status is reinserted, given the number of cards after it.
// Any status that is not a known rating behaves like Again.
func InsertOffset(status vocab.FlashcardStatus, remaining int) int {
	mult, ok := multipliers[status]
	if !ok {
		return AgainOffset
	}
	return int(math.Round(float64(remaining) * mult))
}

// Rate records a rating for the current card and moves it back in the queue.
// It is a no-op on an empty queue.
func (s *Session) Rate(status vocab.FlashcardStatus, now time.Time) {
	rowID, ok := s.Current()
	if !ok {
		return
	}

	remaining := len(s.Queue) - s.CurrentIndex - 1
	offset := InsertOffset(status, remaining)

	queue := slices.Delete(slices.Clone(s.Queue), s.CurrentIndex, s.CurrentIndex+1)
	pos := s.CurrentIndex + offset
	if pos > len(queue) {
		pos = len(queue)
	}
	s.Queue = slices.Insert(queue, pos, rowID)

	if s.CurrentIndex > len(s.Queue)-1 {
		s.CurrentIndex = len(s.Queue) - 1
	}

	s.History = append(s.History, Review{RowID: rowID, Status: status, Timestamp: now})
	s.SessionEncounters++
}

// Seen returns the number of distinct rows rated so far.
func (s *Session) Seen() int {
	seen := make(map[string]bool, len(s.History))
	for _, r := range s.History {
		seen[r.RowID] = true
	}
	return len(seen)
}

// Done reports whether every queued row has been rated at least once.
// The queue itself never empties; this is the usual place to stop.
func (s *Session) Done() bool {
	return len(s.Queue) == 0 || s.Seen() >= len(s.Queue)
}

// Elapsed returns the time since the session started.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}
