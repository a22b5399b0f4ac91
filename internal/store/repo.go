package store

import (
	"context"
	"time"

	"github.com/abhisek/lexiz/internal/vocab"
)

// TableSummary is a lightweight listing entry for a stored table.
type TableSummary struct {
	ID        string
	Name      string
	RowCount  int
	UpdatedAt time.Time
}

// TableRepo persists vocabulary tables together with per-row learner stats.
type TableRepo interface {
	// Save inserts or replaces the table, its columns, relations and rows.
	Save(ctx context.Context, table *vocab.Table) error

	// Get returns the table with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*vocab.Table, error)

	// List returns every stored table, ordered by name.
	List(ctx context.Context) ([]vocab.Table, error)

	// Summaries lists tables without loading their rows.
	Summaries(ctx context.Context) ([]TableSummary, error)

	// Delete removes a table and its rows. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// UpdateRowStats writes the Stats of each row back to the store.
	UpdateRowStats(ctx context.Context, tableID string, rows []vocab.Row) error
}

// QueueRepo stores flashcard queues keyed by table and relation selection.
type QueueRepo interface {
	Save(ctx context.Context, key string, rowIDs []string) error

	// Load returns the saved queue, or nil if none exists.
	Load(ctx context.Context, key string) ([]string, error)

	Delete(ctx context.Context, key string) error
}

// Session event actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// SessionEventData captures the data for a session start or end event.
type SessionEventData struct {
	SessionID    string
	Kind         string
	Action       string
	Questions    int
	Correct      int
	XP           int
	DurationSecs int
}

// ReviewEventData captures a single flashcard rating.
type ReviewEventData struct {
	SessionID string
	TableID   string
	RowID     string
	Status    vocab.FlashcardStatus
	Timestamp time.Time
}

// EventStats aggregates finished sessions.
type EventStats struct {
	Sessions  int
	Questions int
	Correct   int
	XP        int
	Reviews   int
}

// QueryOpts filters and limits event queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// SessionSummaryRecord is one finished session, as shown in history.
type SessionSummaryRecord struct {
	SessionID    string
	Kind         string
	Timestamp    time.Time
	Questions    int
	Correct      int
	XP           int
	DurationSecs int
	Reviews      int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// TotalXP sums the XP of every finished session.
	TotalXP(ctx context.Context) (int, error)

	// Stats aggregates finished sessions and flashcard reviews.
	Stats(ctx context.Context) (EventStats, error)

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryReviewEvents returns the flashcard ratings of one session in order.
	QueryReviewEvents(ctx context.Context, sessionID string) ([]ReviewEventData, error)
}
