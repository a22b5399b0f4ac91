package store

// Event repo infrastructure.
//
// Session and review events live in separate tables. A global sequence
// shared by both gives them a single append order.

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types, so a review can be placed before or after the end of its
// session. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on top of SQLite.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert("session_events").
		Columns("sequence", "timestamp", "session_id", "kind", "phase",
			"questions", "correct", "xp", "duration_secs").
		Values(seqNum, toMillis(time.Now()), data.SessionID, data.Kind, data.Action,
			data.Questions, data.Correct, data.XP, data.DurationSecs).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	query, args := builder().Insert("review_events").
		Columns("sequence", "timestamp", "session_id", "table_id", "row_id", "status").
		Values(seqNum, toMillis(ts), data.SessionID, data.TableID, data.RowID, string(data.Status)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) TotalXP(ctx context.Context) (int, error) {
	st, err := r.Stats(ctx)
	if err != nil {
		return 0, err
	}
	return st.XP, nil
}

func (r *eventRepo) Stats(ctx context.Context) (EventStats, error) {
	var st EventStats

	query, args := builder().Select(
		"COUNT(*)",
		"COALESCE(SUM(questions), 0)",
		"COALESCE(SUM(correct), 0)",
		"COALESCE(SUM(xp), 0)",
	).
		From(entsql.Table("session_events")).
		Where(entsql.EQ("phase", ActionEnd)).
		Query()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&st.Sessions, &st.Questions, &st.Correct, &st.XP)
	if err != nil {
		return st, fmt.Errorf("query session stats: %w", err)
	}

	query, args = builder().Select("COUNT(*)").From(entsql.Table("review_events")).Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&st.Reviews); err != nil {
		return st, fmt.Errorf("query review stats: %w", err)
	}
	return st, nil
}
