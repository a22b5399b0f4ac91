package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// queueRepo implements QueueRepo on top of SQLite.
type queueRepo struct {
	db *sql.DB
}

func (r *queueRepo) Save(ctx context.Context, key string, rowIDs []string) error {
	if rowIDs == nil {
		rowIDs = []string{}
	}
	ids, err := json.Marshal(rowIDs)
	if err != nil {
		return fmt.Errorf("marshal queue: %w", err)
	}

	query, args := builder().Insert("flashcard_queues").
		Columns("queue_key", "row_ids", "updated_at").
		Values(key, string(ids), toMillis(time.Now())).
		OnConflict(
			entsql.ConflictColumns("queue_key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save queue: %w", err)
	}
	return nil
}

func (r *queueRepo) Load(ctx context.Context, key string) ([]string, error) {
	query, args := builder().Select("row_ids").
		From(entsql.Table("flashcard_queues")).
		Where(entsql.EQ("queue_key", key)).
		Query()

	var raw string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load queue: %w", err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("unmarshal queue: %w", err)
	}
	return ids, nil
}

func (r *queueRepo) Delete(ctx context.Context, key string) error {
	query, args := builder().Delete("flashcard_queues").Where(entsql.EQ("queue_key", key)).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete queue: %w", err)
	}
	return nil
}
