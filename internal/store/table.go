package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/lexiz/internal/vocab"
)

// rowBatchSize keeps each multi-row INSERT well under SQLite's bind
// variable limit (len(rowColumns) variables per row).
const rowBatchSize = 500

var rowColumns = []string{
	"table_id", "id", "position", "cols",
	"correct", "incorrect", "last_studied",
	"flashcard_status", "flashcard_encounters", "last_practiced", "reviewed",
}

// tableRepo implements TableRepo on top of SQLite.
type tableRepo struct {
	db *sql.DB
}

func (r *tableRepo) Save(ctx context.Context, table *vocab.Table) error {
	columns, err := json.Marshal(table.Columns)
	if err != nil {
		return fmt.Errorf("marshal columns: %w", err)
	}
	relations, err := json.Marshal(table.Relations)
	if err != nil {
		return fmt.Errorf("marshal relations: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := toMillis(time.Now())
	query, args := builder().Insert("vocab_tables").
		Columns("id", "name", "columns", "relations", "created_at", "updated_at").
		Values(table.ID, table.Name, string(columns), string(relations), now, now).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded("name")
				u.SetExcluded("columns")
				u.SetExcluded("relations")
				u.SetExcluded("updated_at")
			}),
		).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save table: %w", err)
	}

	query, args = builder().Delete("vocab_rows").Where(entsql.EQ("table_id", table.ID)).Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear rows: %w", err)
	}

	for start := 0; start < len(table.Rows); start += rowBatchSize {
		end := min(start+rowBatchSize, len(table.Rows))
		ins := builder().Insert("vocab_rows").Columns(rowColumns...)
		for i := start; i < end; i++ {
			row := table.Rows[i]
			cols, err := json.Marshal(row.Cols)
			if err != nil {
				return fmt.Errorf("marshal row %q: %w", row.ID, err)
			}
			st := row.Stats
			ins.Values(table.ID, row.ID, i, string(cols),
				st.Correct, st.Incorrect, toMillis(st.LastStudied),
				string(st.FlashcardStatus), st.FlashcardEncounters, toMillis(st.LastPracticed), st.Reviewed)
		}
		query, args = ins.Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save rows %d-%d: %w", start, end-1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *tableRepo) Get(ctx context.Context, id string) (*vocab.Table, error) {
	query, args := builder().Select("id", "name", "columns", "relations").
		From(entsql.Table("vocab_tables")).
		Where(entsql.EQ("id", id)).
		Query()

	var (
		t                  vocab.Table
		columns, relations string
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Name, &columns, &relations)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("table %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query table: %w", err)
	}
	if err := json.Unmarshal([]byte(columns), &t.Columns); err != nil {
		return nil, fmt.Errorf("unmarshal columns: %w", err)
	}
	if err := json.Unmarshal([]byte(relations), &t.Relations); err != nil {
		return nil, fmt.Errorf("unmarshal relations: %w", err)
	}

	rows, err := r.loadRows(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Rows = rows
	return &t, nil
}

func (r *tableRepo) loadRows(ctx context.Context, tableID string) ([]vocab.Row, error) {
	query, args := builder().Select(rowColumns[1:]...).
		From(entsql.Table("vocab_rows")).
		Where(entsql.EQ("table_id", tableID)).
		OrderBy("position").
		Query()

	rs, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rs.Close()

	var out []vocab.Row
	for rs.Next() {
		var (
			row                        vocab.Row
			position                   int
			cols, status               string
			lastStudied, lastPracticed int64
		)
		err := rs.Scan(&row.ID, &position, &cols,
			&row.Stats.Correct, &row.Stats.Incorrect, &lastStudied,
			&status, &row.Stats.FlashcardEncounters, &lastPracticed, &row.Stats.Reviewed)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(cols), &row.Cols); err != nil {
			return nil, fmt.Errorf("unmarshal row %q: %w", row.ID, err)
		}
		row.Stats.LastStudied = fromMillis(lastStudied)
		row.Stats.LastPracticed = fromMillis(lastPracticed)
		row.Stats.FlashcardStatus = vocab.FlashcardStatus(status)
		out = append(out, row)
	}
	return out, rs.Err()
}

func (r *tableRepo) List(ctx context.Context) ([]vocab.Table, error) {
	summaries, err := r.Summaries(ctx)
	if err != nil {
		return nil, err
	}
	tables := make([]vocab.Table, 0, len(summaries))
	for _, s := range summaries {
		t, err := r.Get(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		tables = append(tables, *t)
	}
	return tables, nil
}

func (r *tableRepo) Summaries(ctx context.Context) ([]TableSummary, error) {
	t := entsql.Table("vocab_tables").As("t")
	query, args := builder().Select(
		t.C("id"), t.C("name"), t.C("updated_at"),
		"(SELECT COUNT(*) FROM vocab_rows r WHERE r.table_id = t.id)",
	).
		From(t).
		OrderBy(t.C("name"), t.C("id")).
		Query()

	rs, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rs.Close()

	var out []TableSummary
	for rs.Next() {
		var (
			s         TableSummary
			updatedAt int64
		)
		if err := rs.Scan(&s.ID, &s.Name, &updatedAt, &s.RowCount); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		s.UpdatedAt = fromMillis(updatedAt)
		out = append(out, s)
	}
	return out, rs.Err()
}

func (r *tableRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query, args := builder().Delete("vocab_rows").Where(entsql.EQ("table_id", id)).Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete rows: %w", err)
	}

	query, args = builder().Delete("vocab_tables").Where(entsql.EQ("id", id)).Query()
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete table: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("table %q: %w", id, ErrNotFound)
	}
	return tx.Commit()
}

func (r *tableRepo) UpdateRowStats(ctx context.Context, tableID string, rows []vocab.Row) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, row := range rows {
		st := row.Stats
		query, args := builder().Update("vocab_rows").
			Set("correct", st.Correct).
			Set("incorrect", st.Incorrect).
			Set("last_studied", toMillis(st.LastStudied)).
			Set("flashcard_status", string(st.FlashcardStatus)).
			Set("flashcard_encounters", st.FlashcardEncounters).
			Set("last_practiced", toMillis(st.LastPracticed)).
			Set("reviewed", st.Reviewed).
			Where(entsql.And(entsql.EQ("table_id", tableID), entsql.EQ("id", row.ID))).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update row %q: %w", row.ID, err)
		}
	}

	query, args := builder().Update("vocab_tables").
		Set("updated_at", toMillis(time.Now())).
		Where(entsql.EQ("id", tableID)).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("touch table: %w", err)
	}
	return tx.Commit()
}
