package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/lexiz/internal/vocab"
)

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	e := entsql.Table("session_events").As("e")
	sel := builder().Select(
		e.C("session_id"), e.C("kind"), e.C("timestamp"), e.C("questions"),
		e.C("correct"), e.C("xp"), e.C("duration_secs"),
		"(SELECT COUNT(*) FROM review_events v WHERE v.session_id = e.session_id)",
	).
		From(e).
		Where(entsql.EQ(e.C("phase"), ActionEnd)).
		OrderBy(entsql.Desc(e.C("sequence")))

	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(e.C("timestamp"), toMillis(opts.From)))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(e.C("timestamp"), toMillis(opts.To)))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rs, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rs.Close()

	var out []SessionSummaryRecord
	for rs.Next() {
		var (
			rec SessionSummaryRecord
			ts  int64
		)
		err := rs.Scan(&rec.SessionID, &rec.Kind, &ts, &rec.Questions,
			&rec.Correct, &rec.XP, &rec.DurationSecs, &rec.Reviews)
		if err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		rec.Timestamp = fromMillis(ts)
		out = append(out, rec)
	}
	return out, rs.Err()
}

func (r *eventRepo) QueryReviewEvents(ctx context.Context, sessionID string) ([]ReviewEventData, error) {
	query, args := builder().Select("session_id", "table_id", "row_id", "status", "timestamp").
		From(entsql.Table("review_events")).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("sequence").
		Query()

	rs, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}
	defer rs.Close()

	var out []ReviewEventData
	for rs.Next() {
		var (
			d      ReviewEventData
			status string
			ts     int64
		)
		if err := rs.Scan(&d.SessionID, &d.TableID, &d.RowID, &status, &ts); err != nil {
			return nil, fmt.Errorf("scan review event: %w", err)
		}
		d.Status = vocab.FlashcardStatus(status)
		d.Timestamp = fromMillis(ts)
		out = append(out, d)
	}
	return out, rs.Err()
}
