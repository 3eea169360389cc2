package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/learnkit/internal/session"
)

// eventRepo implements EventRepo with ent's SQL builder over database/sql.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) RecordReveal(ctx context.Context, sessionID string, problemID int, name string, kind session.RevealKind) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(revealEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "problem_id", "problem_name", "kind").
		Values(seqNum, time.Now().UTC(), sessionID, problemID, name, string(kind)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save reveal event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecordCheck(ctx context.Context, sessionID string, a session.CheckAttempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(checkEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "problem_id", "problem_name", "passed", "failed_vars", "usage_error").
		Values(seqNum, time.Now().UTC(), sessionID, a.ProblemID, a.Name, a.Passed, strings.Join(a.Failed, ","), a.Usage).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save check event: %w", err)
	}
	return nil
}

func (r *eventRepo) RevealEvents(ctx context.Context, opts QueryOpts) ([]RevealEvent, error) {
	sel := builder().
		Select("sequence", "timestamp", "session_id", "problem_id", "problem_name", "kind").
		From(entsql.Table(revealEventsTable.Name))
	applyOpts(sel, opts)

	var events []RevealEvent
	if err := r.scan(ctx, sel, &events); err != nil {
		return nil, fmt.Errorf("query reveal events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) CheckEvents(ctx context.Context, opts QueryOpts) ([]CheckEvent, error) {
	sel := builder().
		Select("sequence", "timestamp", "session_id", "problem_id", "problem_name", "passed", "failed_vars", "usage_error").
		From(entsql.Table(checkEventsTable.Name))
	applyOpts(sel, opts)

	var events []CheckEvent
	if err := r.scan(ctx, sel, &events); err != nil {
		return nil, fmt.Errorf("query check events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) CheckStats(ctx context.Context) ([]CheckStat, error) {
	sel := builder().
		Select(
			"problem_name",
			entsql.As(entsql.Count("*"), "attempts"),
			entsql.As(entsql.Sum("passed"), "passes"),
		).
		From(entsql.Table(checkEventsTable.Name)).
		GroupBy("problem_name").
		OrderBy("problem_name")

	var stats []CheckStat
	if err := r.scan(ctx, sel, &stats); err != nil {
		return nil, fmt.Errorf("query check stats: %w", err)
	}
	return stats, nil
}

func applyOpts(sel *entsql.Selector, opts QueryOpts) {
	var preds []*entsql.Predicate
	if opts.SessionID != "" {
		preds = append(preds, entsql.EQ("session_id", opts.SessionID))
	}
	if opts.ProblemName != "" {
		preds = append(preds, entsql.EQ("problem_name", opts.ProblemName))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy("sequence")
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}

func (r *eventRepo) scan(ctx context.Context, sel *entsql.Selector, dst any) error {
	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	return entsql.ScanSlice(rows, dst)
}
