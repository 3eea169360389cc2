package store

import (
	"context"
	"time"

	"github.com/abhisek/learnkit/internal/session"
)

// QueryOpts filters event queries.
type QueryOpts struct {
	SessionID   string // only this session ("" = all)
	ProblemName string // only this exercise ("" = all)
	Limit       int    // max results (0 = unlimited)
}

// RevealEvent records that a hint or solution was shown for the first
// time in a session.
type RevealEvent struct {
	Sequence    int64     `sql:"sequence"`
	Timestamp   time.Time `sql:"timestamp"`
	SessionID   string    `sql:"session_id"`
	ProblemID   int       `sql:"problem_id"`
	ProblemName string    `sql:"problem_name"`
	Kind        string    `sql:"kind"`
}

// CheckEvent records one check attempt.
type CheckEvent struct {
	Sequence    int64     `sql:"sequence"`
	Timestamp   time.Time `sql:"timestamp"`
	SessionID   string    `sql:"session_id"`
	ProblemID   int       `sql:"problem_id"`
	ProblemName string    `sql:"problem_name"`
	Passed      bool      `sql:"passed"`
	FailedVars  string    `sql:"failed_vars"`
	UsageError  string    `sql:"usage_error"`
}

// CheckStat aggregates check attempts per exercise.
type CheckStat struct {
	ProblemName string `sql:"problem_name"`
	Attempts    int    `sql:"attempts"`
	Passes      int    `sql:"passes"`
}

// EventRepo appends and queries session events. It satisfies
// session.Recorder.
type EventRepo interface {
	session.Recorder

	// RevealEvents returns reveal events in sequence order.
	RevealEvents(ctx context.Context, opts QueryOpts) ([]RevealEvent, error)

	// CheckEvents returns check events in sequence order.
	CheckEvents(ctx context.Context, opts QueryOpts) ([]CheckEvent, error)

	// CheckStats returns attempt and pass counts per exercise, by name.
	CheckStats(ctx context.Context) ([]CheckStat, error)
}
