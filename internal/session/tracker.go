// Package session tracks which hints and solutions a learner has seen
// during one interactive session.
package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Reveal describes how much of a problem's answer the learner has seen.
type Reveal int

const (
	RevealNone     Reveal = iota // Nothing shown
	RevealHint                   // Hint shown
	RevealSolution               // Solution shown (with or without the hint)
)

func (r Reveal) String() string {
	switch r {
	case RevealHint:
		return "hint"
	case RevealSolution:
		return "solution"
	default:
		return "none"
	}
}

// RevealKind identifies which content was revealed.
type RevealKind string

const (
	KindHint     RevealKind = "hint"
	KindSolution RevealKind = "solution"
)

// CheckAttempt is one check call as seen by the recorder.
type CheckAttempt struct {
	ProblemID int
	Name      string
	Passed    bool
	Failed    []string // failing variable names
	Usage     string   // usage error message, empty for well-formed submissions
}

// Recorder receives session activity for analytics.
type Recorder interface {
	RecordReveal(ctx context.Context, sessionID string, problemID int, name string, kind RevealKind) error
	RecordCheck(ctx context.Context, sessionID string, attempt CheckAttempt) error
}

// flags holds the reveal state of one problem.
type flags struct {
	hint     bool
	solution bool
}

// Tracker holds per-problem reveal state for one interactive session.
// It is not safe for concurrent use; a session has a single learner.
type Tracker struct {
	id       string
	flags    map[int]*flags
	recorder Recorder
}

// NewTracker creates a tracker with a fresh session ID. recorder may be nil.
func NewTracker(recorder Recorder) *Tracker {
	return &Tracker{
		id:       uuid.NewString(),
		flags:    make(map[int]*flags),
		recorder: recorder,
	}
}

// SessionID returns the UUID of the current session.
func (t *Tracker) SessionID() string {
	return t.id
}

// MarkHintShown records that the hint of problem id was shown.
// Returns true only the first time.
func (t *Tracker) MarkHintShown(id int) bool {
	f := t.get(id)
	if f.hint {
		return false
	}
	f.hint = true
	return true
}

// MarkSolutionShown records that the solution of problem id was shown.
// Returns true only the first time.
func (t *Tracker) MarkSolutionShown(id int) bool {
	f := t.get(id)
	if f.solution {
		return false
	}
	f.solution = true
	return true
}

// IsRevealed returns the strongest reveal for problem id.
func (t *Tracker) IsRevealed(id int) Reveal {
	f, ok := t.flags[id]
	switch {
	case !ok:
		return RevealNone
	case f.solution:
		return RevealSolution
	case f.hint:
		return RevealHint
	}
	return RevealNone
}

// Reset clears all flags and starts a new session ID.
func (t *Tracker) Reset() {
	t.flags = make(map[int]*flags)
	t.id = uuid.NewString()
}

// Reveal marks a reveal and forwards first reveals to the recorder.
func (t *Tracker) Reveal(ctx context.Context, id int, name string, kind RevealKind) {
	var first bool
	switch kind {
	case KindHint:
		first = t.MarkHintShown(id)
	case KindSolution:
		first = t.MarkSolutionShown(id)
	}
	if !first || t.recorder == nil {
		return
	}
	// Log the failure but don't fail the learner action.
	if err := t.recorder.RecordReveal(ctx, t.id, id, name, kind); err != nil {
		slog.Warn("failed to record reveal", "problem", name, "kind", kind, "error", err)
	}
}

// RecordCheck forwards a check attempt to the recorder, if any.
func (t *Tracker) RecordCheck(ctx context.Context, attempt CheckAttempt) {
	if t.recorder == nil {
		return
	}
	if err := t.recorder.RecordCheck(ctx, t.id, attempt); err != nil {
		slog.Warn("failed to record check", "problem", attempt.Name, "error", err)
	}
}

// get returns the flags for id, creating them on first access.
func (t *Tracker) get(id int) *flags {
	f, ok := t.flags[id]
	if !ok {
		f = &flags{}
		t.flags[id] = f
	}
	return f
}
