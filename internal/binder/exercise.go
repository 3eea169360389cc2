package binder

import (
	"context"
	"errors"

	"github.com/abhisek/learnkit/internal/problem"
	"github.com/abhisek/learnkit/internal/session"
)

// Exercise is a bound problem: the handle a delivery tool calls into.
type Exercise struct {
	ID      int
	Name    string
	Key     string
	Problem problem.Problem

	tracker *session.Tracker
}

// Hint returns the hint and marks it shown. Missing content returns
// problem.ErrNoHint and leaves the session untouched.
func (e *Exercise) Hint(ctx context.Context) (problem.Text, error) {
	text, err := e.Problem.Hint()
	if err != nil {
		return problem.Text{}, err
	}
	e.tracker.Reveal(ctx, e.ID, e.Name, session.KindHint)
	return text, nil
}

// Solution returns the solution and marks it shown. Missing content returns
// problem.ErrNoSolution and leaves the session untouched.
func (e *Exercise) Solution(ctx context.Context) (problem.Text, error) {
	text, err := e.Problem.Solution()
	if err != nil {
		return problem.Text{}, err
	}
	e.tracker.Reveal(ctx, e.ID, e.Name, session.KindSolution)
	return text, nil
}

// Check verifies the submission and records the attempt.
func (e *Exercise) Check(ctx context.Context, sub problem.Submission) (problem.Outcome, error) {
	out, err := e.Problem.Check(sub)

	attempt := session.CheckAttempt{
		ProblemID: e.ID,
		Name:      e.Name,
		Passed:    err == nil && out.Passed,
		Failed:    out.FailedNames(),
	}
	var ue *problem.UsageError
	if errors.As(err, &ue) {
		attempt.Usage = ue.Error()
	}
	if err == nil || attempt.Usage != "" {
		e.tracker.RecordCheck(ctx, attempt)
	}
	return out, err
}

// Vars returns the variable names the exercise expects.
func (e *Exercise) Vars() []string {
	return e.Problem.Vars()
}

// Checkable reports whether the exercise has a computable answer.
func (e *Exercise) Checkable() bool {
	return len(e.Problem.Vars()) > 0
}

// Revealed returns the current reveal state of the exercise.
func (e *Exercise) Revealed() session.Reveal {
	return e.tracker.IsRevealed(e.ID)
}

// SessionID returns the ID of the session this exercise reports to.
func (e *Exercise) SessionID() string {
	return e.tracker.SessionID()
}
