package session

import (
	"context"
	"errors"
	"testing"
)

type fakeRecorder struct {
	reveals []RevealKind
	checks  []CheckAttempt
	err     error
}

func (f *fakeRecorder) RecordReveal(_ context.Context, _ string, _ int, _ string, kind RevealKind) error {
	f.reveals = append(f.reveals, kind)
	return f.err
}

func (f *fakeRecorder) RecordCheck(_ context.Context, _ string, a CheckAttempt) error {
	f.checks = append(f.checks, a)
	return f.err
}

func TestTracker_RevealLevels(t *testing.T) {
	tr := NewTracker(nil)

	if got := tr.IsRevealed(1); got != RevealNone {
		t.Errorf("IsRevealed before any reveal = %v, want none", got)
	}

	if !tr.MarkHintShown(1) {
		t.Error("first MarkHintShown should report a transition")
	}
	if tr.MarkHintShown(1) {
		t.Error("second MarkHintShown should be a no-op")
	}
	if got := tr.IsRevealed(1); got != RevealHint {
		t.Errorf("IsRevealed after hint = %v, want hint", got)
	}

	tr.MarkSolutionShown(1)
	if got := tr.IsRevealed(1); got != RevealSolution {
		t.Errorf("IsRevealed after solution = %v, want solution", got)
	}

	if got := tr.IsRevealed(2); got != RevealNone {
		t.Errorf("other problems unaffected, got %v", got)
	}
}

func TestTracker_SolutionWithoutHint(t *testing.T) {
	tr := NewTracker(nil)
	tr.MarkSolutionShown(3)
	if got := tr.IsRevealed(3); got != RevealSolution {
		t.Errorf("IsRevealed = %v, want solution", got)
	}
}

func TestTracker_ResetStartsNewSession(t *testing.T) {
	tr := NewTracker(nil)
	before := tr.SessionID()
	tr.MarkHintShown(1)

	tr.Reset()

	if tr.SessionID() == before {
		t.Error("Reset should issue a new session ID")
	}
	if got := tr.IsRevealed(1); got != RevealNone {
		t.Errorf("IsRevealed after reset = %v, want none", got)
	}
}

func TestTracker_RecordsFirstRevealOnly(t *testing.T) {
	rec := &fakeRecorder{}
	tr := NewTracker(rec)
	ctx := context.Background()

	for range 3 {
		tr.Reveal(ctx, 1, "q_1", KindHint)
	}
	tr.Reveal(ctx, 1, "q_1", KindSolution)
	tr.Reveal(ctx, 1, "q_1", KindSolution)

	if len(rec.reveals) != 2 {
		t.Fatalf("recorded %d reveals, want 2", len(rec.reveals))
	}
	if rec.reveals[0] != KindHint || rec.reveals[1] != KindSolution {
		t.Errorf("reveals = %v", rec.reveals)
	}
}

func TestTracker_RecorderErrorsAreSwallowed(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	tr := NewTracker(rec)

	tr.Reveal(context.Background(), 1, "q_1", KindHint)
	tr.RecordCheck(context.Background(), CheckAttempt{ProblemID: 1, Name: "q_1"})

	if got := tr.IsRevealed(1); got != RevealHint {
		t.Errorf("reveal state must update even if recording fails, got %v", got)
	}
	if len(rec.checks) != 1 {
		t.Errorf("recorded %d checks, want 1", len(rec.checks))
	}
}

func TestReveal_String(t *testing.T) {
	tests := []struct {
		r    Reveal
		want string
	}{
		{RevealNone, "none"},
		{RevealHint, "hint"},
		{RevealSolution, "solution"},
	}
	for _, tc := range tests {
		if got := tc.r.String(); got != tc.want {
			t.Errorf("Reveal(%d).String() = %q, want %q", tc.r, got, tc.want)
		}
	}
}
