package problem

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUsage is matched by every error that signals a defect in course
// content or delivery tooling rather than a wrong answer.
var ErrUsage = errors.New("usage error")

// ErrNoHint is returned when a hint is requested but none was authored.
var ErrNoHint = errors.New("no hint available")

// ErrNoSolution is returned when a solution is requested but none was authored.
var ErrNoSolution = errors.New("no solution available")

// UsageError describes a malformed submission or a broken exercise definition.
type UsageError struct {
	Missing    []string // declared names absent from the submission
	Unexpected []string // submitted names that were not declared
	Reason     string
	Err        error
}

func (e *UsageError) Error() string {
	var parts []string
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing variables: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected variables: %s", strings.Join(e.Unexpected, ", ")))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return ErrUsage.Error()
	}
	return "usage error: " + strings.Join(parts, "; ")
}

func (e *UsageError) Unwrap() error { return e.Err }

// Is makes every UsageError match ErrUsage.
func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// IsMissingContent reports whether err means a hint or solution was not authored.
func IsMissingContent(err error) bool {
	return errors.Is(err, ErrNoHint) || errors.Is(err, ErrNoSolution)
}
