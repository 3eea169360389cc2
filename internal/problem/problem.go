// Package problem defines the exercise taxonomy: open-ended thought
// experiments and checkable problems that compare learner variables
// against reference values.
package problem

import (
	"fmt"
	"strings"
)

// Problem is one exercise unit.
type Problem interface {
	// Hint returns the authored hint or ErrNoHint.
	Hint() (Text, error)

	// Solution returns the authored solution or ErrNoSolution.
	Solution() (Text, error)

	// Vars returns the declared variable names in order. Empty for
	// problems without a checkable answer.
	Vars() []string

	// Check verifies a submission. A wrong answer is a failing Outcome,
	// never an error. Errors are usage errors or reference failures.
	Check(sub Submission) (Outcome, error)
}

// Submission maps learner variable names to their values.
type Submission map[string]any

// Text is authored hint or solution content.
type Text struct {
	Body string

	// Code marks the body as a code sample to be rendered as source.
	Code bool
}

// Plain wraps plain authored text. It may embed fenced code blocks.
func Plain(s string) Text { return Text{Body: s} }

// CodeSample wraps a code listing.
func CodeSample(s string) Text { return Text{Body: strings.Trim(s, "\n"), Code: true} }

// IsZero reports whether no content was authored.
func (t Text) IsZero() bool { return strings.TrimSpace(t.Body) == "" }

func (t Text) String() string { return t.Body }

// Failure names a variable whose value did not match.
type Failure struct {
	Name   string
	Detail string
}

// Outcome is the result of a well-formed check.
type Outcome struct {
	Passed   bool
	Failures []Failure
}

// Pass returns a passing outcome.
func Pass() Outcome { return Outcome{Passed: true} }

// FailedNames returns the names of the failing variables in order.
func (o Outcome) FailedNames() []string {
	names := make([]string, len(o.Failures))
	for i, f := range o.Failures {
		names[i] = f.Name
	}
	return names
}

// Message renders the outcome as learner feedback.
func (o Outcome) Message() string {
	if o.Passed {
		return "Correct"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Incorrect value for %s", strings.Join(o.FailedNames(), ", "))
	for _, f := range o.Failures {
		if f.Detail != "" {
			fmt.Fprintf(&b, "\n  %s: %s", f.Name, f.Detail)
		}
	}
	return b.String()
}

// content holds the hint and solution shared by every variant.
type content struct {
	hint     Text
	solution Text
}

func (c content) Hint() (Text, error) {
	if c.hint.IsZero() {
		return Text{}, ErrNoHint
	}
	return c.hint, nil
}

func (c content) Solution() (Text, error) {
	if c.solution.IsZero() {
		return Text{}, ErrNoSolution
	}
	return c.solution, nil
}
