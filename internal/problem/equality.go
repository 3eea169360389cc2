package problem

import (
	"fmt"
	"slices"
	"sort"

	"github.com/abhisek/learnkit/internal/compare"
)

// ReferenceFunc computes the reference values, one per declared variable
// and in declaration order. It must be deterministic.
type ReferenceFunc func() ([]any, error)

// Static returns a ReferenceFunc for fixed values.
func Static(values ...any) ReferenceFunc {
	return func() ([]any, error) { return values, nil }
}

// EqualityCheckConfig holds everything an EqualityCheck is built from.
type EqualityCheckConfig struct {
	// Vars are the expected variable names, in order.
	Vars []string

	// Reference computes the expected values for Vars.
	Reference ReferenceFunc

	Hint     Text
	Solution Text

	// Tolerance overrides compare.DefaultTolerance when non-nil.
	Tolerance *compare.Tolerance

	// Lazy defers Reference until the first Check. By default the
	// reference is computed in NewEqualityCheck so authoring errors
	// surface before any learner interaction.
	Lazy bool
}

// EqualityCheck compares learner variables against reference values.
type EqualityCheck struct {
	content
	vars      []string
	reference ReferenceFunc
	cmp       *compare.Comparator

	computed bool
	expected []any
	refErr   error
}

var _ Problem = (*EqualityCheck)(nil)

// NewEqualityCheck validates cfg and, unless cfg.Lazy is set, computes the
// reference values immediately.
func NewEqualityCheck(cfg EqualityCheckConfig) (*EqualityCheck, error) {
	if len(cfg.Vars) == 0 {
		return nil, &UsageError{Reason: "equality check declares no variables"}
	}
	if dup := duplicateName(cfg.Vars); dup != "" {
		return nil, &UsageError{Reason: fmt.Sprintf("variable %q declared twice", dup)}
	}
	if cfg.Reference == nil {
		return nil, &UsageError{Reason: "equality check has no reference computation"}
	}

	tol := compare.DefaultTolerance()
	if cfg.Tolerance != nil {
		tol = *cfg.Tolerance
	}

	p := &EqualityCheck{
		content:   content{hint: cfg.Hint, solution: cfg.Solution},
		vars:      slices.Clone(cfg.Vars),
		reference: cfg.Reference,
		cmp:       compare.New(tol),
	}
	if !cfg.Lazy {
		if _, err := p.Expected(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *EqualityCheck) Vars() []string { return slices.Clone(p.vars) }

// Expected returns the reference values, computing them on first use.
// A failed computation is memoized and returned on every call.
func (p *EqualityCheck) Expected() ([]any, error) {
	if !p.computed {
		p.computed = true
		values, err := p.reference()
		switch {
		case err != nil:
			p.refErr = fmt.Errorf("compute reference values: %w", err)
		case len(values) != len(p.vars):
			p.refErr = &UsageError{Reason: fmt.Sprintf(
				"reference computation returned %d values for %d variables", len(values), len(p.vars))}
		default:
			p.expected = values
		}
	}
	if p.refErr != nil {
		return nil, p.refErr
	}
	return slices.Clone(p.expected), nil
}

// Check requires the submission to carry exactly the declared names and
// compares each one. Failures are reported in declaration order.
func (p *EqualityCheck) Check(sub Submission) (Outcome, error) {
	if err := p.checkNames(sub); err != nil {
		return Outcome{}, err
	}
	expected, err := p.Expected()
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Passed: true}
	for i, name := range p.vars {
		if d := p.cmp.Diff(sub[name], expected[i]); d != "" {
			out.Passed = false
			out.Failures = append(out.Failures, Failure{Name: name, Detail: d})
		}
	}
	return out, nil
}

func (p *EqualityCheck) checkNames(sub Submission) error {
	var missing, unexpected []string
	for _, name := range p.vars {
		if _, ok := sub[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range sub {
		if !slices.Contains(p.vars, name) {
			unexpected = append(unexpected, name)
		}
	}
	if len(missing) == 0 && len(unexpected) == 0 {
		return nil
	}
	sort.Strings(unexpected)
	return &UsageError{Missing: missing, Unexpected: unexpected}
}

func duplicateName(names []string) string {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return n
		}
		seen[n] = true
	}
	return ""
}
