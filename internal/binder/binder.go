// Package binder assigns sequential identifiers to an ordered list of
// problem variants and publishes them under formatted names.
package binder

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/learnkit/internal/problem"
	"github.com/abhisek/learnkit/internal/session"
)

// Slot is the placeholder replaced by the sequence number in a pattern.
const Slot = "{n}"

// DefaultPattern is the conventional exercise naming pattern.
const DefaultPattern = "q_" + Slot

var (
	// ErrEmptyVariantList is returned when Bind is given no variants.
	ErrEmptyVariantList = fmt.Errorf("empty variant list: %w", problem.ErrUsage)

	// ErrDuplicateBindingName is returned when a formatted name is already
	// bound to a different variant.
	ErrDuplicateBindingName = fmt.Errorf("duplicate binding name: %w", problem.ErrUsage)

	// ErrInvalidPattern is returned when the pattern has no {n} slot.
	ErrInvalidPattern = fmt.Errorf("naming pattern must contain %s: %w", Slot, problem.ErrUsage)
)

// Variant produces one problem. Key identifies the variant across
// rebinds, the way a class name would.
type Variant interface {
	Key() string
	New() (problem.Problem, error)
}

type funcVariant struct {
	key  string
	ctor func() (problem.Problem, error)
}

func (v funcVariant) Key() string                   { return v.key }
func (v funcVariant) New() (problem.Problem, error) { return v.ctor() }

// Func returns a variant that is constructed at bind time.
func Func(key string, ctor func() (problem.Problem, error)) Variant {
	return funcVariant{key: key, ctor: ctor}
}

// Use returns a variant for an already constructed problem.
func Use(key string, p problem.Problem) Variant {
	return funcVariant{key: key, ctor: func() (problem.Problem, error) { return p, nil }}
}

// Namespace maps bound names to exercises.
type Namespace map[string]*Exercise

// Lookup returns the exercise bound to name.
func (ns Namespace) Lookup(name string) (*Exercise, bool) {
	ex, ok := ns[name]
	return ex, ok
}

// Names returns the bound names ordered by exercise ID.
func (ns Namespace) Names() []string {
	names := make([]string, 0, len(ns))
	for name := range ns {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if ns[names[i]].ID != ns[names[j]].ID {
			return ns[names[i]].ID < ns[names[j]].ID
		}
		return names[i] < names[j]
	})
	return names
}

// Exercises returns the bound exercises ordered by ID.
func (ns Namespace) Exercises() []*Exercise {
	names := ns.Names()
	out := make([]*Exercise, len(names))
	for i, n := range names {
		out[i] = ns[n]
	}
	return out
}

type options struct {
	tracker *session.Tracker
}

// Option configures Bind.
type Option func(*options)

// WithTracker attaches the session tracker that bound exercises report to.
func WithTracker(t *session.Tracker) Option {
	return func(o *options) { o.tracker = t }
}

// Format renders the name for sequence number n.
func Format(pattern string, n int) string {
	return strings.ReplaceAll(pattern, Slot, strconv.Itoa(n))
}

// Bind instantiates variants in order, assigns them IDs 1..N, and adds
// them to ns under names formatted from pattern. It returns the bound
// names in ID order. On error ns is left unchanged.
func Bind(ns Namespace, pattern string, variants []Variant, opts ...Option) ([]string, error) {
	if len(variants) == 0 {
		return nil, ErrEmptyVariantList
	}
	if !strings.Contains(pattern, Slot) {
		return nil, fmt.Errorf("pattern %q: %w", pattern, ErrInvalidPattern)
	}
	if ns == nil {
		return nil, &problem.UsageError{Reason: "nil namespace"}
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracker == nil {
		o.tracker = session.NewTracker(nil)
	}

	names := make([]string, len(variants))
	seen := make(map[string]string, len(variants))
	for i, v := range variants {
		name := Format(pattern, i+1)
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%q for %s and %s: %w", name, prev, v.Key(), ErrDuplicateBindingName)
		}
		seen[name] = v.Key()
		if existing, ok := ns[name]; ok && existing.Key != v.Key() {
			return nil, fmt.Errorf("%q already bound to %s, cannot bind %s: %w",
				name, existing.Key, v.Key(), ErrDuplicateBindingName)
		}
		names[i] = name
	}

	bound := make([]*Exercise, len(variants))
	for i, v := range variants {
		p, err := v.New()
		if err != nil {
			return nil, fmt.Errorf("construct %s: %w", v.Key(), err)
		}
		if p == nil {
			return nil, &problem.UsageError{Reason: fmt.Sprintf("variant %s produced no problem", v.Key())}
		}
		bound[i] = &Exercise{
			ID:      i + 1,
			Name:    names[i],
			Key:     v.Key(),
			Problem: p,
			tracker: o.tracker,
		}
	}

	for _, ex := range bound {
		ns[ex.Name] = ex
	}
	return names, nil
}

// IsUsage reports whether err is a binding or submission usage error.
func IsUsage(err error) bool {
	return errors.Is(err, problem.ErrUsage)
}
