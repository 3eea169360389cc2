package problem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnkit/internal/compare"
)

func TestThoughtExperiment(t *testing.T) {
	p := NewThoughtExperiment(Text{}, Plain("Look at the lag plot."))

	_, err := p.Hint()
	assert.ErrorIs(t, err, ErrNoHint)
	assert.True(t, IsMissingContent(err))

	sol, err := p.Solution()
	require.NoError(t, err)
	assert.Equal(t, "Look at the lag plot.", sol.Body)
	assert.False(t, sol.Code)

	out, err := p.Check(Submission{"anything": 1})
	require.NoError(t, err)
	assert.True(t, out.Passed)
	assert.Empty(t, p.Vars())
}

func TestWhitespaceContentIsMissing(t *testing.T) {
	p := NewThoughtExperiment(Plain("  \n"), Plain(""))
	_, err := p.Hint()
	assert.ErrorIs(t, err, ErrNoHint)
	_, err = p.Solution()
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestCodeSample(t *testing.T) {
	s := CodeSample("\nx := 1\n")
	assert.True(t, s.Code)
	assert.Equal(t, "x := 1", s.Body)
}

func newCheck(t *testing.T, vars []string, values ...any) *EqualityCheck {
	t.Helper()
	p, err := NewEqualityCheck(EqualityCheckConfig{
		Vars:      vars,
		Reference: Static(values...),
		Hint:      Plain("hint"),
		Solution:  CodeSample("solution"),
	})
	require.NoError(t, err)
	return p
}

func TestEqualityCheck_Pass(t *testing.T) {
	p := newCheck(t, []string{"a"}, 5)

	out, err := p.Check(Submission{"a": 5})
	require.NoError(t, err)
	assert.True(t, out.Passed)

	out, err = p.Check(Submission{"a": 5.0000001})
	require.NoError(t, err)
	assert.True(t, out.Passed, "drift within tolerance must pass")
	assert.Equal(t, "Correct", out.Message())
}

func TestEqualityCheck_FailureNamesVariable(t *testing.T) {
	p := newCheck(t, []string{"b", "c"}, 1, 2)

	out, err := p.Check(Submission{"b": 1, "c": 3})
	require.NoError(t, err)
	assert.False(t, out.Passed)
	assert.Equal(t, []string{"c"}, out.FailedNames())
	assert.Contains(t, out.Message(), "c: expected 2, got 3")

	out, err = p.Check(Submission{"b": 0, "c": 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, out.FailedNames(), "failures follow declaration order")
}

func TestEqualityCheck_UsageErrors(t *testing.T) {
	p := newCheck(t, []string{"b", "c"}, 1, 2)

	tests := []struct {
		name       string
		sub        Submission
		missing    []string
		unexpected []string
	}{
		{"missing one", Submission{"b": 1}, []string{"c"}, nil},
		{"extra one", Submission{"b": 1, "c": 2, "d": 4}, nil, []string{"d"}},
		{"both", Submission{"b": 1, "z": 0, "y": 0}, []string{"c"}, []string{"y", "z"}},
		{"empty", Submission{}, []string{"b", "c"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Check(tt.sub)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUsage)

			var ue *UsageError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.missing, ue.Missing)
			assert.Equal(t, tt.unexpected, ue.Unexpected)
		})
	}
}

func TestNewEqualityCheck_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  EqualityCheckConfig
	}{
		{"no vars", EqualityCheckConfig{Reference: Static()}},
		{"duplicate var", EqualityCheckConfig{Vars: []string{"a", "a"}, Reference: Static(1, 1)}},
		{"no reference", EqualityCheckConfig{Vars: []string{"a"}}},
		{"count mismatch", EqualityCheckConfig{Vars: []string{"a", "b"}, Reference: Static(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEqualityCheck(tt.cfg)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestEqualityCheck_EagerComputesOnce(t *testing.T) {
	calls := 0
	ref := func() ([]any, error) {
		calls++
		return []any{1}, nil
	}

	p, err := NewEqualityCheck(EqualityCheckConfig{Vars: []string{"a"}, Reference: ref})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "eager construction computes the reference")

	for range 3 {
		_, err := p.Check(Submission{"a": 1})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)
}

func TestEqualityCheck_EagerFailsFast(t *testing.T) {
	boom := errors.New("data source unavailable")
	_, err := NewEqualityCheck(EqualityCheckConfig{
		Vars:      []string{"a"},
		Reference: func() ([]any, error) { return nil, boom },
	})
	assert.ErrorIs(t, err, boom)
}

func TestEqualityCheck_Lazy(t *testing.T) {
	calls := 0
	boom := errors.New("data source unavailable")
	p, err := NewEqualityCheck(EqualityCheckConfig{
		Vars: []string{"a"},
		Reference: func() ([]any, error) {
			calls++
			return nil, boom
		},
		Lazy: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, calls, "lazy construction must not compute")

	_, err = p.Check(Submission{"a": 1})
	assert.ErrorIs(t, err, boom)
	_, err = p.Check(Submission{"a": 1})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls, "failure is memoized")

	// Usage errors are reported before the reference is needed.
	_, err = p.Check(Submission{})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestEqualityCheck_CustomTolerance(t *testing.T) {
	tol := compare.Tolerance{Abs: 0.1}
	p, err := NewEqualityCheck(EqualityCheckConfig{
		Vars:      []string{"x"},
		Reference: Static(1.0),
		Tolerance: &tol,
	})
	require.NoError(t, err)

	out, err := p.Check(Submission{"x": 1.1})
	require.NoError(t, err)
	assert.True(t, out.Passed)
}

func TestEqualityCheck_ExpectedIsACopy(t *testing.T) {
	p := newCheck(t, []string{"a"}, 5)
	vals, err := p.Expected()
	require.NoError(t, err)
	vals[0] = 99

	out, err := p.Check(Submission{"a": 5})
	require.NoError(t, err)
	assert.True(t, out.Passed)
}
