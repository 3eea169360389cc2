// Package features builds time-series features from frame values: lags
// and leads, rolling statistics and a deseasonalized target.
package features

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/learnkit/internal/frame"
)

// DefaultName prefixes lag and lead columns when no name is given.
const DefaultName = "y"

// Shift moves values k positions later along the index (k > 0) or
// earlier (k < 0). Vacated positions are missing. The index and name are
// kept.
func Shift(s *frame.Series, k int) *frame.Series {
	n := len(s.Values)
	out := make([]float64, n)
	for i := range out {
		j := i - k
		if j < 0 || j >= n {
			out[i] = frame.NA()
			continue
		}
		out[i] = s.Values[j]
	}
	return &frame.Series{Name: s.Name, Index: slices.Clone(s.Index), Values: out}
}

// MakeLags returns a table with columns <name>_lag_1 ... <name>_lag_lags,
// column k holding s shifted by k.
func MakeLags(s *frame.Series, lags int, name string) (*frame.Table, error) {
	if lags < 1 {
		return nil, fmt.Errorf("lags must be >= 1, got %d", lags)
	}
	if name == "" {
		name = DefaultName
	}
	tbl := frame.NewTable(slices.Clone(s.Index))
	for k := 1; k <= lags; k++ {
		if err := tbl.AddColumn(fmt.Sprintf("%s_lag_%d", name, k), Shift(s, k).Values); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// MakeLeads returns a table with columns <name>_lead_leads ... <name>_lead_1,
// column k holding s shifted by -k. Farthest leads come first.
func MakeLeads(s *frame.Series, leads int, name string) (*frame.Table, error) {
	if leads < 1 {
		return nil, fmt.Errorf("leads must be >= 1, got %d", leads)
	}
	if name == "" {
		name = DefaultName
	}
	tbl := frame.NewTable(slices.Clone(s.Index))
	for k := leads; k >= 1; k-- {
		if err := tbl.AddColumn(fmt.Sprintf("%s_lead_%d", name, k), Shift(s, -k).Values); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// Concat joins series and tables column-wise. Every non-empty part must
// share the same index. A table with no rows and no columns is skipped.
// Series become columns named after the series.
func Concat(parts ...any) (*frame.Table, error) {
	var out *frame.Table
	add := func(index []string, name string, values []float64) error {
		if out == nil {
			out = frame.NewTable(slices.Clone(index))
		} else if !slices.Equal(out.Index, index) {
			return fmt.Errorf("%q is not aligned with the other parts", name)
		}
		return out.AddColumn(name, slices.Clone(values))
	}

	for i, p := range parts {
		switch v := p.(type) {
		case *frame.Series:
			if v.Name == "" {
				return nil, fmt.Errorf("part %d: series has no name", i)
			}
			if err := add(v.Index, v.Name, v.Values); err != nil {
				return nil, err
			}
		case *frame.Table:
			if v.Len() == 0 && len(v.Columns()) == 0 {
				continue
			}
			for _, c := range v.Columns() {
				if err := add(v.Index, c, v.Values(c)); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("part %d: cannot concat %T", i, p)
		}
	}

	if out == nil {
		return frame.NewTable(nil), nil
	}
	return out, nil
}

// ErrNoColumn is returned when a table lacks a requested column.
var ErrNoColumn = errors.New("no such column")

// Column extracts a column as a series or fails with ErrNoColumn.
func Column(tbl *frame.Table, name string) (*frame.Series, error) {
	s, ok := tbl.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
	}
	return s, nil
}
