// Package frame provides the small labeled data types that exercises
// exchange: a one-dimensional Series and a two-dimensional Table.
// Missing values are represented as NaN.
package frame

import (
	"fmt"
	"math"
)

// NA returns the missing-value marker.
func NA() float64 { return math.NaN() }

// IsNA reports whether v is a missing value.
func IsNA(v float64) bool { return math.IsNaN(v) }

// Series is a named, labeled sequence of float64 values.
type Series struct {
	Name   string
	Index  []string
	Values []float64
}

// NewSeries creates a series. Index and values must have the same length.
func NewSeries(name string, index []string, values []float64) (*Series, error) {
	if len(index) != len(values) {
		return nil, fmt.Errorf("series %q: index has %d labels, values has %d", name, len(index), len(values))
	}
	return &Series{Name: name, Index: index, Values: values}, nil
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Copy returns a deep copy of the series.
func (s *Series) Copy() *Series {
	idx := make([]string, len(s.Index))
	copy(idx, s.Index)
	vals := make([]float64, len(s.Values))
	copy(vals, s.Values)
	return &Series{Name: s.Name, Index: idx, Values: vals}
}

// Rename returns a copy of the series with a new name.
func (s *Series) Rename(name string) *Series {
	c := s.Copy()
	c.Name = name
	return c
}

// Count returns the number of non-missing values.
func (s *Series) Count() int {
	n := 0
	for _, v := range s.Values {
		if !IsNA(v) {
			n++
		}
	}
	return n
}
