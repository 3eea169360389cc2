package features

import (
	"math"
	"slices"
	"sort"

	"github.com/abhisek/learnkit/internal/frame"
)

// Window computes statistics over a moving window of a series. A window
// with fewer than Size non-missing observations yields a missing value.
type Window struct {
	s      *frame.Series
	size   int
	center bool
}

// RollingOption configures a Window.
type RollingOption func(*Window)

// Centered labels each window by its middle observation instead of its
// last. For even sizes the window reaches one step further back than
// forward.
func Centered() RollingOption {
	return func(w *Window) { w.center = true }
}

// Rolling returns a moving window of the given size over s.
func Rolling(s *frame.Series, size int, opts ...RollingOption) *Window {
	w := &Window{s: s, size: size}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Mean is the window average.
func (w *Window) Mean() *frame.Series {
	return w.apply(func(vals []float64) float64 {
		return sum(vals) / float64(len(vals))
	})
}

// Sum is the window total.
func (w *Window) Sum() *frame.Series {
	return w.apply(sum)
}

// Median is the window median.
func (w *Window) Median() *frame.Series {
	return w.apply(median)
}

// Std is the sample standard deviation (n-1 denominator) of the window.
// A window of size 1 always yields a missing value.
func (w *Window) Std() *frame.Series {
	return w.apply(func(vals []float64) float64 {
		n := len(vals)
		if n < 2 {
			return frame.NA()
		}
		m := sum(vals) / float64(n)
		ss := 0.0
		for _, v := range vals {
			d := v - m
			ss += d * d
		}
		return math.Sqrt(ss / float64(n-1))
	})
}

func (w *Window) apply(agg func([]float64) float64) *frame.Series {
	vals := w.s.Values
	n := len(vals)
	out := make([]float64, n)

	offset := 0
	if w.center {
		offset = (w.size - 1) / 2
	}

	buf := make([]float64, 0, max(w.size, 0))
	for i := range out {
		end := i + offset // inclusive
		start := end - w.size + 1
		if w.size < 1 || start < 0 || end >= n {
			out[i] = frame.NA()
			continue
		}

		buf = buf[:0]
		for _, v := range vals[start : end+1] {
			if !frame.IsNA(v) {
				buf = append(buf, v)
			}
		}
		if len(buf) < w.size {
			out[i] = frame.NA()
			continue
		}
		out[i] = agg(buf)
	}
	return &frame.Series{Name: w.s.Name, Index: slices.Clone(w.s.Index), Values: out}
}

func sum(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}

func median(data []float64) float64 {
	sorted := slices.Clone(data)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
