// Package lesson4 holds the exercises for the "Time Series as Features"
// lesson: serial dependence, lag features and rolling statistics on the
// average store sales of 2017.
package lesson4

import (
	"github.com/abhisek/learnkit/internal/binder"
	"github.com/abhisek/learnkit/internal/compare"
	"github.com/abhisek/learnkit/internal/dataset"
	"github.com/abhisek/learnkit/internal/problem"
)

// Options tune how the checkable exercises are built.
type Options struct {
	Tolerance *compare.Tolerance
	Lazy      bool
}

// Variants returns the lesson's exercises in presentation order.
func Variants(data dataset.Loader, opts Options) []binder.Variant {
	return []binder.Variant{
		binder.Func("lesson4.TimeAndSerialDependence", func() (problem.Problem, error) {
			return problem.NewThoughtExperiment(problem.Text{}, problem.Text{}), nil
		}),
		binder.Func("lesson4.SerialDependenceInSales", func() (problem.Problem, error) {
			return problem.NewThoughtExperiment(problem.Text{}, problem.Plain(q2Solution)), nil
		}),
		binder.Func("lesson4.TimeSeriesFeatures", func() (problem.Problem, error) {
			return problem.NewThoughtExperiment(problem.Text{}, problem.Text{}), nil
		}),
		binder.Func("lesson4.CreateTimeSeriesFeatures", func() (problem.Problem, error) {
			return problem.NewEqualityCheck(problem.EqualityCheckConfig{
				Vars:      []string{"X_lags", "X_promo", "X_oil"},
				Reference: func() ([]any, error) { return TimeSeriesFeatures(data) },
				Hint:      problem.Plain(q4Hint),
				Solution:  problem.CodeSample(q4Solution),
				Tolerance: opts.Tolerance,
				Lazy:      opts.Lazy,
			})
		}),
		binder.Func("lesson4.CreateStatisticalFeatures", func() (problem.Problem, error) {
			return problem.NewEqualityCheck(problem.EqualityCheckConfig{
				Vars:      []string{"median_14", "std_7", "promo_7"},
				Reference: func() ([]any, error) { return StatisticalFeatures(data) },
				Hint:      problem.Plain(q5Hint),
				Solution:  problem.CodeSample(q5Solution),
				Tolerance: opts.Tolerance,
				Lazy:      opts.Lazy,
			})
		}),
	}
}

// Bind binds the lesson into ns under pattern.
func Bind(ns binder.Namespace, pattern string, data dataset.Loader, opts Options, bopts ...binder.Option) ([]string, error) {
	return binder.Bind(ns, pattern, Variants(data, opts), bopts...)
}
