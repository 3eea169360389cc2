// Package dataset provides the daily average store sales table used by
// the time-series exercises: one row per 2017 date, with the columns
// "sales" and "onpromotion" averaged over every store and product family.
package dataset

import (
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/learnkit/internal/frame"
)

// DateLayout is the format of the table's row labels.
const DateLayout = "2006-01-02"

// Column names.
const (
	Sales       = "sales"
	OnPromotion = "onpromotion"
)

// Year is the slice of history the exercises work on.
const Year = 2017

// Loader produces the average sales table.
type Loader interface {
	Load() (*frame.Table, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func() (*frame.Table, error)

func (f LoaderFunc) Load() (*frame.Table, error) { return f() }

type cached struct {
	once  sync.Once
	inner Loader
	tbl   *frame.Table
	err   error
}

// Cached wraps l so the table is loaded at most once. Failures are cached
// too.
func Cached(l Loader) Loader {
	return &cached{inner: l}
}

func (c *cached) Load() (*frame.Table, error) {
	c.once.Do(func() {
		c.tbl, c.err = c.inner.Load()
	})
	return c.tbl, c.err
}

// Dates parses the table's row labels.
func Dates(tbl *frame.Table) ([]time.Time, error) {
	out := make([]time.Time, len(tbl.Index))
	for i, label := range tbl.Index {
		d, err := time.Parse(DateLayout, label)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

// New returns the CSV loader when path is set and the synthetic generator
// otherwise.
func New(path string) Loader {
	if path == "" {
		return Cached(Synthetic{})
	}
	return Cached(&CSVLoader{Path: path})
}
