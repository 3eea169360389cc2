// Package compare decides whether a submitted value equals a reference
// value. It understands numeric and non-numeric scalars, slices,
// labeled series and labeled tables.
//
// Numeric comparison uses an absolute plus relative tolerance:
//
//	|got - want| <= Abs + Rel*|want|
//
// The boundary is inclusive, so two values that differ by exactly the
// allowed amount are equal. "Exactly" is judged in decimal terms: a
// difference that overshoots the bound only by rounding (a few ULPs at
// the operands' magnitude) still passes, so 1.1 vs 1.0 is within Abs 0.1.
package compare

import (
	"fmt"
	"math"
	"reflect"

	"github.com/abhisek/learnkit/internal/frame"
)

// Tolerance bounds the allowed numeric drift.
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance matches the usual floating point closeness defaults.
func DefaultTolerance() Tolerance {
	return Tolerance{Abs: 1e-8, Rel: 1e-5}
}

// Comparator compares values under a fixed tolerance.
type Comparator struct {
	Tol Tolerance
}

// New creates a comparator with the given tolerance.
func New(tol Tolerance) *Comparator {
	return &Comparator{Tol: tol}
}

// Equal reports whether got matches want.
func (c *Comparator) Equal(got, want any) bool {
	return c.Diff(got, want) == ""
}

// Diff returns an empty string when got matches want, otherwise a short
// description of the first difference found.
func (c *Comparator) Diff(got, want any) string {
	switch w := want.(type) {
	case *frame.Table:
		return c.diffTable(got, w)
	case frame.Table:
		return c.diffTable(got, &w)
	case *frame.Series:
		return c.diffSeries(got, w)
	case frame.Series:
		return c.diffSeries(got, &w)
	}

	if isSequence(want) {
		return c.diffSequence(got, want)
	}
	return c.diffScalar(got, want)
}

// CloseEnough applies the numeric rule to two floats. NaN equals NaN.
func (c *Comparator) CloseEnough(got, want float64) bool {
	gotNA, wantNA := math.IsNaN(got), math.IsNaN(want)
	if gotNA || wantNA {
		return gotNA && wantNA
	}
	if math.IsInf(got, 0) || math.IsInf(want, 0) {
		return got == want
	}
	bound := c.Tol.Abs + c.Tol.Rel*math.Abs(want)
	d := math.Abs(got - want)
	if d <= bound {
		return true
	}
	if bound == 0 {
		return false
	}
	scale := math.Max(math.Max(math.Abs(got), math.Abs(want)), bound)
	return d-bound <= roundingSlack*ulp(scale)
}

// roundingSlack is how many ULPs a difference may exceed the bound by.
const roundingSlack = 4

// ulp returns the spacing between x and the next larger float64.
func ulp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1)) - x
}

func (c *Comparator) diffScalar(got, want any) string {
	wf, wantNum := toFloat(want)
	gf, gotNum := toFloat(got)
	switch {
	case wantNum && gotNum:
		if c.CloseEnough(gf, wf) {
			return ""
		}
		return fmt.Sprintf("expected %v, got %v", formatFloat(wf), formatFloat(gf))
	case wantNum != gotNum:
		return fmt.Sprintf("expected %s, got %s", describe(want), describe(got))
	}

	if got == nil || want == nil {
		if got == nil && want == nil {
			return ""
		}
		return fmt.Sprintf("expected %s, got %s", describe(want), describe(got))
	}
	if reflect.TypeOf(got) != reflect.TypeOf(want) || !reflect.TypeOf(want).Comparable() {
		return fmt.Sprintf("expected %s, got %s", describe(want), describe(got))
	}
	if got != want {
		return fmt.Sprintf("expected %v, got %v", want, got)
	}
	return ""
}

func (c *Comparator) diffSequence(got, want any) string {
	if !isSequence(got) {
		return fmt.Sprintf("expected a sequence, got %s", describe(got))
	}
	gv, wv := reflect.ValueOf(got), reflect.ValueOf(want)
	if gv.Len() != wv.Len() {
		return fmt.Sprintf("expected %d elements, got %d", wv.Len(), gv.Len())
	}
	for i := 0; i < wv.Len(); i++ {
		if d := c.Diff(gv.Index(i).Interface(), wv.Index(i).Interface()); d != "" {
			return fmt.Sprintf("element %d: %s", i, d)
		}
	}
	return ""
}

// isSequence reports whether v is a slice or array. A []byte is a
// sequence of small integers like any other slice.
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// toFloat widens any Go numeric kind to float64.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return fmt.Sprintf("%g", f)
}

// describe names the shape of a value for mismatch messages.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "nothing"
	case *frame.Series:
		return fmt.Sprintf("a series of length %d", t.Len())
	case frame.Series:
		return fmt.Sprintf("a series of length %d", t.Len())
	case *frame.Table:
		return fmt.Sprintf("a table with %d rows and %d columns", t.Len(), len(t.Columns()))
	case frame.Table:
		return fmt.Sprintf("a table with %d rows and %d columns", t.Len(), len(t.Columns()))
	case string:
		return fmt.Sprintf("%q", t)
	}
	if isSequence(v) {
		return fmt.Sprintf("a sequence of length %d", reflect.ValueOf(v).Len())
	}
	return fmt.Sprintf("%v (%T)", v, v)
}
