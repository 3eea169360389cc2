package submission

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/abhisek/learnkit/internal/frame"
	"github.com/abhisek/learnkit/internal/problem"
)

// Encode writes sub in the format Decode reads. Missing values (NaN)
// become null; infinities cannot be represented and are an error.
func Encode(sub problem.Submission) ([]byte, error) {
	obj := make(map[string]any, len(sub))
	for name, v := range sub {
		enc, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		obj[name] = enc
	}
	return json.Marshal(obj)
}

func encodeValue(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool:
		return t, nil
	case *frame.Series:
		return encodeSeries(t)
	case frame.Series:
		return encodeSeries(&t)
	case *frame.Table:
		return encodeTable(t)
	case frame.Table:
		return encodeTable(&t)
	case []float64:
		return encodeFloats(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return encodeFloat(rv.Float())
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			enc, err := encodeValue(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = enc
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value of type %T", v)
}

// encodeFloat maps NaN to null.
func encodeFloat(f float64) (any, error) {
	switch {
	case math.IsNaN(f):
		return nil, nil
	case math.IsInf(f, 0):
		return nil, fmt.Errorf("infinite value %v", f)
	}
	return f, nil
}

func encodeFloats(vals []float64) ([]any, error) {
	out := make([]any, len(vals))
	for i, f := range vals {
		enc, err := encodeFloat(f)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = enc
	}
	return out, nil
}

func labels(index []string) []string {
	if index == nil {
		return []string{}
	}
	return slices.Clone(index)
}

func encodeSeries(s *frame.Series) (map[string]any, error) {
	if s == nil {
		return nil, fmt.Errorf("nil series")
	}
	values, err := encodeFloats(s.Values)
	if err != nil {
		return nil, err
	}
	obj := map[string]any{"index": labels(s.Index), "values": values}
	if s.Name != "" {
		obj["name"] = s.Name
	}
	return obj, nil
}

func encodeTable(t *frame.Table) (map[string]any, error) {
	if t == nil {
		return nil, fmt.Errorf("nil table")
	}
	cols := make(map[string]any, len(t.Columns()))
	for _, name := range t.Columns() {
		values, err := encodeFloats(t.Values(name))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		cols[name] = values
	}
	return map[string]any{"index": labels(t.Index), "columns": cols}, nil
}
