// Package submission decodes learner submissions from JSON into values
// the comparator understands.
//
// A submission is a JSON object mapping variable names to values:
//
//	{
//	  "a": 5,
//	  "s": {"index": ["2017-01-01", "2017-01-02"], "values": [1.5, null]},
//	  "t": {"index": ["r1"], "columns": {"x": [1], "y": [null]}}
//	}
//
// null inside series values, table columns and numeric arrays is a
// missing value (NaN).
package submission

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/learnkit/internal/frame"
	"github.com/abhisek/learnkit/internal/problem"
)

const schemaURL = "schema://submission.json"

// ErrInvalid wraps decode and schema failures. They are usage errors.
type ErrInvalid struct {
	Err error
}

func (e *ErrInvalid) Error() string {
	return fmt.Sprintf("invalid submission: %v", e.Err)
}

func (e *ErrInvalid) Unwrap() error { return e.Err }

// Is makes decode failures match problem.ErrUsage.
func (e *ErrInvalid) Is(target error) bool { return target == problem.ErrUsage }

var compiled = sync.OnceValues(compileSchema)

func compileSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any).
	defBytes, err := json.Marshal(definition())
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}

// Decode reads a JSON submission, validates its shape and converts it.
func Decode(r io.Reader) (problem.Submission, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read submission: %w", err)
	}
	return DecodeBytes(raw)
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(raw []byte) (problem.Submission, error) {
	var parsed any
	if err := json.Unmarshal(bytes.TrimSpace(raw), &parsed); err != nil {
		return nil, &ErrInvalid{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile submission schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, &ErrInvalid{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	obj := parsed.(map[string]any)
	sub := make(problem.Submission, len(obj))
	for name, v := range obj {
		val, err := convert(v)
		if err != nil {
			return nil, &ErrInvalid{Err: fmt.Errorf("%s: %w", name, err)}
		}
		sub[name] = val
	}
	return sub, nil
}

// convert turns a schema-valid JSON value into a comparator value.
func convert(v any) (any, error) {
	switch t := v.(type) {
	case []any:
		return convertArray(t), nil
	case map[string]any:
		if _, ok := t["values"]; ok {
			return convertSeries(t)
		}
		return convertTable(t)
	}
	return v, nil
}

// convertArray yields []float64 when every element is a number or null,
// otherwise []any with nested values converted.
func convertArray(items []any) any {
	nums := make([]float64, len(items))
	numeric := true
	for i, it := range items {
		switch n := it.(type) {
		case float64:
			nums[i] = n
		case nil:
			nums[i] = frame.NA()
		default:
			numeric = false
		}
		if !numeric {
			break
		}
	}
	if numeric {
		return nums
	}

	out := make([]any, len(items))
	for i, it := range items {
		c, err := convert(it)
		if err != nil {
			out[i] = it
			continue
		}
		out[i] = c
	}
	return out
}

func convertSeries(obj map[string]any) (*frame.Series, error) {
	name, _ := obj["name"].(string)
	return frame.NewSeries(name, toStrings(obj["index"]), toFloats(obj["values"]))
}

func convertTable(obj map[string]any) (*frame.Table, error) {
	tbl := frame.NewTable(toStrings(obj["index"]))
	cols, _ := obj["columns"].(map[string]any)

	// JSON objects are unordered; column order does not affect comparison.
	names := make([]string, 0, len(cols))
	for n := range cols {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := tbl.AddColumn(n, toFloats(cols[n])); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func toStrings(v any) []string {
	items, _ := v.([]any)
	out := make([]string, len(items))
	for i, it := range items {
		out[i], _ = it.(string)
	}
	return out
}

func toFloats(v any) []float64 {
	items, _ := v.([]any)
	out := make([]float64, len(items))
	for i, it := range items {
		if f, ok := it.(float64); ok {
			out[i] = f
		} else {
			out[i] = frame.NA()
		}
	}
	return out
}
