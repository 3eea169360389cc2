package submission

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnkit/internal/frame"
	"github.com/abhisek/learnkit/internal/problem"
)

func TestDecode_Scalars(t *testing.T) {
	sub, err := DecodeBytes([]byte(`{"a": 5, "b": "x", "c": true, "d": null}`))
	require.NoError(t, err)

	assert.Equal(t, 5.0, sub["a"])
	assert.Equal(t, "x", sub["b"])
	assert.Equal(t, true, sub["c"])
	assert.Nil(t, sub["d"])
	assert.Len(t, sub, 4)
}

func TestDecode_Arrays(t *testing.T) {
	sub, err := DecodeBytes([]byte(`{"nums": [1, null, 3], "mixed": [1, "two"]}`))
	require.NoError(t, err)

	nums, ok := sub["nums"].([]float64)
	require.True(t, ok, "numeric array should decode to []float64, got %T", sub["nums"])
	assert.Equal(t, 1.0, nums[0])
	assert.True(t, math.IsNaN(nums[1]))
	assert.Equal(t, 3.0, nums[2])

	mixed, ok := sub["mixed"].([]any)
	require.True(t, ok, "mixed array should decode to []any, got %T", sub["mixed"])
	assert.Equal(t, []any{1.0, "two"}, mixed)
}

func TestDecode_Series(t *testing.T) {
	sub, err := Decode(strings.NewReader(`{
		"s": {"name": "sales", "index": ["d1", "d2"], "values": [1.5, null]}
	}`))
	require.NoError(t, err)

	s, ok := sub["s"].(*frame.Series)
	require.True(t, ok, "got %T", sub["s"])
	assert.Equal(t, "sales", s.Name)
	assert.Equal(t, []string{"d1", "d2"}, s.Index)
	assert.Equal(t, 1.5, s.Values[0])
	assert.True(t, frame.IsNA(s.Values[1]))
}

func TestDecode_Table(t *testing.T) {
	sub, err := DecodeBytes([]byte(`{
		"t": {"index": ["r1", "r2"], "columns": {"y": [1, 2], "x": [null, 4]}}
	}`))
	require.NoError(t, err)

	tbl, ok := sub["t"].(*frame.Table)
	require.True(t, ok, "got %T", sub["t"])
	assert.Equal(t, []string{"x", "y"}, tbl.Columns())
	assert.Equal(t, []float64{1, 2}, tbl.Values("y"))
	assert.True(t, frame.IsNA(tbl.Values("x")[0]))
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed json", `{"a": `},
		{"not an object", `[1, 2, 3]`},
		{"series with extra key", `{"s": {"index": [], "values": [], "extra": 1}}`},
		{"series values not numeric", `{"s": {"index": ["a"], "values": ["x"]}}`},
		{"series index not strings", `{"s": {"index": [1], "values": [1]}}`},
		{"table column not array", `{"t": {"index": ["a"], "columns": {"x": 1}}}`},
		{"series length mismatch", `{"s": {"index": ["a", "b"], "values": [1]}}`},
		{"table length mismatch", `{"t": {"index": ["a"], "columns": {"x": [1, 2]}}}`},
		{"unknown object", `{"o": {"foo": 1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.input))
			require.Error(t, err)

			var inv *ErrInvalid
			assert.True(t, errors.As(err, &inv), "expected *ErrInvalid, got %T", err)
			assert.True(t, errors.Is(err, problem.ErrUsage), "decode errors are usage errors")
		})
	}
}

func TestDecode_EmptyObject(t *testing.T) {
	sub, err := DecodeBytes([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, sub)
}
