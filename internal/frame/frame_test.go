package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ZeroValueIsUsable(t *testing.T) {
	var tbl Table
	require.NoError(t, tbl.AddColumn("x", nil))
	assert.Equal(t, []string{"x"}, tbl.Columns())
	assert.Error(t, tbl.AddColumn("x", nil), "duplicate column")

	tbl = Table{Index: []string{"a", "b"}}
	require.NoError(t, tbl.AddColumn("y", []float64{1, 2}))
	col, ok := tbl.Column("y")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, col.Values)
}

func TestTable_AddColumnChecksLength(t *testing.T) {
	tbl := NewTable([]string{"a", "b"})
	assert.Error(t, tbl.AddColumn("x", []float64{1}))
	assert.Empty(t, tbl.Columns())
}
