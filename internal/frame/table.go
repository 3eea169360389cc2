package frame

import (
	"fmt"
	"slices"
)

// Table is a set of named float64 columns sharing one row index.
// Column order is preserved for display only; comparisons ignore it.
type Table struct {
	Index   []string
	columns []string
	data    map[string][]float64
}

// NewTable creates an empty table over the given row labels.
func NewTable(index []string) *Table {
	return &Table{
		Index: index,
		data:  make(map[string][]float64),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Index)
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// AddColumn appends a column. The value count must match the index and
// the name must not already exist. A zero Table is ready to use.
func (t *Table) AddColumn(name string, values []float64) error {
	if t.data == nil {
		t.data = make(map[string][]float64)
	}
	if _, exists := t.data[name]; exists {
		return fmt.Errorf("duplicate column %q", name)
	}
	if len(values) != len(t.Index) {
		return fmt.Errorf("column %q has %d values, index has %d rows", name, len(values), len(t.Index))
	}
	t.columns = append(t.columns, name)
	t.data[name] = values
	return nil
}

// AddSeries appends a series as a column named after the series.
// The series index must equal the table index.
func (t *Table) AddSeries(s *Series) error {
	if !slices.Equal(s.Index, t.Index) {
		return fmt.Errorf("series %q is not aligned with the table index", s.Name)
	}
	return t.AddColumn(s.Name, slices.Clone(s.Values))
}

// Column returns the named column as a series.
func (t *Table) Column(name string) (*Series, bool) {
	vals, ok := t.data[name]
	if !ok {
		return nil, false
	}
	return &Series{Name: name, Index: slices.Clone(t.Index), Values: slices.Clone(vals)}, true
}

// Values returns the raw column slice without copying.
func (t *Table) Values(name string) []float64 {
	return t.data[name]
}
