package compare

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/abhisek/learnkit/internal/frame"
)

// diffSeries requires equal length and identical labels in the same order.
// Series names are not compared.
func (c *Comparator) diffSeries(got any, want *frame.Series) string {
	var g *frame.Series
	switch t := got.(type) {
	case *frame.Series:
		g = t
	case frame.Series:
		g = &t
	default:
		return fmt.Sprintf("expected %s, got %s", describe(want), describe(got))
	}
	if g == nil {
		return fmt.Sprintf("expected %s, got nothing", describe(want))
	}

	if g.Len() != want.Len() {
		return fmt.Sprintf("expected length %d, got %d", want.Len(), g.Len())
	}
	if len(g.Index) != len(want.Index) {
		return fmt.Sprintf("expected %d index labels, got %d", len(want.Index), len(g.Index))
	}
	for i := range want.Index {
		if g.Index[i] != want.Index[i] {
			return fmt.Sprintf("index label %d: expected %q, got %q", i, want.Index[i], g.Index[i])
		}
	}
	for i := range want.Values {
		if !c.CloseEnough(g.Values[i], want.Values[i]) {
			return fmt.Sprintf("at %s: expected %s, got %s",
				labelAt(want.Index, i), formatFloat(want.Values[i]), formatFloat(g.Values[i]))
		}
	}
	return ""
}

// diffTable ignores column and row order. Rows are aligned by label.
func (c *Comparator) diffTable(got any, want *frame.Table) string {
	var g *frame.Table
	switch t := got.(type) {
	case *frame.Table:
		g = t
	case frame.Table:
		g = &t
	default:
		return fmt.Sprintf("expected %s, got %s", describe(want), describe(got))
	}
	if g == nil {
		return fmt.Sprintf("expected %s, got nothing", describe(want))
	}

	if d := diffLabelSets("columns", g.Columns(), want.Columns()); d != "" {
		return d
	}
	if d := diffLabelSets("rows", g.Index, want.Index); d != "" {
		return d
	}

	rowOf := make(map[string]int, len(g.Index))
	for i, label := range g.Index {
		rowOf[label] = i
	}

	cols := want.Columns()
	sort.Strings(cols)
	for _, col := range cols {
		gv, wv := g.Values(col), want.Values(col)
		if len(gv) != len(g.Index) {
			return fmt.Sprintf("column %q has %d values for %d rows", col, len(gv), len(g.Index))
		}
		if len(wv) != len(want.Index) {
			return fmt.Sprintf("reference column %q has %d values for %d rows", col, len(wv), len(want.Index))
		}
		for i, label := range want.Index {
			if !c.CloseEnough(gv[rowOf[label]], wv[i]) {
				return fmt.Sprintf("column %q at %q: expected %s, got %s",
					col, label, formatFloat(wv[i]), formatFloat(gv[rowOf[label]]))
			}
		}
	}
	return ""
}

// diffLabelSets compares two label lists as sets. Duplicate labels make
// alignment ambiguous and are reported as a mismatch.
func diffLabelSets(kind string, got, want []string) string {
	if dup := firstDuplicate(want); dup != "" {
		return fmt.Sprintf("reference %s contain duplicate label %q", kind, dup)
	}
	if dup := firstDuplicate(got); dup != "" {
		return fmt.Sprintf("%s contain duplicate label %q", kind, dup)
	}

	var missing, extra []string
	for _, w := range want {
		if !slices.Contains(got, w) {
			missing = append(missing, w)
		}
	}
	for _, g := range got {
		if !slices.Contains(want, g) {
			extra = append(extra, g)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return ""
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing "+quoteList(missing))
	}
	if len(extra) > 0 {
		parts = append(parts, "unexpected "+quoteList(extra))
	}
	return fmt.Sprintf("%s differ: %s", kind, strings.Join(parts, "; "))
}

func firstDuplicate(labels []string) string {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return l
		}
		seen[l] = true
	}
	return ""
}

const maxListed = 5

func quoteList(labels []string) string {
	shown := labels
	if len(shown) > maxListed {
		shown = shown[:maxListed]
	}
	q := make([]string, len(shown))
	for i, l := range shown {
		q[i] = fmt.Sprintf("%q", l)
	}
	s := strings.Join(q, ", ")
	if len(labels) > maxListed {
		s += fmt.Sprintf(" and %d more", len(labels)-maxListed)
	}
	return s
}

func labelAt(index []string, i int) string {
	if i < len(index) {
		return fmt.Sprintf("%q", index[i])
	}
	return fmt.Sprintf("position %d", i)
}
