package features

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnkit/internal/frame"
)

func series(name string, vals ...float64) *frame.Series {
	idx := make([]string, len(vals))
	for i := range vals {
		idx[i] = time.Date(2017, 1, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}
	return &frame.Series{Name: name, Index: idx, Values: vals}
}

// assertFloats compares element-wise, treating NaN as equal to NaN.
func assertFloats(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "index %d: want NaN, got %v", i, got[i])
			continue
		}
		assert.InDelta(t, want[i], got[i], 1e-9, "index %d", i)
	}
}

var nan = math.NaN()

func TestShift(t *testing.T) {
	s := series("x", 1, 2, 3)

	assertFloats(t, []float64{nan, 1, 2}, Shift(s, 1).Values)
	assertFloats(t, []float64{2, 3, nan}, Shift(s, -1).Values)
	assertFloats(t, []float64{1, 2, 3}, Shift(s, 0).Values)
	assertFloats(t, []float64{nan, nan, nan}, Shift(s, 5).Values)
	assert.Equal(t, "x", Shift(s, 1).Name)
	assert.Equal(t, []float64{1, 2, 3}, s.Values, "input untouched")
}

func TestMakeLags(t *testing.T) {
	tbl, err := MakeLags(series("x", 1, 2, 3, 4), 2, "x")
	require.NoError(t, err)

	assert.Equal(t, []string{"x_lag_1", "x_lag_2"}, tbl.Columns())
	assertFloats(t, []float64{nan, 1, 2, 3}, tbl.Values("x_lag_1"))
	assertFloats(t, []float64{nan, nan, 1, 2}, tbl.Values("x_lag_2"))

	tbl, err = MakeLags(series("x", 1, 2), 1, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"y_lag_1"}, tbl.Columns())

	_, err = MakeLags(series("x", 1), 0, "x")
	assert.Error(t, err)
}

func TestMakeLeads(t *testing.T) {
	tbl, err := MakeLeads(series("x", 1, 2, 3, 4), 2, "x")
	require.NoError(t, err)

	assert.Equal(t, []string{"x_lead_2", "x_lead_1"}, tbl.Columns())
	assertFloats(t, []float64{2, 3, 4, nan}, tbl.Values("x_lead_1"))
	assertFloats(t, []float64{3, 4, nan, nan}, tbl.Values("x_lead_2"))

	_, err = MakeLeads(series("x", 1), -1, "x")
	assert.Error(t, err)
}

func TestRolling(t *testing.T) {
	s := series("x", 1, 2, 3, 4, 5, 6)

	tests := []struct {
		name string
		got  *frame.Series
		want []float64
	}{
		{"mean", Rolling(s, 3).Mean(), []float64{nan, nan, 2, 3, 4, 5}},
		{"sum", Rolling(s, 2).Sum(), []float64{nan, 3, 5, 7, 9, 11}},
		{"median even", Rolling(s, 2).Median(), []float64{nan, 1.5, 2.5, 3.5, 4.5, 5.5}},
		{"median odd", Rolling(series("x", 5, 1, 3, 9), 3).Median(), []float64{nan, nan, 3, 3}},
		{"std", Rolling(series("x", 2, 4, 6, 6), 3).Std(), []float64{nan, nan, 2, math.Sqrt(4.0 / 3.0)}},
		{"std size one", Rolling(s, 1).Std(), []float64{nan, nan, nan, nan, nan, nan}},
		{"centered odd", Rolling(s, 3, Centered()).Sum(), []float64{nan, 6, 9, 12, 15, nan}},
		{"centered even", Rolling(s, 4, Centered()).Sum(), []float64{nan, nan, 10, 14, 18, nan}},
		{"window too large", Rolling(s, 10).Mean(), []float64{nan, nan, nan, nan, nan, nan}},
		{"missing in window", Rolling(series("x", 1, nan, 3, 4, 5), 2).Sum(), []float64{nan, nan, nan, 7, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFloats(t, tt.want, tt.got.Values)
		})
	}
}

func TestRolling_KeepsNameAndIndex(t *testing.T) {
	s := series("promo", 1, 2, 3)
	got := Rolling(s, 2).Mean()
	assert.Equal(t, "promo", got.Name)
	assert.Equal(t, s.Index, got.Index)
}

func TestConcat(t *testing.T) {
	a := series("a", 1, 2)
	lags, err := MakeLags(series("b", 3, 4), 1, "b")
	require.NoError(t, err)

	tbl, err := Concat(lags, a, frame.NewTable(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"b_lag_1", "a"}, tbl.Columns())
	assert.Equal(t, a.Index, tbl.Index)
	assertFloats(t, []float64{nan, 3}, tbl.Values("b_lag_1"))

	empty, err := Concat(frame.NewTable(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Columns())
}

func TestConcat_Errors(t *testing.T) {
	short := series("s", 1)
	long := series("l", 1, 2)

	_, err := Concat(short, long)
	assert.Error(t, err, "misaligned")

	_, err = Concat(series("", 1))
	assert.Error(t, err, "unnamed")

	_, err = Concat(long, long)
	assert.Error(t, err, "duplicate column")

	_, err = Concat([]float64{1})
	assert.Error(t, err, "unsupported part")
}

func TestColumn(t *testing.T) {
	tbl, err := Concat(series("a", 1))
	require.NoError(t, err)

	s, err := Column(tbl, "a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, s.Values)

	_, err = Column(tbl, "zzz")
	assert.ErrorIs(t, err, ErrNoColumn)
}

func dates(n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = time.Date(2017, 1, 1+i, 0, 0, 0, 0, time.UTC)
	}
	return out
}

func TestDeseasonalize_RemovesDeterministicSignal(t *testing.T) {
	ds := dates(90)
	vals := make([]float64, len(ds))
	for i, d := range ds {
		v := 10 + 0.5*float64(i+1)
		if d.Weekday() == time.Saturday {
			v += 3
		}
		v += 2 * math.Cos(2*math.Pi*float64(d.Day()-1)/float64(daysInMonth(d)))
		vals[i] = v
	}
	vals[5] = nan
	y := series("sales", vals...)

	got, err := Deseasonalize(y, ds)
	require.NoError(t, err)

	assert.Equal(t, "sales_deseasoned", got.Name)
	assert.True(t, math.IsNaN(got.Values[5]))
	for i, v := range got.Values {
		if i == 5 {
			continue
		}
		assert.InDelta(t, 0, v, 1e-6, "residual %d", i)
	}
}

func TestDeseasonalize_Errors(t *testing.T) {
	_, err := Deseasonalize(series("y", 1, 2), dates(3))
	assert.Error(t, err)

	_, err = Deseasonalize(series("y", nan, nan), dates(2))
	assert.Error(t, err)

	// Two observations cannot determine the full design.
	_, err = Deseasonalize(series("y", 1, 2), dates(2))
	assert.ErrorIs(t, err, ErrSingular)
}

func TestTimeDesign(t *testing.T) {
	x := TimeDesign(dates(3))
	require.Len(t, x, 3)
	assert.Len(t, x[0], 2+6+2*FourierOrder+1)

	assert.Equal(t, 1.0, x[0][0], "constant")
	assert.Equal(t, 3.0, x[2][1], "trend")
	assert.Equal(t, 1.0, x[0][len(x[0])-1], "Jan 1 is New Year's Day")
	assert.Equal(t, 0.0, x[1][len(x[1])-1])
	// Jan 1 2017 is a Sunday, the last day-of-week indicator.
	assert.Equal(t, 1.0, x[0][7])
}

func TestTimeFeatures(t *testing.T) {
	ds := dates(3)
	y := series("y", 1, 2, 3)

	tbl, err := TimeFeatures(ds, y.Index)
	require.NoError(t, err)
	assert.Equal(t, TimeDesignColumns(), tbl.Columns())
	assert.Len(t, tbl.Columns(), 2+6+2*FourierOrder+1)
	assert.Equal(t, []float64{1, 2, 3}, tbl.Values("trend"))
	assert.Equal(t, []float64{1, 0, 0}, tbl.Values("new_years_day"))
	assert.Equal(t, []float64{1, 0, 0}, tbl.Values("dow_sun"))

	x, err := Concat(tbl, y)
	require.NoError(t, err)
	assert.Len(t, x.Columns(), len(TimeDesignColumns())+1)

	_, err = TimeFeatures(ds, y.Index[:2])
	assert.Error(t, err)
}

func TestDeseasonalize_MissingNewYearsDay(t *testing.T) {
	ds := dates(60)
	vals := make([]float64, len(ds))
	for i := range ds {
		vals[i] = 100 - 0.25*float64(i+1)
	}
	// Without Jan 1 the holiday regressor is all zero on fitted rows.
	vals[0] = nan

	got, err := Deseasonalize(series("sales", vals...), ds)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.Values[0]))
	for i := 1; i < len(vals); i++ {
		assert.InDelta(t, 0, got.Values[i], 1e-6, "residual %d", i)
	}
}
