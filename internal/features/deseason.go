package features

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/abhisek/learnkit/internal/frame"
)

// FourierOrder is the number of monthly sine/cosine pairs in the time
// design.
const FourierOrder = 4

// ErrSingular is returned when the time design cannot be solved.
var ErrSingular = errors.New("singular design matrix")

// TimeDesign returns the deterministic regressors for each date: a
// constant, a linear trend, day-of-week indicators (Monday dropped),
// FourierOrder monthly Fourier pairs and a New Year's Day indicator.
func TimeDesign(dates []time.Time) [][]float64 {
	n := len(dates)
	cols := 2 + 6 + 2*FourierOrder + 1
	x := make([][]float64, n)
	for i, d := range dates {
		row := make([]float64, 0, cols)
		row = append(row, 1, float64(i+1))

		dow := (int(d.Weekday()) + 6) % 7
		for k := 1; k < 7; k++ {
			row = append(row, indicator(dow == k))
		}

		frac := float64(d.Day()-1) / float64(daysInMonth(d))
		for k := 1; k <= FourierOrder; k++ {
			row = append(row,
				math.Sin(2*math.Pi*float64(k)*frac),
				math.Cos(2*math.Pi*float64(k)*frac))
		}

		row = append(row, indicator(d.YearDay() == 1))
		x[i] = row
	}
	return x
}

// TimeDesignColumns names the TimeDesign columns in order.
func TimeDesignColumns() []string {
	names := []string{"const", "trend"}
	for _, day := range []string{"tue", "wed", "thu", "fri", "sat", "sun"} {
		names = append(names, "dow_"+day)
	}
	for k := 1; k <= FourierOrder; k++ {
		names = append(names, fmt.Sprintf("sin_%d", k), fmt.Sprintf("cos_%d", k))
	}
	return append(names, "new_years_day")
}

// TimeFeatures returns TimeDesign(dates) as a table over index, ready to
// Concat with lag and promotion features.
func TimeFeatures(dates []time.Time, index []string) (*frame.Table, error) {
	if len(dates) != len(index) {
		return nil, fmt.Errorf("got %d dates for %d labels", len(dates), len(index))
	}
	design := TimeDesign(dates)
	tbl := frame.NewTable(slices.Clone(index))
	for j, name := range TimeDesignColumns() {
		col := make([]float64, len(design))
		for i, row := range design {
			col[i] = row[j]
		}
		if err := tbl.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// Deseasonalize fits y on TimeDesign(dates) by ordinary least squares and
// returns the residuals, named <y.Name>_deseasoned. Missing targets are
// left out of the fit and stay missing. Regressors that are zero on every
// fitted row are dropped.
func Deseasonalize(y *frame.Series, dates []time.Time) (*frame.Series, error) {
	if len(dates) != y.Len() {
		return nil, fmt.Errorf("got %d dates for %d observations", len(dates), y.Len())
	}
	full := TimeDesign(dates)

	var fitRows [][]float64
	var fitY []float64
	for i, v := range y.Values {
		if frame.IsNA(v) {
			continue
		}
		fitRows = append(fitRows, full[i])
		fitY = append(fitY, v)
	}
	if len(fitY) == 0 {
		return nil, errors.New("no observations to fit")
	}

	keep := nonZeroColumns(fitRows)
	x := selectColumns(full, keep)
	fitX := selectColumns(fitRows, keep)

	coeffs, err := olsRegression(fitX, fitY)
	if err != nil {
		return nil, err
	}

	out := make([]float64, y.Len())
	for i, v := range y.Values {
		if frame.IsNA(v) {
			out[i] = frame.NA()
			continue
		}
		out[i] = v - dot(coeffs, x[i])
	}
	return &frame.Series{
		Name:   y.Name + "_deseasoned",
		Index:  slices.Clone(y.Index),
		Values: out,
	}, nil
}

// olsRegression solves the normal equations X'X b = X'y.
func olsRegression(x [][]float64, y []float64) ([]float64, error) {
	k := len(x[0])

	xtx := make([][]float64, k)
	for i := range xtx {
		xtx[i] = make([]float64, k)
	}
	xty := make([]float64, k)
	for i := range y {
		for j := 0; j < k; j++ {
			xty[j] += x[i][j] * y[i]
			for l := 0; l < k; l++ {
				xtx[j][l] += x[i][j] * x[i][l]
			}
		}
	}
	return solve(xtx, xty)
}

// solve runs Gauss-Jordan elimination with partial pivoting on [A|b].
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	aug := make([][]float64, n)
	for i := range aug {
		aug[i] = make([]float64, n+1)
		copy(aug[i][:n], a[i])
		aug[i][n] = b[i]
	}

	for i := 0; i < n; i++ {
		maxRow := i
		for r := i + 1; r < n; r++ {
			if math.Abs(aug[r][i]) > math.Abs(aug[maxRow][i]) {
				maxRow = r
			}
		}
		aug[i], aug[maxRow] = aug[maxRow], aug[i]

		if math.Abs(aug[i][i]) < 1e-10 {
			return nil, ErrSingular
		}

		pivot := aug[i][i]
		for j := i; j <= n; j++ {
			aug[i][j] /= pivot
		}
		for r := 0; r < n; r++ {
			if r == i {
				continue
			}
			factor := aug[r][i]
			for j := i; j <= n; j++ {
				aug[r][j] -= factor * aug[i][j]
			}
		}
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = aug[i][n]
	}
	return out, nil
}

func nonZeroColumns(x [][]float64) []int {
	var keep []int
	for j := range x[0] {
		for i := range x {
			if x[i][j] != 0 {
				keep = append(keep, j)
				break
			}
		}
	}
	return keep
}

func selectColumns(x [][]float64, cols []int) [][]float64 {
	out := make([][]float64, len(x))
	for i, row := range x {
		r := make([]float64, len(cols))
		for c, j := range cols {
			r[c] = row[j]
		}
		out[i] = r
	}
	return out
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func daysInMonth(d time.Time) int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
