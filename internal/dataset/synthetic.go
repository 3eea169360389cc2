package dataset

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/learnkit/internal/frame"
)

// Synthetic generates a deterministic stand-in for the store sales table
// when no training file is configured: a trend, a weekly cycle, a monthly
// wave and seeded noise over Year's first Days days.
type Synthetic struct {
	Days int    // default 227 (Jan 1 to Aug 15)
	Seed uint64 // default 4
}

// weekly sales multipliers, Monday first.
var weekly = [7]float64{0.92, 0.88, 0.90, 0.85, 0.97, 1.18, 1.30}

func (s Synthetic) Load() (*frame.Table, error) {
	days := s.Days
	if days <= 0 {
		days = 227
	}
	seed := s.Seed
	if seed == 0 {
		seed = 4
	}
	rng := rand.New(rand.NewPCG(seed, seed*31+7))

	start := time.Date(Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	index := make([]string, days)
	sales := make([]float64, days)
	promo := make([]float64, days)

	for i := range days {
		d := start.AddDate(0, 0, i)
		index[i] = d.Format(DateLayout)

		dow := (int(d.Weekday()) + 6) % 7
		month := 2 * math.Pi * float64(d.Day()) / float64(daysIn(d))
		trend := 420 + 0.35*float64(i)

		p := 9 + 3*math.Sin(month) + 2*rng.Float64()
		if d.YearDay() == 1 {
			// Stores are closed on New Year's Day.
			sales[i] = 2.5
			promo[i] = 0
			continue
		}
		sales[i] = trend*weekly[dow] + 25*math.Cos(month) + 4*p + 12*rng.NormFloat64()
		promo[i] = p
	}

	tbl := frame.NewTable(index)
	if err := tbl.AddColumn(Sales, sales); err != nil {
		return nil, err
	}
	if err := tbl.AddColumn(OnPromotion, promo); err != nil {
		return nil, err
	}
	return tbl, nil
}

func daysIn(d time.Time) int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
