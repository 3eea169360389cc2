package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/learnkit/internal/frame"
)

// CSVLoader reads the store sales training file (columns include date,
// sales and onpromotion; other columns are ignored), averages each numeric
// column per date and keeps only Year.
type CSVLoader struct {
	Path string
}

func (l *CSVLoader) Load() (*frame.Table, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file)
}

type dayTotals struct {
	sales, promo   float64
	nSales, nPromo int
}

// LoadCSVFromReader loads the average sales table from an io.Reader.
func LoadCSVFromReader(r io.Reader) (*frame.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateIdx, salesIdx, promoIdx := -1, -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.Trim(h, "\"")) {
		case "date":
			dateIdx = i
		case Sales:
			salesIdx = i
		case OnPromotion:
			promoIdx = i
		}
	}
	if dateIdx < 0 || salesIdx < 0 || promoIdx < 0 {
		return nil, errors.New("csv must have date, sales and onpromotion columns")
	}

	days := make(map[string]*dayTotals)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		dateStr := strings.TrimSpace(record[dateIdx])
		d, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad date %q", line, dateStr)
		}
		if d.Year() != Year {
			continue
		}

		tot := days[dateStr]
		if tot == nil {
			tot = &dayTotals{}
			days[dateStr] = tot
		}
		if v, ok := parseValue(record[salesIdx]); ok {
			tot.sales += v
			tot.nSales++
		}
		if v, ok := parseValue(record[promoIdx]); ok {
			tot.promo += v
			tot.nPromo++
		}
	}

	if len(days) == 0 {
		return nil, fmt.Errorf("no %d rows found in CSV", Year)
	}

	index := make([]string, 0, len(days))
	for d := range days {
		index = append(index, d)
	}
	// DateLayout sorts lexically in date order.
	sort.Strings(index)

	sales := make([]float64, len(index))
	promo := make([]float64, len(index))
	for i, d := range index {
		sales[i] = mean(days[d].sales, days[d].nSales)
		promo[i] = mean(days[d].promo, days[d].nPromo)
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

func parseValue(s string) (float64, bool) {
	s = strings.TrimSpace(strings.Trim(s, "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return frame.NA()
	}
	return sum / float64(n)
}
