package lesson4

import (
	"fmt"

	"github.com/abhisek/learnkit/internal/dataset"
	"github.com/abhisek/learnkit/internal/features"
	"github.com/abhisek/learnkit/internal/frame"
)

// TimeSeriesFeatures computes the reference X_lags, X_promo and X_oil.
func TimeSeriesFeatures(data dataset.Loader) ([]any, error) {
	avg, err := data.Load()
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	y, err := features.Column(avg, dataset.Sales)
	if err != nil {
		return nil, err
	}
	onpromotion, err := features.Column(avg, dataset.OnPromotion)
	if err != nil {
		return nil, err
	}
	dates, err := dataset.Dates(avg)
	if err != nil {
		return nil, err
	}

	yDeseason, err := features.Deseasonalize(y, dates)
	if err != nil {
		return nil, fmt.Errorf("deseasonalize sales: %w", err)
	}

	xLags, err := features.MakeLags(yDeseason, 1, "")
	if err != nil {
		return nil, err
	}

	promoLags, err := features.MakeLags(onpromotion, 1, dataset.OnPromotion)
	if err != nil {
		return nil, err
	}
	promoLeads, err := features.MakeLeads(onpromotion, 1, dataset.OnPromotion)
	if err != nil {
		return nil, err
	}
	xPromo, err := features.Concat(promoLags, onpromotion, promoLeads)
	if err != nil {
		return nil, err
	}

	xOil := frame.NewTable(nil)

	return []any{xLags, xPromo, xOil}, nil
}

// StatisticalFeatures computes the reference median_14, std_7 and promo_7.
func StatisticalFeatures(data dataset.Loader) ([]any, error) {
	avg, err := data.Load()
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	sales, err := features.Column(avg, dataset.Sales)
	if err != nil {
		return nil, err
	}
	onpromo, err := features.Column(avg, dataset.OnPromotion)
	if err != nil {
		return nil, err
	}

	yLag := features.Shift(sales, 1)

	median14 := features.Rolling(yLag, 14).Median()
	std7 := features.Rolling(yLag, 7).Std()
	promo7 := features.Rolling(onpromo, 7, features.Centered()).Sum()

	return []any{median14, std7, promo7}, nil
}
