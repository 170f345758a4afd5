package calculator

import (
	"coindash/internal/domain"
	"fmt"
)

// ToReturns converts a price path into daily simple returns. The
// synthesizer never emits non-positive prices, but a bad price would
// poison every downstream statistic, so it is rechecked here.
func ToReturns(prices domain.PriceSeries) (domain.ReturnSeries, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("need at least 2 prices to compute a return, got %d: %w", len(prices), ErrInsufficientData)
	}

	returns := make(domain.ReturnSeries, 0, len(prices)-1)
	for t := 0; t < len(prices)-1; t++ {
		if prices[t] <= 0 {
			return nil, fmt.Errorf("price %f at day %d: %w", prices[t], t, ErrDegenerateSeries)
		}
		returns = append(returns, (prices[t+1]-prices[t])/prices[t])
	}

	return returns, nil
}

// WeightedAggregate combines per-asset daily returns into one portfolio
// return series. All series must share length and day alignment, which
// the synthesizer guarantees by construction since every asset uses the
// same window.
func WeightedAggregate(perAssetReturns map[string]domain.ReturnSeries, weights map[string]float64) (domain.ReturnSeries, error) {
	if len(perAssetReturns) == 0 {
		return nil, fmt.Errorf("no return series to aggregate: %w", ErrInsufficientData)
	}

	length := -1
	for assetID, returns := range perAssetReturns {
		if _, ok := weights[assetID]; !ok {
			return nil, fmt.Errorf("no weight supplied for %s: %w", assetID, ErrMisalignedSeries)
		}
		if length == -1 {
			length = len(returns)
		} else if len(returns) != length {
			return nil, fmt.Errorf("series for %s has length %d, expected %d: %w", assetID, len(returns), length, ErrMisalignedSeries)
		}
	}

	portfolio := make(domain.ReturnSeries, length)
	for assetID, returns := range perAssetReturns {
		weight := weights[assetID]
		for t, r := range returns {
			portfolio[t] += weight * r
		}
	}

	return portfolio, nil
}
