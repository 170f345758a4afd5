package calculator

import (
	"coindash/internal/domain"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

const (
	tradingDaysPerYear = 252
	riskFreeRate       = 0.02
)

// ComputeRiskMetrics derives annualized risk/performance statistics from
// a daily return series. Population variance (divisor N) is used so the
// numbers stay consistent with the covariance-based risk decomposition.
func ComputeRiskMetrics(returns domain.ReturnSeries) (*domain.RiskMetrics, error) {
	if len(returns) < 2 {
		return nil, fmt.Errorf("cannot compute metrics on %d returns, variance needs at least 2: %w", len(returns), ErrInsufficientData)
	}

	data := stats.Float64Data(returns)

	avgDaily, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean return: %w", err)
	}

	variance, err := stats.PopulationVariance(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compute return variance: %w", err)
	}

	expectedReturn := avgDaily * tradingDaysPerYear
	volatility := math.Sqrt(variance) * math.Sqrt(tradingDaysPerYear)

	// a perfectly flat synthetic series is legitimate; report 0 rather
	// than dividing by zero
	sharpeRatio := 0.0
	if volatility > 0 {
		sharpeRatio = (expectedReturn - riskFreeRate) / volatility
	}

	return &domain.RiskMetrics{
		ExpectedReturn: expectedReturn,
		Volatility:     volatility,
		MaxDrawdown:    maxDrawdown(returns),
		SharpeRatio:    sharpeRatio,
	}, nil
}

// maxDrawdown walks the cumulative value path and tracks the largest
// peak-to-trough decline as a ratio of the peak.
func maxDrawdown(returns domain.ReturnSeries) float64 {
	value := 1.0
	peak := 1.0
	worst := 0.0

	for _, r := range returns {
		value *= 1 + r
		if value > peak {
			peak = value
		}
		if dd := (peak - value) / peak; dd > worst {
			worst = dd
		}
	}

	if worst < 0 {
		return 0
	}
	if worst > 1 {
		return 1
	}
	return worst
}
