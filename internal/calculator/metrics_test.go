package calculator

import (
	"coindash/internal/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeRiskMetrics(t *testing.T) {
	t.Run("annualized metrics on a known series", func(t *testing.T) {
		metrics, err := ComputeRiskMetrics(domain.ReturnSeries{0.1, -0.1})
		require.NoError(t, err)

		// mean 0, population variance 0.01
		require.InDelta(t, 0.0, metrics.ExpectedReturn, 1e-12)
		expectedVol := 0.1 * math.Sqrt(252)
		require.InDelta(t, expectedVol, metrics.Volatility, 1e-12)
		require.InDelta(t, (0.0-0.02)/expectedVol, metrics.SharpeRatio, 1e-12)
		// path 1.0 -> 1.1 -> 0.99, worst decline off the 1.1 peak
		require.InDelta(t, 0.11/1.1, metrics.MaxDrawdown, 1e-12)
	})

	t.Run("flat series has zero volatility and zero sharpe", func(t *testing.T) {
		metrics, err := ComputeRiskMetrics(domain.ReturnSeries{0, 0, 0, 0})
		require.NoError(t, err)

		require.Equal(t, 0.0, metrics.Volatility)
		require.Equal(t, 0.0, metrics.SharpeRatio)
		require.Equal(t, 0.0, metrics.MaxDrawdown)
		require.False(t, math.IsNaN(metrics.SharpeRatio))
	})

	t.Run("drawdown stays within [0,1]", func(t *testing.T) {
		metrics, err := ComputeRiskMetrics(domain.ReturnSeries{-0.5, -0.5, -0.5, 0.2})
		require.NoError(t, err)

		require.GreaterOrEqual(t, metrics.MaxDrawdown, 0.0)
		require.LessOrEqual(t, metrics.MaxDrawdown, 1.0)
	})

	t.Run("monotonically rising series has zero drawdown", func(t *testing.T) {
		metrics, err := ComputeRiskMetrics(domain.ReturnSeries{0.01, 0.02, 0.005})
		require.NoError(t, err)

		require.Equal(t, 0.0, metrics.MaxDrawdown)
	})

	t.Run("fewer than 2 returns fails", func(t *testing.T) {
		_, err := ComputeRiskMetrics(domain.ReturnSeries{0.1})
		require.ErrorIs(t, err, ErrInsufficientData)
	})
}
