package calculator

import (
	"coindash/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func contributionSums(contributions []domain.Contribution) (risk, ret float64) {
	for _, c := range contributions {
		risk += c.RiskContribution
		ret += c.ReturnContribution
	}
	return risk, ret
}

func TestDecomposeContributions(t *testing.T) {
	t.Run("both columns sum to 1", func(t *testing.T) {
		contributions, err := DecomposeContributions(
			map[string]domain.ReturnSeries{
				"a": {0.02, -0.01, 0.015, 0.005, -0.02},
				"b": {-0.01, 0.03, 0.002, -0.004, 0.01},
			},
			map[string]float64{"a": 0.6, "b": 0.4},
		)
		require.NoError(t, err)
		require.Len(t, contributions, 2)

		riskSum, returnSum := contributionSums(contributions)
		require.InDelta(t, 1.0, riskSum, 1e-6)
		require.InDelta(t, 1.0, returnSum, 1e-6)
	})

	t.Run("output ordered by asset id", func(t *testing.T) {
		contributions, err := DecomposeContributions(
			map[string]domain.ReturnSeries{
				"zcash":   {0.01, 0.02},
				"bitcoin": {0.02, 0.01},
			},
			map[string]float64{"zcash": 0.5, "bitcoin": 0.5},
		)
		require.NoError(t, err)

		require.Equal(t, "bitcoin", contributions[0].AssetID)
		require.Equal(t, "zcash", contributions[1].AssetID)
	})

	t.Run("identical series split by weight", func(t *testing.T) {
		// when every asset moves identically the decomposition can only
		// attribute by nominal allocation
		contributions, err := DecomposeContributions(
			map[string]domain.ReturnSeries{
				"a": {0.01, -0.02, 0.03},
				"b": {0.01, -0.02, 0.03},
			},
			map[string]float64{"a": 0.7, "b": 0.3},
		)
		require.NoError(t, err)

		require.InDelta(t, 0.7, contributions[0].RiskContribution, 1e-9)
		require.InDelta(t, 0.3, contributions[1].RiskContribution, 1e-9)
	})

	t.Run("flat series fall back to nominal weights", func(t *testing.T) {
		contributions, err := DecomposeContributions(
			map[string]domain.ReturnSeries{
				"a": {0, 0, 0},
				"b": {0, 0, 0},
			},
			map[string]float64{"a": 0.6, "b": 0.4},
		)
		require.NoError(t, err)

		require.InDelta(t, 0.6, contributions[0].RiskContribution, 1e-9)
		require.InDelta(t, 0.6, contributions[0].ReturnContribution, 1e-9)
		require.InDelta(t, 0.4, contributions[1].RiskContribution, 1e-9)
		require.InDelta(t, 0.4, contributions[1].ReturnContribution, 1e-9)
	})

	t.Run("negative mean keeps signs consistent", func(t *testing.T) {
		contributions, err := DecomposeContributions(
			map[string]domain.ReturnSeries{
				"up":   {0.01, 0.02, 0.01},
				"down": {-0.03, -0.04, -0.03},
			},
			map[string]float64{"up": 0.5, "down": 0.5},
		)
		require.NoError(t, err)

		_, returnSum := contributionSums(contributions)
		require.InDelta(t, 1.0, returnSum, 1e-6)

		// the falling asset owns more than all of a falling portfolio's
		// return; the rising asset's share is negative
		for _, c := range contributions {
			if c.AssetID == "down" {
				require.Greater(t, c.ReturnContribution, 1.0)
			} else {
				require.Less(t, c.ReturnContribution, 0.0)
			}
		}
	})

	t.Run("misaligned series fail", func(t *testing.T) {
		_, err := DecomposeContributions(
			map[string]domain.ReturnSeries{
				"a": {0.01, 0.02},
				"b": {0.01},
			},
			map[string]float64{"a": 0.5, "b": 0.5},
		)
		require.ErrorIs(t, err, ErrMisalignedSeries)
	})
}
