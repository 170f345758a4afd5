package calculator

import (
	"coindash/internal/domain"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// below this, treat the portfolio's aggregate average return or variance
// as zero and fall back to nominal weights instead of dividing by noise
const contributionEpsilon = 1e-12

// DecomposeContributions splits total portfolio risk and return into
// per-asset shares. Risk uses the standard covariance decomposition
// RC_i = w_i * Cov(r_i, r_p) / Var(r_p); return uses each asset's share
// of the weighted average daily return. Both columns sum to 1 for any
// non-degenerate input. Output is ordered by asset id so responses are
// stable across calls.
func DecomposeContributions(perAssetReturns map[string]domain.ReturnSeries, weights map[string]float64) ([]domain.Contribution, error) {
	portfolio, err := WeightedAggregate(perAssetReturns, weights)
	if err != nil {
		return nil, err
	}

	portfolioVariance, err := stats.PopulationVariance(stats.Float64Data(portfolio))
	if err != nil {
		return nil, fmt.Errorf("failed to compute portfolio variance: %w", err)
	}

	assetIDs := make([]string, 0, len(perAssetReturns))
	for assetID := range perAssetReturns {
		assetIDs = append(assetIDs, assetID)
	}
	sort.Strings(assetIDs)

	meansByAsset := map[string]float64{}
	totalWeightedMean := 0.0
	for _, assetID := range assetIDs {
		mean, err := stats.Mean(stats.Float64Data(perAssetReturns[assetID]))
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean for %s: %w", assetID, err)
		}
		meansByAsset[assetID] = mean
		totalWeightedMean += weights[assetID] * mean
	}

	contributions := make([]domain.Contribution, 0, len(assetIDs))
	for _, assetID := range assetIDs {
		weight := weights[assetID]

		returnContribution := weight
		if math.Abs(totalWeightedMean) > contributionEpsilon {
			returnContribution = weight * meansByAsset[assetID] / totalWeightedMean
		}

		riskContribution := weight
		if portfolioVariance > contributionEpsilon {
			covariance, err := stats.CovariancePopulation(
				stats.Float64Data(perAssetReturns[assetID]),
				stats.Float64Data(portfolio),
			)
			if err != nil {
				return nil, fmt.Errorf("failed to compute covariance for %s: %w", assetID, err)
			}
			riskContribution = weight * covariance / portfolioVariance
		}

		contributions = append(contributions, domain.Contribution{
			AssetID:            assetID,
			RiskContribution:   riskContribution,
			ReturnContribution: returnContribution,
		})
	}

	return contributions, nil
}
