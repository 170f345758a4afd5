package service

import (
	"coindash/internal/calculator"
	"coindash/internal/domain"
	"coindash/internal/repository"
	"coindash/internal/util"
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// benchmark asset ids the cumulative comparison is always computed
// against, resolved through the same market-data collaborator as the
// portfolio's own assets
const (
	benchmarkBtcID = "bitcoin"
	benchmarkEthID = "ethereum"
)

const weightSumTolerance = 1e-3

type AnalyticsService interface {
	Analyze(ctx context.Context, allocations []domain.Allocation, windowDays int) (*domain.PortfolioAnalytics, error)
}

type analyticsServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	Synthesizer          calculator.PriceSeriesSynthesizer
}

func NewAnalyticsService(marketDataRepository repository.MarketDataRepository, synthesizer calculator.PriceSeriesSynthesizer) AnalyticsService {
	return analyticsServiceHandler{
		MarketDataRepository: marketDataRepository,
		Synthesizer:          synthesizer,
	}
}

// Analyze runs the full risk pipeline for one portfolio: resolve current
// prices, build one return series per asset plus the two benchmarks,
// then compute portfolio metrics, the rebased benchmark comparison, and
// the per-asset risk/return decomposition. The call either succeeds
// completely or fails - there is no meaningful partial analysis, and
// nothing here is retried since every step is deterministic given its
// inputs.
func (h analyticsServiceHandler) Analyze(ctx context.Context, allocations []domain.Allocation, windowDays int) (*domain.PortfolioAnalytics, error) {
	weights, err := validateAllocations(allocations)
	if err != nil {
		return nil, err
	}
	if windowDays < 1 {
		return nil, fmt.Errorf("window must cover at least 1 day, got %d: %w", windowDays, calculator.ErrInsufficientData)
	}

	// the benchmarks ride through the same synthesis path as the
	// requested assets; dedupe in case one of them is also held
	assetIDs := make([]string, 0, len(weights)+2)
	for assetID := range weights {
		assetIDs = append(assetIDs, assetID)
	}
	for _, benchmarkID := range []string{benchmarkBtcID, benchmarkEthID} {
		if _, held := weights[benchmarkID]; !held {
			assetIDs = append(assetIDs, benchmarkID)
		}
	}

	returnsByAsset, err := h.buildReturnSeries(ctx, assetIDs, windowDays)
	if err != nil {
		return nil, err
	}

	perAssetReturns := map[string]domain.ReturnSeries{}
	for assetID := range weights {
		perAssetReturns[assetID] = returnsByAsset[assetID]
	}

	portfolioReturns, err := calculator.WeightedAggregate(perAssetReturns, weights)
	if err != nil {
		return nil, err
	}

	metrics, err := calculator.ComputeRiskMetrics(portfolioReturns)
	if err != nil {
		return nil, err
	}

	dates := util.DateAxis(windowDays, time.Now().UTC())
	cumulative, err := calculator.NormalizeBenchmarks(
		portfolioReturns,
		returnsByAsset[benchmarkBtcID],
		returnsByAsset[benchmarkEthID],
		dates,
	)
	if err != nil {
		return nil, err
	}

	contributions, err := calculator.DecomposeContributions(perAssetReturns, weights)
	if err != nil {
		return nil, err
	}

	return &domain.PortfolioAnalytics{
		Metrics:           *metrics,
		HistoricalReturns: portfolioReturns,
		CumulativeReturns: cumulative,
		Contributions:     contributions,
	}, nil
}

// buildReturnSeries resolves the current price and synthesizes the daily
// return series for every asset id. The per-asset work has no data
// dependencies, so it fans out; correctness doesn't depend on execution
// order since the synthesizer seeds per asset.
func (h analyticsServiceHandler) buildReturnSeries(ctx context.Context, assetIDs []string, windowDays int) (map[string]domain.ReturnSeries, error) {
	var mu sync.Mutex
	out := map[string]domain.ReturnSeries{}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, assetID := range assetIDs {
		assetID := assetID
		group.Go(func() error {
			asset, err := h.MarketDataRepository.ResolvePrice(groupCtx, assetID)
			if err != nil {
				return fmt.Errorf("failed to resolve price for %s (%v): %w", assetID, err, calculator.ErrPriceResolution)
			}

			prices, err := h.Synthesizer.Synthesize(asset.ID, asset.CurrentPrice, windowDays)
			if err != nil {
				return fmt.Errorf("failed to synthesize series for %s: %w", assetID, err)
			}

			returns, err := calculator.ToReturns(prices)
			if err != nil {
				return fmt.Errorf("failed to compute returns for %s: %w", assetID, err)
			}

			mu.Lock()
			out[assetID] = returns
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// validateAllocations re-checks what the request validation layer
// upstream already enforces; a portfolio that slips past it would
// otherwise produce silently wrong statistics.
func validateAllocations(allocations []domain.Allocation) (map[string]float64, error) {
	weights := map[string]float64{}
	weightSum := 0.0

	for _, allocation := range allocations {
		if allocation.AssetID == "" {
			return nil, fmt.Errorf("allocation with empty asset id: %w", calculator.ErrInvalidPortfolio)
		}
		if _, exists := weights[allocation.AssetID]; exists {
			return nil, fmt.Errorf("duplicate allocation for %s: %w", allocation.AssetID, calculator.ErrInvalidPortfolio)
		}
		if allocation.Weight < 0 || allocation.Weight > 1 {
			return nil, fmt.Errorf("weight %f for %s outside [0,1]: %w", allocation.Weight, allocation.AssetID, calculator.ErrInvalidPortfolio)
		}
		weights[allocation.AssetID] = allocation.Weight
		weightSum += allocation.Weight
	}

	if len(weights) < 2 {
		return nil, fmt.Errorf("portfolio needs at least 2 assets, got %d: %w", len(weights), calculator.ErrInvalidPortfolio)
	}
	if math.Abs(weightSum-1.0) > weightSumTolerance {
		return nil, fmt.Errorf("weights sum to %f, expected 1.0: %w", weightSum, calculator.ErrInvalidPortfolio)
	}

	return weights, nil
}
