package service

import (
	"coindash/internal/calculator"
	"coindash/internal/domain"
	mock_repository "coindash/internal/repository/mocks"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAnalyticsTestService(t *testing.T, prices map[string]float64) AnalyticsService {
	ctrl := gomock.NewController(t)
	marketData := mock_repository.NewMockMarketDataRepository(ctrl)

	marketData.EXPECT().ResolvePrice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, assetID string) (*domain.Asset, error) {
			price, ok := prices[assetID]
			if !ok {
				return nil, fmt.Errorf("coin %s not found", assetID)
			}
			return &domain.Asset{
				ID:           assetID,
				Symbol:       assetID,
				CurrentPrice: price,
			}, nil
		},
	).AnyTimes()

	return NewAnalyticsService(marketData, calculator.NewRandomWalkSynthesizerWithNonce(42))
}

func TestAnalyze(t *testing.T) {
	t.Run("two asset portfolio over 30 days", func(t *testing.T) {
		svc := newAnalyticsTestService(t, map[string]float64{
			"asset-a":  100,
			"asset-b":  50,
			"bitcoin":  65000,
			"ethereum": 3500,
		})

		analytics, err := svc.Analyze(context.Background(), []domain.Allocation{
			{AssetID: "asset-a", Weight: 0.6},
			{AssetID: "asset-b", Weight: 0.4},
		}, 30)
		require.NoError(t, err)

		require.Len(t, analytics.HistoricalReturns, 30)
		require.Len(t, analytics.CumulativeReturns, 31)

		first := analytics.CumulativeReturns[0]
		require.Equal(t, 100.0, first.Portfolio)
		require.Equal(t, 100.0, first.Btc)
		require.Equal(t, 100.0, first.Eth)

		require.Len(t, analytics.Contributions, 2)
		riskSum := 0.0
		for _, c := range analytics.Contributions {
			riskSum += c.RiskContribution
		}
		require.InDelta(t, 1.0, riskSum, 1e-6)

		require.Greater(t, analytics.Metrics.Volatility, 0.0)
		require.GreaterOrEqual(t, analytics.Metrics.MaxDrawdown, 0.0)
		require.LessOrEqual(t, analytics.Metrics.MaxDrawdown, 1.0)
	})

	t.Run("benchmark asset held in the portfolio", func(t *testing.T) {
		svc := newAnalyticsTestService(t, map[string]float64{
			"bitcoin":  65000,
			"ethereum": 3500,
		})

		analytics, err := svc.Analyze(context.Background(), []domain.Allocation{
			{AssetID: "bitcoin", Weight: 0.5},
			{AssetID: "ethereum", Weight: 0.5},
		}, 14)
		require.NoError(t, err)
		require.Len(t, analytics.HistoricalReturns, 14)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		prices := map[string]float64{
			"asset-a":  100,
			"asset-b":  50,
			"bitcoin":  65000,
			"ethereum": 3500,
		}
		allocations := []domain.Allocation{
			{AssetID: "asset-a", Weight: 0.5},
			{AssetID: "asset-b", Weight: 0.5},
		}

		first, err := newAnalyticsTestService(t, prices).Analyze(context.Background(), allocations, 30)
		require.NoError(t, err)
		second, err := newAnalyticsTestService(t, prices).Analyze(context.Background(), allocations, 30)
		require.NoError(t, err)

		require.Equal(t, first.Metrics, second.Metrics)
		require.Equal(t, first.HistoricalReturns, second.HistoricalReturns)
	})

	t.Run("single asset rejected", func(t *testing.T) {
		svc := newAnalyticsTestService(t, map[string]float64{"asset-a": 100})

		_, err := svc.Analyze(context.Background(), []domain.Allocation{
			{AssetID: "asset-a", Weight: 1},
		}, 30)
		require.ErrorIs(t, err, calculator.ErrInvalidPortfolio)
	})

	t.Run("weights that do not sum to 1 rejected", func(t *testing.T) {
		svc := newAnalyticsTestService(t, nil)

		_, err := svc.Analyze(context.Background(), []domain.Allocation{
			{AssetID: "asset-a", Weight: 0.5},
			{AssetID: "asset-b", Weight: 0.4},
		}, 30)
		require.ErrorIs(t, err, calculator.ErrInvalidPortfolio)
	})

	t.Run("duplicate asset rejected", func(t *testing.T) {
		svc := newAnalyticsTestService(t, nil)

		_, err := svc.Analyze(context.Background(), []domain.Allocation{
			{AssetID: "asset-a", Weight: 0.5},
			{AssetID: "asset-a", Weight: 0.5},
		}, 30)
		require.ErrorIs(t, err, calculator.ErrInvalidPortfolio)
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		svc := newAnalyticsTestService(t, nil)

		_, err := svc.Analyze(context.Background(), []domain.Allocation{
			{AssetID: "asset-a", Weight: -0.2},
			{AssetID: "asset-b", Weight: 1.2},
		}, 30)
		require.ErrorIs(t, err, calculator.ErrInvalidPortfolio)
	})

	t.Run("zero day window rejected", func(t *testing.T) {
		svc := newAnalyticsTestService(t, nil)

		_, err := svc.Analyze(context.Background(), []domain.Allocation{
			{AssetID: "asset-a", Weight: 0.6},
			{AssetID: "asset-b", Weight: 0.4},
		}, 0)
		require.ErrorIs(t, err, calculator.ErrInsufficientData)
	})

	t.Run("unresolvable asset surfaces price resolution error", func(t *testing.T) {
		svc := newAnalyticsTestService(t, map[string]float64{
			"asset-a":  100,
			"bitcoin":  65000,
			"ethereum": 3500,
		})

		_, err := svc.Analyze(context.Background(), []domain.Allocation{
			{AssetID: "asset-a", Weight: 0.6},
			{AssetID: "no-such-coin", Weight: 0.4},
		}, 30)
		require.ErrorIs(t, err, calculator.ErrPriceResolution)
	})
}
