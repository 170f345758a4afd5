package integration_tests

import (
	"coindash/internal/db/models/postgres/public/model"
	"coindash/internal/domain"
	"coindash/internal/repository"
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
)

// fixed prices so every run computes over the same inputs
var mockPrices = map[string]float64{
	"bitcoin":  65000.0,
	"ethereum": 3500.0,
	"solana":   150.0,
	"cardano":  0.45,
}

func NewMockMarketDataForTests() repository.MarketDataRepository {
	return mockMarketDataForTestsHandler{}
}

type mockMarketDataForTestsHandler struct{}

func (m mockMarketDataForTestsHandler) ResolvePrice(ctx context.Context, coinID string) (*domain.Asset, error) {
	price, ok := mockPrices[coinID]
	if !ok {
		return nil, fmt.Errorf("unknown coin id %s", coinID)
	}
	return &domain.Asset{
		ID:           coinID,
		Symbol:       coinID,
		CurrentPrice: price,
	}, nil
}

func (m mockMarketDataForTestsHandler) Search(ctx context.Context, query string) ([]domain.CoinSummary, error) {
	out := []domain.CoinSummary{}
	for coinID := range mockPrices {
		out = append(out, domain.CoinSummary{
			ID:     coinID,
			Symbol: coinID,
			Name:   coinID,
		})
	}
	return out, nil
}

func (m mockMarketDataForTestsHandler) Trending(ctx context.Context) ([]domain.TrendingCoin, error) {
	return []domain.TrendingCoin{}, nil
}

// NewNoopApiRequestRepository satisfies the request-log middleware
// without a database behind it.
func NewNoopApiRequestRepository() repository.ApiRequestRepository {
	return noopApiRequestHandler{}
}

type noopApiRequestHandler struct{}

func (h noopApiRequestHandler) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	return nil, nil
}

func (h noopApiRequestHandler) Update(db qrm.Executable, ar model.APIRequest) error {
	return nil
}
