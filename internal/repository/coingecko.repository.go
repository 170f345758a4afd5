package repository

import (
	"coindash/internal/domain"
	"coindash/internal/logger"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const coinGeckoBaseUrl = "https://api.coingecko.com/api/v3"

// resolved prices stay fresh enough for dashboard use for a short while;
// within that window repeated lookups are served from memory
const priceCacheTtl = 30 * time.Second

// MarketDataRepository is the live price/market-data collaborator. The
// analytics engine only ever consumes an already-resolved Asset from it
// and never retries on its behalf.
type MarketDataRepository interface {
	ResolvePrice(ctx context.Context, coinID string) (*domain.Asset, error)
	Search(ctx context.Context, query string) ([]domain.CoinSummary, error)
	Trending(ctx context.Context) ([]domain.TrendingCoin, error)
}

type cachedPrice struct {
	asset     domain.Asset
	fetchedAt time.Time
}

type coinGeckoRepositoryHandler struct {
	HttpClient *http.Client
	BaseUrl    string
	ApiKey     string

	cache     map[string]cachedPrice
	readMutex *sync.RWMutex
}

func NewCoinGeckoRepository(apiKey string) MarketDataRepository {
	return &coinGeckoRepositoryHandler{
		HttpClient: &http.Client{Timeout: 10 * time.Second},
		BaseUrl:    coinGeckoBaseUrl,
		ApiKey:     apiKey,
		cache:      map[string]cachedPrice{},
		readMutex:  &sync.RWMutex{},
	}
}

// NewCoinGeckoRepositoryWithBaseUrl exists for tests that point the
// client at a local server.
func NewCoinGeckoRepositoryWithBaseUrl(baseUrl string) MarketDataRepository {
	return &coinGeckoRepositoryHandler{
		HttpClient: &http.Client{Timeout: 10 * time.Second},
		BaseUrl:    baseUrl,
		cache:      map[string]cachedPrice{},
		readMutex:  &sync.RWMutex{},
	}
}

func (h *coinGeckoRepositoryHandler) getFromCache(coinID string) *domain.Asset {
	h.readMutex.RLock()
	defer h.readMutex.RUnlock()
	if cached, ok := h.cache[coinID]; ok && time.Since(cached.fetchedAt) < priceCacheTtl {
		asset := cached.asset
		return &asset
	}
	return nil
}

func (h *coinGeckoRepositoryHandler) addToCache(asset domain.Asset) {
	h.readMutex.Lock()
	h.cache[asset.ID] = cachedPrice{asset: asset, fetchedAt: time.Now()}
	h.readMutex.Unlock()
}

func (h *coinGeckoRepositoryHandler) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqUrl := fmt.Sprintf("%s%s", h.BaseUrl, path)
	if len(params) > 0 {
		reqUrl += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, err
	}
	if h.ApiKey != "" {
		req.Header.Set("x-cg-demo-api-key", h.ApiKey)
	}

	response, err := h.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == 429 {
		logger.Debug("coingecko rate limit hit on %s. sleeping...", path)
		select {
		case <-time.After(30 * time.Second):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return h.get(ctx, path, params)
	} else if response.StatusCode != 200 {
		return nil, fmt.Errorf("coingecko %s failed with status code %d: %s", path, response.StatusCode, string(responseBytes))
	}

	return responseBytes, nil
}

func (h *coinGeckoRepositoryHandler) ResolvePrice(ctx context.Context, coinID string) (*domain.Asset, error) {
	if cached := h.getFromCache(coinID); cached != nil {
		return cached, nil
	}

	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("ids", coinID)

	responseBytes, err := h.get(ctx, "/coins/markets", params)
	if err != nil {
		return nil, err
	}

	type marketRow struct {
		ID           string  `json:"id"`
		Symbol       string  `json:"symbol"`
		CurrentPrice float64 `json:"current_price"`
	}
	rows := []marketRow{}
	if err := json.Unmarshal(responseBytes, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse market data for %s: %w", coinID, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("unknown coin id %s", coinID)
	}

	asset := domain.Asset{
		ID:           rows[0].ID,
		Symbol:       rows[0].Symbol,
		CurrentPrice: rows[0].CurrentPrice,
	}
	if asset.CurrentPrice <= 0 {
		return nil, fmt.Errorf("coingecko returned non-positive price %f for %s", asset.CurrentPrice, coinID)
	}

	h.addToCache(asset)

	return &asset, nil
}

func (h *coinGeckoRepositoryHandler) Search(ctx context.Context, query string) ([]domain.CoinSummary, error) {
	params := url.Values{}
	params.Set("query", query)

	responseBytes, err := h.get(ctx, "/search", params)
	if err != nil {
		return nil, err
	}

	var responseJson struct {
		Coins []struct {
			ID            string  `json:"id"`
			Symbol        string  `json:"symbol"`
			Name          string  `json:"name"`
			MarketCapRank *int    `json:"market_cap_rank"`
			Thumb         *string `json:"thumb"`
		} `json:"coins"`
	}
	if err := json.Unmarshal(responseBytes, &responseJson); err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	out := make([]domain.CoinSummary, 0, len(responseJson.Coins))
	for _, coin := range responseJson.Coins {
		out = append(out, domain.CoinSummary{
			ID:            coin.ID,
			Symbol:        coin.Symbol,
			Name:          coin.Name,
			MarketCapRank: coin.MarketCapRank,
			Thumb:         coin.Thumb,
		})
	}

	return out, nil
}

func (h *coinGeckoRepositoryHandler) Trending(ctx context.Context) ([]domain.TrendingCoin, error) {
	responseBytes, err := h.get(ctx, "/search/trending", nil)
	if err != nil {
		return nil, err
	}

	var responseJson struct {
		Coins []struct {
			Item struct {
				ID            string `json:"id"`
				Symbol        string `json:"symbol"`
				Name          string `json:"name"`
				MarketCapRank *int   `json:"market_cap_rank"`
				Score         int    `json:"score"`
				Data          struct {
					Price *float64 `json:"price"`
				} `json:"data"`
			} `json:"item"`
		} `json:"coins"`
	}
	if err := json.Unmarshal(responseBytes, &responseJson); err != nil {
		return nil, fmt.Errorf("failed to parse trending results: %w", err)
	}

	now := time.Now().UTC()
	out := make([]domain.TrendingCoin, 0, len(responseJson.Coins))
	for _, coin := range responseJson.Coins {
		out = append(out, domain.TrendingCoin{
			CoinID:        coin.Item.ID,
			Symbol:        coin.Item.Symbol,
			Name:          coin.Item.Name,
			MarketCapRank: coin.Item.MarketCapRank,
			PriceUsd:      coin.Item.Data.Price,
			Score:         coin.Item.Score,
			FetchedAt:     now,
		})
	}

	return out, nil
}
