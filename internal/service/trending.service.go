package service

import (
	"coindash/internal/db/models/postgres/public/model"
	"coindash/internal/domain"
	"coindash/internal/logger"
	"coindash/internal/repository"
	"coindash/internal/util"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// the poller refreshes well inside this horizon; rows older than it mean
// the poller has been down long enough to bypass the table
const trendingStaleAfter = 30 * time.Minute

const trendingCronSpec = "@every 10m"

type TrendingService interface {
	Get(ctx context.Context) ([]domain.TrendingCoin, error)
	Refresh(ctx context.Context) error
	StartPolling() error
	StopPolling()
}

type trendingServiceHandler struct {
	Db                     *sql.DB
	TrendingCoinRepository repository.TrendingCoinRepository
	MarketDataRepository   repository.MarketDataRepository
	cron                   *cron.Cron
}

func NewTrendingService(db *sql.DB, trendingCoinRepository repository.TrendingCoinRepository, marketDataRepository repository.MarketDataRepository) TrendingService {
	return &trendingServiceHandler{
		Db:                     db,
		TrendingCoinRepository: trendingCoinRepository,
		MarketDataRepository:   marketDataRepository,
		cron:                   cron.New(),
	}
}

func (h *trendingServiceHandler) StartPolling() error {
	_, err := h.cron.AddFunc(trendingCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := h.Refresh(ctx); err != nil {
			logger.Error(fmt.Errorf("trending refresh failed: %w", err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule trending poll: %w", err)
	}
	h.cron.Start()

	return nil
}

func (h *trendingServiceHandler) StopPolling() {
	h.cron.Stop()
}

// Refresh pulls the provider's current trending list and swaps it into
// the trending_coin table.
func (h *trendingServiceHandler) Refresh(ctx context.Context) error {
	coins, err := h.MarketDataRepository.Trending(ctx)
	if err != nil {
		return err
	}

	rows := make([]model.TrendingCoin, 0, len(coins))
	for _, coin := range coins {
		row := model.TrendingCoin{
			CoinID: coin.CoinID,
			Symbol: coin.Symbol,
			Name:   coin.Name,
			Score:  int32(coin.Score),
		}
		if coin.MarketCapRank != nil {
			row.MarketCapRank = util.Int32Pointer(int32(*coin.MarketCapRank))
		}
		if coin.PriceUsd != nil {
			row.PriceUsd = util.DecimalPointer(decimal.NewFromFloat(*coin.PriceUsd))
		}
		rows = append(rows, row)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := h.TrendingCoinRepository.Replace(tx, rows); err != nil {
		return err
	}

	return tx.Commit()
}

// Get serves the stored snapshot; when it's empty or stale it falls back
// to a live fetch so the endpoint keeps working while the poller warms
// up.
func (h *trendingServiceHandler) Get(ctx context.Context) ([]domain.TrendingCoin, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := h.TrendingCoinRepository.List(tx)
	if err != nil {
		return nil, err
	}

	if len(rows) > 0 && time.Since(rows[0].FetchedAt) < trendingStaleAfter {
		out := make([]domain.TrendingCoin, 0, len(rows))
		for _, row := range rows {
			coin := domain.TrendingCoin{
				CoinID:    row.CoinID,
				Symbol:    row.Symbol,
				Name:      row.Name,
				Score:     int(row.Score),
				FetchedAt: row.FetchedAt,
			}
			if row.MarketCapRank != nil {
				coin.MarketCapRank = util.IntPointer(int(*row.MarketCapRank))
			}
			if row.PriceUsd != nil {
				coin.PriceUsd = util.FloatPointer(row.PriceUsd.InexactFloat64())
			}
			out = append(out, coin)
		}
		return out, nil
	}

	return h.MarketDataRepository.Trending(ctx)
}
