package service

import (
	"coindash/internal/db/models/postgres/public/model"
	"coindash/internal/repository"
	"coindash/internal/util"
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WatchlistService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.WatchlistItem, error)
	Add(ctx context.Context, userID uuid.UUID, coinID string) (*model.WatchlistItem, error)
	Remove(ctx context.Context, userID, watchlistItemID uuid.UUID) error
}

type watchlistServiceHandler struct {
	Db                   *sql.DB
	WatchlistRepository  repository.WatchlistRepository
	MarketDataRepository repository.MarketDataRepository
}

func NewWatchlistService(db *sql.DB, watchlistRepository repository.WatchlistRepository, marketDataRepository repository.MarketDataRepository) WatchlistService {
	return watchlistServiceHandler{
		Db:                   db,
		WatchlistRepository:  watchlistRepository,
		MarketDataRepository: marketDataRepository,
	}
}

// List returns the user's rows with last_price refreshed from the live
// feed where the lookup succeeds; a provider hiccup degrades to the
// stored price rather than failing the page.
func (h watchlistServiceHandler) List(ctx context.Context, userID uuid.UUID) ([]model.WatchlistItem, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	items, err := h.WatchlistRepository.List(tx, userID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		asset, err := h.MarketDataRepository.ResolvePrice(ctx, items[i].CoinID)
		if err != nil {
			continue
		}
		items[i].LastPrice = util.DecimalPointer(decimal.NewFromFloat(asset.CurrentPrice))
		if err := h.WatchlistRepository.UpdateLastPrice(tx, items[i]); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit watchlist price refresh: %w", err)
	}

	return items, nil
}

func (h watchlistServiceHandler) Add(ctx context.Context, userID uuid.UUID, coinID string) (*model.WatchlistItem, error) {
	// resolving the coin both validates the id and gives us symbol/price
	asset, err := h.MarketDataRepository.ResolvePrice(ctx, coinID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve coin %s: %w", coinID, err)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	item, err := h.WatchlistRepository.Add(tx, model.WatchlistItem{
		UserID:    userID,
		CoinID:    asset.ID,
		Symbol:    asset.Symbol,
		Name:      asset.ID,
		LastPrice: util.DecimalPointer(decimal.NewFromFloat(asset.CurrentPrice)),
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit watchlist add: %w", err)
	}

	return item, nil
}

func (h watchlistServiceHandler) Remove(ctx context.Context, userID, watchlistItemID uuid.UUID) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := h.WatchlistRepository.Remove(tx, userID, watchlistItemID); err != nil {
		return err
	}

	return tx.Commit()
}
