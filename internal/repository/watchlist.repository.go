package repository

import (
	"coindash/internal/db/models/postgres/public/model"
	. "coindash/internal/db/models/postgres/public/table"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type WatchlistRepository interface {
	Add(tx *sql.Tx, item model.WatchlistItem) (*model.WatchlistItem, error)
	List(tx *sql.Tx, userID uuid.UUID) ([]model.WatchlistItem, error)
	Remove(tx *sql.Tx, userID, watchlistItemID uuid.UUID) error
	UpdateLastPrice(tx *sql.Tx, item model.WatchlistItem) error
}

func NewWatchlistRepository() WatchlistRepository {
	return WatchlistRepositoryHandler{}
}

type WatchlistRepositoryHandler struct{}

func (h WatchlistRepositoryHandler) Add(tx *sql.Tx, item model.WatchlistItem) (*model.WatchlistItem, error) {
	item.WatchlistItemID = uuid.New()
	item.CreatedAt = time.Now().UTC()

	query := WatchlistItem.
		INSERT(WatchlistItem.MutableColumns).
		MODEL(item).
		ON_CONFLICT(WatchlistItem.UserID, WatchlistItem.CoinID).
		DO_NOTHING().
		RETURNING(WatchlistItem.AllColumns)

	out := &model.WatchlistItem{}
	err := query.Query(tx, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert watchlist item %s: %w", item.CoinID, err)
	}

	return out, nil
}

func (h WatchlistRepositoryHandler) List(tx *sql.Tx, userID uuid.UUID) ([]model.WatchlistItem, error) {
	query := WatchlistItem.
		SELECT(WatchlistItem.AllColumns).
		WHERE(WatchlistItem.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(WatchlistItem.CreatedAt.ASC())

	out := []model.WatchlistItem{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist items: %w", err)
	}

	return out, nil
}

func (h WatchlistRepositoryHandler) Remove(tx *sql.Tx, userID, watchlistItemID uuid.UUID) error {
	query := WatchlistItem.
		DELETE().
		WHERE(
			postgres.AND(
				WatchlistItem.WatchlistItemID.EQ(postgres.UUID(watchlistItemID)),
				WatchlistItem.UserID.EQ(postgres.UUID(userID)),
			),
		)

	result, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist item: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("watchlist item %s not found", watchlistItemID)
	}

	return nil
}

func (h WatchlistRepositoryHandler) UpdateLastPrice(tx *sql.Tx, item model.WatchlistItem) error {
	query := WatchlistItem.
		UPDATE(WatchlistItem.LastPrice).
		MODEL(item).
		WHERE(WatchlistItem.WatchlistItemID.EQ(postgres.UUID(item.WatchlistItemID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update watchlist item price: %w", err)
	}

	return nil
}
