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

type TrendingCoinRepository interface {
	Replace(tx *sql.Tx, coins []model.TrendingCoin) error
	List(tx *sql.Tx) ([]model.TrendingCoin, error)
}

func NewTrendingCoinRepository() TrendingCoinRepository {
	return TrendingCoinRepositoryHandler{}
}

type TrendingCoinRepositoryHandler struct{}

// Replace swaps the whole trending set in one tx - the table is a small
// snapshot of the provider's current list, not an append log.
func (h TrendingCoinRepositoryHandler) Replace(tx *sql.Tx, coins []model.TrendingCoin) error {
	if _, err := TrendingCoin.DELETE().WHERE(postgres.Bool(true)).Exec(tx); err != nil {
		return fmt.Errorf("failed to clear trending coins: %w", err)
	}

	if len(coins) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range coins {
		coins[i].TrendingCoinID = uuid.New()
		coins[i].FetchedAt = now
	}

	query := TrendingCoin.
		INSERT(TrendingCoin.MutableColumns).
		MODELS(coins)

	if _, err := query.Exec(tx); err != nil {
		return fmt.Errorf("failed to insert trending coins: %w", err)
	}

	return nil
}

func (h TrendingCoinRepositoryHandler) List(tx *sql.Tx) ([]model.TrendingCoin, error) {
	query := TrendingCoin.
		SELECT(TrendingCoin.AllColumns).
		ORDER_BY(TrendingCoin.Score.ASC())

	out := []model.TrendingCoin{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list trending coins: %w", err)
	}

	return out, nil
}
