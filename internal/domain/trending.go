package domain

import "time"

type TrendingCoin struct {
	CoinID        string    `json:"coinId"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	MarketCapRank *int      `json:"marketCapRank"`
	PriceUsd      *float64  `json:"priceUsd"`
	Score         int       `json:"score"`
	FetchedAt     time.Time `json:"fetchedAt"`
}
