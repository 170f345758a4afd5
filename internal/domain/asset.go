package domain

// Asset is a single resolvable coin: identity is the provider's coin id
// (e.g. "bitcoin"), not the ticker symbol. Immutable for the duration of
// one analysis call.
type Asset struct {
	ID           string
	Symbol       string
	CurrentPrice float64
}

// Allocation assigns a fraction of portfolio value to one asset. Weights
// across a portfolio are expected to sum to 1.
type Allocation struct {
	AssetID string  `json:"assetId"`
	Weight  float64 `json:"weight"`
}

type CoinSummary struct {
	ID            string  `json:"id"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	MarketCapRank *int    `json:"marketCapRank"`
	Thumb         *string `json:"thumb"`
}
