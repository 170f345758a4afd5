package domain

// RiskMetrics are annualized except MaxDrawdown, which is a ratio in [0, 1].
type RiskMetrics struct {
	ExpectedReturn float64 `json:"expectedReturn"`
	Volatility     float64 `json:"volatility"`
	MaxDrawdown    float64 `json:"maxDrawdown"`
	SharpeRatio    float64 `json:"sharpeRatio"`
}

// CumulativePoint is one day of the rebased performance comparison. All
// three indices start at 100.0 on day 0.
type CumulativePoint struct {
	Date      string  `json:"date"`
	Portfolio float64 `json:"portfolio"`
	Btc       float64 `json:"btc"`
	Eth       float64 `json:"eth"`
}

// Contribution is one asset's share of total portfolio risk and return.
// Across a portfolio each contribution column sums to 1.
type Contribution struct {
	AssetID            string  `json:"assetId"`
	RiskContribution   float64 `json:"riskContribution"`
	ReturnContribution float64 `json:"returnContribution"`
}

// PortfolioAnalytics is the full result of one analysis call. It is built
// fresh per call and has no persisted identity.
type PortfolioAnalytics struct {
	Metrics           RiskMetrics       `json:"metrics"`
	HistoricalReturns ReturnSeries      `json:"historicalReturns"`
	CumulativeReturns []CumulativePoint `json:"cumulativeReturns"`
	Contributions     []Contribution    `json:"contributions"`
}
