package api

import (
	"coindash/internal/domain"

	"github.com/gin-gonic/gin"
)

type analyzePortfolioRequest struct {
	Portfolio  []domain.Allocation `json:"portfolio"`
	WindowDays int                 `json:"windowDays"`
}

type analyzePortfolioResponse struct {
	ExpectedReturn    float64                  `json:"expectedReturn"`
	Volatility        float64                  `json:"volatility"`
	MaxDrawdown       float64                  `json:"maxDrawdown"`
	SharpeRatio       float64                  `json:"sharpeRatio"`
	HistoricalReturns []float64                `json:"historicalReturns"`
	CumulativeReturns []domain.CumulativePoint `json:"cumulativeReturns"`
	Contributions     []domain.Contribution    `json:"contributions"`
}

func (m ApiHandler) analyzePortfolio(c *gin.Context) {
	var requestBody analyzePortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	analytics, err := m.AnalyticsService.Analyze(c.Request.Context(), requestBody.Portfolio, requestBody.WindowDays)
	if err != nil {
		returnAnalyticsError(err, c)
		return
	}

	c.JSON(200, analyzePortfolioResponse{
		ExpectedReturn:    analytics.Metrics.ExpectedReturn,
		Volatility:        analytics.Metrics.Volatility,
		MaxDrawdown:       analytics.Metrics.MaxDrawdown,
		SharpeRatio:       analytics.Metrics.SharpeRatio,
		HistoricalReturns: analytics.HistoricalReturns,
		CumulativeReturns: analytics.CumulativeReturns,
		Contributions:     analytics.Contributions,
	})
}
