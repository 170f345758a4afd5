package api

import (
	"coindash/internal/db/models/postgres/public/model"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

type watchlistItemResponse struct {
	ID        uuid.UUID `json:"id"`
	CoinID    string    `json:"coinId"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	LastPrice *float64  `json:"lastPrice"`
	CreatedAt time.Time `json:"createdAt"`
}

func toWatchlistItemResponse(item model.WatchlistItem) watchlistItemResponse {
	out := watchlistItemResponse{
		ID:        item.WatchlistItemID,
		CoinID:    item.CoinID,
		Symbol:    item.Symbol,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}
	if item.LastPrice != nil {
		price := item.LastPrice.InexactFloat64()
		out.LastPrice = &price
	}
	return out
}

func (m ApiHandler) getWatchlist(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	items, err := m.WatchlistService.List(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]watchlistItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toWatchlistItemResponse(item))
	}

	c.JSON(200, gin.H{
		"items": out,
	})
}

type addWatchlistItemRequest struct {
	CoinID string `json:"coinId"`
}

func (m ApiHandler) addWatchlistItem(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var requestBody addWatchlistItemRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.CoinID == "" {
		returnErrorJsonCode(fmt.Errorf("coinId is required"), c, 400)
		return
	}

	item, err := m.WatchlistService.Add(c.Request.Context(), userID, requestBody.CoinID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, toWatchlistItemResponse(*item))
}

func (m ApiHandler) removeWatchlistItem(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid watchlist item id: %w", err), c, 400)
		return
	}

	if err := m.WatchlistService.Remove(c.Request.Context(), userID, itemID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

type watchlistCsvRow struct {
	CoinID    string  `csv:"coin_id"`
	Symbol    string  `csv:"symbol"`
	Name      string  `csv:"name"`
	LastPrice float64 `csv:"last_price"`
	CreatedAt string  `csv:"created_at"`
}

func (m ApiHandler) exportWatchlist(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	items, err := m.WatchlistService.List(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	rows := make([]watchlistCsvRow, 0, len(items))
	for _, item := range items {
		row := watchlistCsvRow{
			CoinID:    item.CoinID,
			Symbol:    item.Symbol,
			Name:      item.Name,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
		}
		if item.LastPrice != nil {
			row.LastPrice = item.LastPrice.InexactFloat64()
		}
		rows = append(rows, row)
	}

	csvContent, err := gocsv.MarshalString(&rows)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to marshal watchlist csv: %w", err), c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=watchlist.csv")
	c.Data(200, "text/csv", []byte(csvContent))
}
