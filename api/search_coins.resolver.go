package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) searchCoins(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		returnErrorJsonCode(fmt.Errorf("query param is required"), c, 400)
		return
	}

	results, err := m.MarketDataRepository.Search(c.Request.Context(), query)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"coins": results,
	})
}
