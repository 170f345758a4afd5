package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) trending(c *gin.Context) {
	coins, err := m.TrendingService.Get(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"coins": coins,
	})
}
