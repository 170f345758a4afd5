package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) news(c *gin.Context) {
	articles, err := m.NewsService.GetArticles(c.Request.Context())
	if err != nil {
		returnErrorJsonCode(err, c, 502)
		return
	}

	c.JSON(200, gin.H{
		"articles": articles,
	})
}

func (m ApiHandler) summarizeNews(c *gin.Context) {
	summary, err := m.NewsService.Summarize(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"summary": summary,
	})
}
