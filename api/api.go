package api

import (
	"bytes"
	"coindash/internal/calculator"
	"coindash/internal/db/models/postgres/public/model"
	"coindash/internal/logger"
	"coindash/internal/repository"
	"coindash/internal/service"
	"coindash/internal/util"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                   *sql.DB
	JwtSecret            string
	AnalyticsService     service.AnalyticsService
	WatchlistService     service.WatchlistService
	TrendingService      service.TrendingService
	NewsService          service.NewsService
	MarketDataRepository repository.MarketDataRepository
	ApiRequestRepository repository.ApiRequestRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to coindash"})
	})
	router.POST("/analyzePortfolio", m.analyzePortfolio)
	router.GET("/search", m.searchCoins)
	router.GET("/trending", m.trending)
	router.GET("/news", m.news)
	router.POST("/summarizeNews", m.summarizeNews)

	authed := router.Group("/", m.authMiddleware)
	authed.GET("/watchlist", m.getWatchlist)
	authed.POST("/watchlist", m.addWatchlistItem)
	authed.DELETE("/watchlist/:id", m.removeWatchlistItem)
	authed.GET("/watchlist/export", m.exportWatchlist)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnAnalyticsError maps the engine's error taxonomy onto status
// codes: a bad portfolio is the client's fault, a failed price lookup is
// the upstream feed's, anything else is ours.
func returnAnalyticsError(err error, c *gin.Context) {
	switch {
	case errors.Is(err, calculator.ErrInvalidPortfolio):
		returnErrorJsonCode(err, c, 400)
	case errors.Is(err, calculator.ErrPriceResolution):
		returnErrorJsonCode(err, c, 502)
	default:
		returnErrorJson(err, c)
	}
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		logger.Error(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	var userID *uuid.UUID
	if id, ok := userIDFromToken(ctx, m.JwtSecret); ok {
		userID = &id
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		UserID:      userID,
		IPAddress:   util.StrPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StrPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		logger.Error(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StrPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			logger.Error(err)
		}
	}
}
