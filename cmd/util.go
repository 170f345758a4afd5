package cmd

import (
	"coindash/api"
	"coindash/internal/calculator"
	"coindash/internal/logger"
	"coindash/internal/repository"
	"coindash/internal/service"
	"coindash/internal/util"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	handler.TrendingService.StopPolling()
	if err := handler.Db.Close(); err != nil {
		logger.Error(fmt.Errorf("failed to close db: %w", err))
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	marketDataRepository := repository.NewCoinGeckoRepository(secrets.CoinGeckoApiKey)
	watchlistRepository := repository.NewWatchlistRepository()
	trendingCoinRepository := repository.NewTrendingCoinRepository()
	newsRepository := repository.NewRssRepository()

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	}

	synthesizer := calculator.NewRandomWalkSynthesizer()

	analyticsService := service.NewAnalyticsService(marketDataRepository, synthesizer)
	watchlistService := service.NewWatchlistService(dbConn, watchlistRepository, marketDataRepository)
	trendingService := service.NewTrendingService(dbConn, trendingCoinRepository, marketDataRepository)
	newsService := service.NewNewsService(newsRepository, gptRepository)

	if err := trendingService.StartPolling(); err != nil {
		return nil, err
	}

	return &api.ApiHandler{
		Db:                   dbConn,
		JwtSecret:            secrets.JwtSecret,
		AnalyticsService:     analyticsService,
		WatchlistService:     watchlistService,
		TrendingService:      trendingService,
		NewsService:          newsService,
		MarketDataRepository: marketDataRepository,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
	}, nil
}
