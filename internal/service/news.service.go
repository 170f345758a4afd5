package service

import (
	"coindash/internal/domain"
	"coindash/internal/logger"
	"coindash/internal/repository"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// articles are re-fetched once the cache ages past this; until then
// every request is served from memory. Serving slightly stale headlines
// beats hammering the feeds.
const newsCacheTtl = 10 * time.Minute

var defaultFeedUrls = []string{
	"https://www.coindesk.com/arc/outboundfeeds/rss/",
	"https://cointelegraph.com/rss",
	"https://decrypt.co/feed",
}

type NewsService interface {
	GetArticles(ctx context.Context) ([]domain.NewsArticle, error)
	Summarize(ctx context.Context) (string, error)
}

// newsCache is the process-level fallback state for the aggregator,
// kept as an explicit struct with its refresh policy in one place: a
// fetch that fails re-serves the previous articles until one succeeds.
type newsCache struct {
	mu        sync.RWMutex
	articles  []domain.NewsArticle
	fetchedAt time.Time
}

func (c *newsCache) get() ([]domain.NewsArticle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.articles == nil {
		return nil, false
	}
	return c.articles, time.Since(c.fetchedAt) < newsCacheTtl
}

func (c *newsCache) set(articles []domain.NewsArticle) {
	c.mu.Lock()
	c.articles = articles
	c.fetchedAt = time.Now()
	c.mu.Unlock()
}

type newsServiceHandler struct {
	NewsRepository repository.NewsRepository
	GptRepository  repository.GptRepository
	FeedUrls       []string
	cache          *newsCache
}

// NewNewsService aggregates the default feeds. gptRepository may be nil
// when no api key is configured; Summarize then reports the feature as
// unavailable.
func NewNewsService(newsRepository repository.NewsRepository, gptRepository repository.GptRepository) NewsService {
	return &newsServiceHandler{
		NewsRepository: newsRepository,
		GptRepository:  gptRepository,
		FeedUrls:       defaultFeedUrls,
		cache:          &newsCache{},
	}
}

func (h *newsServiceHandler) GetArticles(ctx context.Context) ([]domain.NewsArticle, error) {
	if cached, fresh := h.cache.get(); fresh {
		return cached, nil
	}

	merged := []domain.NewsArticle{}
	for _, feedUrl := range h.FeedUrls {
		articles, err := h.NewsRepository.FetchFeed(ctx, feedUrl)
		if err != nil {
			// one dead feed shouldn't empty the page
			logger.Warn("failed to fetch feed %s: %v", feedUrl, err)
			continue
		}
		merged = append(merged, articles...)
	}

	if len(merged) == 0 {
		// all feeds down: re-serve whatever we had, however old
		if cached, _ := h.cache.get(); cached != nil {
			return cached, nil
		}
		return nil, fmt.Errorf("all news feeds failed")
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	h.cache.set(merged)

	return merged, nil
}

func (h *newsServiceHandler) Summarize(ctx context.Context) (string, error) {
	if h.GptRepository == nil {
		return "", fmt.Errorf("news summarization is not configured")
	}

	articles, err := h.GetArticles(ctx)
	if err != nil {
		return "", err
	}

	limit := 20
	if len(articles) < limit {
		limit = len(articles)
	}

	return h.GptRepository.SummarizeHeadlines(ctx, articles[:limit])
}
