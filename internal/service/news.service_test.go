package service

import (
	"coindash/internal/domain"
	mock_repository "coindash/internal/repository/mocks"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newsTestArticles(source string, count int) []domain.NewsArticle {
	articles := make([]domain.NewsArticle, count)
	for i := range articles {
		articles[i] = domain.NewsArticle{
			Title:       fmt.Sprintf("%s headline %d", source, i),
			Link:        fmt.Sprintf("https://%s.example.com/%d", source, i),
			Source:      source,
			PublishedAt: time.Date(2026, 8, 28, 12, i, 0, 0, time.UTC),
		}
	}
	return articles
}

func TestGetArticles(t *testing.T) {
	t.Run("merges feeds sorted newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		newsRepository.EXPECT().FetchFeed(gomock.Any(), "feed-a").Return(newsTestArticles("a", 2), nil)
		newsRepository.EXPECT().FetchFeed(gomock.Any(), "feed-b").Return(newsTestArticles("b", 3), nil)

		svc := &newsServiceHandler{
			NewsRepository: newsRepository,
			FeedUrls:       []string{"feed-a", "feed-b"},
			cache:          &newsCache{},
		}

		articles, err := svc.GetArticles(context.Background())
		require.NoError(t, err)
		require.Len(t, articles, 5)

		for i := 1; i < len(articles); i++ {
			require.False(t, articles[i].PublishedAt.After(articles[i-1].PublishedAt))
		}
	})

	t.Run("second call within ttl served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		newsRepository.EXPECT().FetchFeed(gomock.Any(), "feed-a").Return(newsTestArticles("a", 2), nil).Times(1)

		svc := &newsServiceHandler{
			NewsRepository: newsRepository,
			FeedUrls:       []string{"feed-a"},
			cache:          &newsCache{},
		}

		first, err := svc.GetArticles(context.Background())
		require.NoError(t, err)
		second, err := svc.GetArticles(context.Background())
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("one dead feed does not empty the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		newsRepository.EXPECT().FetchFeed(gomock.Any(), "feed-a").Return(nil, fmt.Errorf("dial tcp: timeout"))
		newsRepository.EXPECT().FetchFeed(gomock.Any(), "feed-b").Return(newsTestArticles("b", 2), nil)

		svc := &newsServiceHandler{
			NewsRepository: newsRepository,
			FeedUrls:       []string{"feed-a", "feed-b"},
			cache:          &newsCache{},
		}

		articles, err := svc.GetArticles(context.Background())
		require.NoError(t, err)
		require.Len(t, articles, 2)
	})

	t.Run("all feeds down re-serves stale cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		newsRepository.EXPECT().FetchFeed(gomock.Any(), "feed-a").Return(nil, fmt.Errorf("dial tcp: timeout"))

		stale := newsTestArticles("a", 2)
		svc := &newsServiceHandler{
			NewsRepository: newsRepository,
			FeedUrls:       []string{"feed-a"},
			cache: &newsCache{
				articles:  stale,
				fetchedAt: time.Now().Add(-time.Hour),
			},
		}

		articles, err := svc.GetArticles(context.Background())
		require.NoError(t, err)
		require.Equal(t, stale, articles)
	})

	t.Run("all feeds down with empty cache fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		newsRepository.EXPECT().FetchFeed(gomock.Any(), "feed-a").Return(nil, fmt.Errorf("dial tcp: timeout"))

		svc := &newsServiceHandler{
			NewsRepository: newsRepository,
			FeedUrls:       []string{"feed-a"},
			cache:          &newsCache{},
		}

		_, err := svc.GetArticles(context.Background())
		require.Error(t, err)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("summarizes the newest headlines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		newsRepository.EXPECT().FetchFeed(gomock.Any(), "feed-a").Return(newsTestArticles("a", 30), nil)
		gptRepository.EXPECT().SummarizeHeadlines(gomock.Any(), gomock.Len(20)).Return("markets were calm", nil)

		svc := &newsServiceHandler{
			NewsRepository: newsRepository,
			GptRepository:  gptRepository,
			FeedUrls:       []string{"feed-a"},
			cache:          &newsCache{},
		}

		summary, err := svc.Summarize(context.Background())
		require.NoError(t, err)
		require.Equal(t, "markets were calm", summary)
	})

	t.Run("unconfigured summarizer errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		svc := &newsServiceHandler{
			NewsRepository: newsRepository,
			FeedUrls:       []string{"feed-a"},
			cache:          &newsCache{},
		}

		_, err := svc.Summarize(context.Background())
		require.ErrorContains(t, err, "not configured")
	})
}
