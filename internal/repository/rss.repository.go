package repository

import (
	"coindash/internal/domain"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"
)

type NewsRepository interface {
	FetchFeed(ctx context.Context, feedUrl string) ([]domain.NewsArticle, error)
}

type rssRepositoryHandler struct {
	HttpClient *http.Client
}

func NewRssRepository() NewsRepository {
	return rssRepositoryHandler{
		HttpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type rssDocument struct {
	Channel struct {
		Title string    `xml:"title"`
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// pubDate formats seen across the crypto news feeds we pull from
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

func (h rssRepositoryHandler) FetchFeed(ctx context.Context, feedUrl string) ([]domain.NewsArticle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "coindash/1.0")

	response, err := h.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", feedUrl, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("feed %s failed with status code %d", feedUrl, response.StatusCode)
	}

	doc := rssDocument{}
	if err := xml.Unmarshal(responseBytes, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", feedUrl, err)
	}

	articles := make([]domain.NewsArticle, 0, len(doc.Channel.Items))
	for _, item := range doc.Channel.Items {
		articles = append(articles, domain.NewsArticle{
			Title:       item.Title,
			Link:        item.Link,
			Source:      doc.Channel.Title,
			Description: item.Description,
			PublishedAt: parsePubDate(item.PubDate),
		})
	}

	return articles, nil
}

func parsePubDate(raw string) time.Time {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	// unparseable dates sort last rather than failing the whole feed
	return time.Time{}
}
