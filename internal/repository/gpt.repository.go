package repository

import (
	"coindash/internal/domain"
	"context"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	SummarizeHeadlines(ctx context.Context, articles []domain.NewsArticle) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const summaryPrompt = `
You are summarizing cryptocurrency news headlines for a market dashboard. The user will send a list of headlines with their sources. Respond with a 3-4 sentence plain-text market summary of the main themes. Do not editorialize, do not give investment advice, and do not mention that you are summarizing headlines.
`

func (h gptRepositoryHandler) SummarizeHeadlines(ctx context.Context, articles []domain.NewsArticle) (string, error) {
	if len(articles) == 0 {
		return "", fmt.Errorf("no headlines to summarize")
	}

	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, fmt.Sprintf("- %s (%s)", a.Title, a.Source))
	}

	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: summaryPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: strings.Join(lines, "\n"),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to summarize headlines: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
