package quizgen

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIQuizGenerator implements domain.QuizGenerator against an
// OpenAI-compatible chat-completion gateway.
type OpenAIQuizGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIQuizGenerator(cfg config.AIConfig) (*OpenAIQuizGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("generation API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("generation model name is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIQuizGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

// Generate implements domain.QuizGenerator. It returns the first completion
// choice verbatim; parsing and validation belong to the caller.
func (g *OpenAIQuizGenerator) Generate(ctx context.Context, title string, article string) (string, error) {
	logger.Get().Info("Calling generation gateway",
		zap.String("model", g.model),
		zap.String("title", title),
		zap.Int("article_length", len(article)),
	)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(title, article)},
		},
	})
	if err != nil {
		return "", mapGatewayError(err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.NewGenerationUnavailableError("model returned no completion choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// mapGatewayError classifies upstream failures by HTTP status: 429 signals
// the caller should try again later, 402 signals the operator must replenish
// credits, anything else is a generic generation outage carrying the status
// and body for diagnostics.
func mapGatewayError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return domain.NewRateLimitedError()
		case http.StatusPaymentRequired:
			return domain.NewQuotaExhaustedError()
		}
		return domain.NewGenerationUnavailableError(
			fmt.Sprintf("generation gateway returned status %d", apiErr.HTTPStatusCode), err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return domain.NewRateLimitedError()
		case http.StatusPaymentRequired:
			return domain.NewQuotaExhaustedError()
		}
		return domain.NewGenerationUnavailableError(
			fmt.Sprintf("generation gateway returned status %d", reqErr.HTTPStatusCode), err)
	}

	return domain.NewGenerationUnavailableError("generation gateway unreachable", err)
}

var _ domain.QuizGenerator = (*OpenAIQuizGenerator)(nil)
