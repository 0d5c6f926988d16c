// Package openrouter implements ports.InsightEngine against OpenRouter's
// OpenAI-compatible chat completion endpoint.
package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/lakshcode9/tweetsight/internal/domain"
	"github.com/lakshcode9/tweetsight/internal/insights"
	"github.com/lakshcode9/tweetsight/internal/ports"
)

// DefaultBaseURL is the OpenRouter OpenAI-compatible API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// DefaultModel is used when no model is configured.
const DefaultModel = "deepseek/deepseek-r1-distill-qwen-7b"

const (
	maxTokens   = 300
	temperature = 0.7
)

// Engine generates insight sets from posts. It classifies failures into the
// domain taxonomy and never retries; the retry loop lives one layer up.
type Engine struct {
	client *openai.Client
	model  string
	logger ports.Logger
}

type options struct {
	baseURL string
}

// Option configures an Engine.
type Option func(*options)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// New creates an OpenRouter insight engine for the given model. An empty
// model selects DefaultModel.
func New(apiKey, model string, httpClient *http.Client, logger ports.Logger, opts ...Option) *Engine {
	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}
	if model == "" {
		model = DefaultModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimSuffix(o.baseURL, "/")
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &Engine{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

// Generate implements ports.InsightEngine.
func (e *Engine) Generate(ctx context.Context, posts []domain.Post) (domain.InsightSet, error) {
	if len(posts) == 0 {
		return domain.InsightSet{}, fmt.Errorf("no content: %w", domain.ErrGeneration)
	}

	prompt := insights.BuildPrompt(posts)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return domain.InsightSet{}, classify(err)
	}

	if len(resp.Choices) == 0 {
		return domain.InsightSet{}, fmt.Errorf("response has no choices: %w", domain.ErrParse)
	}
	content := resp.Choices[0].Message.Content

	e.logger.Debug("generation completed",
		ports.String("model", e.model),
		ports.Int("response_chars", len(content)),
	)

	return insights.Parse(content)
}

// classify maps a go-openai error to the domain taxonomy. Rate limits and
// server-side failures are transient generation failures; credential
// rejections and malformed requests are terminal.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusUnauthorized,
			apiErr.HTTPStatusCode == http.StatusForbidden:
			return fmt.Errorf("status %d: %w", apiErr.HTTPStatusCode, domain.ErrUnauthorized)
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests,
			apiErr.HTTPStatusCode/100 == 5:
			return fmt.Errorf("status %d: %w", apiErr.HTTPStatusCode, domain.ErrGeneration)
		default:
			return fmt.Errorf("generation rejected (status %d): %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusUnauthorized || reqErr.HTTPStatusCode == http.StatusForbidden {
			return fmt.Errorf("status %d: %w", reqErr.HTTPStatusCode, domain.ErrUnauthorized)
		}
		return fmt.Errorf("status %d: %w", reqErr.HTTPStatusCode, domain.ErrGeneration)
	}

	// Transport-level failure (timeout, DNS, connection reset).
	return fmt.Errorf("%w: %v", domain.ErrGeneration, err)
}
