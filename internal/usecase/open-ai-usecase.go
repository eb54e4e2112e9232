package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/iamvkosarev/replyme/config"
	"github.com/iamvkosarev/replyme/internal/logger"
	"github.com/iamvkosarev/replyme/internal/model"
	"github.com/sashabaranov/go-openai"
)

const (
	OpenAIRoleUser = "user"

	defaultRequestTimeout        = 20 * time.Second
	defaultMaxTokens             = 1000
	defaultStandardTemperature   = 0.85
	defaultUnfilteredTemperature = 1.0
)

// OpenAIUsecase sends a single chat completion per call to an
// OpenAI-compatible endpoint. It never retries.
type OpenAIUsecase struct {
	cfg    config.Generation
	client *openai.Client
}

func NewOpenAIUsecase(cfg config.Generation) *OpenAIUsecase {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.StandardTemperature <= 0 {
		cfg.StandardTemperature = defaultStandardTemperature
	}
	if cfg.UnfilteredTemperature <= 0 {
		cfg.UnfilteredTemperature = defaultUnfilteredTemperature
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout}

	return &OpenAIUsecase{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (o *OpenAIUsecase) Temperature(mode model.Mode) float32 {
	if mode == model.ModeUnfiltered {
		return o.cfg.UnfilteredTemperature
	}
	return o.cfg.StandardTemperature
}

// CallModel returns the raw message content. Failures are *model.TransportError
// or model.ErrEmptyResponse.
func (o *OpenAIUsecase) CallModel(ctx context.Context, prompt string, mode model.Mode) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: o.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    OpenAIRoleUser,
				Content: prompt,
			},
		},
		Temperature: o.Temperature(mode),
		MaxTokens:   o.cfg.MaxTokens,
	}

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", toTransportError(err)
	}

	logger.Debug("Generation request completed", logger.Fields{
		"model":             o.cfg.Model,
		"mode":              mode,
		"duration_ms":       time.Since(start).Milliseconds(),
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	})

	if len(resp.Choices) == 0 {
		return "", model.ErrEmptyResponse
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", model.ErrEmptyResponse
	}
	return content, nil
}

func toTransportError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &model.TransportError{StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &model.TransportError{StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return &model.TransportError{Err: err}
}
