package oracle

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient calls an OpenAI-compatible chat completion endpoint and asks
// for a JSON-object reply.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *common.Logger
}

// NewOpenAIClient creates a client from the generator config. BaseURL, when
// set, replaces the public OpenAI endpoint (proxies, compatible vendors).
func NewOpenAIClient(cfg *config.GeneratorConfig, logger *common.Logger) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.GetTimeout() + 5*time.Second}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.ModelOrDefault(),
		temperature: float32(cfg.Temperature),
		logger:      logger.OrSilent(),
	}
}

// Name identifies the provider and model.
func (c *OpenAIClient) Name() string {
	return config.ProviderOpenAI + "/" + c.model
}

// Complete sends the instruction as a single system message.
func (c *OpenAIClient) Complete(ctx context.Context, instruction string) (string, error) {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})

	logger := common.LoggerFor(ctx, c.logger)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	logger.Debug().
		Str("model", c.model).
		Int("total_tokens", resp.Usage.TotalTokens).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("openai chat completion")

	if len(resp.Choices) == 0 {
		return "", ErrEmptyContent
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}
