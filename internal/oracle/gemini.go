package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/config"
	"google.golang.org/genai"
)

// GeminiClient calls the Gemini API with a JSON response MIME type.
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *common.Logger
}

// NewGeminiClient creates a Gemini client from the generator config.
func NewGeminiClient(ctx context.Context, cfg *config.GeneratorConfig, logger *common.Logger) (*GeminiClient, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       cfg.ModelOrDefault(),
		temperature: float32(cfg.Temperature),
		logger:      logger.OrSilent(),
	}, nil
}

// Name identifies the provider and model.
func (c *GeminiClient) Name() string {
	return config.ProviderGemini + "/" + c.model
}

// Complete sends the instruction as a single user turn.
func (c *GeminiClient) Complete(ctx context.Context, instruction string) (string, error) {
	start := time.Now()

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(instruction),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr(c.temperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	common.LoggerFor(ctx, c.logger).Debug().
		Str("model", c.model).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("gemini generate content")

	content := resp.Text()
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}
