// Package oracle holds the generative-text backends used to draw fortunes.
package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/config"
	"github.com/bobmcallan/jinyao-fortune/internal/interfaces"
)

// New builds the completion client selected by cfg. It returns
// ErrNotConfigured when no credential is set.
func New(ctx context.Context, cfg *config.GeneratorConfig, logger *common.Logger) (interfaces.CompletionClient, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	switch strings.ToLower(cfg.Provider) {
	case config.ProviderOpenAI, "":
		return NewOpenAIClient(cfg, logger), nil
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
