// Package fortune draws festive fortunes: a lucky character, a four-line poem
// and a templated financial insight for a requester, company and wish.
package fortune

import (
	"context"
	"time"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/interfaces"
)

// Generator produces fortunes. It tries the completion client once and falls
// back to canned templates on any failure, so Generate always returns a
// usable Result.
type Generator struct {
	client  interfaces.CompletionClient
	picker  Picker
	logger  *common.Logger
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithPicker overrides the random source used for all selections.
func WithPicker(p Picker) Option {
	return func(g *Generator) {
		if p != nil {
			g.picker = p
		}
	}
}

// WithTimeout bounds the backend call. Zero means no extra deadline.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// NewGenerator creates a Generator. A nil client selects the template-only
// mode.
func NewGenerator(client interfaces.CompletionClient, logger *common.Logger, opts ...Option) *Generator {
	g := &Generator{
		client: client,
		picker: UniformPicker(),
		logger: logger.OrSilent(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AIEnabled reports whether a completion client is configured.
func (g *Generator) AIEnabled() bool {
	return g.client != nil
}

// Generate draws a fortune for req.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	req = req.Normalized()
	scenario := ResolveScenario(req.WishID)
	highlights := LookupHighlights(req.Company)
	logger := common.LoggerFor(ctx, g.logger)

	if g.client == nil {
		return g.fromTemplates(scenario, req, highlights)
	}

	reply, err := g.ask(ctx, BuildPrompt(req, scenario, highlights))
	if err != nil {
		logger.Warn().
			Str("backend", g.client.Name()).
			Str("scenario", scenario.ID).
			Err(err).
			Msg("fortune backend failed, using templates")
		return g.fromTemplates(scenario, req, highlights)
	}

	result, repaired := repair(reply, scenario, req, highlights, g.picker)
	if len(repaired) > 0 {
		logger.Debug().
			Str("backend", g.client.Name()).
			Strs("fields", repaired).
			Msg("repaired fortune backend reply")
	}
	return result
}

func (g *Generator) ask(ctx context.Context, prompt string) (Reply, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	content, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return Reply{}, err
	}
	return ParseReply(content)
}

func (g *Generator) fromTemplates(s Scenario, req Request, highlights []string) Result {
	return Result{
		BigCharacter:     pick(g.picker, s.AllowedCharacters),
		LuckyPoem:        pick(g.picker, s.PoemTemplates),
		FinancialInsight: RenderInsight(s, req, highlights),
		Scenario:         s.ID,
		Header:           s.Header,
		Source:           SourceTemplate,
	}
}
