package interfaces

import "context"

// CompletionClient sends one instruction to a generative-text service and
// returns the raw reply content. Implementations request a JSON-object reply.
type CompletionClient interface {
	// Complete returns the reply content, or an error for transport failures,
	// non-2xx responses and empty content.
	Complete(ctx context.Context, instruction string) (string, error)

	// Name identifies the provider and model, for logs.
	Name() string
}
