// Package mcp exposes the fortune generator as MCP tools over streamable HTTP.
package mcp

import (
	"net/http"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/config"
	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// ServerName is the MCP implementation name announced on initialize.
const ServerName = "jinyao-fortune"

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
	tools      []string
}

// NewHandler creates a new MCP handler serving the fortune tools.
func NewHandler(generator *fortune.Generator, logger *common.Logger) *Handler {
	logger = logger.OrSilent()

	mcpSrv := mcpserver.NewMCPServer(
		ServerName,
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	tools := RegisterTools(mcpSrv, generator, logger)

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().
		Int("tools", len(tools)).
		Strs("names", tools).
		Msg("MCP handler initialized")

	return &Handler{
		streamable: streamable,
		logger:     logger,
		tools:      tools,
	}
}

// Tools returns the names of the registered tools.
func (h *Handler) Tools() []string {
	out := make([]string, len(h.tools))
	copy(out, h.tools)
	return out
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
