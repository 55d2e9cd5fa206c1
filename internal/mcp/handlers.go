package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const defaultSearchLimit = 5

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult marshals v into a single text content block.
func jsonResult(v interface{}) *mcp.CallToolResult {
	out, err := json.Marshal(v)
	if err != nil {
		return errorResult("failed to marshal result")
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(out))},
	}
}

// DrawFortuneHandler draws a fortune with the generator.
func DrawFortuneHandler(generator *fortune.Generator, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := r.GetString("name", "")
		if strings.TrimSpace(name) == "" {
			return errorResult("name is required"), nil
		}

		result := generator.Generate(ctx, fortune.Request{
			Name:    name,
			Company: r.GetString("company", ""),
			WishID:  r.GetString("wish_id", ""),
		})

		common.LoggerFor(ctx, logger).Debug().
			Str("tool", "draw_fortune").
			Str("scenario", result.Scenario).
			Str("source", string(result.Source)).
			Msg("fortune drawn")

		return jsonResult(result), nil
	}
}

// ListScenariosHandler returns the scenario catalogue.
func ListScenariosHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(fortune.Scenarios()), nil
	}
}

// SearchCompaniesHandler returns company suggestions for a query.
func SearchCompaniesHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := r.GetString("query", "")
		if strings.TrimSpace(query) == "" {
			return errorResult("query is required"), nil
		}

		limit := r.GetInt("limit", defaultSearchLimit)
		if limit <= 0 {
			limit = defaultSearchLimit
		}

		matches := fortune.Suggest(query, limit)
		if matches == nil {
			matches = []fortune.Company{}
		}
		return jsonResult(matches), nil
	}
}
