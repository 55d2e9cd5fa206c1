package mcp

import (
	"context"

	"github.com/bobmcallan/jinyao-fortune/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// VersionTool returns the mcp.Tool definition for get_version.
func VersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the fortune server version. Use this to verify connectivity."),
	)
}

// VersionToolHandler returns the build information of this server.
func VersionToolHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(config.GetVersionInfo()), nil
	}
}
