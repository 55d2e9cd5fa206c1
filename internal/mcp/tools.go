package mcp

import (
	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools adds the fortune tools to s and returns their names.
func RegisterTools(s *server.MCPServer, generator *fortune.Generator, logger *common.Logger) []string {
	tools := []server.ServerTool{
		{Tool: DrawFortuneTool(), Handler: DrawFortuneHandler(generator, logger)},
		{Tool: ListScenariosTool(), Handler: ListScenariosHandler()},
		{Tool: SearchCompaniesTool(), Handler: SearchCompaniesHandler()},
		{Tool: VersionTool(), Handler: VersionToolHandler()},
	}
	s.AddTools(tools...)

	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Tool.Name
	}
	return names
}

// DrawFortuneTool returns the mcp.Tool definition for draw_fortune.
func DrawFortuneTool() mcp.Tool {
	ids := make([]string, 0, 4)
	for _, s := range fortune.Scenarios() {
		ids = append(ids, s.ID)
	}

	return mcp.NewTool("draw_fortune",
		mcp.WithDescription("Draw a festive fortune: a lucky character, a four-line poem and a financial insight for a person, a company and a wish."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the person drawing the fortune"),
		),
		mcp.WithString("company",
			mcp.Description("Company name or ticker, e.g. 腾讯 or BABA"),
		),
		mcp.WithString("wish_id",
			mcp.Description("Wish scenario; unknown values fall back to wealth"),
			mcp.Enum(ids...),
		),
	)
}

// ListScenariosTool returns the mcp.Tool definition for list_scenarios.
func ListScenariosTool() mcp.Tool {
	return mcp.NewTool("list_scenarios",
		mcp.WithDescription("List the wish scenarios in display order with their lucky characters."),
	)
}

// SearchCompaniesTool returns the mcp.Tool definition for search_companies.
func SearchCompaniesTool() mcp.Tool {
	return mcp.NewTool("search_companies",
		mcp.WithDescription("Search the known companies by name or ticker."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive name or ticker fragment"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 5)"),
		),
	)
}
