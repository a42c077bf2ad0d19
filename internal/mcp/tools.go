package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listTemplatesTool defines the list_templates MCP tool.
var listTemplatesTool = mcp.NewTool("list_templates",
	mcp.WithDescription("List the available portfolio templates with their names, descriptions and theme values."),
)

// resolveThemeTool defines the resolve_theme MCP tool.
var resolveThemeTool = mcp.NewTool("resolve_theme",
	mcp.WithDescription("Get the theme (colors, font, border radius) for a template id. Unknown ids resolve to the minimal theme."),
	mcp.WithString("template",
		mcp.Required(),
		mcp.Description("Template id, e.g. minimal or developer"),
	),
)

// formatDateTool defines the format_date MCP tool.
var formatDateTool = mcp.NewTool("format_date",
	mcp.WithDescription("Format a YYYY-MM date as it appears on a generated site (e.g. 2020-01 becomes Jan 2020). Other values are returned unchanged."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("Date to format"),
	),
)

// generatePortfolioTool defines the generate_portfolio MCP tool.
var generatePortfolioTool = mcp.NewTool("generate_portfolio",
	mcp.WithDescription("Generate a portfolio site from a profile. Returns JSON with html, css and js fields."),
	mcp.WithString("profile",
		mcp.Required(),
		mcp.Description("Profile as a JSON object string (name, title, about, email, skills, experiences, education, projects, ...)"),
	),
	mcp.WithString("template",
		mcp.Description("Template id (default minimal)"),
		mcp.Enum("minimal", "creative", "professional", "developer", "modern", "academic"),
	),
	mcp.WithString("escaping",
		mcp.Description("HTML escaping of profile text"),
		mcp.Enum("strict", "legacy"),
	),
	mcp.WithBoolean("markdown",
		mcp.Description("Render about text and descriptions as markdown"),
	),
)
