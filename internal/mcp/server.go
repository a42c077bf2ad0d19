package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/folio/internal/portfolio"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes portfolio generation tools.
type Server struct {
	gen *portfolio.Generator
	mcp *server.MCPServer
}

// NewServer creates a new MCP server. gen supplies the default rendering
// options and the clock.
func NewServer(gen *portfolio.Generator) *Server {
	s := &Server{gen: gen}

	s.mcp = server.NewMCPServer(
		"folio",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listTemplatesTool, s.handleListTemplates)
	s.mcp.AddTool(resolveThemeTool, s.handleResolveTheme)
	s.mcp.AddTool(formatDateTool, s.handleFormatDate)
	s.mcp.AddTool(generatePortfolioTool, s.handleGeneratePortfolio)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
