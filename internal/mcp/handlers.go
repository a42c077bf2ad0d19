package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/profile"
)

// handleListTemplates returns the template catalog as readable text.
func (s *Server) handleListTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatCatalog(portfolio.Catalog())), nil
}

// handleResolveTheme returns the theme for a template id as JSON.
func (s *Server) handleResolveTheme(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("template")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: template"), nil
	}

	data, err := json.MarshalIndent(portfolio.ResolveTheme(id), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding theme: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleFormatDate formats a single date value.
func (s *Server) handleFormatDate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := request.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: value"), nil
	}
	return mcp.NewToolResultText(portfolio.FormatDate(value)), nil
}

// handleGeneratePortfolio checks the profile and renders the site.
func (s *Server) handleGeneratePortfolio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("profile")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: profile"), nil
	}

	opts := portfolio.Options{
		GeneratedAt: s.now(),
		Escaping:    s.gen.Escaping,
		Markdown:    request.GetBool("markdown", s.gen.Markdown),
	}
	if v := request.GetString("escaping", ""); v != "" {
		mode, err := portfolio.ParseEscapeMode(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts.Escaping = mode
	}

	p, err := profile.Decode([]byte(raw))
	if err == nil {
		err = profile.Validate(p)
	}
	if err != nil {
		var ve *profile.ValidationError
		if errors.As(err, &ve) {
			return mcp.NewToolResultError(ve.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("reading profile: %v", err)), nil
	}

	a, err := portfolio.Generate(*p, request.GetString("template", ""), opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	data, err := json.Marshal(a)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) now() time.Time {
	if s.gen.Now != nil {
		return s.gen.Now()
	}
	return time.Now()
}

// formatCatalog renders the catalog as a markdown list.
func formatCatalog(templates []portfolio.Template) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Templates (%d)\n\n", len(templates)))
	for _, t := range templates {
		sb.WriteString(fmt.Sprintf("- **%s** (`%s`): %s\n", t.Name, t.ID, t.Description))
		sb.WriteString(fmt.Sprintf("  - colors: %s / %s, font: %s, radius: %s\n",
			t.Theme.PrimaryColor, t.Theme.SecondaryColor, t.Theme.FontFamily, t.Theme.BorderRadius))
	}
	return sb.String()
}
