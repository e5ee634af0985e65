// Package mcp provides a Model Context Protocol server for Clockify.
// It exposes workspaces, projects, tasks, clients, tags, time entries and
// reports as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is the implementation name advertised to MCP clients.
const ServerName = "clockify-mcp"

// NewServer creates an MCP server with all Clockify tools registered.
// A nil logger discards log output.
func NewServer(version string, api API, logger *slog.Logger) *mcp.Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, &mcp.ServerOptions{Logger: logger})
	server.AddReceivingMiddleware(loggingMiddleware(logger))
	registerTools(server, api)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// destructiveAnnotations returns annotations for tools that delete or end something.
func destructiveAnnotations(idempotent bool) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  idempotent,
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all Clockify tools to the server.
func registerTools(server *mcp.Server, api API) {
	registerWorkspaceTools(server, api)
	registerUserTools(server, api)
	registerProjectTools(server, api)
	registerTaskTools(server, api)
	registerClientTools(server, api)
	registerTagTools(server, api)
	registerTimeEntryTools(server, api)
	registerReportTools(server, api)
}
