package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListTools returns the tools a server advertises, in the order the server
// lists them. It connects an in-memory client, so nothing leaves the process.
func ListTools(ctx context.Context, server *mcp.Server) ([]*mcp.Tool, error) {
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting server: %w", err)
	}
	defer func() { _ = serverSession.Close() }()

	client := mcp.NewClient(&mcp.Implementation{Name: ServerName + "-catalog", Version: "v0.0.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting client: %w", err)
	}
	defer func() { _ = clientSession.Close() }()

	result, err := clientSession.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tools: %w", err)
	}
	return result.Tools, nil
}

// Access describes what a tool does to the remote side: "read", "write"
// or "destructive".
func Access(tool *mcp.Tool) string {
	ann := tool.Annotations
	switch {
	case ann == nil:
		return "write"
	case ann.ReadOnlyHint:
		return "read"
	case ann.DestructiveHint != nil && *ann.DestructiveHint:
		return "destructive"
	default:
		return "write"
	}
}
