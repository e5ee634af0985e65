package clockify

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListClients lists billing clients in a workspace.
func (c *Client) ListClients(ctx context.Context, workspaceID string, params ClientListParams) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, workspacePath(workspaceID, "clients"), params.values(), nil)
}

// GetClient returns one billing client.
func (c *Client) GetClient(ctx context.Context, workspaceID, clientID string) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, workspacePath(workspaceID, "clients", clientID), nil, nil)
}

// CreateClient creates a billing client.
func (c *Client) CreateClient(ctx context.Context, workspaceID string, req ClientRequest) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodPost, workspacePath(workspaceID, "clients"), nil, req)
}

// DeleteClient deletes a billing client.
func (c *Client) DeleteClient(ctx context.Context, workspaceID, clientID string) error {
	_, err := c.api.call(ctx, http.MethodDelete, workspacePath(workspaceID, "clients", clientID), nil, nil)
	return err
}
