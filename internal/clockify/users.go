package clockify

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetCurrentUser returns the user that owns the API key.
func (c *Client) GetCurrentUser(ctx context.Context) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, "/user", nil, nil)
}

// ListWorkspaceUsers lists the members of a workspace.
func (c *Client) ListWorkspaceUsers(ctx context.Context, workspaceID string, params UserListParams) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, workspacePath(workspaceID, "users"), params.values(), nil)
}

// GetUser returns one member of a workspace.
func (c *Client) GetUser(ctx context.Context, workspaceID, userID string) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, workspacePath(workspaceID, "users", userID), nil, nil)
}
