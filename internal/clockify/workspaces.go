package clockify

import (
	"context"
	"encoding/json"
	"net/http"
)

// errNoWorkspace is returned by GetCurrentWorkspace when the user record
// names neither an active nor a default workspace.
const errNoWorkspace = "current user has no active or default workspace"

// ListWorkspaces returns every workspace the user belongs to.
func (c *Client) ListWorkspaces(ctx context.Context) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, "/workspaces", nil, nil)
}

// GetWorkspace returns a single workspace.
func (c *Client) GetWorkspace(ctx context.Context, workspaceID string) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, workspacePath(workspaceID), nil, nil)
}

// GetCurrentWorkspace returns the configured default workspace. Without one
// it looks up the current user and fetches their active workspace, falling
// back to their default workspace.
func (c *Client) GetCurrentWorkspace(ctx context.Context) (json.RawMessage, error) {
	if c.workspaceID != "" {
		return c.GetWorkspace(ctx, c.workspaceID)
	}

	data, err := c.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	var user UserRef
	if err := c.api.decode(data, &user); err != nil {
		return nil, err
	}

	workspaceID := user.ActiveWorkspace
	if workspaceID == "" {
		workspaceID = user.DefaultWorkspace
	}
	if workspaceID == "" {
		return nil, &APIError{Source: SourceAPI, Message: errNoWorkspace}
	}
	return c.GetWorkspace(ctx, workspaceID)
}
