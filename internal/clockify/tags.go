package clockify

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListTags lists tags in a workspace.
func (c *Client) ListTags(ctx context.Context, workspaceID string, params TagListParams) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, workspacePath(workspaceID, "tags"), params.values(), nil)
}

// GetTag returns one tag.
func (c *Client) GetTag(ctx context.Context, workspaceID, tagID string) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, workspacePath(workspaceID, "tags", tagID), nil, nil)
}

// CreateTag creates a tag.
func (c *Client) CreateTag(ctx context.Context, workspaceID string, req TagRequest) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodPost, workspacePath(workspaceID, "tags"), nil, req)
}

// DeleteTag deletes a tag.
func (c *Client) DeleteTag(ctx context.Context, workspaceID, tagID string) error {
	_, err := c.api.call(ctx, http.MethodDelete, workspacePath(workspaceID, "tags", tagID), nil, nil)
	return err
}
