package clockify

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListProjects lists projects in a workspace.
func (c *Client) ListProjects(ctx context.Context, workspaceID string, params ProjectListParams) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, workspacePath(workspaceID, "projects"), params.values(), nil)
}

// GetProject returns one project.
func (c *Client) GetProject(ctx context.Context, workspaceID, projectID string) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, workspacePath(workspaceID, "projects", projectID), nil, nil)
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, workspaceID string, req ProjectRequest) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodPost, workspacePath(workspaceID, "projects"), nil, req)
}

// UpdateProject updates a project.
func (c *Client) UpdateProject(ctx context.Context, workspaceID, projectID string, req ProjectUpdate) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodPut, workspacePath(workspaceID, "projects", projectID), nil, req)
}

// DeleteProject deletes a project. Clockify may only archive it.
func (c *Client) DeleteProject(ctx context.Context, workspaceID, projectID string) error {
	_, err := c.api.call(ctx, http.MethodDelete, workspacePath(workspaceID, "projects", projectID), nil, nil)
	return err
}

// AddProjectMember adds a user to a project and returns the updated project.
func (c *Client) AddProjectMember(ctx context.Context, workspaceID, projectID string, req MembershipRequest) (json.RawMessage, error) {
	path := workspacePath(workspaceID, "projects", projectID, "memberships")
	return c.api.call(ctx, http.MethodPost, path, nil, req)
}
