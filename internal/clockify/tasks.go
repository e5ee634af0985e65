package clockify

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListTasks lists the tasks of a project.
func (c *Client) ListTasks(ctx context.Context, workspaceID, projectID string, params TaskListParams) (json.RawMessage, error) {
	path := workspacePath(workspaceID, "projects", projectID, "tasks")
	return c.api.call(ctx, http.MethodGet, path, params.values(), nil)
}

// GetTask returns one task.
func (c *Client) GetTask(ctx context.Context, workspaceID, projectID, taskID string) (json.RawMessage, error) {
	path := workspacePath(workspaceID, "projects", projectID, "tasks", taskID)
	return c.api.call(ctx, http.MethodGet, path, nil, nil)
}

// CreateTask creates a task in a project.
func (c *Client) CreateTask(ctx context.Context, workspaceID, projectID string, req TaskRequest) (json.RawMessage, error) {
	path := workspacePath(workspaceID, "projects", projectID, "tasks")
	return c.api.call(ctx, http.MethodPost, path, nil, req)
}

// UpdateTask updates a task.
func (c *Client) UpdateTask(ctx context.Context, workspaceID, projectID, taskID string, req TaskUpdate) (json.RawMessage, error) {
	path := workspacePath(workspaceID, "projects", projectID, "tasks", taskID)
	return c.api.call(ctx, http.MethodPut, path, nil, req)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, workspaceID, projectID, taskID string) error {
	path := workspacePath(workspaceID, "projects", projectID, "tasks", taskID)
	_, err := c.api.call(ctx, http.MethodDelete, path, nil, nil)
	return err
}
