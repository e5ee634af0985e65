package clockify

import (
	"context"
	"encoding/json"
	"net/http"
)

// Timestamp layouts used by the timer operations.
const (
	// StartLayout is local time with a numeric UTC offset.
	StartLayout = "2006-01-02T15:04:05-07:00"
	// StopLayout is UTC with millisecond precision.
	StopLayout = "2006-01-02T15:04:05.000Z"
)

// ListTimeEntries lists a user's time entries in a workspace.
func (c *Client) ListTimeEntries(ctx context.Context, workspaceID, userID string, params TimeEntryListParams) (json.RawMessage, error) {
	path := workspacePath(workspaceID, "user", userID, "time-entries")
	return c.api.call(ctx, http.MethodGet, path, params.values(), nil)
}

// GetTimeEntry returns one time entry.
func (c *Client) GetTimeEntry(ctx context.Context, workspaceID, entryID string) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodGet, workspacePath(workspaceID, "time-entries", entryID), nil, nil)
}

// CreateTimeEntry creates a time entry for the current user.
func (c *Client) CreateTimeEntry(ctx context.Context, workspaceID string, req TimeEntryRequest) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodPost, workspacePath(workspaceID, "time-entries"), nil, req)
}

// UpdateTimeEntry updates a time entry.
func (c *Client) UpdateTimeEntry(ctx context.Context, workspaceID, entryID string, req TimeEntryUpdate) (json.RawMessage, error) {
	return c.api.call(ctx, http.MethodPut, workspacePath(workspaceID, "time-entries", entryID), nil, req)
}

// DeleteTimeEntry deletes a time entry.
func (c *Client) DeleteTimeEntry(ctx context.Context, workspaceID, entryID string) error {
	_, err := c.api.call(ctx, http.MethodDelete, workspacePath(workspaceID, "time-entries", entryID), nil, nil)
	return err
}

// startTimerBody always carries "end": null so the entry is created running.
type startTimerBody struct {
	TimerRequest
	End *string `json:"end"`
}

// StartTimer creates a running time entry. An empty req.Start is replaced
// by the current local time.
func (c *Client) StartTimer(ctx context.Context, workspaceID string, req TimerRequest) (json.RawMessage, error) {
	if req.Start == "" {
		req.Start = c.now().Format(StartLayout)
	}
	body := startTimerBody{TimerRequest: req}
	return c.api.call(ctx, http.MethodPost, workspacePath(workspaceID, "time-entries"), nil, body)
}

type stopTimerBody struct {
	End string `json:"end"`
}

// StopTimer ends the user's running entry at the current UTC time.
func (c *Client) StopTimer(ctx context.Context, workspaceID, userID string) (json.RawMessage, error) {
	body := stopTimerBody{End: c.now().UTC().Format(StopLayout)}
	path := workspacePath(workspaceID, "user", userID, "time-entries")
	return c.api.call(ctx, http.MethodPatch, path, nil, body)
}

// GetRunningTimer returns the user's in-progress entry exactly as Clockify
// sent it, or nil when no timer is running.
func (c *Client) GetRunningTimer(ctx context.Context, workspaceID, userID string) (json.RawMessage, error) {
	inProgress := true
	data, err := c.ListTimeEntries(ctx, workspaceID, userID, TimeEntryListParams{InProgress: &inProgress})
	if err != nil || data == nil {
		return nil, err
	}
	var entries []json.RawMessage
	if err := c.api.decode(data, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}
