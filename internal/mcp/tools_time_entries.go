package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// ListTimeEntriesInput is the input for list_time_entries.
type ListTimeEntriesInput struct {
	WorkspaceID     string   `json:"workspaceId"               jsonschema:"The workspace ID"`
	UserID          string   `json:"userId"                    jsonschema:"The user ID"`
	Description     string   `json:"description,omitempty"     jsonschema:"Filter by description"`
	Start           string   `json:"start,omitempty"           jsonschema:"Start date (ISO 8601 format)"`
	End             string   `json:"end,omitempty"             jsonschema:"End date (ISO 8601 format)"`
	Project         string   `json:"project,omitempty"         jsonschema:"Filter by project ID"`
	Task            string   `json:"task,omitempty"            jsonschema:"Filter by task ID"`
	Tags            []string `json:"tags,omitempty"            jsonschema:"Filter by tag IDs"`
	ProjectRequired *bool    `json:"projectRequired,omitempty" jsonschema:"Only entries with a project"`
	TaskRequired    *bool    `json:"taskRequired,omitempty"    jsonschema:"Only entries with a task"`
	Hydrated        *bool    `json:"hydrated,omitempty"        jsonschema:"Include full project, task and tag objects"`
	InProgress      *bool    `json:"inProgress,omitempty"      jsonschema:"Only the running entry"`
	PageInput
}

func (in ListTimeEntriesInput) params() clockify.TimeEntryListParams {
	return clockify.TimeEntryListParams{
		Description:     in.Description,
		Start:           in.Start,
		End:             in.End,
		Project:         in.Project,
		Task:            in.Task,
		Tags:            in.Tags,
		ProjectRequired: in.ProjectRequired,
		TaskRequired:    in.TaskRequired,
		Hydrated:        in.Hydrated,
		InProgress:      in.InProgress,
		Pagination:      in.pagination(),
	}
}

// TimeEntryInput identifies a time entry.
type TimeEntryInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"The workspace ID"`
	TimeEntryID string `json:"timeEntryId" jsonschema:"The time entry ID"`
}

// CreateTimeEntryInput is the input for create_time_entry.
type CreateTimeEntryInput struct {
	WorkspaceID string   `json:"workspaceId"           jsonschema:"The workspace ID"`
	Start       string   `json:"start"                 jsonschema:"Start time (ISO 8601 format)"`
	End         string   `json:"end,omitempty"         jsonschema:"End time (ISO 8601 format)"`
	Description string   `json:"description,omitempty" jsonschema:"Time entry description"`
	ProjectID   string   `json:"projectId,omitempty"   jsonschema:"Project ID"`
	TaskID      string   `json:"taskId,omitempty"      jsonschema:"Task ID"`
	TagIDs      []string `json:"tagIds,omitempty"      jsonschema:"Tag IDs"`
	Billable    *bool    `json:"billable,omitempty"    jsonschema:"Whether the entry is billable"`
}

func (in CreateTimeEntryInput) request() clockify.TimeEntryRequest {
	return clockify.TimeEntryRequest{
		Start:       in.Start,
		End:         in.End,
		Description: in.Description,
		ProjectID:   in.ProjectID,
		TaskID:      in.TaskID,
		TagIDs:      in.TagIDs,
		Billable:    in.Billable,
	}
}

// UpdateTimeEntryInput is the input for update_time_entry.
type UpdateTimeEntryInput struct {
	WorkspaceID string   `json:"workspaceId"           jsonschema:"The workspace ID"`
	TimeEntryID string   `json:"timeEntryId"           jsonschema:"The time entry ID"`
	Start       string   `json:"start,omitempty"       jsonschema:"Start time (ISO 8601 format)"`
	End         string   `json:"end,omitempty"         jsonschema:"End time (ISO 8601 format)"`
	Description string   `json:"description,omitempty" jsonschema:"Time entry description"`
	ProjectID   string   `json:"projectId,omitempty"   jsonschema:"Project ID"`
	TaskID      string   `json:"taskId,omitempty"      jsonschema:"Task ID"`
	TagIDs      []string `json:"tagIds,omitempty"      jsonschema:"Tag IDs"`
	Billable    *bool    `json:"billable,omitempty"    jsonschema:"Whether the entry is billable"`
}

func (in UpdateTimeEntryInput) request() clockify.TimeEntryUpdate {
	return clockify.TimeEntryUpdate{
		Start:       in.Start,
		End:         in.End,
		Description: in.Description,
		ProjectID:   in.ProjectID,
		TaskID:      in.TaskID,
		TagIDs:      in.TagIDs,
		Billable:    in.Billable,
	}
}

// StartTimerInput is the input for start_timer.
type StartTimerInput struct {
	WorkspaceID string   `json:"workspaceId"           jsonschema:"The workspace ID"`
	Start       string   `json:"start,omitempty"       jsonschema:"Start time (ISO 8601 format, defaults to now)"`
	Description string   `json:"description,omitempty" jsonschema:"Time entry description"`
	ProjectID   string   `json:"projectId,omitempty"   jsonschema:"Project ID"`
	TaskID      string   `json:"taskId,omitempty"      jsonschema:"Task ID"`
	TagIDs      []string `json:"tagIds,omitempty"      jsonschema:"Tag IDs"`
	Billable    *bool    `json:"billable,omitempty"    jsonschema:"Whether the entry is billable"`
}

func (in StartTimerInput) request() clockify.TimerRequest {
	return clockify.TimerRequest{
		Start:       in.Start,
		Description: in.Description,
		ProjectID:   in.ProjectID,
		TaskID:      in.TaskID,
		TagIDs:      in.TagIDs,
		Billable:    in.Billable,
	}
}

// UserTimerInput identifies whose timer to stop or read.
type UserTimerInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"The workspace ID"`
	UserID      string `json:"userId"      jsonschema:"The user ID"`
}

func registerTimeEntryTools(server *mcp.Server, api TimeEntryAPI) {
	addTool(server, &mcp.Tool{
		Name:        "list_time_entries",
		Description: "List time entries for a user in a workspace",
		Annotations: readOnlyAnnotations(),
	}, handleListTimeEntries(api))

	addTool(server, &mcp.Tool{
		Name:        "get_time_entry",
		Description: "Get a single time entry by ID",
		Annotations: readOnlyAnnotations(),
	}, handleGetTimeEntry(api))

	addTool(server, &mcp.Tool{
		Name:        "create_time_entry",
		Description: "Create a new time entry",
		Annotations: writeAnnotations(),
	}, handleCreateTimeEntry(api))

	addTool(server, &mcp.Tool{
		Name:        "update_time_entry",
		Description: "Update an existing time entry",
		Annotations: writeAnnotations(),
	}, handleUpdateTimeEntry(api))

	addTool(server, &mcp.Tool{
		Name:        "delete_time_entry",
		Description: "Delete a time entry",
		Annotations: destructiveAnnotations(true),
	}, handleDeleteTimeEntry(api))

	addTool(server, &mcp.Tool{
		Name:        "start_timer",
		Description: "Start a new running timer",
		Annotations: writeAnnotations(),
	}, handleStartTimer(api))

	addTool(server, &mcp.Tool{
		Name:        "stop_timer",
		Description: "Stop the currently running timer",
		Annotations: destructiveAnnotations(false),
	}, handleStopTimer(api))

	addTool(server, &mcp.Tool{
		Name:        "get_running_timer",
		Description: "Get the currently running timer for a user",
		Annotations: readOnlyAnnotations(),
	}, handleGetRunningTimer(api))
}

func handleListTimeEntries(api TimeEntryAPI) mcp.ToolHandlerFor[ListTimeEntriesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListTimeEntriesInput) (*mcp.CallToolResult, any, error) {
		entries, err := api.ListTimeEntries(ctx, input.WorkspaceID, input.UserID, input.params())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(entries)
	}
}

func handleGetTimeEntry(api TimeEntryAPI) mcp.ToolHandlerFor[TimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TimeEntryInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.GetTimeEntry(ctx, input.WorkspaceID, input.TimeEntryID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(entry)
	}
}

func handleCreateTimeEntry(api TimeEntryAPI) mcp.ToolHandlerFor[CreateTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateTimeEntryInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.CreateTimeEntry(ctx, input.WorkspaceID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(entry)
	}
}

func handleUpdateTimeEntry(api TimeEntryAPI) mcp.ToolHandlerFor[UpdateTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateTimeEntryInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.UpdateTimeEntry(ctx, input.WorkspaceID, input.TimeEntryID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(entry)
	}
}

func handleDeleteTimeEntry(api TimeEntryAPI) mcp.ToolHandlerFor[TimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TimeEntryInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteTimeEntry(ctx, input.WorkspaceID, input.TimeEntryID); err != nil {
			return nil, nil, err
		}
		return deletedResult("Time entry", input.TimeEntryID)
	}
}

func handleStartTimer(api TimeEntryAPI) mcp.ToolHandlerFor[StartTimerInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StartTimerInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.StartTimer(ctx, input.WorkspaceID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(entry)
	}
}

func handleStopTimer(api TimeEntryAPI) mcp.ToolHandlerFor[UserTimerInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UserTimerInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.StopTimer(ctx, input.WorkspaceID, input.UserID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(entry)
	}
}

func handleGetRunningTimer(api TimeEntryAPI) mcp.ToolHandlerFor[UserTimerInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UserTimerInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.GetRunningTimer(ctx, input.WorkspaceID, input.UserID)
		if err != nil {
			return nil, nil, err
		}
		if entry == nil {
			return textResult(noRunningTimer), nil, nil
		}
		return jsonResult(entry)
	}
}
