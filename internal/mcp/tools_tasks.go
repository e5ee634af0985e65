package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// ListTasksInput is the input for list_tasks.
type ListTasksInput struct {
	WorkspaceID string `json:"workspaceId"        jsonschema:"The workspace ID"`
	ProjectID   string `json:"projectId"          jsonschema:"The project ID"`
	IsActive    *bool  `json:"isActive,omitempty" jsonschema:"Filter by active status"`
	Name        string `json:"name,omitempty"     jsonschema:"Filter by task name"`
	Strict      *bool  `json:"strict,omitempty"   jsonschema:"Match the name exactly"`
	PageInput
}

func (in ListTasksInput) params() clockify.TaskListParams {
	return clockify.TaskListParams{
		Name:       in.Name,
		IsActive:   in.IsActive,
		Strict:     in.Strict,
		Pagination: in.pagination(),
	}
}

// TaskInput identifies a task within a project.
type TaskInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"The workspace ID"`
	ProjectID   string `json:"projectId"   jsonschema:"The project ID"`
	TaskID      string `json:"taskId"      jsonschema:"The task ID"`
}

// CreateTaskInput is the input for create_task.
type CreateTaskInput struct {
	WorkspaceID string              `json:"workspaceId"           jsonschema:"The workspace ID"`
	ProjectID   string              `json:"projectId"             jsonschema:"The project ID"`
	Name        string              `json:"name"                  jsonschema:"Task name"`
	AssigneeIDs []string            `json:"assigneeIds,omitempty" jsonschema:"User IDs to assign to the task"`
	Estimate    string              `json:"estimate,omitempty"    jsonschema:"Time estimate (ISO 8601 duration format, e.g., PT1H30M)"`
	Status      clockify.TaskStatus `json:"status,omitempty"      jsonschema:"Task status"`
	Billable    *bool               `json:"billable,omitempty"    jsonschema:"Whether the task is billable"`
	HourlyRate  *clockify.RateInput `json:"hourlyRate,omitempty"  jsonschema:"Hourly rate for the task"`
}

func (in CreateTaskInput) request() clockify.TaskRequest {
	return clockify.TaskRequest{
		Name:        in.Name,
		AssigneeIDs: in.AssigneeIDs,
		Estimate:    in.Estimate,
		Status:      in.Status,
		Billable:    in.Billable,
		HourlyRate:  in.HourlyRate,
	}
}

// UpdateTaskInput is the input for update_task.
type UpdateTaskInput struct {
	WorkspaceID string              `json:"workspaceId"           jsonschema:"The workspace ID"`
	ProjectID   string              `json:"projectId"             jsonschema:"The project ID"`
	TaskID      string              `json:"taskId"                jsonschema:"The task ID"`
	Name        string              `json:"name,omitempty"        jsonschema:"Task name"`
	AssigneeIDs []string            `json:"assigneeIds,omitempty" jsonschema:"User IDs to assign to the task"`
	Estimate    string              `json:"estimate,omitempty"    jsonschema:"Time estimate (ISO 8601 duration format, e.g., PT1H30M)"`
	Status      clockify.TaskStatus `json:"status,omitempty"      jsonschema:"Task status"`
	Billable    *bool               `json:"billable,omitempty"    jsonschema:"Whether the task is billable"`
	HourlyRate  *clockify.RateInput `json:"hourlyRate,omitempty"  jsonschema:"Hourly rate for the task"`
}

func (in UpdateTaskInput) request() clockify.TaskUpdate {
	return clockify.TaskUpdate{
		Name:        in.Name,
		AssigneeIDs: in.AssigneeIDs,
		Estimate:    in.Estimate,
		Status:      in.Status,
		Billable:    in.Billable,
		HourlyRate:  in.HourlyRate,
	}
}

func registerTaskTools(server *mcp.Server, api TaskAPI) {
	addTool(server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks for a project",
		Annotations: readOnlyAnnotations(),
	}, handleListTasks(api))

	addTool(server, &mcp.Tool{
		Name:        "get_task",
		Description: "Get details of a specific task",
		Annotations: readOnlyAnnotations(),
	}, handleGetTask(api))

	addTool(server, &mcp.Tool{
		Name:        "create_task",
		Description: "Create a new task in a project",
		Annotations: writeAnnotations(),
	}, handleCreateTask(api))

	addTool(server, &mcp.Tool{
		Name:        "update_task",
		Description: "Update an existing task",
		Annotations: writeAnnotations(),
	}, handleUpdateTask(api))

	addTool(server, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task",
		Annotations: destructiveAnnotations(true),
	}, handleDeleteTask(api))
}

func handleListTasks(api TaskAPI) mcp.ToolHandlerFor[ListTasksInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListTasksInput) (*mcp.CallToolResult, any, error) {
		tasks, err := api.ListTasks(ctx, input.WorkspaceID, input.ProjectID, input.params())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(tasks)
	}
}

func handleGetTask(api TaskAPI) mcp.ToolHandlerFor[TaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskInput) (*mcp.CallToolResult, any, error) {
		task, err := api.GetTask(ctx, input.WorkspaceID, input.ProjectID, input.TaskID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(task)
	}
}

func handleCreateTask(api TaskAPI) mcp.ToolHandlerFor[CreateTaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateTaskInput) (*mcp.CallToolResult, any, error) {
		task, err := api.CreateTask(ctx, input.WorkspaceID, input.ProjectID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(task)
	}
}

func handleUpdateTask(api TaskAPI) mcp.ToolHandlerFor[UpdateTaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateTaskInput) (*mcp.CallToolResult, any, error) {
		task, err := api.UpdateTask(ctx, input.WorkspaceID, input.ProjectID, input.TaskID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(task)
	}
}

func handleDeleteTask(api TaskAPI) mcp.ToolHandlerFor[TaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteTask(ctx, input.WorkspaceID, input.ProjectID, input.TaskID); err != nil {
			return nil, nil, err
		}
		return deletedResult("Task", input.TaskID)
	}
}
