package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WorkspaceInput identifies a workspace.
type WorkspaceInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"The workspace ID"`
}

// EmptyInput is the input of tools that take no arguments.
type EmptyInput struct{}

func registerWorkspaceTools(server *mcp.Server, api WorkspaceAPI) {
	addTool(server, &mcp.Tool{
		Name:        "list_workspaces",
		Description: "List all workspaces the current user has access to",
		Annotations: readOnlyAnnotations(),
	}, handleListWorkspaces(api))

	addTool(server, &mcp.Tool{
		Name:        "get_workspace",
		Description: "Get details of a specific workspace",
		Annotations: readOnlyAnnotations(),
	}, handleGetWorkspace(api))

	addTool(server, &mcp.Tool{
		Name:        "get_current_workspace",
		Description: "Get the current/default workspace for the user",
		Annotations: readOnlyAnnotations(),
	}, handleGetCurrentWorkspace(api))
}

func handleListWorkspaces(api WorkspaceAPI) mcp.ToolHandlerFor[EmptyInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, any, error) {
		workspaces, err := api.ListWorkspaces(ctx)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(workspaces)
	}
}

func handleGetWorkspace(api WorkspaceAPI) mcp.ToolHandlerFor[WorkspaceInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WorkspaceInput) (*mcp.CallToolResult, any, error) {
		workspace, err := api.GetWorkspace(ctx, input.WorkspaceID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(workspace)
	}
}

func handleGetCurrentWorkspace(api WorkspaceAPI) mcp.ToolHandlerFor[EmptyInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, any, error) {
		workspace, err := api.GetCurrentWorkspace(ctx)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(workspace)
	}
}
