package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// ListUsersInput is the input for list_workspace_users.
type ListUsersInput struct {
	WorkspaceID string              `json:"workspaceId"      jsonschema:"The workspace ID"`
	Email       string              `json:"email,omitempty"  jsonschema:"Filter by email address"`
	Status      clockify.UserStatus `json:"status,omitempty" jsonschema:"Filter by user status"`
	PageInput
}

func (in ListUsersInput) params() clockify.UserListParams {
	return clockify.UserListParams{
		Email:      in.Email,
		Status:     in.Status,
		Pagination: in.pagination(),
	}
}

// GetUserInput identifies a workspace user.
type GetUserInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"The workspace ID"`
	UserID      string `json:"userId"      jsonschema:"The user ID"`
}

func registerUserTools(server *mcp.Server, api UserAPI) {
	addTool(server, &mcp.Tool{
		Name:        "get_current_user",
		Description: "Get the currently authenticated user",
		Annotations: readOnlyAnnotations(),
	}, handleGetCurrentUser(api))

	addTool(server, &mcp.Tool{
		Name:        "list_workspace_users",
		Description: "List all users in a workspace",
		Annotations: readOnlyAnnotations(),
	}, handleListWorkspaceUsers(api))

	addTool(server, &mcp.Tool{
		Name:        "get_user",
		Description: "Get details of a specific user in a workspace",
		Annotations: readOnlyAnnotations(),
	}, handleGetUser(api))
}

func handleGetCurrentUser(api UserAPI) mcp.ToolHandlerFor[EmptyInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, any, error) {
		user, err := api.GetCurrentUser(ctx)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(user)
	}
}

func handleListWorkspaceUsers(api UserAPI) mcp.ToolHandlerFor[ListUsersInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListUsersInput) (*mcp.CallToolResult, any, error) {
		users, err := api.ListWorkspaceUsers(ctx, input.WorkspaceID, input.params())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(users)
	}
}

func handleGetUser(api UserAPI) mcp.ToolHandlerFor[GetUserInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetUserInput) (*mcp.CallToolResult, any, error) {
		user, err := api.GetUser(ctx, input.WorkspaceID, input.UserID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(user)
	}
}
