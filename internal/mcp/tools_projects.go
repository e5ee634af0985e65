package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// ListProjectsInput is the input for list_projects.
type ListProjectsInput struct {
	WorkspaceID string `json:"workspaceId"        jsonschema:"The workspace ID"`
	Name        string `json:"name,omitempty"     jsonschema:"Filter by project name"`
	Archived    *bool  `json:"archived,omitempty" jsonschema:"Filter by archived status"`
	ClientID    string `json:"clientId,omitempty" jsonschema:"Filter by client ID"`
	Billable    *bool  `json:"billable,omitempty" jsonschema:"Filter by billable status"`
	PageInput
}

func (in ListProjectsInput) params() clockify.ProjectListParams {
	return clockify.ProjectListParams{
		Name:       in.Name,
		Archived:   in.Archived,
		ClientID:   in.ClientID,
		Billable:   in.Billable,
		Pagination: in.pagination(),
	}
}

// ProjectInput identifies a project.
type ProjectInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"The workspace ID"`
	ProjectID   string `json:"projectId"   jsonschema:"The project ID"`
}

// CreateProjectInput is the input for create_project.
type CreateProjectInput struct {
	WorkspaceID string              `json:"workspaceId"          jsonschema:"The workspace ID"`
	Name        string              `json:"name"                 jsonschema:"Project name"`
	ClientID    string              `json:"clientId,omitempty"   jsonschema:"Client ID to associate with the project"`
	IsPublic    *bool               `json:"isPublic,omitempty"   jsonschema:"Whether the project is public"`
	Billable    *bool               `json:"billable,omitempty"   jsonschema:"Whether the project is billable"`
	Color       string              `json:"color,omitempty"      jsonschema:"Project color (hex format, e.g., #FF0000)"`
	Note        string              `json:"note,omitempty"       jsonschema:"Project note"`
	HourlyRate  *clockify.RateInput `json:"hourlyRate,omitempty" jsonschema:"Hourly rate for the project"`
}

func (in CreateProjectInput) request() clockify.ProjectRequest {
	return clockify.ProjectRequest{
		Name:       in.Name,
		ClientID:   in.ClientID,
		IsPublic:   in.IsPublic,
		Billable:   in.Billable,
		Color:      in.Color,
		Note:       in.Note,
		HourlyRate: in.HourlyRate,
	}
}

// UpdateProjectInput is the input for update_project.
type UpdateProjectInput struct {
	WorkspaceID string              `json:"workspaceId"          jsonschema:"The workspace ID"`
	ProjectID   string              `json:"projectId"            jsonschema:"The project ID"`
	Name        string              `json:"name,omitempty"       jsonschema:"Project name"`
	ClientID    string              `json:"clientId,omitempty"   jsonschema:"Client ID to associate with the project"`
	IsPublic    *bool               `json:"isPublic,omitempty"   jsonschema:"Whether the project is public"`
	Billable    *bool               `json:"billable,omitempty"   jsonschema:"Whether the project is billable"`
	Color       string              `json:"color,omitempty"      jsonschema:"Project color (hex format, e.g., #FF0000)"`
	Note        string              `json:"note,omitempty"       jsonschema:"Project note"`
	Archived    *bool               `json:"archived,omitempty"   jsonschema:"Whether the project is archived"`
	HourlyRate  *clockify.RateInput `json:"hourlyRate,omitempty" jsonschema:"Hourly rate for the project"`
}

func (in UpdateProjectInput) request() clockify.ProjectUpdate {
	return clockify.ProjectUpdate{
		Name:       in.Name,
		ClientID:   in.ClientID,
		IsPublic:   in.IsPublic,
		Billable:   in.Billable,
		Color:      in.Color,
		Note:       in.Note,
		Archived:   in.Archived,
		HourlyRate: in.HourlyRate,
	}
}

// AddProjectMemberInput is the input for add_project_member.
type AddProjectMemberInput struct {
	WorkspaceID      string                    `json:"workspaceId"                jsonschema:"The workspace ID"`
	ProjectID        string                    `json:"projectId"                  jsonschema:"The project ID"`
	UserID           string                    `json:"userId"                     jsonschema:"The user ID to add"`
	HourlyRate       *clockify.RateInput       `json:"hourlyRate,omitempty"       jsonschema:"Hourly rate for the member"`
	CostRate         *clockify.RateInput       `json:"costRate,omitempty"         jsonschema:"Cost rate for the member"`
	MembershipType   clockify.MembershipType   `json:"membershipType,omitempty"   jsonschema:"Membership type"`
	MembershipStatus clockify.MembershipStatus `json:"membershipStatus,omitempty" jsonschema:"Membership status"`
}

func (in AddProjectMemberInput) request() clockify.MembershipRequest {
	return clockify.MembershipRequest{
		UserID:           in.UserID,
		HourlyRate:       in.HourlyRate,
		CostRate:         in.CostRate,
		MembershipType:   in.MembershipType,
		MembershipStatus: in.MembershipStatus,
	}
}

func registerProjectTools(server *mcp.Server, api ProjectAPI) {
	addTool(server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List projects in a workspace with optional filters",
		Annotations: readOnlyAnnotations(),
	}, handleListProjects(api))

	addTool(server, &mcp.Tool{
		Name:        "get_project",
		Description: "Get details of a specific project",
		Annotations: readOnlyAnnotations(),
	}, handleGetProject(api))

	addTool(server, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a new project in a workspace",
		Annotations: writeAnnotations(),
	}, handleCreateProject(api))

	addTool(server, &mcp.Tool{
		Name:        "update_project",
		Description: "Update an existing project",
		Annotations: writeAnnotations(),
	}, handleUpdateProject(api))

	addTool(server, &mcp.Tool{
		Name:        "delete_project",
		Description: "Delete (archive) a project",
		Annotations: destructiveAnnotations(true),
	}, handleDeleteProject(api))

	addTool(server, &mcp.Tool{
		Name:        "add_project_member",
		Description: "Add a user as a member of a project",
		Annotations: writeAnnotations(),
	}, handleAddProjectMember(api))
}

func handleListProjects(api ProjectAPI) mcp.ToolHandlerFor[ListProjectsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListProjectsInput) (*mcp.CallToolResult, any, error) {
		projects, err := api.ListProjects(ctx, input.WorkspaceID, input.params())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(projects)
	}
}

func handleGetProject(api ProjectAPI) mcp.ToolHandlerFor[ProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectInput) (*mcp.CallToolResult, any, error) {
		project, err := api.GetProject(ctx, input.WorkspaceID, input.ProjectID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(project)
	}
}

func handleCreateProject(api ProjectAPI) mcp.ToolHandlerFor[CreateProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateProjectInput) (*mcp.CallToolResult, any, error) {
		project, err := api.CreateProject(ctx, input.WorkspaceID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(project)
	}
}

func handleUpdateProject(api ProjectAPI) mcp.ToolHandlerFor[UpdateProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateProjectInput) (*mcp.CallToolResult, any, error) {
		project, err := api.UpdateProject(ctx, input.WorkspaceID, input.ProjectID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(project)
	}
}

func handleDeleteProject(api ProjectAPI) mcp.ToolHandlerFor[ProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteProject(ctx, input.WorkspaceID, input.ProjectID); err != nil {
			return nil, nil, err
		}
		return deletedResult("Project", input.ProjectID)
	}
}

func handleAddProjectMember(api ProjectAPI) mcp.ToolHandlerFor[AddProjectMemberInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddProjectMemberInput) (*mcp.CallToolResult, any, error) {
		project, err := api.AddProjectMember(ctx, input.WorkspaceID, input.ProjectID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(project)
	}
}
