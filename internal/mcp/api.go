package mcp

import (
	"context"
	"encoding/json"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// WorkspaceAPI is the workspace slice of the Clockify client.
type WorkspaceAPI interface {
	ListWorkspaces(ctx context.Context) (json.RawMessage, error)
	GetWorkspace(ctx context.Context, workspaceID string) (json.RawMessage, error)
	GetCurrentWorkspace(ctx context.Context) (json.RawMessage, error)
}

// UserAPI is the user slice of the Clockify client.
type UserAPI interface {
	GetCurrentUser(ctx context.Context) (json.RawMessage, error)
	ListWorkspaceUsers(ctx context.Context, workspaceID string, params clockify.UserListParams) (json.RawMessage, error)
	GetUser(ctx context.Context, workspaceID, userID string) (json.RawMessage, error)
}

// ProjectAPI is the project slice of the Clockify client.
type ProjectAPI interface {
	ListProjects(ctx context.Context, workspaceID string, params clockify.ProjectListParams) (json.RawMessage, error)
	GetProject(ctx context.Context, workspaceID, projectID string) (json.RawMessage, error)
	CreateProject(ctx context.Context, workspaceID string, req clockify.ProjectRequest) (json.RawMessage, error)
	UpdateProject(ctx context.Context, workspaceID, projectID string, req clockify.ProjectUpdate) (json.RawMessage, error)
	DeleteProject(ctx context.Context, workspaceID, projectID string) error
	AddProjectMember(ctx context.Context, workspaceID, projectID string, req clockify.MembershipRequest) (json.RawMessage, error)
}

// TaskAPI is the task slice of the Clockify client.
type TaskAPI interface {
	ListTasks(ctx context.Context, workspaceID, projectID string, params clockify.TaskListParams) (json.RawMessage, error)
	GetTask(ctx context.Context, workspaceID, projectID, taskID string) (json.RawMessage, error)
	CreateTask(ctx context.Context, workspaceID, projectID string, req clockify.TaskRequest) (json.RawMessage, error)
	UpdateTask(ctx context.Context, workspaceID, projectID, taskID string, req clockify.TaskUpdate) (json.RawMessage, error)
	DeleteTask(ctx context.Context, workspaceID, projectID, taskID string) error
}

// ClientAPI is the billing-client slice of the Clockify client.
type ClientAPI interface {
	ListClients(ctx context.Context, workspaceID string, params clockify.ClientListParams) (json.RawMessage, error)
	GetClient(ctx context.Context, workspaceID, clientID string) (json.RawMessage, error)
	CreateClient(ctx context.Context, workspaceID string, req clockify.ClientRequest) (json.RawMessage, error)
	DeleteClient(ctx context.Context, workspaceID, clientID string) error
}

// TagAPI is the tag slice of the Clockify client.
type TagAPI interface {
	ListTags(ctx context.Context, workspaceID string, params clockify.TagListParams) (json.RawMessage, error)
	GetTag(ctx context.Context, workspaceID, tagID string) (json.RawMessage, error)
	CreateTag(ctx context.Context, workspaceID string, req clockify.TagRequest) (json.RawMessage, error)
	DeleteTag(ctx context.Context, workspaceID, tagID string) error
}

// TimeEntryAPI is the time entry and timer slice of the Clockify client.
type TimeEntryAPI interface {
	ListTimeEntries(ctx context.Context, workspaceID, userID string, params clockify.TimeEntryListParams) (json.RawMessage, error)
	GetTimeEntry(ctx context.Context, workspaceID, entryID string) (json.RawMessage, error)
	CreateTimeEntry(ctx context.Context, workspaceID string, req clockify.TimeEntryRequest) (json.RawMessage, error)
	UpdateTimeEntry(ctx context.Context, workspaceID, entryID string, req clockify.TimeEntryUpdate) (json.RawMessage, error)
	DeleteTimeEntry(ctx context.Context, workspaceID, entryID string) error
	StartTimer(ctx context.Context, workspaceID string, req clockify.TimerRequest) (json.RawMessage, error)
	StopTimer(ctx context.Context, workspaceID, userID string) (json.RawMessage, error)
	GetRunningTimer(ctx context.Context, workspaceID, userID string) (json.RawMessage, error)
}

// ReportAPI is the reports slice of the Clockify client.
type ReportAPI interface {
	GetDetailedReport(ctx context.Context, workspaceID string, req clockify.DetailedReportRequest) (json.RawMessage, error)
	GetSummaryReport(ctx context.Context, workspaceID string, req clockify.SummaryReportRequest) (json.RawMessage, error)
	GetWeeklyReport(ctx context.Context, workspaceID string, req clockify.WeeklyReportRequest) (json.RawMessage, error)
	ListSharedReports(ctx context.Context, workspaceID string) (json.RawMessage, error)
}

// API is everything the tools need from Clockify.
type API interface {
	WorkspaceAPI
	UserAPI
	ProjectAPI
	TaskAPI
	ClientAPI
	TagAPI
	TimeEntryAPI
	ReportAPI
}

var _ API = (*clockify.Client)(nil)
