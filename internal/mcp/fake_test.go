package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// apiCall is one recorded call on fakeAPI.
type apiCall struct {
	Method string
	Args   []any
}

// fakeAPI records every call and answers with canned values.
type fakeAPI struct {
	mu    sync.Mutex
	calls []apiCall

	err     error
	running json.RawMessage
}

var _ API = (*fakeAPI)(nil)

// rawf formats a canned JSON response; use %q for string values.
func rawf(format string, args ...any) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(format, args...))
}

func (f *fakeAPI) record(method string, args ...any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, apiCall{Method: method, Args: args})
	return f.err
}

func (f *fakeAPI) Calls() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

func (f *fakeAPI) ListWorkspaces(_ context.Context) (json.RawMessage, error) {
	if err := f.record("ListWorkspaces"); err != nil {
		return nil, err
	}
	return json.RawMessage(`[{"id":"ws1","name":"Acme"}]`), nil
}

func (f *fakeAPI) GetWorkspace(_ context.Context, workspaceID string) (json.RawMessage, error) {
	if err := f.record("GetWorkspace", workspaceID); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q,"name":"Acme"}`, workspaceID), nil
}

func (f *fakeAPI) GetCurrentWorkspace(_ context.Context) (json.RawMessage, error) {
	if err := f.record("GetCurrentWorkspace"); err != nil {
		return nil, err
	}
	return json.RawMessage(`{"id":"ws1","name":"Acme"}`), nil
}

func (f *fakeAPI) GetCurrentUser(_ context.Context) (json.RawMessage, error) {
	if err := f.record("GetCurrentUser"); err != nil {
		return nil, err
	}
	return json.RawMessage(`{"id":"u1","name":"Jane Doe"}`), nil
}

func (f *fakeAPI) ListWorkspaceUsers(_ context.Context, workspaceID string, params clockify.UserListParams) (json.RawMessage, error) {
	if err := f.record("ListWorkspaceUsers", workspaceID, params); err != nil {
		return nil, err
	}
	return json.RawMessage(`[]`), nil
}

func (f *fakeAPI) GetUser(_ context.Context, workspaceID, userID string) (json.RawMessage, error) {
	if err := f.record("GetUser", workspaceID, userID); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q}`, userID), nil
}

func (f *fakeAPI) ListProjects(_ context.Context, workspaceID string, params clockify.ProjectListParams) (json.RawMessage, error) {
	if err := f.record("ListProjects", workspaceID, params); err != nil {
		return nil, err
	}
	return json.RawMessage(`[]`), nil
}

func (f *fakeAPI) GetProject(_ context.Context, workspaceID, projectID string) (json.RawMessage, error) {
	if err := f.record("GetProject", workspaceID, projectID); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q}`, projectID), nil
}

func (f *fakeAPI) CreateProject(_ context.Context, workspaceID string, req clockify.ProjectRequest) (json.RawMessage, error) {
	if err := f.record("CreateProject", workspaceID, req); err != nil {
		return nil, err
	}
	return rawf(`{"id":"p1","name":%q}`, req.Name), nil
}

func (f *fakeAPI) UpdateProject(_ context.Context, workspaceID, projectID string, req clockify.ProjectUpdate) (json.RawMessage, error) {
	if err := f.record("UpdateProject", workspaceID, projectID, req); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q,"name":%q}`, projectID, req.Name), nil
}

func (f *fakeAPI) DeleteProject(_ context.Context, workspaceID, projectID string) error {
	return f.record("DeleteProject", workspaceID, projectID)
}

func (f *fakeAPI) AddProjectMember(_ context.Context, workspaceID, projectID string, req clockify.MembershipRequest) (json.RawMessage, error) {
	if err := f.record("AddProjectMember", workspaceID, projectID, req); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q}`, projectID), nil
}

func (f *fakeAPI) ListTasks(_ context.Context, workspaceID, projectID string, params clockify.TaskListParams) (json.RawMessage, error) {
	if err := f.record("ListTasks", workspaceID, projectID, params); err != nil {
		return nil, err
	}
	return json.RawMessage(`[]`), nil
}

func (f *fakeAPI) GetTask(_ context.Context, workspaceID, projectID, taskID string) (json.RawMessage, error) {
	if err := f.record("GetTask", workspaceID, projectID, taskID); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q}`, taskID), nil
}

func (f *fakeAPI) CreateTask(_ context.Context, workspaceID, projectID string, req clockify.TaskRequest) (json.RawMessage, error) {
	if err := f.record("CreateTask", workspaceID, projectID, req); err != nil {
		return nil, err
	}
	return rawf(`{"id":"t1","name":%q}`, req.Name), nil
}

func (f *fakeAPI) UpdateTask(_ context.Context, workspaceID, projectID, taskID string, req clockify.TaskUpdate) (json.RawMessage, error) {
	if err := f.record("UpdateTask", workspaceID, projectID, taskID, req); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q}`, taskID), nil
}

func (f *fakeAPI) DeleteTask(_ context.Context, workspaceID, projectID, taskID string) error {
	return f.record("DeleteTask", workspaceID, projectID, taskID)
}

func (f *fakeAPI) ListClients(_ context.Context, workspaceID string, params clockify.ClientListParams) (json.RawMessage, error) {
	if err := f.record("ListClients", workspaceID, params); err != nil {
		return nil, err
	}
	return json.RawMessage(`[]`), nil
}

func (f *fakeAPI) GetClient(_ context.Context, workspaceID, clientID string) (json.RawMessage, error) {
	if err := f.record("GetClient", workspaceID, clientID); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q}`, clientID), nil
}

func (f *fakeAPI) CreateClient(_ context.Context, workspaceID string, req clockify.ClientRequest) (json.RawMessage, error) {
	if err := f.record("CreateClient", workspaceID, req); err != nil {
		return nil, err
	}
	return rawf(`{"id":"c1","name":%q}`, req.Name), nil
}

func (f *fakeAPI) DeleteClient(_ context.Context, workspaceID, clientID string) error {
	return f.record("DeleteClient", workspaceID, clientID)
}

func (f *fakeAPI) ListTags(_ context.Context, workspaceID string, params clockify.TagListParams) (json.RawMessage, error) {
	if err := f.record("ListTags", workspaceID, params); err != nil {
		return nil, err
	}
	return json.RawMessage(`[]`), nil
}

func (f *fakeAPI) GetTag(_ context.Context, workspaceID, tagID string) (json.RawMessage, error) {
	if err := f.record("GetTag", workspaceID, tagID); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q}`, tagID), nil
}

func (f *fakeAPI) CreateTag(_ context.Context, workspaceID string, req clockify.TagRequest) (json.RawMessage, error) {
	if err := f.record("CreateTag", workspaceID, req); err != nil {
		return nil, err
	}
	return rawf(`{"id":"tag1","name":%q}`, req.Name), nil
}

func (f *fakeAPI) DeleteTag(_ context.Context, workspaceID, tagID string) error {
	return f.record("DeleteTag", workspaceID, tagID)
}

func (f *fakeAPI) ListTimeEntries(_ context.Context, workspaceID, userID string, params clockify.TimeEntryListParams) (json.RawMessage, error) {
	if err := f.record("ListTimeEntries", workspaceID, userID, params); err != nil {
		return nil, err
	}
	return json.RawMessage(`[]`), nil
}

func (f *fakeAPI) GetTimeEntry(_ context.Context, workspaceID, entryID string) (json.RawMessage, error) {
	if err := f.record("GetTimeEntry", workspaceID, entryID); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q}`, entryID), nil
}

func (f *fakeAPI) CreateTimeEntry(_ context.Context, workspaceID string, req clockify.TimeEntryRequest) (json.RawMessage, error) {
	if err := f.record("CreateTimeEntry", workspaceID, req); err != nil {
		return nil, err
	}
	return rawf(`{"id":"te1","description":%q}`, req.Description), nil
}

func (f *fakeAPI) UpdateTimeEntry(_ context.Context, workspaceID, entryID string, req clockify.TimeEntryUpdate) (json.RawMessage, error) {
	if err := f.record("UpdateTimeEntry", workspaceID, entryID, req); err != nil {
		return nil, err
	}
	return rawf(`{"id":%q}`, entryID), nil
}

func (f *fakeAPI) DeleteTimeEntry(_ context.Context, workspaceID, entryID string) error {
	return f.record("DeleteTimeEntry", workspaceID, entryID)
}

func (f *fakeAPI) StartTimer(_ context.Context, workspaceID string, req clockify.TimerRequest) (json.RawMessage, error) {
	if err := f.record("StartTimer", workspaceID, req); err != nil {
		return nil, err
	}
	return rawf(`{"id":"te-running","description":%q}`, req.Description), nil
}

func (f *fakeAPI) StopTimer(_ context.Context, workspaceID, userID string) (json.RawMessage, error) {
	if err := f.record("StopTimer", workspaceID, userID); err != nil {
		return nil, err
	}
	return json.RawMessage(`{"id":"te-running"}`), nil
}

func (f *fakeAPI) GetRunningTimer(_ context.Context, workspaceID, userID string) (json.RawMessage, error) {
	if err := f.record("GetRunningTimer", workspaceID, userID); err != nil {
		return nil, err
	}
	return f.running, nil
}

func (f *fakeAPI) GetDetailedReport(_ context.Context, workspaceID string, req clockify.DetailedReportRequest) (json.RawMessage, error) {
	if err := f.record("GetDetailedReport", workspaceID, req); err != nil {
		return nil, err
	}
	return json.RawMessage(`{}`), nil
}

func (f *fakeAPI) GetSummaryReport(_ context.Context, workspaceID string, req clockify.SummaryReportRequest) (json.RawMessage, error) {
	if err := f.record("GetSummaryReport", workspaceID, req); err != nil {
		return nil, err
	}
	return json.RawMessage(`{}`), nil
}

func (f *fakeAPI) GetWeeklyReport(_ context.Context, workspaceID string, req clockify.WeeklyReportRequest) (json.RawMessage, error) {
	if err := f.record("GetWeeklyReport", workspaceID, req); err != nil {
		return nil, err
	}
	return json.RawMessage(`{}`), nil
}

func (f *fakeAPI) ListSharedReports(_ context.Context, workspaceID string) (json.RawMessage, error) {
	if err := f.record("ListSharedReports", workspaceID); err != nil {
		return nil, err
	}
	return json.RawMessage(`{"reports":[],"count":0}`), nil
}
