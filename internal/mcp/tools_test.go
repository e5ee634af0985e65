package mcp

import (
	"reflect"
	"testing"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

func boolRef(b bool) *bool { return &b }

func intRef(i int) *int { return &i }

func TestListInputs_Params(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{
			name: "users",
			got: ListUsersInput{
				WorkspaceID: "ws1",
				Email:       "jane@example.com",
				Status:      clockify.UserPending,
				PageInput:   PageInput{Page: 2, PageSize: 10},
			}.params(),
			want: clockify.UserListParams{
				Email:      "jane@example.com",
				Status:     clockify.UserPending,
				Pagination: clockify.Pagination{Page: 2, PageSize: 10},
			},
		},
		{
			name: "projects",
			got: ListProjectsInput{
				WorkspaceID: "ws1",
				Name:        "Website",
				Archived:    boolRef(false),
				ClientID:    "c1",
				Billable:    boolRef(true),
			}.params(),
			want: clockify.ProjectListParams{
				Name:     "Website",
				Archived: boolRef(false),
				ClientID: "c1",
				Billable: boolRef(true),
			},
		},
		{
			name: "tasks",
			got: ListTasksInput{
				WorkspaceID: "ws1",
				ProjectID:   "p1",
				IsActive:    boolRef(true),
				Name:        "Review",
				Strict:      boolRef(true),
				PageInput:   PageInput{PageSize: 100},
			}.params(),
			want: clockify.TaskListParams{
				Name:       "Review",
				IsActive:   boolRef(true),
				Strict:     boolRef(true),
				Pagination: clockify.Pagination{PageSize: 100},
			},
		},
		{
			name: "clients",
			got:  ListClientsInput{WorkspaceID: "ws1", Name: "Acme", Archived: boolRef(true)}.params(),
			want: clockify.ClientListParams{Name: "Acme", Archived: boolRef(true)},
		},
		{
			name: "tags",
			got:  ListTagsInput{WorkspaceID: "ws1", Name: "urgent", PageInput: PageInput{Page: 3}}.params(),
			want: clockify.TagListParams{Name: "urgent", Pagination: clockify.Pagination{Page: 3}},
		},
		{
			name: "time entries",
			got: ListTimeEntriesInput{
				WorkspaceID:     "ws1",
				UserID:          "u1",
				Description:     "standup",
				Start:           "2026-10-01T00:00:00Z",
				End:             "2026-10-31T23:59:59Z",
				Project:         "p1",
				Task:            "t1",
				Tags:            []string{"tag1", "tag2"},
				ProjectRequired: boolRef(true),
				TaskRequired:    boolRef(false),
				Hydrated:        boolRef(true),
				InProgress:      boolRef(false),
			}.params(),
			want: clockify.TimeEntryListParams{
				Description:     "standup",
				Start:           "2026-10-01T00:00:00Z",
				End:             "2026-10-31T23:59:59Z",
				Project:         "p1",
				Task:            "t1",
				Tags:            []string{"tag1", "tag2"},
				ProjectRequired: boolRef(true),
				TaskRequired:    boolRef(false),
				Hydrated:        boolRef(true),
				InProgress:      boolRef(false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("params() = %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestWriteInputs_Request(t *testing.T) {
	rate := &clockify.RateInput{Amount: 5000, Currency: "EUR"}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{
			name: "create project",
			got: CreateProjectInput{
				WorkspaceID: "ws1",
				Name:        "Website",
				ClientID:    "c1",
				IsPublic:    boolRef(true),
				Color:       "#FF0000",
				HourlyRate:  rate,
			}.request(),
			want: clockify.ProjectRequest{
				Name:       "Website",
				ClientID:   "c1",
				IsPublic:   boolRef(true),
				Color:      "#FF0000",
				HourlyRate: rate,
			},
		},
		{
			name: "update project",
			got:  UpdateProjectInput{WorkspaceID: "ws1", ProjectID: "p1", Archived: boolRef(true)}.request(),
			want: clockify.ProjectUpdate{Archived: boolRef(true)},
		},
		{
			name: "add member",
			got: AddProjectMemberInput{
				WorkspaceID:      "ws1",
				ProjectID:        "p1",
				UserID:           "u1",
				CostRate:         rate,
				MembershipType:   clockify.MembershipManager,
				MembershipStatus: clockify.MembershipActive,
			}.request(),
			want: clockify.MembershipRequest{
				UserID:           "u1",
				CostRate:         rate,
				MembershipType:   clockify.MembershipManager,
				MembershipStatus: clockify.MembershipActive,
			},
		},
		{
			name: "create task",
			got: CreateTaskInput{
				WorkspaceID: "ws1",
				ProjectID:   "p1",
				Name:        "Review",
				AssigneeIDs: []string{"u1"},
				Estimate:    "PT1H30M",
				Status:      clockify.TaskActive,
			}.request(),
			want: clockify.TaskRequest{
				Name:        "Review",
				AssigneeIDs: []string{"u1"},
				Estimate:    "PT1H30M",
				Status:      clockify.TaskActive,
			},
		},
		{
			name: "update task",
			got:  UpdateTaskInput{WorkspaceID: "ws1", ProjectID: "p1", TaskID: "t1", Status: clockify.TaskDone}.request(),
			want: clockify.TaskUpdate{Status: clockify.TaskDone},
		},
		{
			name: "create client",
			got:  CreateClientInput{WorkspaceID: "ws1", Name: "Acme", Email: "billing@acme.test", Note: "net 30"}.request(),
			want: clockify.ClientRequest{Name: "Acme", Email: "billing@acme.test", Note: "net 30"},
		},
		{
			name: "create time entry",
			got: CreateTimeEntryInput{
				WorkspaceID: "ws1",
				Start:       "2026-10-19T09:00:00Z",
				End:         "2026-10-19T10:00:00Z",
				ProjectID:   "p1",
				TagIDs:      []string{"tag1"},
				Billable:    boolRef(true),
			}.request(),
			want: clockify.TimeEntryRequest{
				Start:     "2026-10-19T09:00:00Z",
				End:       "2026-10-19T10:00:00Z",
				ProjectID: "p1",
				TagIDs:    []string{"tag1"},
				Billable:  boolRef(true),
			},
		},
		{
			name: "update time entry",
			got:  UpdateTimeEntryInput{WorkspaceID: "ws1", TimeEntryID: "te1", Description: "renamed"}.request(),
			want: clockify.TimeEntryUpdate{Description: "renamed"},
		},
		{
			name: "start timer",
			got:  StartTimerInput{WorkspaceID: "ws1", Description: "Pairing", TaskID: "t1"}.request(),
			want: clockify.TimerRequest{Description: "Pairing", TaskID: "t1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("request() = %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestDetailedReportInput_Pagination(t *testing.T) {
	tests := []struct {
		name     string
		page     *int
		pageSize *int
		want     *clockify.DetailedFilter
	}{
		{name: "neither", want: nil},
		{name: "page only", page: intRef(3), want: &clockify.DetailedFilter{Page: 3, PageSize: 50}},
		{name: "size only", pageSize: intRef(200), want: &clockify.DetailedFilter{Page: 1, PageSize: 200}},
		{name: "both", page: intRef(2), pageSize: intRef(25), want: &clockify.DetailedFilter{Page: 2, PageSize: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := DetailedReportInput{Page: tt.page, PageSize: tt.pageSize}
			got := input.request().DetailedFilter
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetailedFilter = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReportInputs_Request(t *testing.T) {
	filter := ReportFilterInput{
		WorkspaceID:    "ws1",
		DateRangeStart: "2026-10-01T00:00:00Z",
		DateRangeEnd:   "2026-10-31T23:59:59Z",
		Projects: &clockify.EntityFilter{
			IDs:      []string{"p1"},
			Contains: clockify.DoesNotContain,
			Status:   clockify.FilterActive,
		},
		Billable: clockify.BillableOnly,
	}

	summary := SummaryReportInput{
		ReportFilterInput: filter,
		ReportViewInput:   ReportViewInput{SortOrder: clockify.SortDescending, AmountShown: clockify.AmountEarned},
		Groups:            []string{"USER", "PROJECT"},
	}.request()
	if summary.SummaryFilter == nil || !reflect.DeepEqual(summary.SummaryFilter.Groups, []string{"USER", "PROJECT"}) {
		t.Errorf("SummaryFilter = %+v, want groups [USER PROJECT]", summary.SummaryFilter)
	}
	if summary.SortOrder != clockify.SortDescending || summary.AmountShown != clockify.AmountEarned {
		t.Errorf("view = %q/%q, want DESCENDING/EARNED", summary.SortOrder, summary.AmountShown)
	}
	if summary.Projects == nil || summary.Projects.Contains != clockify.DoesNotContain {
		t.Errorf("Projects = %+v, want DOES_NOT_CONTAIN filter", summary.Projects)
	}
	if summary.Billable != clockify.BillableOnly {
		t.Errorf("Billable = %q, want %q", summary.Billable, clockify.BillableOnly)
	}

	noGroups := SummaryReportInput{ReportFilterInput: filter}.request()
	if noGroups.SummaryFilter != nil {
		t.Errorf("SummaryFilter = %+v, want nil without groups", noGroups.SummaryFilter)
	}

	weekly := WeeklyReportInput{ReportFilterInput: filter, Group: "PROJECT", Subgroup: "TIME"}.request()
	if weekly.WeeklyFilter == nil || weekly.WeeklyFilter.Group != "PROJECT" || weekly.WeeklyFilter.Subgroup != "TIME" {
		t.Errorf("WeeklyFilter = %+v, want PROJECT/TIME", weekly.WeeklyFilter)
	}
	if weekly.DateRangeStart != filter.DateRangeStart || weekly.DateRangeEnd != filter.DateRangeEnd {
		t.Errorf("date range = %q..%q, want %q..%q",
			weekly.DateRangeStart, weekly.DateRangeEnd, filter.DateRangeStart, filter.DateRangeEnd)
	}

	subgroupOnly := WeeklyReportInput{ReportFilterInput: filter, Subgroup: "TIME"}.request()
	if subgroupOnly.WeeklyFilter != nil {
		t.Errorf("WeeklyFilter = %+v, want nil without group", subgroupOnly.WeeklyFilter)
	}
}
