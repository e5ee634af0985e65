package clockify

import (
	"net/url"
	"strconv"
)

// Query parameter helpers. Strings and ints are sent only when non-zero,
// booleans only when explicitly set.

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setInt(q url.Values, key string, value int) {
	if value != 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

func setBool(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}

// Pagination is the page pair shared by list endpoints.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) apply(q url.Values) {
	setInt(q, "page", p.Page)
	setInt(q, "page-size", p.PageSize)
}

// UserListParams filters ListWorkspaceUsers.
type UserListParams struct {
	Email  string
	Status UserStatus
	Pagination
}

func (p UserListParams) values() url.Values {
	q := url.Values{}
	setString(q, "email", p.Email)
	setString(q, "status", string(p.Status))
	p.Pagination.apply(q)
	return q
}

// ProjectListParams filters ListProjects.
type ProjectListParams struct {
	Name     string
	Archived *bool
	ClientID string
	Billable *bool
	Pagination
}

func (p ProjectListParams) values() url.Values {
	q := url.Values{}
	setString(q, "name", p.Name)
	setBool(q, "archived", p.Archived)
	// Clockify filters projects by client under the plural key "clients".
	setString(q, "clients", p.ClientID)
	setBool(q, "billable", p.Billable)
	p.Pagination.apply(q)
	return q
}

// TaskListParams filters ListTasks.
type TaskListParams struct {
	Name     string
	IsActive *bool
	Strict   *bool
	Pagination
}

func (p TaskListParams) values() url.Values {
	q := url.Values{}
	setString(q, "name", p.Name)
	setBool(q, "is-active", p.IsActive)
	setBool(q, "strict-name-search", p.Strict)
	p.Pagination.apply(q)
	return q
}

// ClientListParams filters ListClients.
type ClientListParams struct {
	Name     string
	Archived *bool
	Pagination
}

func (p ClientListParams) values() url.Values {
	q := url.Values{}
	setString(q, "name", p.Name)
	setBool(q, "archived", p.Archived)
	p.Pagination.apply(q)
	return q
}

// TagListParams filters ListTags.
type TagListParams struct {
	Name     string
	Archived *bool
	Pagination
}

func (p TagListParams) values() url.Values {
	q := url.Values{}
	setString(q, "name", p.Name)
	setBool(q, "archived", p.Archived)
	p.Pagination.apply(q)
	return q
}

// TimeEntryListParams filters ListTimeEntries.
type TimeEntryListParams struct {
	Description     string
	Start           string
	End             string
	Project         string
	Task            string
	Tags            []string
	ProjectRequired *bool
	TaskRequired    *bool
	Hydrated        *bool
	InProgress      *bool
	Pagination
}

func (p TimeEntryListParams) values() url.Values {
	q := url.Values{}
	setString(q, "description", p.Description)
	setString(q, "start", p.Start)
	setString(q, "end", p.End)
	setString(q, "project", p.Project)
	setString(q, "task", p.Task)
	for _, tag := range p.Tags {
		q.Add("tags", tag)
	}
	setBool(q, "project-required", p.ProjectRequired)
	setBool(q, "task-required", p.TaskRequired)
	setBool(q, "hydrated", p.Hydrated)
	setBool(q, "in-progress", p.InProgress)
	p.Pagination.apply(q)
	return q
}

// ProjectRequest is the body of CreateProject.
type ProjectRequest struct {
	Name       string     `json:"name"`
	ClientID   string     `json:"clientId,omitempty"`
	IsPublic   *bool      `json:"isPublic,omitempty"`
	Billable   *bool      `json:"billable,omitempty"`
	Color      string     `json:"color,omitempty"`
	Note       string     `json:"note,omitempty"`
	HourlyRate *RateInput `json:"hourlyRate,omitempty"`
	Estimate   *Estimate  `json:"estimate,omitempty"`
}

// ProjectUpdate is the body of UpdateProject. Unset fields are left alone.
type ProjectUpdate struct {
	Name       string     `json:"name,omitempty"`
	ClientID   string     `json:"clientId,omitempty"`
	IsPublic   *bool      `json:"isPublic,omitempty"`
	Billable   *bool      `json:"billable,omitempty"`
	Color      string     `json:"color,omitempty"`
	Note       string     `json:"note,omitempty"`
	Archived   *bool      `json:"archived,omitempty"`
	HourlyRate *RateInput `json:"hourlyRate,omitempty"`
	Estimate   *Estimate  `json:"estimate,omitempty"`
}

// MembershipRequest is the body of AddProjectMember.
type MembershipRequest struct {
	UserID           string           `json:"userId"`
	HourlyRate       *RateInput       `json:"hourlyRate,omitempty"`
	CostRate         *RateInput       `json:"costRate,omitempty"`
	MembershipType   MembershipType   `json:"membershipType,omitempty"`
	MembershipStatus MembershipStatus `json:"membershipStatus,omitempty"`
}

// TaskRequest is the body of CreateTask.
type TaskRequest struct {
	Name        string     `json:"name"`
	AssigneeIDs []string   `json:"assigneeIds,omitempty"`
	Estimate    string     `json:"estimate,omitempty"`
	Status      TaskStatus `json:"status,omitempty"`
	Billable    *bool      `json:"billable,omitempty"`
	HourlyRate  *RateInput `json:"hourlyRate,omitempty"`
}

// TaskUpdate is the body of UpdateTask.
type TaskUpdate struct {
	Name        string     `json:"name,omitempty"`
	AssigneeIDs []string   `json:"assigneeIds,omitempty"`
	Estimate    string     `json:"estimate,omitempty"`
	Status      TaskStatus `json:"status,omitempty"`
	Billable    *bool      `json:"billable,omitempty"`
	HourlyRate  *RateInput `json:"hourlyRate,omitempty"`
}

// ClientRequest is the body of CreateClient.
type ClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Note    string `json:"note,omitempty"`
}

// TagRequest is the body of CreateTag.
type TagRequest struct {
	Name string `json:"name"`
}

// TimeEntryRequest is the body of CreateTimeEntry.
type TimeEntryRequest struct {
	Start        string             `json:"start"`
	End          string             `json:"end,omitempty"`
	Description  string             `json:"description,omitempty"`
	ProjectID    string             `json:"projectId,omitempty"`
	TaskID       string             `json:"taskId,omitempty"`
	TagIDs       []string           `json:"tagIds,omitempty"`
	Billable     *bool              `json:"billable,omitempty"`
	CustomFields []CustomFieldValue `json:"customFields,omitempty"`
}

// TimeEntryUpdate is the body of UpdateTimeEntry.
type TimeEntryUpdate struct {
	Start        string             `json:"start,omitempty"`
	End          string             `json:"end,omitempty"`
	Description  string             `json:"description,omitempty"`
	ProjectID    string             `json:"projectId,omitempty"`
	TaskID       string             `json:"taskId,omitempty"`
	TagIDs       []string           `json:"tagIds,omitempty"`
	Billable     *bool              `json:"billable,omitempty"`
	CustomFields []CustomFieldValue `json:"customFields,omitempty"`
}

// TimerRequest starts a running entry. An empty Start means now.
type TimerRequest struct {
	Start       string   `json:"start,omitempty"`
	Description string   `json:"description,omitempty"`
	ProjectID   string   `json:"projectId,omitempty"`
	TaskID      string   `json:"taskId,omitempty"`
	TagIDs      []string `json:"tagIds,omitempty"`
	Billable    *bool    `json:"billable,omitempty"`
}
