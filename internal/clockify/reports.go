package clockify

import (
	"context"
	"encoding/json"
	"net/http"
)

// Default detailed report pagination, applied when only one of page and
// page size is given.
const (
	DefaultReportPage     = 1
	DefaultReportPageSize = 50
)

// EntityFilter narrows a report to (or away from) a set of entities.
type EntityFilter struct {
	IDs      []string       `json:"ids,omitempty"      jsonschema:"entity IDs to filter on"`
	Contains FilterContains `json:"contains,omitempty" jsonschema:"whether to include or exclude the IDs"`
	Status   FilterStatus   `json:"status,omitempty"   jsonschema:"entity status filter"`
}

// ReportFilters are the fields shared by every report request.
type ReportFilters struct {
	DateRangeStart     string         `json:"dateRangeStart"`
	DateRangeEnd       string         `json:"dateRangeEnd"`
	Description        string         `json:"description,omitempty"`
	Rounding           *bool          `json:"rounding,omitempty"`
	WithoutDescription *bool          `json:"withoutDescription,omitempty"`
	Users              *EntityFilter  `json:"users,omitempty"`
	Clients            *EntityFilter  `json:"clients,omitempty"`
	Projects           *EntityFilter  `json:"projects,omitempty"`
	Tasks              *EntityFilter  `json:"tasks,omitempty"`
	Tags               *EntityFilter  `json:"tags,omitempty"`
	Billable           BillableFilter `json:"billable,omitempty"`
}

// DetailedFilter paginates a detailed report.
type DetailedFilter struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	SortColumn string `json:"sortColumn,omitempty"`
}

// NewDetailedFilter returns nil when neither page nor pageSize is given.
// Otherwise the missing one takes its default.
func NewDetailedFilter(page, pageSize *int) *DetailedFilter {
	if page == nil && pageSize == nil {
		return nil
	}
	filter := &DetailedFilter{Page: DefaultReportPage, PageSize: DefaultReportPageSize}
	if page != nil {
		filter.Page = *page
	}
	if pageSize != nil {
		filter.PageSize = *pageSize
	}
	return filter
}

// DetailedReportRequest is the body of a detailed report.
type DetailedReportRequest struct {
	ReportFilters
	SortOrder      SortOrder       `json:"sortOrder,omitempty"`
	AmountShown    AmountShown     `json:"amountShown,omitempty"`
	ApprovalState  ApprovalState   `json:"approvalState,omitempty"`
	InvoicingState InvoicingState  `json:"invoicingState,omitempty"`
	DetailedFilter *DetailedFilter `json:"detailedFilter,omitempty"`
}

// SummaryFilter groups a summary report.
type SummaryFilter struct {
	Groups     []string `json:"groups"`
	SortColumn string   `json:"sortColumn,omitempty"`
}

// NewSummaryFilter returns nil only for a nil groups slice; an empty,
// non-nil slice still yields a filter.
func NewSummaryFilter(groups []string) *SummaryFilter {
	if groups == nil {
		return nil
	}
	return &SummaryFilter{Groups: groups}
}

// SummaryReportRequest is the body of a summary report.
type SummaryReportRequest struct {
	ReportFilters
	SortOrder      SortOrder      `json:"sortOrder,omitempty"`
	AmountShown    AmountShown    `json:"amountShown,omitempty"`
	ApprovalState  ApprovalState  `json:"approvalState,omitempty"`
	InvoicingState InvoicingState `json:"invoicingState,omitempty"`
	SummaryFilter  *SummaryFilter `json:"summaryFilter,omitempty"`
}

// WeeklyFilter groups a weekly report.
type WeeklyFilter struct {
	Group    string `json:"group"`
	Subgroup string `json:"subgroup,omitempty"`
}

// NewWeeklyFilter returns nil when group is empty.
func NewWeeklyFilter(group, subgroup string) *WeeklyFilter {
	if group == "" {
		return nil
	}
	return &WeeklyFilter{Group: group, Subgroup: subgroup}
}

// WeeklyReportRequest is the body of a weekly report.
type WeeklyReportRequest struct {
	ReportFilters
	WeeklyFilter *WeeklyFilter `json:"weeklyFilter,omitempty"`
}

// GetDetailedReport runs a detailed report.
func (c *Client) GetDetailedReport(ctx context.Context, workspaceID string, req DetailedReportRequest) (json.RawMessage, error) {
	return c.runReport(ctx, workspaceID, "detailed", req)
}

// GetSummaryReport runs a summary report.
func (c *Client) GetSummaryReport(ctx context.Context, workspaceID string, req SummaryReportRequest) (json.RawMessage, error) {
	return c.runReport(ctx, workspaceID, "summary", req)
}

// GetWeeklyReport runs a weekly report.
func (c *Client) GetWeeklyReport(ctx context.Context, workspaceID string, req WeeklyReportRequest) (json.RawMessage, error) {
	return c.runReport(ctx, workspaceID, "weekly", req)
}

func (c *Client) runReport(ctx context.Context, workspaceID, kind string, body any) (json.RawMessage, error) {
	return c.reports.call(ctx, http.MethodPost, workspacePath(workspaceID, "reports", kind), nil, body)
}

// ListSharedReports lists the shared reports of a workspace.
func (c *Client) ListSharedReports(ctx context.Context, workspaceID string) (json.RawMessage, error) {
	return c.reports.call(ctx, http.MethodGet, workspacePath(workspaceID, "shared-reports"), nil, nil)
}
