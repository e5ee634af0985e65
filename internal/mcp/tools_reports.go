package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// ReportFilterInput holds the filters every report accepts.
type ReportFilterInput struct {
	WorkspaceID        string                  `json:"workspaceId"                  jsonschema:"The workspace ID"`
	DateRangeStart     string                  `json:"dateRangeStart"               jsonschema:"Start date (ISO 8601 format)"`
	DateRangeEnd       string                  `json:"dateRangeEnd"                 jsonschema:"End date (ISO 8601 format)"`
	Description        string                  `json:"description,omitempty"        jsonschema:"Filter by description"`
	Rounding           *bool                   `json:"rounding,omitempty"           jsonschema:"Apply workspace rounding"`
	WithoutDescription *bool                   `json:"withoutDescription,omitempty" jsonschema:"Only entries without a description"`
	Users              *clockify.EntityFilter  `json:"users,omitempty"              jsonschema:"Filter by users"`
	Clients            *clockify.EntityFilter  `json:"clients,omitempty"            jsonschema:"Filter by clients"`
	Projects           *clockify.EntityFilter  `json:"projects,omitempty"           jsonschema:"Filter by projects"`
	Tasks              *clockify.EntityFilter  `json:"tasks,omitempty"              jsonschema:"Filter by tasks"`
	Tags               *clockify.EntityFilter  `json:"tags,omitempty"               jsonschema:"Filter by tags"`
	Billable           clockify.BillableFilter `json:"billable,omitempty"           jsonschema:"Filter by billable status"`
}

func (in ReportFilterInput) filters() clockify.ReportFilters {
	return clockify.ReportFilters{
		DateRangeStart:     in.DateRangeStart,
		DateRangeEnd:       in.DateRangeEnd,
		Description:        in.Description,
		Rounding:           in.Rounding,
		WithoutDescription: in.WithoutDescription,
		Users:              in.Users,
		Clients:            in.Clients,
		Projects:           in.Projects,
		Tasks:              in.Tasks,
		Tags:               in.Tags,
		Billable:           in.Billable,
	}
}

// ReportViewInput holds ordering and amount options of detailed and summary reports.
type ReportViewInput struct {
	SortOrder      clockify.SortOrder      `json:"sortOrder,omitempty"      jsonschema:"Sort order"`
	AmountShown    clockify.AmountShown    `json:"amountShown,omitempty"    jsonschema:"Which amount to show"`
	ApprovalState  clockify.ApprovalState  `json:"approvalState,omitempty"  jsonschema:"Filter by approval state"`
	InvoicingState clockify.InvoicingState `json:"invoicingState,omitempty" jsonschema:"Filter by invoicing state"`
}

// DetailedReportInput is the input for get_detailed_report.
type DetailedReportInput struct {
	ReportFilterInput
	ReportViewInput
	Page     *int `json:"page,omitempty"     jsonschema:"Page number for pagination"`
	PageSize *int `json:"pageSize,omitempty" jsonschema:"Number of items per page"`
}

func (in DetailedReportInput) request() clockify.DetailedReportRequest {
	return clockify.DetailedReportRequest{
		ReportFilters:  in.filters(),
		SortOrder:      in.SortOrder,
		AmountShown:    in.AmountShown,
		ApprovalState:  in.ApprovalState,
		InvoicingState: in.InvoicingState,
		DetailedFilter: clockify.NewDetailedFilter(in.Page, in.PageSize),
	}
}

// SummaryReportInput is the input for get_summary_report.
type SummaryReportInput struct {
	ReportFilterInput
	ReportViewInput
	Groups []string `json:"groups,omitempty" jsonschema:"Grouping fields (e.g., [\"USER\", \"PROJECT\"])"`
}

func (in SummaryReportInput) request() clockify.SummaryReportRequest {
	return clockify.SummaryReportRequest{
		ReportFilters:  in.filters(),
		SortOrder:      in.SortOrder,
		AmountShown:    in.AmountShown,
		ApprovalState:  in.ApprovalState,
		InvoicingState: in.InvoicingState,
		SummaryFilter:  clockify.NewSummaryFilter(in.Groups),
	}
}

// WeeklyReportInput is the input for get_weekly_report.
type WeeklyReportInput struct {
	ReportFilterInput
	Group    string `json:"group,omitempty"    jsonschema:"Grouping field (e.g., \"PROJECT\")"`
	Subgroup string `json:"subgroup,omitempty" jsonschema:"Subgrouping field (e.g., \"TIME\")"`
}

func (in WeeklyReportInput) request() clockify.WeeklyReportRequest {
	return clockify.WeeklyReportRequest{
		ReportFilters: in.filters(),
		WeeklyFilter:  clockify.NewWeeklyFilter(in.Group, in.Subgroup),
	}
}

func registerReportTools(server *mcp.Server, api ReportAPI) {
	addTool(server, &mcp.Tool{
		Name:        "get_detailed_report",
		Description: "Get a detailed time report with individual time entries",
		Annotations: readOnlyAnnotations(),
	}, handleDetailedReport(api))

	addTool(server, &mcp.Tool{
		Name:        "get_summary_report",
		Description: "Get a summary time report grouped by the given fields",
		Annotations: readOnlyAnnotations(),
	}, handleSummaryReport(api))

	addTool(server, &mcp.Tool{
		Name:        "get_weekly_report",
		Description: "Get a weekly time report",
		Annotations: readOnlyAnnotations(),
	}, handleWeeklyReport(api))

	addTool(server, &mcp.Tool{
		Name:        "list_shared_reports",
		Description: "List shared reports in a workspace",
		Annotations: readOnlyAnnotations(),
	}, handleListSharedReports(api))
}

func handleDetailedReport(api ReportAPI) mcp.ToolHandlerFor[DetailedReportInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DetailedReportInput) (*mcp.CallToolResult, any, error) {
		report, err := api.GetDetailedReport(ctx, input.WorkspaceID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(report)
	}
}

func handleSummaryReport(api ReportAPI) mcp.ToolHandlerFor[SummaryReportInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SummaryReportInput) (*mcp.CallToolResult, any, error) {
		report, err := api.GetSummaryReport(ctx, input.WorkspaceID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(report)
	}
}

func handleWeeklyReport(api ReportAPI) mcp.ToolHandlerFor[WeeklyReportInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WeeklyReportInput) (*mcp.CallToolResult, any, error) {
		report, err := api.GetWeeklyReport(ctx, input.WorkspaceID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(report)
	}
}

func handleListSharedReports(api ReportAPI) mcp.ToolHandlerFor[WorkspaceInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WorkspaceInput) (*mcp.CallToolResult, any, error) {
		reports, err := api.ListSharedReports(ctx, input.WorkspaceID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(reports)
	}
}
