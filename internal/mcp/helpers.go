package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// noRunningTimer is the text returned when a user has no timer running.
const noRunningTimer = "No running timer found"

// jsonResult re-indents a Clockify response body with 2 spaces and returns
// it as a single text block. An empty body renders as null.
func jsonResult(data json.RawMessage) (*mcp.CallToolResult, any, error) {
	if len(data) == 0 {
		return textResult("null"), nil, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, nil, fmt.Errorf("formatting result: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// deletedResult confirms a delete, e.g. "Tag 123 deleted successfully".
func deletedResult(resource, id string) (*mcp.CallToolResult, any, error) {
	return textResult(fmt.Sprintf("%s %s deleted successfully", resource, id)), nil, nil
}

// PageInput is the pagination pair shared by list tools.
type PageInput struct {
	Page     int `json:"page,omitempty"     jsonschema:"Page number for pagination"`
	PageSize int `json:"pageSize,omitempty" jsonschema:"Number of items per page"`
}

func (p PageInput) pagination() clockify.Pagination {
	return clockify.Pagination{Page: p.Page, PageSize: p.PageSize}
}
