package mcp

import (
	"fmt"
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// enumSchemas closes the string enums of the Clockify API so the SDK rejects
// unknown values before a handler runs.
var enumSchemas = map[reflect.Type]*jsonschema.Schema{
	reflect.TypeFor[clockify.TaskStatus]():       enumSchema(clockify.TaskActive, clockify.TaskDone),
	reflect.TypeFor[clockify.MembershipType]():   enumSchema(clockify.MembershipProject, clockify.MembershipManager),
	reflect.TypeFor[clockify.MembershipStatus](): enumSchema(clockify.MembershipActive, clockify.MembershipInactive),
	reflect.TypeFor[clockify.UserStatus](): enumSchema(
		clockify.UserActive, clockify.UserPending, clockify.UserDeclined, clockify.UserInactive, clockify.UserAll,
	),
	reflect.TypeFor[clockify.FilterContains](): enumSchema(clockify.Contains, clockify.DoesNotContain),
	reflect.TypeFor[clockify.FilterStatus](): enumSchema(
		clockify.FilterAll, clockify.FilterActive, clockify.FilterArchived,
	),
	reflect.TypeFor[clockify.BillableFilter](): enumSchema(
		clockify.BillableBoth, clockify.BillableOnly, clockify.BillableNotBillable,
	),
	reflect.TypeFor[clockify.SortOrder](): enumSchema(clockify.SortAscending, clockify.SortDescending),
	reflect.TypeFor[clockify.AmountShown](): enumSchema(
		clockify.AmountHidden, clockify.AmountEarned, clockify.AmountCost, clockify.AmountProfit,
	),
	reflect.TypeFor[clockify.ApprovalState](): enumSchema(
		clockify.ApprovalBoth, clockify.ApprovalApproved, clockify.ApprovalUnapproved,
	),
	reflect.TypeFor[clockify.InvoicingState](): enumSchema(
		clockify.InvoicingBoth, clockify.InvoicingInvoiced, clockify.InvoicingUninvoiced,
	),
}

func enumSchema[T ~string](values ...T) *jsonschema.Schema {
	enum := make([]any, 0, len(values))
	for _, value := range values {
		enum = append(enum, string(value))
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}

// inputSchema infers the schema of a tool input. Input types are fixed at
// compile time, so a failure here is a programming error.
func inputSchema[In any]() *jsonschema.Schema {
	schema, err := jsonschema.For[In](&jsonschema.ForOptions{TypeSchemas: enumSchemas})
	if err != nil {
		panic(fmt.Sprintf("inferring input schema for %s: %v", reflect.TypeFor[In](), err))
	}
	return schema
}

// addTool registers a tool whose input schema carries the closed enums.
func addTool[In any](server *mcp.Server, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, any]) {
	tool.InputSchema = inputSchema[In]()
	mcp.AddTool(server, tool, handler)
}
