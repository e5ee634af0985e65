package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// ListTagsInput is the input for list_tags.
type ListTagsInput struct {
	WorkspaceID string `json:"workspaceId"        jsonschema:"The workspace ID"`
	Archived    *bool  `json:"archived,omitempty" jsonschema:"Filter by archived status"`
	Name        string `json:"name,omitempty"     jsonschema:"Filter by tag name"`
	PageInput
}

func (in ListTagsInput) params() clockify.TagListParams {
	return clockify.TagListParams{
		Name:       in.Name,
		Archived:   in.Archived,
		Pagination: in.pagination(),
	}
}

// TagInput identifies a tag.
type TagInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"The workspace ID"`
	TagID       string `json:"tagId"       jsonschema:"The tag ID"`
}

// CreateTagInput is the input for create_tag.
type CreateTagInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"The workspace ID"`
	Name        string `json:"name"        jsonschema:"Tag name"`
}

func registerTagTools(server *mcp.Server, api TagAPI) {
	addTool(server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List tags in a workspace",
		Annotations: readOnlyAnnotations(),
	}, handleListTags(api))

	addTool(server, &mcp.Tool{
		Name:        "get_tag",
		Description: "Get details of a specific tag",
		Annotations: readOnlyAnnotations(),
	}, handleGetTag(api))

	addTool(server, &mcp.Tool{
		Name:        "create_tag",
		Description: "Create a new tag in a workspace",
		Annotations: writeAnnotations(),
	}, handleCreateTag(api))

	addTool(server, &mcp.Tool{
		Name:        "delete_tag",
		Description: "Delete a tag",
		Annotations: destructiveAnnotations(true),
	}, handleDeleteTag(api))
}

func handleListTags(api TagAPI) mcp.ToolHandlerFor[ListTagsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListTagsInput) (*mcp.CallToolResult, any, error) {
		tags, err := api.ListTags(ctx, input.WorkspaceID, input.params())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(tags)
	}
}

func handleGetTag(api TagAPI) mcp.ToolHandlerFor[TagInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TagInput) (*mcp.CallToolResult, any, error) {
		tag, err := api.GetTag(ctx, input.WorkspaceID, input.TagID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(tag)
	}
}

func handleCreateTag(api TagAPI) mcp.ToolHandlerFor[CreateTagInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateTagInput) (*mcp.CallToolResult, any, error) {
		tag, err := api.CreateTag(ctx, input.WorkspaceID, clockify.TagRequest{Name: input.Name})
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(tag)
	}
}

func handleDeleteTag(api TagAPI) mcp.ToolHandlerFor[TagInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TagInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteTag(ctx, input.WorkspaceID, input.TagID); err != nil {
			return nil, nil, err
		}
		return deletedResult("Tag", input.TagID)
	}
}
