package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// ListClientsInput is the input for list_clients.
type ListClientsInput struct {
	WorkspaceID string `json:"workspaceId"        jsonschema:"The workspace ID"`
	Archived    *bool  `json:"archived,omitempty" jsonschema:"Filter by archived status"`
	Name        string `json:"name,omitempty"     jsonschema:"Filter by client name"`
	PageInput
}

func (in ListClientsInput) params() clockify.ClientListParams {
	return clockify.ClientListParams{
		Name:       in.Name,
		Archived:   in.Archived,
		Pagination: in.pagination(),
	}
}

// ClientInput identifies a client.
type ClientInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"The workspace ID"`
	ClientID    string `json:"clientId"    jsonschema:"The client ID"`
}

// CreateClientInput is the input for create_client.
type CreateClientInput struct {
	WorkspaceID string `json:"workspaceId"       jsonschema:"The workspace ID"`
	Name        string `json:"name"              jsonschema:"Client name"`
	Email       string `json:"email,omitempty"   jsonschema:"Client email address"`
	Address     string `json:"address,omitempty" jsonschema:"Client address"`
	Note        string `json:"note,omitempty"    jsonschema:"Client note"`
}

func (in CreateClientInput) request() clockify.ClientRequest {
	return clockify.ClientRequest{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		Note:    in.Note,
	}
}

func registerClientTools(server *mcp.Server, api ClientAPI) {
	addTool(server, &mcp.Tool{
		Name:        "list_clients",
		Description: "List clients in a workspace",
		Annotations: readOnlyAnnotations(),
	}, handleListClients(api))

	addTool(server, &mcp.Tool{
		Name:        "get_client",
		Description: "Get details of a specific client",
		Annotations: readOnlyAnnotations(),
	}, handleGetClient(api))

	addTool(server, &mcp.Tool{
		Name:        "create_client",
		Description: "Create a new client in a workspace",
		Annotations: writeAnnotations(),
	}, handleCreateClient(api))

	addTool(server, &mcp.Tool{
		Name:        "delete_client",
		Description: "Delete (archive) a client",
		Annotations: destructiveAnnotations(true),
	}, handleDeleteClient(api))
}

func handleListClients(api ClientAPI) mcp.ToolHandlerFor[ListClientsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListClientsInput) (*mcp.CallToolResult, any, error) {
		clients, err := api.ListClients(ctx, input.WorkspaceID, input.params())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(clients)
	}
}

func handleGetClient(api ClientAPI) mcp.ToolHandlerFor[ClientInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ClientInput) (*mcp.CallToolResult, any, error) {
		client, err := api.GetClient(ctx, input.WorkspaceID, input.ClientID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(client)
	}
}

func handleCreateClient(api ClientAPI) mcp.ToolHandlerFor[CreateClientInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateClientInput) (*mcp.CallToolResult, any, error) {
		client, err := api.CreateClient(ctx, input.WorkspaceID, input.request())
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(client)
	}
}

func handleDeleteClient(api ClientAPI) mcp.ToolHandlerFor[ClientInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ClientInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteClient(ctx, input.WorkspaceID, input.ClientID); err != nil {
			return nil, nil, err
		}
		return deletedResult("Client", input.ClientID)
	}
}
