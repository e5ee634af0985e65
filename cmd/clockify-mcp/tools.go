package main

import (
	"github.com/spf13/cobra"

	clockifymcp "github.com/Honeyfield-Org/clockify-mcp/internal/mcp"
	"github.com/Honeyfield-Org/clockify-mcp/internal/output"
)

// toolInfo is one row of the tools listing.
type toolInfo struct {
	Name        string `json:"name"`
	Access      string `json:"access"`
	Description string `json:"description"`
}

// newToolsCmd creates the tools command.
func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools the server exposes",
		Long: `List the MCP tools the server exposes, with their access class:
  read        - only reads from Clockify
  write       - creates or updates data
  destructive - deletes data or stops a running timer

No API key is needed.`,
		RunE: runTools,
	}
}

func runTools(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	// Listing never invokes a handler, so no client is needed.
	server := clockifymcp.NewServer(buildVersion(), nil, nil)
	tools, err := clockifymcp.ListTools(cmd.Context(), server)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("listing tools", err)
		printer.Error(sysErr)
		return sysErr
	}

	infos := make([]toolInfo, 0, len(tools))
	for _, tool := range tools {
		infos = append(infos, toolInfo{
			Name:        tool.Name,
			Access:      clockifymcp.Access(tool),
			Description: tool.Description,
		})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(infos)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{info.Name, info.Access, info.Description})
	}
	printer.Table([]string{"TOOL", "ACCESS", "DESCRIPTION"}, rows)
	return nil
}
