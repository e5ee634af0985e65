package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	clockifymcp "github.com/Honeyfield-Org/clockify-mcp/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run clockify-mcp as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "clockify": {
        "command": "clockify-mcp",
        "args": ["serve"],
        "env": { "API_KEY": "...", "REGION": "euc1" }
      }
    }
  }

Logs go to stderr; stdout carries the MCP protocol. Run 'clockify-mcp tools'
to see the available tools.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				logger.Error("invalid configuration", "error", err)
				return err
			}
			client, err := newClient(cfg.ClientConfig())
			if err != nil {
				logger.Error("invalid configuration", "error", err)
				return err
			}

			logger.Info("starting MCP server",
				"version", buildVersion(),
				"region", client.Region(),
				"default_workspace", client.DefaultWorkspaceID(),
			)
			server := clockifymcp.NewServer(buildVersion(), client, logger)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
