// Package main provides the entry point for the clockify-mcp CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
	"github.com/Honeyfield-Org/clockify-mcp/internal/config"
	"github.com/Honeyfield-Org/clockify-mcp/internal/envfile"
	"github.com/Honeyfield-Org/clockify-mcp/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logLevelVar names the environment fallback for --log-level.
const logLevelVar = "LOG_LEVEL"

// clientFactory builds a Clockify client from resolved configuration.
// Commands take one so tests can point them at a local server.
type clientFactory func(cfg clockify.Config) (*clockify.Client, error)

func defaultClientFactory(cfg clockify.Config) (*clockify.Client, error) {
	return clockify.New(cfg, clockify.WithUserAgent("clockify-mcp/"+version))
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "json") == "true"
}

// persistentFlag returns the value of a root persistent flag, or "".
func persistentFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// newPrinter builds the printer for a command, honoring --json and --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(persistentFlag(cmd, "color"), output.IsTTY(out))
	return output.NewPrinter(out, isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// loadConfig resolves configuration with the --region and --workspace overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(config.Overrides{
		Region:      persistentFlag(cmd, "region"),
		WorkspaceID: persistentFlag(cmd, "workspace"),
	})
}

// newLogger builds the stderr logger. Stdout is reserved for the MCP
// stdio transport.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := parseLogLevel(persistentFlag(cmd, "log-level"))
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}

// parseLogLevel resolves the flag value, then LOG_LEVEL, then info.
func parseLogLevel(value string) (slog.Level, error) {
	if value == "" {
		value = os.Getenv(logLevelVar)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo, output.NewUserError(
			fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", value))
	}
	return level, nil
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the clockify-mcp CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdWith(defaultClientFactory)
}

// newRootCmdWith creates the root command with a custom client factory.
func newRootCmdWith(newClient clientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clockify-mcp",
		Short: "Clockify tools for MCP-capable agents",
		Long: `clockify-mcp - Clockify time tracking exposed as Model Context Protocol tools.

It lets an agent manage workspaces, projects, tasks, clients, tags and time
entries, run timers and pull detailed, summary and weekly reports.

Configuration is read from the environment (API_KEY, REGION,
DEFAULT_WORKSPACE_ID), from .env.local, .env and the env file in the config
directory, and from an optional config.yaml there.

All commands except serve support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'clockify-mcp --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := output.ValidateColorMode(persistentFlag(cmd, "color")); err != nil {
			return err
		}
		if err := envfile.LoadAll(config.EnvFiles()...); err != nil {
			return output.NewConfigError(fmt.Sprintf("loading env files: %v", err), err)
		}
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always or never")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default from "+logLevelVar+", else info)")
	cmd.PersistentFlags().String("region", "", "Clockify region for this run (overrides REGION)")
	cmd.PersistentFlags().String("workspace", "", "Default workspace ID for this run (overrides DEFAULT_WORKSPACE_ID)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd, newClient)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "server", Title: "Server Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command, newClient clientFactory) {
	addGroupedCommand(cmd, newServeCmd(newClient), "server")
	addGroupedCommand(cmd, newToolsCmd(), "server")

	addGroupedCommand(cmd, newDoctorCmd(newClient), "admin")
	addGroupedCommand(cmd, newRegionsCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
