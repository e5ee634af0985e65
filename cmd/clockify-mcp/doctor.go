package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
	"github.com/Honeyfield-Org/clockify-mcp/internal/config"
	"github.com/Honeyfield-Org/clockify-mcp/internal/output"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// doctorResult is the full doctor report.
type doctorResult struct {
	Version            string        `json:"version"`
	Region             string        `json:"region,omitempty"`
	APIKeySource       string        `json:"api_key_source,omitempty"`
	DefaultWorkspaceID string        `json:"default_workspace_id,omitempty"`
	ConfigFile         string        `json:"config_file,omitempty"`
	Checks             []checkResult `json:"checks"`
	Passed             bool          `json:"passed"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and Clockify credentials",
		Long: `Check configuration and Clockify credentials.

Resolves the configuration, then calls Clockify to confirm the API key and
the current workspace.

Exit codes:
  0 - all checks passed
  1 - configuration is missing or invalid
  2 - a Clockify check failed

Examples:
  clockify-mcp doctor              # Run all checks
  clockify-mcp doctor --json       # Output results as JSON
  clockify-mcp doctor --region use2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, newClient)
		},
	}
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, newClient clientFactory) error {
	printer := newPrinter(cmd)
	result := &doctorResult{Version: buildVersion(), ConfigFile: config.FilePath()}

	cfg, err := loadConfig(cmd)
	if err != nil {
		result.Checks = append(result.Checks, checkResult{Name: "Configuration", Detail: err.Error()})
		return finishDoctor(printer, result, err)
	}
	result.Region = cfg.Region.String()
	result.APIKeySource = cfg.APIKeySource
	result.DefaultWorkspaceID = cfg.DefaultWorkspaceID
	result.Checks = append(result.Checks, checkResult{Name: "Configuration", Passed: true})

	client, err := newClient(cfg.ClientConfig())
	if err != nil {
		result.Checks = append(result.Checks, checkResult{Name: "API key", Detail: err.Error()})
		return finishDoctor(printer, result, err)
	}

	ctx := cmd.Context()
	var user clockify.UserRef
	if err := fetchRef(ctx, client.GetCurrentUser, &user); err != nil {
		result.Checks = append(result.Checks, checkResult{Name: "API key", Detail: err.Error()})
		return finishDoctor(printer, result, output.NewSystemErrorWithCause(remoteFailure(err), err))
	}
	result.Checks = append(result.Checks, checkResult{Name: "API key", Passed: true, Detail: user.Name})

	var workspace clockify.WorkspaceRef
	if err := fetchRef(ctx, client.GetCurrentWorkspace, &workspace); err != nil {
		result.Checks = append(result.Checks, checkResult{Name: "Workspace", Detail: err.Error()})
		return finishDoctor(printer, result, output.NewSystemErrorWithCause("resolving the current workspace failed", err))
	}
	result.Checks = append(result.Checks, checkResult{
		Name:   "Workspace",
		Passed: true,
		Detail: fmt.Sprintf("%s (%s)", workspace.Name, workspace.ID),
	})

	return finishDoctor(printer, result, nil)
}

// fetchRef calls fetch and reads the identifying fields of its result.
func fetchRef(ctx context.Context, fetch func(context.Context) (json.RawMessage, error), ref any) error {
	data, err := fetch(ctx)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, ref); err != nil {
		return fmt.Errorf("reading Clockify response: %w", err)
	}
	return nil
}

// remoteFailure tells a rejected key apart from Clockify being down.
func remoteFailure(err error) string {
	switch status := clockify.StatusCodeOf(err); {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return "Clockify rejected the credentials"
	case status >= http.StatusInternalServerError:
		return "Clockify is unavailable, try again later"
	default:
		return "checking the credentials failed"
	}
}

// finishDoctor prints the report and passes err through as the exit status.
func finishDoctor(printer *output.Printer, result *doctorResult, err error) error {
	result.Passed = err == nil

	if printer.IsJSON() {
		if writeErr := printer.WriteJSON(result); writeErr != nil {
			return writeErr
		}
		return err
	}

	outputDoctorHuman(printer, result)
	if result.Passed && result.DefaultWorkspaceID == "" {
		printer.Warn("DEFAULT_WORKSPACE_ID is not set; get_current_workspace uses the user's active workspace")
	}
	if err != nil {
		printer.Error(err)
	}
	return err
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult) {
	printer.Print("clockify-mcp doctor %s\n", result.Version)

	printer.Section("Configuration")
	printer.KeyValue("Region", valueOr(result.Region, "(unresolved)"))
	printer.KeyValue("API key", valueOr(result.APIKeySource, "(not set)"))
	printer.KeyValue("Default workspace", valueOr(result.DefaultWorkspaceID, "(none)"))
	printer.KeyValue("Config file", valueOr(result.ConfigFile, "(unavailable)"))

	printer.Section("Checks")
	for _, check := range result.Checks {
		printer.Check(check.Passed, check.Name, check.Detail)
	}
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
