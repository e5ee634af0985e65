// Package output provides structured output handling for the clockify-mcp CLI.
//
// The MCP server itself speaks JSON-RPC on stdout, so this package is only used
// by the operator-facing commands (tools, regions, doctor) and for turning
// startup failures into exit codes.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Section("Checks")
//	printer.Table([]string{"NAME", "ACCESS"}, rows)
//	printer.Check(ok, "API key", user.Email)
//	printer.Warn("no default workspace")
//	printer.Error(err)
//
// In JSON mode errors are written as {"error": "message", "code": N}.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Configuration or usage error
//	output.ExitSystemError // 2: Remote or transport failure
package output
