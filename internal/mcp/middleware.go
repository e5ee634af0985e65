package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const methodCallTool = "tools/call"

// loggingMiddleware logs every tool call with a call id, its duration and
// whether it failed. Other methods pass through untouched.
func loggingMiddleware(logger *slog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if method != methodCallTool {
				return next(ctx, method, req)
			}

			callLogger := logger.With("call_id", uuid.NewString(), "tool", toolName(req))
			callLogger.DebugContext(ctx, "tool call started")
			start := time.Now()

			result, err := next(ctx, method, req)

			elapsed := time.Since(start)
			switch {
			case err != nil:
				callLogger.WarnContext(ctx, "tool call rejected", "duration", elapsed, "error", err)
			case isToolError(result):
				callLogger.InfoContext(ctx, "tool call failed", "duration", elapsed)
			default:
				callLogger.InfoContext(ctx, "tool call completed", "duration", elapsed)
			}
			return result, err
		}
	}
}

func toolName(req mcp.Request) string {
	if call, ok := req.(*mcp.CallToolRequest); ok && call.Params != nil {
		return call.Params.Name
	}
	return ""
}

func isToolError(result mcp.Result) bool {
	res, ok := result.(*mcp.CallToolResult)
	return ok && res != nil && res.IsError
}
