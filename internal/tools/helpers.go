// Package tools implements the MCP tools exposed by the server.
//
// Each file holds one tool: a struct carrying its dependencies (injected
// via the constructor), a Definition() for registration, and a Handle()
// in mcp-go's handler signature. Arguments are bound into a typed params
// struct and validated before the handler body runs.
//
// Error policy: routing failures, missing arguments, and upstream API
// failures all come back as error-flagged tool results, never as Go
// errors — one bad call must not take the server down. Only mcp-go's own
// unknown-tool dispatch surfaces as a protocol fault.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/linear"
	"github.com/mberan/linear-mcp/internal/workspace"
)

// workspaceArg is the selector argument every tool accepts.
func workspaceArg() mcp.ToolOption {
	return mcp.WithString("workspace",
		mcp.Description(
			"Workspace to run this call against: a workspace id, name, or alias. "+
				"Defaults to the active workspace.",
		),
	)
}

// resolveAPI routes the call's workspace selector to a client. A routing
// failure is returned as a ready-made error result.
func resolveAPI(router *workspace.Router, selector string) (linear.API, *mcp.CallToolResult) {
	api, err := router.Resolve(selector)
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	return api, nil
}

// jsonResult marshals a payload into an indented JSON text result.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// upstreamError wraps a Linear API failure, preserving its message.
func upstreamError(action string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", action, err))
}

// missingArg reports a required argument that was absent or empty.
func missingArg(name string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("missing required argument: %s", name))
}

// bindArgs decodes the request's argument bag into a params struct.
func bindArgs(req mcp.CallToolRequest, target any) *mcp.CallToolResult {
	if err := req.BindArguments(target); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err))
	}
	return nil
}
