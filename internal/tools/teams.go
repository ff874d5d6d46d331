package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/linear"
	"github.com/mberan/linear-mcp/internal/workspace"
)

// GetTeamsTool handles the linear_get_teams MCP tool.
type GetTeamsTool struct {
	router *workspace.Router
}

// NewGetTeamsTool creates a GetTeamsTool with its dependencies.
func NewGetTeamsTool(router *workspace.Router) *GetTeamsTool {
	return &GetTeamsTool{router: router}
}

// Definition returns the MCP tool definition for registration.
func (t *GetTeamsTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_get_teams",
		mcp.WithDescription("List the teams in a Linear workspace."),
		workspaceArg(),
	)
}

type getTeamsParams struct {
	Workspace string `json:"workspace"`
}

// Handle processes the linear_get_teams tool call.
func (t *GetTeamsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p getTeamsParams
	if errResult := bindArgs(req, &p); errResult != nil {
		return errResult, nil
	}

	api, errResult := resolveAPI(t.router, p.Workspace)
	if errResult != nil {
		return errResult, nil
	}

	teams, err := api.Teams(ctx)
	if err != nil {
		return upstreamError("listing teams", err), nil
	}

	payload := struct {
		Teams []linear.Team `json:"teams"`
		Count int           `json:"count"`
	}{Teams: teams, Count: len(teams)}
	if payload.Teams == nil {
		payload.Teams = []linear.Team{}
	}

	return jsonResult(payload), nil
}
