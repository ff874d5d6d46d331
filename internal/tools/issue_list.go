package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/linear"
	"github.com/mberan/linear-mcp/internal/workspace"
)

// ListIssuesTool handles the linear_list_issues MCP tool.
type ListIssuesTool struct {
	router *workspace.Router
}

// NewListIssuesTool creates a ListIssuesTool with its dependencies.
func NewListIssuesTool(router *workspace.Router) *ListIssuesTool {
	return &ListIssuesTool{router: router}
}

// Definition returns the MCP tool definition for registration.
func (t *ListIssuesTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_list_issues",
		mcp.WithDescription("List Linear issues, optionally filtered by team, assignee, or workflow state."),
		mcp.WithString("teamId",
			mcp.Description("Only issues belonging to this team."),
		),
		mcp.WithString("assigneeId",
			mcp.Description("Only issues assigned to this user."),
		),
		mcp.WithString("stateId",
			mcp.Description("Only issues in this workflow state."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of issues to return (default 25)."),
		),
		workspaceArg(),
	)
}

type listIssuesParams struct {
	TeamID     string `json:"teamId"`
	AssigneeID string `json:"assigneeId"`
	StateID    string `json:"stateId"`
	Limit      int    `json:"limit"`
	Workspace  string `json:"workspace"`
}

// Handle processes the linear_list_issues tool call.
func (t *ListIssuesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p listIssuesParams
	if errResult := bindArgs(req, &p); errResult != nil {
		return errResult, nil
	}

	api, errResult := resolveAPI(t.router, p.Workspace)
	if errResult != nil {
		return errResult, nil
	}

	issues, err := api.Issues(ctx, linear.IssueFilter{
		TeamID:     p.TeamID,
		AssigneeID: p.AssigneeID,
		StateID:    p.StateID,
		Limit:      p.Limit,
	})
	if err != nil {
		return upstreamError("listing issues", err), nil
	}

	payload := struct {
		Issues []linear.Issue `json:"issues"`
		Count  int            `json:"count"`
	}{Issues: issues, Count: len(issues)}
	if payload.Issues == nil {
		payload.Issues = []linear.Issue{}
	}

	return jsonResult(payload), nil
}
