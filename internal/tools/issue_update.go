package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/linear"
	"github.com/mberan/linear-mcp/internal/workspace"
)

// UpdateIssueTool handles the linear_update_issue MCP tool.
type UpdateIssueTool struct {
	router *workspace.Router
}

// NewUpdateIssueTool creates an UpdateIssueTool with its dependencies.
func NewUpdateIssueTool(router *workspace.Router) *UpdateIssueTool {
	return &UpdateIssueTool{router: router}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateIssueTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_update_issue",
		mcp.WithDescription("Update an existing Linear issue. Omitted fields are left unchanged."),
		mcp.WithString("issueId",
			mcp.Required(),
			mcp.Description("Id of the issue to update."),
		),
		mcp.WithString("title",
			mcp.Description("New title."),
		),
		mcp.WithString("description",
			mcp.Description("New description in markdown."),
		),
		mcp.WithNumber("priority",
			mcp.Description("New priority 0-4 (0 = none, 1 = urgent, 4 = low)."),
		),
		mcp.WithString("stateId",
			mcp.Description("Id of the workflow state to move the issue to."),
		),
		workspaceArg(),
	)
}

type updateIssueParams struct {
	IssueID     string  `json:"issueId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	StateID     *string `json:"stateId"`
	Workspace   string  `json:"workspace"`
}

// Handle processes the linear_update_issue tool call.
func (t *UpdateIssueTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p updateIssueParams
	if errResult := bindArgs(req, &p); errResult != nil {
		return errResult, nil
	}
	if p.IssueID == "" {
		return missingArg("issueId"), nil
	}

	api, errResult := resolveAPI(t.router, p.Workspace)
	if errResult != nil {
		return errResult, nil
	}

	issue, err := api.UpdateIssue(ctx, p.IssueID, linear.UpdateIssueInput{
		Title:       p.Title,
		Description: p.Description,
		Priority:    p.Priority,
		StateID:     p.StateID,
	})
	if err != nil {
		return upstreamError("updating issue", err), nil
	}

	return jsonResult(issue), nil
}
