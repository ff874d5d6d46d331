package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/linear"
	"github.com/mberan/linear-mcp/internal/workspace"
)

// CreateIssueTool handles the linear_create_issue MCP tool.
type CreateIssueTool struct {
	router *workspace.Router
}

// NewCreateIssueTool creates a CreateIssueTool with its dependencies.
func NewCreateIssueTool(router *workspace.Router) *CreateIssueTool {
	return &CreateIssueTool{router: router}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateIssueTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_create_issue",
		mcp.WithDescription("Create a new Linear issue in a team."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Issue title."),
		),
		mcp.WithString("teamId",
			mcp.Required(),
			mcp.Description("Id of the team the issue belongs to."),
		),
		mcp.WithString("description",
			mcp.Description("Issue description in markdown."),
		),
		mcp.WithNumber("priority",
			mcp.Description("Priority 0-4 (0 = none, 1 = urgent, 4 = low)."),
		),
		mcp.WithString("stateId",
			mcp.Description("Id of the workflow state to create the issue in."),
		),
		workspaceArg(),
	)
}

type createIssueParams struct {
	Title       string `json:"title"`
	TeamID      string `json:"teamId"`
	Description string `json:"description"`
	Priority    *int   `json:"priority"`
	StateID     string `json:"stateId"`
	Workspace   string `json:"workspace"`
}

// Handle processes the linear_create_issue tool call.
func (t *CreateIssueTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p createIssueParams
	if errResult := bindArgs(req, &p); errResult != nil {
		return errResult, nil
	}
	if p.Title == "" {
		return missingArg("title"), nil
	}
	if p.TeamID == "" {
		return missingArg("teamId"), nil
	}

	api, errResult := resolveAPI(t.router, p.Workspace)
	if errResult != nil {
		return errResult, nil
	}

	issue, err := api.CreateIssue(ctx, linear.CreateIssueInput{
		TeamID:      p.TeamID,
		Title:       p.Title,
		Description: p.Description,
		Priority:    p.Priority,
		StateID:     p.StateID,
	})
	if err != nil {
		return upstreamError("creating issue", err), nil
	}

	return jsonResult(issue), nil
}
