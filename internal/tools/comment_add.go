package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/workspace"
)

// AddCommentTool handles the linear_add_comment MCP tool.
type AddCommentTool struct {
	router *workspace.Router
}

// NewAddCommentTool creates an AddCommentTool with its dependencies.
func NewAddCommentTool(router *workspace.Router) *AddCommentTool {
	return &AddCommentTool{router: router}
}

// Definition returns the MCP tool definition for registration.
func (t *AddCommentTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_add_comment",
		mcp.WithDescription("Add a comment to a Linear issue."),
		mcp.WithString("issueId",
			mcp.Required(),
			mcp.Description("Id of the issue to comment on."),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Comment body in markdown."),
		),
		workspaceArg(),
	)
}

type addCommentParams struct {
	IssueID   string `json:"issueId"`
	Body      string `json:"body"`
	Workspace string `json:"workspace"`
}

// Handle processes the linear_add_comment tool call.
func (t *AddCommentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p addCommentParams
	if errResult := bindArgs(req, &p); errResult != nil {
		return errResult, nil
	}
	if p.IssueID == "" {
		return missingArg("issueId"), nil
	}
	if p.Body == "" {
		return missingArg("body"), nil
	}

	api, errResult := resolveAPI(t.router, p.Workspace)
	if errResult != nil {
		return errResult, nil
	}

	comment, err := api.CreateComment(ctx, p.IssueID, p.Body)
	if err != nil {
		return upstreamError("adding comment", err), nil
	}

	return jsonResult(comment), nil
}
