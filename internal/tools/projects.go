package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/linear"
	"github.com/mberan/linear-mcp/internal/workspace"
)

// ListProjectsTool handles the linear_list_projects MCP tool.
type ListProjectsTool struct {
	router *workspace.Router
}

// NewListProjectsTool creates a ListProjectsTool with its dependencies.
func NewListProjectsTool(router *workspace.Router) *ListProjectsTool {
	return &ListProjectsTool{router: router}
}

// Definition returns the MCP tool definition for registration.
func (t *ListProjectsTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_list_projects",
		mcp.WithDescription(
			"List Linear projects, optionally filtered by team. Paginated: when the "+
				"result reports hasNextPage, pass nextCursor as 'cursor' to fetch the next page.",
		),
		mcp.WithString("teamId",
			mcp.Description("Only projects accessible to this team."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of projects per page (default 25)."),
		),
		mcp.WithString("cursor",
			mcp.Description("Pagination cursor from a previous page."),
		),
		workspaceArg(),
	)
}

type listProjectsParams struct {
	TeamID    string `json:"teamId"`
	Limit     int    `json:"limit"`
	Cursor    string `json:"cursor"`
	Workspace string `json:"workspace"`
}

// Handle processes the linear_list_projects tool call.
func (t *ListProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p listProjectsParams
	if errResult := bindArgs(req, &p); errResult != nil {
		return errResult, nil
	}

	api, errResult := resolveAPI(t.router, p.Workspace)
	if errResult != nil {
		return errResult, nil
	}

	page, err := api.Projects(ctx, linear.ProjectFilter{
		TeamID: p.TeamID,
		Limit:  p.Limit,
		Cursor: p.Cursor,
	})
	if err != nil {
		return upstreamError("listing projects", err), nil
	}

	payload := struct {
		Projects    []linear.Project `json:"projects"`
		Count       int              `json:"count"`
		HasNextPage bool             `json:"hasNextPage"`
		NextCursor  string           `json:"nextCursor,omitempty"`
	}{
		Projects:    page.Nodes,
		Count:       len(page.Nodes),
		HasNextPage: page.PageInfo.HasNextPage,
	}
	if payload.Projects == nil {
		payload.Projects = []linear.Project{}
	}
	if page.PageInfo.HasNextPage {
		payload.NextCursor = page.PageInfo.EndCursor
	}

	return jsonResult(payload), nil
}
