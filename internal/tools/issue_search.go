package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/linear"
	"github.com/mberan/linear-mcp/internal/workspace"
)

// SearchIssuesTool handles the linear_search_issues MCP tool.
type SearchIssuesTool struct {
	router *workspace.Router
}

// NewSearchIssuesTool creates a SearchIssuesTool with its dependencies.
func NewSearchIssuesTool(router *workspace.Router) *SearchIssuesTool {
	return &SearchIssuesTool{router: router}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchIssuesTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_search_issues",
		mcp.WithDescription(
			"Full-text search over Linear issues. Paginated: when the result "+
				"reports hasNextPage, pass nextCursor as 'cursor' to fetch the next page.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search terms."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of issues per page (default 25)."),
		),
		mcp.WithString("cursor",
			mcp.Description("Pagination cursor from a previous page."),
		),
		workspaceArg(),
	)
}

type searchIssuesParams struct {
	Query     string `json:"query"`
	Limit     int    `json:"limit"`
	Cursor    string `json:"cursor"`
	Workspace string `json:"workspace"`
}

// Handle processes the linear_search_issues tool call.
func (t *SearchIssuesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p searchIssuesParams
	if errResult := bindArgs(req, &p); errResult != nil {
		return errResult, nil
	}
	if p.Query == "" {
		return missingArg("query"), nil
	}

	api, errResult := resolveAPI(t.router, p.Workspace)
	if errResult != nil {
		return errResult, nil
	}

	page, err := api.SearchIssues(ctx, p.Query, p.Limit, p.Cursor)
	if err != nil {
		return upstreamError("searching issues", err), nil
	}

	payload := struct {
		Issues      []linear.Issue `json:"issues"`
		Count       int            `json:"count"`
		HasNextPage bool           `json:"hasNextPage"`
		NextCursor  string         `json:"nextCursor,omitempty"`
	}{
		Issues:      page.Nodes,
		Count:       len(page.Nodes),
		HasNextPage: page.PageInfo.HasNextPage,
	}
	if payload.Issues == nil {
		payload.Issues = []linear.Issue{}
	}
	if page.PageInfo.HasNextPage {
		payload.NextCursor = page.PageInfo.EndCursor
	}

	return jsonResult(payload), nil
}
