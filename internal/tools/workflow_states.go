package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/linear"
	"github.com/mberan/linear-mcp/internal/logger"
	"github.com/mberan/linear-mcp/internal/workspace"
	"go.uber.org/zap"
)

// GetWorkflowStatesTool handles the linear_get_workflow_states MCP tool.
// Workflow states are cursor-paginated upstream; this tool walks every
// page and returns the full list in one call.
type GetWorkflowStatesTool struct {
	router *workspace.Router
}

// NewGetWorkflowStatesTool creates a GetWorkflowStatesTool with its
// dependencies.
func NewGetWorkflowStatesTool(router *workspace.Router) *GetWorkflowStatesTool {
	return &GetWorkflowStatesTool{router: router}
}

// Definition returns the MCP tool definition for registration.
func (t *GetWorkflowStatesTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_get_workflow_states",
		mcp.WithDescription("List every workflow state of a Linear team (e.g. Backlog, Todo, In Progress, Done)."),
		mcp.WithString("teamId",
			mcp.Required(),
			mcp.Description("Id of the team whose workflow states to list."),
		),
		workspaceArg(),
	)
}

type getWorkflowStatesParams struct {
	TeamID    string `json:"teamId"`
	Workspace string `json:"workspace"`
}

// Handle processes the linear_get_workflow_states tool call. Each page
// fetch depends on the cursor from the previous one, so the loop is
// sequential; it stops only when the upstream reports no further page.
func (t *GetWorkflowStatesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p getWorkflowStatesParams
	if errResult := bindArgs(req, &p); errResult != nil {
		return errResult, nil
	}
	if p.TeamID == "" {
		return missingArg("teamId"), nil
	}

	api, errResult := resolveAPI(t.router, p.Workspace)
	if errResult != nil {
		return errResult, nil
	}

	var states []linear.WorkflowState
	cursor := ""
	pages := 0
	for {
		page, err := api.TeamWorkflowStates(ctx, p.TeamID, cursor)
		if err != nil {
			return upstreamError("listing workflow states", err), nil
		}
		states = append(states, page.Nodes...)
		pages++

		if !page.PageInfo.HasNextPage || page.PageInfo.EndCursor == "" {
			break
		}
		cursor = page.PageInfo.EndCursor
	}
	logger.Get().Debug("aggregated workflow states",
		zap.String("teamId", p.TeamID),
		zap.Int("pages", pages),
		zap.Int("states", len(states)))

	payload := struct {
		States []linear.WorkflowState `json:"workflowStates"`
		Count  int                    `json:"count"`
	}{States: states, Count: len(states)}
	if payload.States == nil {
		payload.States = []linear.WorkflowState{}
	}

	return jsonResult(payload), nil
}
