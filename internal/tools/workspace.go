package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/logger"
	"github.com/mberan/linear-mcp/internal/workspace"
	"go.uber.org/zap"
)

// WorkspaceTool handles the linear_workspace MCP tool: list the configured
// workspaces and switch the active one.
//
// Unlike every other tool, an unknown selector here is not an error — this
// is the tool a caller uses to discover which names are valid, so it
// answers with the listing and a note instead.
type WorkspaceTool struct {
	registry *workspace.Registry
}

// NewWorkspaceTool creates a WorkspaceTool with its dependencies.
func NewWorkspaceTool(registry *workspace.Registry) *WorkspaceTool {
	return &WorkspaceTool{registry: registry}
}

// Definition returns the MCP tool definition for registration.
func (t *WorkspaceTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_workspace",
		mcp.WithDescription(
			"List the configured Linear workspaces, or switch the active workspace. "+
				"With no arguments it lists; with 'workspace' set it makes that "+
				"workspace the default for calls that carry no selector.",
		),
		mcp.WithString("workspace",
			mcp.Description("Id, name, or alias of the workspace to make active."),
		),
	)
}

type workspaceParams struct {
	Workspace string `json:"workspace"`
}

// workspaceView is one row of the listing, credential omitted.
type workspaceView struct {
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	Email   string   `json:"email,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
	Active  bool     `json:"active"`
}

// Handle processes the linear_workspace tool call.
func (t *WorkspaceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p workspaceParams
	if errResult := bindArgs(req, &p); errResult != nil {
		return errResult, nil
	}

	var note string
	if p.Workspace != "" {
		if ws, ok := t.registry.Lookup(p.Workspace); ok {
			if err := t.registry.SetActive(ws.ID); err != nil {
				// Lookup just returned this record, so the id is known.
				return nil, fmt.Errorf("activating workspace %q: %w", ws.ID, err)
			}
			logger.Get().Info("active workspace changed", zap.String("workspace", ws.ID))
			note = fmt.Sprintf("Workspace %q is now active.", ws.ID)
		} else {
			note = fmt.Sprintf("No workspace matches %q. Available workspaces are listed below.", p.Workspace)
		}
	}

	activeID := t.registry.ActiveID()
	listing := struct {
		Note            string          `json:"note,omitempty"`
		ActiveWorkspace string          `json:"activeWorkspace,omitempty"`
		Workspaces      []workspaceView `json:"workspaces"`
	}{
		Note:            note,
		ActiveWorkspace: activeID,
		Workspaces:      []workspaceView{},
	}

	for _, ws := range t.registry.ListAll() {
		listing.Workspaces = append(listing.Workspaces, workspaceView{
			ID:      ws.ID,
			Name:    ws.Name,
			Email:   ws.Email,
			Aliases: ws.Aliases,
			Active:  ws.ID == activeID,
		})
	}

	return jsonResult(listing), nil
}
