// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the workspace registry, the
// client pool, and the router from the parsed configuration, and injects
// them into the tools. No business logic lives here — only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/mberan/linear-mcp/internal/config"
	"github.com/mberan/linear-mcp/internal/tools"
	"github.com/mberan/linear-mcp/internal/workspace"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools registered.
// The workspace set comes from config.Parse; the factory builds one API
// client per workspace (tests pass a fake factory, nil means real
// clients).
func New(set *config.WorkspaceSet, factory workspace.ClientFactory) *server.MCPServer {
	if factory == nil {
		factory = workspace.DefaultClientFactory
	}

	registry := workspace.NewRegistry(set)
	pool := workspace.NewPool(set.Workspaces, factory)
	router := workspace.NewRouter(registry, pool)

	s := server.NewMCPServer(
		"linear-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Issue tools ---

	createIssue := tools.NewCreateIssueTool(router)
	s.AddTool(createIssue.Definition(), createIssue.Handle)

	getIssue := tools.NewGetIssueTool(router)
	s.AddTool(getIssue.Definition(), getIssue.Handle)

	updateIssue := tools.NewUpdateIssueTool(router)
	s.AddTool(updateIssue.Definition(), updateIssue.Handle)

	listIssues := tools.NewListIssuesTool(router)
	s.AddTool(listIssues.Definition(), listIssues.Handle)

	searchIssues := tools.NewSearchIssuesTool(router)
	s.AddTool(searchIssues.Definition(), searchIssues.Handle)

	addComment := tools.NewAddCommentTool(router)
	s.AddTool(addComment.Definition(), addComment.Handle)

	// --- Organization tools ---

	getTeams := tools.NewGetTeamsTool(router)
	s.AddTool(getTeams.Definition(), getTeams.Handle)

	listProjects := tools.NewListProjectsTool(router)
	s.AddTool(listProjects.Definition(), listProjects.Handle)

	workflowStates := tools.NewGetWorkflowStatesTool(router)
	s.AddTool(workflowStates.Definition(), workflowStates.Handle)

	// --- Workspace management ---
	//
	// The workspace tool talks to the registry directly: it mutates the
	// active pointer instead of routing to an upstream client.

	workspaceTool := tools.NewWorkspaceTool(registry)
	s.AddTool(workspaceTool.Definition(), workspaceTool.Handle)

	return s
}

func serverInstructions() string {
	return `This server exposes Linear issue tracking as tools.

Workspaces: several Linear accounts can be configured at once. Every tool
accepts an optional 'workspace' argument (id, name, or alias); without it,
calls go to the active workspace. Use linear_workspace to list workspaces
or switch the active one.

Start with linear_get_teams to discover team ids — issue creation and
workflow-state listing need them.`
}
