package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mberan/linear-mcp/internal/linear"
	"github.com/mberan/linear-mcp/internal/workspace"
	"golang.org/x/sync/errgroup"
)

// GetIssueTool handles the linear_get_issue MCP tool. It composes the
// issue's scalar fields with every relation into one flattened document.
type GetIssueTool struct {
	router *workspace.Router
}

// NewGetIssueTool creates a GetIssueTool with its dependencies.
func NewGetIssueTool(router *workspace.Router) *GetIssueTool {
	return &GetIssueTool{router: router}
}

// Definition returns the MCP tool definition for registration.
func (t *GetIssueTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_get_issue",
		mcp.WithDescription(
			"Get a Linear issue with its full context: state, assignee, creator, "+
				"team, project, parent, cycle, labels, comments, and attachments.",
		),
		mcp.WithString("issueId",
			mcp.Required(),
			mcp.Description("Id or identifier of the issue (e.g. 'ENG-123')."),
		),
		workspaceArg(),
	)
}

type getIssueParams struct {
	IssueID   string `json:"issueId"`
	Workspace string `json:"workspace"`
}

// issueDetail is the flattened response document.
type issueDetail struct {
	linear.Issue
	State       *linear.WorkflowState `json:"state,omitempty"`
	Assignee    *linear.User          `json:"assignee,omitempty"`
	Creator     *linear.User          `json:"creator,omitempty"`
	Team        *linear.Team          `json:"team,omitempty"`
	Project     *linear.Project       `json:"project,omitempty"`
	Parent      *linear.Issue         `json:"parent,omitempty"`
	Cycle       *linear.Cycle         `json:"cycle,omitempty"`
	Labels      []linear.Label        `json:"labels"`
	Comments    []linear.Comment      `json:"comments"`
	Attachments []linear.Attachment   `json:"attachments"`
}

// Handle processes the linear_get_issue tool call. The relation fetches
// are independent read-only round-trips, so they run as a concurrent
// fan-out and join before the response is composed.
func (t *GetIssueTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p getIssueParams
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

	issue, err := api.Issue(ctx, p.IssueID)
	if err != nil {
		return upstreamError("fetching issue", err), nil
	}

	detail := issueDetail{
		Issue:       *issue,
		Labels:      []linear.Label{},
		Comments:    []linear.Comment{},
		Attachments: []linear.Attachment{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail.State, err = api.IssueState(gctx, issue.ID)
		return err
	})
	g.Go(func() (err error) {
		detail.Assignee, err = api.IssueAssignee(gctx, issue.ID)
		return err
	})
	g.Go(func() (err error) {
		detail.Creator, err = api.IssueCreator(gctx, issue.ID)
		return err
	})
	g.Go(func() (err error) {
		detail.Team, err = api.IssueTeam(gctx, issue.ID)
		return err
	})
	g.Go(func() (err error) {
		detail.Project, err = api.IssueProject(gctx, issue.ID)
		return err
	})
	g.Go(func() (err error) {
		detail.Parent, err = api.IssueParent(gctx, issue.ID)
		return err
	})
	g.Go(func() (err error) {
		detail.Cycle, err = api.IssueCycle(gctx, issue.ID)
		return err
	})
	g.Go(func() error {
		labels, err := api.IssueLabels(gctx, issue.ID)
		if err != nil {
			return err
		}
		if labels != nil {
			detail.Labels = labels
		}
		return nil
	})
	g.Go(func() error {
		comments, err := api.IssueComments(gctx, issue.ID)
		if err != nil {
			return err
		}
		if comments != nil {
			detail.Comments = comments
		}
		return nil
	})
	g.Go(func() error {
		attachments, err := api.IssueAttachments(gctx, issue.ID)
		if err != nil {
			return err
		}
		if attachments != nil {
			detail.Attachments = attachments
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return upstreamError("fetching issue relations", err), nil
	}

	return jsonResult(detail), nil
}
