// Package linear is a thin client for the Linear GraphQL API.
//
// Every operation is a single POST of {query, variables} to one endpoint,
// authenticated with a per-workspace API key. Relation accessors issue one
// round-trip each — callers that need several relations fan them out.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the production Linear GraphQL endpoint.
const DefaultEndpoint = "https://api.linear.app/graphql"

const defaultPageSize = 25

// API is the upstream surface tools consume. *Client implements it;
// tests substitute fakes.
type API interface {
	CreateIssue(ctx context.Context, input CreateIssueInput) (*Issue, error)
	Issue(ctx context.Context, id string) (*Issue, error)
	UpdateIssue(ctx context.Context, id string, input UpdateIssueInput) (*Issue, error)
	Issues(ctx context.Context, filter IssueFilter) ([]Issue, error)
	SearchIssues(ctx context.Context, term string, limit int, cursor string) (*IssuePage, error)
	CreateComment(ctx context.Context, issueID, body string) (*Comment, error)
	Teams(ctx context.Context) ([]Team, error)
	Projects(ctx context.Context, filter ProjectFilter) (*ProjectPage, error)
	TeamWorkflowStates(ctx context.Context, teamID, cursor string) (*WorkflowStatePage, error)

	IssueState(ctx context.Context, id string) (*WorkflowState, error)
	IssueAssignee(ctx context.Context, id string) (*User, error)
	IssueCreator(ctx context.Context, id string) (*User, error)
	IssueTeam(ctx context.Context, id string) (*Team, error)
	IssueProject(ctx context.Context, id string) (*Project, error)
	IssueParent(ctx context.Context, id string) (*Issue, error)
	IssueCycle(ctx context.Context, id string) (*Cycle, error)
	IssueLabels(ctx context.Context, id string) ([]Label, error)
	IssueComments(ctx context.Context, id string) ([]Comment, error)
	IssueAttachments(ctx context.Context, id string) ([]Attachment, error)
}

// APIError is a failure reported by the Linear API itself (GraphQL errors
// or a non-2xx HTTP status), as opposed to a transport failure.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return "linear: " + strings.Join(e.Messages, "; ")
	}
	return fmt.Sprintf("linear: HTTP %d", e.Status)
}

var _ API = (*Client)(nil)

// Client talks to one Linear workspace, identified by its API key.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint. Used by tests.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a client for one workspace credential.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// do executes one GraphQL document and unmarshals the "data" object into
// out. GraphQL-level errors become *APIError.
func (c *Client) do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling linear: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var decoded gqlResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &APIError{Status: resp.StatusCode}
		}
		return fmt.Errorf("decoding response: %w", err)
	}

	if len(decoded.Errors) > 0 {
		apiErr := &APIError{Status: resp.StatusCode}
		for _, e := range decoded.Errors {
			apiErr.Messages = append(apiErr.Messages, e.Message)
		}
		return apiErr
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.Unmarshal(decoded.Data, out); err != nil {
			return fmt.Errorf("decoding data: %w", err)
		}
	}
	return nil
}

func (c *Client) CreateIssue(ctx context.Context, input CreateIssueInput) (*Issue, error) {
	gqlInput := map[string]any{
		"teamId": input.TeamID,
		"title":  input.Title,
	}
	if input.Description != "" {
		gqlInput["description"] = input.Description
	}
	if input.Priority != nil {
		gqlInput["priority"] = *input.Priority
	}
	if input.StateID != "" {
		gqlInput["stateId"] = input.StateID
	}

	var payload struct {
		IssueCreate struct {
			Success bool   `json:"success"`
			Issue   *Issue `json:"issue"`
		} `json:"issueCreate"`
	}
	err := c.do(ctx, mutationCreateIssue, map[string]any{"input": gqlInput}, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.IssueCreate.Success || payload.IssueCreate.Issue == nil {
		return nil, &APIError{Messages: []string{"issue creation was not successful"}}
	}
	return payload.IssueCreate.Issue, nil
}

func (c *Client) Issue(ctx context.Context, id string) (*Issue, error) {
	var payload struct {
		Issue *Issue `json:"issue"`
	}
	if err := c.do(ctx, queryIssue, map[string]any{"id": id}, &payload); err != nil {
		return nil, err
	}
	if payload.Issue == nil {
		return nil, &APIError{Messages: []string{fmt.Sprintf("issue %q not found", id)}}
	}
	return payload.Issue, nil
}

func (c *Client) UpdateIssue(ctx context.Context, id string, input UpdateIssueInput) (*Issue, error) {
	gqlInput := map[string]any{}
	if input.Title != nil {
		gqlInput["title"] = *input.Title
	}
	if input.Description != nil {
		gqlInput["description"] = *input.Description
	}
	if input.Priority != nil {
		gqlInput["priority"] = *input.Priority
	}
	if input.StateID != nil {
		gqlInput["stateId"] = *input.StateID
	}

	var payload struct {
		IssueUpdate struct {
			Success bool   `json:"success"`
			Issue   *Issue `json:"issue"`
		} `json:"issueUpdate"`
	}
	err := c.do(ctx, mutationUpdateIssue, map[string]any{"id": id, "input": gqlInput}, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.IssueUpdate.Success || payload.IssueUpdate.Issue == nil {
		return nil, &APIError{Messages: []string{fmt.Sprintf("update of issue %q was not successful", id)}}
	}
	return payload.IssueUpdate.Issue, nil
}

func (c *Client) Issues(ctx context.Context, filter IssueFilter) ([]Issue, error) {
	gqlFilter := map[string]any{}
	if filter.TeamID != "" {
		gqlFilter["team"] = map[string]any{"id": map[string]any{"eq": filter.TeamID}}
	}
	if filter.AssigneeID != "" {
		gqlFilter["assignee"] = map[string]any{"id": map[string]any{"eq": filter.AssigneeID}}
	}
	if filter.StateID != "" {
		gqlFilter["state"] = map[string]any{"id": map[string]any{"eq": filter.StateID}}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	variables := map[string]any{"first": limit}
	if len(gqlFilter) > 0 {
		variables["filter"] = gqlFilter
	}

	var payload struct {
		Issues IssuePage `json:"issues"`
	}
	if err := c.do(ctx, queryIssues, variables, &payload); err != nil {
		return nil, err
	}
	return payload.Issues.Nodes, nil
}

func (c *Client) SearchIssues(ctx context.Context, term string, limit int, cursor string) (*IssuePage, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	variables := map[string]any{"term": term, "first": limit}
	if cursor != "" {
		variables["after"] = cursor
	}

	var payload struct {
		SearchIssues IssuePage `json:"searchIssues"`
	}
	if err := c.do(ctx, querySearchIssues, variables, &payload); err != nil {
		return nil, err
	}
	return &payload.SearchIssues, nil
}

func (c *Client) CreateComment(ctx context.Context, issueID, body string) (*Comment, error) {
	input := map[string]any{"issueId": issueID, "body": body}

	var payload struct {
		CommentCreate struct {
			Success bool     `json:"success"`
			Comment *Comment `json:"comment"`
		} `json:"commentCreate"`
	}
	err := c.do(ctx, mutationCreateComment, map[string]any{"input": input}, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.CommentCreate.Success || payload.CommentCreate.Comment == nil {
		return nil, &APIError{Messages: []string{fmt.Sprintf("comment on issue %q was not successful", issueID)}}
	}
	return payload.CommentCreate.Comment, nil
}

func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	var payload struct {
		Teams struct {
			Nodes []Team `json:"nodes"`
		} `json:"teams"`
	}
	if err := c.do(ctx, queryTeams, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Teams.Nodes, nil
}

func (c *Client) Projects(ctx context.Context, filter ProjectFilter) (*ProjectPage, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	variables := map[string]any{"first": limit}
	if filter.TeamID != "" {
		variables["filter"] = map[string]any{
			"accessibleTeams": map[string]any{"id": map[string]any{"eq": filter.TeamID}},
		}
	}
	if filter.Cursor != "" {
		variables["after"] = filter.Cursor
	}

	var payload struct {
		Projects ProjectPage `json:"projects"`
	}
	if err := c.do(ctx, queryProjects, variables, &payload); err != nil {
		return nil, err
	}
	return &payload.Projects, nil
}

func (c *Client) TeamWorkflowStates(ctx context.Context, teamID, cursor string) (*WorkflowStatePage, error) {
	variables := map[string]any{"teamId": teamID}
	if cursor != "" {
		variables["after"] = cursor
	}

	var payload struct {
		Team *struct {
			States WorkflowStatePage `json:"states"`
		} `json:"team"`
	}
	if err := c.do(ctx, queryTeamWorkflowStates, variables, &payload); err != nil {
		return nil, err
	}
	if payload.Team == nil {
		return nil, &APIError{Messages: []string{fmt.Sprintf("team %q not found", teamID)}}
	}
	return &payload.Team.States, nil
}

// relation unmarshals issue(id){<field>} documents. A nil relation is a
// valid answer (issue has no assignee, no parent, ...), not an error.
func relation[T any](ctx context.Context, c *Client, query, id string, pick func(raw json.RawMessage) (T, error)) (T, error) {
	var zero T
	var payload struct {
		Issue json.RawMessage `json:"issue"`
	}
	if err := c.do(ctx, query, map[string]any{"id": id}, &payload); err != nil {
		return zero, err
	}
	if len(payload.Issue) == 0 || string(payload.Issue) == "null" {
		return zero, &APIError{Messages: []string{fmt.Sprintf("issue %q not found", id)}}
	}
	return pick(payload.Issue)
}

func singleRelation[T any](ctx context.Context, c *Client, query, id, field string) (*T, error) {
	return relation(ctx, c, query, id, func(raw json.RawMessage) (*T, error) {
		var holder map[string]*T
		if err := json.Unmarshal(raw, &holder); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", field, err)
		}
		return holder[field], nil
	})
}

func listRelation[T any](ctx context.Context, c *Client, query, id, field string) ([]T, error) {
	return relation(ctx, c, query, id, func(raw json.RawMessage) ([]T, error) {
		var holder map[string]*struct {
			Nodes []T `json:"nodes"`
		}
		if err := json.Unmarshal(raw, &holder); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", field, err)
		}
		if holder[field] == nil {
			return nil, nil
		}
		return holder[field].Nodes, nil
	})
}

func (c *Client) IssueState(ctx context.Context, id string) (*WorkflowState, error) {
	return singleRelation[WorkflowState](ctx, c, queryIssueState, id, "state")
}

func (c *Client) IssueAssignee(ctx context.Context, id string) (*User, error) {
	return singleRelation[User](ctx, c, queryIssueAssignee, id, "assignee")
}

func (c *Client) IssueCreator(ctx context.Context, id string) (*User, error) {
	return singleRelation[User](ctx, c, queryIssueCreator, id, "creator")
}

func (c *Client) IssueTeam(ctx context.Context, id string) (*Team, error) {
	return singleRelation[Team](ctx, c, queryIssueTeam, id, "team")
}

func (c *Client) IssueProject(ctx context.Context, id string) (*Project, error) {
	return singleRelation[Project](ctx, c, queryIssueProject, id, "project")
}

func (c *Client) IssueParent(ctx context.Context, id string) (*Issue, error) {
	return singleRelation[Issue](ctx, c, queryIssueParent, id, "parent")
}

func (c *Client) IssueCycle(ctx context.Context, id string) (*Cycle, error) {
	return singleRelation[Cycle](ctx, c, queryIssueCycle, id, "cycle")
}

func (c *Client) IssueLabels(ctx context.Context, id string) ([]Label, error) {
	return listRelation[Label](ctx, c, queryIssueLabels, id, "labels")
}

func (c *Client) IssueComments(ctx context.Context, id string) ([]Comment, error) {
	return listRelation[Comment](ctx, c, queryIssueComments, id, "comments")
}

func (c *Client) IssueAttachments(ctx context.Context, id string) ([]Attachment, error) {
	return listRelation[Attachment](ctx, c, queryIssueAttachments, id, "attachments")
}
