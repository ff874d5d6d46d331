package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mberan/linear-mcp/internal/linear"
)

func TestGetIssueTool_ComposesAllRelations(t *testing.T) {
	fake := &fakeAPI{
		issue:    &linear.Issue{ID: "iss-1", Identifier: "ENG-1", Title: "Broken build"},
		state:    &linear.WorkflowState{ID: "s1", Name: "In Progress", Type: "started"},
		assignee: &linear.User{ID: "u1", Name: "Dana"},
		creator:  &linear.User{ID: "u2", Name: "Sam"},
		team:     &linear.Team{ID: "t1", Name: "Engineering", Key: "ENG"},
		project:  &linear.Project{ID: "p1", Name: "Build pipeline"},
		labels:   []linear.Label{{ID: "l1", Name: "bug"}},
		comments: []linear.Comment{{ID: "c1", Body: "Looking into it"}},
	}
	tool := NewGetIssueTool(singleEnv(t, fake))

	result, err := tool.Handle(context.Background(), callReq(map[string]any{"issueId": "iss-1"}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got: %s", getResultText(result))
	}

	var detail struct {
		Identifier  string                `json:"identifier"`
		State       *linear.WorkflowState `json:"state"`
		Assignee    *linear.User          `json:"assignee"`
		Creator     *linear.User          `json:"creator"`
		Team        *linear.Team          `json:"team"`
		Project     *linear.Project       `json:"project"`
		Labels      []linear.Label        `json:"labels"`
		Comments    []linear.Comment      `json:"comments"`
		Attachments []linear.Attachment   `json:"attachments"`
	}
	decodeResult(t, result, &detail)

	if detail.Identifier != "ENG-1" {
		t.Errorf("scalar fields missing: %+v", detail)
	}
	if detail.State == nil || detail.State.Name != "In Progress" {
		t.Errorf("state missing: %+v", detail.State)
	}
	if detail.Assignee == nil || detail.Assignee.Name != "Dana" {
		t.Errorf("assignee missing: %+v", detail.Assignee)
	}
	if detail.Creator == nil || detail.Creator.Name != "Sam" {
		t.Errorf("creator missing: %+v", detail.Creator)
	}
	if detail.Team == nil || detail.Team.Key != "ENG" {
		t.Errorf("team missing: %+v", detail.Team)
	}
	if detail.Project == nil || detail.Project.Name != "Build pipeline" {
		t.Errorf("project missing: %+v", detail.Project)
	}
	if len(detail.Labels) != 1 || detail.Labels[0].Name != "bug" {
		t.Errorf("labels missing: %+v", detail.Labels)
	}
	if len(detail.Comments) != 1 {
		t.Errorf("comments missing: %+v", detail.Comments)
	}
	if detail.Attachments == nil {
		t.Error("attachments should render as an empty array, not null")
	}

	// Every relation accessor ran exactly once.
	wantCalls := map[string]bool{
		"IssueState": false, "IssueAssignee": false, "IssueCreator": false,
		"IssueTeam": false, "IssueProject": false, "IssueParent": false,
		"IssueCycle": false, "IssueLabels": false, "IssueComments": false,
		"IssueAttachments": false,
	}
	for _, call := range fake.calls {
		if _, relevant := wantCalls[call]; relevant {
			if wantCalls[call] {
				t.Errorf("relation %s fetched twice", call)
			}
			wantCalls[call] = true
		}
	}
	for call, seen := range wantCalls {
		if !seen {
			t.Errorf("relation %s never fetched", call)
		}
	}
}

func TestGetIssueTool_MissingIssueID(t *testing.T) {
	tool := NewGetIssueTool(singleEnv(t, &fakeAPI{}))

	result, err := tool.Handle(context.Background(), callReq(map[string]any{}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) || !strings.Contains(getResultText(result), "issueId") {
		t.Errorf("want missing-issueId error, got: %s", getResultText(result))
	}
}

func TestGetIssueTool_RelationFailureFailsTheCall(t *testing.T) {
	fake := &fakeAPI{
		issue:       &linear.Issue{ID: "iss-1"},
		relationErr: &linear.APIError{Messages: []string{"relation exploded"}},
	}
	tool := NewGetIssueTool(singleEnv(t, fake))

	result, err := tool.Handle(context.Background(), callReq(map[string]any{"issueId": "iss-1"}))
	if err != nil {
		t.Fatalf("relation failures must not become protocol faults: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("a failed relation fetch should fail the call")
	}
	if !strings.Contains(getResultText(result), "relation exploded") {
		t.Errorf("upstream message should be preserved, got: %s", getResultText(result))
	}
}

func TestGetIssueTool_IssueNotFoundSkipsFanOut(t *testing.T) {
	fake := &fakeAPI{err: &linear.APIError{Messages: []string{"issue not found"}}}
	tool := NewGetIssueTool(singleEnv(t, fake))

	result, err := tool.Handle(context.Background(), callReq(map[string]any{"issueId": "nope"}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("a missing issue should be an error result")
	}
	if len(fake.calls) != 1 || fake.calls[0] != "Issue" {
		t.Errorf("relations must not be fetched for a missing issue, got %v", fake.calls)
	}
}
