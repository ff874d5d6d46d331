package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mberan/linear-mcp/internal/config"
)

func multiWorkspaceSet() *config.WorkspaceSet {
	return &config.WorkspaceSet{
		Workspaces: []config.Workspace{
			{ID: "a", Name: "Alpha", APIKey: "key-a", Aliases: []string{"work", "main"}},
			{ID: "b", Name: "Beta", APIKey: "key-b"},
		},
		ActiveID: "a",
	}
}

type workspaceListing struct {
	Note            string `json:"note"`
	ActiveWorkspace string `json:"activeWorkspace"`
	Workspaces      []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Active bool   `json:"active"`
	} `json:"workspaces"`
}

func TestWorkspaceTool_List(t *testing.T) {
	registry, _ := newTestEnv(t, multiWorkspaceSet(), map[string]*fakeAPI{"a": {}, "b": {}})
	tool := NewWorkspaceTool(registry)

	result, err := tool.Handle(context.Background(), callReq(map[string]any{}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("listing should never be an error: %s", getResultText(result))
	}

	var listing workspaceListing
	decodeResult(t, result, &listing)
	if listing.ActiveWorkspace != "a" {
		t.Errorf("want active a, got %q", listing.ActiveWorkspace)
	}
	if len(listing.Workspaces) != 2 {
		t.Fatalf("want 2 workspaces, got %d", len(listing.Workspaces))
	}
	if !listing.Workspaces[0].Active || listing.Workspaces[1].Active {
		t.Errorf("active flag wrong: %+v", listing.Workspaces)
	}

	// The credential must never appear in the listing.
	if strings.Contains(getResultText(result), "key-a") {
		t.Error("listing leaks the API key")
	}
}

func TestWorkspaceTool_SwitchByAlias(t *testing.T) {
	set := &config.WorkspaceSet{
		Workspaces: []config.Workspace{
			{ID: "a", Name: "Alpha", APIKey: "key-a"},
			{ID: "b", Name: "Beta", APIKey: "key-b", Aliases: []string{"side"}},
		},
		ActiveID: "a",
	}
	registry, router := newTestEnv(t, set, map[string]*fakeAPI{"a": {}, "b": {}})
	tool := NewWorkspaceTool(registry)

	result, err := tool.Handle(context.Background(), callReq(map[string]any{"workspace": "SIDE"}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("switching should succeed: %s", getResultText(result))
	}

	var listing workspaceListing
	decodeResult(t, result, &listing)
	if listing.ActiveWorkspace != "b" {
		t.Errorf("want active b after switch, got %q", listing.ActiveWorkspace)
	}

	// Subsequent selector-less calls route to the new active workspace.
	api, err := router.Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if fake, ok := api.(*fakeAPI); !ok || fake.workspaceID != "b" {
		t.Errorf("resolution should follow the switch, got %T %+v", api, api)
	}
}

func TestWorkspaceTool_UnknownSelectorIsInformational(t *testing.T) {
	registry, _ := newTestEnv(t, multiWorkspaceSet(), map[string]*fakeAPI{"a": {}, "b": {}})
	tool := NewWorkspaceTool(registry)

	result, err := tool.Handle(context.Background(), callReq(map[string]any{"workspace": "nope"}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatal("the workspace tool never raises for an unknown name, it reports")
	}

	var listing workspaceListing
	decodeResult(t, result, &listing)
	if !strings.Contains(listing.Note, `"nope"`) {
		t.Errorf("note should name the unmatched selector, got %q", listing.Note)
	}
	if listing.ActiveWorkspace != "a" {
		t.Errorf("an unknown selector must not move the active pointer, got %q", listing.ActiveWorkspace)
	}
	if len(listing.Workspaces) != 2 {
		t.Errorf("listing should enumerate the available workspaces, got %+v", listing.Workspaces)
	}
}

func TestWorkspaceTool_SwitchIsIdempotent(t *testing.T) {
	registry, _ := newTestEnv(t, multiWorkspaceSet(), map[string]*fakeAPI{"a": {}, "b": {}})
	tool := NewWorkspaceTool(registry)

	for i := 0; i < 2; i++ {
		result, err := tool.Handle(context.Background(), callReq(map[string]any{"workspace": "b"}))
		if err != nil {
			t.Fatalf("Handle failed on call %d: %v", i+1, err)
		}
		var listing workspaceListing
		decodeResult(t, result, &listing)
		if listing.ActiveWorkspace != "b" {
			t.Errorf("call %d: want active b, got %q", i+1, listing.ActiveWorkspace)
		}
	}
}

// Routing across workspaces through a regular tool: the selector beats the
// active workspace, the active workspace beats declaration order.
func TestTools_RouteAcrossWorkspaces(t *testing.T) {
	fakes := map[string]*fakeAPI{"a": {}, "b": {}}
	registry, router := newTestEnv(t, multiWorkspaceSet(), fakes)
	tool := NewGetTeamsTool(router)

	// Explicit selector routes to b even though a is active.
	if _, err := tool.Handle(context.Background(), callReq(map[string]any{"workspace": "Beta"})); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if len(fakes["b"].calls) != 1 || len(fakes["a"].calls) != 0 {
		t.Errorf("selector should route to b: a=%v b=%v", fakes["a"].calls, fakes["b"].calls)
	}

	// No selector routes to the active workspace.
	if _, err := tool.Handle(context.Background(), callReq(map[string]any{})); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if len(fakes["a"].calls) != 1 {
		t.Errorf("selector-less call should route to the active workspace a, got %v", fakes["a"].calls)
	}

	// After switching, selector-less calls follow the new active pointer.
	if err := registry.SetActive("b"); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if _, err := tool.Handle(context.Background(), callReq(map[string]any{})); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if len(fakes["b"].calls) != 2 {
		t.Errorf("selector-less call should now route to b, got %v", fakes["b"].calls)
	}
}
