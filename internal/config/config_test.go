package config

import (
	"errors"
	"net/url"
	"testing"
)

func TestParse_MissingValue(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		if _, err := Parse(raw); !errors.Is(err, ErrMissingConfig) {
			t.Errorf("Parse(%q): want ErrMissingConfig, got %v", raw, err)
		}
	}
}

func TestParse_BareKey(t *testing.T) {
	set, err := Parse("lin_api_abc123")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(set.Workspaces) != 1 {
		t.Fatalf("want exactly one workspace, got %d", len(set.Workspaces))
	}
	ws := set.Workspaces[0]
	if ws.ID != DefaultWorkspaceID {
		t.Errorf("want id %q, got %q", DefaultWorkspaceID, ws.ID)
	}
	if ws.APIKey != "lin_api_abc123" {
		t.Errorf("want the raw value as API key, got %q", ws.APIKey)
	}
	if len(ws.Aliases) != 0 {
		t.Errorf("bare-key workspace should have no aliases, got %v", ws.Aliases)
	}
	if set.ActiveID != DefaultWorkspaceID {
		t.Errorf("bare-key workspace should be active, got active %q", set.ActiveID)
	}
}

func TestParse_MalformedJSONFallsBackToBareKey(t *testing.T) {
	// Not valid JSON, but a perfectly plausible key with braces in it.
	raw := `{"workspaces": [broken`
	set, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(set.Workspaces) != 1 || set.Workspaces[0].ID != DefaultWorkspaceID {
		t.Fatalf("malformed JSON should fall back to a single default workspace, got %+v", set.Workspaces)
	}
	if set.Workspaces[0].APIKey != raw {
		t.Errorf("fallback should keep the raw value as key, got %q", set.Workspaces[0].APIKey)
	}
}

func TestParse_JSONWithoutWorkspacesFallsBackToBareKey(t *testing.T) {
	raw := `{"apiKey":"lin_api_abc"}`
	set, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(set.Workspaces) != 1 || set.Workspaces[0].ID != DefaultWorkspaceID {
		t.Fatalf("JSON without a workspaces array should be treated as a bare key, got %+v", set.Workspaces)
	}
}

func TestParse_Structured(t *testing.T) {
	raw := `{"workspaces":[` +
		`{"id":"a","name":"Alpha","email":"a@example.com","apiKey":"key-a","aliases":"work, main"},` +
		`{"id":"b","name":"Beta","apiKey":"key-b"}` +
		`],"activeWorkspaceId":"b"}`

	set, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(set.Workspaces) != 2 {
		t.Fatalf("want 2 workspaces, got %d", len(set.Workspaces))
	}
	a := set.Workspaces[0]
	if a.ID != "a" || a.Name != "Alpha" || a.Email != "a@example.com" || a.APIKey != "key-a" {
		t.Errorf("workspace a parsed wrong: %+v", a)
	}
	if len(a.Aliases) != 2 || a.Aliases[0] != "work" || a.Aliases[1] != "main" {
		t.Errorf("aliases should be split and trimmed, got %v", a.Aliases)
	}
	if set.ActiveID != "b" {
		t.Errorf("want active %q, got %q", "b", set.ActiveID)
	}
}

func TestParse_URLEncoded(t *testing.T) {
	plain := `{"workspaces":[{"id":"a","apiKey":"key-a"}]}`
	set, err := Parse(url.QueryEscape(plain))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(set.Workspaces) != 1 || set.Workspaces[0].ID != "a" {
		t.Fatalf("URL-encoded config should decode to the structured form, got %+v", set.Workspaces)
	}
}

func TestParse_DefaultActiveIsFirstDeclared(t *testing.T) {
	raw := `{"workspaces":[{"id":"x","apiKey":"k1"},{"id":"y","apiKey":"k2"}]}`
	set, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if set.ActiveID != "x" {
		t.Errorf("without activeWorkspaceId the first workspace is active, got %q", set.ActiveID)
	}
}

func TestParse_UnknownActiveFallsBackToFirst(t *testing.T) {
	raw := `{"workspaces":[{"id":"x","apiKey":"k1"}],"activeWorkspaceId":"nope"}`
	set, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if set.ActiveID != "x" {
		t.Errorf("unknown activeWorkspaceId should fall back to first declared, got %q", set.ActiveID)
	}
}

func TestParse_DuplicateIDsLastWins(t *testing.T) {
	raw := `{"workspaces":[` +
		`{"id":"a","name":"First","apiKey":"old"},` +
		`{"id":"b","apiKey":"k-b"},` +
		`{"id":"a","name":"Second","apiKey":"new"}` +
		`]}`

	set, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(set.Workspaces) != 2 {
		t.Fatalf("duplicates should collapse, want 2, got %d", len(set.Workspaces))
	}
	a := set.Workspaces[0]
	if a.ID != "a" || a.Name != "Second" || a.APIKey != "new" {
		t.Errorf("last duplicate should win, got %+v", a)
	}
}

func TestParse_SkipsEntriesWithoutID(t *testing.T) {
	raw := `{"workspaces":[{"name":"NoID","apiKey":"k"},{"id":"a","apiKey":"k-a"}]}`
	set, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(set.Workspaces) != 1 || set.Workspaces[0].ID != "a" {
		t.Fatalf("entries without an id should be skipped, got %+v", set.Workspaces)
	}
}

func TestParse_EmptyWorkspacesIsNoCredential(t *testing.T) {
	if _, err := Parse(`{"workspaces":[]}`); !errors.Is(err, ErrNoCredential) {
		t.Errorf("want ErrNoCredential for an empty workspaces array, got %v", err)
	}
}
