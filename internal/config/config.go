// Package config parses the workspace configuration out of a single
// environment value.
//
// The value is either a bare Linear API key or a URL-encoded JSON document
// describing several workspaces. The two-stage decode is explicit: decode()
// classifies the raw value into a tagged rawConfig (structured or bare key)
// and Parse builds the final WorkspaceSet from whichever variant came back.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mberan/linear-mcp/internal/logger"
	"go.uber.org/zap"
)

// EnvVar is the environment variable holding the configuration value.
const EnvVar = "LINEAR_API_KEY"

// DefaultWorkspaceID is the id synthesized for a bare-key configuration.
const DefaultWorkspaceID = "default"

var (
	// ErrMissingConfig means the configuration value was absent or empty.
	ErrMissingConfig = errors.New("config: " + EnvVar + " is not set")

	// ErrNoCredential means the value was present but yielded no usable
	// workspace credential.
	ErrNoCredential = errors.New("config: no workspace credential found")
)

// ShapeHint describes the accepted configuration shapes. Printed with
// startup-fatal diagnostics.
const ShapeHint = EnvVar + ` must be either a bare API key, or a URL-encoded JSON document:
  {"workspaces":[{"id":"...","name":"...","email":"...","apiKey":"...","aliases":"alias1, alias2"}],"activeWorkspaceId":"..."}`

// Workspace is one configured account/credential pair. Immutable after
// parse.
type Workspace struct {
	ID      string
	Name    string
	Email   string
	APIKey  string
	Aliases []string
}

// WorkspaceSet is the parsed configuration: workspaces in declaration
// order plus the initially active workspace id.
type WorkspaceSet struct {
	Workspaces []Workspace
	ActiveID   string
}

type rawWorkspace struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	APIKey  string `json:"apiKey"`
	Aliases string `json:"aliases"`
}

type structuredConfig struct {
	Workspaces        []rawWorkspace `json:"workspaces"`
	ActiveWorkspaceID string         `json:"activeWorkspaceId"`
}

type rawKind int

const (
	rawBareKey rawKind = iota
	rawStructured
)

// rawConfig is the outcome of the first decode stage.
type rawConfig struct {
	kind rawKind
	set  structuredConfig
	key  string
}

// decode classifies the raw value. Anything that fails URL-decoding or
// JSON parsing, or that parses without a "workspaces" array, is treated
// as a bare API key.
func decode(raw string) rawConfig {
	text, err := url.QueryUnescape(raw)
	if err != nil {
		return rawConfig{kind: rawBareKey, key: raw}
	}

	var set structuredConfig
	if err := json.Unmarshal([]byte(text), &set); err != nil || set.Workspaces == nil {
		return rawConfig{kind: rawBareKey, key: raw}
	}
	return rawConfig{kind: rawStructured, set: set}
}

// Parse turns the raw configuration value into a WorkspaceSet.
func Parse(raw string) (*WorkspaceSet, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrMissingConfig
	}

	rc := decode(raw)
	if rc.kind == rawBareKey {
		return &WorkspaceSet{
			Workspaces: []Workspace{{ID: DefaultWorkspaceID, APIKey: strings.TrimSpace(rc.key)}},
			ActiveID:   DefaultWorkspaceID,
		}, nil
	}

	set := buildSet(rc.set)
	if len(set.Workspaces) == 0 {
		return nil, fmt.Errorf("%w: %q declares no usable workspaces", ErrNoCredential, EnvVar)
	}
	return set, nil
}

// buildSet applies the permissive shaping rules: entries without an id are
// skipped, a repeated id overwrites the earlier entry, aliases are split on
// commas and trimmed.
func buildSet(sc structuredConfig) *WorkspaceSet {
	log := logger.Get()

	var ordered []string
	byID := make(map[string]Workspace)

	for _, rw := range sc.Workspaces {
		if rw.ID == "" {
			log.Warn("skipping workspace entry with empty id", zap.String("name", rw.Name))
			continue
		}
		if _, seen := byID[rw.ID]; !seen {
			ordered = append(ordered, rw.ID)
		}
		byID[rw.ID] = Workspace{
			ID:      rw.ID,
			Name:    rw.Name,
			Email:   rw.Email,
			APIKey:  rw.APIKey,
			Aliases: splitAliases(rw.Aliases),
		}
	}

	set := &WorkspaceSet{}
	for _, id := range ordered {
		set.Workspaces = append(set.Workspaces, byID[id])
	}

	switch {
	case sc.ActiveWorkspaceID != "" && containsID(set.Workspaces, sc.ActiveWorkspaceID):
		set.ActiveID = sc.ActiveWorkspaceID
	case sc.ActiveWorkspaceID != "":
		log.Warn("activeWorkspaceId does not match any workspace, using first declared",
			zap.String("activeWorkspaceId", sc.ActiveWorkspaceID))
		fallthrough
	default:
		if len(set.Workspaces) > 0 {
			set.ActiveID = set.Workspaces[0].ID
		}
	}

	return set
}

func splitAliases(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var aliases []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			aliases = append(aliases, trimmed)
		}
	}
	return aliases
}

func containsID(workspaces []Workspace, id string) bool {
	for _, ws := range workspaces {
		if ws.ID == id {
			return true
		}
	}
	return false
}
