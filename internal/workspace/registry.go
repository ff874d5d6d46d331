// Package workspace routes tool calls to the right Linear credential.
//
// A Registry holds the configured workspaces and the mutable active
// pointer, a Pool holds one API client per workspace, and the Router
// applies the selector precedence that picks a client for a call.
package workspace

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mberan/linear-mcp/internal/config"
)

// ErrNoWorkspaces means no workspace is configured at all. Resolution has
// nothing to fall back to.
var ErrNoWorkspaces = errors.New("no workspace configured")

// UnknownWorkspaceError reports a selector that matched no workspace id,
// name, or alias.
type UnknownWorkspaceError struct {
	Selector string
}

func (e *UnknownWorkspaceError) Error() string {
	return fmt.Sprintf("unknown workspace %q", e.Selector)
}

// Registry holds the configured workspace records and the active pointer.
// Records never change after construction; the active pointer is the only
// mutable state and is guarded for callers that share a Registry.
type Registry struct {
	mu       sync.RWMutex
	byID     map[string]config.Workspace
	order    []string
	activeID string
}

// NewRegistry builds a registry from a parsed workspace set. The set's
// ActiveID becomes the initial active pointer.
func NewRegistry(set *config.WorkspaceSet) *Registry {
	r := &Registry{
		byID:     make(map[string]config.Workspace, len(set.Workspaces)),
		activeID: set.ActiveID,
	}
	for _, ws := range set.Workspaces {
		r.byID[ws.ID] = ws
		r.order = append(r.order, ws.ID)
	}
	return r
}

// Lookup resolves a selector to a record, trying in order: exact id match,
// case-insensitive name match, case-insensitive alias match. The first
// matching tier wins; later tiers are not consulted once one matches.
func (r *Registry) Lookup(selector string) (config.Workspace, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ws, ok := r.byID[selector]; ok {
		return ws, true
	}

	for _, id := range r.order {
		ws := r.byID[id]
		if ws.Name != "" && strings.EqualFold(ws.Name, selector) {
			return ws, true
		}
	}

	want := strings.ToLower(strings.TrimSpace(selector))
	for _, id := range r.order {
		ws := r.byID[id]
		for _, alias := range ws.Aliases {
			if strings.ToLower(strings.TrimSpace(alias)) == want {
				return ws, true
			}
		}
	}

	return config.Workspace{}, false
}

// SetActive moves the active pointer. The id must be an exact workspace id;
// this is the only mutation the registry supports.
func (r *Registry) SetActive(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return &UnknownWorkspaceError{Selector: id}
	}
	r.activeID = id
	return nil
}

// ActiveRecord returns the record the active pointer designates, if any.
func (r *Registry) ActiveRecord() (config.Workspace, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.activeID == "" {
		return config.Workspace{}, false
	}
	ws, ok := r.byID[r.activeID]
	return ws, ok
}

// ActiveID returns the current active workspace id ("" if unset).
func (r *Registry) ActiveID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activeID
}

// ListAll returns every record in declaration order.
func (r *Registry) ListAll() []config.Workspace {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]config.Workspace, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// first returns the first-declared record, if any.
func (r *Registry) first() (config.Workspace, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return config.Workspace{}, false
	}
	return r.byID[r.order[0]], true
}
