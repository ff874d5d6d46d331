package workspace

import (
	"fmt"

	"github.com/mberan/linear-mcp/internal/linear"
)

// Router resolves a call's optional workspace selector to an API client.
type Router struct {
	registry *Registry
	pool     *Pool
}

// NewRouter wires a registry and its client pool.
func NewRouter(registry *Registry, pool *Pool) *Router {
	return &Router{registry: registry, pool: pool}
}

// Resolve picks the client for a call. Precedence, first success wins:
//
//  1. A non-empty selector is looked up by id/name/alias. An unknown
//     selector is a hard failure — it never falls through to the active
//     or default workspace.
//  2. The active workspace, if one is set.
//  3. The first-declared workspace.
//
// With no workspace configured at all, resolution fails with
// ErrNoWorkspaces.
func (r *Router) Resolve(selector string) (linear.API, error) {
	if selector != "" {
		ws, ok := r.registry.Lookup(selector)
		if !ok {
			return nil, &UnknownWorkspaceError{Selector: selector}
		}
		return r.client(ws.ID)
	}

	if ws, ok := r.registry.ActiveRecord(); ok {
		return r.client(ws.ID)
	}

	if ws, ok := r.registry.first(); ok {
		return r.client(ws.ID)
	}

	return nil, ErrNoWorkspaces
}

// client fetches the pooled client for a registry record. The pool holds
// one client per record, so a miss here means registry and pool were built
// from different sets.
func (r *Router) client(id string) (linear.API, error) {
	c, ok := r.pool.Get(id)
	if !ok {
		return nil, fmt.Errorf("no client for workspace %q", id)
	}
	return c, nil
}
