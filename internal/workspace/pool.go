package workspace

import (
	"github.com/mberan/linear-mcp/internal/config"
	"github.com/mberan/linear-mcp/internal/linear"
)

// ClientFactory builds the API client for one workspace record. The
// default factory wraps linear.NewClient; tests substitute fakes.
type ClientFactory func(config.Workspace) linear.API

// DefaultClientFactory creates a real Linear client from the record's
// API key.
func DefaultClientFactory(ws config.Workspace) linear.API {
	return linear.NewClient(ws.APIKey)
}

// Pool maps workspace ids to live API clients. Built once at startup,
// never mutated afterwards; clients are stateless HTTP wrappers.
type Pool struct {
	clients map[string]linear.API
}

// NewPool constructs one client per record. Construction is infallible —
// a bad credential only surfaces on the first real upstream call.
func NewPool(records []config.Workspace, factory ClientFactory) *Pool {
	p := &Pool{clients: make(map[string]linear.API, len(records))}
	for _, ws := range records {
		p.clients[ws.ID] = factory(ws)
	}
	return p
}

// Get returns the client for a workspace id.
func (p *Pool) Get(id string) (linear.API, bool) {
	c, ok := p.clients[id]
	return c, ok
}
