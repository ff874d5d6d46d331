package linear

// Flattened shapes for the slice of the Linear schema this server exposes.
// Fields mirror the GraphQL selections in queries.go; anything the API can
// omit is a pointer or zero value.

// Issue is the scalar core of a Linear issue. Relations (state, assignee,
// labels, ...) are fetched separately — see the Issue* accessors on API.
type Issue struct {
	ID          string  `json:"id"`
	Identifier  string  `json:"identifier"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Priority    float64 `json:"priority"`
	URL         string  `json:"url"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// WorkflowState is one state in a team's workflow (e.g. Todo, In Progress).
type WorkflowState struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Color    string  `json:"color,omitempty"`
	Position float64 `json:"position"`
}

type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
}

type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state,omitempty"`
	URL   string `json:"url,omitempty"`
}

type Cycle struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Number   float64 `json:"number"`
	StartsAt string  `json:"startsAt,omitempty"`
	EndsAt   string  `json:"endsAt,omitempty"`
}

type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Comment struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	User      *User  `json:"user,omitempty"`
	CreatedAt string `json:"createdAt"`
	URL       string `json:"url,omitempty"`
}

type Attachment struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url"`
}

// PageInfo is Linear's relay-style pagination marker.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor,omitempty"`
}

type IssuePage struct {
	Nodes    []Issue  `json:"nodes"`
	PageInfo PageInfo `json:"pageInfo"`
}

type ProjectPage struct {
	Nodes    []Project `json:"nodes"`
	PageInfo PageInfo  `json:"pageInfo"`
}

type WorkflowStatePage struct {
	Nodes    []WorkflowState `json:"nodes"`
	PageInfo PageInfo        `json:"pageInfo"`
}

// CreateIssueInput carries the fields of an issue-creation mutation.
// TeamID and Title are validated at the tool boundary.
type CreateIssueInput struct {
	TeamID      string
	Title       string
	Description string
	Priority    *int
	StateID     string
}

// UpdateIssueInput carries the mutable issue fields. Nil pointers are
// omitted from the mutation, leaving the upstream value unchanged.
type UpdateIssueInput struct {
	Title       *string
	Description *string
	Priority    *int
	StateID     *string
}

// IssueFilter narrows an issue listing. Empty fields are not sent.
type IssueFilter struct {
	TeamID     string
	AssigneeID string
	StateID    string
	Limit      int
}

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	TeamID string
	Limit  int
	Cursor string
}
