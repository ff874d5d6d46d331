package linear

// GraphQL documents sent to the Linear API. Selections here define the
// shapes in types.go; variables are bound in client.go.

const issueFields = `
id
identifier
title
description
priority
url
createdAt
updatedAt
`

const queryIssue = `
query Issue($id: String!) {
  issue(id: $id) {` + issueFields + `}
}`

const queryIssues = `
query Issues($filter: IssueFilter, $first: Int!) {
  issues(filter: $filter, first: $first) {
    nodes {` + issueFields + `}
    pageInfo { hasNextPage endCursor }
  }
}`

const querySearchIssues = `
query SearchIssues($term: String!, $first: Int!, $after: String) {
  searchIssues(term: $term, first: $first, after: $after) {
    nodes {` + issueFields + `}
    pageInfo { hasNextPage endCursor }
  }
}`

const mutationCreateIssue = `
mutation CreateIssue($input: IssueCreateInput!) {
  issueCreate(input: $input) {
    success
    issue {` + issueFields + `}
  }
}`

const mutationUpdateIssue = `
mutation UpdateIssue($id: String!, $input: IssueUpdateInput!) {
  issueUpdate(id: $id, input: $input) {
    success
    issue {` + issueFields + `}
  }
}`

const mutationCreateComment = `
mutation CreateComment($input: CommentCreateInput!) {
  commentCreate(input: $input) {
    success
    comment {
      id
      body
      createdAt
      url
      user { id name displayName email }
    }
  }
}`

const queryTeams = `
query Teams {
  teams {
    nodes { id name key }
  }
}`

const queryProjects = `
query Projects($filter: ProjectFilter, $first: Int!, $after: String) {
  projects(filter: $filter, first: $first, after: $after) {
    nodes { id name state url }
    pageInfo { hasNextPage endCursor }
  }
}`

const queryTeamWorkflowStates = `
query TeamWorkflowStates($teamId: String!, $after: String) {
  team(id: $teamId) {
    states(first: 50, after: $after) {
      nodes { id name type color position }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

// Relation queries. Each fetches exactly one relation of one issue so the
// tool layer can fan them out independently.

const queryIssueState = `
query IssueState($id: String!) {
  issue(id: $id) {
    state { id name type color position }
  }
}`

const queryIssueAssignee = `
query IssueAssignee($id: String!) {
  issue(id: $id) {
    assignee { id name displayName email }
  }
}`

const queryIssueCreator = `
query IssueCreator($id: String!) {
  issue(id: $id) {
    creator { id name displayName email }
  }
}`

const queryIssueTeam = `
query IssueTeam($id: String!) {
  issue(id: $id) {
    team { id name key }
  }
}`

const queryIssueProject = `
query IssueProject($id: String!) {
  issue(id: $id) {
    project { id name state url }
  }
}`

const queryIssueParent = `
query IssueParent($id: String!) {
  issue(id: $id) {
    parent {` + issueFields + `}
  }
}`

const queryIssueCycle = `
query IssueCycle($id: String!) {
  issue(id: $id) {
    cycle { id name number startsAt endsAt }
  }
}`

const queryIssueLabels = `
query IssueLabels($id: String!) {
  issue(id: $id) {
    labels { nodes { id name color } }
  }
}`

const queryIssueComments = `
query IssueComments($id: String!) {
  issue(id: $id) {
    comments {
      nodes {
        id
        body
        createdAt
        url
        user { id name displayName email }
      }
    }
  }
}`

const queryIssueAttachments = `
query IssueAttachments($id: String!) {
  issue(id: $id) {
    attachments { nodes { id title url } }
  }
}`
