// Package graphql provides the HTTP session used to talk to the Unraid
// GraphQL API: one-time redirect discovery at construction, then plain
// POST execution of query and mutation documents.
package graphql

import "context"

// GraphQLError represents a single error entry in a GraphQL response body.
type GraphQLError struct {
	Message string `json:"message"`
}

// Client defines the interface for executing GraphQL operations. The
// returned document is the full decoded response body (data and errors
// fields included), exactly as the server sent it.
type Client interface {
	Execute(ctx context.Context, query string, variables map[string]any) (map[string]any, error)
}
