// Package catalog holds the fixed set of GraphQL operations unraidctl can
// issue against the Unraid API. Each entry is data: an operation name, a
// finished GraphQL document, and the variables it accepts. Caller-supplied
// values travel exclusively through the GraphQL variables channel; they are
// never interpolated into document text.
package catalog

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jamesprial/unraid-cli/internal/graphql"
)

// Kind distinguishes read-only queries from mutating operations.
type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// Arg describes a single variable accepted by an operation.
type Arg struct {
	Name     string
	Required bool
}

// Operation is one catalog entry. When Unsupported is non-empty the remote
// schema does not implement the operation and Run returns that message as
// an error without any network call.
type Operation struct {
	Name        string
	Kind        Kind
	Description string
	Document    string
	Args        []Arg
	Unsupported string
}

var registry = buildRegistry()

func buildRegistry() map[string]Operation {
	ops := make(map[string]Operation, len(queryOperations)+len(mutationOperations))
	for _, op := range queryOperations {
		ops[op.Name] = op
	}
	for _, op := range mutationOperations {
		ops[op.Name] = op
	}
	return ops
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, bool) {
	op, ok := registry[name]
	return op, ok
}

// Queries returns the read-only operations in their catalog order. This is
// the iteration order used by "query all".
func Queries() []Operation {
	return queryOperations
}

// Run validates args against the operation's declared variables and
// executes the document through c. Unsupported operations and argument
// errors return before any network call.
func Run(ctx context.Context, c graphql.Client, op Operation, args map[string]any) (map[string]any, error) {
	if op.Unsupported != "" {
		return nil, graphql.NewUnsupportedError(op.Unsupported)
	}

	vars, err := BuildVariables(op, args)
	if err != nil {
		return nil, err
	}

	return c.Execute(ctx, op.Document, vars)
}

// BuildVariables filters args down to the operation's declared variables.
// A nil value or empty string counts as absent; absent required arguments
// are an error, absent optional ones are simply omitted so the server sees
// a null variable.
func BuildVariables(op Operation, args map[string]any) (map[string]any, error) {
	declared := make(map[string]bool, len(op.Args))
	for _, a := range op.Args {
		declared[a.Name] = true
	}
	for name := range args {
		if !declared[name] {
			return nil, errors.Errorf("operation %s: unknown argument %q", op.Name, name)
		}
	}

	vars := make(map[string]any, len(op.Args))
	for _, a := range op.Args {
		v, ok := args[a.Name]
		if !ok || absent(v) {
			if a.Required {
				return nil, errors.Errorf("operation %s: missing required argument %q", op.Name, a.Name)
			}
			continue
		}
		vars[a.Name] = v
	}
	return vars, nil
}

// absent reports whether v counts as "not provided". Zero-valued booleans
// and numbers are real values; only nil and the empty string are absent.
func absent(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}
