// Package mcptools exposes the operation catalog as MCP tools so agents
// can issue the same read-only queries the CLI offers, plus a raw GraphQL
// escape hatch.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jamesprial/unraid-cli/internal/catalog"
	"github.com/jamesprial/unraid-cli/internal/graphql"
	"github.com/jamesprial/unraid-cli/internal/safety"
)

const toolNameRawQuery = "graphql_query"

// Registration pairs an MCP tool definition with its handler function.
type Registration struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// RegisterAll adds every Registration in the provided slice to the given
// MCP server.
func RegisterAll(s *server.MCPServer, registrations []Registration) {
	for _, r := range registrations {
		s.AddTool(r.Tool, r.Handler)
	}
}

// CatalogTools returns one tool registration per read-only catalog query.
// Mutating operations are deliberately not exposed over MCP.
func CatalogTools(client graphql.Client, audit *safety.AuditLogger) []Registration {
	queries := catalog.Queries()
	regs := make([]Registration, 0, len(queries)+1)
	for _, op := range queries {
		regs = append(regs, queryTool(client, audit, op))
	}
	regs = append(regs, rawQueryTool(client, audit))
	return regs
}

// queryTool constructs the Registration for a single catalog query.
func queryTool(client graphql.Client, audit *safety.AuditLogger, op catalog.Operation) Registration {
	toolName := "unraid_" + strings.ReplaceAll(op.Name, "-", "_")

	toolOpts := []mcp.ToolOption{mcp.WithDescription(op.Description)}
	for _, a := range op.Args {
		if a.Name == "limit" {
			toolOpts = append(toolOpts, mcp.WithNumber(a.Name,
				mcp.Description("Maximum number of results to return."),
			))
			continue
		}
		argOpts := []mcp.PropertyOption{
			mcp.Description(fmt.Sprintf("The %q argument of the %s query.", a.Name, op.Name)),
		}
		toolOpts = append(toolOpts, mcp.WithString(a.Name, argOpts...))
	}
	tool := mcp.NewTool(toolName, toolOpts...)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		args := make(map[string]any, len(op.Args))
		for _, a := range op.Args {
			switch a.Name {
			case "limit":
				args[a.Name] = req.GetInt(a.Name, 100)
			case "type":
				args[a.Name] = req.GetString(a.Name, "UNREAD")
			default:
				if v := req.GetString(a.Name, ""); v != "" {
					args[a.Name] = v
				}
			}
		}

		doc, err := catalog.Run(ctx, client, op, args)
		if err != nil {
			safety.Record(audit, op.Name, "", "error: "+err.Error(), args, start)
			return ErrorResult(err.Error()), nil
		}

		safety.Record(audit, op.Name, "", "ok", args, start)
		return JSONResult(doc), nil
	}

	return Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// rawQueryTool constructs the graphql_query Registration: an escape hatch
// for arbitrary documents when the fixed catalog is not enough.
func rawQueryTool(client graphql.Client, audit *safety.AuditLogger) Registration {
	tool := mcp.NewTool(toolNameRawQuery,
		mcp.WithDescription("Execute an arbitrary GraphQL query against the Unraid API. Use when direct API access is needed beyond the provided tools."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The GraphQL query or mutation string to execute."),
		),
		mcp.WithString("variables",
			mcp.Description("Optional JSON object string of variables to pass with the query."),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		query := req.GetString("query", "")
		variablesStr := req.GetString("variables", "")

		params := map[string]any{
			"query":     query,
			"variables": variablesStr,
		}

		var parsedVars map[string]any
		if variablesStr != "" {
			if err := json.Unmarshal([]byte(variablesStr), &parsedVars); err != nil {
				errMsg := fmt.Sprintf("parse variables JSON: %v", err)
				safety.Record(audit, toolNameRawQuery, "", "error: "+errMsg, params, start)
				return ErrorResult(errMsg), nil
			}
		}

		doc, err := client.Execute(ctx, query, parsedVars)
		if err != nil {
			safety.Record(audit, toolNameRawQuery, "", "error: "+err.Error(), params, start)
			return ErrorResult(err.Error()), nil
		}

		safety.Record(audit, toolNameRawQuery, "", "ok", params, start)
		return JSONResult(doc), nil
	}

	return Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// JSONResult marshals v to indented JSON and returns an mcp.CallToolResult.
func JSONResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("error marshaling result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// ErrorResult returns an mcp.CallToolResult that describes an error condition.
func ErrorResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("error: %s", msg))
}
