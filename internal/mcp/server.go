// Package mcp exposes the Planner operations as MCP tools over stdio using
// the official go-sdk. Handlers are thin: validate parameters, call the
// graph client, return the upstream JSON verbatim or a short confirmation.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kutbudev/planner-mcp/internal/graph"
	"github.com/kutbudev/planner-mcp/internal/version"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// planner holds the graph client for tool handlers.
var planner *graph.Client

// ServeStdio starts the MCP server over stdio.
func ServeStdio(client *graph.Client) error {
	if client == nil {
		return errors.New("graph client is required")
	}
	planner = client

	server := mcp.NewServer(
		implementation(),
		&mcp.ServerOptions{
			Instructions: `Microsoft Planner over MCP.

Plans contain buckets, buckets contain tasks. Task descriptions, checklists
and references live on a separate task-details resource. Every mutation is
guarded by the resource's current ETag: if another writer got there first
the tool fails with a conflict instead of overwriting. On a conflict,
re-read the resource (get-task / get-task-details / list-buckets) and
reapply your change against current state. Conflicts are never retried
automatically.

Start with list-plans, then list-buckets / list-tasks with a planId.`,
		},
	)

	registerTools(server)

	return server.Run(context.Background(), &mcp.StdioTransport{})
}

// implementation identifies this server to MCP hosts. The version comes
// from the shared build-time variable, never a literal.
func implementation() *mcp.Implementation {
	return &mcp.Implementation{
		Name:    "planner-mcp",
		Version: version.Version,
	}
}

// rawResult returns an upstream response body verbatim as TextContent. An
// empty body is a valid upstream success and becomes the fallback message.
func rawResult(body []byte, fallback string) *mcp.CallToolResult {
	text := string(body)
	if text == "" {
		text = fallback
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// textResult marshals data as indented JSON TextContent.
func textResult(data any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, nil
}

// opError prefixes an error with the failed operation so the caller can
// tell which step to remediate.
func opError(op string, err error) error {
	return fmt.Errorf("%s failed: %w", op, err)
}
