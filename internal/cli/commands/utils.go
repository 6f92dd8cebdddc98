package commands

import (
	"fmt"

	"github.com/kutbudev/planner-mcp/internal/auth"
	"github.com/kutbudev/planner-mcp/internal/config"
	"github.com/kutbudev/planner-mcp/internal/graph"
)

// newClient builds a graph client from configuration and the default token
// source (env override, then keyring).
func newClient() (*graph.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return graph.NewClient(cfg.Graph.BaseURL, cfg.Graph.Timeout, auth.DefaultTokenSource()), nil
}
