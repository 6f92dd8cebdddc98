// Package version holds the binary's version string in one place so the
// CLI app and the MCP Implementation always report the same number.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/kutbudev/planner-mcp/internal/version.Version=...".
var Version = "1.1.0"
