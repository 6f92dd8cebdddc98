package main

import (
	"log"
	"os"

	"github.com/kutbudev/planner-mcp/internal/cli/commands"
	"github.com/kutbudev/planner-mcp/internal/version"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "planner-mcp",
		Usage:   "Microsoft Planner tools over MCP",
		Version: version.Version,
		Commands: []*cli.Command{
			commands.NewMcpCommand(),
			commands.NewAuthCommand(),
			commands.NewPlanCommand(),
			commands.NewTaskCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
