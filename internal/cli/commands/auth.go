package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/kutbudev/planner-mcp/internal/auth"
	"github.com/urfave/cli/v2"
)

func NewAuthCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the Graph access token",
		Subcommands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Store a Graph access token in the system keyring",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "token",
						Usage: "access token (prompted interactively if omitted)",
					},
				},
				Action: func(c *cli.Context) error {
					token := c.String("token")
					if token == "" {
						prompt := &survey.Password{
							Message: "Graph access token:",
						}
						if err := survey.AskOne(prompt, &token, survey.WithValidator(survey.Required)); err != nil {
							return err
						}
					}
					if err := auth.StoreToken(token); err != nil {
						return fmt.Errorf("failed to store token: %w", err)
					}
					fmt.Println("Token stored.")
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "Remove the stored access token",
				Action: func(c *cli.Context) error {
					if err := auth.DeleteToken(); err != nil {
						return fmt.Errorf("failed to delete token: %w", err)
					}
					fmt.Println("Token removed.")
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "Show whether an access token is available",
				Action: func(c *cli.Context) error {
					if auth.HasToken() {
						fmt.Println("Token available.")
						return nil
					}
					fmt.Println("No token found. Run 'planner-mcp auth login' or set " + auth.EnvToken + ".")
					return nil
				},
			},
		},
	}
}
