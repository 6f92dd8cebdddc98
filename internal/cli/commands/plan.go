package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kutbudev/planner-mcp/internal/models"
	"github.com/urfave/cli/v2"
)

func NewPlanCommand() *cli.Command {
	return &cli.Command{
		Name:  "plans",
		Usage: "Inspect Planner plans",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List your plans",
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}
					body, err := client.ListPlans(c.Context)
					if err != nil {
						return err
					}
					var plans models.ListEnvelope[models.Plan]
					if err := json.Unmarshal(body, &plans); err != nil {
						return fmt.Errorf("failed to unmarshal plans: %w", err)
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tTITLE\tGROUP")
					for _, p := range plans.Value {
						fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Title, p.GroupID())
					}
					return w.Flush()
				},
			},
			{
				Name:      "show",
				Usage:     "Show plan details (category labels)",
				ArgsUsage: "<plan-id>",
				Action: func(c *cli.Context) error {
					planID := c.Args().First()
					if planID == "" {
						return fmt.Errorf("plan id is required")
					}
					client, err := newClient()
					if err != nil {
						return err
					}
					body, err := client.GetPlanDetails(c.Context, planID)
					if err != nil {
						return err
					}
					fmt.Println(string(body))
					return nil
				},
			},
			{
				Name:      "buckets",
				Usage:     "List a plan's buckets",
				ArgsUsage: "<plan-id>",
				Action: func(c *cli.Context) error {
					planID := c.Args().First()
					if planID == "" {
						return fmt.Errorf("plan id is required")
					}
					client, err := newClient()
					if err != nil {
						return err
					}
					body, err := client.ListBuckets(c.Context, planID)
					if err != nil {
						return err
					}
					var buckets models.ListEnvelope[models.Bucket]
					if err := json.Unmarshal(body, &buckets); err != nil {
						return fmt.Errorf("failed to unmarshal buckets: %w", err)
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tNAME")
					for _, b := range buckets.Value {
						fmt.Fprintf(w, "%s\t%s\n", b.ID, b.Name)
					}
					return w.Flush()
				},
			},
		},
	}
}
