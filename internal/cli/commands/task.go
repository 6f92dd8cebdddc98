package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kutbudev/planner-mcp/internal/graph"
	"github.com/kutbudev/planner-mcp/internal/models"
	"github.com/urfave/cli/v2"
)

func NewTaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "Inspect and change Planner tasks",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List tasks of a plan (or your own tasks with --mine)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "plan", Usage: "plan id"},
					&cli.BoolFlag{Name: "mine", Usage: "list your assigned tasks across plans"},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}
					var body []byte
					switch {
					case c.Bool("mine"):
						body, err = client.MyTasks(c.Context)
					case c.String("plan") != "":
						body, err = client.ListTasks(c.Context, c.String("plan"))
					default:
						return fmt.Errorf("either --plan or --mine is required")
					}
					if err != nil {
						return err
					}
					var tasks models.ListEnvelope[models.Task]
					if err := json.Unmarshal(body, &tasks); err != nil {
						return fmt.Errorf("failed to unmarshal tasks: %w", err)
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tDONE%\tTITLE")
					for _, t := range tasks.Value {
						fmt.Fprintf(w, "%s\t%d\t%s\n", t.ID, t.PercentComplete, t.Title)
					}
					return w.Flush()
				},
			},
			{
				Name:      "create",
				Usage:     "Create a task",
				ArgsUsage: "<title>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "plan", Usage: "plan id", Required: true},
					&cli.StringFlag{Name: "bucket", Usage: "bucket id", Required: true},
				},
				Action: func(c *cli.Context) error {
					title := c.Args().First()
					if title == "" {
						return fmt.Errorf("task title is required")
					}
					client, err := newClient()
					if err != nil {
						return err
					}
					body, err := client.CreateTask(c.Context, c.String("plan"), c.String("bucket"), title)
					if err != nil {
						return err
					}
					fmt.Println(string(body))
					return nil
				},
			},
			{
				Name:      "done",
				Usage:     "Mark a task 100% complete",
				ArgsUsage: "<task-id>",
				Action: func(c *cli.Context) error {
					taskID := c.Args().First()
					if taskID == "" {
						return fmt.Errorf("task id is required")
					}
					client, err := newClient()
					if err != nil {
						return err
					}
					pc := 100
					if _, err := client.UpdateTask(c.Context, taskID, graph.TaskUpdate{PercentComplete: &pc}); err != nil {
						return err
					}
					fmt.Println("Task completed.")
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Show a task with its details",
				ArgsUsage: "<task-id>",
				Action: func(c *cli.Context) error {
					taskID := c.Args().First()
					if taskID == "" {
						return fmt.Errorf("task id is required")
					}
					client, err := newClient()
					if err != nil {
						return err
					}
					task, err := client.GetTask(c.Context, taskID)
					if err != nil {
						return err
					}
					details, err := client.GetTaskDetails(c.Context, taskID)
					if err != nil {
						return err
					}
					fmt.Println(string(task))
					fmt.Println(string(details))
					return nil
				},
			},
		},
	}
}
