package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/kikiyinfu/cruised/params"
)

func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Send commands to an active cruised instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:  "presets",
				Usage: "Load a settings preset into an active cruised instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return presets()
				},
			},
			{
				Name:    "params",
				Aliases: []string{"p"},
				Usage:   "Inspect and reset the params cruised reads",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List all params with their values",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return listParams()
						},
					},
					{
						Name:      "get",
						Usage:     "Print the value of a single param",
						ArgsUsage: "<name>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							name := cmd.Args().First()
							if name == "" {
								return fmt.Errorf("param name required")
							}
							data, err := params.GetParam(params.ParamPath(name))
							if err != nil {
								return err
							}
							fmt.Println(string(data))
							return nil
						},
					},
					{
						Name:      "reset",
						Usage:     "Delete a param so the daemon falls back to its default",
						ArgsUsage: "<name>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							name := cmd.Args().First()
							if name == "" {
								return fmt.Errorf("param name required")
							}
							return resetParam(name)
						},
					},
				},
			},
		},
		Name:  "Cruised",
		Usage: "Start an instance of cruised",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
