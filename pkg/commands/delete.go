package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/commands/options"
	"tableflip.dev/backlog/pkg/runner/remove"
	"tableflip.dev/backlog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addDelete(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"remove", "rm"},
		Short:   "Delete an item from a list",
		Example: `
backlog delete m2
backlog delete g4 --games
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an item id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:      io.ID,
				View:    co.View(),
				Service: app.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCatalogArgs(cmd, co)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
