package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/commands/options"
	"tableflip.dev/backlog/pkg/runner/complete"
	"tableflip.dev/backlog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addComplete(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"completed", "done", "finish"},
		Short:   "complete something",
		Example: `
backlog complete m1
backlog complete g3 --games
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
			// There is nobody to watch an animation here, so the delay is
			// collapsed and the pipeline runs before Do returns.
			s := complete.Complete{
				ID:      io.ID,
				View:    co.View(),
				Service: app.New(p, app.WithScheduler(app.Immediate())),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCatalogArgs(cmd, co)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
