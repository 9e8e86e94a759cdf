package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/commands/options"
	"tableflip.dev/backlog/pkg/runner/edit"
	"tableflip.dev/backlog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addEdit(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	fo := &options.ContentOptions{}
	io := &options.IDOptions{}

	title := ""

	cmd := &cobra.Command{
		Use:   "edit <id> [title]",
		Short: "Edit an item in place",
		Example: `
backlog edit m1 "Dune: Part Three"
backlog edit g3 --games -c Soulslike
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an item id")
			}
			io.ID = args[0]
			if len(args) > 1 {
				title = args[1]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:      io.ID,
				View:    co.View(),
				Fields:  fo.Fields(title),
				Service: app.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCatalogArgs(cmd, co)
	options.AddContentArgs(cmd, fo)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
