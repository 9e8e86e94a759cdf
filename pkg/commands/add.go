package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/commands/options"
	"tableflip.dev/backlog/pkg/runner/add"
	"tableflip.dev/backlog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addAdd(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	fo := &options.ContentOptions{}

	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an item to a list",
		Example: `
backlog add Dune: Part Two --category=Sci-Fi
backlog add --games "Hades II" -d "Roguelike sequel" -c Roguelike
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
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
