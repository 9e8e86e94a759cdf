package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/catalog"
	"tableflip.dev/backlog/pkg/commands/options"
	"tableflip.dev/backlog/pkg/runner/get"
	"tableflip.dev/backlog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	kind := catalog.Kind("")

	cmd := &cobra.Command{
		Use:       "get [movies|games]",
		Short:     "get the watch list, the play list, or both",
		ValidArgs: []string{"movies", "games"},
		Example: `
backlog get
backlog get movies
backlog get games --id
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			switch args[0] {
			case "movies", "movie":
				kind = catalog.Watchable
			case "games", "game":
				kind = catalog.Playable
			default:
				return errors.New("expected movies or games")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Kind:    kind,
				Service: app.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
