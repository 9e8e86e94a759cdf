package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/commands/options"
	runnerlog "tableflip.dev/backlog/pkg/runner/log"
	"tableflip.dev/backlog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addLog(topLevel *cobra.Command) {
	lo := &options.LogOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "view the activity log",
		Example: `
backlog log
backlog log --stats
backlog log --delete <entry id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := runnerlog.Log{
				ShowID:  io.ShowID,
				Stats:   lo.Stats,
				Delete:  lo.Delete,
				Service: app.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddLogArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
