package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Stats  bool
	Delete string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().BoolVar(&o.Stats, "stats", false,
		"Show watched and played totals.")
	cmd.Flags().StringVar(&o.Delete, "delete", "",
		"Remove the entry with this id before printing.")
}
