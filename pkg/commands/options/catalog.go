// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/catalog"
)

// CatalogOptions selects which catalog a command targets. Movies are the
// default; --games flips to the play list.
type CatalogOptions struct {
	Games bool
}

// AddCatalogArgs wires the catalog selection flag on the provided command.
func AddCatalogArgs(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().BoolVarP(&o.Games, "games", "g", false,
		"Target the play list instead of the watch list.")
}

// View resolves the flag to the view the runner should switch to.
func (o *CatalogOptions) View() app.View {
	if o.Games {
		return app.ViewPlay
	}
	return app.ViewWatch
}

// Kind resolves the flag to a catalog kind.
func (o *CatalogOptions) Kind() catalog.Kind {
	if o.Games {
		return catalog.Playable
	}
	return catalog.Watchable
}
