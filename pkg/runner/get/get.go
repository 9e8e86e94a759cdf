// Package get provides the runner logic for printing the catalogs.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/catalog"
	"tableflip.dev/backlog/pkg/printers"
)

type Get struct {
	ShowID  bool
	Kind    catalog.Kind // empty means both catalogs
	Service *app.Service
}

// Do prints the requested catalog, or both when no kind is set.
func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	sn := n.Service.Snapshot()
	fmt.Println("")

	if n.Kind == "" || n.Kind == catalog.Watchable {
		pp.TitleWithCount("Watch List", len(sn.Movies))
		pp.Catalog(catalog.Watchable, sn.Movies...)
	}
	if n.Kind == "" || n.Kind == catalog.Playable {
		pp.TitleWithCount("Play List", len(sn.Games))
		pp.Catalog(catalog.Playable, sn.Games...)
	}

	return nil
}
