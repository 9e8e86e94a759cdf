// Package add provides the runner logic for adding a catalog item.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/catalog"
	"tableflip.dev/backlog/pkg/printers"
)

type Add struct {
	View    app.View
	Fields  app.ItemFields
	Service *app.Service
}

// Do appends a new item to the catalog the view targets and prints it.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Fields.Title == "" {
		return errors.New("a title is required")
	}

	n.Service.SwitchView(n.View)
	saved := n.Service.SaveContent(n.Fields, "")

	pp := printers.PrettyPrint{ShowID: true}
	sn := n.Service.Snapshot()
	fmt.Println("")
	if n.View.Kind() == catalog.Watchable {
		pp.TitleWithCount("Watch List", len(sn.Movies))
		pp.Catalog(catalog.Watchable, sn.Movies...)
	} else {
		pp.TitleWithCount("Play List", len(sn.Games))
		pp.Catalog(catalog.Playable, sn.Games...)
	}
	fmt.Printf("added %s\n", saved.ID)

	return nil
}
