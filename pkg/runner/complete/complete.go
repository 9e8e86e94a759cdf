// Package complete provides the runner logic for finishing an item from the
// command line.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/catalog"
	"tableflip.dev/backlog/pkg/printers"
)

// Complete finishes an item: the item leaves its catalog and the activity
// log gains an entry. The wrapping command builds the Service with the
// Immediate scheduler, so the animation window collapses to nothing here.
type Complete struct {
	ID      string
	View    app.View
	Service *app.Service
}

// Do executes the completion for the configured item id.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	n.Service.SwitchView(n.View)
	sn := n.Service.Snapshot()

	title := ""
	for _, it := range sn.Items() {
		if it.ID == n.ID {
			title = it.Title
			break
		}
	}
	if title == "" {
		return fmt.Errorf("no item with id %q in the %s catalog", n.ID, n.View.Kind())
	}

	n.Service.RequestCompletion(n.ID, title)
	n.Service.ConfirmCompletion()

	sn = n.Service.Snapshot()
	pp := printers.PrettyPrint{}
	fmt.Println("")
	if sn.Toast != "" {
		pp.Title(sn.Toast)
	}
	if n.View.Kind() == catalog.Watchable {
		pp.TitleWithCount("Watch List", len(sn.Movies))
		pp.Catalog(catalog.Watchable, sn.Movies...)
	} else {
		pp.TitleWithCount("Play List", len(sn.Games))
		pp.Catalog(catalog.Playable, sn.Games...)
	}
	pp.Log(sn.ActivityLog...)

	return nil
}
