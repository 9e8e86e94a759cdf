// Package remove provides the runner logic for deleting catalog items and
// activity entries.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/backlog/pkg/app"
)

type Remove struct {
	ID      string
	View    app.View
	Service *app.Service
}

// Do removes the item from the view's catalog. Deleting is idempotent, so a
// missing id only gets a notice, not an error.
func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}

	n.Service.SwitchView(n.View)
	before := len(n.Service.Snapshot().Items())
	n.Service.DeleteContent(n.ID)
	after := len(n.Service.Snapshot().Items())

	if before == after {
		fmt.Printf("nothing to delete: no item %q in the %s catalog\n", n.ID, n.View.Kind())
		return nil
	}
	fmt.Printf("deleted %s\n", n.ID)
	return nil
}
