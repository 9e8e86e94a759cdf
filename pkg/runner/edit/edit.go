// Package edit provides the runner logic for editing a catalog item in
// place.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/catalog"
)

type Edit struct {
	ID      string
	View    app.View
	Fields  app.ItemFields
	Service *app.Service
}

// Do replaces the fields of the identified item, keeping its id and
// position. Unlike the interactive form, the CLI refuses unknown ids rather
// than appending a new item.
func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	n.Service.SwitchView(n.View)
	sn := n.Service.Snapshot()

	items := sn.Items()
	var current *catalog.Item
	for i := range items {
		if items[i].ID == n.ID {
			current = &items[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("no item with id %q in the %s catalog", n.ID, n.View.Kind())
	}

	// Flags left empty keep the current value.
	fields := app.ItemFields{
		Title:       firstNonEmpty(n.Fields.Title, current.Title),
		Description: firstNonEmpty(n.Fields.Description, current.Description),
		ImageURL:    firstNonEmpty(n.Fields.ImageURL, current.ImageURL),
		Category:    firstNonEmpty(n.Fields.Category, current.Category),
	}
	saved := n.Service.SaveContent(fields, n.ID)
	fmt.Printf("edited %s: %s\n", saved.ID, saved.Title)

	return nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
