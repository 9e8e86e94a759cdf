// Package ui provides the runner that hosts the interactive terminal app.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/backlog/pkg/app"
	teaui "tableflip.dev/backlog/pkg/tui/app"
)

type UI struct {
	Service *app.Service
}

// Do runs the terminal app until the user quits.
func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not run ui, no service")
	}
	return teaui.Run(n.Service)
}
