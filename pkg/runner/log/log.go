// Package log provides the runner logic for the activity log view.
package log

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/printers"
)

type Log struct {
	ShowID  bool
	Stats   bool
	Delete  string // entry id to remove before printing
	Service *app.Service
}

// Do prints the activity log, newest first.
func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show log, no service")
	}

	if n.Delete != "" {
		n.Service.DeleteActivity(n.Delete)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	sn := n.Service.Snapshot()
	fmt.Println("")
	pp.TitleWithCount("Activity Log", len(sn.ActivityLog))
	pp.Log(sn.ActivityLog...)

	if n.Stats {
		pp.Stats(sn.Watched, sn.Played)
	}
	return nil
}
