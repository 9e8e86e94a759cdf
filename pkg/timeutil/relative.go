// Package timeutil formats timestamps for the activity log view.
package timeutil

import (
	"fmt"
	"time"
)

const layoutUS = "January 2, 2006"

// Relative renders how long ago t was, coarsely: recent times collapse to
// "just now", older ones fall back to a plain date.
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format(layoutUS)
	}
}
