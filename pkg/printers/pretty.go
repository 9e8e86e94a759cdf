// Package printers renders catalogs and the activity log for CLI output.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/backlog/pkg/catalog"
	"tableflip.dev/backlog/pkg/glyph"
	"tableflip.dev/backlog/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("V1StGXR8_Z5jdHi6B-myT  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Catalog prints one item per line: icon, title, and a faint category.
func (pp *PrettyPrint) Catalog(kind catalog.Kind, items ...catalog.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	icon := glyph.Movie
	if kind == catalog.Playable {
		icon = glyph.Game
	}

	t := color.New()
	c := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, it := range items {
		if pp.ShowID {
			_, _ = y.Print(it.ID)
			if pad := len(spacing) - len(it.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		_, _ = t.Printf("%s %s", icon.String(), it.Title)
		_, _ = c.Printf("  (%s)\n", it.Category)
	}
	_, _ = t.Println("")
}

// Log prints the activity log as a table, newest entry first.
func (pp *PrettyPrint) Log(entries ...catalog.Activity) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	now := time.Now()
	table := uitable.New()
	table.MaxColWidth = 60
	if pp.ShowID {
		table.AddRow("ID", "WHEN", "ACTION", "TITLE")
	} else {
		table.AddRow("WHEN", "ACTION", "TITLE")
	}
	for _, e := range entries {
		when := timeutil.Relative(e.Timestamp.Time, now)
		if pp.ShowID {
			table.AddRow(e.ID, when, string(e.Action), e.ContentTitle)
		} else {
			table.AddRow(when, string(e.Action), e.ContentTitle)
		}
	}
	_, _ = fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

// Stats prints the watched/played totals shown in the TUI nav.
func (pp *PrettyPrint) Stats(watched, played int) {
	t := color.New(color.Bold)
	c := color.New(color.Faint)
	_, _ = t.Printf("%s Achievements\n", glyph.Trophy.String())
	_, _ = c.Printf("  movies watched: %d\n", watched)
	_, _ = c.Printf("  games played:   %d\n\n", played)
}
