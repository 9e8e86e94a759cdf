package teaui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/catalog"
	"tableflip.dev/backlog/pkg/glyph"
	"tableflip.dev/backlog/pkg/timeutil"
)

// View renders the active view plus any open overlay and the footer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.sn.View {
	case app.ViewLog:
		b.WriteString(m.renderLog())
	default:
		b.WriteString(m.renderCatalog())
	}

	if overlay := m.renderOverlay(); overlay != "" {
		b.WriteString("\n\n")
		b.WriteString(overlay)
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	th := m.theme.Header

	tab := func(v app.View, icon glyph.Icon, label string) string {
		s := fmt.Sprintf("%s %s", icon.String(), label)
		if m.sn.View == v {
			return th.TabActiv.Render(s)
		}
		return th.Tab.Render(s)
	}

	tabs := strings.Join([]string{
		tab(app.ViewWatch, glyph.Movie, "Watch List"),
		tab(app.ViewPlay, glyph.Game, "Play List"),
		tab(app.ViewLog, glyph.Log, "Activity Log"),
	}, "   ")

	stats := th.Stats.Render(fmt.Sprintf("%s watched %d · played %d",
		glyph.Trophy.String(), m.sn.Watched, m.sn.Played))

	admin := th.Stats.Render(glyph.Lock.String() + " guest")
	if m.sn.Admin {
		admin = th.Admin.Render(glyph.Unlock.String() + " admin")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		th.Title.Render("backlog"), "   ", tabs, "   ", stats, "   ", admin)
}

func (m Model) renderCatalog() string {
	th := m.theme.List
	items := m.sn.Items()
	if len(items) == 0 {
		noun := "movies"
		if m.sn.View.Kind() == catalog.Playable {
			noun = "games"
		}
		return th.Empty.Render(fmt.Sprintf("Your list is empty! Why not add some %s?", noun))
	}

	icon := glyph.Movie
	if m.sn.View.Kind() == catalog.Playable {
		icon = glyph.Game
	}

	cursor := m.cursors[m.sn.View]
	var lines []string
	for i, it := range items {
		marker := "  "
		if i == cursor {
			marker = th.Cursor.Render("→ ")
		}
		title := th.Title.Render(it.Title)
		if m.sn.IsCompleting(it.ID) {
			title = th.Completing.Render(it.Title + " " + glyph.Check.String())
		}
		lines = append(lines, fmt.Sprintf("%s%s %s  %s",
			marker, icon.String(), title, th.Category.Render("("+it.Category+")")))
	}

	if it, ok := m.selectedItem(); ok {
		lines = append(lines, "", th.Detail.Render(it.Description))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLog() string {
	th := m.theme.List
	if len(m.sn.ActivityLog) == 0 {
		return th.Empty.Render("No activity yet. Finish something!")
	}

	now := time.Now()
	cursor := m.cursors[m.sn.View]
	var lines []string
	for i, a := range m.sn.ActivityLog {
		marker := "  "
		if i == cursor {
			marker = th.Cursor.Render("→ ")
		}
		icon := glyph.Movie
		if a.Action == catalog.ActionPlayed {
			icon = glyph.Game
		}
		lines = append(lines, fmt.Sprintf("%s%s %s %s  %s",
			marker,
			glyph.Check.String(),
			icon.String(),
			th.Title.Render(a.ContentTitle),
			th.Category.Render(fmt.Sprintf("%s · %s", a.Action, timeutil.Relative(a.Timestamp.Time, now)))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderOverlay() string {
	switch m.mode {
	case modeLogin:
		return m.renderLoginOverlay()
	case modeForm:
		return m.renderFormOverlay()
	case modeConfirm:
		return m.renderConfirmOverlay()
	}
	return ""
}

func (m Model) renderLoginOverlay() string {
	th := m.theme.Modal
	lines := []string{
		th.Title.Render("Admin Login"),
		"",
		th.Label.Render("Password: ") + m.password.View(),
	}
	if m.sn.LoginError != "" {
		lines = append(lines, "", th.Error.Render(m.sn.LoginError))
	}
	lines = append(lines, "", th.Label.Render("enter submit · esc cancel"))
	return th.Frame.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFormOverlay() string {
	th := m.theme.Modal
	title := "Add Content"
	if m.editID != "" {
		title = "Edit Content"
	}
	labels := [fieldCount]string{"Title", "Description", "Image URL", "Category"}
	lines := []string{th.Title.Render(title), ""}
	for i := range m.inputs {
		marker := "  "
		if i == m.focus {
			marker = "→ "
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", marker,
			th.Label.Render(fmt.Sprintf("%-12s", labels[i]+":")), m.inputs[i].View()))
	}
	if m.formErr != "" {
		lines = append(lines, "", th.Error.Render(m.formErr))
	}
	lines = append(lines, "", th.Label.Render("tab next field · enter save · esc cancel"))
	return th.Frame.Render(strings.Join(lines, "\n"))
}

func (m Model) renderConfirmOverlay() string {
	th := m.theme.Modal
	title := ""
	if m.sn.Pending != nil {
		title = m.sn.Pending.Title
	}
	lines := []string{
		th.Title.Render("Confirm Completion"),
		"",
		th.Body.Render(fmt.Sprintf("Are you sure you want to mark %q as completed?", title)),
		"",
		th.Label.Render("y confirm · n cancel"),
	}
	return th.Frame.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	th := m.theme.Footer
	if m.sn.Toast != "" {
		return th.Toast.Render(glyph.Trophy.String() + " " + m.sn.Toast)
	}

	help := "w/p/l views · j/k move · x complete · L login · q quit"
	if m.sn.Admin {
		help = "w/p/l views · j/k move · x complete · a add · e edit · d delete · L logout · q quit"
	}
	return th.Help.Render(help)
}
