// Package theme centralizes Lip Gloss styles for the Bubble Tea UI.
package theme

import "github.com/charmbracelet/lipgloss/v2"

type Theme struct {
	Header HeaderTheme
	List   ListTheme
	Modal  ModalTheme
	Footer FooterTheme
}

// HeaderTheme styles the title strip and the nav stats.
type HeaderTheme struct {
	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabActiv lipgloss.Style
	Stats    lipgloss.Style
	Admin    lipgloss.Style
}

// ListTheme styles catalog and log rows.
type ListTheme struct {
	Cursor     lipgloss.Style
	Title      lipgloss.Style
	Category   lipgloss.Style
	Completing lipgloss.Style
	Detail     lipgloss.Style
	Empty      lipgloss.Style
}

// ModalTheme styles centered overlays (login, content form, confirmation).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Label lipgloss.Style
	Error lipgloss.Style
}

// FooterTheme styles the bottom status/toast bar.
type FooterTheme struct {
	Help  lipgloss.Style
	Toast lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
			Tab:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			TabActiv: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
			Stats:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Admin:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		List: ListTheme{
			Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Title:      lipgloss.NewStyle(),
			Category:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Completing: lipgloss.NewStyle().Strikethrough(true).Faint(true),
			Detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Empty:      lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Footer: FooterTheme{
			Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Toast: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("48")),
		},
	}
}
