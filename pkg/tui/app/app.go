// Package teaui hosts the Bubble Tea program for the backlog TUI. It is a
// pure presentation layer: it renders Service snapshots and translates key
// presses into the named operations the Service exposes.
package teaui

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/catalog"
	"tableflip.dev/backlog/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeLogin
	modeForm
	modeConfirm
)

const (
	fieldTitle = iota
	fieldDescription
	fieldImageURL
	fieldCategory
	fieldCount
)

// Model contains UI state. All domain state lives in the Service; the model
// only keeps cursors, input widgets, and the latest snapshot.
type Model struct {
	svc  *app.Service
	mode mode

	sn      app.Snapshot
	cursors map[app.View]int

	password textinput.Model
	inputs   []textinput.Model
	focus    int
	formErr  string
	editID   string

	// toastSeq invalidates expiry ticks from toasts that were replaced.
	toastSeq int

	termWidth  int
	termHeight int

	theme theme.Theme
}

// messages
type refreshMsg struct{}
type toastExpiredMsg struct{ seq int }

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	pw := textinput.New()
	pw.Placeholder = "Password"
	pw.CharLimit = 64
	pw.Prompt = ""
	pw.EchoMode = textinput.EchoPassword

	labels := [fieldCount]string{"Title", "Description", "Image URL", "Category"}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 256
		ti.Prompt = ""
		inputs[i] = ti
	}

	m := Model{
		svc:      svc,
		mode:     modeNormal,
		cursors:  make(map[app.View]int),
		password: pw,
		inputs:   inputs,
		theme:    theme.Default(),
	}
	if svc != nil {
		m.sn = svc.Snapshot()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh pulls a fresh snapshot and clamps the cursor to the visible list.
func (m *Model) refresh() {
	if m.svc == nil {
		return
	}
	m.sn = m.svc.Snapshot()
	max := m.rowCount() - 1
	if max < 0 {
		max = 0
	}
	if m.cursors[m.sn.View] > max {
		m.cursors[m.sn.View] = max
	}
}

// rowCount is how many selectable rows the active view shows.
func (m *Model) rowCount() int {
	if m.sn.View == app.ViewLog {
		return len(m.sn.ActivityLog)
	}
	return len(m.sn.Items())
}

func (m *Model) selectedItem() (catalog.Item, bool) {
	items := m.sn.Items()
	idx := m.cursors[m.sn.View]
	if idx < 0 || idx >= len(items) {
		return catalog.Item{}, false
	}
	return items[idx], true
}

func (m *Model) selectedActivity() (catalog.Activity, bool) {
	idx := m.cursors[m.sn.View]
	if idx < 0 || idx >= len(m.sn.ActivityLog) {
		return catalog.Activity{}, false
	}
	return m.sn.ActivityLog[idx], true
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case refreshMsg:
		m.refresh()
		if len(m.sn.Completing) > 0 {
			cmds = append(cmds, refreshAfter(app.AnimationDelay))
		}
	case toastExpiredMsg:
		if msg.seq == m.toastSeq && m.svc != nil {
			m.svc.ClearToast()
			m.refresh()
		}
	case tea.KeyPressMsg:
		key := msg.String()
		switch m.mode {
		case modeLogin:
			handled, cs := m.handleLoginKey(key)
			if handled {
				cmds = append(cmds, cs...)
				break
			}
			var cmd tea.Cmd
			m.password, cmd = m.password.Update(msg)
			cmds = append(cmds, cmd)
		case modeForm:
			handled, cs := m.handleFormKey(key)
			if handled {
				cmds = append(cmds, cs...)
				break
			}
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			cmds = append(cmds, cmd)
		case modeConfirm:
			cmds = append(cmds, m.handleConfirmKey(key)...)
		default:
			cmds = append(cmds, m.handleNormalKey(key)...)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleNormalKey(key string) []tea.Cmd {
	var cmds []tea.Cmd
	switch key {
	case "q", "ctrl+c":
		cmds = append(cmds, tea.Quit)

	case "w", "1":
		m.svc.SwitchView(app.ViewWatch)
		m.refresh()
	case "p", "2":
		m.svc.SwitchView(app.ViewPlay)
		m.refresh()
	case "l", "3":
		m.svc.SwitchView(app.ViewLog)
		m.refresh()

	case "j", "down":
		if m.cursors[m.sn.View] < m.rowCount()-1 {
			m.cursors[m.sn.View]++
		}
	case "k", "up":
		if m.cursors[m.sn.View] > 0 {
			m.cursors[m.sn.View]--
		}

	case "L":
		if m.sn.Admin {
			m.svc.Logout()
			m.refresh()
			break
		}
		m.svc.OpenAdminModal()
		m.refresh()
		m.mode = modeLogin
		m.password.Reset()
		if cmd := m.password.Focus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, textinput.Blink)

	case "a":
		if !m.sn.Admin || m.sn.View == app.ViewLog {
			break
		}
		m.svc.OpenAddModal()
		m.refresh()
		m.openForm(nil)
		cmds = append(cmds, m.focusField(fieldTitle)...)

	case "e":
		if !m.sn.Admin || m.sn.View == app.ViewLog {
			break
		}
		if item, ok := m.selectedItem(); ok {
			m.svc.OpenEditModal(item)
			m.refresh()
			m.openForm(&item)
			cmds = append(cmds, m.focusField(fieldTitle)...)
		}

	case "d":
		if !m.sn.Admin {
			break
		}
		if m.sn.View == app.ViewLog {
			if a, ok := m.selectedActivity(); ok {
				m.svc.DeleteActivity(a.ID)
			}
		} else if item, ok := m.selectedItem(); ok {
			m.svc.DeleteContent(item.ID)
		}
		m.refresh()

	case "x", "enter":
		if m.sn.View == app.ViewLog {
			break
		}
		item, ok := m.selectedItem()
		if !ok || m.sn.IsCompleting(item.ID) {
			break
		}
		m.svc.RequestCompletion(item.ID, item.Title)
		m.refresh()
		if m.sn.Pending != nil {
			m.mode = modeConfirm
		}
	}
	return cmds
}

// handleLoginKey consumes control keys; anything else falls through to the
// password input.
func (m *Model) handleLoginKey(key string) (bool, []tea.Cmd) {
	switch key {
	case "enter":
		if m.svc.Login(m.password.Value()) {
			m.mode = modeNormal
			m.password.Blur()
		}
		m.password.Reset()
		m.refresh()
		return true, nil
	case "esc":
		m.svc.CloseAdminModal()
		m.refresh()
		m.mode = modeNormal
		m.password.Reset()
		m.password.Blur()
		return true, nil
	}
	return false, nil
}

func (m *Model) handleConfirmKey(key string) []tea.Cmd {
	var cmds []tea.Cmd
	switch key {
	case "y", "enter":
		m.svc.ConfirmCompletion()
		m.refresh()
		m.mode = modeNormal
		m.toastSeq++
		cmds = append(cmds,
			// Re-snapshot just after the pipeline fires.
			refreshAfter(app.AnimationDelay+50*time.Millisecond),
			expireToastAfter(app.ToastTTL, m.toastSeq),
		)
	case "n", "esc":
		m.svc.CancelConfirmation()
		m.refresh()
		m.mode = modeNormal
	}
	return cmds
}

func refreshAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return refreshMsg{} })
}

func expireToastAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

// Run starts the Bubble Tea program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
