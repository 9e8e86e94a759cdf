package teaui

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/catalog"
)

// openForm switches to the content form, pre-filled when editing.
func (m *Model) openForm(item *catalog.Item) {
	m.mode = modeForm
	m.formErr = ""
	m.editID = ""
	values := [fieldCount]string{}
	if item != nil {
		m.editID = item.ID
		values = [fieldCount]string{item.Title, item.Description, item.ImageURL, item.Category}
	}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
		m.inputs[i].Blur()
	}
	m.focus = fieldTitle
}

func (m *Model) focusField(i int) []tea.Cmd {
	var cmds []tea.Cmd
	m.focus = i
	for j := range m.inputs {
		if j == i {
			if cmd := m.inputs[j].Focus(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		} else {
			m.inputs[j].Blur()
		}
	}
	cmds = append(cmds, textinput.Blink)
	return cmds
}

// handleFormKey consumes control keys; anything else falls through to the
// focused input.
func (m *Model) handleFormKey(key string) (bool, []tea.Cmd) {
	var cmds []tea.Cmd
	switch key {
	case "esc":
		m.svc.CloseContentModal()
		m.refresh()
		m.mode = modeNormal

	case "tab", "down":
		cmds = append(cmds, m.focusField((m.focus+1)%fieldCount)...)
	case "shift+tab", "up":
		cmds = append(cmds, m.focusField((m.focus+fieldCount-1)%fieldCount)...)

	case "enter":
		fields := app.ItemFields{
			Title:       strings.TrimSpace(m.inputs[fieldTitle].Value()),
			Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
			ImageURL:    strings.TrimSpace(m.inputs[fieldImageURL].Value()),
			Category:    strings.TrimSpace(m.inputs[fieldCategory].Value()),
		}
		// All fields are required; the model itself does not validate, so
		// the form blocks the save here.
		if fields.Title == "" || fields.Description == "" || fields.ImageURL == "" || fields.Category == "" {
			m.formErr = "All fields are required."
			break
		}
		m.svc.SaveContent(fields, m.editID)
		m.refresh()
		m.mode = modeNormal
		m.formErr = ""

	default:
		return false, nil
	}
	return true, cmds
}
