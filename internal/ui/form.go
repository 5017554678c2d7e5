package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coolant/internal/hvac"
	"coolant/internal/state"
)

// Form field order. Text inputs come first, then the three lookup pickers.
const (
	fieldName = iota
	fieldModel
	fieldSerial
	fieldLocation
	fieldDate
	fieldStatus
	fieldType
	fieldManufacturer
	fieldCount
)

const textFieldCount = 5

var fieldLabels = [fieldCount]string{
	"Name", "Model", "Serial number", "Location", "Installation date",
	"Status", "Type", "Manufacturer",
}

// jsonFieldNames maps form fields to the draft's validation keys.
var jsonFieldNames = [fieldCount]string{
	"name", "model", "serialNumber", "location", "installationDate",
	"statusId", "typeId", "manufacturerId",
}

// formState holds the create/edit form: five text inputs, three lookup
// pickers, and the last validation result.
type formState struct {
	editing bool
	editID  int64

	inputs [textFieldCount]textinput.Model
	focus  int

	statusIdx int // index into Lookups.Statuses, -1 unset
	typeIdx   int
	mfrIdx    int

	errs hvac.FieldErrors
}

func newFormInputs() [textFieldCount]textinput.Model {
	var inputs [textFieldCount]textinput.Model
	placeholders := [textFieldCount]string{
		"Lobby split unit", "AX-900", "SN-0042", "Main hall, 1st floor", "2024-03-01",
	}
	limits := [textFieldCount]int{100, 50, 50, 200, 10}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = limits[i]
		in.Width = 40
		inputs[i] = in
	}
	inputs[0].Focus()
	return inputs
}

// newCreateForm builds an empty form.
func newCreateForm(snap state.Snapshot) formState {
	_ = snap
	return formState{
		inputs:    newFormInputs(),
		statusIdx: -1,
		typeIdx:   -1,
		mfrIdx:    -1,
	}
}

// newEditForm builds a form pre-filled from an existing conditioner.
func newEditForm(snap state.Snapshot, c hvac.Conditioner) formState {
	f := formState{
		editing:   true,
		editID:    c.ID,
		inputs:    newFormInputs(),
		statusIdx: statusIndex(snap, c.StatusID),
		typeIdx:   typeIndex(snap, c.TypeID),
		mfrIdx:    manufacturerIndex(snap, c.ManufacturerID),
	}
	f.inputs[fieldName].SetValue(c.Name)
	f.inputs[fieldModel].SetValue(c.Model)
	f.inputs[fieldSerial].SetValue(c.SerialNumber)
	f.inputs[fieldLocation].SetValue(c.Location)
	f.inputs[fieldDate].SetValue(formatDate(c.InstallationDate))
	return f
}

func statusIndex(snap state.Snapshot, id int64) int {
	for i, s := range snap.Lookups.Statuses {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func typeIndex(snap state.Snapshot, id int64) int {
	for i, t := range snap.Lookups.Types {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func manufacturerIndex(snap state.Snapshot, id int64) int {
	for i, m := range snap.Lookups.Manufacturers {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// draft assembles the submission body from the form's current values.
func (f formState) draft(snap state.Snapshot) hvac.Draft {
	d := hvac.Draft{
		Name:             strings.TrimSpace(f.inputs[fieldName].Value()),
		Model:            strings.TrimSpace(f.inputs[fieldModel].Value()),
		SerialNumber:     strings.TrimSpace(f.inputs[fieldSerial].Value()),
		Location:         strings.TrimSpace(f.inputs[fieldLocation].Value()),
		InstallationDate: strings.TrimSpace(f.inputs[fieldDate].Value()),
	}
	if f.statusIdx >= 0 && f.statusIdx < len(snap.Lookups.Statuses) {
		d.StatusID = snap.Lookups.Statuses[f.statusIdx].ID
	}
	if f.typeIdx >= 0 && f.typeIdx < len(snap.Lookups.Types) {
		d.TypeID = snap.Lookups.Types[f.typeIdx].ID
	}
	if f.mfrIdx >= 0 && f.mfrIdx < len(snap.Lookups.Manufacturers) {
		d.ManufacturerID = snap.Lookups.Manufacturers[f.mfrIdx].ID
	}
	return d
}

func (f *formState) setFocus(focus int) {
	if focus < 0 {
		focus = fieldCount - 1
	}
	if focus >= fieldCount {
		focus = 0
	}
	f.focus = focus
	for i := range f.inputs {
		if i == focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// cyclePicker steps the focused picker by delta, wrapping through unset.
func (f *formState) cyclePicker(snap state.Snapshot, delta int) {
	step := func(idx, size int) int {
		if size == 0 {
			return -1
		}
		idx += delta
		if idx >= size {
			idx = -1
		}
		if idx < -1 {
			idx = size - 1
		}
		return idx
	}
	switch f.focus {
	case fieldStatus:
		f.statusIdx = step(f.statusIdx, len(snap.Lookups.Statuses))
	case fieldType:
		f.typeIdx = step(f.typeIdx, len(snap.Lookups.Types))
	case fieldManufacturer:
		f.mfrIdx = step(f.mfrIdx, len(snap.Lookups.Manufacturers))
	}
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = formState{}
		m.mode = ModeList
		return m, nil

	case "tab", "down":
		m.form.setFocus(m.form.focus + 1)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.form.setFocus(m.form.focus - 1)
		return m, textinput.Blink

	case "ctrl+s":
		return m.submitForm()

	case "enter":
		if m.form.focus == fieldCount-1 {
			return m.submitForm()
		}
		m.form.setFocus(m.form.focus + 1)
		return m, textinput.Blink

	case "left", "right", " ", "space":
		if m.form.focus >= textFieldCount {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.form.cyclePicker(m.snapshot, delta)
			return m, nil
		}
	}

	if m.form.focus < textFieldCount {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// submitForm validates the draft and dispatches the mutation. Validation
// failures stay on the form and never reach the network.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if m.mutator.Busy() {
		return m, nil
	}
	draft := m.form.draft(m.snapshot)
	if errs := draft.Validate(); errs != nil {
		m.form.errs = errs
		return m, nil
	}
	m.form.errs = nil
	if m.form.editing {
		return m, m.updateCmd(m.form.editID, draft)
	}
	return m, m.createCmd(draft)
}

func (m Model) renderForm() string {
	var b strings.Builder

	title := "New conditioner"
	if m.form.editing {
		title = fmt.Sprintf("Edit conditioner #%d", m.form.editID)
	}
	b.WriteString(m.styles.AccentText.Render(title))
	b.WriteString("\n\n")

	for field := 0; field < fieldCount; field++ {
		label := m.styles.FieldLabel.Render(fieldLabels[field])
		var value string
		if field < textFieldCount {
			value = m.form.inputs[field].View()
		} else {
			value = m.renderPicker(field)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label, value))
		if msg, ok := m.form.errs[jsonFieldNames[field]]; ok {
			b.WriteString(m.styles.FieldLabel.Render(""))
			b.WriteString(" ")
			b.WriteString(m.styles.DangerText.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.mutator.Busy() {
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.MutedText.Render(" saving..."))
	} else {
		b.WriteString(m.styles.MutedText.Render("ctrl+s save  esc cancel  tab next field  ←/→ pick"))
	}
	return b.String()
}

// renderPicker shows a lookup picker as "< value >", highlighted on focus.
func (m Model) renderPicker(field int) string {
	var value string
	switch field {
	case fieldStatus:
		value = pickerValue(m.form.statusIdx, len(m.snapshot.Lookups.Statuses), func(i int) string {
			return m.snapshot.Lookups.Statuses[i].Name
		})
	case fieldType:
		value = pickerValue(m.form.typeIdx, len(m.snapshot.Lookups.Types), func(i int) string {
			return m.snapshot.Lookups.Types[i].Name
		})
	case fieldManufacturer:
		value = pickerValue(m.form.mfrIdx, len(m.snapshot.Lookups.Manufacturers), func(i int) string {
			return m.snapshot.Lookups.Manufacturers[i].Name
		})
	}
	rendered := fmt.Sprintf("< %s >", value)
	if m.form.focus == field {
		return m.styles.Selected.Render(rendered)
	}
	return m.styles.Text.Render(rendered)
}

func pickerValue(idx, size int, name func(int) string) string {
	if idx < 0 || idx >= size {
		return "select..."
	}
	return name(idx)
}
