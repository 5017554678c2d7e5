package ui

import (
	"fmt"
	"strings"

	"coolant/internal/state"
)

func (m Model) renderDetail() string {
	c, ok := m.conditionerByID(m.detailID)
	if !ok {
		return m.styles.MutedText.Render("  conditioner no longer exists")
	}

	manufacturer := state.UnknownName
	country := ""
	if mf, found := m.snapshot.Manufacturer(c.ManufacturerID); found {
		manufacturer = mf.Name
		country = mf.Country
	}

	rows := []struct {
		label string
		value string
	}{
		{"ID", fmt.Sprintf("%d", c.ID)},
		{"Name", c.Name},
		{"Model", c.Model},
		{"Serial number", c.SerialNumber},
		{"Location", c.Location},
		{"Installation date", formatDate(c.InstallationDate)},
		{"Status", m.snapshot.StatusName(c.StatusID)},
		{"Type", m.snapshot.TypeName(c.TypeID)},
		{"Manufacturer", manufacturer},
	}
	if country != "" {
		rows = append(rows, struct{ label, value string }{"Country", country})
	}
	if c.CreatedAt != "" {
		rows = append(rows, struct{ label, value string }{"Created", formatDate(c.CreatedAt)})
	}
	if c.UpdatedAt != "" {
		rows = append(rows, struct{ label, value string }{"Updated", formatDate(c.UpdatedAt)})
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(fmt.Sprintf("Conditioner #%d", c.ID)))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(m.styles.FieldLabel.Render(row.label))
		b.WriteString(" ")
		b.WriteString(m.styles.Text.Render(row.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("e edit  d delete  esc back"))
	return m.styles.Panel.Render(b.String())
}

// renderConfirm draws the delete confirmation under the list. It stays open
// on a failed delete so the user can retry or cancel.
func (m Model) renderConfirm() string {
	name := fmt.Sprintf("#%d", m.confirmID)
	if c, ok := m.conditionerByID(m.confirmID); ok && c.Name != "" {
		name = fmt.Sprintf("%q", c.Name)
	}

	var b strings.Builder
	b.WriteString(m.styles.WarningText.Render(fmt.Sprintf("Delete conditioner %s?", name)))
	b.WriteString("\n")
	if m.mutator.Busy() {
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.MutedText.Render(" deleting..."))
	} else {
		b.WriteString(m.styles.MutedText.Render("y delete  n cancel"))
	}
	return m.styles.FocusPanel.Render(b.String())
}
