package ui

import (
	"fmt"
	"sort"
	"strings"

	"coolant/internal/notify"
)

// renderHeader draws the title line: app name, summary counts, loading
// spinner, and the store's inline fetch error when present.
func (m Model) renderHeader() string {
	parts := []string{m.styles.AccentText.Render("COOLANT"), m.renderSummary()}

	if m.snapshot.Loading {
		parts = append(parts, m.spin.View()+m.styles.MutedText.Render(" loading"))
	}
	if m.snapshot.Err != "" {
		parts = append(parts, m.styles.DangerText.Render(truncate(m.snapshot.Err, 60)))
	}

	return strings.Join(parts, "  ")
}

// renderSummary shows the total plus per-status counts, e.g.
// "12 units (Active 8, In repair 3, Unknown 1)".
func (m Model) renderSummary() string {
	total := len(m.snapshot.Conditioners)
	if total == 0 {
		return m.styles.MutedText.Render("no units")
	}

	counts := m.snapshot.StatusCounts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	chips := make([]string, 0, len(names))
	for _, name := range names {
		chips = append(chips, fmt.Sprintf("%s %d", name, counts[name]))
	}
	return m.styles.MutedText.Render(fmt.Sprintf("%d units (%s)", total, strings.Join(chips, ", ")))
}

// renderNotifications draws the active transient notifications, oldest
// first. Expired ones have already been removed by the center.
func (m Model) renderNotifications() string {
	if m.notify == nil {
		return ""
	}
	active := m.notify.Active()
	if len(active) == 0 {
		return ""
	}

	lines := make([]string, 0, len(active))
	for _, n := range active {
		var style = m.styles.Text
		switch n.Level {
		case notify.LevelSuccess:
			style = m.styles.SuccessText
		case notify.LevelError:
			style = m.styles.DangerText
		}
		lines = append(lines, style.Render("• "+truncate(n.Message, 80)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	var hint string
	switch m.mode {
	case ModeList:
		hint = "enter detail  n new  e edit  d delete  / search  s/t/m filter  c clear  r refresh  ? help  q quit"
	case ModeDetail:
		hint = "e edit  d delete  esc back"
	case ModeForm:
		hint = "ctrl+s save  esc cancel"
	case ModeConfirm:
		hint = "y delete  n cancel"
	case ModeHelp:
		hint = "any key to close"
	}
	return m.styles.MutedText.Render(hint)
}

func (m Model) renderHelp() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"List", [][2]string{
			{"j/k, ↑/↓", "move selection"},
			{"enter", "open detail"},
			{"n", "new conditioner"},
			{"e", "edit selected"},
			{"d", "delete selected"},
			{"r", "refresh from server"},
		}},
		{"Filtering", [][2]string{
			{"/", "search name, model, serial"},
			{"s", "cycle status filter"},
			{"t", "cycle type filter"},
			{"m", "cycle manufacturer filter"},
			{"c", "clear all filters"},
		}},
		{"Other", [][2]string{
			{"T", "cycle theme"},
			{"?", "this help"},
			{"q, ctrl+c", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Help"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(m.styles.WarningText.Render(section.title))
		b.WriteString("\n")
		for _, key := range section.keys {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				m.styles.FieldLabel.Render(key[0]),
				m.styles.Text.Render(key[1])))
		}
	}
	return m.styles.Panel.Render(b.String())
}
