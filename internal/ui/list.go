package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coolant/internal/hvac"
	"coolant/internal/state"
)

func newConditionerTable(theme Theme) table.Model {
	t := table.New(
		table.WithColumns(conditionerColumns()),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Background(lipgloss.Color(theme.SelectionBg)).
		Foreground(lipgloss.Color(theme.SelectionText)).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func conditionerColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Name", Width: 22},
		{Title: "Model", Width: 12},
		{Title: "Serial", Width: 12},
		{Title: "Status", Width: 12},
		{Title: "Type", Width: 12},
		{Title: "Manufacturer", Width: 16},
		{Title: "Location", Width: 20},
		{Title: "Installed", Width: 10},
	}
}

// conditionerRow builds one table row with foreign keys resolved to names.
func conditionerRow(snap state.Snapshot, c hvac.Conditioner) table.Row {
	manufacturer := state.UnknownName
	if m, ok := snap.Manufacturer(c.ManufacturerID); ok {
		manufacturer = m.Name
	}
	return table.Row{
		strconv.FormatInt(c.ID, 10),
		truncate(c.Name, 22),
		truncate(c.Model, 12),
		truncate(c.SerialNumber, 12),
		truncate(snap.StatusName(c.StatusID), 12),
		truncate(snap.TypeName(c.TypeID), 12),
		truncate(manufacturer, 16),
		truncate(c.Location, 20),
		formatDate(c.InstallationDate),
	}
}

// rebuildRows recomputes the filtered view and the table rows from the
// current snapshot.
func (m *Model) rebuildRows() {
	m.filtered = m.snapshot.Filtered()
	rows := make([]table.Row, 0, len(m.filtered))
	for _, c := range m.filtered {
		rows = append(rows, conditionerRow(m.snapshot, c))
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *Model) layoutTable() {
	if m.width <= 0 {
		return
	}
	m.table.SetWidth(m.width - 2)
	height := m.height - 8 // header, search, summary, notifications, footer
	if height < 4 {
		height = 4
	}
	m.table.SetHeight(height)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.prevMode = ModeList
		m.mode = ModeHelp
		return m, nil

	case "/":
		m.search.Focus()
		return m, textinput.Blink

	case "enter":
		if c, ok := m.selectedConditioner(); ok {
			m.detailID = c.ID
			m.mode = ModeDetail
		}
		return m, nil

	case "n":
		m.form = newCreateForm(m.snapshot)
		m.mode = ModeForm
		return m, textinput.Blink

	case "e":
		if c, ok := m.selectedConditioner(); ok {
			m.form = newEditForm(m.snapshot, c)
			m.mode = ModeForm
			return m, textinput.Blink
		}
		return m, nil

	case "d":
		if c, ok := m.selectedConditioner(); ok {
			m.confirmID = c.ID
			m.mode = ModeConfirm
		}
		return m, nil

	case "s":
		m.cycleFilter(filterStatus)
		return m, nil

	case "t":
		m.cycleFilter(filterType)
		return m, nil

	case "m":
		m.cycleFilter(filterManufacturer)
		return m, nil

	case "c":
		m.store.ResetFilters()
		m.search.SetValue("")
		m.refreshSnapshot()
		return m, nil

	case "r":
		return m, m.refetchCmd()

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.table = newConditionerTable(m.theme)
		m.layoutTable()
		m.rebuildRows()
		_ = savePrefsTheme(m.prefsPath, m.theme.Name)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleSearchKey feeds keystrokes into the search input and pushes the
// value into the store's filter state as it changes.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Blur()
		return m, nil
	case "enter":
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	value := m.search.Value()
	m.store.PatchFilters(state.FilterPatch{Search: &value})
	m.refreshSnapshot()
	return m, cmd
}

type filterKind int

const (
	filterStatus filterKind = iota
	filterType
	filterManufacturer
)

// cycleFilter advances one id filter through its lookup collection:
// inactive, each row in order, back to inactive.
func (m *Model) cycleFilter(kind filterKind) {
	var ids []int64
	var current int64
	switch kind {
	case filterStatus:
		for _, s := range m.snapshot.Lookups.Statuses {
			ids = append(ids, s.ID)
		}
		current = m.snapshot.Filters.StatusID
	case filterType:
		for _, t := range m.snapshot.Lookups.Types {
			ids = append(ids, t.ID)
		}
		current = m.snapshot.Filters.TypeID
	case filterManufacturer:
		for _, mf := range m.snapshot.Lookups.Manufacturers {
			ids = append(ids, mf.ID)
		}
		current = m.snapshot.Filters.ManufacturerID
	}
	next := nextFilterID(ids, current)

	patch := state.FilterPatch{}
	switch kind {
	case filterStatus:
		patch.StatusID = &next
	case filterType:
		patch.TypeID = &next
	case filterManufacturer:
		patch.ManufacturerID = &next
	}
	m.store.PatchFilters(patch)
	m.refreshSnapshot()
}

// nextFilterID steps through 0 (inactive) and each id in order.
func nextFilterID(ids []int64, current int64) int64 {
	if len(ids) == 0 {
		return 0
	}
	if current == 0 {
		return ids[0]
	}
	for i, id := range ids {
		if id == current {
			if i+1 < len(ids) {
				return ids[i+1]
			}
			return 0
		}
	}
	return 0
}

func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.renderFilterSummary())
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		switch {
		case m.snapshot.Loading:
			b.WriteString(m.styles.MutedText.Render("  fetching conditioners..."))
		case len(m.snapshot.Conditioners) > 0:
			b.WriteString(m.styles.MutedText.Render("  no conditioners match the current filters"))
		default:
			b.WriteString(m.styles.MutedText.Render("  no conditioners"))
		}
		return b.String()
	}

	b.WriteString(m.table.View())
	return b.String()
}

// renderFilterSummary shows the active filter clauses and the match count.
func (m Model) renderFilterSummary() string {
	f := m.snapshot.Filters
	var chips []string
	if strings.TrimSpace(f.Search) != "" {
		chips = append(chips, fmt.Sprintf("search:%q", f.Search))
	}
	if f.StatusID != 0 {
		chips = append(chips, "status:"+m.snapshot.StatusName(f.StatusID))
	}
	if f.TypeID != 0 {
		chips = append(chips, "type:"+m.snapshot.TypeName(f.TypeID))
	}
	if f.ManufacturerID != 0 {
		name := state.UnknownName
		if mf, ok := m.snapshot.Manufacturer(f.ManufacturerID); ok {
			name = mf.Name
		}
		chips = append(chips, "manufacturer:"+name)
	}

	if len(chips) == 0 {
		return m.styles.MutedText.Render(fmt.Sprintf("  %d conditioners", len(m.filtered)))
	}
	return m.styles.AccentText.Render("  "+strings.Join(chips, "  ")) +
		m.styles.MutedText.Render(fmt.Sprintf("  (%d of %d)", len(m.filtered), len(m.snapshot.Conditioners)))
}
