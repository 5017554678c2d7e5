// Package ui provides the Bubble Tea terminal interface for coolant.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coolant/internal/hvac"
	"coolant/internal/notify"
	"coolant/internal/prefs"
	"coolant/internal/state"
)

// Loader is the list-fetch coordinator the UI drives.
type Loader interface {
	EnsureLoaded(ctx context.Context) error
	Refetch(ctx context.Context) error
	EnsureLookupsLoaded(ctx context.Context) error
	RefetchLookups(ctx context.Context) error
}

// Mutator is the mutation coordinator the UI drives.
type Mutator interface {
	Create(ctx context.Context, draft hvac.Draft) (*hvac.Conditioner, error)
	Update(ctx context.Context, id int64, draft hvac.Draft) (*hvac.Conditioner, error)
	Delete(ctx context.Context, id int64) error
	Busy() bool
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Loader    Loader
	Mutator   Mutator
	Notify    *notify.Center
	ThemeName string
	PrefsPath string
}

// Mode is the current interaction mode.
type Mode int

const (
	ModeList Mode = iota
	ModeDetail
	ModeForm
	ModeConfirm
	ModeHelp
)

const redrawTick = 250 * time.Millisecond

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	loader    Loader
	mutator   Mutator
	notify    *notify.Center
	prefsPath string

	theme  Theme
	styles Styles
	width  int
	height int
	ready  bool

	mode     Mode
	prevMode Mode // where Esc returns to from help

	snapshot state.Snapshot
	filtered []hvac.Conditioner

	table  table.Model
	search textinput.Model
	spin   spinner.Model

	form      formState
	detailID  int64
	confirmID int64
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Frost"
	}
	theme := GetTheme(themeName)
	styles := theme.Styles()

	search := textinput.New()
	search.Placeholder = "search name, model, serial"
	search.Prompt = "/ "
	search.CharLimit = 100

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		loader:    opts.Loader,
		mutator:   opts.Mutator,
		notify:    opts.Notify,
		prefsPath: prefsPath,
		theme:     theme,
		styles:    styles,
		mode:      ModeList,
		table:     newConditionerTable(theme),
		search:    search,
		spin:      spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spin.Tick,
		m.loadCmd(),
		tickCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layoutTable()
		return m, nil

	case tickMsg:
		// The store may have changed under us (loader finishing, a
		// notification expiring); re-read and redraw.
		m.refreshSnapshot()
		return m, tickCmd()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.rebuildRows()
		return m, nil

	case mutationDoneMsg:
		return m.handleMutationDone(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.mode {
	case ModeList:
		b.WriteString(m.renderList())
	case ModeDetail:
		b.WriteString(m.renderDetail())
	case ModeForm:
		b.WriteString(m.renderForm())
	case ModeConfirm:
		b.WriteString(m.renderList())
		b.WriteString("\n")
		b.WriteString(m.renderConfirm())
	case ModeHelp:
		b.WriteString(m.renderHelp())
	}

	b.WriteString("\n")
	b.WriteString(m.renderNotifications())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) refreshSnapshot() {
	if m.store == nil {
		return
	}
	m.snapshot = m.store.Snapshot()
	m.rebuildRows()
}

// handleKey routes keyboard input by interaction mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == ModeHelp {
		// Any key closes help.
		m.mode = m.prevMode
		return m, nil
	}

	switch m.mode {
	case ModeList:
		return m.handleListKey(msg)
	case ModeDetail:
		return m.handleDetailKey(msg)
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = ModeList
		return m, nil
	case "e":
		if c, ok := m.conditionerByID(m.detailID); ok {
			m.form = newEditForm(m.snapshot, c)
			m.mode = ModeForm
		}
		return m, nil
	case "d":
		m.confirmID = m.detailID
		m.mode = ModeConfirm
		return m, nil
	case "?":
		m.prevMode = ModeDetail
		m.mode = ModeHelp
		return m, nil
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.mutator.Busy() {
			return m, nil
		}
		return m, m.deleteCmd(m.confirmID)
	case "n", "esc":
		m.confirmID = 0
		m.mode = ModeList
		return m, nil
	}
	return m, nil
}

func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	m.refreshSnapshot()
	if msg.err != nil {
		// Leave the form or confirmation dialog open so the user can
		// retry or cancel; the error notification is already queued.
		return m, nil
	}
	switch m.mode {
	case ModeForm:
		m.form = formState{}
		m.mode = ModeList
	case ModeConfirm:
		m.confirmID = 0
		m.detailID = 0
		m.mode = ModeList
	}
	return m, nil
}

func (m Model) selectedConditioner() (hvac.Conditioner, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.filtered) {
		return hvac.Conditioner{}, false
	}
	return m.filtered[idx], true
}

func (m Model) conditionerByID(id int64) (hvac.Conditioner, bool) {
	for _, c := range m.snapshot.Conditioners {
		if c.ID == id {
			return c, true
		}
	}
	return hvac.Conditioner{}, false
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type mutationDoneMsg struct {
	err error
}

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(redrawTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadCmd runs the first-load sequence: lookups, then the list. Both are
// no-ops when the store already has data.
func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.loader.EnsureLookupsLoaded(m.ctx)
		_ = m.loader.EnsureLoaded(m.ctx)
		return snapshotMsg(m.store.Snapshot())
	}
}

// refetchCmd reloads list and lookups unconditionally.
func (m Model) refetchCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.loader.RefetchLookups(m.ctx)
		_ = m.loader.Refetch(m.ctx)
		return snapshotMsg(m.store.Snapshot())
	}
}

func (m Model) createCmd(draft hvac.Draft) tea.Cmd {
	return func() tea.Msg {
		_, err := m.mutator.Create(m.ctx, draft)
		return mutationDoneMsg{err: err}
	}
}

func (m Model) updateCmd(id int64, draft hvac.Draft) tea.Cmd {
	return func() tea.Msg {
		_, err := m.mutator.Update(m.ctx, id, draft)
		return mutationDoneMsg{err: err}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.mutator.Delete(m.ctx, id)
		return mutationDoneMsg{err: err}
	}
}

// Run starts the Bubble Tea program and blocks until quit.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
