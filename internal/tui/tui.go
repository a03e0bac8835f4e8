// Package tui renders the store as an interactive Bubble Tea list with a
// switch per row.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/toggles/internal/model"
	"github.com/idilsaglam/toggles/internal/store"
	"github.com/idilsaglam/toggles/internal/ui"
)

// row adapts a (position, item) pair to bubbles/list.Item.
type row struct {
	pos  int
	item model.Item
}

func (r row) Title() string       { return r.item.ID.String() }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.item.ID.String() }

// itemDelegate renders each row on a single line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	t := ui.Current()

	id := r.item.ID.String()
	if m.Width() > 0 && m.Width() < 64 {
		id = r.item.ShortID()
	}
	sw := mutedStyle.Render(t.SwitchOff)
	if r.item.Done {
		sw = successStyle.Render(t.SwitchOn)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s %s %s Is Done", prefix,
		mutedStyle.Render(fmt.Sprintf("%2d", r.pos)), t.Sep(), id, t.Sep(), sw)
}

// syncState is shared between the store observer and every copy of Model.
type syncState struct {
	stale  bool
	events int
}

// Model is the Bubble Tea model over a store.
type Model struct {
	store  *store.Store
	list   list.Model
	keys   keyMap
	sync   *syncState
	logger *log.Logger

	unsubscribe func()
	errMsg      string
}

// New builds a Model bound to s. Call Close when done to detach from the store.
func New(s *store.Store, logger *log.Logger) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	// q and ctrl+c are handled before the list sees them
	l.KeyMap.Quit.SetEnabled(false)

	keys := defaultKeyMap()
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	st := &syncState{stale: true}
	m := Model{
		store:  s,
		list:   l,
		keys:   keys,
		sync:   st,
		logger: logger,
	}
	m.unsubscribe = s.Subscribe(func(store.Event) {
		st.stale = true
		st.events++
	})
	m.refresh()
	return m
}

// Close detaches the model from its store.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Every store mutation is reflected in the list
// before Update returns.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := frameStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Add):
			m.errMsg = ""
			it := m.store.AddItem()
			m.logger.Info("item added", "id", it.ID)
			return m, m.refresh()
		case key.Matches(msg, m.keys.RemoveLast):
			m.errMsg = ""
			if it, ok := m.store.RemoveLast(); ok {
				m.logger.Info("item removed", "id", it.ID)
			}
			return m, m.refresh()
		case key.Matches(msg, m.keys.Toggle):
			m.errMsg = ""
			if m.store.Len() == 0 {
				return m, nil
			}
			pos := m.list.Index()
			if err := m.store.Toggle(pos); err != nil {
				m.logger.Error("toggle failed", "pos", pos, "len", m.store.Len(), "err", err)
				m.errMsg = err.Error()
				return m, nil
			}
			return m, m.refresh()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// refresh rebuilds the list from a fresh indexed pass if the store changed.
// The cursor follows the selected item's identity across position shifts.
func (m *Model) refresh() tea.Cmd {
	if !m.sync.stale {
		return nil
	}
	m.sync.stale = false

	var (
		selected model.Item
		hadSel   bool
	)
	oldIndex := m.list.Index()
	if r, ok := m.list.SelectedItem().(row); ok {
		selected, hadSel = r.item, true
	}

	items := make([]list.Item, 0, m.store.Len())
	for pos, it := range m.store.Indexed() {
		items = append(items, row{pos: pos, item: it})
	}
	cmd := m.list.SetItems(items)
	m.list.Title = m.header()

	switch n := len(items); {
	case n == 0:
	case hadSel && m.store.IndexOf(selected) >= 0:
		m.list.Select(m.store.IndexOf(selected))
	case oldIndex >= n:
		m.list.Select(n - 1)
	case oldIndex < 0:
		m.list.Select(0)
	default:
		m.list.Select(oldIndex)
	}
	return cmd
}

func (m Model) header() string {
	done, pending := stats(m.store.Items())
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d  %s",
		titleStyle.Render("Toggles"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), done+pending,
		mutedStyle.Render(ui.ProgressBar(done, done+pending, 10)),
	)
}

// View implements tea.Model.
func (m Model) View() string {
	content := m.list.View()
	if m.errMsg != "" {
		content += "\n" + errorStyle.Render("✖ "+m.errMsg)
	}
	return frameStyle.Render(content)
}

// small list stats used for the header
func stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Options tune how the program is started.
type Options struct {
	AltScreen bool
	Input     io.Reader
	Output    io.Writer
}

// Run starts the interactive program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, s *store.Store, logger *log.Logger, opt Options) error {
	m := New(s, logger)
	defer m.Close()

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opt.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if opt.Input != nil {
		popts = append(popts, tea.WithInput(opt.Input))
	}
	if opt.Output != nil {
		popts = append(popts, tea.WithOutput(opt.Output))
	}

	logger.Debug("starting tui", "items", s.Len(), "alt_screen", opt.AltScreen)
	if _, err := tea.NewProgram(m, popts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Debug("tui exited", "items", s.Len())
	return nil
}
