package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/toggles/internal/logging"
	"github.com/idilsaglam/toggles/internal/store"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func newModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	s := store.New()
	m := New(s, logging.Discard())
	t.Cleanup(m.Close)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	return m, s
}

// listRows returns the rows currently shown, in display order.
func listRows(m Model) []row {
	var out []row
	for _, it := range m.list.Items() {
		out = append(out, it.(row))
	}
	return out
}

func assertInSync(t *testing.T, m Model, s *store.Store) {
	t.Helper()
	rows := listRows(m)
	if len(rows) != s.Len() {
		t.Fatalf("list shows %d rows, store has %d", len(rows), s.Len())
	}
	for i, r := range rows {
		it, _ := s.At(i)
		if r.pos != i || r.item != it {
			t.Fatalf("row %d out of sync: got pos=%d item=%v, store has %v", i, r.pos, r.item, it)
		}
	}
}

func TestAddPrependsAndRefreshes(t *testing.T) {
	m, s := newModel(t)

	m = send(t, m, runes("a"))
	assertInSync(t, m, s)
	first, _ := s.At(0)

	m = send(t, m, runes("a"))
	assertInSync(t, m, s)
	if s.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", s.Len())
	}
	if it, _ := s.At(1); it.ID != first.ID {
		t.Errorf("older item should have shifted to position 1")
	}
}

func TestSelectionFollowsIdentity(t *testing.T) {
	m, s := newModel(t)
	m = send(t, m, runes("a"))
	selected, _ := s.At(0)

	m = send(t, m, runes("a"), runes("a"))
	if got := m.list.Index(); got != 2 {
		t.Fatalf("cursor: got %d, want 2", got)
	}
	if r := m.list.SelectedItem().(row); r.item.ID != selected.ID {
		t.Errorf("cursor left the originally selected item")
	}
}

func TestToggleSelectedRow(t *testing.T) {
	m, s := newModel(t)
	m = send(t, m, runes("a"), runes("a"))
	// cursor follows the first item, now at position 1
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})

	if it, _ := s.At(1); !it.Done {
		t.Errorf("selected item should be done")
	}
	if it, _ := s.At(0); it.Done {
		t.Errorf("other item should be untouched")
	}
	assertInSync(t, m, s)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if it, _ := s.At(1); it.Done {
		t.Errorf("enter should toggle back")
	}
	assertInSync(t, m, s)
}

func TestToggleOnEmptyIsNoop(t *testing.T) {
	m, s := newModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if s.Len() != 0 || m.errMsg != "" {
		t.Errorf("toggle on empty list changed state: len=%d err=%q", s.Len(), m.errMsg)
	}
}

func TestRemoveLastClampsCursor(t *testing.T) {
	m, s := newModel(t)
	m = send(t, m, runes("a"), runes("a"))
	if m.list.Index() != 1 {
		t.Fatalf("cursor: got %d, want 1", m.list.Index())
	}

	m = send(t, m, runes("x"))
	assertInSync(t, m, s)
	if m.list.Index() != 0 {
		t.Errorf("cursor after removing selected tail: got %d, want 0", m.list.Index())
	}

	m = send(t, m, runes("x"), runes("x"), runes("x"))
	assertInSync(t, m, s)
	if s.Len() != 0 {
		t.Errorf("Len: got %d, want 0", s.Len())
	}
}

func TestExternalMutationObserved(t *testing.T) {
	m, s := newModel(t)
	before := m.sync.events
	s.AddItem()
	if m.sync.events != before+1 || !m.sync.stale {
		t.Fatalf("observer did not fire for external mutation")
	}
	m.refresh()
	assertInSync(t, m, s)
}

func TestCloseDetaches(t *testing.T) {
	s := store.New()
	m := New(s, logging.Discard())
	m.Close()
	s.AddItem()
	if m.sync.events != 0 {
		t.Errorf("closed model still observing: %d events", m.sync.events)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%q: expected quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: expected tea.QuitMsg", msg.String())
		}
	}
}

func TestViewShowsRows(t *testing.T) {
	m, s := newModel(t)
	m = send(t, m, runes("a"))
	it, _ := s.At(0)
	v := m.View()
	if !strings.Contains(v, it.ID.String()) {
		t.Errorf("view missing item id:\n%s", v)
	}
	if !strings.Contains(v, "Is Done") {
		t.Errorf("view missing switch label:\n%s", v)
	}
}

func TestStats(t *testing.T) {
	s := store.New()
	s.AddItem()
	s.AddItem()
	s.AddItem()
	s.MustSetDone(2, true)
	done, pending := stats(s.Items())
	if done != 1 || pending != 2 {
		t.Errorf("stats: got %d/%d, want 1/2", done, pending)
	}
}
