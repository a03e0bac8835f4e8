// Package store holds the ordered, observable list of items.
//
// A Store is owned by a single event loop. It does no locking: every
// mutation and every observer callback happens on the caller's goroutine.
package store

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/toggles/internal/model"
)

// ErrIndexOutOfRange is returned when a position does not name an item.
var ErrIndexOutOfRange = errors.New("index out of range")

// EventKind names the mutation that produced an Event.
type EventKind int

const (
	Added EventKind = iota
	Removed
	DoneChanged
)

func (k EventKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case DoneChanged:
		return "done_changed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes one applied mutation. Index is the position the item
// occupied when the mutation happened; Len is the store length afterwards.
type Event struct {
	Kind  EventKind
	Index int
	Item  model.Item
	Len   int
}

// Observer is called synchronously after each mutation.
type Observer func(Event)

type subscription struct {
	id int
	fn Observer
}

// Store is an ordered sequence of items. New items go to the front.
type Store struct {
	items     []model.Item
	observers []subscription
	nextSub   int
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Subscribe registers fn and returns a func that removes it again.
// Observers run in subscription order.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(ev Event) {
	// copy so an observer may unsubscribe while we iterate
	subs := append([]subscription(nil), s.observers...)
	for _, sub := range subs {
		sub.fn(ev)
	}
}

// AddItem creates a pending item and inserts it at position 0.
func (s *Store) AddItem() model.Item {
	it := model.NewItem()
	s.items = append(s.items, model.Item{})
	copy(s.items[1:], s.items)
	s.items[0] = it
	s.notify(Event{Kind: Added, Index: 0, Item: it, Len: len(s.items)})
	return it
}

// RemoveLast drops the tail item. On an empty store it does nothing and
// reports false.
func (s *Store) RemoveLast() (model.Item, bool) {
	n := len(s.items)
	if n == 0 {
		return model.Item{}, false
	}
	it := s.items[n-1]
	s.items[n-1] = model.Item{}
	s.items = s.items[:n-1]
	s.notify(Event{Kind: Removed, Index: n - 1, Item: it, Len: len(s.items)})
	return it, true
}

// SetDone sets the done flag of the item at index.
func (s *Store) SetDone(index int, done bool) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("set done at %d (len %d): %w", index, len(s.items), ErrIndexOutOfRange)
	}
	s.items[index].Done = done
	s.notify(Event{Kind: DoneChanged, Index: index, Item: s.items[index], Len: len(s.items)})
	return nil
}

// MustSetDone is SetDone for callers that derived index from the current
// extent; a bad index there is a programming error.
func (s *Store) MustSetDone(index int, done bool) {
	if err := s.SetDone(index, done); err != nil {
		panic(err)
	}
}

// Toggle flips the done flag of the item at index.
func (s *Store) Toggle(index int) error {
	it, ok := s.At(index)
	if !ok {
		return fmt.Errorf("toggle at %d (len %d): %w", index, len(s.items), ErrIndexOutOfRange)
	}
	return s.SetDone(index, !it.Done)
}

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// At returns the item at index.
func (s *Store) At(index int) (model.Item, bool) {
	if index < 0 || index >= len(s.items) {
		return model.Item{}, false
	}
	return s.items[index], true
}

// IndexOf returns the position of the item with the given identity, or -1.
func (s *Store) IndexOf(it model.Item) int {
	for i := range s.items {
		if s.items[i].ID == it.ID {
			return i
		}
	}
	return -1
}

// Items returns a copy of the current contents.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}
