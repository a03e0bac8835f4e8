package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewItem(t *testing.T) {
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 100; i++ {
		it := NewItem()
		if it.Done {
			t.Fatalf("new item should be pending")
		}
		if it.ID == uuid.Nil {
			t.Fatalf("new item has nil id")
		}
		if seen[it.ID] {
			t.Fatalf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestShortID(t *testing.T) {
	it := Item{ID: uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301")}
	if got := it.ShortID(); got != "3f2504e0" {
		t.Errorf("ShortID: got %q, want 3f2504e0", got)
	}
}
