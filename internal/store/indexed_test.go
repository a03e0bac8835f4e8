package store

import "testing"

func TestIndexedCoversStore(t *testing.T) {
	s := New()
	for n := 0; n < 4; n++ {
		count := 0
		for pos, it := range s.Indexed() {
			if pos != count {
				t.Fatalf("position: got %d, want %d", pos, count)
			}
			want, _ := s.At(pos)
			if it != want {
				t.Fatalf("item at %d does not match store", pos)
			}
			count++
		}
		if count != s.Len() {
			t.Fatalf("yielded %d pairs, store has %d", count, s.Len())
		}
		s.AddItem()
	}
}

func TestIndexedIsRestartableAndLive(t *testing.T) {
	s := New()
	s.AddItem()
	seq := s.Indexed()

	first := 0
	for range seq {
		first++
	}

	s.AddItem()
	s.MustSetDone(1, true)

	second := 0
	var doneAt []int
	for pos, it := range seq {
		second++
		if it.Done {
			doneAt = append(doneAt, pos)
		}
	}
	if first != 1 || second != 2 {
		t.Errorf("pair counts: got %d then %d, want 1 then 2", first, second)
	}
	if len(doneAt) != 1 || doneAt[0] != 1 {
		t.Errorf("done positions: got %v, want [1]", doneAt)
	}
}

func TestIndexedEarlyBreak(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.AddItem()
	}
	seen := 0
	for pos := range s.Indexed() {
		seen++
		if pos == 1 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("seen: got %d, want 2", seen)
	}
}
