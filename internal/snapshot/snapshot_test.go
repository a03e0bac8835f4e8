package snapshot

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/idilsaglam/toggles/internal/store"
)

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, store.New().Indexed()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Errorf("got %q, want []", got)
	}
}

func TestEncodeRows(t *testing.T) {
	s := store.New()
	a := s.AddItem()
	b := s.AddItem()
	s.MustSetDone(1, true)

	var buf bytes.Buffer
	if err := Encode(&buf, s.Indexed()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var rows []Row
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	want := []Row{
		{Index: 0, ID: b.ID, Done: false},
		{Index: 1, ID: a.ID, Done: true},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows: got %d, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, rows[i], want[i])
		}
	}
}
