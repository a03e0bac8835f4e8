// Package snapshot writes the indexed view of a store as JSON.
// It is output only; nothing reads it back.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/google/uuid"

	"github.com/idilsaglam/toggles/internal/model"
)

// Row is one (position, item) pair as written to JSON.
type Row struct {
	Index int       `json:"index"`
	ID    uuid.UUID `json:"id"`
	Done  bool      `json:"done"`
}

// Rows collects seq into a slice. An empty seq yields an empty, non-nil slice
// so it encodes as [] rather than null.
func Rows(seq iter.Seq2[int, model.Item]) []Row {
	rows := []Row{}
	for i, it := range seq {
		rows = append(rows, Row{Index: i, ID: it.ID, Done: it.Done})
	}
	return rows
}

// Encode writes seq to w as indented JSON.
func Encode(w io.Writer, seq iter.Seq2[int, model.Item]) error {
	b, err := json.MarshalIndent(Rows(seq), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
