package store

import (
	"iter"

	"github.com/idilsaglam/toggles/internal/model"
)

// Indexed yields (position, item) pairs over the store in order.
// The sequence reads the store while it is being ranged over, so each
// call reflects whatever the store holds at that moment.
func (s *Store) Indexed() iter.Seq2[int, model.Item] {
	return func(yield func(int, model.Item) bool) {
		for i := 0; i < len(s.items); i++ {
			if !yield(i, s.items[i]) {
				return
			}
		}
	}
}
