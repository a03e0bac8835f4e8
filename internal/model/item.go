package model

import "github.com/google/uuid"

// Item is the domain model for a toggle row.
// ID is minted once in NewItem and never reassigned.
type Item struct {
	ID   uuid.UUID `json:"id"`
	Done bool      `json:"done"`
}

// NewItem returns a pending item with a fresh identity.
func NewItem() Item {
	return Item{ID: uuid.New()}
}

// ShortID is the first block of the UUID, enough to tell rows apart on narrow terminals.
func (i Item) ShortID() string {
	return i.ID.String()[:8]
}
