package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is an entry of the client directory.
type Client struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientRef is the display view of a client returned by the resolver.
type ClientRef struct {
	ID          uuid.UUID
	DisplayName string
}

// Ref returns the display view of c.
func (c Client) Ref() ClientRef {
	return ClientRef{ID: c.ID, DisplayName: c.Name}
}
