package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	// QueryID groups note events under their owning query.
	QueryID   uuid.UUID
	Action    AuditAction
	Changes   map[string]any
	CreatedAt time.Time
}
