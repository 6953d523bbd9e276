package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the notification store contract
type Repository interface {
	// ExistsActive reports whether an unread notification with the
	// given dedup key exists
	ExistsActive(ctx context.Context, key DedupKey) (bool, error)
	// FindByOwner lists an owner's notifications, optionally filtered
	// by subject type, newest first
	FindByOwner(ctx context.Context, tenantID, ownerID uuid.UUID, subjectType *SubjectType) ([]Notification, error)
	// FindByIDForOwner finds a notification by ID, restricted to its owner
	FindByIDForOwner(ctx context.Context, tenantID, id, ownerID uuid.UUID) (*Notification, error)
	// Save persists a notification
	Save(ctx context.Context, n *Notification) error
	// DeleteOlderThan purges notifications created before the cutoff,
	// process-wide, and returns the number deleted
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
