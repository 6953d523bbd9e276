package notification

import (
	"time"

	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SubjectType identifies what kind of entity a notification refers to
type SubjectType string

const (
	SubjectTypeDebt  SubjectType = "DEBT"
	SubjectTypeStock SubjectType = "STOCK"
)

// IsValid checks if the subject type is valid
func (t SubjectType) IsValid() bool {
	return t == SubjectTypeDebt || t == SubjectTypeStock
}

// Notification is an alert addressed to an owner about a debt or stock
// condition. It references but does not own its subject. Apart from the
// read flag it is immutable, and it is purged after the retention window.
type Notification struct {
	shared.TenantAggregateRoot
	SubjectType SubjectType `json:"subject_type"`
	ReferenceID uuid.UUID   `json:"reference_id"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Read        bool        `json:"read"`
}

// New creates a notification addressed to an owner
func New(
	tenantID uuid.UUID,
	subjectType SubjectType,
	referenceID uuid.UUID,
	ownerID uuid.UUID,
	title string,
	description string,
) (*Notification, error) {
	if !subjectType.IsValid() {
		return nil, shared.NewDomainError("INVALID_SUBJECT_TYPE", "Notification subject type is not valid")
	}
	if referenceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Notification reference ID cannot be empty")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Notification owner cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	return &Notification{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SubjectType:         subjectType,
		ReferenceID:         referenceID,
		OwnerID:             ownerID,
		Title:               title,
		Description:         description,
		Read:                false,
	}, nil
}

// MarkRead flips the read flag. The flag is monotonic: once read, a
// notification never becomes unread again.
func (n *Notification) MarkRead() {
	if n.Read {
		return
	}
	n.Read = true
	n.UpdatedAt = time.Now()
}

// DedupKey identifies "the same alert condition". A prior unread
// notification with the same key suppresses re-emission.
type DedupKey struct {
	ReferenceID uuid.UUID
	OwnerID     uuid.UUID
	Title       string
}

// Key returns this notification's dedup key
func (n *Notification) Key() DedupKey {
	return DedupKey{
		ReferenceID: n.ReferenceID,
		OwnerID:     n.OwnerID,
		Title:       n.Title,
	}
}
