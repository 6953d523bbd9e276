package models

import (
	"github.com/flowik/backend/internal/domain/notification"
	"github.com/google/uuid"
)

// NotificationModel is the persistence model for notifications.
// The composite index on (reference_id, owner_id, title, read) backs
// the dedup existence check.
type NotificationModel struct {
	TenantAggregateModel
	SubjectType notification.SubjectType `gorm:"type:varchar(20);not null;index"`
	ReferenceID uuid.UUID                `gorm:"type:uuid;not null;index:idx_notifications_dedup"`
	OwnerID     uuid.UUID                `gorm:"type:uuid;not null;index:idx_notifications_dedup;index"`
	Title       string                   `gorm:"type:varchar(255);not null;index:idx_notifications_dedup"`
	Description string                   `gorm:"type:text"`
	Read        bool                     `gorm:"not null;default:false;index:idx_notifications_dedup"`
}

// TableName specifies the table name for NotificationModel
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts NotificationModel to the domain Notification
func (m *NotificationModel) ToDomain() *notification.Notification {
	n := &notification.Notification{
		SubjectType: m.SubjectType,
		ReferenceID: m.ReferenceID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		Read:        m.Read,
	}
	m.PopulateTenantAggregateRoot(&n.TenantAggregateRoot)
	return n
}

// NotificationModelFromDomain converts a domain Notification to NotificationModel
func NotificationModelFromDomain(n *notification.Notification) *NotificationModel {
	m := &NotificationModel{
		SubjectType: n.SubjectType,
		ReferenceID: n.ReferenceID,
		OwnerID:     n.OwnerID,
		Title:       n.Title,
		Description: n.Description,
		Read:        n.Read,
	}
	m.FromDomainTenantAggregateRoot(n.TenantAggregateRoot)
	return m
}
