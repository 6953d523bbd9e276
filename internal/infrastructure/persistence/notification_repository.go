package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/flowik/backend/internal/domain/notification"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/flowik/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// ExistsActive reports whether an unread notification with the given
// dedup key exists
func (r *GormNotificationRepository) ExistsActive(ctx context.Context, key notification.DedupKey) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("reference_id = ? AND owner_id = ? AND title = ? AND read = ?",
			key.ReferenceID, key.OwnerID, key.Title, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByOwner lists an owner's notifications, newest first
func (r *GormNotificationRepository) FindByOwner(ctx context.Context, tenantID, ownerID uuid.UUID, subjectType *notification.SubjectType) ([]notification.Notification, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ? AND owner_id = ?", tenantID, ownerID)
	if subjectType != nil {
		query = query.Where("subject_type = ?", *subjectType)
	}

	var notificationModels []models.NotificationModel
	if err := query.Order("created_at DESC, id DESC").Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]notification.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = *notificationModels[i].ToDomain()
	}
	return notifications, nil
}

// FindByIDForOwner finds a notification by ID, restricted to its owner
func (r *GormNotificationRepository) FindByIDForOwner(ctx context.Context, tenantID, id, ownerID uuid.UUID) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ? AND owner_id = ?", tenantID, id, ownerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a notification
func (r *GormNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model := models.NotificationModelFromDomain(n)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteOlderThan purges notifications created before the cutoff and
// returns the number deleted
func (r *GormNotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.NotificationModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Ensure GormNotificationRepository implements Repository
var _ notification.Repository = (*GormNotificationRepository)(nil)
