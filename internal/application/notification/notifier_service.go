package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/flowik/backend/internal/domain/notification"
	"github.com/flowik/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RetentionWindow is how long notifications are kept before the
// retention task purges them.
const RetentionWindow = 30 * 24 * time.Hour

// NotifierService is the single writer of notifications. It gates every
// emission through the dedup policy: a prior *unread* notification with
// the same (referenceID, ownerID, title) key suppresses re-emission.
// The same policy applies to debt and stock alerts.
type NotifierService struct {
	repo   notification.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewNotifierService creates a new NotifierService
func NewNotifierService(repo notification.Repository, logger *zap.Logger) *NotifierService {
	return &NotifierService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// MaybeNotify persists a new notification unless an unread one with the
// same dedup key is still active. It returns whether a notification was
// emitted.
func (s *NotifierService) MaybeNotify(
	ctx context.Context,
	tenantID uuid.UUID,
	subjectType notification.SubjectType,
	referenceID uuid.UUID,
	ownerID uuid.UUID,
	title string,
	description string,
) (bool, error) {
	key := notification.DedupKey{
		ReferenceID: referenceID,
		OwnerID:     ownerID,
		Title:       title,
	}

	exists, err := s.repo.ExistsActive(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check active notification: %w", err)
	}
	if exists {
		telemetry.RecordNotificationDecision(ctx, string(subjectType), false)
		s.logger.Debug("notification suppressed by active prior alert",
			zap.String("reference_id", referenceID.String()),
			zap.String("title", title),
		)
		return false, nil
	}

	n, err := notification.New(tenantID, subjectType, referenceID, ownerID, title, description)
	if err != nil {
		return false, err
	}
	if err := s.repo.Save(ctx, n); err != nil {
		return false, fmt.Errorf("failed to save notification: %w", err)
	}

	telemetry.RecordNotificationDecision(ctx, string(subjectType), true)
	s.logger.Info("notification emitted",
		zap.String("notification_id", n.ID.String()),
		zap.String("subject_type", string(subjectType)),
		zap.String("reference_id", referenceID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("title", title),
	)
	return true, nil
}

// ListForOwner lists an owner's notifications, optionally filtered by subject type
func (s *NotifierService) ListForOwner(
	ctx context.Context,
	tenantID, ownerID uuid.UUID,
	subjectType *notification.SubjectType,
) ([]notification.Notification, error) {
	return s.repo.FindByOwner(ctx, tenantID, ownerID, subjectType)
}

// MarkRead marks a notification as read. The flag is monotonic.
func (s *NotifierService) MarkRead(ctx context.Context, tenantID, id, ownerID uuid.UUID) error {
	n, err := s.repo.FindByIDForOwner(ctx, tenantID, id, ownerID)
	if err != nil {
		return err
	}
	if n.Read {
		return nil
	}
	n.MarkRead()
	return s.repo.Save(ctx, n)
}

// RunRetention purges notifications older than the retention window.
// Cleanup is process-wide, not owner-scoped, and independent of the
// dedup decision.
func (s *NotifierService) RunRetention(ctx context.Context) error {
	cutoff := s.now().Add(-RetentionWindow)
	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("notification retention failed: %w", err)
	}
	telemetry.RecordNotificationsPurged(ctx, deleted)
	s.logger.Info("notification retention completed",
		zap.Time("cutoff", cutoff),
		zap.Int64("deleted", deleted),
	)
	return nil
}
