package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/flowik/backend/internal/domain/notification"
	"github.com/flowik/backend/internal/domain/partner"
	"github.com/flowik/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notification titles for debt ageing alerts. The title is part of the
// dedup key, so Overdue and Critical alerts for the same debt never
// suppress each other.
const (
	TitleDebtOverdue  = "Overdue debt alert"
	TitleDebtCritical = "Critical debt alert"
)

// Notifier is the sweep's view of the notification deduper
type Notifier interface {
	MaybeNotify(
		ctx context.Context,
		tenantID uuid.UUID,
		subjectType notification.SubjectType,
		referenceID uuid.UUID,
		ownerID uuid.UUID,
		title string,
		description string,
	) (bool, error)
}

// DebtSweepService periodically reclassifies active unpaid debts by age.
// One failing debt never aborts the sweep: the failure is logged and the
// remaining debts are still processed.
type DebtSweepService struct {
	debts    ledger.DebtRepository
	clients  partner.ClientRepository
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewDebtSweepService creates a new DebtSweepService
func NewDebtSweepService(
	debts ledger.DebtRepository,
	clients partner.ClientRepository,
	notifier Notifier,
	logger *zap.Logger,
) *DebtSweepService {
	return &DebtSweepService{
		debts:    debts,
		clients:  clients,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Name identifies this task in scheduler logs
func (s *DebtSweepService) Name() string {
	return "debt-reclassification-sweep"
}

// Run takes a snapshot of all active non-terminal debts, computes each
// one's age severity and promotes it when the computed severity is
// stricter than the stored one. An alert is emitted only on an actual
// transition; a debt already at its computed severity is left alone.
func (s *DebtSweepService) Run(ctx context.Context) error {
	debts, err := s.debts.FindAllActiveUnpaid(ctx)
	if err != nil {
		return fmt.Errorf("failed to load debts for sweep: %w", err)
	}

	now := s.now()
	clientNames := make(map[uuid.UUID]string)
	var promoted, failed int

	for i := range debts {
		debt := &debts[i]
		changed, err := s.sweepOne(ctx, debt, now, clientNames)
		if err != nil {
			failed++
			telemetry.RecordSweepEntity(ctx, "debt", true)
			s.logger.Error("debt sweep entry failed",
				zap.String("debt_id", debt.ID.String()),
				zap.Error(err),
			)
			continue
		}
		telemetry.RecordSweepEntity(ctx, "debt", false)
		if changed {
			promoted++
		}
	}

	s.logger.Info("debt sweep completed",
		zap.Int("scanned", len(debts)),
		zap.Int("promoted", promoted),
		zap.Int("failed", failed),
	)
	return nil
}

func (s *DebtSweepService) sweepOne(
	ctx context.Context,
	debt *ledger.Debt,
	now time.Time,
	clientNames map[uuid.UUID]string,
) (bool, error) {
	days := ledger.DaysElapsed(debt.AgeReference(), now)
	severity := ledger.ClassifyDebtAge(days, debt.OverdueDays, debt.CriticalDays)
	if !debt.Promote(severity) {
		return false, nil
	}

	if err := s.debts.Save(ctx, debt); err != nil {
		return false, fmt.Errorf("failed to persist reclassification: %w", err)
	}
	s.logger.Info("debt reclassified",
		zap.String("debt_id", debt.ID.String()),
		zap.String("status", debt.Status.String()),
		zap.Int("days_elapsed", days),
	)

	if debt.CreatedBy == nil {
		return true, nil
	}

	title := TitleDebtOverdue
	if severity == ledger.DebtStatusCritical {
		title = TitleDebtCritical
	}
	description := fmt.Sprintf("Debt of %s for client %s is %d days old",
		debt.Principal.StringFixed(2),
		s.clientName(ctx, debt, clientNames),
		days,
	)

	// A notification failure does not undo the reclassification.
	if _, err := s.notifier.MaybeNotify(
		ctx,
		debt.TenantID,
		notification.SubjectTypeDebt,
		debt.ID,
		*debt.CreatedBy,
		title,
		description,
	); err != nil {
		s.logger.Error("debt alert emission failed",
			zap.String("debt_id", debt.ID.String()),
			zap.Error(err),
		)
	}
	return true, nil
}

func (s *DebtSweepService) clientName(
	ctx context.Context,
	debt *ledger.Debt,
	cache map[uuid.UUID]string,
) string {
	if name, ok := cache[debt.ClientID]; ok {
		return name
	}
	client, err := s.clients.FindByIDForTenant(ctx, debt.TenantID, debt.ClientID)
	if err != nil {
		s.logger.Warn("client lookup failed during sweep",
			zap.String("client_id", debt.ClientID.String()),
			zap.Error(err),
		)
		cache[debt.ClientID] = debt.ClientID.String()
		return cache[debt.ClientID]
	}
	cache[debt.ClientID] = client.Name
	return client.Name
}
