package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/flowik/backend/internal/domain/partner"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DebtService implements debt registration and query use cases
type DebtService struct {
	debts    ledger.DebtRepository
	payments ledger.PaymentRepository
	clients  partner.ClientRepository
	logger   *zap.Logger
}

// NewDebtService creates a new DebtService
func NewDebtService(
	debts ledger.DebtRepository,
	payments ledger.PaymentRepository,
	clients partner.ClientRepository,
	logger *zap.Logger,
) *DebtService {
	return &DebtService{
		debts:    debts,
		payments: payments,
		clients:  clients,
		logger:   logger,
	}
}

// RegisterDebtRequest carries a new debt registration
type RegisterDebtRequest struct {
	TenantID       uuid.UUID
	ClientID       uuid.UUID
	Principal      decimal.Decimal
	ExpirationDate *time.Time
	OverdueDays    int
	CriticalDays   int
	ActorID        uuid.UUID
}

// RegisterDebt registers a new debt against a client
func (s *DebtService) RegisterDebt(ctx context.Context, req RegisterDebtRequest) (*ledger.Debt, error) {
	client, err := s.clients.FindByIDForTenant(ctx, req.TenantID, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if !client.Active {
		return nil, shared.NewDomainError("CLIENT_INACTIVE", "Cannot register a debt against a deactivated client")
	}

	debt, err := ledger.NewDebt(
		req.TenantID,
		req.ClientID,
		req.Principal,
		req.ExpirationDate,
		req.OverdueDays,
		req.CriticalDays,
		req.ActorID,
	)
	if err != nil {
		return nil, err
	}
	if err := s.debts.Save(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to save debt: %w", err)
	}

	s.logger.Info("debt registered",
		zap.String("debt_id", debt.ID.String()),
		zap.String("client_id", req.ClientID.String()),
		zap.String("principal", debt.Principal.StringFixed(2)),
	)
	return debt, nil
}

// DebtWithBalance pairs a debt with its paid and remaining totals
type DebtWithBalance struct {
	Debt      ledger.Debt
	Paid      decimal.Decimal
	Remaining decimal.Decimal
}

// GetDebt returns a debt with its running balance
func (s *DebtService) GetDebt(ctx context.Context, tenantID, id uuid.UUID) (*DebtWithBalance, error) {
	debt, err := s.debts.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	paid, err := s.paidTotal(ctx, debt.ID)
	if err != nil {
		return nil, err
	}
	return &DebtWithBalance{
		Debt:      *debt,
		Paid:      paid,
		Remaining: debt.Principal.Sub(paid),
	}, nil
}

// ListByClient returns all of a client's debts with balances, newest first
func (s *DebtService) ListByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]DebtWithBalance, error) {
	debts, err := s.debts.FindByClient(ctx, tenantID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client debts: %w", err)
	}
	if len(debts) == 0 {
		return []DebtWithBalance{}, nil
	}

	ids := make([]uuid.UUID, len(debts))
	for i := range debts {
		ids[i] = debts[i].ID
	}
	paid, err := s.payments.SumByDebts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	result := make([]DebtWithBalance, len(debts))
	for i := range debts {
		result[i] = DebtWithBalance{
			Debt:      debts[i],
			Paid:      paid[debts[i].ID],
			Remaining: debts[i].Principal.Sub(paid[debts[i].ID]),
		}
	}
	return result, nil
}

// ListPaymentsByDebt returns the payments recorded against a debt
func (s *DebtService) ListPaymentsByDebt(ctx context.Context, tenantID, debtID uuid.UUID) ([]ledger.Payment, error) {
	if _, err := s.debts.FindByIDForTenant(ctx, tenantID, debtID); err != nil {
		return nil, err
	}
	return s.payments.FindByDebt(ctx, tenantID, debtID)
}

// DeactivateDebt soft-deletes a debt. It is excluded from allocation and
// sweeps from then on, but its payment history stays queryable.
func (s *DebtService) DeactivateDebt(ctx context.Context, tenantID, id uuid.UUID) error {
	debt, err := s.debts.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !debt.Active {
		return nil
	}
	debt.Deactivate()
	if err := s.debts.Save(ctx, debt); err != nil {
		return fmt.Errorf("failed to deactivate debt: %w", err)
	}
	s.logger.Info("debt deactivated", zap.String("debt_id", id.String()))
	return nil
}

func (s *DebtService) paidTotal(ctx context.Context, debtID uuid.UUID) (decimal.Decimal, error) {
	sums, err := s.payments.SumByDebts(ctx, []uuid.UUID{debtID})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}
	return sums[debtID], nil
}
