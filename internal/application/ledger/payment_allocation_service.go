package ledger

import (
	"context"
	"fmt"

	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/flowik/backend/internal/domain/partner"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/flowik/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentAllocationService distributes an incoming payment across a
// client's outstanding debts, oldest first, in one atomic unit.
type PaymentAllocationService struct {
	clients partner.ClientRepository
	tx      TransactionScope
	logger  *zap.Logger
}

// NewPaymentAllocationService creates a new PaymentAllocationService
func NewPaymentAllocationService(
	clients partner.ClientRepository,
	tx TransactionScope,
	logger *zap.Logger,
) *PaymentAllocationService {
	return &PaymentAllocationService{
		clients: clients,
		tx:      tx,
		logger:  logger,
	}
}

// AllocatePaymentRequest carries one payment to allocate
type AllocatePaymentRequest struct {
	TenantID uuid.UUID
	ClientID uuid.UUID
	Amount   decimal.Decimal
	ActorID  uuid.UUID
}

// AllocatePayment applies the payment across the client's payable debts
// in a deterministic waterfall: debts ordered by creation date ascending
// (ID ascending as tiebreak), each debt exhausted before the next one
// receives anything. Either the whole allocation commits or none of it
// does. Concurrent allocations for the same client serialize on the
// locked debt rows.
func (s *PaymentAllocationService) AllocatePayment(ctx context.Context, req AllocatePaymentRequest) ([]ledger.Payment, error) {
	if !req.Amount.IsPositive() {
		telemetry.RecordAllocationRejected(ctx, "invalid_amount")
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !req.Amount.Equal(req.Amount.Round(2)) {
		telemetry.RecordAllocationRejected(ctx, "invalid_amount")
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount cannot have more than 2 decimal places")
	}

	client, err := s.clients.FindByIDForTenant(ctx, req.TenantID, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if !client.Active {
		telemetry.RecordAllocationRejected(ctx, "client_inactive")
		return nil, shared.NewDomainError("CLIENT_INACTIVE", "Client is deactivated")
	}

	var created []ledger.Payment
	err = s.tx.Execute(ctx, func(repos TransactionalRepositories) error {
		debts, err := repos.Debts().FindPayableByClientForUpdate(ctx, req.TenantID, req.ClientID)
		if err != nil {
			return fmt.Errorf("failed to load client debts: %w", err)
		}
		if len(debts) == 0 {
			telemetry.RecordAllocationRejected(ctx, "no_active_debt")
			return ledger.ErrNoActiveDebt
		}

		debtIDs := make([]uuid.UUID, len(debts))
		for i := range debts {
			debtIDs[i] = debts[i].ID
		}
		paidSoFar, err := repos.Payments().SumByDebts(ctx, debtIDs)
		if err != nil {
			return fmt.Errorf("failed to sum existing payments: %w", err)
		}

		outstanding := decimal.Zero
		for i := range debts {
			outstanding = outstanding.Add(debts[i].Principal.Sub(paidSoFar[debts[i].ID]))
		}
		if req.Amount.GreaterThan(outstanding) {
			telemetry.RecordAllocationRejected(ctx, "overpayment")
			return &ledger.OverpaymentError{Outstanding: outstanding}
		}

		remaining := req.Amount
		for i := range debts {
			if remaining.IsZero() {
				break
			}
			debt := &debts[i]
			debtRemaining := debt.Principal.Sub(paidSoFar[debt.ID])
			if !debtRemaining.IsPositive() {
				continue
			}

			applied := decimal.Min(remaining, debtRemaining)
			payment, err := ledger.NewPayment(req.TenantID, debt.ID, applied, req.ActorID)
			if err != nil {
				return err
			}
			if err := repos.Payments().Save(ctx, payment); err != nil {
				return fmt.Errorf("failed to save payment: %w", err)
			}

			if applied.Equal(debtRemaining) {
				debt.MarkPaid()
			} else {
				debt.MarkPartiallyPaid()
			}
			if err := repos.Debts().Save(ctx, debt); err != nil {
				return fmt.Errorf("failed to update debt status: %w", err)
			}

			created = append(created, *payment)
			remaining = remaining.Sub(applied)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.RecordPaymentsAllocated(ctx, len(created))
	s.logger.Info("payment allocated",
		zap.String("client_id", req.ClientID.String()),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.Int("payments_created", len(created)),
	)
	return created, nil
}
