package ledger

import (
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records money applied to a single debt. A payment belongs to
// exactly one debt and is immutable once created.
type Payment struct {
	shared.TenantAggregateRoot
	DebtID uuid.UUID       `json:"debt_id"`
	Amount decimal.Decimal `json:"amount"`
}

// NewPayment creates a payment entry against a debt
func NewPayment(tenantID, debtID uuid.UUID, amount decimal.Decimal, actorID uuid.UUID) (*Payment, error) {
	if debtID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DEBT", "Debt ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if actorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Actor identity is required")
	}
	return &Payment{
		TenantAggregateRoot: shared.NewTenantAggregateRootWithCreator(tenantID, actorID),
		DebtID:              debtID,
		Amount:              amount,
	}, nil
}
