package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtRepository is the ledger store contract for debts
type DebtRepository interface {
	// FindByIDForTenant finds a debt by ID scoped to a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Debt, error)
	// FindByClient returns all debts of a client, newest first
	FindByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]Debt, error)
	// FindPayableByClientForUpdate returns the client's active,
	// non-terminal debts ordered by debt date ascending with ID as
	// tiebreak, locking the rows for the enclosing transaction so
	// concurrent allocations for the same client serialize.
	FindPayableByClientForUpdate(ctx context.Context, tenantID, clientID uuid.UUID) ([]Debt, error)
	// FindAllActiveUnpaid returns every active, non-terminal debt
	// across tenants, for the reclassification sweep snapshot
	FindAllActiveUnpaid(ctx context.Context) ([]Debt, error)
	// Save persists a debt
	Save(ctx context.Context, debt *Debt) error
}

// PaymentRepository is the ledger store contract for payments
type PaymentRepository interface {
	// FindByDebt returns all payments recorded against a debt
	FindByDebt(ctx context.Context, tenantID, debtID uuid.UUID) ([]Payment, error)
	// SumByDebts returns the total paid per debt for the given debt IDs.
	// Debts with no payments are absent from the map.
	SumByDebts(ctx context.Context, debtIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
	// Save persists a payment
	Save(ctx context.Context, payment *Payment) error
}
