package ledger

import (
	"context"

	"github.com/flowik/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to the ledger
// repositories. Everything executed within one scope commits or rolls
// back atomically: a failed allocation must leave no payment rows behind.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the ledger repositories
// within a transaction. All repositories returned share the same
// underlying database transaction.
type TransactionalRepositories interface {
	// Debts returns the debt repository scoped to the current transaction
	Debts() ledger.DebtRepository
	// Payments returns the payment repository scoped to the current transaction
	Payments() ledger.PaymentRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	debts    ledger.DebtRepository
	payments ledger.PaymentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(debts ledger.DebtRepository, payments ledger.PaymentRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{debts: debts, payments: payments}
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Debts returns the debt repository
func (s *NoOpTransactionScope) Debts() ledger.DebtRepository {
	return s.debts
}

// Payments returns the payment repository
func (s *NoOpTransactionScope) Payments() ledger.PaymentRepository {
	return s.payments
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
