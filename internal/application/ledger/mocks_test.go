package ledger

import (
	"context"

	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/flowik/backend/internal/domain/notification"
	"github.com/flowik/backend/internal/domain/partner"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Debt, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]ledger.Debt, error) {
	args := m.Called(ctx, tenantID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindPayableByClientForUpdate(ctx context.Context, tenantID, clientID uuid.UUID) ([]ledger.Debt, error) {
	args := m.Called(ctx, tenantID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindAllActiveUnpaid(ctx context.Context) ([]ledger.Debt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Debt), args.Error(1)
}

func (m *MockDebtRepository) Save(ctx context.Context, debt *ledger.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByDebt(ctx context.Context, tenantID, debtID uuid.UUID) ([]ledger.Payment, error) {
	args := m.Called(ctx, tenantID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumByDebts(ctx context.Context, debtIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	args := m.Called(ctx, debtIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *ledger.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) MaybeNotify(
	ctx context.Context,
	tenantID uuid.UUID,
	subjectType notification.SubjectType,
	referenceID uuid.UUID,
	ownerID uuid.UUID,
	title string,
	description string,
) (bool, error) {
	args := m.Called(ctx, tenantID, subjectType, referenceID, ownerID, title, description)
	return args.Bool(0), args.Error(1)
}
