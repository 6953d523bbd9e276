package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type debtServiceFixture struct {
	service  *DebtService
	debts    *MockDebtRepository
	payments *MockPaymentRepository
	clients  *MockClientRepository
}

func newDebtServiceFixture() *debtServiceFixture {
	debts := new(MockDebtRepository)
	payments := new(MockPaymentRepository)
	clients := new(MockClientRepository)
	return &debtServiceFixture{
		service:  NewDebtService(debts, payments, clients, zap.NewNop()),
		debts:    debts,
		payments: payments,
		clients:  clients,
	}
}

func TestRegisterDebtAppliesDefaults(t *testing.T) {
	f := newDebtServiceFixture()
	tenantID := uuid.New()
	client := testClient(tenantID)

	f.clients.On("FindByIDForTenant", mock.Anything, tenantID, client.ID).Return(client, nil)
	f.debts.On("Save", mock.Anything, mock.AnythingOfType("*ledger.Debt")).Return(nil)

	debt, err := f.service.RegisterDebt(context.Background(), RegisterDebtRequest{
		TenantID:  tenantID,
		ClientID:  client.ID,
		Principal: dec("250.00"),
		ActorID:   uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, ledger.DebtStatusUnpaid, debt.Status)
	assert.Equal(t, ledger.DefaultOverdueDays, debt.OverdueDays)
	assert.Equal(t, ledger.DefaultCriticalDays, debt.CriticalDays)
	assert.True(t, debt.Active)
}

func TestRegisterDebtRejectsInactiveClient(t *testing.T) {
	f := newDebtServiceFixture()
	tenantID := uuid.New()
	client := testClient(tenantID)
	client.Deactivate()

	f.clients.On("FindByIDForTenant", mock.Anything, tenantID, client.ID).Return(client, nil)

	_, err := f.service.RegisterDebt(context.Background(), RegisterDebtRequest{
		TenantID:  tenantID,
		ClientID:  client.ID,
		Principal: dec("250.00"),
		ActorID:   uuid.New(),
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CLIENT_INACTIVE", domainErr.Code)
	f.debts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestListByClientComputesBalances(t *testing.T) {
	f := newDebtServiceFixture()
	tenantID, clientID := uuid.New(), uuid.New()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := testDebt(t, tenantID, clientID, "100.00", base)
	b := testDebt(t, tenantID, clientID, "40.00", base.AddDate(0, 0, 2))

	f.debts.On("FindByClient", mock.Anything, tenantID, clientID).
		Return([]ledger.Debt{b, a}, nil)
	f.payments.On("SumByDebts", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]decimal.Decimal{a.ID: dec("60.00")}, nil)

	result, err := f.service.ListByClient(context.Background(), tenantID, clientID)
	require.NoError(t, err)
	require.Len(t, result, 2)

	byID := make(map[uuid.UUID]DebtWithBalance)
	for _, r := range result {
		byID[r.Debt.ID] = r
	}
	assert.True(t, byID[a.ID].Remaining.Equal(dec("40.00")))
	assert.True(t, byID[b.ID].Paid.Equal(decimal.Zero))
	assert.True(t, byID[b.ID].Remaining.Equal(dec("40.00")))
}

func TestDeactivateDebtIsIdempotent(t *testing.T) {
	f := newDebtServiceFixture()
	tenantID := uuid.New()
	debt := testDebt(t, tenantID, uuid.New(), "10.00", time.Now())
	debt.Active = false

	f.debts.On("FindByIDForTenant", mock.Anything, tenantID, debt.ID).Return(&debt, nil)

	err := f.service.DeactivateDebt(context.Background(), tenantID, debt.ID)
	require.NoError(t, err)
	f.debts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
