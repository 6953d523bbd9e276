package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/flowik/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupLedgerTestDB creates an in-memory SQLite database with the ledger schema
func setupLedgerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.DebtModel{}, &models.PaymentModel{}))
	return db
}

func mustNewDebt(t *testing.T, tenantID, clientID uuid.UUID, principal string, debtDate time.Time) *ledger.Debt {
	t.Helper()
	amount, err := decimal.NewFromString(principal)
	require.NoError(t, err)
	debt, err := ledger.NewDebt(tenantID, clientID, amount, nil, 0, 0, uuid.New())
	require.NoError(t, err)
	debt.DebtDate = debtDate
	return debt
}

func TestDebtRepositorySaveAndFind(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormDebtRepository(db)
	ctx := context.Background()

	tenantID, clientID := uuid.New(), uuid.New()
	debt := mustNewDebt(t, tenantID, clientID, "120.50", time.Now())
	require.NoError(t, repo.Save(ctx, debt))

	found, err := repo.FindByIDForTenant(ctx, tenantID, debt.ID)
	require.NoError(t, err)
	assert.Equal(t, debt.ID, found.ID)
	assert.True(t, found.Principal.Equal(debt.Principal))
	assert.Equal(t, ledger.DebtStatusUnpaid, found.Status)

	// a different tenant cannot see the debt
	_, err = repo.FindByIDForTenant(ctx, uuid.New(), debt.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDebtRepositoryOldestFirstOrdering(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormDebtRepository(db)
	ctx := context.Background()

	tenantID, clientID := uuid.New(), uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	newest := mustNewDebt(t, tenantID, clientID, "10.00", base.AddDate(0, 0, 9))
	middle := mustNewDebt(t, tenantID, clientID, "20.00", base.AddDate(0, 0, 5))
	oldest := mustNewDebt(t, tenantID, clientID, "30.00", base)
	for _, d := range []*ledger.Debt{newest, middle, oldest} {
		require.NoError(t, repo.Save(ctx, d))
	}

	debts, err := repo.FindPayableByClientForUpdate(ctx, tenantID, clientID)
	require.NoError(t, err)
	require.Len(t, debts, 3)
	assert.Equal(t, oldest.ID, debts[0].ID)
	assert.Equal(t, middle.ID, debts[1].ID)
	assert.Equal(t, newest.ID, debts[2].ID)
}

func TestDebtRepositoryTiebreakOnEqualDates(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormDebtRepository(db)
	ctx := context.Background()

	tenantID, clientID := uuid.New(), uuid.New()
	when := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	a := mustNewDebt(t, tenantID, clientID, "10.00", when)
	b := mustNewDebt(t, tenantID, clientID, "20.00", when)
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	first, err := repo.FindPayableByClientForUpdate(ctx, tenantID, clientID)
	require.NoError(t, err)
	second, err := repo.FindPayableByClientForUpdate(ctx, tenantID, clientID)
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.Equal(t, first[0].ID, second[0].ID, "equal debt dates still order deterministically")
	assert.Equal(t, first[1].ID, second[1].ID)
}

func TestDebtRepositoryPayableExcludesPaidAndInactive(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormDebtRepository(db)
	ctx := context.Background()

	tenantID, clientID := uuid.New(), uuid.New()
	now := time.Now()

	open := mustNewDebt(t, tenantID, clientID, "50.00", now)
	paid := mustNewDebt(t, tenantID, clientID, "60.00", now)
	paid.MarkPaid()
	inactive := mustNewDebt(t, tenantID, clientID, "70.00", now)
	inactive.Deactivate()
	critical := mustNewDebt(t, tenantID, clientID, "80.00", now)
	critical.Status = ledger.DebtStatusCritical

	for _, d := range []*ledger.Debt{open, paid, inactive, critical} {
		require.NoError(t, repo.Save(ctx, d))
	}

	debts, err := repo.FindPayableByClientForUpdate(ctx, tenantID, clientID)
	require.NoError(t, err)

	ids := make(map[uuid.UUID]bool)
	for _, d := range debts {
		ids[d.ID] = true
	}
	assert.True(t, ids[open.ID])
	assert.True(t, ids[critical.ID], "a critical debt can still receive payments")
	assert.False(t, ids[paid.ID])
	assert.False(t, ids[inactive.ID])
}

func TestDebtRepositoryFindAllActiveUnpaidSpansTenants(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormDebtRepository(db)
	ctx := context.Background()

	now := time.Now()
	a := mustNewDebt(t, uuid.New(), uuid.New(), "10.00", now)
	b := mustNewDebt(t, uuid.New(), uuid.New(), "20.00", now)
	settled := mustNewDebt(t, uuid.New(), uuid.New(), "30.00", now)
	settled.MarkPaid()

	for _, d := range []*ledger.Debt{a, b, settled} {
		require.NoError(t, repo.Save(ctx, d))
	}

	debts, err := repo.FindAllActiveUnpaid(ctx)
	require.NoError(t, err)
	assert.Len(t, debts, 2)
}

func TestPaymentRepositorySumByDebts(t *testing.T) {
	db := setupLedgerTestDB(t)
	debts := NewGormDebtRepository(db)
	payments := NewGormPaymentRepository(db)
	ctx := context.Background()

	tenantID, clientID := uuid.New(), uuid.New()
	debt := mustNewDebt(t, tenantID, clientID, "100.00", time.Now())
	other := mustNewDebt(t, tenantID, clientID, "50.00", time.Now())
	require.NoError(t, debts.Save(ctx, debt))
	require.NoError(t, debts.Save(ctx, other))

	for _, amount := range []string{"10.00", "15.50"} {
		amt, err := decimal.NewFromString(amount)
		require.NoError(t, err)
		p, err := ledger.NewPayment(tenantID, debt.ID, amt, uuid.New())
		require.NoError(t, err)
		require.NoError(t, payments.Save(ctx, p))
	}

	sums, err := payments.SumByDebts(ctx, []uuid.UUID{debt.ID, other.ID})
	require.NoError(t, err)
	assert.True(t, sums[debt.ID].Equal(decimal.RequireFromString("25.50")))
	_, hasOther := sums[other.ID]
	assert.False(t, hasOther, "debts with no payments are absent from the map")

	empty, err := payments.SumByDebts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
