package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	appledger "github.com/flowik/backend/internal/application/ledger"
	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/flowik/backend/internal/domain/partner"
	"github.com/flowik/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"go.uber.org/zap"
)

func setupScopeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ClientModel{},
		&models.DebtModel{},
		&models.PaymentModel{},
	))
	return db
}

func TestTransactionScopeRollsBackOnError(t *testing.T) {
	db := setupScopeTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	tenantID, clientID := uuid.New(), uuid.New()
	debt := mustNewDebt(t, tenantID, clientID, "100.00", time.Now())

	err := scope.Execute(ctx, func(repos appledger.TransactionalRepositories) error {
		if err := repos.Debts().Save(ctx, debt); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.DebtModel{}).Count(&count).Error)
	assert.Zero(t, count, "rolled back write must not be visible")
}

// End-to-end allocation through a real transaction scope: the waterfall
// writes payments and debt statuses atomically against the store.
func TestAllocationThroughRealScope(t *testing.T) {
	db := setupScopeTestDB(t)
	ctx := context.Background()

	clients := NewGormClientRepository(db)
	service := appledger.NewPaymentAllocationService(clients, NewGormTransactionScope(db), zap.NewNop())

	tenantID := uuid.New()
	client, err := partner.NewClient(tenantID, "Ana Perez", "", "", uuid.New())
	require.NoError(t, err)
	require.NoError(t, clients.Save(ctx, client))

	debts := NewGormDebtRepository(db)
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	oldest := mustNewDebt(t, tenantID, client.ID, "100.00", base)
	newer := mustNewDebt(t, tenantID, client.ID, "50.00", base.AddDate(0, 0, 3))
	require.NoError(t, debts.Save(ctx, oldest))
	require.NoError(t, debts.Save(ctx, newer))

	created, err := service.AllocatePayment(ctx, appledger.AllocatePaymentRequest{
		TenantID: tenantID,
		ClientID: client.ID,
		Amount:   decimal.RequireFromString("120.00"),
		ActorID:  uuid.New(),
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	reloadedOldest, err := debts.FindByIDForTenant(ctx, tenantID, oldest.ID)
	require.NoError(t, err)
	assert.Equal(t, ledger.DebtStatusPaid, reloadedOldest.Status)

	reloadedNewer, err := debts.FindByIDForTenant(ctx, tenantID, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, ledger.DebtStatusPartiallyPaid, reloadedNewer.Status)

	// a second overpaying attempt leaves nothing behind
	_, err = service.AllocatePayment(ctx, appledger.AllocatePaymentRequest{
		TenantID: tenantID,
		ClientID: client.ID,
		Amount:   decimal.RequireFromString("31.00"),
		ActorID:  uuid.New(),
	})
	var overpayment *ledger.OverpaymentError
	require.ErrorAs(t, err, &overpayment)
	assert.True(t, overpayment.Outstanding.Equal(decimal.RequireFromString("30.00")))

	var paymentCount int64
	require.NoError(t, db.Model(&models.PaymentModel{}).Count(&paymentCount).Error)
	assert.Equal(t, int64(2), paymentCount)
}
