package persistence

import (
	"context"

	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/flowik/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPaymentRepository implements ledger.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByDebt returns all payments recorded against a debt, oldest first
func (r *GormPaymentRepository) FindByDebt(ctx context.Context, tenantID, debtID uuid.UUID) ([]ledger.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND debt_id = ?", tenantID, debtID).
		Order("created_at ASC, id ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]ledger.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = *paymentModels[i].ToDomain()
	}
	return payments, nil
}

// SumByDebts returns the total paid per debt for the given debt IDs
func (r *GormPaymentRepository) SumByDebts(ctx context.Context, debtIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	sums := make(map[uuid.UUID]decimal.Decimal, len(debtIDs))
	if len(debtIDs) == 0 {
		return sums, nil
	}

	var rows []struct {
		DebtID uuid.UUID
		Total  decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Select("debt_id, SUM(amount) AS total").
		Where("debt_id IN ?", debtIDs).
		Group("debt_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		sums[row.DebtID] = row.Total
	}
	return sums, nil
}

// Save creates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *ledger.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ ledger.PaymentRepository = (*GormPaymentRepository)(nil)
