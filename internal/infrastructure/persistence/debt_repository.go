package persistence

import (
	"context"
	"errors"

	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/flowik/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDebtRepository implements ledger.DebtRepository using GORM
type GormDebtRepository struct {
	db *gorm.DB
}

// NewGormDebtRepository creates a new GormDebtRepository
func NewGormDebtRepository(db *gorm.DB) *GormDebtRepository {
	return &GormDebtRepository{db: db}
}

// FindByIDForTenant finds a debt by ID within a tenant
func (r *GormDebtRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Debt, error) {
	var model models.DebtModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByClient returns all debts of a client, newest first
func (r *GormDebtRepository) FindByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]ledger.Debt, error) {
	var debtModels []models.DebtModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		Order("debt_date DESC, id DESC").
		Find(&debtModels).Error; err != nil {
		return nil, err
	}
	return toDomainDebts(debtModels), nil
}

// FindPayableByClientForUpdate returns the client's active non-terminal
// debts oldest first, with the rows locked for the enclosing
// transaction. The explicit id tiebreak keeps the waterfall order
// stable when two debts share a debt date.
func (r *GormDebtRepository) FindPayableByClientForUpdate(ctx context.Context, tenantID, clientID uuid.UUID) ([]ledger.Debt, error) {
	var debtModels []models.DebtModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND client_id = ? AND active = ? AND status <> ?",
			tenantID, clientID, true, ledger.DebtStatusPaid).
		Order("debt_date ASC, id ASC").
		Find(&debtModels).Error; err != nil {
		return nil, err
	}
	return toDomainDebts(debtModels), nil
}

// FindAllActiveUnpaid returns every active non-terminal debt across tenants
func (r *GormDebtRepository) FindAllActiveUnpaid(ctx context.Context) ([]ledger.Debt, error) {
	var debtModels []models.DebtModel
	if err := r.db.WithContext(ctx).
		Where("active = ? AND status <> ?", true, ledger.DebtStatusPaid).
		Order("debt_date ASC, id ASC").
		Find(&debtModels).Error; err != nil {
		return nil, err
	}
	return toDomainDebts(debtModels), nil
}

// Save creates or updates a debt
func (r *GormDebtRepository) Save(ctx context.Context, debt *ledger.Debt) error {
	model := models.DebtModelFromDomain(debt)
	return r.db.WithContext(ctx).Save(model).Error
}

func toDomainDebts(debtModels []models.DebtModel) []ledger.Debt {
	debts := make([]ledger.Debt, len(debtModels))
	for i := range debtModels {
		debts[i] = *debtModels[i].ToDomain()
	}
	return debts
}

// Ensure GormDebtRepository implements DebtRepository
var _ ledger.DebtRepository = (*GormDebtRepository)(nil)
