package persistence

import (
	"context"
	"errors"

	"github.com/flowik/backend/internal/domain/partner"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/flowik/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProviderRepository implements partner.ProviderRepository using GORM
type GormProviderRepository struct {
	db *gorm.DB
}

// NewGormProviderRepository creates a new GormProviderRepository
func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

// FindByIDForTenant finds a provider by ID within a tenant
func (r *GormProviderRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Provider, error) {
	var model models.ProviderModel
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

// FindAllForTenant finds all providers for a tenant matching the filter
func (r *GormProviderRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Provider, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ProviderModel{}).
		Where("tenant_id = ?", tenantID)
	query = applyFilter(query, filter, "name")

	var providerModels []models.ProviderModel
	if err := query.Find(&providerModels).Error; err != nil {
		return nil, err
	}

	providers := make([]partner.Provider, len(providerModels))
	for i := range providerModels {
		providers[i] = *providerModels[i].ToDomain()
	}
	return providers, nil
}

// Save creates or updates a provider
func (r *GormProviderRepository) Save(ctx context.Context, provider *partner.Provider) error {
	model := models.ProviderModelFromDomain(provider)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormProviderRepository implements ProviderRepository
var _ partner.ProviderRepository = (*GormProviderRepository)(nil)
