package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository is the storage contract for products
type ProductRepository interface {
	// FindByIDForTenant finds a product by ID scoped to a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	// FindAllForTenant returns all products of a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Product, error)
	// FindAllActive returns every active product across tenants, for
	// the periodic stock level sweep
	FindAllActive(ctx context.Context) ([]Product, error)
	// Save persists a product
	Save(ctx context.Context, product *Product) error
}
