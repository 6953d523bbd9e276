package partner

import (
	"context"
	"time"

	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Provider is a supplier of products
type Provider struct {
	shared.TenantAggregateRoot
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

// NewProvider creates a new provider
func NewProvider(tenantID uuid.UUID, name, email, phone string, actorID uuid.UUID) (*Provider, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PROVIDER_NAME", "Provider name cannot be empty")
	}
	if actorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Actor identity is required")
	}
	return &Provider{
		TenantAggregateRoot: shared.NewTenantAggregateRootWithCreator(tenantID, actorID),
		Name:                name,
		Email:               email,
		Phone:               phone,
		Active:              true,
	}, nil
}

// Deactivate soft-deletes the provider
func (p *Provider) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// ProviderRepository is the storage contract for providers
type ProviderRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Provider, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Provider, error)
	Save(ctx context.Context, provider *Provider) error
}
