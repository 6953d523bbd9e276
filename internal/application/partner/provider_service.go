package partner

import (
	"context"
	"fmt"

	"github.com/flowik/backend/internal/domain/partner"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProviderService implements provider registry use cases
type ProviderService struct {
	providers partner.ProviderRepository
	logger    *zap.Logger
}

// NewProviderService creates a new ProviderService
func NewProviderService(providers partner.ProviderRepository, logger *zap.Logger) *ProviderService {
	return &ProviderService{providers: providers, logger: logger}
}

// CreateProviderRequest carries a new provider registration
type CreateProviderRequest struct {
	TenantID uuid.UUID
	Name     string
	Email    string
	Phone    string
	ActorID  uuid.UUID
}

// CreateProvider registers a new provider
func (s *ProviderService) CreateProvider(ctx context.Context, req CreateProviderRequest) (*partner.Provider, error) {
	provider, err := partner.NewProvider(req.TenantID, req.Name, req.Email, req.Phone, req.ActorID)
	if err != nil {
		return nil, err
	}
	if err := s.providers.Save(ctx, provider); err != nil {
		return nil, fmt.Errorf("failed to save provider: %w", err)
	}
	s.logger.Info("provider created",
		zap.String("provider_id", provider.ID.String()),
		zap.String("name", provider.Name),
	)
	return provider, nil
}

// GetProvider returns a provider by ID
func (s *ProviderService) GetProvider(ctx context.Context, tenantID, id uuid.UUID) (*partner.Provider, error) {
	return s.providers.FindByIDForTenant(ctx, tenantID, id)
}

// ListProviders returns the tenant's providers with pagination
func (s *ProviderService) ListProviders(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Provider, error) {
	return s.providers.FindAllForTenant(ctx, tenantID, filter)
}

// DeactivateProvider soft-deletes a provider
func (s *ProviderService) DeactivateProvider(ctx context.Context, tenantID, id uuid.UUID) error {
	provider, err := s.providers.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !provider.Active {
		return nil
	}
	provider.Deactivate()
	if err := s.providers.Save(ctx, provider); err != nil {
		return fmt.Errorf("failed to deactivate provider: %w", err)
	}
	s.logger.Info("provider deactivated", zap.String("provider_id", id.String()))
	return nil
}
