package partner

import (
	"context"
	"fmt"

	"github.com/flowik/backend/internal/domain/partner"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientService implements client registry use cases
type ClientService struct {
	clients partner.ClientRepository
	logger  *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clients partner.ClientRepository, logger *zap.Logger) *ClientService {
	return &ClientService{clients: clients, logger: logger}
}

// CreateClientRequest carries a new client registration
type CreateClientRequest struct {
	TenantID uuid.UUID
	Name     string
	Email    string
	Phone    string
	ActorID  uuid.UUID
}

// CreateClient registers a new client
func (s *ClientService) CreateClient(ctx context.Context, req CreateClientRequest) (*partner.Client, error) {
	client, err := partner.NewClient(req.TenantID, req.Name, req.Email, req.Phone, req.ActorID)
	if err != nil {
		return nil, err
	}
	if err := s.clients.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	s.logger.Info("client created",
		zap.String("client_id", client.ID.String()),
		zap.String("name", client.Name),
	)
	return client, nil
}

// GetClient returns a client by ID
func (s *ClientService) GetClient(ctx context.Context, tenantID, id uuid.UUID) (*partner.Client, error) {
	return s.clients.FindByIDForTenant(ctx, tenantID, id)
}

// ListClients returns the tenant's clients with pagination
func (s *ClientService) ListClients(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Client, error) {
	return s.clients.FindAllForTenant(ctx, tenantID, filter)
}

// DeactivateClient soft-deletes a client. Existing debts stay in the
// ledger; new debts and payments are rejected for a deactivated client.
func (s *ClientService) DeactivateClient(ctx context.Context, tenantID, id uuid.UUID) error {
	client, err := s.clients.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !client.Active {
		return nil
	}
	client.Deactivate()
	if err := s.clients.Save(ctx, client); err != nil {
		return fmt.Errorf("failed to deactivate client: %w", err)
	}
	s.logger.Info("client deactivated", zap.String("client_id", id.String()))
	return nil
}
