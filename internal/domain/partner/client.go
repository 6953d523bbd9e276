package partner

import (
	"context"
	"time"

	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Client is a customer of the shop. A client owns many debts.
type Client struct {
	shared.TenantAggregateRoot
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

// NewClient creates a new client
func NewClient(tenantID uuid.UUID, name, email, phone string, actorID uuid.UUID) (*Client, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}
	if actorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Actor identity is required")
	}
	return &Client{
		TenantAggregateRoot: shared.NewTenantAggregateRootWithCreator(tenantID, actorID),
		Name:                name,
		Email:               email,
		Phone:               phone,
		Active:              true,
	}, nil
}

// Deactivate soft-deletes the client
func (c *Client) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
}

// ClientRepository is the storage contract for clients
type ClientRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Client, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Client, error)
	Save(ctx context.Context, client *Client) error
}
