package models

import (
	"github.com/flowik/backend/internal/domain/partner"
)

// ClientModel is the persistence model for clients
type ClientModel struct {
	TenantAggregateModel
	Name   string `gorm:"type:varchar(255);not null"`
	Email  string `gorm:"type:varchar(255)"`
	Phone  string `gorm:"type:varchar(50)"`
	Active bool   `gorm:"not null;default:true;index"`
}

// TableName specifies the table name for ClientModel
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts ClientModel to the domain Client
func (m *ClientModel) ToDomain() *partner.Client {
	client := &partner.Client{
		Name:   m.Name,
		Email:  m.Email,
		Phone:  m.Phone,
		Active: m.Active,
	}
	m.PopulateTenantAggregateRoot(&client.TenantAggregateRoot)
	return client
}

// ClientModelFromDomain converts a domain Client to ClientModel
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Active: c.Active,
	}
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	return m
}

// ProviderModel is the persistence model for providers
type ProviderModel struct {
	TenantAggregateModel
	Name   string `gorm:"type:varchar(255);not null"`
	Email  string `gorm:"type:varchar(255)"`
	Phone  string `gorm:"type:varchar(50)"`
	Active bool   `gorm:"not null;default:true;index"`
}

// TableName specifies the table name for ProviderModel
func (ProviderModel) TableName() string {
	return "providers"
}

// ToDomain converts ProviderModel to the domain Provider
func (m *ProviderModel) ToDomain() *partner.Provider {
	provider := &partner.Provider{
		Name:   m.Name,
		Email:  m.Email,
		Phone:  m.Phone,
		Active: m.Active,
	}
	m.PopulateTenantAggregateRoot(&provider.TenantAggregateRoot)
	return provider
}

// ProviderModelFromDomain converts a domain Provider to ProviderModel
func ProviderModelFromDomain(p *partner.Provider) *ProviderModel {
	m := &ProviderModel{
		Name:   p.Name,
		Email:  p.Email,
		Phone:  p.Phone,
		Active: p.Active,
	}
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	return m
}
