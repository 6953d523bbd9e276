package models

import (
	"github.com/flowik/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for products
type ProductModel struct {
	TenantAggregateModel
	Name                   string          `gorm:"type:varchar(255);not null"`
	Description            string          `gorm:"type:text"`
	Category               string          `gorm:"type:varchar(100);index"`
	SellPrice              decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Quantity               int             `gorm:"not null;default:0"`
	LowStockThreshold      int             `gorm:"not null;default:0"`
	CriticalStockThreshold int             `gorm:"not null;default:0"`
	Active                 bool            `gorm:"not null;default:true;index"`
}

// TableName specifies the table name for ProductModel
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts ProductModel to the domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	product := &catalog.Product{
		Name:                   m.Name,
		Description:            m.Description,
		Category:               m.Category,
		SellPrice:              m.SellPrice,
		Quantity:               m.Quantity,
		LowStockThreshold:      m.LowStockThreshold,
		CriticalStockThreshold: m.CriticalStockThreshold,
		Active:                 m.Active,
	}
	m.PopulateTenantAggregateRoot(&product.TenantAggregateRoot)
	return product
}

// ProductModelFromDomain converts a domain Product to ProductModel
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{
		Name:                   p.Name,
		Description:            p.Description,
		Category:               p.Category,
		SellPrice:              p.SellPrice,
		Quantity:               p.Quantity,
		LowStockThreshold:      p.LowStockThreshold,
		CriticalStockThreshold: p.CriticalStockThreshold,
		Active:                 p.Active,
	}
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	return m
}
