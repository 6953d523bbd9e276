package catalog

import (
	"context"
	"fmt"

	"github.com/flowik/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService implements product registry use cases
type ProductService struct {
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

// CreateProductRequest carries a new product registration
type CreateProductRequest struct {
	TenantID               uuid.UUID
	Name                   string
	Description            string
	Category               string
	SellPrice              decimal.Decimal
	Quantity               int
	LowStockThreshold      int
	CriticalStockThreshold int
	ActorID                uuid.UUID
}

// CreateProduct registers a new product in the catalog
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	product, err := catalog.NewProduct(
		req.TenantID,
		req.Name,
		req.Description,
		req.Category,
		req.SellPrice,
		req.Quantity,
		req.LowStockThreshold,
		req.CriticalStockThreshold,
		req.ActorID,
	)
	if err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)
	return product, nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	return s.products.FindByIDForTenant(ctx, tenantID, id)
}

// ListProducts returns all products of a tenant
func (s *ProductService) ListProducts(ctx context.Context, tenantID uuid.UUID) ([]catalog.Product, error) {
	return s.products.FindAllForTenant(ctx, tenantID)
}

// DeactivateProduct soft-deletes a product
func (s *ProductService) DeactivateProduct(ctx context.Context, tenantID, id uuid.UUID) error {
	product, err := s.products.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !product.Active {
		return nil
	}
	product.Deactivate()
	if err := s.products.Save(ctx, product); err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}
	s.logger.Info("product deactivated", zap.String("product_id", id.String()))
	return nil
}
