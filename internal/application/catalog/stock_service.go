package catalog

import (
	"context"
	"fmt"

	"github.com/flowik/backend/internal/domain/catalog"
	"github.com/flowik/backend/internal/domain/notification"
	"github.com/flowik/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notification titles for stock alerts. The title is part of the dedup
// key, so Low and Critical alerts for the same product are independent
// conditions.
const (
	TitleStockLow      = "Low stock alert"
	TitleStockCritical = "Critical stock alert"
)

// Notifier is the stock watcher's view of the notification deduper
type Notifier interface {
	MaybeNotify(
		ctx context.Context,
		tenantID uuid.UUID,
		subjectType notification.SubjectType,
		referenceID uuid.UUID,
		ownerID uuid.UUID,
		title string,
		description string,
	) (bool, error)
}

// StockService adjusts product stock and watches the levels two ways:
// an event-driven check on every adjustment that fires only on a
// downward threshold crossing, and a periodic sweep that alerts on the
// absolute level regardless of how it was reached.
type StockService struct {
	products catalog.ProductRepository
	notifier Notifier
	logger   *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(products catalog.ProductRepository, notifier Notifier, logger *zap.Logger) *StockService {
	return &StockService{
		products: products,
		notifier: notifier,
		logger:   logger,
	}
}

// AdjustStock applies a signed quantity delta to a product. When the
// adjustment crosses a threshold downward, an alert is emitted through
// the deduper. Crossing both thresholds in one adjustment emits only
// the critical alert.
func (s *StockService) AdjustStock(ctx context.Context, tenantID, productID uuid.UUID, delta int) (*catalog.Product, error) {
	product, err := s.products.FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	oldQty, newQty, err := product.Adjust(delta)
	if err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save stock adjustment: %w", err)
	}
	s.logger.Info("stock adjusted",
		zap.String("product_id", productID.String()),
		zap.Int("old_quantity", oldQty),
		zap.Int("new_quantity", newQty),
	)

	// Alerting is best effort: a notifier failure never rolls back the
	// adjustment.
	switch {
	case catalog.CrossedBelow(oldQty, newQty, product.CriticalStockThreshold):
		s.notify(ctx, product, TitleStockCritical)
	case catalog.CrossedBelow(oldQty, newQty, product.LowStockThreshold):
		s.notify(ctx, product, TitleStockLow)
	}
	return product, nil
}

// Name identifies the periodic stock check in scheduler logs
func (s *StockService) Name() string {
	return "stock-level-check"
}

// Run is the periodic stock level check. Unlike the adjustment path it
// looks at absolute levels, so a product that has sat below a threshold
// since before the watcher started is still caught. One failing product
// never aborts the check.
func (s *StockService) Run(ctx context.Context) error {
	products, err := s.products.FindAllActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products for stock check: %w", err)
	}

	for i := range products {
		product := &products[i]
		severity := catalog.ClassifyStockLevel(
			product.Quantity,
			product.LowStockThreshold,
			product.CriticalStockThreshold,
		)
		telemetry.RecordSweepEntity(ctx, "product", false)
		switch severity {
		case catalog.StockSeverityCritical:
			s.notify(ctx, product, TitleStockCritical)
		case catalog.StockSeverityLow:
			s.notify(ctx, product, TitleStockLow)
		}
	}

	s.logger.Info("stock level check completed", zap.Int("scanned", len(products)))
	return nil
}

func (s *StockService) notify(ctx context.Context, product *catalog.Product, title string) {
	if product.CreatedBy == nil {
		return
	}
	description := fmt.Sprintf("Product %q has %d units left", product.Name, product.Quantity)
	if _, err := s.notifier.MaybeNotify(
		ctx,
		product.TenantID,
		notification.SubjectTypeStock,
		product.ID,
		*product.CreatedBy,
		title,
		description,
	); err != nil {
		s.logger.Error("stock alert emission failed",
			zap.String("product_id", product.ID.String()),
			zap.Error(err),
		)
	}
}
