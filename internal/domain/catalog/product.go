package catalog

import (
	"time"

	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockSeverity classifies a product's stock level
type StockSeverity string

const (
	StockSeverityNormal   StockSeverity = "NORMAL"
	StockSeverityLow      StockSeverity = "LOW"
	StockSeverityCritical StockSeverity = "CRITICAL"
)

// String returns the string representation of StockSeverity
func (s StockSeverity) String() string {
	return string(s)
}

// Product is the aggregate root for a catalog item whose stock level
// is watched against low and critical thresholds.
type Product struct {
	shared.TenantAggregateRoot
	Name                   string          `json:"name"`
	Description            string          `json:"description"`
	Category               string          `json:"category"`
	SellPrice              decimal.Decimal `json:"sell_price"`
	Quantity               int             `json:"quantity"`
	LowStockThreshold      int             `json:"low_stock_threshold"`
	CriticalStockThreshold int             `json:"critical_stock_threshold"`
	Active                 bool            `json:"active"`
}

// NewProduct creates a new product
func NewProduct(
	tenantID uuid.UUID,
	name string,
	description string,
	category string,
	sellPrice decimal.Decimal,
	quantity int,
	lowThreshold int,
	criticalThreshold int,
	actorID uuid.UUID,
) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Product quantity cannot be negative")
	}
	if criticalThreshold > lowThreshold {
		return nil, shared.NewDomainError("INVALID_THRESHOLDS", "Critical threshold cannot exceed low threshold")
	}
	if actorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Actor identity is required")
	}
	return &Product{
		TenantAggregateRoot:    shared.NewTenantAggregateRootWithCreator(tenantID, actorID),
		Name:                   name,
		Description:            description,
		Category:               category,
		SellPrice:              sellPrice,
		Quantity:               quantity,
		LowStockThreshold:      lowThreshold,
		CriticalStockThreshold: criticalThreshold,
		Active:                 true,
	}, nil
}

// Adjust applies a signed quantity change and returns the old and new
// levels. An adjustment that would take the quantity negative is rejected.
func (p *Product) Adjust(delta int) (oldQty, newQty int, err error) {
	oldQty = p.Quantity
	newQty = oldQty + delta
	if newQty < 0 {
		return oldQty, oldQty, shared.NewDomainError("INVALID_ADJUSTMENT", "Stock adjustment would result in negative quantity")
	}
	p.Quantity = newQty
	p.UpdatedAt = time.Now()
	return oldQty, newQty, nil
}

// Deactivate soft-deletes the product
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// ClassifyStockLevel maps a current quantity against the thresholds,
// independent of any prior level. Used by the periodic sweep.
func ClassifyStockLevel(qty, lowThreshold, criticalThreshold int) StockSeverity {
	switch {
	case qty <= criticalThreshold:
		return StockSeverityCritical
	case qty <= lowThreshold:
		return StockSeverityLow
	default:
		return StockSeverityNormal
	}
}

// CrossedBelow reports whether an adjustment newly crossed a threshold
// downward. Used by the event-driven path: a transition is detected,
// not a level.
func CrossedBelow(oldQty, newQty, threshold int) bool {
	return oldQty > threshold && newQty <= threshold
}
