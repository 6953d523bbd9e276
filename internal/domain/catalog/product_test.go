package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, qty, low, critical int) *Product {
	t.Helper()
	p, err := NewProduct(uuid.New(), "dog food 10kg", "", "food", decimal.NewFromInt(30), qty, low, critical, uuid.New())
	require.NoError(t, err)
	return p
}

func TestClassifyStockLevel(t *testing.T) {
	tests := []struct {
		name     string
		qty      int
		low      int
		critical int
		want     StockSeverity
	}{
		{"well stocked", 100, 20, 5, StockSeverityNormal},
		{"just above low", 21, 20, 5, StockSeverityNormal},
		{"exactly at low", 20, 20, 5, StockSeverityLow},
		{"between thresholds", 10, 20, 5, StockSeverityLow},
		{"exactly at critical", 5, 20, 5, StockSeverityCritical},
		{"empty", 0, 20, 5, StockSeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStockLevel(tt.qty, tt.low, tt.critical))
		})
	}
}

func TestCrossedBelow(t *testing.T) {
	assert.True(t, CrossedBelow(100, 15, 20))
	assert.True(t, CrossedBelow(21, 20, 20))
	assert.False(t, CrossedBelow(15, 10, 20), "already below, not a new crossing")
	assert.False(t, CrossedBelow(100, 21, 20), "still above threshold")
	assert.False(t, CrossedBelow(10, 30, 20), "upward movement never fires")
}

func TestAdjustRejectsNegativeResult(t *testing.T) {
	p := newTestProduct(t, 10, 20, 5)

	oldQty, newQty, err := p.Adjust(-4)
	require.NoError(t, err)
	assert.Equal(t, 10, oldQty)
	assert.Equal(t, 6, newQty)

	_, _, err = p.Adjust(-7)
	assert.Error(t, err)
	assert.Equal(t, 6, p.Quantity, "failed adjustment must not mutate quantity")
}

func TestNewProductValidation(t *testing.T) {
	tenantID, actorID := uuid.New(), uuid.New()

	_, err := NewProduct(tenantID, "", "", "food", decimal.Zero, 1, 20, 5, actorID)
	assert.Error(t, err)

	_, err = NewProduct(tenantID, "litter", "", "hygiene", decimal.Zero, -1, 20, 5, actorID)
	assert.Error(t, err)

	// critical above low is inconsistent
	_, err = NewProduct(tenantID, "litter", "", "hygiene", decimal.Zero, 1, 5, 20, actorID)
	assert.Error(t, err)
}
