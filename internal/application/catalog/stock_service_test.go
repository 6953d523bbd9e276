package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/flowik/backend/internal/domain/catalog"
	"github.com/flowik/backend/internal/domain/notification"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllActive(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) MaybeNotify(
	ctx context.Context,
	tenantID uuid.UUID,
	subjectType notification.SubjectType,
	referenceID uuid.UUID,
	ownerID uuid.UUID,
	title string,
	description string,
) (bool, error) {
	args := m.Called(ctx, tenantID, subjectType, referenceID, ownerID, title, description)
	return args.Bool(0), args.Error(1)
}

func testProduct(t *testing.T, tenantID uuid.UUID, qty, low, critical int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(
		tenantID, "Dog food 10kg", "", "food",
		decimal.NewFromInt(30), qty, low, critical, uuid.New(),
	)
	require.NoError(t, err)
	return p
}

type stockFixture struct {
	service  *StockService
	products *MockProductRepository
	notifier *MockNotifier
}

func newStockFixture() *stockFixture {
	products := new(MockProductRepository)
	notifier := new(MockNotifier)
	return &stockFixture{
		service:  NewStockService(products, notifier, zap.NewNop()),
		products: products,
		notifier: notifier,
	}
}

func TestAdjustStockCrossingLowThreshold(t *testing.T) {
	f := newStockFixture()
	tenantID := uuid.New()
	product := testProduct(t, tenantID, 12, 10, 3)

	f.products.On("FindByIDForTenant", mock.Anything, tenantID, product.ID).Return(product, nil)
	f.products.On("Save", mock.Anything, product).Return(nil)
	f.notifier.On("MaybeNotify",
		mock.Anything, tenantID, notification.SubjectTypeStock,
		product.ID, *product.CreatedBy, TitleStockLow, mock.Anything,
	).Return(true, nil)

	updated, err := f.service.AdjustStock(context.Background(), tenantID, product.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Quantity)
	f.notifier.AssertExpectations(t)
}

func TestAdjustStockWithinBandDoesNotAlert(t *testing.T) {
	f := newStockFixture()
	tenantID := uuid.New()
	// already below the low threshold; sinking further without crossing
	// the critical one is not a new transition
	product := testProduct(t, tenantID, 8, 10, 3)

	f.products.On("FindByIDForTenant", mock.Anything, tenantID, product.ID).Return(product, nil)
	f.products.On("Save", mock.Anything, product).Return(nil)

	_, err := f.service.AdjustStock(context.Background(), tenantID, product.ID, -2)
	require.NoError(t, err)
	f.notifier.AssertNotCalled(t, "MaybeNotify",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustStockCrossingBothThresholdsEmitsCriticalOnly(t *testing.T) {
	f := newStockFixture()
	tenantID := uuid.New()
	product := testProduct(t, tenantID, 12, 10, 3)

	f.products.On("FindByIDForTenant", mock.Anything, tenantID, product.ID).Return(product, nil)
	f.products.On("Save", mock.Anything, product).Return(nil)
	f.notifier.On("MaybeNotify",
		mock.Anything, tenantID, notification.SubjectTypeStock,
		product.ID, *product.CreatedBy, TitleStockCritical, mock.Anything,
	).Return(true, nil)

	_, err := f.service.AdjustStock(context.Background(), tenantID, product.ID, -10)
	require.NoError(t, err)

	f.notifier.AssertCalled(t, "MaybeNotify",
		mock.Anything, tenantID, notification.SubjectTypeStock,
		product.ID, *product.CreatedBy, TitleStockCritical, mock.Anything)
	f.notifier.AssertNumberOfCalls(t, "MaybeNotify", 1)
}

func TestAdjustStockRestockDoesNotAlert(t *testing.T) {
	f := newStockFixture()
	tenantID := uuid.New()
	product := testProduct(t, tenantID, 2, 10, 3)

	f.products.On("FindByIDForTenant", mock.Anything, tenantID, product.ID).Return(product, nil)
	f.products.On("Save", mock.Anything, product).Return(nil)

	updated, err := f.service.AdjustStock(context.Background(), tenantID, product.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 52, updated.Quantity)
	f.notifier.AssertNotCalled(t, "MaybeNotify",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustStockRejectsNegativeResult(t *testing.T) {
	f := newStockFixture()
	tenantID := uuid.New()
	product := testProduct(t, tenantID, 5, 10, 3)

	f.products.On("FindByIDForTenant", mock.Anything, tenantID, product.ID).Return(product, nil)

	_, err := f.service.AdjustStock(context.Background(), tenantID, product.ID, -6)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ADJUSTMENT", domainErr.Code)
	assert.Equal(t, 5, product.Quantity, "rejected adjustment leaves quantity untouched")
	f.products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAdjustStockNotifierFailureIsNonFatal(t *testing.T) {
	f := newStockFixture()
	tenantID := uuid.New()
	product := testProduct(t, tenantID, 4, 10, 3)

	f.products.On("FindByIDForTenant", mock.Anything, tenantID, product.ID).Return(product, nil)
	f.products.On("Save", mock.Anything, product).Return(nil)
	f.notifier.On("MaybeNotify",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything,
	).Return(false, errors.New("store unavailable"))

	updated, err := f.service.AdjustStock(context.Background(), tenantID, product.ID, -2)
	require.NoError(t, err, "alerting is best effort")
	assert.Equal(t, 2, updated.Quantity)
}

func TestPeriodicCheckAlertsOnAbsoluteLevels(t *testing.T) {
	f := newStockFixture()
	tenantID := uuid.New()
	healthy := testProduct(t, tenantID, 50, 10, 3)
	low := testProduct(t, tenantID, 7, 10, 3)
	critical := testProduct(t, tenantID, 1, 10, 3)

	f.products.On("FindAllActive", mock.Anything).
		Return([]catalog.Product{*healthy, *low, *critical}, nil)
	f.notifier.On("MaybeNotify",
		mock.Anything, tenantID, notification.SubjectTypeStock,
		low.ID, *low.CreatedBy, TitleStockLow, mock.Anything,
	).Return(true, nil)
	f.notifier.On("MaybeNotify",
		mock.Anything, tenantID, notification.SubjectTypeStock,
		critical.ID, *critical.CreatedBy, TitleStockCritical, mock.Anything,
	).Return(true, nil)

	err := f.service.Run(context.Background())
	require.NoError(t, err)

	f.notifier.AssertExpectations(t)
	f.notifier.AssertNumberOfCalls(t, "MaybeNotify", 2)
}

func TestPeriodicCheckBoundaryIsInclusive(t *testing.T) {
	f := newStockFixture()
	tenantID := uuid.New()
	atLow := testProduct(t, tenantID, 10, 10, 3)

	f.products.On("FindAllActive", mock.Anything).Return([]catalog.Product{*atLow}, nil)
	f.notifier.On("MaybeNotify",
		mock.Anything, tenantID, notification.SubjectTypeStock,
		atLow.ID, *atLow.CreatedBy, TitleStockLow, mock.Anything,
	).Return(true, nil)

	err := f.service.Run(context.Background())
	require.NoError(t, err)
	f.notifier.AssertExpectations(t)
}
