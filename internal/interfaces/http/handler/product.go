package handler

import (
	catalogapp "github.com/flowik/backend/internal/application/catalog"
	"github.com/flowik/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductHandler handles product catalog and stock API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	stockService   *catalogapp.StockService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService, stockService *catalogapp.StockService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		stockService:   stockService,
	}
}

// CreateProductRequest represents a request to register a product
type CreateProductRequest struct {
	Name                   string  `json:"name" binding:"required,min=1,max=200"`
	Description            string  `json:"description" binding:"max=1000"`
	Category               string  `json:"category" binding:"max=100"`
	SellPrice              float64 `json:"sell_price" binding:"min=0"`
	Quantity               int     `json:"quantity" binding:"min=0"`
	LowStockThreshold      int     `json:"low_stock_threshold" binding:"min=0"`
	CriticalStockThreshold int     `json:"critical_stock_threshold" binding:"min=0"`
}

// AdjustStockRequest represents a signed stock quantity change
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// Create registers a new product
func (h *ProductHandler) Create(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), catalogapp.CreateProductRequest{
		TenantID:               identity.TenantID,
		Name:                   req.Name,
		Description:            req.Description,
		Category:               req.Category,
		SellPrice:              decimal.NewFromFloat(req.SellPrice),
		Quantity:               req.Quantity,
		LowStockThreshold:      req.LowStockThreshold,
		CriticalStockThreshold: req.CriticalStockThreshold,
		ActorID:                identity.UserID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Get returns a product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), identity.TenantID, uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List returns the tenant's products
func (h *ProductHandler) List(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), identity.TenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// AdjustStock applies a signed quantity delta to a product's stock
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.stockService.AdjustStock(c.Request.Context(), identity.TenantID, uuid.MustParse(uri.ID), req.Delta)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Deactivate soft-deletes a product
func (h *ProductHandler) Deactivate(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeactivateProduct(c.Request.Context(), identity.TenantID, uuid.MustParse(uri.ID)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET(":id", h.Get)
		products.POST(":id/stock-adjustments", h.AdjustStock)
		products.DELETE(":id", h.Deactivate)
	}
}
