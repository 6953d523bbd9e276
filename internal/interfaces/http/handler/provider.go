package handler

import (
	partnerapp "github.com/flowik/backend/internal/application/partner"
	"github.com/flowik/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProviderHandler handles provider registry API endpoints
type ProviderHandler struct {
	BaseHandler
	providerService *partnerapp.ProviderService
}

// NewProviderHandler creates a new ProviderHandler
func NewProviderHandler(providerService *partnerapp.ProviderService) *ProviderHandler {
	return &ProviderHandler{providerService: providerService}
}

// CreateProviderRequest represents a request to register a new provider
type CreateProviderRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
	Phone string `json:"phone" binding:"max=50"`
}

// Create registers a new provider
func (h *ProviderHandler) Create(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	provider, err := h.providerService.CreateProvider(c.Request.Context(), partnerapp.CreateProviderRequest{
		TenantID: identity.TenantID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		ActorID:  identity.UserID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, provider)
}

// Get returns a provider by ID
func (h *ProviderHandler) Get(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid provider ID")
		return
	}
	id := uuid.MustParse(uri.ID)

	provider, err := h.providerService.GetProvider(c.Request.Context(), identity.TenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, provider)
}

// List returns the tenant's providers
func (h *ProviderHandler) List(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	providers, err := h.providerService.ListProviders(c.Request.Context(), identity.TenantID, toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, providers)
}

// Deactivate soft-deletes a provider
func (h *ProviderHandler) Deactivate(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid provider ID")
		return
	}
	id := uuid.MustParse(uri.ID)

	if err := h.providerService.DeactivateProvider(c.Request.Context(), identity.TenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers provider routes
func (h *ProviderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	providers := rg.Group("/providers")
	{
		providers.POST("", h.Create)
		providers.GET("", h.List)
		providers.GET(":id", h.Get)
		providers.DELETE(":id", h.Deactivate)
	}
}
