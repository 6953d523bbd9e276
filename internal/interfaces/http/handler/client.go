package handler

import (
	partnerapp "github.com/flowik/backend/internal/application/partner"
	"github.com/flowik/backend/internal/domain/shared"
	"github.com/flowik/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler handles client registry API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *partnerapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partnerapp.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClientRequest represents a request to register a new client
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
	Phone string `json:"phone" binding:"max=50"`
}

// Create registers a new client
func (h *ClientHandler) Create(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), partnerapp.CreateClientRequest{
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
	h.Created(c, client)
}

// Get returns a client by ID
func (h *ClientHandler) Get(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}
	id := uuid.MustParse(uri.ID)

	client, err := h.clientService.GetClient(c.Request.Context(), identity.TenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}

// List returns the tenant's clients
func (h *ClientHandler) List(c *gin.Context) {
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

	clients, err := h.clientService.ListClients(c.Request.Context(), identity.TenantID, toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, clients)
}

// Deactivate soft-deletes a client
func (h *ClientHandler) Deactivate(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}
	id := uuid.MustParse(uri.ID)

	if err := h.clientService.DeactivateClient(c.Request.Context(), identity.TenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.POST("", h.Create)
		clients.GET("", h.List)
		clients.GET(":id", h.Get)
		clients.DELETE(":id", h.Deactivate)
	}
}

// toFilter converts list query parameters to a repository filter,
// falling back to defaults for anything unset
func toFilter(req dto.ListRequest) shared.Filter {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	filter.Search = req.Search
	return filter
}
