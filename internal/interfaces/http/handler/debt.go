package handler

import (
	"time"

	ledgerapp "github.com/flowik/backend/internal/application/ledger"
	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/flowik/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtHandler handles debt ledger API endpoints
type DebtHandler struct {
	BaseHandler
	debtService *ledgerapp.DebtService
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(debtService *ledgerapp.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// RegisterDebtRequest represents a request to register a debt against a client
type RegisterDebtRequest struct {
	ClientID       string     `json:"client_id" binding:"required,uuid"`
	Principal      string     `json:"principal" binding:"required,decimal2"`
	ExpirationDate *time.Time `json:"expiration_date"`
	OverdueDays    int        `json:"overdue_days" binding:"omitempty,min=1"`
	CriticalDays   int        `json:"critical_days" binding:"omitempty,min=1"`
}

// DebtResponse represents a debt together with its running balance
type DebtResponse struct {
	Debt      ledger.Debt `json:"debt"`
	Paid      string      `json:"paid"`
	Remaining string      `json:"remaining"`
}

func toDebtResponse(b ledgerapp.DebtWithBalance) DebtResponse {
	return DebtResponse{
		Debt:      b.Debt,
		Paid:      b.Paid.StringFixed(2),
		Remaining: b.Remaining.StringFixed(2),
	}
}

// Create registers a new debt
func (h *DebtHandler) Create(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req RegisterDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		h.BadRequest(c, "Principal is not a valid decimal amount")
		return
	}

	debt, err := h.debtService.RegisterDebt(c.Request.Context(), ledgerapp.RegisterDebtRequest{
		TenantID:       identity.TenantID,
		ClientID:       uuid.MustParse(req.ClientID),
		Principal:      principal,
		ExpirationDate: req.ExpirationDate,
		OverdueDays:    req.OverdueDays,
		CriticalDays:   req.CriticalDays,
		ActorID:        identity.UserID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, debt)
}

// Get returns a debt with its balance
func (h *DebtHandler) Get(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	balance, err := h.debtService.GetDebt(c.Request.Context(), identity.TenantID, uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toDebtResponse(*balance))
}

// ListByClient returns a client's debts with balances
func (h *DebtHandler) ListByClient(c *gin.Context) {
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

	balances, err := h.debtService.ListByClient(c.Request.Context(), identity.TenantID, uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]DebtResponse, len(balances))
	for i, b := range balances {
		out[i] = toDebtResponse(b)
	}
	h.Success(c, out)
}

// ListPayments returns the payments recorded against a debt
func (h *DebtHandler) ListPayments(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	payments, err := h.debtService.ListPaymentsByDebt(c.Request.Context(), identity.TenantID, uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payments)
}

// Deactivate soft-deletes a debt
func (h *DebtHandler) Deactivate(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	if err := h.debtService.DeactivateDebt(c.Request.Context(), identity.TenantID, uuid.MustParse(uri.ID)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers debt routes
func (h *DebtHandler) RegisterRoutes(rg *gin.RouterGroup) {
	debts := rg.Group("/debts")
	{
		debts.POST("", h.Create)
		debts.GET(":id", h.Get)
		debts.GET(":id/payments", h.ListPayments)
		debts.DELETE(":id", h.Deactivate)
	}
	rg.GET("/clients/:id/debts", h.ListByClient)
}
