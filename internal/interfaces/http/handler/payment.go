package handler

import (
	ledgerapp "github.com/flowik/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles payment allocation API endpoints
type PaymentHandler struct {
	BaseHandler
	allocationService *ledgerapp.PaymentAllocationService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(allocationService *ledgerapp.PaymentAllocationService) *PaymentHandler {
	return &PaymentHandler{allocationService: allocationService}
}

// AllocatePaymentRequest represents a payment submitted against a client's
// open debts. The amount is a decimal string so precision survives transport.
type AllocatePaymentRequest struct {
	ClientID string `json:"client_id" binding:"required,uuid"`
	Amount   string `json:"amount" binding:"required,decimal2"`
}

// Allocate applies a payment to the client's open debts, oldest first.
// The split across debts is computed server-side; the response lists the
// payment records that were created.
func (h *PaymentHandler) Allocate(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AllocatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.BadRequest(c, "Amount is not a valid decimal amount")
		return
	}

	payments, err := h.allocationService.AllocatePayment(c.Request.Context(), ledgerapp.AllocatePaymentRequest{
		TenantID: identity.TenantID,
		ClientID: uuid.MustParse(req.ClientID),
		Amount:   amount,
		ActorID:  identity.UserID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payments)
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Allocate)
	}
}
