package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbill/internal/service"
)

// PaymentHandler handles settlement endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Apply handles POST /api/v1/documents/:id/payments
func (h *PaymentHandler) Apply(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req struct {
		Amount    decimal.Decimal `json:"amount" binding:"required"`
		Method    string          `json:"method"`
		Reference string          `json:"reference"`
		PaidAt    *time.Time      `json:"paid_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "amount is required")
		return
	}

	payment, result, err := h.paymentService.Apply(c.Request.Context(), &service.ApplyPaymentInput{
		DocumentID: docID,
		Amount:     req.Amount,
		Method:     req.Method,
		Reference:  req.Reference,
		PaidAt:     req.PaidAt,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{
		"payment":    payment,
		"settlement": result,
	}, nil)
}

// List handles GET /api/v1/documents/:id/payments
func (h *PaymentHandler) List(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	payments, err := h.paymentService.ListByDocument(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, payments)
}
