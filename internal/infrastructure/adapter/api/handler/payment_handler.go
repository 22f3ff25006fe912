package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/jaykakkad82/mypayments/internal/domain/error"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	portuse "github.com/jaykakkad82/mypayments/internal/domain/port/usecase"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/api/dto"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService portuse.PaymentUseCase
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService portuse.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// Make handles the POST /payments endpoint. The Idempotency-Key header is
// accepted and forwarded; replays of an already-settled transaction return
// the existing payment unchanged regardless of the key.
func (h *PaymentHandler) Make(c *gin.Context) {
	var req dto.MakePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	payment, err := h.paymentService.MakePayment(
		c.Request.Context(),
		req.TransactionID,
		req.Method,
		c.GetHeader("Idempotency-Key"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// Retry handles the POST /payments/:id/retry endpoint
func (h *PaymentHandler) Retry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid payment ID format")
		return
	}

	payment, err := h.paymentService.Retry(
		c.Request.Context(),
		id,
		c.GetHeader("Idempotency-Key"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// MarkFailed handles the POST /payments/:id/fail endpoint
func (h *PaymentHandler) MarkFailed(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid payment ID format")
		return
	}

	var req dto.MarkFailedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	payment, err := h.paymentService.MarkFailed(
		c.Request.Context(),
		id,
		req.ReasonCode,
		c.GetHeader("Idempotency-Key"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// Get handles the GET /payments/:id endpoint
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid payment ID format")
		return
	}

	payment, err := h.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if payment == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrPaymentNotFound),
			Message: "Payment not found",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
