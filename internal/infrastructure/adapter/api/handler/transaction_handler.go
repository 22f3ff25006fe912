package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainerr "github.com/jaykakkad82/mypayments/internal/domain/error"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	portuse "github.com/jaykakkad82/mypayments/internal/domain/port/usecase"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService portuse.TransactionUseCase
	paymentService     portuse.PaymentUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionService portuse.TransactionUseCase,
	paymentService portuse.PaymentUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		paymentService:     paymentService,
		logger:             logger,
	}
}

// Create handles the POST /transactions endpoint
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid amount format",
		})
		return
	}

	transaction, err := h.transactionService.Create(c.Request.Context(), portuse.CreateTransactionInput{
		CustomerID:  req.CustomerID,
		Amount:      amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// Get handles the GET /transactions/:id endpoint
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid transaction ID format")
		return
	}

	transaction, err := h.transactionService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if transaction == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTransactionNotFound),
			Message: "Transaction not found",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// Cancel handles the POST /transactions/:id/cancel endpoint
func (h *TransactionHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid transaction ID format")
		return
	}

	transaction, err := h.transactionService.Cancel(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// List handles the GET /transactions endpoint. Every filter is optional and
// the present ones combine conjunctively.
func (h *TransactionHandler) List(c *gin.Context) {
	input := portuse.ListTransactionsInput{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Currency: c.Query("currency"),
	}

	if raw := c.Query("customerId"); raw != "" {
		customerID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "Invalid customerId format")
			return
		}
		input.CustomerID = customerID
	}

	from, ok := parseQueryTime(c.Query("from"))
	if !ok {
		respondBadRequest(c, "Invalid from timestamp")
		return
	}
	if !from.IsZero() {
		input.From = &from
	}

	to, ok := parseQueryTime(c.Query("to"))
	if !ok {
		respondBadRequest(c, "Invalid to timestamp")
		return
	}
	if !to.IsZero() {
		input.To = &to
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			respondBadRequest(c, "Invalid page number")
			return
		}
		input.Page = page
	}
	if raw := c.Query("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 0 {
			respondBadRequest(c, "Invalid page size")
			return
		}
		input.PageSize = size
	}

	page, err := h.transactionService.List(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionPageResponse(page))
}

// GetPayment handles the GET /transactions/:id/payment endpoint
func (h *TransactionHandler) GetPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid transaction ID format")
		return
	}

	payment, err := h.paymentService.GetByTransactionID(c.Request.Context(), id)
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
