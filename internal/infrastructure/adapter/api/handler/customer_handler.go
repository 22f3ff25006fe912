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

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService portuse.CustomerUseCase
	logger          coreport.Logger
}

// NewCustomerHandler creates a new customer handler instance
func NewCustomerHandler(customerService portuse.CustomerUseCase, logger coreport.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// Create handles the POST /customers endpoint. Creation is an upsert by
// email: a repeated email returns the existing record with 200 instead of 201.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	customer, created, err := h.customerService.Create(c.Request.Context(), portuse.CreateCustomerInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToCustomerResponse(customer))
}

// Get handles the GET /customers/:id endpoint
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid customer ID format")
		return
	}

	customer, err := h.customerService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrCustomerNotFound),
			Message: "Customer not found",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}
