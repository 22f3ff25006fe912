package dto

import (
	"time"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// CreateCustomerRequest represents the API request for creating a customer
type CreateCustomerRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
}

// CustomerResponse represents the API response for a customer
type CustomerResponse struct {
	ID          uint64    `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCustomerResponse maps a customer entity to its API response
func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		FullName:    c.FullName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
	}
}
