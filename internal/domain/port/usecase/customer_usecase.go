package usecase

import (
	"context"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// CreateCustomerInput carries the fields of a customer creation request
type CreateCustomerInput struct {
	FullName    string
	Email       string
	PhoneNumber string
}

// CustomerUseCase defines customer record management operations
type CustomerUseCase interface {
	// Create upserts a customer by email. The created flag reports whether a
	// new record was stored (false when the email already existed).
	Create(ctx context.Context, input CreateCustomerInput) (*entity.Customer, bool, error)

	// Get returns the customer or nil when absent; absence is not an error
	Get(ctx context.Context, id uint64) (*entity.Customer, error)
}
