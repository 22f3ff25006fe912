package entity

import (
	"strings"
	"time"

	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
)

// Customer represents a customer who owns transactions.
// Customers never transition state; creation is idempotent by email.
type Customer struct {
	ID          uint64    // Unique identifier for the customer
	FullName    string    // Display name
	Email       string    // Unique email, the upsert key
	PhoneNumber string    // Contact phone
	CreatedAt   time.Time // When the customer was created
}

// NewCustomer creates a new customer with basic validation
func NewCustomer(fullName, email, phoneNumber string, timeProvider coreport.TimeProvider) (*Customer, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.ErrInvalidEmail
	}

	return &Customer{
		FullName:    fullName,
		Email:       email,
		PhoneNumber: phoneNumber,
		CreatedAt:   timeProvider.Now(),
	}, nil
}
