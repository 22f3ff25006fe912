package persistence

import (
	"context"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// CustomerRepository defines essential methods to interact with customer data
type CustomerRepository interface {
	// GetByID retrieves a customer by ID
	//
	// Possible errors:
	// - ErrCustomerNotFound: If no customer with the given ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Customer, error)

	// FindByEmail retrieves a customer by the unique email.
	// Used for the idempotent-by-email upsert on create.
	//
	// Possible errors:
	// - ErrCustomerNotFound: If no customer with the given email exists
	// - ErrDatabaseConnection: If database connection fails
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// Create persists a new customer and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: If a customer with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, customer *entity.Customer) error
}
