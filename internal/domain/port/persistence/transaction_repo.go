package persistence

import (
	"context"
	"time"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// TransactionFilter is a conjunction of optional transaction predicates.
// Zero values mean "not filtered". From/To bound CreatedAt inclusively.
type TransactionFilter struct {
	CustomerID uint64
	Status     entity.TransactionStatus
	Category   string
	Currency   string
	From       *time.Time
	To         *time.Time
}

// Pagination describes the requested page of a filtered listing.
// A zero PageSize disables paging (unpaged fetch for analytics).
type Pagination struct {
	Page     int
	PageSize int
}

// Unpaged returns true when no page bound was requested
func (p Pagination) Unpaged() bool {
	return p.PageSize <= 0
}

// Offset returns the row offset of the requested page
func (p Pagination) Offset() int {
	if p.Page <= 0 || p.Unpaged() {
		return 0
	}
	return p.Page * p.PageSize
}

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create persists a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrCustomerNotFound: If the referenced customer does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists status changes of an existing transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by its ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// Find returns the transactions matching every present filter predicate,
	// ordered by creation time, plus the total match count for paging.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Find(ctx context.Context, filter TransactionFilter, page Pagination) ([]*entity.Transaction, int64, error)
}
