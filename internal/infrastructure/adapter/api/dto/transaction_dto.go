package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
	portuse "github.com/jaykakkad82/mypayments/internal/domain/port/usecase"
)

// CreateTransactionRequest represents the API request for creating a
// transaction. Amount travels as a string so it never passes through a float.
type CreateTransactionRequest struct {
	CustomerID  uint64 `json:"customerId" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// TransactionResponse represents the API response for a transaction
type TransactionResponse struct {
	ID          uint64          `json:"id"`
	CustomerID  uint64          `json:"customerId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	Description string          `json:"description,omitempty"`
}

// TransactionPageResponse represents one page of a filtered listing
type TransactionPageResponse struct {
	Items      []TransactionResponse `json:"items"`
	TotalCount int64                 `json:"totalCount"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"pageSize"`
}

// ToTransactionResponse maps a transaction entity to its API response
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Category:    t.Category,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		Description: t.Description,
	}
}

// ToTransactionPageResponse maps a listing page to its API response
func ToTransactionPageResponse(page *portuse.TransactionPage) TransactionPageResponse {
	items := make([]TransactionResponse, 0, len(page.Items))
	for _, t := range page.Items {
		items = append(items, ToTransactionResponse(t))
	}
	return TransactionPageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}
