package dto

import (
	"time"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// MakePaymentRequest represents the API request for paying a transaction
type MakePaymentRequest struct {
	TransactionID uint64 `json:"transactionId" binding:"required"`
	Method        string `json:"method" binding:"required"`
}

// MarkFailedRequest represents the API request for explicitly failing a payment
type MarkFailedRequest struct {
	ReasonCode string `json:"reasonCode" binding:"required"`
}

// PaymentResponse represents the API response for a payment
type PaymentResponse struct {
	ID            uint64     `json:"id"`
	TransactionID uint64     `json:"transactionId"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	ReferenceID   string     `json:"referenceId"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
	FailureReason string     `json:"failureReason,omitempty"`
}

// ToPaymentResponse maps a payment entity to its API response
func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		Method:        p.Method,
		Status:        string(p.Status),
		ReferenceID:   p.ReferenceID,
		ProcessedAt:   p.ProcessedAt,
		FailureReason: p.FailureReason,
	}
}
