package entity

import (
	"time"

	"github.com/google/uuid"

	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
)

// PaymentStatus defines possible status values for a payment
type PaymentStatus string

// PaymentStatus constants
const (
	PaymentInitiated PaymentStatus = "INITIATED"
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Payment represents a payment attempt against exactly one transaction.
// The 1:1 link (unique transaction id) is what makes MakePayment idempotent.
type Payment struct {
	ID            uint64        // Unique identifier for the payment
	TransactionID uint64        // The transaction this payment settles, unique
	Method        string        // Payment method label
	Status        PaymentStatus // Lifecycle status
	ReferenceID   string        // Opaque gateway reference, unique per attempt
	ProcessedAt   *time.Time    // When the latest attempt was processed

	// FailureReason is echoed on explicit failure marking only. It is part of
	// the response contract but is never persisted.
	FailureReason string
}

// NewPayment creates a new INITIATED payment for the given transaction
func NewPayment(transactionID uint64, method string, timeProvider coreport.TimeProvider) *Payment {
	now := timeProvider.Now()
	return &Payment{
		TransactionID: transactionID,
		Method:        method,
		Status:        PaymentInitiated,
		ReferenceID:   uuid.NewString(),
		ProcessedAt:   &now,
	}
}

// RecordAttempt stamps a fresh gateway reference and processing time.
// Each gateway attempt gets its own opaque reference token.
func (p *Payment) RecordAttempt(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	p.ReferenceID = uuid.NewString()
	p.ProcessedAt = &now
}

// MarkSucceeded transitions the payment to SUCCESS
func (p *Payment) MarkSucceeded() {
	p.Status = PaymentSuccess
}

// MarkFailed transitions the payment to FAILED
func (p *Payment) MarkFailed() {
	p.Status = PaymentFailed
}

// IsTerminal reports whether the payment reached a terminal status
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentSuccess || p.Status == PaymentFailed
}
