package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4002
	CodeInvalidCustomerID   = 4003
	CodeDuplicatePayment    = 4004
	CodeConstraintViolation = 4005
	CodeInvalidBucket       = 4006
	CodeInvalidState        = 4022
	CodeCustomerNotFound    = 4040
	CodeTransactionNotFound = 4041
	CodePaymentNotFound     = 4042

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrCustomerNotFound is returned when the referenced customer doesn't exist
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrTransactionNotFound is returned when the referenced transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPaymentNotFound is returned when the referenced payment doesn't exist
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrNegativeAmount is returned when the transaction amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidAmount is returned when the amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidCustomerID is returned when the customer ID is not a positive integer
	ErrInvalidCustomerID = errors.New("customer ID must be positive")

	// ErrInvalidEmail is returned when a customer email is empty
	ErrInvalidEmail = errors.New("email cannot be empty")

	// ErrCannotCancelCompleted is returned when cancelling a completed transaction
	ErrCannotCancelCompleted = errors.New("cannot cancel a completed transaction")

	// ErrInvalidBucket is returned when a time-series bucket is not day, week or month
	ErrInvalidBucket = errors.New("bucket must be day|week|month")

	// ErrDuplicatePayment is returned when a payment already exists for a transaction
	ErrDuplicatePayment = errors.New("payment already exists for this transaction")

	// ErrDuplicateEmail is returned when a customer with the same email already exists
	ErrDuplicateEmail = errors.New("customer with this email already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidCustomerID):
		return CodeInvalidCustomerID
	case errors.Is(err, ErrDuplicatePayment):
		return CodeDuplicatePayment
	case errors.Is(err, ErrInvalidBucket):
		return CodeInvalidBucket
	case errors.Is(err, ErrCannotCancelCompleted):
		return CodeInvalidState
	case errors.Is(err, ErrCustomerNotFound):
		return CodeCustomerNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrDuplicateEmail):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// IsInvalidStateError checks if the error is a lifecycle invariant violation
func IsInvalidStateError(err error) bool {
	return errors.Is(err, ErrCannotCancelCompleted)
}

// IsInvalidArgumentError checks if the error is caused by malformed input
// the core validates itself
func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidBucket) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidCustomerID) ||
		errors.Is(err, ErrInvalidEmail)
}

// IsDuplicatePaymentError checks if the error is a duplicate payment error
func IsDuplicatePaymentError(err error) bool {
	return errors.Is(err, ErrDuplicatePayment)
}

// PaymentError represents an error raised while driving a payment lifecycle
type PaymentError struct {
	PaymentID     uint64
	TransactionID uint64
	Reason        string
	Err           error
}

// Error implements the error interface for PaymentError
func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment error for payment %d (transaction: %d): %s - %v",
		e.PaymentID, e.TransactionID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "payment_error",
		"payment_id":     e.PaymentID,
		"transaction_id": e.TransactionID,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewPaymentError creates a detailed payment error
func NewPaymentError(paymentID, transactionID uint64, reason string, err error) error {
	return &PaymentError{
		PaymentID:     paymentID,
		TransactionID: transactionID,
		Reason:        reason,
		Err:           err,
	}
}
