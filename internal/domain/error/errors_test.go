package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"negative amount", ErrNegativeAmount, CodeInvalidAmount},
		{"invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"invalid customer id", ErrInvalidCustomerID, CodeInvalidCustomerID},
		{"duplicate payment", ErrDuplicatePayment, CodeDuplicatePayment},
		{"invalid bucket", ErrInvalidBucket, CodeInvalidBucket},
		{"cancel completed", ErrCannotCancelCompleted, CodeInvalidState},
		{"customer not found", ErrCustomerNotFound, CodeCustomerNotFound},
		{"transaction not found", ErrTransactionNotFound, CodeTransactionNotFound},
		{"payment not found", ErrPaymentNotFound, CodePaymentNotFound},
		{"duplicate email", ErrDuplicateEmail, CodeConstraintViolation},
		{"unknown error", errors.New("boom"), CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestErrorCodeOnWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", ErrTransactionNotFound)
	assert.Equal(t, CodeTransactionNotFound, ErrorCode(wrapped))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrCustomerNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", ErrPaymentNotFound)))
	assert.False(t, IsNotFoundError(ErrDuplicatePayment))

	assert.True(t, IsInvalidStateError(ErrCannotCancelCompleted))
	assert.False(t, IsInvalidStateError(ErrNegativeAmount))

	assert.True(t, IsInvalidArgumentError(ErrInvalidBucket))
	assert.True(t, IsInvalidArgumentError(ErrNegativeAmount))
	assert.False(t, IsInvalidArgumentError(ErrCannotCancelCompleted))

	assert.True(t, IsDuplicatePaymentError(ErrDuplicatePayment))
	assert.False(t, IsDuplicatePaymentError(ErrDuplicateEmail))
}

func TestPaymentError(t *testing.T) {
	underlying := errors.New("connection reset")
	err := NewPaymentError(3, 7, "gateway attempt failed", underlying)

	var payErr *PaymentError
	assert.True(t, errors.As(err, &payErr))
	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "payment 3")
	assert.Contains(t, err.Error(), "transaction: 7")

	fields := payErr.LogFields()
	assert.Equal(t, uint64(3), fields["payment_id"])
	assert.Equal(t, uint64(7), fields["transaction_id"])
	assert.Equal(t, CodeInternalServer, fields["error_code"])
}
