package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	coremocks "github.com/jaykakkad82/mypayments/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("Successful creation starts PENDING", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction(42, decimal.RequireFromString("20.005"), "USD", "Retail", "coffee beans", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), txn.CustomerID)
		assert.Equal(t, TransactionPending, txn.Status)
		assert.Equal(t, "USD", txn.Currency)
		assert.Equal(t, "Retail", txn.Category)
		assert.Equal(t, fixedTime, txn.CreatedAt)
		assert.True(t, txn.Amount.Equal(decimal.RequireFromString("20.005")))
	})

	t.Run("Zero amount is allowed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction(42, decimal.Zero, "USD", "", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, TransactionPending, txn.Status)
	})

	t.Run("Negative amount is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction(42, decimal.RequireFromString("-0.01"), "USD", "", "", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Zero customer ID is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction(0, decimal.NewFromInt(10), "USD", "", "", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidCustomerID)
	})
}

func TestTransactionTransitions(t *testing.T) {
	txn := &Transaction{Status: TransactionPending}
	assert.False(t, txn.IsTerminal())

	txn.MarkCompleted()
	assert.Equal(t, TransactionCompleted, txn.Status)
	assert.True(t, txn.IsTerminal())

	txn.MarkFailed()
	assert.Equal(t, TransactionFailed, txn.Status)
	assert.True(t, txn.IsTerminal())
}

func TestIsValidTransactionStatus(t *testing.T) {
	assert.True(t, IsValidTransactionStatus("PENDING"))
	assert.True(t, IsValidTransactionStatus("COMPLETED"))
	assert.True(t, IsValidTransactionStatus("FAILED"))
	assert.False(t, IsValidTransactionStatus("completed"))
	assert.False(t, IsValidTransactionStatus("SHIPPED"))
	assert.False(t, IsValidTransactionStatus(""))
}
