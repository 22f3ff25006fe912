package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	coremocks "github.com/jaykakkad82/mypayments/mocks/port/core"
)

func TestNewCustomer(t *testing.T) {
	fixedTime := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		customer, err := NewCustomer("Ada Lovelace", "ada@example.com", "+1-555-0100", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", customer.FullName)
		assert.Equal(t, "ada@example.com", customer.Email)
		assert.Equal(t, fixedTime, customer.CreatedAt)
	})

	t.Run("Email is trimmed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		customer, err := NewCustomer("Ada Lovelace", "  ada@example.com  ", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", customer.Email)
	})

	t.Run("Empty email is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		customer, err := NewCustomer("Ada Lovelace", "   ", "", mockTime)

		assert.Nil(t, customer)
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})
}
