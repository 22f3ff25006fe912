package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremocks "github.com/jaykakkad82/mypayments/mocks/port/core"
)

func TestNewPayment(t *testing.T) {
	fixedTime := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	pay := NewPayment(7, "CARD", mockTime)

	assert.Equal(t, uint64(7), pay.TransactionID)
	assert.Equal(t, "CARD", pay.Method)
	assert.Equal(t, PaymentInitiated, pay.Status)
	assert.NotEmpty(t, pay.ReferenceID)
	require.NotNil(t, pay.ProcessedAt)
	assert.Equal(t, fixedTime, *pay.ProcessedAt)
	assert.Empty(t, pay.FailureReason)
}

func TestRecordAttempt(t *testing.T) {
	firstTime := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	secondTime := firstTime.Add(5 * time.Minute)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(firstTime).Once()

	pay := NewPayment(7, "CARD", mockTime)
	firstReference := pay.ReferenceID

	mockTime.EXPECT().Now().Return(secondTime).Once()
	pay.RecordAttempt(mockTime)

	assert.NotEqual(t, firstReference, pay.ReferenceID)
	require.NotNil(t, pay.ProcessedAt)
	assert.Equal(t, secondTime, *pay.ProcessedAt)
}

func TestPaymentTransitions(t *testing.T) {
	pay := &Payment{Status: PaymentInitiated}
	assert.False(t, pay.IsTerminal())

	pay.MarkSucceeded()
	assert.Equal(t, PaymentSuccess, pay.Status)
	assert.True(t, pay.IsTerminal())

	pay.MarkFailed()
	assert.Equal(t, PaymentFailed, pay.Status)
	assert.True(t, pay.IsTerminal())
}
