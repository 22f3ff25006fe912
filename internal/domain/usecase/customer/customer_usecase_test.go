package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	portuse "github.com/jaykakkad82/mypayments/internal/domain/port/usecase"
	coremocks "github.com/jaykakkad82/mypayments/mocks/port/core"
	persistencemocks "github.com/jaykakkad82/mypayments/mocks/port/persistence"
)

func newTestLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	input := portuse.CreateCustomerInput{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+1-555-0100",
	}

	t.Run("New email creates a customer", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, errs.ErrCustomerNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.Email == "ada@example.com" && c.FullName == "Ada Lovelace"
		})).Return(nil).Once()

		service := NewCustomerService(mockRepo, mockTime, newTestLogger(t))

		customer, created, err := service.Create(ctx, input)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "ada@example.com", customer.Email)
	})

	t.Run("Repeated email returns the stored customer", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		existing := &entity.Customer{ID: 42, Email: "ada@example.com", FullName: "Ada Lovelace"}
		mockRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(existing, nil).Once()

		service := NewCustomerService(mockRepo, mockTime, newTestLogger(t))

		customer, created, err := service.Create(ctx, input)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, uint64(42), customer.ID)
	})

	t.Run("Losing a concurrent create race returns the winner", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		winner := &entity.Customer{ID: 7, Email: "ada@example.com"}
		mockRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, errs.ErrCustomerNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateEmail).Once()
		mockRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(winner, nil).Once()

		service := NewCustomerService(mockRepo, mockTime, newTestLogger(t))

		customer, created, err := service.Create(ctx, input)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, uint64(7), customer.ID)
	})

	t.Run("Lookup failure is propagated", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		databaseError := errors.New("database connection error")
		mockRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, databaseError).Once()

		service := NewCustomerService(mockRepo, mockTime, newTestLogger(t))

		customer, created, err := service.Create(ctx, input)

		assert.Error(t, err)
		assert.ErrorIs(t, err, databaseError)
		assert.False(t, created)
		assert.Nil(t, customer)
	})

	t.Run("Empty email is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().FindByEmail(mock.Anything, "").Return(nil, errs.ErrCustomerNotFound).Once()

		service := NewCustomerService(mockRepo, mockTime, newTestLogger(t))

		customer, created, err := service.Create(ctx, portuse.CreateCustomerInput{FullName: "Nameless"})

		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
		assert.False(t, created)
		assert.Nil(t, customer)
	})
}

func TestGetCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing customer is returned", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(&entity.Customer{ID: 42}, nil).Once()

		service := NewCustomerService(mockRepo, mockTime, newTestLogger(t))

		customer, err := service.Get(ctx, 42)

		require.NoError(t, err)
		require.NotNil(t, customer)
		assert.Equal(t, uint64(42), customer.ID)
	})

	t.Run("Absent customer yields nil without error", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrCustomerNotFound).Once()

		service := NewCustomerService(mockRepo, mockTime, newTestLogger(t))

		customer, err := service.Get(ctx, 99)

		require.NoError(t, err)
		assert.Nil(t, customer)
	})
}
