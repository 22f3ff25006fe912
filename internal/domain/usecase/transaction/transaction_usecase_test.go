package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	"github.com/jaykakkad82/mypayments/internal/domain/port/persistence"
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

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("Successful creation starts PENDING", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCustomerRepo := persistencemocks.NewMockCustomerRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().GetCustomerRepository(mock.Anything).Return(mockCustomerRepo).Once()
		mockCustomerRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(&entity.Customer{ID: 42}, nil).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.CustomerID == 42 && txn.Status == entity.TransactionPending
		})).Return(nil).Once()

		service := NewTransactionService(mockUow, mockTime, newTestLogger(t))

		txn, err := service.Create(ctx, portuse.CreateTransactionInput{
			CustomerID: 42,
			Amount:     decimal.RequireFromString("20.005"),
			Currency:   "USD",
			Category:   "Retail",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.TransactionPending, txn.Status)
		assert.True(t, txn.Amount.Equal(decimal.RequireFromString("20.005")))
	})

	t.Run("Unknown customer is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCustomerRepo := persistencemocks.NewMockCustomerRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().GetCustomerRepository(mock.Anything).Return(mockCustomerRepo).Once()
		mockCustomerRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrCustomerNotFound).Once()

		service := NewTransactionService(mockUow, mockTime, newTestLogger(t))

		txn, err := service.Create(ctx, portuse.CreateTransactionInput{
			CustomerID: 99,
			Amount:     decimal.NewFromInt(10),
			Currency:   "USD",
		})

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrCustomerNotFound)
	})

	t.Run("Negative amount is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCustomerRepo := persistencemocks.NewMockCustomerRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().GetCustomerRepository(mock.Anything).Return(mockCustomerRepo).Once()
		mockCustomerRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(&entity.Customer{ID: 42}, nil).Once()

		service := NewTransactionService(mockUow, mockTime, newTestLogger(t))

		txn, err := service.Create(ctx, portuse.CreateTransactionInput{
			CustomerID: 42,
			Amount:     decimal.RequireFromString("-5"),
			Currency:   "USD",
		})

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestCancelTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending transaction is moved to FAILED", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		pending := &entity.Transaction{ID: 1, Status: entity.TransactionPending}
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(pending, nil).Once()
		mockTxRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Status == entity.TransactionFailed
		})).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		service := NewTransactionService(mockUow, mockTime, newTestLogger(t))

		txn, err := service.Cancel(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, entity.TransactionFailed, txn.Status)
	})

	t.Run("Completed transaction cannot be cancelled", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		completed := &entity.Transaction{ID: 2, Status: entity.TransactionCompleted}
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(completed, nil).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewTransactionService(mockUow, mockTime, newTestLogger(t))

		txn, err := service.Cancel(ctx, 2)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrCannotCancelCompleted)
	})

	t.Run("Cancelling an already failed transaction is a no-op", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		failed := &entity.Transaction{ID: 3, Status: entity.TransactionFailed}
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(failed, nil).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewTransactionService(mockUow, mockTime, newTestLogger(t))

		txn, err := service.Cancel(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, entity.TransactionFailed, txn.Status)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("Status is normalized to uppercase", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().Find(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return filter.Status == entity.TransactionCompleted && filter.CustomerID == 42
		}), mock.Anything).Return([]*entity.Transaction{{ID: 1}}, int64(1), nil).Once()

		service := NewTransactionService(mockUow, mockTime, newTestLogger(t))

		page, err := service.List(ctx, portuse.ListTransactionsInput{
			CustomerID: 42,
			Status:     "completed",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), page.TotalCount)
		assert.Len(t, page.Items, 1)
	})

	t.Run("Unknown status matches zero rows", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		service := NewTransactionService(mockUow, mockTime, newTestLogger(t))

		page, err := service.List(ctx, portuse.ListTransactionsInput{
			CustomerID: 42,
			Status:     "SHIPPED",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(0), page.TotalCount)
		assert.Empty(t, page.Items)
	})

	t.Run("Pagination is echoed on the page", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().Find(mock.Anything, mock.Anything, persistence.Pagination{Page: 2, PageSize: 10}).
			Return([]*entity.Transaction{}, int64(25), nil).Once()

		service := NewTransactionService(mockUow, mockTime, newTestLogger(t))

		page, err := service.List(ctx, portuse.ListTransactionsInput{Page: 2, PageSize: 10})

		require.NoError(t, err)
		assert.Equal(t, int64(25), page.TotalCount)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 10, page.PageSize)
	})
}
