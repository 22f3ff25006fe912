package analytics

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

func completedTxn(amount string, category string, createdAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		CustomerID: 42,
		Amount:     decimal.RequireFromString(amount),
		Category:   category,
		Status:     entity.TransactionCompleted,
		CreatedAt:  createdAt,
	}
}

func TestSpendSummary(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Totals are exact and the average is rounded half-up to cents", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		created := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
		rows := []*entity.Transaction{
			completedTxn("10.00", "Retail", created),
			completedTxn("20.005", "Retail", created),
			completedTxn("5.00", "Retail", created),
		}
		mockRepo.EXPECT().Find(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return filter.CustomerID == 42 &&
				filter.Status == entity.TransactionCompleted &&
				filter.From != nil && filter.From.Equal(from) &&
				filter.To != nil && filter.To.Equal(to)
		}), persistence.Pagination{}).Return(rows, int64(len(rows)), nil).Once()

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		summary, err := service.SpendSummary(ctx, 42, from, to, "USD")

		require.NoError(t, err)
		assert.True(t, summary.TotalAmount.Equal(decimal.RequireFromString("35.005")),
			"total %s", summary.TotalAmount)
		assert.Equal(t, int64(3), summary.TransactionCount)
		assert.True(t, summary.AverageTicket.Equal(decimal.RequireFromString("11.67")),
			"average %s", summary.AverageTicket)
		assert.Equal(t, "USD", summary.BaseCurrency)
	})

	t.Run("No completed spend yields all-zero figures", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockRepo.EXPECT().Find(mock.Anything, mock.Anything, persistence.Pagination{}).
			Return([]*entity.Transaction{}, int64(0), nil).Once()

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		summary, err := service.SpendSummary(ctx, 42, from, to, "USD")

		require.NoError(t, err)
		assert.True(t, summary.TotalAmount.IsZero())
		assert.Equal(t, int64(0), summary.TransactionCount)
		assert.True(t, summary.AverageTicket.IsZero())
	})

	t.Run("Zero time bounds are not forwarded as filters", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockRepo.EXPECT().Find(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return filter.From == nil && filter.To == nil
		}), persistence.Pagination{}).Return([]*entity.Transaction{}, int64(0), nil).Once()

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		_, err := service.SpendSummary(ctx, 42, time.Time{}, time.Time{}, "USD")

		require.NoError(t, err)
	})
}

func TestSpendByCategory(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("Rows are partitioned by raw label and sorted by category", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		rows := []*entity.Transaction{
			completedTxn("12.50", "Travel", created),
			completedTxn("10.00", "Retail", created),
			completedTxn("20.005", "Retail", created),
			completedTxn("3.99", "", created),
		}
		mockRepo.EXPECT().Find(mock.Anything, mock.Anything, persistence.Pagination{}).
			Return(rows, int64(len(rows)), nil).Once()

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		out, err := service.SpendByCategory(ctx, 42, time.Time{}, time.Time{})

		require.NoError(t, err)
		require.Len(t, out, 3)

		assert.Equal(t, "", out[0].Category)
		assert.True(t, out[0].TotalAmount.Equal(decimal.RequireFromString("3.99")))
		assert.Equal(t, int64(1), out[0].TransactionCount)

		assert.Equal(t, "Retail", out[1].Category)
		assert.True(t, out[1].TotalAmount.Equal(decimal.RequireFromString("30.005")))
		assert.Equal(t, int64(2), out[1].TransactionCount)

		assert.Equal(t, "Travel", out[2].Category)
		assert.True(t, out[2].TotalAmount.Equal(decimal.RequireFromString("12.50")))
		assert.Equal(t, int64(1), out[2].TransactionCount)
	})

	t.Run("Category totals add up to the summary total", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		rows := []*entity.Transaction{
			completedTxn("10.00", "Retail", created),
			completedTxn("20.005", "Travel", created),
			completedTxn("5.00", "Retail", created),
		}
		mockRepo.EXPECT().Find(mock.Anything, mock.Anything, persistence.Pagination{}).
			Return(rows, int64(len(rows)), nil).Twice()

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		summary, err := service.SpendSummary(ctx, 42, time.Time{}, time.Time{}, "USD")
		require.NoError(t, err)

		categories, err := service.SpendByCategory(ctx, 42, time.Time{}, time.Time{})
		require.NoError(t, err)

		categoryTotal := decimal.Zero
		var categoryCount int64
		for _, row := range categories {
			categoryTotal = categoryTotal.Add(row.TotalAmount)
			categoryCount += row.TransactionCount
		}
		assert.True(t, categoryTotal.Equal(summary.TotalAmount))
		assert.Equal(t, summary.TransactionCount, categoryCount)
	})
}

func TestTimeSeries(t *testing.T) {
	ctx := context.Background()

	t.Run("Day buckets are sparse and ascending", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		rows := []*entity.Transaction{
			completedTxn("5.00", "Retail", time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)),
			completedTxn("10.00", "Retail", time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)),
			completedTxn("2.50", "Retail", time.Date(2024, 3, 4, 18, 30, 0, 0, time.UTC)),
		}
		mockRepo.EXPECT().Find(mock.Anything, mock.Anything, persistence.Pagination{}).
			Return(rows, int64(len(rows)), nil).Once()

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		series, err := service.TimeSeries(ctx, 42, "day", time.Time{}, time.Time{}, "")

		require.NoError(t, err)
		assert.Equal(t, "day", series.Bucket)
		require.Len(t, series.Series, 2)

		assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), series.Series[0].BucketStart)
		assert.True(t, series.Series[0].Amount.Equal(decimal.RequireFromString("12.50")))

		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), series.Series[1].BucketStart)
		assert.True(t, series.Series[1].Amount.Equal(decimal.RequireFromString("5.00")))
	})

	t.Run("Week buckets group Monday through Sunday", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		rows := []*entity.Transaction{
			// Monday and the following Sunday land in the same ISO week
			completedTxn("10.00", "", time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)),
			completedTxn("5.00", "", time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC)),
			// The next Monday starts a new bucket
			completedTxn("1.00", "", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)),
		}
		mockRepo.EXPECT().Find(mock.Anything, mock.Anything, persistence.Pagination{}).
			Return(rows, int64(len(rows)), nil).Once()

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		series, err := service.TimeSeries(ctx, 42, "WEEK", time.Time{}, time.Time{}, "")

		require.NoError(t, err)
		assert.Equal(t, "week", series.Bucket)
		require.Len(t, series.Series, 2)

		assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), series.Series[0].BucketStart)
		assert.True(t, series.Series[0].Amount.Equal(decimal.RequireFromString("15.00")))

		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), series.Series[1].BucketStart)
		assert.True(t, series.Series[1].Amount.Equal(decimal.RequireFromString("1.00")))
	})

	t.Run("Month buckets truncate to the first day", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		rows := []*entity.Transaction{
			completedTxn("10.00", "", time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)),
			completedTxn("5.00", "", time.Date(2024, 3, 28, 10, 0, 0, 0, time.UTC)),
			completedTxn("7.00", "", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
		}
		mockRepo.EXPECT().Find(mock.Anything, mock.Anything, persistence.Pagination{}).
			Return(rows, int64(len(rows)), nil).Once()

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		series, err := service.TimeSeries(ctx, 42, "month", time.Time{}, time.Time{}, "")

		require.NoError(t, err)
		require.Len(t, series.Series, 2)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), series.Series[0].BucketStart)
		assert.True(t, series.Series[0].Amount.Equal(decimal.RequireFromString("15.00")))
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), series.Series[1].BucketStart)
	})

	t.Run("Bucket amounts add up to the summary total", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		rows := []*entity.Transaction{
			completedTxn("10.00", "Retail", time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)),
			completedTxn("20.005", "Travel", time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)),
			completedTxn("5.00", "Retail", time.Date(2024, 3, 28, 18, 0, 0, 0, time.UTC)),
		}
		mockRepo.EXPECT().Find(mock.Anything, mock.Anything, persistence.Pagination{}).
			Return(rows, int64(len(rows)), nil).Twice()

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		summary, err := service.SpendSummary(ctx, 42, time.Time{}, time.Time{}, "USD")
		require.NoError(t, err)

		series, err := service.TimeSeries(ctx, 42, "day", time.Time{}, time.Time{}, "")
		require.NoError(t, err)

		bucketTotal := decimal.Zero
		for _, point := range series.Series {
			bucketTotal = bucketTotal.Add(point.Amount)
		}
		assert.True(t, bucketTotal.Equal(summary.TotalAmount),
			"buckets %s, summary %s", bucketTotal, summary.TotalAmount)
	})

	t.Run("Category filter is forwarded", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockRepo.EXPECT().Find(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return filter.Category == "Retail" && filter.Status == entity.TransactionCompleted
		}), persistence.Pagination{}).Return([]*entity.Transaction{}, int64(0), nil).Once()

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		series, err := service.TimeSeries(ctx, 42, "day", time.Time{}, time.Time{}, "Retail")

		require.NoError(t, err)
		assert.Equal(t, "Retail", series.Category)
		assert.Empty(t, series.Series)
	})

	t.Run("Invalid bucket is rejected before any query", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)

		service := NewAnalyticsService(mockRepo, newTestLogger(t))

		series, err := service.TimeSeries(ctx, 42, "year", time.Time{}, time.Time{}, "")

		assert.Nil(t, series)
		assert.ErrorIs(t, err, errs.ErrInvalidBucket)
	})
}
