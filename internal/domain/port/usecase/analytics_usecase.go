package usecase

import (
	"context"
	"time"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// AnalyticsUseCase defines the spend-analytics queries. All of them are pure
// reads over COMPLETED transactions; FAILED and PENDING rows never contribute
// to spend figures.
type AnalyticsUseCase interface {
	// SpendSummary computes exact total, count and half-up 2dp average ticket
	SpendSummary(ctx context.Context, customerID uint64, from, to time.Time, baseCurrency string) (*entity.SpendSummary, error)

	// SpendByCategory partitions completed spend by raw category label
	SpendByCategory(ctx context.Context, customerID uint64, from, to time.Time) ([]entity.CategorySpend, error)

	// TimeSeries sums completed spend into day/week/month calendar buckets
	TimeSeries(ctx context.Context, customerID uint64, bucket string, from, to time.Time, category string) (*entity.TimeSeries, error)
}
