package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	"github.com/jaykakkad82/mypayments/internal/domain/port/persistence"
)

// averageScale is the presentation scale of the average ticket: half-up,
// two fractional digits. Totals are never rounded.
const averageScale = 2

// Service implements the spend-analytics queries. It is stateless: each call
// fetches the matching COMPLETED transactions and aggregates in memory with
// exact decimal arithmetic.
type Service struct {
	txRepo persistence.TransactionRepository
	logger coreport.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(txRepo persistence.TransactionRepository, logger coreport.Logger) *Service {
	return &Service{
		txRepo: txRepo,
		logger: logger,
	}
}

// SpendSummary computes total, count and average ticket over completed spend.
// Amounts are summed as-is across currencies; baseCurrency is a label until a
// real FX dependency is introduced.
func (s *Service) SpendSummary(ctx context.Context, customerID uint64, from, to time.Time, baseCurrency string) (*entity.SpendSummary, error) {
	completed, err := s.fetchCompleted(ctx, customerID, from, to, "")
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, txn := range completed {
		total = total.Add(txn.Amount)
	}

	count := int64(len(completed))
	average := decimal.Zero
	if count > 0 {
		average = total.DivRound(decimal.NewFromInt(count), averageScale)
	}

	return &entity.SpendSummary{
		CustomerID:       customerID,
		BaseCurrency:     baseCurrency,
		TotalAmount:      total,
		TransactionCount: count,
		AverageTicket:    average,
		PeriodFrom:       from,
		PeriodTo:         to,
	}, nil
}

// SpendByCategory partitions completed spend by raw category label.
// Rows are sorted by category for deterministic output.
func (s *Service) SpendByCategory(ctx context.Context, customerID uint64, from, to time.Time) ([]entity.CategorySpend, error) {
	completed, err := s.fetchCompleted(ctx, customerID, from, to, "")
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int64)
	for _, txn := range completed {
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
		counts[txn.Category]++
	}

	out := make([]entity.CategorySpend, 0, len(totals))
	for category, total := range totals {
		out = append(out, entity.CategorySpend{
			CustomerID:       customerID,
			Category:         category,
			TotalAmount:      total,
			TransactionCount: counts[category],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// TimeSeries sums completed spend into calendar buckets, ascending by bucket
// start. Buckets with no matching transactions are omitted (sparse series).
func (s *Service) TimeSeries(ctx context.Context, customerID uint64, rawBucket string, from, to time.Time, category string) (*entity.TimeSeries, error) {
	bucket, err := ParseBucket(rawBucket)
	if err != nil {
		return nil, err
	}

	completed, err := s.fetchCompleted(ctx, customerID, from, to, category)
	if err != nil {
		return nil, err
	}

	sums := make(map[time.Time]decimal.Decimal)
	for _, txn := range completed {
		key := bucket.Floor(txn.CreatedAt)
		sums[key] = sums[key].Add(txn.Amount)
	}

	// Bucket keys are totally ordered timestamps; emit them ascending.
	keys := make([]time.Time, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	series := make([]entity.TimeSeriesPoint, 0, len(keys))
	for _, key := range keys {
		series = append(series, entity.TimeSeriesPoint{BucketStart: key, Amount: sums[key]})
	}

	return &entity.TimeSeries{
		CustomerID: customerID,
		Bucket:     string(bucket),
		Category:   category,
		Series:     series,
	}, nil
}

// fetchCompleted loads the COMPLETED transactions matching the query window.
// FAILED and PENDING transactions never contribute to spend figures.
func (s *Service) fetchCompleted(ctx context.Context, customerID uint64, from, to time.Time, category string) ([]*entity.Transaction, error) {
	filter := persistence.TransactionFilter{
		CustomerID: customerID,
		Status:     entity.TransactionCompleted,
		Category:   category,
	}
	if !from.IsZero() {
		filter.From = &from
	}
	if !to.IsZero() {
		filter.To = &to
	}

	items, _, err := s.txRepo.Find(ctx, filter, persistence.Pagination{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed transactions: %w", err)
	}
	return items, nil
}
