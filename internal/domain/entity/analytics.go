package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendSummary aggregates completed spend over a period.
// TotalAmount is an exact running sum; AverageTicket is the only rounded
// figure (half-up, 2 fractional digits).
type SpendSummary struct {
	CustomerID       uint64
	BaseCurrency     string // label only, no FX normalization is applied
	TotalAmount      decimal.Decimal
	TransactionCount int64
	AverageTicket    decimal.Decimal
	PeriodFrom       time.Time
	PeriodTo         time.Time
}

// CategorySpend is the completed spend within one category label
type CategorySpend struct {
	CustomerID       uint64
	Category         string
	TotalAmount      decimal.Decimal
	TransactionCount int64
}

// TimeSeriesPoint is the summed spend of one calendar bucket
type TimeSeriesPoint struct {
	BucketStart time.Time
	Amount      decimal.Decimal
}

// TimeSeries is a sparse, ascending calendar-bucketed spend series
type TimeSeries struct {
	CustomerID uint64
	Bucket     string
	Category   string // empty when the series is not category-filtered
	Series     []TimeSeriesPoint
}
