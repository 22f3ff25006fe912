package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// SpendSummaryResponse represents the API response for a spend summary
type SpendSummaryResponse struct {
	CustomerID       uint64          `json:"customerId"`
	BaseCurrency     string          `json:"baseCurrency"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int64           `json:"transactionCount"`
	AverageTicket    decimal.Decimal `json:"averageTicket"`
	PeriodFrom       time.Time       `json:"periodFrom"`
	PeriodTo         time.Time       `json:"periodTo"`
}

// CategorySpendResponse represents one category row of a spend breakdown
type CategorySpendResponse struct {
	CustomerID       uint64          `json:"customerId"`
	Category         string          `json:"category"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int64           `json:"transactionCount"`
}

// TimeSeriesPointResponse represents one bucket of a time series
type TimeSeriesPointResponse struct {
	TimestampStart time.Time       `json:"timestampStart"`
	Amount         decimal.Decimal `json:"amount"`
}

// TimeSeriesResponse represents the API response for a bucketed time series
type TimeSeriesResponse struct {
	CustomerID uint64                    `json:"customerId"`
	Bucket     string                    `json:"bucket"`
	Category   string                    `json:"category,omitempty"`
	Series     []TimeSeriesPointResponse `json:"series"`
}

// ToSpendSummaryResponse maps a spend summary to its API response
func ToSpendSummaryResponse(s *entity.SpendSummary) SpendSummaryResponse {
	return SpendSummaryResponse{
		CustomerID:       s.CustomerID,
		BaseCurrency:     s.BaseCurrency,
		TotalAmount:      s.TotalAmount,
		TransactionCount: s.TransactionCount,
		AverageTicket:    s.AverageTicket,
		PeriodFrom:       s.PeriodFrom,
		PeriodTo:         s.PeriodTo,
	}
}

// ToCategorySpendResponses maps category rows to their API response
func ToCategorySpendResponses(rows []entity.CategorySpend) []CategorySpendResponse {
	out := make([]CategorySpendResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, CategorySpendResponse{
			CustomerID:       row.CustomerID,
			Category:         row.Category,
			TotalAmount:      row.TotalAmount,
			TransactionCount: row.TransactionCount,
		})
	}
	return out
}

// ToTimeSeriesResponse maps a time series to its API response
func ToTimeSeriesResponse(ts *entity.TimeSeries) TimeSeriesResponse {
	series := make([]TimeSeriesPointResponse, 0, len(ts.Series))
	for _, p := range ts.Series {
		series = append(series, TimeSeriesPointResponse{
			TimestampStart: p.BucketStart,
			Amount:         p.Amount,
		})
	}
	return TimeSeriesResponse{
		CustomerID: ts.CustomerID,
		Bucket:     ts.Bucket,
		Category:   ts.Category,
		Series:     series,
	}
}
