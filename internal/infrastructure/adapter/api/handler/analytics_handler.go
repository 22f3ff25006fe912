package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	portuse "github.com/jaykakkad82/mypayments/internal/domain/port/usecase"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/api/dto"
)

const defaultBaseCurrency = "USD"

// AnalyticsHandler handles spend-analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService portuse.AnalyticsUseCase
	logger           coreport.Logger
}

// NewAnalyticsHandler creates a new analytics handler instance
func NewAnalyticsHandler(analyticsService portuse.AnalyticsUseCase, logger coreport.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// analyticsQuery holds the parameters shared by every analytics endpoint
type analyticsQuery struct {
	customerID uint64
	from       time.Time
	to         time.Time
}

// SpendSummary handles the GET /analytics/spend-summary endpoint
func (h *AnalyticsHandler) SpendSummary(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	base := c.Query("fxBase")
	if base == "" {
		base = defaultBaseCurrency
	}

	summary, err := h.analyticsService.SpendSummary(c.Request.Context(), q.customerID, q.from, q.to, base)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpendSummaryResponse(summary))
}

// SpendByCategory handles the GET /analytics/spend-by-category endpoint
func (h *AnalyticsHandler) SpendByCategory(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	rows, err := h.analyticsService.SpendByCategory(c.Request.Context(), q.customerID, q.from, q.to)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategorySpendResponses(rows))
}

// TimeSeries handles the GET /analytics/time-series endpoint
func (h *AnalyticsHandler) TimeSeries(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	series, err := h.analyticsService.TimeSeries(
		c.Request.Context(),
		q.customerID,
		c.DefaultQuery("bucket", "day"),
		q.from,
		q.to,
		c.Query("category"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeSeriesResponse(series))
}

// parseQuery extracts the common customerId/from/to parameters, writing the
// error response itself when any of them is unusable
func (h *AnalyticsHandler) parseQuery(c *gin.Context) (analyticsQuery, bool) {
	var q analyticsQuery

	customerID, err := strconv.ParseUint(c.Query("customerId"), 10, 64)
	if err != nil || customerID == 0 {
		respondBadRequest(c, "Missing or invalid customerId")
		return q, false
	}
	q.customerID = customerID

	from, ok := parseQueryTime(c.Query("from"))
	if !ok {
		respondBadRequest(c, "Invalid from timestamp")
		return q, false
	}
	q.from = from

	to, ok := parseQueryTime(c.Query("to"))
	if !ok {
		respondBadRequest(c, "Invalid to timestamp")
		return q, false
	}
	q.to = to

	return q, true
}
