package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/jaykakkad82/mypayments/internal/domain/error"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to the HTTP status and error body.
// Anything unrecognized is treated as an internal failure and logged.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	switch {
	case domainerr.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case domainerr.IsInvalidStateError(err):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case domainerr.IsInvalidArgumentError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
	}
}

// respondBadRequest returns a 400 with the generic invalid-request code
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}

var queryTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseQueryTime parses a timestamp query parameter. An empty value yields
// the zero time with ok=true; a malformed value yields ok=false.
func parseQueryTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	for _, layout := range queryTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
