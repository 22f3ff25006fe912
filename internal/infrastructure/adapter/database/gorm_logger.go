package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
)

// slowQueryThreshold is the latency above which a query is logged as slow
const slowQueryThreshold = 200 * time.Millisecond

// GormLogger bridges gorm's logging to the application Logger
type GormLogger struct {
	logger coreport.Logger
}

// NewGormLogger creates a gorm logger backed by the application Logger
func NewGormLogger(logger coreport.Logger) gormlogger.Interface {
	return &GormLogger{logger: logger}
}

// LogMode implements gormlogger.Interface; level is managed by the app logger
func (l *GormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

// Info logs informational gorm messages
func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	l.logger.Info(msg, map[string]any{"args": args})
}

// Warn logs gorm warnings
func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.logger.Warn(msg, map[string]any{"args": args})
}

// Error logs gorm errors
func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	l.logger.Error(msg, map[string]any{"args": args})
}

// Trace logs queries that failed or exceeded the slow threshold
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.logger.Error("Query failed", map[string]any{
			"sql":        sql,
			"rows":       rows,
			"elapsed_ms": elapsed.Milliseconds(),
			"error":      err.Error(),
		})
	case elapsed > slowQueryThreshold:
		sql, rows := fc()
		l.logger.Warn("Slow query", map[string]any{
			"sql":        sql,
			"rows":       rows,
			"elapsed_ms": elapsed.Milliseconds(),
		})
	}
}
