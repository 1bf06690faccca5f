package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLoggerConfig configures the GORM zap logger.
type GormLoggerConfig struct {
	Level                gormlogger.LogLevel
	SlowThreshold        time.Duration
	IgnoreRecordNotFound bool
}

// DefaultGormLoggerConfig returns production-safe defaults.
func DefaultGormLoggerConfig() GormLoggerConfig {
	return GormLoggerConfig{
		Level:                gormlogger.Warn,
		SlowThreshold:        200 * time.Millisecond,
		IgnoreRecordNotFound: true,
	}
}

// GormLogger implements gormlogger.Interface with zap-backed structured logging.
type GormLogger struct {
	level                gormlogger.LogLevel
	slowThreshold        time.Duration
	ignoreRecordNotFound bool
}

// NewGormLogger builds a new GormLogger.
func NewGormLogger(cfg GormLoggerConfig) *GormLogger {
	return &GormLogger{
		level:                cfg.Level,
		slowThreshold:        cfg.SlowThreshold,
		ignoreRecordNotFound: cfg.IgnoreRecordNotFound,
	}
}

// LogMode returns a logger with the updated level.
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	copied := *l
	copied.level = level
	return &copied
}

// Info logs informational messages from GORM.
func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level < gormlogger.Info {
		return
	}
	FromContext(ctx).Info(msg, gormFields(data)...)
}

// Warn logs warning messages from GORM.
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level < gormlogger.Warn {
		return
	}
	FromContext(ctx).Warn(msg, gormFields(data)...)
}

// Error logs error messages from GORM.
func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level < gormlogger.Error {
		return
	}
	FromContext(ctx).Error(msg, gormFields(data)...)
}

// Trace logs SQL statements, durations and row counts.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("component", "gorm"),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}

	switch {
	case err != nil && l.level >= gormlogger.Error:
		if l.ignoreRecordNotFound && errors.Is(err, gorm.ErrRecordNotFound) {
			return
		}
		fields = append(fields, zap.Error(err))
		FromContext(ctx).Error("gorm query failed", fields...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		FromContext(ctx).Warn("gorm slow query", fields...)
	case l.level >= gormlogger.Info:
		FromContext(ctx).Debug("gorm query", fields...)
	}
}

func gormFields(data []interface{}) []zap.Field {
	fields := []zap.Field{zap.String("component", "gorm")}
	if len(data) > 0 {
		fields = append(fields, zap.Any("data", data))
	}
	return fields
}
