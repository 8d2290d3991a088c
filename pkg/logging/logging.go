// Package logging adapts structured loggers to records.ResolveLogger.
package logging

import (
	"context"
	"log/slog"

	records "github.com/goliatone/go-records"
	"go.uber.org/zap"
)

// Message is the log message used for every resolution.
const Message = "record resolved"

// Slog logs successful resolutions at debug level and failures at warn level.
func Slog(logger *slog.Logger) records.ResolveLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return records.ResolveLoggerFunc(func(event records.ResolveEvent) {
		attrs := []slog.Attr{
			slog.String("record", event.Name),
			slog.Int("record_level", int(event.Level)),
			slog.String("kind", event.Kind),
			slog.Duration("duration", event.Duration),
		}
		level := slog.LevelDebug
		if event.Err != nil {
			level = slog.LevelWarn
			attrs = append(attrs, slog.Any("error", event.Err))
		}
		logger.LogAttrs(context.Background(), level, Message, attrs...)
	})
}

// Zap logs successful resolutions at debug level and failures at warn level.
func Zap(logger *zap.Logger) records.ResolveLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return records.ResolveLoggerFunc(func(event records.ResolveEvent) {
		fields := []zap.Field{
			zap.String("record", event.Name),
			zap.Int("record_level", int(event.Level)),
			zap.String("kind", event.Kind),
			zap.Duration("duration", event.Duration),
		}
		if event.Err != nil {
			logger.Warn(Message, append(fields, zap.Error(event.Err))...)
			return
		}
		logger.Debug(Message, fields...)
	})
}
