package logging

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type requestIDKey struct{}

var base = zap.NewNop()

// New builds the process logger. Production uses JSON output, everything
// else the console encoder.
func New(env, level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if env == "production" {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// SetBase replaces the logger used by NewLogger.
func SetBase(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	base = l
}

// Base returns the process logger.
func Base() *zap.Logger { return base }

// WithRequestID stores the request id for loggers created from ctx.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides request scoped logging for services
type Logger struct {
	l *zap.Logger
}

// NewLogger creates a logger tagged with the request id carried by ctx.
func NewLogger(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{l: base.With(zap.String("request_id", requestID))}
}

func (l *Logger) LogError(operation string, err error) {
	l.l.Error("operation failed", zap.String("operation", operation), zap.Error(err))
}

func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.l.Info(fmt.Sprintf(format, args...), zap.String("operation", operation))
}

func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.l.Warn(fmt.Sprintf(format, args...), zap.String("operation", operation))
}

// Zap exposes the underlying logger for callers that want typed fields.
func (l *Logger) Zap() *zap.Logger { return l.l }
