package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the service.
// All methods take a context first so implementations can attach
// request-scoped fields (request id, session id).
type Logger interface {
	Debug(ctx context.Context, args ...interface{})
	Debugf(ctx context.Context, format string, args ...interface{})
	Info(ctx context.Context, args ...interface{})
	Infof(ctx context.Context, format string, args ...interface{})
	Warn(ctx context.Context, args ...interface{})
	Warnf(ctx context.Context, format string, args ...interface{})
	Error(ctx context.Context, args ...interface{})
	Errorf(ctx context.Context, format string, args ...interface{})
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // development or production
	Encoding     string // console or json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.Mode == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zcfg.Encoding == "console" {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	return &zapLogger{sugar: l.Sugar()}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...interface{}) {
	z.with(ctx).Debug(args...)
}

func (z *zapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Debugf(format, args...)
}

func (z *zapLogger) Info(ctx context.Context, args ...interface{}) {
	z.with(ctx).Info(args...)
}

func (z *zapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Infof(format, args...)
}

func (z *zapLogger) Warn(ctx context.Context, args ...interface{}) {
	z.with(ctx).Warn(args...)
}

func (z *zapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Warnf(format, args...)
}

func (z *zapLogger) Error(ctx context.Context, args ...interface{}) {
	z.with(ctx).Error(args...)
}

func (z *zapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Errorf(format, args...)
}

type ctxKey string

// RequestIDKey is the context key carrying the per-request id.
const RequestIDKey ctxKey = "request_id"

func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return z.sugar.With("request_id", id)
	}
	return z.sugar
}
