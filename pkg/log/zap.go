package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const traceIDField = "trace_id"

// ZapConfig selects level, mode and encoding of the zap backend.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a zap-backed Logger. Output always goes to stderr so that
// stdout stays reserved for program results.
func Init(cfg ZapConfig) Logger {
	var zcfg zap.Config
	if strings.EqualFold(cfg.Mode, "production") {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	zcfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.DisableStacktrace = true

	if cfg.Encoding == "json" {
		zcfg.Encoding = "json"
	} else {
		zcfg.Encoding = "console"
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && zcfg.Encoding == "console" {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	l, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	return &zapLogger{sugar: l.Sugar()}
}

// NewZap wraps an existing zap logger, e.g. zaptest.NewLogger in tests.
func NewZap(l *zap.Logger) Logger {
	return &zapLogger{sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := TraceIDFromContext(ctx); id != "" {
		return z.sugar.With(traceIDField, id)
	}
	return z.sugar
}

// splitKV treats ("msg", k1, v1, k2, v2...) as a structured call.
func splitKV(arg []any) (string, []any, bool) {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return "", nil, false
	}
	msg, ok := arg[0].(string)
	if !ok {
		return "", nil, false
	}
	for i := 1; i < len(arg); i += 2 {
		if _, ok := arg[i].(string); !ok {
			return "", nil, false
		}
	}
	return msg, arg[1:], true
}

func (z *zapLogger) Debug(ctx context.Context, arg ...any) {
	if msg, kv, ok := splitKV(arg); ok {
		z.with(ctx).Debugw(msg, kv...)
		return
	}
	z.with(ctx).Debug(arg...)
}

func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Debugf(template, arg...)
}

func (z *zapLogger) Info(ctx context.Context, arg ...any) {
	if msg, kv, ok := splitKV(arg); ok {
		z.with(ctx).Infow(msg, kv...)
		return
	}
	z.with(ctx).Info(arg...)
}

func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Infof(template, arg...)
}

func (z *zapLogger) Warn(ctx context.Context, arg ...any) {
	if msg, kv, ok := splitKV(arg); ok {
		z.with(ctx).Warnw(msg, kv...)
		return
	}
	z.with(ctx).Warn(arg...)
}

func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Warnf(template, arg...)
}

func (z *zapLogger) Error(ctx context.Context, arg ...any) {
	if msg, kv, ok := splitKV(arg); ok {
		z.with(ctx).Errorw(msg, kv...)
		return
	}
	z.with(ctx).Error(arg...)
}

func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Errorf(template, arg...)
}

func (z *zapLogger) DPanic(ctx context.Context, arg ...any) {
	z.with(ctx).DPanic(arg...)
}

func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).DPanicf(template, arg...)
}

func (z *zapLogger) Panic(ctx context.Context, arg ...any) {
	z.with(ctx).Panic(arg...)
}

func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Panicf(template, arg...)
}

func (z *zapLogger) Fatal(ctx context.Context, arg ...any) {
	z.with(ctx).Fatal(arg...)
}

func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Fatalf(template, arg...)
}
