package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/habitado/go-condo-billing/internal/common/log/ctxdata"
)

// DefaultLogger is the key of the logger registered by Init on Loggers.
const DefaultLogger = "default"

// Loggers holds every initialized *zap.Logger by name so integrations
// (nrzap, tests) can reach the underlying logger.
var Loggers sync.Map

var (
	mu   sync.RWMutex
	base = zap.NewNop()
)

type (
	// Field is re-exported so callers never import zap directly.
	Field = zap.Field

	// ObjectEncoder is the encoder passed to MarshalLogObject implementations.
	ObjectEncoder = zapcore.ObjectEncoder

	// ObjectMarshaler is implemented by values loggable with Object.
	ObjectMarshaler = zapcore.ObjectMarshaler
)

func String(key, val string) Field                  { return zap.String(key, val) }
func Int(key string, val int) Field                 { return zap.Int(key, val) }
func Int64(key string, val int64) Field             { return zap.Int64(key, val) }
func Int32(key string, val int32) Field             { return zap.Int32(key, val) }
func Uint64(key string, val uint64) Field           { return zap.Uint64(key, val) }
func Uint(key string, val uint) Field               { return zap.Uint(key, val) }
func Bool(key string, val bool) Field               { return zap.Bool(key, val) }
func Any(key string, val interface{}) Field         { return zap.Any(key, val) }
func Err(err error) Field                           { return zap.Error(err) }
func Duration(key string, val time.Duration) Field  { return zap.Duration(key, val) }
func Time(key string, val time.Time) Field          { return zap.Time(key, val) }
func Object(key string, val ObjectMarshaler) Field  { return zap.Object(key, val) }
func Float64(key string, val float64) Field         { return zap.Float64(key, val) }

type settings struct {
	logTo      string
	env        string
	withCaller bool
	callerSkip int
	level      zapcore.Level
}

// Option customizes Init.
type Option func(*settings)

// WithLogToOption selects the output target: "stdout" (default) or a file
// path, rotated by lumberjack.
func WithLogToOption(target string) Option {
	return func(s *settings) { s.logTo = target }
}

// WithLogEnvOption switches encoders: production/staging get JSON, anything
// else gets the console encoder.
func WithLogEnvOption(env string) Option {
	return func(s *settings) { s.env = env }
}

func WithCaller(enabled bool) Option {
	return func(s *settings) { s.withCaller = enabled }
}

func AddCallerSkip(skip int) Option {
	return func(s *settings) { s.callerSkip = skip }
}

func DebugLogLevel() Option {
	return func(s *settings) { s.level = zapcore.DebugLevel }
}

func InfoLogLevel() Option {
	return func(s *settings) { s.level = zapcore.InfoLevel }
}

// Init builds the process-wide logger. Safe to call once at startup; later
// calls replace the default logger.
func Init(name string, opts ...Option) {
	s := &settings{
		logTo: "stdout",
		level: zapcore.DebugLevel,
	}
	for _, opt := range opts {
		opt(s)
	}

	var encoder zapcore.Encoder
	switch s.env {
	case "prod", "staging", "dev":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	var sink zapcore.WriteSyncer
	switch s.logTo {
	case "", "stdout":
		sink = zapcore.AddSync(os.Stdout)
	default:
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(s.logTo, name+".log"),
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     14,
		})
	}

	zapOpts := []zap.Option{zap.Fields(zap.String("app", name))}
	if s.withCaller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(s.callerSkip))
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, s.level), zapOpts...)
	register(logger)
}

// InitForTest points the default logger at a discard sink so tests stay quiet
// while log statements still execute.
func InitForTest() {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	logger := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(io.Discard), zapcore.DebugLevel))
	register(logger)
}

func register(logger *zap.Logger) {
	mu.Lock()
	base = logger
	mu.Unlock()
	Loggers.Store(DefaultLogger, logger)
}

// Sync flushes buffered entries. Called from process stoppers.
func Sync() {
	_ = current().Sync()
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if id := ctxdata.GetCorrelationId(ctx); id != "" {
		fields = append(fields, zap.String("correlation-id", id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	current().Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	current().Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	current().Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	current().Error(msg, withCtx(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	current().Panic(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	current().Debug(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	current().Info(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	current().Warn(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	current().Error(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	current().Fatal(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}
