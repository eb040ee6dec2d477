// Package logging builds the zap loggers used across aoc.
// Every subsystem logs through a named child logger (its Category) so that
// log lines can be filtered by origin, and categories can be switched off
// individually from the config file.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aoc2023/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryCLI      Category = "cli"      // Argument parsing, exit status
	CategoryConfig   Category = "config"   // Config file and environment resolution
	CategoryRegistry Category = "registry" // Day lookups
	CategoryInput    Category = "input"    // Input file loading
	CategoryHarness  Category = "harness"  // Variant execution and reporting
)

// Formats accepted in LoggingConfig.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New builds a logger writing to w according to cfg.
// A nil w means stderr.
func New(cfg config.LoggingConfig, w io.Writer) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q (valid: %s, %s)", cfg.Format, FormatConsole, FormatJSON)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(level))
	core = &categoryFilter{Core: core, cfg: cfg}
	return zap.New(core), nil
}

// ParseLevel accepts debug, info, warn/warning and error. Empty means error,
// which keeps default runs quiet apart from failures.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return zapcore.ErrorLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	default:
		return zapcore.ErrorLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// For returns the child logger for category.
func For(base *zap.Logger, category Category) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(string(category))
}

// categoryFilter drops entries from categories disabled in the config.
// Entries at error level or above are never dropped.
type categoryFilter struct {
	zapcore.Core
	cfg config.LoggingConfig
}

func (c *categoryFilter) With(fields []zapcore.Field) zapcore.Core {
	return &categoryFilter{Core: c.Core.With(fields), cfg: c.cfg}
}

func (c *categoryFilter) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if ent.Level < zapcore.ErrorLevel && !c.enabled(ent.LoggerName) {
		return ce
	}
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *categoryFilter) enabled(name string) bool {
	root, _, _ := strings.Cut(name, ".")
	return c.cfg.IsCategoryEnabled(root)
}

// =============================================================================
// TIMING HELPERS - For step timing
// =============================================================================

// Timer helps measure operation duration
type Timer struct {
	logger *zap.Logger
	op     string
	start  time.Time
	now    func() time.Time
}

// StartTimer logs the start of op at debug level and begins timing it.
func StartTimer(logger *zap.Logger, op string, fields ...zap.Field) *Timer {
	return StartTimerWithClock(logger, time.Now, op, fields...)
}

// StartTimerWithClock is StartTimer with an injectable clock.
func StartTimerWithClock(logger *zap.Logger, now func() time.Time, op string, fields ...zap.Field) *Timer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(op+" started", fields...)
	return &Timer{logger: logger, op: op, start: now(), now: now}
}

// Elapsed returns the time since the timer started without stopping it.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Stop ends the timer and logs the duration
func (t *Timer) Stop(fields ...zap.Field) time.Duration {
	elapsed := t.Elapsed()
	t.logger.Debug(t.op+" completed", append(fields, zap.Duration("elapsed", elapsed))...)
	return elapsed
}

// StopWithError ends the timer and logs err with the duration at error level.
func (t *Timer) StopWithError(err error, fields ...zap.Field) time.Duration {
	elapsed := t.Elapsed()
	t.logger.Error(t.op+" failed", append(fields, zap.Duration("elapsed", elapsed), zap.Error(err))...)
	return elapsed
}

// StopWithThreshold logs warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration, fields ...zap.Field) time.Duration {
	elapsed := t.Elapsed()
	fields = append(fields, zap.Duration("elapsed", elapsed))
	if elapsed > threshold {
		t.logger.Warn(t.op+" was slow", append(fields, zap.Duration("threshold", threshold))...)
	} else {
		t.logger.Debug(t.op+" completed", fields...)
	}
	return elapsed
}
