// Package logger builds the structured go-kit logger used by the command
// line tool, the HTTP server and the batch runner. The sampling core never
// logs.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"randist/internal/errors"
)

// Output formats
const (
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// Levels accepted by New
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger provides leveled key/value logging
type Logger struct {
	base log.Logger
}

// New creates a logger writing format-encoded records at or above lvl to w
func New(w io.Writer, format, lvl string) (*Logger, error) {
	var base log.Logger
	switch strings.ToLower(format) {
	case "", FormatLogfmt:
		base = log.NewLogfmtLogger(log.NewSyncWriter(w))
	case FormatJSON:
		base = log.NewJSONLogger(log.NewSyncWriter(w))
	default:
		return nil, errors.ConfigInvalid("unknown log format: " + format)
	}

	opt, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}

	base = level.NewFilter(base, opt)
	base = log.With(base, "ts", log.DefaultTimestampUTC)
	return &Logger{base: base}, nil
}

// NewDefault creates a logger from LOG_FORMAT and LOG_LEVEL, writing to
// stderr. Unknown values fall back to logfmt at info.
func NewDefault() *Logger {
	return fromEnv(os.Stderr)
}

func fromEnv(w io.Writer) *Logger {
	l, err := New(w, os.Getenv("LOG_FORMAT"), os.Getenv("LOG_LEVEL"))
	if err != nil {
		l, _ = New(w, FormatLogfmt, LevelInfo)
	}
	return l
}

// Nop discards everything
func Nop() *Logger {
	return &Logger{base: log.NewNopLogger()}
}

// ValidLevel reports whether lvl names a known level
func ValidLevel(lvl string) bool {
	_, err := levelOption(lvl)
	return err == nil
}

// ValidFormat reports whether format names a known output format
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "", FormatLogfmt, FormatJSON:
		return true
	}
	return false
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case LevelDebug:
		return level.AllowDebug(), nil
	case "", LevelInfo:
		return level.AllowInfo(), nil
	case LevelWarn:
		return level.AllowWarn(), nil
	case LevelError:
		return level.AllowError(), nil
	default:
		return nil, errors.ConfigInvalid("unknown log level: " + lvl)
	}
}

// With returns a logger that adds keyvals to every record
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{base: log.With(l.base, keyvals...)}
}

func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	_ = level.Debug(l.base).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}

func (l *Logger) Info(msg string, keyvals ...interface{}) {
	_ = level.Info(l.base).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}

func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	_ = level.Warn(l.base).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}

func (l *Logger) Error(msg string, keyvals ...interface{}) {
	_ = level.Error(l.base).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}
