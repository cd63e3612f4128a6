// Package logging provides a small structured-logging facade over
// zerolog, grounded on agbruneau-FibGo/internal/logging: a Logger
// interface with Field-based structured calls, a zerolog-backed
// adapter for normal use, and a plain log.Logger-backed adapter for
// environments where zerolog's JSON framing is undesirable (tests,
// simple scripts piping the CLI's stderr).
package logging

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// String returns a string-valued Field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int returns an int-valued Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 returns a uint64-valued Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 returns a float64-valued Field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err returns an error-valued Field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the interface the CLI layer depends on; the engine package
// itself never logs.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewDefaultLogger returns a ZerologAdapter writing console-formatted
// output at info level, the engine's CLI default.
func NewDefaultLogger() *ZerologAdapter {
	zl := zerolog.New(zerolog.NewConsoleWriter()).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	return NewZerologAdapter(zl)
}

// NewLogger returns a ZerologAdapter writing to w, tagged with the
// given component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.zl.Info(), fields).Msg(msg)
}

func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	e := a.zl.Error().Err(err)
	applyFields(e, fields).Msg(msg)
}

func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.zl.Debug(), fields).Msg(msg)
}

func (a *ZerologAdapter) Printf(format string, args ...interface{}) {
	a.zl.Info().Msg(fmt.Sprintf(format, args...))
}

func (a *ZerologAdapter) Println(args ...interface{}) {
	a.zl.Info().Msg(fmt.Sprintln(args...))
}

// StdLoggerAdapter implements Logger on top of the standard library's
// log.Logger, for callers that want plain-text lines instead of
// zerolog's structured output.
type StdLoggerAdapter struct {
	l *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{l: l}
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s=%v", f.Key, f.Value)
	}
	return " " + strings.Join(parts, " ")
}

func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.l.Printf("[INFO] %s%s", msg, formatFields(fields))
}

func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	all := append([]Field{Err(err)}, fields...)
	a.l.Printf("[ERROR] %s%s", msg, formatFields(all))
}

func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.l.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

func (a *StdLoggerAdapter) Printf(format string, args ...interface{}) {
	a.l.Printf(format, args...)
}

func (a *StdLoggerAdapter) Println(args ...interface{}) {
	a.l.Println(args...)
}
