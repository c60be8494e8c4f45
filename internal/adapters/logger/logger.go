// Package logger implements a logging adapter using log/slog backed by a
// charmbracelet/log handler.
package logger

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/zerr"
)

// silent is above every level charmbracelet/log emits.
const silent = log.Level(math.MaxInt32)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	handler *log.Logger
	logger  *slog.Logger
	debug   *slog.Logger
	mu      sync.RWMutex
}

// New creates a new Logger writing to stderr.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w at Information verbosity.
func NewWithWriter(w io.Writer) *Logger {
	handler := log.NewWithOptions(w, log.Options{
		Prefix:          "sail",
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return &Logger{
		handler: handler,
		logger:  slog.New(handler),
		debug:   slog.New(debugHandler{handler}),
	}
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handler.SetOutput(w)
}

// SetVerbosity changes the minimum level that is written.
func (l *Logger) SetVerbosity(v domain.Verbosity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handler.SetLevel(levelFor(v))
}

// Debug logs a trace message.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error together with the metadata attached along its chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	zerr.Log(context.Background(), l.logger, err)
}

// DebugError logs an error and its metadata at trace verbosity.
func (l *Logger) DebugError(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	zerr.Log(context.Background(), l.debug, err)
}

// debugHandler lowers every record to debug level.
type debugHandler struct {
	slog.Handler
}

func (h debugHandler) Enabled(ctx context.Context, _ slog.Level) bool {
	return h.Handler.Enabled(ctx, slog.LevelDebug)
}

func (h debugHandler) Handle(ctx context.Context, r slog.Record) error {
	r.Level = slog.LevelDebug
	return h.Handler.Handle(ctx, r)
}

func (h debugHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return debugHandler{h.Handler.WithAttrs(attrs)}
}

func (h debugHandler) WithGroup(name string) slog.Handler {
	return debugHandler{h.Handler.WithGroup(name)}
}

func levelFor(v domain.Verbosity) log.Level {
	switch v {
	case domain.VerbosityTrace:
		return log.DebugLevel
	case domain.VerbosityInformation:
		return log.InfoLevel
	case domain.VerbosityError:
		return log.ErrorLevel
	case domain.VerbosityNone:
		return silent
	default:
		return log.InfoLevel
	}
}
