// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// tsxChat service.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger writing JSON to os.Stdout for the given
// role label (e.g. "tsxchat-server").
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. The global level is set to
// Debug; use [Logger.WithLevel] to narrow it.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// New is like [NewLogger] but writes to w.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// WithLevel returns a copy of l that drops entries below level
// ("debug", "info", "warn", ...). An empty level keeps l unchanged.
func (l *Logger) WithLevel(level string) (*Logger, error) {
	if level == "" {
		return l, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return &Logger{l.Level(lvl)}, nil
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx via zerolog's WithContext.
// If none is attached, zerolog's default (disabled) context logger is
// returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
