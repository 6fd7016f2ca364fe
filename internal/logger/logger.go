// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the heirloom
// CLI and the development gateway.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Request- and flow-scoped loggers are obtained via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFileName is the file the CLI logger appends to.
const logFileName = "heirloom.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "gateway", "worker") writing JSON to os.Stdout.
//
// Every entry carries the "role" field, a timestamp and a "func" caller
// field holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger for interactive binaries. Output goes
// to heirloom.log inside dir (or next to the executable when dir is empty) so
// that command output on the terminal stays readable. Falls back to
// os.Stderr when the file cannot be opened.
func NewClientLogger(role, dir string) *Logger {
	if dir == "" {
		execPath, _ := os.Executable()
		dir = filepath.Dir(execPath)
	}

	var out io.Writer = os.Stderr
	logFile, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel parses level ("debug", "info", ...) and applies it globally.
// An empty string leaves the current level untouched.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext attaches l to ctx so that FromContext can retrieve it further
// down the call chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest extracts the zerolog.Logger stored in the request's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx. If none has been
// attached, zerolog's default context logger is returned, so the result is
// never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
