// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package logging builds the zerolog logger shared by the CLI commands.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables consulted when a flag is left unset.
const (
	EnvLogLevel  = "XABIN_LOG_LEVEL"
	EnvLogFormat = "XABIN_LOG_FORMAT"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options selects the level, format and destination of a logger.
type Options struct {
	Level  string
	Format string
	// Out defaults to os.Stderr; stdout is reserved for generated code.
	Out io.Writer
}

// WithEnv fills unset Level and Format from the environment.
func (o Options) WithEnv(getenv func(string) string) Options {
	if o.Level == "" {
		o.Level = getenv(EnvLogLevel)
	}
	if o.Format == "" {
		o.Format = getenv(EnvLogFormat)
	}
	return o
}

// New returns a logger configured by opts. An empty level means "warn".
func New(opts Options) (zerolog.Logger, error) {
	levelStr := strings.ToLower(opts.Level)
	if levelStr == "" {
		levelStr = "warn"
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", opts.Level)
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	switch strings.ToLower(opts.Format) {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q (expected %s or %s)", opts.Format, FormatJSON, FormatConsole)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Attach stores logger in ctx.
func Attach(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// From returns the logger stored in ctx, or a disabled logger.
func From(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
