// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantLevel zerolog.Level
		wantErr   bool
	}{
		{name: "defaults", opts: Options{}, wantLevel: zerolog.WarnLevel},
		{name: "debug json", opts: Options{Level: "debug", Format: "json"}, wantLevel: zerolog.DebugLevel},
		{name: "upper case", opts: Options{Level: "INFO", Format: "CONSOLE"}, wantLevel: zerolog.InfoLevel},
		{name: "bad level", opts: Options{Level: "loud"}, wantErr: true},
		{name: "bad format", opts: Options{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, logger.GetLevel())
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: FormatJSON, Out: &buf})
	require.NoError(t, err)

	logger.Debug().Str("type", "Header").Msg("committed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "Header", entry["type"])
	assert.Equal(t, "committed", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "error", Format: FormatJSON, Out: &buf})
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestWithEnv(t *testing.T) {
	env := map[string]string{EnvLogLevel: "trace", EnvLogFormat: "json"}
	getenv := func(k string) string { return env[k] }

	opts := Options{}.WithEnv(getenv)
	assert.Equal(t, "trace", opts.Level)
	assert.Equal(t, "json", opts.Format)

	opts = Options{Level: "error"}.WithEnv(getenv)
	assert.Equal(t, "error", opts.Level, "flags take precedence")
}

func TestAttachFrom(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: FormatJSON, Out: &buf})
	require.NoError(t, err)

	ctx := Attach(context.Background(), logger)
	From(ctx).Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")

	assert.Equal(t, zerolog.Disabled, From(context.Background()).GetLevel())
}
