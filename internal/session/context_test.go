// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestLoadDir(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{
			name:    "not initialized",
			files:   nil,
			wantErr: ErrNotInitialized,
		},
		{
			name:    "unparsable config",
			files:   map[string]string{ConfigFileName: "version: [\n"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "invalid config",
			files:   map[string]string{ConfigFileName: "version: 2\nsources: [a.xabin]\n"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "source not found",
			files:   map[string]string{ConfigFileName: "version: 1\nsources: [schema/a.xabin]\n"},
			wantErr: ErrSourceNotFound,
		},
		{
			name: "valid",
			files: map[string]string{
				ConfigFileName:   "version: 1\nsources: [schema/a.xabin]\ntarget: cpp\n",
				"schema/a.xabin": "begin type T\nend\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, tt.files)

			ctx, err := LoadDir(context.Background(), dir)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			xabinCtx := From(ctx)
			require.NotNil(t, xabinCtx)
			assert.Equal(t, "cpp", xabinCtx.Config.Target)
			assert.Equal(t, "exceptions", xabinCtx.Config.ErrorMode)
			assert.Equal(t, []string{filepath.Join(dir, "schema", "a.xabin")}, xabinCtx.Sources())
			assert.Equal(t, filepath.Join(dir, "xabin_gen.hpp"), xabinCtx.OutputPath(".hpp"))
		})
	}
}

func TestFrom_Empty(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestPreRunLoad(t *testing.T) {
	dir := writeProject(t, map[string]string{
		ConfigFileName: "version: 1\nsources: [a.xabin]\n",
		"a.xabin":      "",
	})
	t.Chdir(dir)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	assert.Nil(t, FromCommand(cmd))
	_, err := RequireFromCommand(cmd)
	assert.Error(t, err)

	require.NoError(t, PreRunLoad(cmd, nil))
	xabinCtx, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.xabin"}, xabinCtx.Config.Sources)
	assert.Equal(t, "go", xabinCtx.Config.Target)
}
