// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Helios-vmg/Xabin/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "xabin.yaml")

	cfg := Config{
		Version:   1,
		Sources:   []string{"schema/net.xabin", "schema/disk.xml"},
		Target:    "cpp",
		ErrorMode: "status",
		Output:    "gen/records",
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg, *loaded)
}

func TestConfig_LoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "xabin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [1\n"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestConfig_Resolve(t *testing.T) {
	cfg := Config{Version: 1, Target: "cpp"}
	cfg.Resolve()

	assert.Equal(t, "cpp", cfg.Target)
	assert.Equal(t, DefaultErrorMode, cfg.ErrorMode)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, "innermost-first", cfg.NamespaceClose)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1, Sources: []string{"a.xabin"}},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99, Sources: []string{"a.xabin"}},
			wantErr: "unsupported config version",
		},
		{
			name:    "no sources",
			cfg:     Config{Version: 1},
			wantErr: "no sources configured",
		},
		{
			name:    "bad error mode",
			cfg:     Config{Version: 1, Sources: []string{"a.xabin"}, ErrorMode: "errno"},
			wantErr: "invalid error mode",
		},
		{
			name:    "bad namespace close",
			cfg:     Config{Version: 1, Sources: []string{"a.xabin"}, NamespaceClose: "sideways"},
			wantErr: "invalid namespace close order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := Config{
		Version:        1,
		Sources:        []string{"a.xabin"},
		ErrorMode:      "status",
		Package:        "wire",
		NamespaceClose: "open-order",
	}
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, translate.Options{
		Mode:           translate.StatusCode,
		Package:        "wire",
		NamespaceClose: translate.OpenOrder,
		Sources:        []string{"a.xabin"},
	}, opts)

	cfg.ErrorMode = "bogus"
	_, err = cfg.Options()
	assert.ErrorContains(t, err, "error_mode")
}
