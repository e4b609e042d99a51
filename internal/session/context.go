// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Helios-vmg/Xabin/internal/config"
)

var (
	// ErrNotInitialized indicates no xabin.yaml was found in the project directory.
	ErrNotInitialized = errors.New("not in a xabin project (xabin.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceNotFound indicates a source listed in the config doesn't exist.
	ErrSourceNotFound = errors.New("source file not found")
)

// ConfigFileName is the name of the xabin configuration file.
const ConfigFileName = "xabin.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the configuration with defaults applied.
	Config *config.Config

	// Dir is the project directory; relative paths in Config are resolved
	// against it.
	Dir string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the xabin Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadDir(ctx, cwd)
}

// LoadDir is Load for an explicit project directory.
func LoadDir(ctx context.Context, dir string) (context.Context, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}
	cfg.Resolve()

	xabinCtx := &Context{
		Config: cfg,
		Dir:    dir,
	}
	for _, src := range xabinCtx.Sources() {
		if _, err := os.Stat(src); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
	}

	return context.WithValue(ctx, contextKey{}, xabinCtx), nil
}

// Sources returns the configured source paths resolved against Dir.
func (c *Context) Sources() []string {
	out := make([]string, len(c.Config.Sources))
	for i, src := range c.Config.Sources {
		out[i] = c.resolve(src)
	}
	return out
}

// OutputPath returns the configured output path with ext appended.
func (c *Context) OutputPath(ext string) string {
	return c.resolve(c.Config.Output) + ext
}

func (c *Context) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}

// From extracts the xabin Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if xabinCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return xabinCtx
	}
	return nil
}
