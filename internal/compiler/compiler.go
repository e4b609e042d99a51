// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package compiler builds schema types from the line-oriented domain language
// and from tree-structured documents. Both front ends append to the same list
// of compiled types, so they can be mixed within one Compiler.
//
// A Compiler is not safe for concurrent use; use one per compilation.
package compiler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/rs/zerolog"
)

// Compiler accumulates compiled types across one or more inputs.
type Compiler struct {
	logger zerolog.Logger

	state parseState
	stack []parseState
	types []*schema.Type

	// eol runs after a line has been consumed without error.
	eol func() error
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// New returns a Compiler with an empty type list.
func New(opts ...Option) *Compiler {
	c := &Compiler{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Types returns the committed types in compilation order.
func (c *Compiler) Types() []*schema.Type {
	return c.types
}

// Compile dispatches on the file extension: .xml, .yaml and .yml files are
// tree documents, anything else is domain language.
func (c *Compiler) Compile(path string) error {
	if IsTreePath(path) {
		return c.CompileTree(path)
	}
	return c.CompileDomainLanguage(path)
}

// IsTreePath reports whether path names a tree-structured document.
func IsTreePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// CompileDomainLanguage compiles the domain-language file at path.
func (c *Compiler) CompileDomainLanguage(path string) error {
	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	return c.ParseDomainLanguage(path, f)
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFile, err)
	}
	return f, nil
}

func (c *Compiler) commitType(t *schema.Type) {
	c.types = append(c.types, t)
	c.logger.Debug().
		Str("type", t.QualifiedName(".")).
		Int("fields", len(t.Fields)).
		Msg("committed type")
}
