// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package translate turns compiled schema types into parser source code for a
// target language.
package translate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Helios-vmg/Xabin/internal/schema"
)

// Generator defines the interface all target-language back ends implement.
type Generator interface {
	// Name returns the generator's identifier (e.g., "go", "cpp").
	Name() string

	// GenerateDeclarations emits the record declarations for types, in order.
	GenerateDeclarations(types []*schema.Type, opts Options) ([]byte, error)

	// GenerateDefinitions emits the parsing constructors for types, in order.
	GenerateDefinitions(types []*schema.Type, opts Options) ([]byte, error)

	// Translate emits a complete source file: declarations first, then
	// definitions, with whatever preamble the language needs.
	Translate(types []*schema.Type, opts Options) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".go", ".hpp").
	FileExtension() string
}

// Register maps generator names to generators.
type Register map[string]Generator

// Add registers g under its own name.
func (r Register) Add(g Generator) {
	r[g.Name()] = g
}

// Get retrieves a generator by name.
func (r Register) Get(name string) (Generator, error) {
	g, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown target %q (available: %s)", name, strings.Join(r.Available(), ", "))
	}
	return g, nil
}

// Available returns all registered generator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrorMode selects how emitted parsers report failures.
type ErrorMode uint8

const (
	// Exceptions makes failed reads abort construction by raising
	// (panicking, in Go).
	Exceptions ErrorMode = iota
	// StatusCode makes every read return a status that is checked
	// immediately, and adds an ok flag to each record.
	StatusCode
)

var errorModeNames = map[ErrorMode]string{
	Exceptions: "exceptions",
	StatusCode: "status",
}

func (m ErrorMode) String() string {
	if s, ok := errorModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("ErrorMode(%d)", uint8(m))
}

// ParseErrorMode parses "exceptions" or "status".
func ParseErrorMode(s string) (ErrorMode, error) {
	for m, name := range errorModeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return Exceptions, fmt.Errorf("invalid error mode %q (expected exceptions or status)", s)
}

// NamespaceClose selects the order in which nested namespaces are closed.
type NamespaceClose uint8

const (
	// InnermostFirst closes namespaces in reverse opening order.
	InnermostFirst NamespaceClose = iota
	// OpenOrder closes namespaces in the order they were opened. Only the
	// namespace comments differ from InnermostFirst output.
	OpenOrder
)

var namespaceCloseNames = map[NamespaceClose]string{
	InnermostFirst: "innermost-first",
	OpenOrder:      "open-order",
}

func (n NamespaceClose) String() string {
	if s, ok := namespaceCloseNames[n]; ok {
		return s
	}
	return fmt.Sprintf("NamespaceClose(%d)", uint8(n))
}

// ParseNamespaceClose parses "innermost-first" or "open-order".
func ParseNamespaceClose(s string) (NamespaceClose, error) {
	for n, name := range namespaceCloseNames {
		if strings.EqualFold(s, name) {
			return n, nil
		}
	}
	return InnermostFirst, fmt.Errorf("invalid namespace close order %q (expected innermost-first or open-order)", s)
}

// Options configures a generator run.
type Options struct {
	Mode ErrorMode
	// Package is the Go package name of the emitted file.
	Package string
	// NamespaceClose applies to languages with nested namespaces.
	NamespaceClose NamespaceClose
	// Sources are listed in the generated file header.
	Sources []string
}

// PackageName returns opts.Package, or "schema" if it is empty.
func (o Options) PackageName() string {
	if o.Package == "" {
		return "schema"
	}
	return o.Package
}
