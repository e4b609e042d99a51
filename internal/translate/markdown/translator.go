// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/Helios-vmg/Xabin/internal/translate"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"join":     strings.Join,
	"inc":      func(i int) int { return i + 1 },
	"typeCell": typeCell,
	"encoding": encodingCell,
	"length":   lengthCell,
}

var tmpl = template.Must(template.New("markdown.md.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.md.tmpl"))

// Translator generates markdown documentation of record formats.
type Translator struct{}

// Name returns "markdown".
func (t *Translator) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// GenerateDeclarations emits one member table per record, in layout order.
func (t *Translator) GenerateDeclarations(types []*schema.Type, opts translate.Options) ([]byte, error) {
	return execute("declarations", types, opts)
}

// GenerateDefinitions emits one read-order table per record.
func (t *Translator) GenerateDefinitions(types []*schema.Type, opts translate.Options) ([]byte, error) {
	return execute("definitions", types, opts)
}

// Translate emits a complete document.
func (t *Translator) Translate(types []*schema.Type, opts translate.Options) ([]byte, error) {
	return execute("file", types, opts)
}

func execute(name string, types []*schema.Type, opts translate.Options) ([]byte, error) {
	data, err := translate.Prepare(types, &resolver{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out := bytes.TrimSpace(buf.Bytes())
	if len(out) == 0 {
		return nil, nil
	}
	return append(out, '\n'), nil
}

func typeCell(r translate.Read) string {
	if r.IsArray() {
		return r.Type + "[]"
	}
	return r.Type
}

// encodingCell omits the negative encoding of unsigned values.
func encodingCell(r translate.Read) string {
	switch {
	case r.IsString():
		return ""
	case r.Signed:
		return r.Order + ", " + r.Negative
	default:
		return r.Order
	}
}

func lengthCell(r translate.Read) string {
	switch r.Length {
	case translate.LengthFixed:
		return "`" + escapeCell(r.LengthExpr) + "`"
	case translate.LengthPrestated:
		return "field `" + strings.TrimPrefix(r.LengthExpr, "$") + "`"
	case translate.LengthUser:
		return "parameter `" + strings.TrimPrefix(r.LengthExpr, "@") + "`"
	case translate.LengthTerminated:
		return "zero-terminated"
	default:
		return ""
	}
}
