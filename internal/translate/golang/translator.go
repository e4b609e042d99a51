// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package golang generates Go parsers built on the pkg/decode runtime.
package golang

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/Helios-vmg/Xabin/internal/translate"
)

//go:embed golang.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("golang.go.tmpl").Funcs(template.FuncMap{
	"join":     strings.Join,
	"order":    func(s string) string { return orderNames[s] },
	"negative": func(s string) string { return negativeNames[s] },
}).ParseFS(tmplFS, "golang.go.tmpl"))

// StatusField is the record member set once a status-mode parse succeeds.
const StatusField = "Ok"

// Translator generates Go source.
type Translator struct{}

// Name returns "go".
func (t *Translator) Name() string {
	return "go"
}

// FileExtension returns the file extension for Go source files.
func (t *Translator) FileExtension() string {
	return ".go"
}

// GenerateDeclarations emits one struct per type.
func (t *Translator) GenerateDeclarations(types []*schema.Type, opts translate.Options) ([]byte, error) {
	return t.execute("declarations", types, opts)
}

// GenerateDefinitions emits the constructors, and Parse methods in status mode.
func (t *Translator) GenerateDefinitions(types []*schema.Type, opts translate.Options) ([]byte, error) {
	return t.execute("definitions", types, opts)
}

// Translate emits a complete, gofmt-formatted Go file.
func (t *Translator) Translate(types []*schema.Type, opts translate.Options) ([]byte, error) {
	return t.execute("file", types, opts)
}

func (t *Translator) execute(name string, types []*schema.Type, opts translate.Options) ([]byte, error) {
	data, err := translate.Prepare(types, &resolver{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}
	if opts.Mode == translate.StatusCode {
		if err := checkStatusField(data); err != nil {
			return nil, err
		}
	}
	data.Extra["Package"] = opts.PackageName()

	if name != "file" && len(data.Types) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}

func checkStatusField(data *translate.SchemaData) error {
	for _, def := range data.Types {
		for _, r := range def.Reads {
			if r.Name == StatusField {
				return fmt.Errorf("type %s: field %s collides with the %s status flag", def.Qualified, r.Field, StatusField)
			}
		}
	}
	return nil
}
