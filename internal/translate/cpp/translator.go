// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package cpp generates C++ parsers that read from std::istream.
package cpp

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/Helios-vmg/Xabin/internal/translate"
)

// RuntimeHeader is the name generated files include the runtime under.
const RuntimeHeader = "xabin_runtime.hpp"

//go:embed cpp.hpp.tmpl xabin_runtime.hpp
var tmplFS embed.FS

var tmpl = template.Must(template.New("cpp.hpp.tmpl").Funcs(template.FuncMap{
	"join": strings.Join,
}).ParseFS(tmplFS, "cpp.hpp.tmpl"))

// Runtime returns the C++ runtime header the generated code depends on.
func Runtime() []byte {
	b, err := tmplFS.ReadFile(RuntimeHeader)
	if err != nil {
		panic(err)
	}
	return b
}

// Translator generates C++ source.
type Translator struct{}

// Name returns "cpp".
func (t *Translator) Name() string {
	return "cpp"
}

// FileExtension returns the file extension for C++ headers.
func (t *Translator) FileExtension() string {
	return ".hpp"
}

// GenerateDeclarations emits one struct per type, wrapped in its namespaces.
func (t *Translator) GenerateDeclarations(types []*schema.Type, opts translate.Options) ([]byte, error) {
	return t.execute("declarations", types, opts)
}

// GenerateDefinitions emits the inline constructor definitions.
func (t *Translator) GenerateDefinitions(types []*schema.Type, opts translate.Options) ([]byte, error) {
	return t.execute("definitions", types, opts)
}

// Translate emits a header including the runtime, then declarations, then
// definitions.
func (t *Translator) Translate(types []*schema.Type, opts translate.Options) ([]byte, error) {
	return t.execute("file", types, opts)
}

func (t *Translator) execute(name string, types []*schema.Type, opts translate.Options) ([]byte, error) {
	data, err := translate.Prepare(types, &resolver{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}
	data.Extra["Runtime"] = RuntimeHeader

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
