// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package golang

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/Helios-vmg/Xabin/internal/compiler"
	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/Helios-vmg/Xabin/internal/translate"
	"github.com/Helios-vmg/Xabin/pkg/decode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerType() *schema.Type {
	big := decode.Format{Order: decode.BigEndian, Negative: decode.OnesComplement}
	t := schema.NewType([]string{"net"}, "header")
	t.AddField(&schema.IntegerField{Name: "magic", Width: 4, Format: decode.Format{}, Requirement: &schema.Requirement{Relation: schema.Eq, Literal: "0x1234"}})
	t.AddField(schema.NewInteger("flags", 1, false, decode.Format{}))
	t.AddField(schema.NewInteger("delta", 2, true, big))
	t.AddField(&schema.StringField{Name: "name", Length: schema.Fixed{Expr: "16"}})
	t.AddField(schema.NewInteger("count", 2, false, decode.Format{}))
	t.AddField(&schema.ArrayField{Name: "samples", Element: schema.NewInteger("samples", 2, true, big), Length: schema.Prestated{Field: "count"}})
	t.AddField(&schema.StringField{Name: "label", Length: schema.NullTerminated{}, Requirement: &schema.Requirement{Relation: schema.Neq, Literal: "bad"}})
	t.AddField(&schema.StringField{Name: "extra", Length: schema.UserSupplied{Param: "extra_len"}})
	t.AddField(&schema.ArrayField{Name: "tail", Element: schema.NewInteger("tail", 1, false, decode.Format{}), Length: schema.NullTerminated{}})
	return t
}

func indexOf(s, pattern string) int {
	loc := regexp.MustCompile(pattern).FindStringIndex(s)
	if loc == nil {
		return -1
	}
	return loc[0]
}

func mustParseGo(t *testing.T, src []byte) {
	t.Helper()
	_, err := parser.ParseFile(token.NewFileSet(), "out.go", src, parser.AllErrors)
	require.NoError(t, err, string(src))
}

// typeCheck compiles src against the real decode package.
func typeCheck(t *testing.T, src []byte) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "out.go", src, parser.AllErrors)
	require.NoError(t, err, string(src))

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	_, err = conf.Check("out", fset, []*ast.File{f}, nil)
	require.NoError(t, err, string(src))
}

func TestTranslate_TypeChecks(t *testing.T) {
	empty := func() *schema.Type { return schema.NewType([]string{"net"}, "empty") }
	tests := map[string][]*schema.Type{
		"empty type":         {empty()},
		"full field matrix":  {headerType()},
		"empty and matrix":   {empty(), headerType()},
		"only user supplied": {userOnlyType()},
	}
	for _, mode := range []translate.ErrorMode{translate.Exceptions, translate.StatusCode} {
		for name, typs := range tests {
			t.Run(mode.String()+"/"+name, func(t *testing.T) {
				out, err := (&Translator{}).Translate(typs, translate.Options{Mode: mode, Package: "out"})
				require.NoError(t, err)
				typeCheck(t, out)
			})
		}
	}
}

func userOnlyType() *schema.Type {
	t := schema.NewType(nil, "blob")
	t.AddField(&schema.StringField{Name: "data", Length: schema.UserSupplied{Param: "type"}})
	t.AddField(&schema.ArrayField{Name: "words", Element: schema.NewInteger("words", 8, true, decode.Format{}), Length: schema.UserSupplied{Param: "r"}})
	return t
}

func TestTranslate_EmptyTypeImports(t *testing.T) {
	out, err := (&Translator{}).Translate([]*schema.Type{schema.NewType(nil, "empty")}, translate.Options{})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"io"`)
	assert.NotContains(t, string(out), "pkg/decode")

	out, err = (&Translator{}).Translate([]*schema.Type{schema.NewType(nil, "empty")}, translate.Options{Mode: translate.StatusCode})
	require.NoError(t, err)
	assert.Contains(t, string(out), "pkg/decode")
}

// TestTranslate_SampleUpToDate regenerates the parsers under internal/sample,
// whose own tests decode known bytes with them.
func TestTranslate_SampleUpToDate(t *testing.T) {
	tests := []struct {
		source string
		output string
		mode   translate.ErrorMode
	}{
		{source: "packet.xabin", output: "packet_gen.go", mode: translate.Exceptions},
		{source: "status.xabin", output: "status_gen.go", mode: translate.StatusCode},
	}
	dir := filepath.Join("internal", "sample")
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			c := compiler.New()
			require.NoError(t, c.Compile(filepath.Join(dir, tt.source)))

			out, err := (&Translator{}).Translate(c.Types(), translate.Options{
				Mode:    tt.mode,
				Package: "sample",
				Sources: []string{tt.source},
			})
			require.NoError(t, err)

			want, err := os.ReadFile(filepath.Join(dir, tt.output))
			require.NoError(t, err)
			assert.Equal(t, strings.Fields(string(want)), strings.Fields(string(out)), "run go generate in %s", dir)
		})
	}
}

func TestTranslate_Exceptions(t *testing.T) {
	out, err := (&Translator{}).Translate([]*schema.Type{headerType()}, translate.Options{
		Package: "wire",
		Sources: []string{"net.xabin"},
	})
	require.NoError(t, err)
	mustParseGo(t, out)

	result := string(out)
	assert.True(t, strings.HasPrefix(result, "// Code generated by xabin. DO NOT EDIT.\n// source: net.xabin\n"))
	assert.Contains(t, result, "package wire")
	assert.Contains(t, result, `"github.com/Helios-vmg/Xabin/pkg/decode"`)
	assert.Contains(t, result, "// NetHeader is the net::header record.")
	assert.Regexp(t, `Magic\s+uint32`, result)
	assert.Regexp(t, `Count\s+uint16`, result)
	assert.Regexp(t, `Delta\s+int16`, result)
	assert.Regexp(t, `Samples\s+\[\]int16`, result)
	assert.NotContains(t, result, "Ok ")

	assert.Contains(t, result, "func NewNetHeader(r io.Reader, extraLen int) *NetHeader {")
	assert.Contains(t, result, "t.Magic = decode.MustInt[uint32](r, decode.LittleEndian, decode.TwosComplement)")
	assert.Contains(t, result, "if !(t.Magic == 0x1234) {\n\t\tpanic(decode.Fail(decode.RequirementNotMet, \"magic\"))")
	assert.Contains(t, result, "t.Delta = decode.MustInt[int16](r, decode.BigEndian, decode.OnesComplement)")
	assert.Contains(t, result, "t.Name = decode.MustSizedString(r, 16)")
	assert.Contains(t, result, "t.Samples = decode.MustArray[int16](r, int(t.Count), decode.BigEndian, decode.OnesComplement)")
	assert.Contains(t, result, "t.Label = decode.MustCString(r)")
	assert.Contains(t, result, `if !(t.Label != "bad") {`)
	assert.Contains(t, result, "t.Extra = decode.MustSizedString(r, extraLen)")
	assert.Contains(t, result, "t.Tail = decode.MustTerminatedArray[uint8](r, decode.LittleEndian, decode.TwosComplement)")

	// reads follow declaration order
	assert.Less(t, strings.Index(result, "t.Magic = "), strings.Index(result, "t.Flags = "))
	assert.Less(t, strings.Index(result, "t.Flags = "), strings.Index(result, "t.Delta = "))
	assert.Less(t, strings.Index(result, "t.Label = "), strings.Index(result, "t.Extra = "))
}

func TestTranslate_StatusCode(t *testing.T) {
	out, err := (&Translator{}).Translate([]*schema.Type{headerType()}, translate.Options{Mode: translate.StatusCode})
	require.NoError(t, err)
	mustParseGo(t, out)

	result := string(out)
	assert.Contains(t, result, "package schema")
	assert.Regexp(t, `Ok\s+bool`, result)
	assert.Contains(t, result, "func NewNetHeader(r io.Reader, extraLen int) (*NetHeader, decode.Status) {")
	assert.Contains(t, result, "return t, t.Parse(r, extraLen)")
	assert.Contains(t, result, "func (t *NetHeader) Parse(r io.Reader, extraLen int) decode.Status {")
	assert.Contains(t, result, "if s := decode.ReadInt(&t.Magic, r, decode.LittleEndian, decode.TwosComplement); s != decode.Success {\n\t\treturn s\n\t}")
	assert.Contains(t, result, "if !(t.Magic == 0x1234) {\n\t\treturn decode.RequirementNotMet\n\t}")
	assert.Contains(t, result, "decode.ReadArray(&t.Samples, r, int(t.Count), decode.BigEndian, decode.OnesComplement)")
	assert.Contains(t, result, "decode.ReadCString(&t.Label, r)")
	assert.Contains(t, result, "decode.ReadTerminatedArray(&t.Tail, r, decode.LittleEndian, decode.TwosComplement)")
	assert.Contains(t, result, "t.Ok = true\n\treturn decode.Success")
	assert.NotContains(t, result, "panic(")
}

func TestGenerateDeclarations_Grouping(t *testing.T) {
	typ := schema.NewType(nil, "T")
	typ.AddField(schema.NewInteger("a", 1, false, decode.Format{}))
	typ.AddField(schema.NewInteger("b", 4, false, decode.Format{}))
	typ.AddField(schema.NewInteger("c", 2, false, decode.Format{}))
	typ.AddField(schema.NewInteger("d", 4, false, decode.Format{}))
	typ.AddField(schema.NewInteger("e", 4, true, decode.Format{}))

	out, err := (&Translator{}).GenerateDeclarations([]*schema.Type{typ}, translate.Options{})
	require.NoError(t, err)

	result := string(out)
	assert.Contains(t, result, "type T struct {")
	b := indexOf(result, `B, D\s+uint32`)
	e := indexOf(result, `E\s+int32`)
	c := indexOf(result, `C\s+uint16`)
	a := indexOf(result, `A\s+uint8`)
	require.True(t, b >= 0 && e >= 0 && c >= 0 && a >= 0, result)
	assert.Less(t, b, e)
	assert.Less(t, e, c)
	assert.Less(t, c, a)
	assert.NotContains(t, result, "func ")
}

func TestGenerateDefinitions_OnlyFunctions(t *testing.T) {
	out, err := (&Translator{}).GenerateDefinitions([]*schema.Type{headerType()}, translate.Options{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "func NewNetHeader(")
	assert.NotContains(t, string(out), "type NetHeader struct")
}

func TestTranslate_MultipleTypesInOrder(t *testing.T) {
	first := schema.NewType(nil, "first")
	first.AddField(schema.NewInteger("x", 1, false, decode.Format{}))
	second := schema.NewType([]string{"a", "b"}, "second")

	out, err := (&Translator{}).Translate([]*schema.Type{first, second}, translate.Options{})
	require.NoError(t, err)
	mustParseGo(t, out)

	result := string(out)
	assert.Less(t, strings.Index(result, "type First struct"), strings.Index(result, "type ABSecond struct"))
	assert.Less(t, strings.Index(result, "type ABSecond struct"), strings.Index(result, "func NewFirst("))
	assert.Contains(t, result, "func NewABSecond(r io.Reader) *ABSecond {")
}

func TestTranslate_NoTypes(t *testing.T) {
	out, err := (&Translator{}).Translate(nil, translate.Options{Package: "empty"})
	require.NoError(t, err)
	mustParseGo(t, out)
	assert.NotContains(t, string(out), "import")

	decls, err := (&Translator{}).GenerateDeclarations(nil, translate.Options{})
	require.NoError(t, err)
	assert.Empty(t, decls)
}

func TestTranslate_StatusFieldCollision(t *testing.T) {
	typ := schema.NewType(nil, "T")
	typ.AddField(schema.NewInteger("ok", 1, false, decode.Format{}))

	_, err := (&Translator{}).Translate([]*schema.Type{typ}, translate.Options{Mode: translate.StatusCode})
	assert.ErrorContains(t, err, "collides with the Ok status flag")

	_, err = (&Translator{}).Translate([]*schema.Type{typ}, translate.Options{})
	assert.NoError(t, err)
}

func TestResolver(t *testing.T) {
	r := &resolver{}
	assert.Equal(t, "uint64", r.IntegerType(8, false))
	assert.Equal(t, "int8", r.IntegerType(1, true))
	assert.Equal(t, "r_", r.FormatParamName("r"))
	assert.Equal(t, "type_", r.FormatParamName("type"))
	assert.Equal(t, "size", r.FormatParamName("size"))
	assert.Equal(t, `t.Name == "x"`, r.CheckExpr("Name", true, schema.Requirement{Relation: schema.Eq, Literal: `"x"`}))
	assert.Equal(t, `t.Name < "abc"`, r.CheckExpr("Name", true, schema.Requirement{Relation: schema.Lt, Literal: "abc"}))
	assert.Equal(t, "t.N >= -3", r.CheckExpr("N", false, schema.Requirement{Relation: schema.Geq, Literal: "-3"}))
}
