// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package translate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Helios-vmg/Xabin/internal/schema"
)

// Prepare converts compiled types into a SchemaData ready for template
// execution. Types keep their compilation order.
func Prepare(types []*schema.Type, resolver TypeResolver, opts Options) (*SchemaData, error) {
	data := &SchemaData{
		Mode:    opts.Mode,
		Sources: opts.Sources,
		Extra:   make(map[string]any),
	}
	for _, t := range types {
		def, err := prepareType(t, resolver, opts)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", t.QualifiedName("::"), err)
		}
		data.Types = append(data.Types, def)
	}
	return data, nil
}

func prepareType(t *schema.Type, resolver TypeResolver, opts Options) (TypeDef, error) {
	def := TypeDef{
		Name:      resolver.FormatTypeName(t.Namespace, t.Name),
		Namespace: t.Namespace,
		Close:     closeOrder(t.Namespace, opts.NamespaceClose),
		Qualified: t.QualifiedName("::"),
		Schema:    t,
	}

	groups, others := Layout(t.Fields)
	for _, g := range groups {
		names := make([]string, len(g.Fields))
		for i, f := range g.Fields {
			names[i] = resolver.FormatFieldName(f.Name)
		}
		def.Groups = append(def.Groups, Group{Type: resolver.IntegerType(g.Width, g.Signed), Names: names})
	}
	for _, f := range others {
		def.Members = append(def.Members, Member{
			Name: resolver.FormatFieldName(f.FieldName()),
			Type: memberType(f, resolver),
		})
	}

	seen := make(map[string]string, len(t.Fields))
	for _, f := range t.Fields {
		r, err := prepareRead(t, f, resolver)
		if err != nil {
			return TypeDef{}, err
		}
		if prev, ok := seen[r.Name]; ok {
			return TypeDef{}, fmt.Errorf("fields %s and %s both map to %s", prev, r.Field, r.Name)
		}
		seen[r.Name] = r.Field
		if r.Length == LengthUser && !slices.Contains(def.Params, r.LengthExpr) {
			def.Params = append(def.Params, r.LengthExpr)
		}
		def.Reads = append(def.Reads, r)
	}
	return def, nil
}

func memberType(f schema.Field, resolver TypeResolver) string {
	switch f := f.(type) {
	case *schema.StringField:
		return resolver.StringType()
	case *schema.ArrayField:
		return resolver.ArrayType(resolver.IntegerType(f.Element.Width, f.Element.Signed))
	default:
		panic(fmt.Sprintf("translate: unexpected field %T", f))
	}
}

func prepareRead(t *schema.Type, f schema.Field, resolver TypeResolver) (Read, error) {
	r := Read{
		Field: f.FieldName(),
		Name:  resolver.FormatFieldName(f.FieldName()),
	}

	var length schema.LengthSpec
	switch f := f.(type) {
	case *schema.IntegerField:
		r.Kind = ReadInteger
		setInteger(&r, f, resolver)
	case *schema.StringField:
		r.Kind = ReadString
		r.Type = resolver.StringType()
		length = f.Length
	case *schema.ArrayField:
		r.Kind = ReadArray
		setInteger(&r, f.Element, resolver)
		length = f.Length
	}

	if length != nil {
		if err := setLength(&r, t, f, length, resolver); err != nil {
			return Read{}, err
		}
	}

	if req := schema.RequirementOf(f); req != nil {
		r.Check = resolver.CheckExpr(r.Name, r.Kind == ReadString, *req)
	}
	return r, nil
}

func setInteger(r *Read, f *schema.IntegerField, resolver TypeResolver) {
	r.Type = resolver.IntegerType(f.Width, f.Signed)
	r.Width = f.Width
	r.Bits = f.Bits()
	r.Signed = f.Signed
	r.Order = f.Format.Order.String()
	r.Negative = f.Format.Negative.String()
}

func setLength(r *Read, t *schema.Type, f schema.Field, l schema.LengthSpec, resolver TypeResolver) error {
	switch l := l.(type) {
	case schema.Fixed:
		r.Length = LengthFixed
		r.LengthExpr = resolver.LengthExpr(l)
	case schema.Prestated:
		if err := checkPrestated(t, f, l.Field); err != nil {
			return err
		}
		r.Length = LengthPrestated
		r.LengthExpr = resolver.LengthExpr(l)
	case schema.UserSupplied:
		r.Length = LengthUser
		r.LengthExpr = resolver.FormatParamName(l.Param)
	case schema.NullTerminated:
		r.Length = LengthTerminated
	}
	return nil
}

// checkPrestated requires the length field to be an integer read before f.
func checkPrestated(t *schema.Type, f schema.Field, name string) error {
	for _, prev := range t.Fields {
		if prev == f {
			break
		}
		if prev.FieldName() != name {
			continue
		}
		if _, ok := prev.(*schema.IntegerField); !ok {
			return fmt.Errorf("length of %s: field %s is not an integer", f.FieldName(), name)
		}
		return nil
	}
	return fmt.Errorf("length of %s: no integer field %s is read before it", f.FieldName(), name)
}

func closeOrder(ns []string, order NamespaceClose) []string {
	out := append([]string(nil), ns...)
	if order == InnermostFirst {
		slices.Reverse(out)
	}
	return out
}

// PascalCase converts a snake_case or kebab-case identifier to PascalCase.
// It handles common acronyms (ID, URL, HTTP, CRC, ...).
func PascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	if sb.Len() == 0 {
		return "X"
	}
	return sb.String()
}

// CamelCase is PascalCase with a lower-case first letter.
func CamelCase(s string) string {
	p := PascalCase(s)
	for _, k := range acronymKeys {
		if v := acronyms[k]; strings.HasPrefix(p, v) {
			return k + p[len(v):]
		}
	}
	return strings.ToLower(p[:1]) + p[1:]
}

var acronyms = map[string]string{
	"id":    "ID",
	"url":   "URL",
	"http":  "HTTP",
	"https": "HTTPS",
	"api":   "API",
	"ip":    "IP",
	"tcp":   "TCP",
	"udp":   "UDP",
	"crc":   "CRC",
	"cpu":   "CPU",
	"uri":   "URI",
}

// acronymKeys holds the keys of acronyms, longest first, so CamelCase
// lowers "HTTPS" whole instead of stopping at "HTTP".
var acronymKeys = func() []string {
	keys := make([]string, 0, len(acronyms))
	for k := range acronyms {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return keys
}()
