// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package schema

// Validate reports whether f is completely defined. Integers always are;
// strings and arrays need a LengthSpec.
func Validate(f Field) bool {
	switch f := f.(type) {
	case *IntegerField:
		return true
	case *StringField:
		return f.Length != nil
	case *ArrayField:
		return f.Length != nil && f.Element != nil
	default:
		return false
	}
}

// SetLength attaches l to f. Integers have a fixed size, so the call is a
// no-op for them and reports false.
func SetLength(f Field, l LengthSpec) bool {
	switch f := f.(type) {
	case *StringField:
		f.Length = l
		return true
	case *ArrayField:
		f.Length = l
		return true
	default:
		return false
	}
}

// AcceptsRequirement reports whether a require clause may be attached to f.
func AcceptsRequirement(f Field) bool {
	switch f.(type) {
	case *IntegerField, *StringField:
		return true
	default:
		return false
	}
}

// SetRequirement attaches r to f and reports whether f accepts requirements.
func SetRequirement(f Field, r *Requirement) bool {
	switch f := f.(type) {
	case *IntegerField:
		f.Requirement = r
		return true
	case *StringField:
		f.Requirement = r
		return true
	default:
		return false
	}
}

// RequirementOf returns the requirement attached to f, if any.
func RequirementOf(f Field) *Requirement {
	switch f := f.(type) {
	case *IntegerField:
		return f.Requirement
	case *StringField:
		return f.Requirement
	default:
		return nil
	}
}

// IsIdentifier reports whether s is a valid field, type or namespace name:
// a letter or underscore followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// IntegerKind is the width and signedness named by an integer keyword.
type IntegerKind struct {
	Width  int
	Signed bool
}

var integerKinds = map[string]IntegerKind{
	"u8":  {1, false},
	"s8":  {1, true},
	"u16": {2, false},
	"s16": {2, true},
	"u32": {4, false},
	"s32": {4, true},
	"u64": {8, false},
	"s64": {8, true},
}

// LookupIntegerKind maps an integer keyword such as "u16" or "s64" to its kind.
func LookupIntegerKind(word string) (IntegerKind, bool) {
	k, ok := integerKinds[word]
	return k, ok
}

// Keyword returns the domain-language keyword for the kind, e.g. "s32".
func (k IntegerKind) Keyword() string {
	prefix := "u"
	if k.Signed {
		prefix = "s"
	}
	switch k.Width {
	case 1:
		return prefix + "8"
	case 2:
		return prefix + "16"
	case 4:
		return prefix + "32"
	default:
		return prefix + "64"
	}
}
