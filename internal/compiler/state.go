// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package compiler

import (
	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/Helios-vmg/Xabin/pkg/decode"
)

type blockKind uint8

const (
	blockNone blockKind = iota
	blockNamespace
	blockType
	// blockScope is a bare begin; it only snapshots the state.
	blockScope
)

// parseState is the snapshot pushed by begin and restored by end.
type parseState struct {
	block     blockKind
	namespace []string
	format    decode.Format
	typ       *schema.Type

	// in-progress declaration
	field    schema.Field
	relation schema.Relation
	length   lengthWord
}

func (s parseState) clone() parseState {
	s.namespace = append([]string(nil), s.namespace...)
	return s
}

func (c *Compiler) pushState() {
	c.stack = append(c.stack, c.state.clone())
	c.logger.Debug().Int("depth", len(c.stack)).Msg("scope opened")
}

// popState closes the current scope, committing it first if it was a type.
func (c *Compiler) popState() error {
	if len(c.stack) == 0 {
		return ErrExtraneousEnd
	}
	if c.state.block == blockType {
		c.commitType(c.state.typ)
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.logger.Debug().Int("depth", len(c.stack)).Msg("scope closed")
	return nil
}

// commitField validates the in-progress field and appends it to the current type.
func (c *Compiler) commitField() error {
	f := c.state.field
	c.state.field = nil

	if !schema.Validate(f) {
		return ErrDatumNotProperlyDefined
	}
	if c.state.typ == nil {
		return ErrFieldOutsideType
	}
	if c.state.typ.Field(f.FieldName()) != nil {
		return ErrDuplicateField
	}
	c.state.typ.AddField(f)
	return nil
}
