// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package compiler

import (
	"github.com/Helios-vmg/Xabin/internal/schema"
)

// state is a node of the per-line state machine. Each transition consumes
// exactly one word.
type state uint8

const (
	stateLineStart state = iota
	stateFormat
	stateBegin
	stateNamespaceName
	stateTypeName
	stateArrayElement
	stateMemberName
	stateMemberNameDone
	stateRequireOperator
	stateRequireValue
	stateLengthStart
	stateLengthValue
	stateLengthName
	// stateLineDone accepts no further words.
	stateLineDone
)

// lineEndErrors lists the states that need at least one more word. Running
// out of words in any other state ends the line successfully.
var lineEndErrors = map[state]error{
	stateNamespaceName:   ErrExpectedIdentifier,
	stateTypeName:        ErrExpectedIdentifier,
	stateArrayElement:    ErrExpectedElementType,
	stateMemberName:      ErrExpectedIdentifier,
	stateRequireOperator: ErrExpectedRelationalOperator,
	stateRequireValue:    ErrExpectedValue,
	stateLengthStart:     ErrExpectedLengthSpecification,
	stateLengthValue:     ErrExpectedLengthValue,
	stateLengthName:      ErrExpectedLengthName,
}

// step consumes word in state s and returns the next state.
func (c *Compiler) step(s state, word string) (state, error) {
	switch s {
	case stateLineStart:
		return c.lineStart(word)
	case stateFormat:
		return c.format(word)
	case stateBegin:
		return c.begin(word)
	case stateNamespaceName:
		return c.namespaceName(word)
	case stateTypeName:
		return c.typeName(word)
	case stateArrayElement:
		return c.arrayElement(word)
	case stateMemberName:
		return c.memberName(word)
	case stateMemberNameDone:
		return c.memberNameDone(word)
	case stateRequireOperator:
		return c.requireOperator(word)
	case stateRequireValue:
		return c.requireValue(word)
	case stateLengthStart:
		return c.lengthStart(word)
	case stateLengthValue, stateLengthName:
		return c.lengthArgument(word)
	default:
		return s, ErrSyntax
	}
}

func (c *Compiler) lineStart(word string) (state, error) {
	w, ok := lineStartWords[word]
	if !ok {
		return stateLineStart, ErrSyntax
	}
	switch w {
	case wordFormat:
		return stateFormat, nil
	case wordBegin:
		c.pushState()
		c.state.block = blockScope
		return stateBegin, nil
	case wordEnd:
		return stateLineDone, c.popState()
	case wordInteger:
		kind, _ := schema.LookupIntegerKind(word)
		c.state.field = schema.NewInteger("", kind.Width, kind.Signed, c.state.format)
		c.eol = c.commitField
		return stateMemberName, nil
	case wordString:
		c.state.field = schema.NewString("")
		c.eol = c.commitField
		return stateMemberName, nil
	case wordArray:
		return stateArrayElement, nil
	}
	return stateLineStart, ErrSyntax
}

// format mutates the current numeric format in place. Fields created
// earlier keep the copy they were given.
func (c *Compiler) format(word string) (state, error) {
	if order, ok := byteOrderWords[word]; ok {
		c.state.format.Order = order
		return stateFormat, nil
	}
	if neg, ok := negativeWords[word]; ok {
		c.state.format.Negative = neg
		return stateFormat, nil
	}
	return stateFormat, ErrSyntax
}

func (c *Compiler) begin(word string) (state, error) {
	switch word {
	case "namespace":
		return stateNamespaceName, nil
	case "type":
		return stateTypeName, nil
	}
	return stateBegin, ErrSyntax
}

func (c *Compiler) namespaceName(word string) (state, error) {
	if !schema.IsIdentifier(word) {
		return stateNamespaceName, ErrInvalidIdentifier
	}
	c.state.namespace = append(c.state.namespace, word)
	c.state.block = blockNamespace
	return stateLineDone, nil
}

func (c *Compiler) typeName(word string) (state, error) {
	if !schema.IsIdentifier(word) {
		return stateTypeName, ErrInvalidIdentifier
	}
	c.state.typ = schema.NewType(c.state.namespace, word)
	c.state.block = blockType
	return stateLineDone, nil
}

func (c *Compiler) arrayElement(word string) (state, error) {
	kind, ok := schema.LookupIntegerKind(word)
	if !ok {
		return stateArrayElement, ErrExpectedElementType
	}
	elem := schema.NewInteger("", kind.Width, kind.Signed, c.state.format)
	c.state.field = schema.NewArray("", elem)
	c.eol = c.commitField
	return stateMemberName, nil
}

func (c *Compiler) memberName(word string) (state, error) {
	if !schema.IsIdentifier(word) {
		return stateMemberName, ErrInvalidIdentifier
	}
	c.state.field.SetName(word)
	if a, ok := c.state.field.(*schema.ArrayField); ok {
		a.Element.Name = word
	}
	return stateMemberNameDone, nil
}

func (c *Compiler) memberNameDone(word string) (state, error) {
	switch word {
	case "require":
		if !schema.AcceptsRequirement(c.state.field) {
			return stateMemberNameDone, ErrRequireOnlyForSimpleValues
		}
		return stateRequireOperator, nil
	case "length":
		return stateLengthStart, nil
	}
	return stateMemberNameDone, ErrUnknownToken
}

func (c *Compiler) requireOperator(word string) (state, error) {
	rel, ok := relationWords[word]
	if !ok {
		return stateRequireOperator, ErrExpectedRelationalOperator
	}
	c.state.relation = rel
	return stateRequireValue, nil
}

func (c *Compiler) requireValue(word string) (state, error) {
	schema.SetRequirement(c.state.field, &schema.Requirement{
		Relation: c.state.relation,
		Literal:  word,
	})
	return stateMemberNameDone, nil
}

func (c *Compiler) lengthStart(word string) (state, error) {
	kind, ok := lengthWords[word]
	if !ok {
		return stateLengthStart, ErrInvalidLengthSpecification
	}
	c.state.length = kind
	switch kind {
	case lengthFixed:
		return stateLengthValue, nil
	case lengthSeen, lengthUser:
		return stateLengthName, nil
	default:
		schema.SetLength(c.state.field, schema.NullTerminated{})
		return stateMemberNameDone, nil
	}
}

// lengthArgument completes a fixed, seen or user length.
func (c *Compiler) lengthArgument(word string) (state, error) {
	var l schema.LengthSpec
	switch c.state.length {
	case lengthFixed:
		l = schema.Fixed{Expr: word}
	case lengthSeen:
		l = schema.Prestated{Field: word}
	default:
		l = schema.UserSupplied{Param: word}
	}
	schema.SetLength(c.state.field, l)
	return stateMemberNameDone, nil
}
