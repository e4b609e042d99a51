// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package compiler

import (
	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/Helios-vmg/Xabin/pkg/decode"
)

type lineWord uint8

const (
	wordFormat lineWord = iota
	wordBegin
	wordEnd
	wordInteger
	wordString
	wordArray
)

var lineStartWords = map[string]lineWord{
	"format": wordFormat,
	"begin":  wordBegin,
	"end":    wordEnd,
	"u8":     wordInteger,
	"u16":    wordInteger,
	"u32":    wordInteger,
	"u64":    wordInteger,
	"s8":     wordInteger,
	"s16":    wordInteger,
	"s32":    wordInteger,
	"s64":    wordInteger,
	"string": wordString,
	"array":  wordArray,
}

var byteOrderWords = map[string]decode.ByteOrder{
	"little": decode.LittleEndian,
	"big":    decode.BigEndian,
}

var negativeWords = map[string]decode.NegativeEncoding{
	"twoscomp":      decode.TwosComplement,
	"onescomp":      decode.OnesComplement,
	"signbit":       decode.SignMagnitude,
	"excesskbiased": decode.ExcessK,
}

var relationWords = map[string]schema.Relation{
	"==": schema.Eq,
	"!=": schema.Neq,
	"<":  schema.Lt,
	">":  schema.Gt,
	"<=": schema.Leq,
	">=": schema.Geq,
}

// relationAttributes are the attribute spellings used by tree documents.
var relationAttributes = map[string]schema.Relation{
	"eq":  schema.Eq,
	"neq": schema.Neq,
	"lt":  schema.Lt,
	"gt":  schema.Gt,
	"leq": schema.Leq,
	"geq": schema.Geq,
}

type lengthWord uint8

const (
	lengthFixed lengthWord = iota
	lengthSeen
	lengthUser
	lengthCStyle
)

var lengthWords = map[string]lengthWord{
	"fixed":  lengthFixed,
	"seen":   lengthSeen,
	"user":   lengthUser,
	"cstyle": lengthCStyle,
}
