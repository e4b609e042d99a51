// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package compiler

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDomainLanguage compiles domain-language text read from r. name is used
// in error messages only.
//
// Compilation stops at the first error. Types whose scope closed before the
// failing line stay committed.
func (c *Compiler) ParseDomainLanguage(name string, r io.Reader) error {
	depth := len(c.stack)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if isBlank(text) || isComment(text) {
			continue
		}
		if word, err := c.processLine(strings.Fields(text)); err != nil {
			return &LineError{Path: name, Line: line, Word: word, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFile, err)
	}
	if len(c.stack) > depth {
		return &LineError{Path: name, Line: line, Err: ErrUnterminatedScope}
	}
	return nil
}

func isBlank(line string) bool {
	return strings.TrimLeft(line, " \t\r") == ""
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), ";")
}

// processLine runs the state machine over one line's words. On failure it
// returns the offending word, or "" if the line ended too early.
func (c *Compiler) processLine(words []string) (string, error) {
	c.eol = nil
	defer func() { c.eol = nil }()

	s := stateLineStart
	for _, w := range words {
		next, err := c.step(s, w)
		if err != nil {
			c.state.field = nil
			return w, err
		}
		s = next
	}
	if err, ok := lineEndErrors[s]; ok {
		c.state.field = nil
		return "", err
	}
	if c.eol != nil {
		return "", c.eol()
	}
	return "", nil
}
