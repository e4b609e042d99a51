// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/Helios-vmg/Xabin/internal/commands"
	"github.com/Helios-vmg/Xabin/internal/translate"
	"github.com/Helios-vmg/Xabin/internal/translate/cpp"
	"github.com/Helios-vmg/Xabin/internal/translate/golang"
	"github.com/Helios-vmg/Xabin/internal/translate/jsonschema"
	"github.com/Helios-vmg/Xabin/internal/translate/markdown"
)

// RegisterTranslators returns every code generator the CLI offers.
func RegisterTranslators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&golang.Translator{})
	translators.Add(&cpp.Translator{})
	translators.Add(&jsonschema.Translator{})
	translators.Add(&markdown.Translator{})
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(RegisterTranslators(), getenv)
	return rootCmd.ExecuteContext(ctx)
}
