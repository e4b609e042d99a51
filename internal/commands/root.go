// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"os"

	"github.com/Helios-vmg/Xabin/internal/logging"
	"github.com/Helios-vmg/Xabin/internal/translate"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	logFormat string
}

// NewRootCmd creates and returns the root command for the CLI.
// getenv supplies the environment fallbacks for the logging flags; nil
// means os.Getenv.
func NewRootCmd(translators translate.Register, getenv func(string) string) *cobra.Command {
	if getenv == nil {
		getenv = os.Getenv
	}
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "xabin",
		Short: "Compile binary record schemas into parser source code",
		Long: `xabin compiles declarative descriptions of fixed binary record formats
into source code that parses those records from a byte stream.

Schemas are written in the line-oriented xabin language or as XML/YAML
tree documents.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logging.Options{
				Level:  opts.logLevel,
				Format: opts.logFormat,
				Out:    cmd.ErrOrStderr(),
			}.WithEnv(getenv))
			if err != nil {
				return err
			}
			cmd.SetContext(logging.Attach(cmd.Context(), logger))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (env "+logging.EnvLogLevel+")")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: console or json (env "+logging.EnvLogFormat+")")

	rootCmd.AddCommand(
		newCompileCmd(translators),
		newBuildCmd(translators),
		newInitCmd(translators),
		newCheckCmd(),
		newRuntimeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
