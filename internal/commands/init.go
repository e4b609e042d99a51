// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Helios-vmg/Xabin/internal/config"
	"github.com/Helios-vmg/Xabin/internal/prompts"
	"github.com/Helios-vmg/Xabin/internal/session"
	"github.com/Helios-vmg/Xabin/internal/translate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	sources        []string
	target         string
	mode           string
	output         string
	pkg            string
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new xabin project",
		Long:  `Initialize a new xabin project with a xabin.yaml configuration file.`,
		Example: `  # Interactive mode
  xabin init

  # Non-interactive
  xabin init --source schema/net.xabin --target cpp --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.sources, "source", "s", nil, "Schema source file (repeatable)")
	cmd.Flags().StringVarP(&opts.target, "target", "t", config.DefaultTarget, fmt.Sprintf("Target language (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", config.DefaultErrorMode, "Error mode (exceptions or status)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "Output path without extension")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package name for Go output")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --source)")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("xabin.yaml already exists; project already initialized")
	}

	if opts.nonInteractive {
		if len(opts.sources) == 0 {
			return errors.New("non-interactive mode requires --source")
		}
	} else {
		answers := prompts.InitAnswers{
			Sources:   strings.Join(opts.sources, ", "),
			Target:    opts.target,
			ErrorMode: opts.mode,
			Output:    opts.output,
			Package:   opts.pkg,
		}
		if err := prompts.RunInitForm(&answers, translators.Available()); err != nil {
			return err
		}
		opts.sources = prompts.SplitList(answers.Sources)
		opts.target = answers.Target
		opts.mode = answers.ErrorMode
		opts.output = answers.Output
		opts.pkg = answers.Package
	}

	if _, err := translators.Get(opts.target); err != nil {
		return err
	}

	cfg := config.Config{
		Version:   config.CurrentConfigVersion,
		Sources:   opts.sources,
		Target:    opts.target,
		ErrorMode: opts.mode,
		Output:    opts.output,
		Package:   opts.pkg,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Sources", Value: strings.Join(cfg.Sources, ", ")},
		{Label: "Target", Value: cfg.Target},
	}, "Initialization completed")

	return nil
}
