// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package commands

import (
	"fmt"
	"strings"

	"github.com/Helios-vmg/Xabin/internal/config"
	"github.com/Helios-vmg/Xabin/internal/prompts"
	"github.com/Helios-vmg/Xabin/internal/translate"
	"github.com/spf13/cobra"
)

type compileOptions struct {
	target         string
	mode           string
	output         string
	pkg            string
	namespaceClose string
	watch          bool
	nonInteractive bool
}

func newCompileCmd(translators translate.Register) *cobra.Command {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile <schema>...",
		Short: "Compile schema files into parser source code",
		Long: fmt.Sprintf(`Compile one or more schema files into a single generated source file.

Files ending in .xml, .yaml or .yml are read as tree documents; anything
else is read as xabin language. Types from all files are emitted in
compilation order.

Available targets: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode
  xabin compile records.xabin

  # Generate Go with status-code error handling
  xabin compile records.xabin --target go --mode status -o records_gen.go

  # Generate C++ and regenerate whenever an input changes
  xabin compile net.xabin packet.xml --target cpp -o net.hpp --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, translators, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", fmt.Sprintf("Target language (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Error mode (exceptions or status)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package name for Go output")
	cmd.Flags().StringVar(&opts.namespaceClose, "namespace-close", "", "Nested namespace close order (innermost-first or open-order)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Recompile whenever an input file changes")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts, using defaults for unset options")

	return cmd
}

func runCompile(cmd *cobra.Command, translators translate.Register, sources []string, opts *compileOptions) error {
	if opts.nonInteractive {
		if opts.target == "" {
			opts.target = config.DefaultTarget
		}
		if opts.mode == "" {
			opts.mode = config.DefaultErrorMode
		}
	} else if err := prompts.RunCompileForm(&opts.target, &opts.mode, translators.Available()); err != nil {
		return err
	}

	cfg := &config.Config{
		Sources:        sources,
		Target:         opts.target,
		ErrorMode:      opts.mode,
		Package:        opts.pkg,
		NamespaceClose: opts.namespaceClose,
	}
	j, err := newJob(translators, cfg)
	if err != nil {
		return err
	}
	j.output = opts.output

	if opts.watch {
		return watchJob(cmd.Context(), j, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return j.report(cmd.Context(), cmd.OutOrStdout())
}

// newJob resolves the generator and options named by cfg.
func newJob(translators translate.Register, cfg *config.Config) (*job, error) {
	generator, err := translators.Get(cfg.Target)
	if err != nil {
		return nil, err
	}
	genOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return &job{
		sources:   cfg.Sources,
		generator: generator,
		opts:      genOpts,
	}, nil
}
