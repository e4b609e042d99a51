// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package commands

import (
	"github.com/Helios-vmg/Xabin/internal/session"
	"github.com/Helios-vmg/Xabin/internal/translate"
	"github.com/spf13/cobra"
)

func newBuildCmd(translators translate.Register) *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the project described by xabin.yaml",
		Long: `Compile every source listed in xabin.yaml into the configured output.
The output file extension is chosen by the target.`,
		Example: `  # Build the project in the current directory
  xabin build

  # Rebuild whenever a source changes
  xabin build --watch`,
		Args:    cobra.NoArgs,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			j, err := newJob(translators, ctx.Config)
			if err != nil {
				return err
			}
			j.sources = ctx.Sources()
			j.output = ctx.OutputPath(j.generator.FileExtension())

			if watchMode {
				return watchJob(cmd.Context(), j, cmd.OutOrStdout(), cmd.ErrOrStderr())
			}
			return j.report(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Rebuild whenever a source file changes")

	return cmd
}
