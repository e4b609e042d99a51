// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package commands

import (
	"fmt"
	"os"

	"github.com/Helios-vmg/Xabin/internal/translate/cpp"
	"github.com/spf13/cobra"
)

// DecodePackage is the import path of the runtime used by Go output.
const DecodePackage = "github.com/Helios-vmg/Xabin/pkg/decode"

func newRuntimeCmd() *cobra.Command {
	var (
		target string
		output string
	)

	cmd := &cobra.Command{
		Use:   "runtime",
		Short: "Print the support library generated code depends on",
		Long: `Print the runtime support library for a target.

C++ output includes ` + cpp.RuntimeHeader + `, which this command emits.
Go output imports ` + DecodePackage + ` and needs no extra file.`,
		Example: `  xabin runtime --target cpp -o ` + cpp.RuntimeHeader,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch target {
			case "cpp":
			case "go":
				return fmt.Errorf("go output imports %s; there is no runtime file to emit", DecodePackage)
			default:
				return fmt.Errorf("no runtime library for target %q", target)
			}

			data := cpp.Runtime()
			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("failed to write runtime: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "cpp", "Target language")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}
