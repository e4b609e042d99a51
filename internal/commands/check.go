// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package commands

import (
	"fmt"

	"github.com/Helios-vmg/Xabin/internal/logging"
	"github.com/Helios-vmg/Xabin/internal/prompts"
	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <schema>...",
		Short: "Validate schema files without generating code",
		Long:  `Compile schema files and list the types they define.`,
		Example: `  xabin check net.xabin packet.xml`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := compileSources(*logging.From(cmd.Context()), args)
			if err != nil {
				return err
			}

			fields := make([]prompts.ResultField, len(types))
			for i, t := range types {
				fields[i] = prompts.ResultField{
					Label: t.QualifiedName("::"),
					Value: describeType(t),
				}
			}
			prompts.PrintResult(cmd.OutOrStdout(), fields, fmt.Sprintf("%d type(s) OK", len(types)))
			return nil
		},
	}
	return cmd
}

func describeType(t *schema.Type) string {
	var ints, strs, arrays int
	for _, f := range t.Fields {
		switch f.(type) {
		case *schema.IntegerField:
			ints++
		case *schema.StringField:
			strs++
		case *schema.ArrayField:
			arrays++
		}
	}
	return fmt.Sprintf("%d field(s): %d integer, %d string, %d array", len(t.Fields), ints, strs, arrays)
}
