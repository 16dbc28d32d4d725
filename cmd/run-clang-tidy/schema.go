// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"

	"run-clang-tidy/internal/config"

	"github.com/spf13/cobra"
)

// newSchemaCommand creates the `run-clang-tidy schema` command.
func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the configuration file",
		Long: `Print the JSON schema of the configuration file and exit.

The output can be referenced from the "$schema" field of a configuration
file to enable completion and validation in editors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.Schema(Version)
			if err != nil {
				return err
			}
			if !bytes.HasSuffix(out, []byte("\n")) {
				out = append(out, '\n')
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
