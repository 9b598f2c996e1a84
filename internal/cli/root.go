// Package cli wires the schemax commands: extracting schemas from XML and
// JSON documents, validating documents against them, and working with the
// serialized schema files.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/usestring/schemax/internal/config"
	"github.com/usestring/schemax/internal/logging"
)

var cfg = config.Load()

var logCleanup func() error

var rootCmd = &cobra.Command{
	Use:   "schemax",
	Short: "Structural schema inference for XML and JSON documents",
	Long: `schemax walks XML and JSON documents, infers the structural schema they
follow, and validates other documents against it.

A schema records every observed path with its value types, occurrence count
and optionality. Schemas serialize to JSON and can be converted to YAML,
CSV node listings, an XSD outline, or JSON Schema.

Exit codes:
  0 - success
  1 - error (bad input, malformed document, failed validation)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cleanup, err := logging.Setup(logging.FromConfig(cfg))
		if err != nil {
			return err
		}
		logCleanup = cleanup
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
