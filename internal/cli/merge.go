package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/usestring/schemax/internal/export"
	"github.com/usestring/schemax/internal/schemaload"
	"github.com/usestring/schemax/pkg/schema"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge several schema documents into one",
	Long: `Merge unions schema documents extracted from documents of the same kind.
Types and counts union per path; a field absent from any input schema comes
out optional.

Example:
  schemax merge -i a.schema.json -i b.schema.json --name combined -o combined.schema.json`,
	RunE: runMerge,
}

var (
	mergeInputs []string
	mergeOutput string
	mergeName   string
	mergePretty bool
	mergeNodes  bool
)

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringSliceVarP(&mergeInputs, "input", "i", nil, "Schema document (repeatable, at least two)")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Output file (default stdout)")
	mergeCmd.Flags().StringVar(&mergeName, "name", "", "Name for the merged schema (default: first input's name)")
	mergeCmd.Flags().BoolVar(&mergePretty, "pretty", false, "Indent JSON output")
	mergeCmd.Flags().BoolVar(&mergeNodes, "nodes", false, "Carry node listings into the merged document")
	_ = mergeCmd.MarkFlagRequired("input")
}

func runMerge(cmd *cobra.Command, args []string) error {
	if len(mergeInputs) < 2 {
		return fmt.Errorf("merge needs at least two schema documents, got %d", len(mergeInputs))
	}

	schemas := make([]*schema.Schema, 0, len(mergeInputs))
	for _, path := range mergeInputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		s, err := schemaload.Load(path, data)
		if err != nil {
			return err
		}
		schemas = append(schemas, s)
	}

	name := mergeName
	if name == "" {
		name = schemas[0].Name
	}
	merged, err := schema.Merge(name, schemas...)
	if err != nil {
		return err
	}

	slog.Info("schemas merged",
		"name", merged.Name,
		"inputs", len(schemas),
		"fields", merged.NumFields())

	out, err := renderSchema(merged, "json", export.Options{Nodes: mergeNodes, Pretty: mergePretty})
	if err != nil {
		return err
	}
	return writeOutput(mergeOutput, out)
}
