package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/usestring/schemax/internal/export"
	"github.com/usestring/schemax/pkg/schema"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Infer a schema from one or more documents",
	Long: `Extract walks each input document and infers the structural schema it
follows. Several inputs of the same kind are extracted concurrently and
merged into one schema, with fields absent from some inputs marked optional.

Examples:
  # Extract from a JSON file, print the schema document
  schemax extract -i data.json

  # Extract from several XML files into one schema file
  schemax extract -i a.xml -i b.xml -o combined.schema.json

  # Render the inferred structure as JSON Schema
  schemax extract -i data.json --format jsonschema --pretty`,
	RunE: runExtract,
}

var (
	extractInputs  []string
	extractOutput  string
	extractFormat  string
	extractKind    string
	extractName    string
	extractDisplay bool
	extractPretty  bool
	extractNodes   bool
)

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringSliceVarP(&extractInputs, "input", "i", nil, "Input document (repeatable; \"-\" for stdin)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file (default stdout)")
	extractCmd.Flags().StringVar(&extractFormat, "format", "json", "Output format: json, yaml, csv, xsd, jsonschema")
	extractCmd.Flags().StringVar(&extractKind, "kind", "", "Force document kind: xml or json (default: detect)")
	extractCmd.Flags().StringVar(&extractName, "name", "", "Schema name (default: derived from the first input)")
	extractCmd.Flags().BoolVar(&extractDisplay, "display", false, "Print a summary table to stderr")
	extractCmd.Flags().BoolVar(&extractPretty, "pretty", false, "Indent JSON output")
	extractCmd.Flags().BoolVar(&extractNodes, "nodes", false, "Include the raw node listing in the schema document")
	_ = extractCmd.MarkFlagRequired("input")
}

func runExtract(cmd *cobra.Command, args []string) error {
	schemas := make([]*schema.Schema, len(extractInputs))

	var g errgroup.Group
	for i, path := range extractInputs {
		g.Go(func() error {
			data, err := readInput(path)
			if err != nil {
				return err
			}
			kind, err := resolveKind(extractKind, path, data)
			if err != nil {
				return err
			}
			s, err := extractDocument(schemaName(path), kind, data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if cfg.MaxNodes > 0 && s.TotalNodes() > cfg.MaxNodes {
				return fmt.Errorf("%s: %d nodes exceeds the limit of %d", path, s.TotalNodes(), cfg.MaxNodes)
			}
			schemas[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	result := schemas[0]
	if len(schemas) > 1 {
		merged, err := schema.Merge(mergedName(extractName, schemas[0]), schemas...)
		if err != nil {
			return err
		}
		result = merged
	} else if extractName != "" {
		result = renamed(result, extractName)
	}

	slog.Info("schema extracted",
		"name", result.Name,
		"kind", result.Kind,
		"fields", result.NumFields(),
		"nodes", result.TotalNodes())

	out, err := renderSchema(result, extractFormat, export.Options{Nodes: extractNodes || extractFormat == "csv", Pretty: extractPretty})
	if err != nil {
		return err
	}
	if extractDisplay {
		fmt.Fprint(os.Stderr, export.Table(result))
	}
	return writeOutput(extractOutput, out)
}

func mergedName(flag string, first *schema.Schema) string {
	if flag != "" {
		return flag
	}
	return first.Name
}

// renamed rebuilds a schema under a different name.
func renamed(s *schema.Schema, name string) *schema.Schema {
	var descriptors []*schema.FieldDescriptor
	for d := range s.Fields() {
		descriptors = append(descriptors, d)
	}
	return schema.FromParts(name, s.Kind, s.RootType, s.CreatedAt, descriptors, s.Nodes())
}
