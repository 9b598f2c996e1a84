package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/usestring/schemax/internal/export"
	"github.com/usestring/schemax/internal/schemaload"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a schema document to another format",
	Long: `Convert reads a serialized schema document and re-renders it as YAML, a
CSV node listing, an XSD outline, JSON Schema, or back to canonical JSON.

Examples:
  schemax convert -i data.schema.json --format yaml
  schemax convert -i data.schema.json --format jsonschema --pretty -o data.jsonschema`,
	RunE: runConvert,
}

var (
	convertInput  string
	convertOutput string
	convertFormat string
	convertPretty bool
	convertNodes  bool
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Schema document to convert")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default stdout)")
	convertCmd.Flags().StringVar(&convertFormat, "format", "yaml", "Output format: json, yaml, csv, xsd, jsonschema")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", false, "Indent JSON output")
	convertCmd.Flags().BoolVar(&convertNodes, "nodes", false, "Carry the node listing into the output")
	_ = convertCmd.MarkFlagRequired("input")
}

func runConvert(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(convertInput)
	if err != nil {
		return err
	}
	s, err := schemaload.Load(convertInput, data)
	if err != nil {
		return err
	}

	opts := export.Options{Nodes: convertNodes || convertFormat == "csv", Pretty: convertPretty}
	out, err := renderSchema(s, convertFormat, opts)
	if err != nil {
		return err
	}
	return writeOutput(convertOutput, out)
}
