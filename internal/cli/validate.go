package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/usestring/schemax/internal/export"
	"github.com/usestring/schemax/internal/schemaload"
	"github.com/usestring/schemax/pkg/schema"
)

// errValidationFailed keeps the failure exit code without re-printing the
// report cobra already wrote.
var errValidationFailed = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a document against a schema",
	Long: `Validate re-walks a document and checks every node against a previously
extracted schema. Type mismatches and missing required fields always fail;
unknown fields fail only with --strict.

Examples:
  schemax validate -i data.json -s data.schema.json
  schemax validate -i data.xml -s data.schema.json --strict --format json`,
	RunE: runValidate,
}

var (
	validateInput  string
	validateSchema string
	validateKind   string
	validateStrict bool
	validateFormat string
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Document to validate (\"-\" for stdin)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Schema document to validate against")
	validateCmd.Flags().StringVar(&validateKind, "kind", "", "Force document kind: xml or json (default: detect)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", cfg.Strict, "Fail on fields the schema never observed")
	validateCmd.Flags().StringVar(&validateFormat, "format", "table", "Report format: table or json")
	_ = validateCmd.MarkFlagRequired("input")
	_ = validateCmd.MarkFlagRequired("schema")
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaData, err := os.ReadFile(validateSchema)
	if err != nil {
		return err
	}
	s, err := schemaload.Load(validateSchema, schemaData)
	if err != nil {
		return err
	}

	data, err := readInput(validateInput)
	if err != nil {
		return err
	}
	kind, err := resolveKind(validateKind, validateInput, data)
	if err != nil {
		return err
	}
	if kind != s.Kind {
		return fmt.Errorf("document kind %s does not match schema kind %s", kind, s.Kind)
	}

	seq, err := documentWalker(kind, data)
	if err != nil {
		return err
	}
	report, err := schema.Validate(seq, s, schema.ValidateOptions{Strict: validateStrict})
	if err != nil {
		return fmt.Errorf("%s: %w", validateInput, err)
	}

	slog.Info("document validated",
		"input", validateInput,
		"schema", s.Name,
		"valid", report.Valid,
		"discrepancies", len(report.Discrepancies))

	switch validateFormat {
	case "json":
		out, err := gojson.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "table":
		fmt.Print(export.ReportTable(report))
	default:
		return fmt.Errorf("unknown report format %q (want table or json)", validateFormat)
	}

	if !report.Valid {
		return errValidationFailed
	}
	return nil
}
