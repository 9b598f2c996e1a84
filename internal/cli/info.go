package cli

import (
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/usestring/schemax/internal/export"
	"github.com/usestring/schemax/internal/schemaload"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize a schema document",
	Long: `Info prints the schema's stats and field table. With --json it emits a
machine-readable summary instead.

Example:
  schemax info -i data.schema.json`,
	RunE: runInfo,
}

var (
	infoInput string
	infoJSON  bool
)

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoInput, "input", "i", "", "Schema document to summarize")
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Emit a JSON summary")
	_ = infoCmd.MarkFlagRequired("input")
}

type infoSummary struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	RootType string `json:"root_type"`
	Fields   int    `json:"fields"`
	Optional int    `json:"optional_fields"`
	Arrays   int    `json:"array_fields"`
	Nodes    int    `json:"nodes"`
	MaxDepth int    `json:"max_depth"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(infoInput)
	if err != nil {
		return err
	}
	s, err := schemaload.Load(infoInput, data)
	if err != nil {
		return err
	}

	if !infoJSON {
		fmt.Print(export.Table(s))
		return nil
	}

	summary := infoSummary{
		Name:     s.Name,
		Kind:     string(s.Kind),
		RootType: string(s.RootType),
		Fields:   s.NumFields(),
		Nodes:    s.TotalNodes(),
		MaxDepth: s.MaxDepth(),
	}
	for d := range s.Fields() {
		if d.Optional {
			summary.Optional++
		}
		if d.Array {
			summary.Arrays++
		}
	}
	out, err := gojson.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
