package cli

import (
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/usestring/schemax/internal/query"
)

var queryCmd = &cobra.Command{
	Use:   "query <expression>",
	Short: "Run a jq expression against a schema document",
	Long: `Query applies a jq expression to the serialized schema document and prints
each produced value as a JSON line.

Examples:
  schemax query -i data.schema.json '.fields | keys_unsorted'
  schemax query -i data.schema.json '.fields | to_entries[] | select(.value.optional) | .key'
  schemax query -i data.schema.json --dedupe '.fields[].types[]'`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

var (
	queryInput      string
	queryDedupe     bool
	queryMaxResults int
)

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVarP(&queryInput, "input", "i", "", "Schema document to query")
	queryCmd.Flags().BoolVar(&queryDedupe, "dedupe", false, "Collapse repeated values")
	queryCmd.Flags().IntVar(&queryMaxResults, "max-results", cfg.QueryMaxResults, "Stop after this many values (0 = unbounded)")
	_ = queryCmd.MarkFlagRequired("input")
}

func runQuery(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(queryInput)
	if err != nil {
		return err
	}

	result, err := query.NewEngine().Run(data, args[0], queryDedupe, queryMaxResults)
	if err != nil {
		return err
	}

	for _, v := range result.Values {
		line, err := gojson.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Println(string(line))
	}
	for _, msg := range result.Errors {
		fmt.Fprintln(os.Stderr, "warning:", msg)
	}
	return nil
}
