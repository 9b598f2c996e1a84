package cli

import (
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/usestring/schemax/internal/cache"
	"github.com/usestring/schemax/internal/schemaload"
	"github.com/usestring/schemax/pkg/schema"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List the observed nodes of a schema document",
	Long: `Nodes lists the raw node stream captured at extraction time, optionally
filtered by position. The schema document must have been exported with
--nodes. Path patterns are regular expressions matched against the literal
node path; compiled patterns are cached across repeated flags.

Examples:
  schemax nodes -i data.schema.json --leaves
  schemax nodes -i data.schema.json --type integer
  schemax nodes -i data.schema.json --path '^items\.'`,
	RunE: runNodes,
}

var (
	nodesInput    string
	nodesLeaves   bool
	nodesType     string
	nodesPatterns []string
	nodesPretty   bool
)

func init() {
	rootCmd.AddCommand(nodesCmd)

	nodesCmd.Flags().StringVarP(&nodesInput, "input", "i", "", "Schema document with a node listing")
	nodesCmd.Flags().BoolVar(&nodesLeaves, "leaves", false, "Only scalar nodes")
	nodesCmd.Flags().StringVar(&nodesType, "type", "", "Only nodes of one type (string, integer, float, boolean, null, object, array)")
	nodesCmd.Flags().StringSliceVar(&nodesPatterns, "path", nil, "Path pattern (repeatable; a node must match all)")
	nodesCmd.Flags().BoolVar(&nodesPretty, "pretty", false, "Indent JSON output")
	_ = nodesCmd.MarkFlagRequired("input")
}

func runNodes(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(nodesInput)
	if err != nil {
		return err
	}
	s, err := schemaload.Load(nodesInput, data)
	if err != nil {
		return err
	}
	if s.TotalNodes() == 0 {
		return fmt.Errorf("%s has no node listing; re-export it with --nodes", nodesInput)
	}

	nodes := s.Nodes()
	if nodesLeaves {
		nodes = s.LeafNodes()
	}
	if nodesType != "" {
		t, err := schema.ParseDataType(nodesType)
		if err != nil {
			return err
		}
		nodes = filterNodes(nodes, func(n schema.DataNode) bool { return n.Type == t })
	}
	if len(nodesPatterns) > 0 {
		patterns, err := cache.NewPatternCache(cfg.PatternCacheMax)
		if err != nil {
			return err
		}
		for _, pattern := range nodesPatterns {
			pred, err := patterns.Predicate(pattern)
			if err != nil {
				return err
			}
			nodes = filterNodes(nodes, func(n schema.DataNode) bool { return pred(n.Path) })
		}
	}

	var out []byte
	if nodesPretty {
		out, err = gojson.MarshalIndent(nodes, "", "  ")
	} else {
		out, err = gojson.Marshal(nodes)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func filterNodes(nodes []schema.DataNode, keep func(schema.DataNode) bool) []schema.DataNode {
	out := make([]schema.DataNode, 0, len(nodes))
	for _, n := range nodes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
