package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/usestring/schemax/pkg/schema"
)

var csvHeader = []string{"path", "name", "type", "value", "depth", "leaf"}

// CSV renders the raw node listing, one row per observed node.
func CSV(s *schema.Schema) ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, n := range s.Nodes() {
		row := []string{
			n.Path,
			n.Name,
			string(n.Type),
			formatValue(n.Value),
			strconv.Itoa(n.Depth),
			strconv.FormatBool(n.Leaf),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// formatValue renders a node value for flat outputs. Containers and nulls
// carry no value and render empty.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
