package cli

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/usestring/schemax/internal/export"
	"github.com/usestring/schemax/pkg/schema"
)

// renderSchema serializes a schema in the requested output format.
func renderSchema(s *schema.Schema, format string, opts export.Options) ([]byte, error) {
	switch format {
	case "json":
		data, err := export.JSON(s, opts)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return export.YAML(s, opts)
	case "csv":
		if s.TotalNodes() == 0 {
			return nil, fmt.Errorf("csv output needs a node listing; re-export the schema with --nodes")
		}
		return export.CSV(s)
	case "xsd":
		return []byte(export.XSD(s)), nil
	case "jsonschema":
		js := export.JSONSchema(s)
		var data []byte
		var err error
		if opts.Pretty {
			data, err = gojson.MarshalIndent(js, "", "  ")
		} else {
			data, err = gojson.Marshal(js)
		}
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unknown format %q (want json, yaml, csv, xsd or jsonschema)", format)
}
