// Package schemaload reads serialized schema documents back into memory. A
// file is first checked against an embedded meta-schema so that validation
// never runs against a half-usable schema.
package schemaload

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	gojson "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/schemax/internal/export"
	"github.com/usestring/schemax/pkg/schema"
)

// metaSchema describes the serialized schema document format.
const metaSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "kind", "root_type", "created_at", "fields"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "kind": {"enum": ["xml", "json"]},
    "root_type": {"enum": ["string", "integer", "float", "boolean", "null", "object", "array"]},
    "created_at": {"type": "string"},
    "fields": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["types", "count", "optional", "array"],
        "properties": {
          "types": {
            "type": "array",
            "minItems": 1,
            "items": {"enum": ["string", "integer", "float", "boolean", "null", "object", "array"]}
          },
          "count": {"type": "integer", "minimum": 1},
          "optional": {"type": "boolean"},
          "array": {"type": "boolean"}
        }
      }
    },
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["path", "type", "depth", "leaf"],
        "properties": {
          "path": {"type": "string", "minLength": 1},
          "type": {"enum": ["string", "integer", "float", "boolean", "null", "object", "array"]},
          "depth": {"type": "integer", "minimum": 0},
          "leaf": {"type": "boolean"}
        }
      }
    }
  }
}`

var compileMeta = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(metaSchema))
	if err != nil {
		return nil, fmt.Errorf("parsing meta-schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema-document.json", doc); err != nil {
		return nil, fmt.Errorf("adding meta-schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema-document.json")
	if err != nil {
		return nil, fmt.Errorf("compiling meta-schema: %w", err)
	}
	return compiled, nil
})

// Load parses a serialized schema document. path is only used in error
// messages. Format problems come back as a *schema.SchemaFormatError listing
// everything the meta-schema flagged.
func Load(path string, data []byte) (*schema.Schema, error) {
	meta, err := compileMeta()
	if err != nil {
		return nil, err
	}

	var value any
	if err := gojson.Unmarshal(data, &value); err != nil {
		return nil, &schema.SchemaFormatError{Path: path, Problems: []string{"not valid JSON: " + err.Error()}}
	}
	if err := meta.Validate(value); err != nil {
		return nil, &schema.SchemaFormatError{Path: path, Problems: formatProblems(err)}
	}

	var doc export.Document
	if err := gojson.Unmarshal(data, &doc); err != nil {
		return nil, &schema.SchemaFormatError{Path: path, Problems: []string{err.Error()}}
	}
	return fromDocument(path, &doc)
}

func fromDocument(path string, doc *export.Document) (*schema.Schema, error) {
	var problems []string

	kind := schema.DocKind(doc.Kind)
	rootType, err := schema.ParseDataType(doc.RootType)
	if err != nil {
		problems = append(problems, err.Error())
	}

	var descriptors []*schema.FieldDescriptor
	for pair := doc.Fields.Oldest(); pair != nil; pair = pair.Next() {
		desc := &schema.FieldDescriptor{
			Path:     pair.Key,
			Count:    pair.Value.Count,
			Optional: pair.Value.Optional,
			Array:    pair.Value.Array,
		}
		for _, name := range pair.Value.Types {
			t, err := schema.ParseDataType(name)
			if err != nil {
				problems = append(problems, fmt.Sprintf("field %s: %v", pair.Key, err))
				continue
			}
			desc.Types = append(desc.Types, t)
		}
		descriptors = append(descriptors, desc)
	}

	if len(problems) > 0 {
		return nil, &schema.SchemaFormatError{Path: path, Problems: problems}
	}
	return schema.FromParts(doc.Name, kind, rootType, doc.CreatedAt, descriptors, doc.Nodes), nil
}

var printer = message.NewPrinter(language.English)

// formatProblems flattens a validation error into per-location messages,
// deduplicated, skipping structural noise like $ref chains.
func formatProblems(err error) []string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []string{err.Error()}
	}
	seen := make(map[string]bool)
	var out []string
	collect(verr, seen, &out)
	if len(out) == 0 {
		out = []string{verr.Error()}
	}
	return out
}

func collect(err *jsonschema.ValidationError, seen map[string]bool, out *[]string) {
	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if !strings.HasPrefix(msg, "$ref ") && !strings.HasPrefix(msg, "doesn't validate with") {
			if len(err.InstanceLocation) > 0 {
				msg = "/" + strings.Join(err.InstanceLocation, "/") + ": " + msg
			}
			if !seen[msg] {
				seen[msg] = true
				*out = append(*out, msg)
			}
		}
	}
	for _, cause := range err.Causes {
		collect(cause, seen, out)
	}
}
