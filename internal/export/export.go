// Package export renders a Schema into its external representations: the
// canonical JSON document (which schemaload can read back), YAML, CSV node
// listings, an XSD-flavored outline, JSON Schema Draft 2020-12, and terminal
// tables.
package export

import (
	"time"

	gojson "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/usestring/schemax/pkg/schema"
)

// Document is the serialized form of a Schema. Fields is a mapping from
// normalized path to descriptor, kept in first-observation order.
type Document struct {
	Name      string                                     `json:"name"`
	Kind      string                                     `json:"kind"`
	RootType  string                                     `json:"root_type"`
	CreatedAt time.Time                                  `json:"created_at"`
	Fields    *orderedmap.OrderedMap[string, FieldEntry] `json:"fields"`
	Nodes     []schema.DataNode                          `json:"nodes,omitempty"`
}

// FieldEntry mirrors schema.FieldDescriptor without the path, which serves
// as the mapping key.
type FieldEntry struct {
	Types    []string `json:"types" yaml:"types"`
	Count    int      `json:"count" yaml:"count"`
	Optional bool     `json:"optional" yaml:"optional"`
	Array    bool     `json:"array" yaml:"array"`
}

// Options controls what an export includes.
type Options struct {
	Nodes  bool // include the raw node listing
	Pretty bool // indent JSON output
}

// BuildDocument converts a Schema into its serializable form.
func BuildDocument(s *schema.Schema, opts Options) *Document {
	doc := &Document{
		Name:      s.Name,
		Kind:      string(s.Kind),
		RootType:  string(s.RootType),
		CreatedAt: s.CreatedAt,
		Fields:    orderedmap.New[string, FieldEntry](),
	}
	for desc := range s.Fields() {
		types := make([]string, len(desc.Types))
		for i, t := range desc.Types {
			types[i] = string(t)
		}
		doc.Fields.Set(desc.Path, FieldEntry{
			Types:    types,
			Count:    desc.Count,
			Optional: desc.Optional,
			Array:    desc.Array,
		})
	}
	if opts.Nodes {
		doc.Nodes = s.Nodes()
	}
	return doc
}

// JSON serializes a Schema to its canonical JSON document.
func JSON(s *schema.Schema, opts Options) ([]byte, error) {
	doc := BuildDocument(s, opts)
	if opts.Pretty {
		return gojson.MarshalIndent(doc, "", "  ")
	}
	return gojson.Marshal(doc)
}

// yamlDocument is the YAML shadow of Document: the ordered map does not
// implement yaml marshaling, so fields become an ordered list with explicit
// paths.
type yamlDocument struct {
	Name      string            `yaml:"name"`
	Kind      string            `yaml:"kind"`
	RootType  string            `yaml:"root_type"`
	CreatedAt time.Time         `yaml:"created_at"`
	Fields    []yamlField       `yaml:"fields"`
	Nodes     []schema.DataNode `yaml:"nodes,omitempty"`
}

type yamlField struct {
	Path  string     `yaml:"path"`
	Entry FieldEntry `yaml:",inline"`
}

// YAML serializes a Schema to YAML.
func YAML(s *schema.Schema, opts Options) ([]byte, error) {
	doc := BuildDocument(s, opts)
	out := yamlDocument{
		Name:      doc.Name,
		Kind:      doc.Kind,
		RootType:  doc.RootType,
		CreatedAt: doc.CreatedAt,
		Nodes:     doc.Nodes,
	}
	for pair := doc.Fields.Oldest(); pair != nil; pair = pair.Next() {
		out.Fields = append(out.Fields, yamlField{Path: pair.Key, Entry: pair.Value})
	}
	return yaml.Marshal(out)
}
