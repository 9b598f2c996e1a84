package export

import (
	"github.com/invopop/jsonschema"

	"github.com/usestring/schemax/pkg/schema"
)

// jsTypes maps observed data types onto JSON Schema type names.
var jsTypes = map[schema.DataType]string{
	schema.TypeString:  "string",
	schema.TypeInteger: "integer",
	schema.TypeFloat:   "number",
	schema.TypeBoolean: "boolean",
	schema.TypeNull:    "null",
}

// JSONSchema renders the inferred structure as a JSON Schema (Draft
// 2020-12). Paths with several observed types come out as anyOf branches.
func JSONSchema(s *schema.Schema) *jsonschema.Schema {
	tree := buildFieldTree(s)
	if s.Kind == schema.KindXML && len(tree.children) == 1 {
		return nodeJSONSchema(tree.children[0])
	}
	root := &fieldNode{name: s.Name, desc: tree.desc, children: tree.children}
	if root.desc == nil {
		root.desc = &schema.FieldDescriptor{Path: "$", Types: []schema.DataType{s.RootType}}
	}
	return nodeJSONSchema(root)
}

func nodeJSONSchema(n *fieldNode) *jsonschema.Schema {
	var branches []*jsonschema.Schema

	var item *fieldNode
	var props []*fieldNode
	for _, c := range n.children {
		if c.isItem() {
			item = c
		} else {
			props = append(props, c)
		}
	}

	types := []schema.DataType{schema.TypeObject}
	if n.desc != nil {
		types = n.desc.Types
	}
	for _, t := range types {
		switch t {
		case schema.TypeObject:
			branches = append(branches, objectJSONSchema(props))
		case schema.TypeArray:
			arr := &jsonschema.Schema{Type: "array"}
			if item != nil {
				arr.Items = nodeJSONSchema(item)
			}
			branches = append(branches, arr)
		default:
			branches = append(branches, &jsonschema.Schema{Type: jsTypes[t]})
		}
	}

	switch len(branches) {
	case 0:
		return &jsonschema.Schema{}
	case 1:
		return branches[0]
	default:
		return &jsonschema.Schema{AnyOf: branches}
	}
}

func objectJSONSchema(props []*fieldNode) *jsonschema.Schema {
	obj := &jsonschema.Schema{
		Type:       "object",
		Properties: jsonschema.NewProperties(),
	}
	var required []string
	for _, c := range props {
		obj.Properties.Set(c.name, nodeJSONSchema(c))
		if c.desc != nil && !c.desc.Optional {
			required = append(required, c.name)
		}
	}
	obj.Required = required
	return obj
}
