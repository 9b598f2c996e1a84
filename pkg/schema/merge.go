package schema

import (
	"fmt"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Merge folds several schemas of the same kind into one. Descriptors union
// their observed types and sum their counts; a field absent from any input
// schema, or optional in any, is optional in the result. Node lists are
// concatenated in input order.
func Merge(name string, schemas ...*Schema) (*Schema, error) {
	if len(schemas) == 0 {
		return nil, fmt.Errorf("no schemas to merge")
	}
	first := schemas[0]
	for _, s := range schemas[1:] {
		if s.Kind != first.Kind {
			return nil, fmt.Errorf("cannot merge %s schema %q into %s schema %q", s.Kind, s.Name, first.Kind, first.Name)
		}
		if s.RootType != first.RootType {
			return nil, fmt.Errorf("cannot merge root type %s of %q into root type %s", s.RootType, s.Name, first.RootType)
		}
	}

	fields := orderedmap.New[string, *FieldDescriptor]()
	var nodes []DataNode
	maxDepth := 0

	for _, s := range schemas {
		for desc := range s.Fields() {
			merged, ok := fields.Get(desc.Path)
			if !ok {
				fields.Set(desc.Path, desc.clone())
				continue
			}
			for _, t := range desc.Types {
				merged.addType(t)
			}
			merged.Count += desc.Count
			merged.Optional = merged.Optional || desc.Optional
		}
		nodes = append(nodes, s.Nodes()...)
		if s.MaxDepth() > maxDepth {
			maxDepth = s.MaxDepth()
		}
	}

	// A field one document never saw at all is optional by construction.
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		for _, s := range schemas {
			if _, ok := s.Field(pair.Key); !ok {
				pair.Value.Optional = true
				break
			}
		}
	}

	return &Schema{
		Name:      name,
		Kind:      first.Kind,
		RootType:  first.RootType,
		CreatedAt: time.Now(),
		fields:    fields,
		nodes:     nodes,
		maxDepth:  maxDepth,
	}, nil
}
