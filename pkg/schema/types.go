// Package schema infers structural schemas from XML and JSON documents and
// validates other documents against them. Walkers turn a parsed document into
// an ordered stream of observed data nodes; the aggregator folds that stream
// into a Schema keyed by normalized path.
package schema

import (
	"fmt"
	"iter"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DataType classifies a single observed value.
type DataType string

const (
	TypeString  DataType = "string"
	TypeInteger DataType = "integer"
	TypeFloat   DataType = "float"
	TypeBoolean DataType = "boolean"
	TypeNull    DataType = "null"
	TypeObject  DataType = "object"
	TypeArray   DataType = "array"
)

// Container reports whether the type holds other nodes rather than a scalar.
func (t DataType) Container() bool {
	return t == TypeObject || t == TypeArray
}

// ParseDataType converts a serialized type name back into a DataType.
func ParseDataType(s string) (DataType, error) {
	switch DataType(s) {
	case TypeString, TypeInteger, TypeFloat, TypeBoolean, TypeNull, TypeObject, TypeArray:
		return DataType(s), nil
	}
	return "", fmt.Errorf("unknown data type %q", s)
}

// DocKind identifies the source document format.
type DocKind string

const (
	KindXML  DocKind = "xml"
	KindJSON DocKind = "json"
)

// DataNode is one observed value at one location in a document. Path carries
// literal array indices; Name is the last path segment.
type DataNode struct {
	Path  string   `json:"path"`
	Name  string   `json:"name"`
	Value any      `json:"value,omitempty"`
	Type  DataType `json:"type"`
	Depth int      `json:"depth"`
	Leaf  bool     `json:"leaf"`
}

// newNode builds a DataNode with Name and Leaf derived from path and type,
// so the two can never disagree with their invariants.
func newNode(path string, value any, t DataType, depth int) DataNode {
	return DataNode{
		Path:  path,
		Name:  lastSegment(path),
		Value: value,
		Type:  t,
		Depth: depth,
		Leaf:  !t.Container(),
	}
}

// FieldDescriptor aggregates every observation of one normalized path.
type FieldDescriptor struct {
	Path     string     `json:"path"`
	Types    []DataType `json:"types"` // set, in first-seen order
	Count    int        `json:"count"`
	Optional bool       `json:"optional"`
	Array    bool       `json:"array"`
}

// HasType reports whether t was observed at this path.
func (d *FieldDescriptor) HasType(t DataType) bool {
	for _, have := range d.Types {
		if have == t {
			return true
		}
	}
	return false
}

func (d *FieldDescriptor) addType(t DataType) {
	if !d.HasType(t) {
		d.Types = append(d.Types, t)
	}
}

func (d *FieldDescriptor) clone() *FieldDescriptor {
	cp := *d
	cp.Types = append([]DataType(nil), d.Types...)
	return &cp
}

// Schema is the aggregated structural description of one document (or of
// several merged ones). It is immutable after construction: all methods are
// pure queries. Descriptors iterate in first-observation order.
type Schema struct {
	Name      string
	Kind      DocKind
	RootType  DataType
	CreatedAt time.Time

	fields   *orderedmap.OrderedMap[string, *FieldDescriptor]
	nodes    []DataNode
	maxDepth int
}

// FromParts reassembles a Schema from externally stored pieces, preserving
// the given descriptor order. Used by the serialization layer.
func FromParts(name string, kind DocKind, rootType DataType, createdAt time.Time, descriptors []*FieldDescriptor, nodes []DataNode) *Schema {
	s := &Schema{
		Name:      name,
		Kind:      kind,
		RootType:  rootType,
		CreatedAt: createdAt,
		fields:    orderedmap.New[string, *FieldDescriptor](),
		nodes:     nodes,
	}
	for _, d := range descriptors {
		s.fields.Set(d.Path, d)
	}
	for _, n := range nodes {
		if n.Depth > s.maxDepth {
			s.maxDepth = n.Depth
		}
	}
	return s
}

// Field returns the descriptor for a normalized path.
func (s *Schema) Field(path string) (*FieldDescriptor, bool) {
	return s.fields.Get(path)
}

// Fields iterates descriptors in first-observation order.
func (s *Schema) Fields() iter.Seq[*FieldDescriptor] {
	return func(yield func(*FieldDescriptor) bool) {
		for pair := s.fields.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Value) {
				return
			}
		}
	}
}

// NumFields returns the number of distinct normalized paths.
func (s *Schema) NumFields() int {
	return s.fields.Len()
}

// Nodes returns every observed node in document traversal order. The slice
// is shared; callers must not modify it.
func (s *Schema) Nodes() []DataNode {
	return s.nodes
}

// LeafNodes returns the subsequence of nodes holding scalar values.
func (s *Schema) LeafNodes() []DataNode {
	var out []DataNode
	for _, n := range s.nodes {
		if n.Leaf {
			out = append(out, n)
		}
	}
	return out
}

// NodesByType returns the subsequence of nodes with the given type, in
// traversal order.
func (s *Schema) NodesByType(t DataType) []DataNode {
	var out []DataNode
	for _, n := range s.nodes {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

// NodesByPath returns the subsequence of nodes whose literal path satisfies
// the predicate. See PathPredicate for the pattern form the CLI uses.
func (s *Schema) NodesByPath(pred func(string) bool) []DataNode {
	var out []DataNode
	for _, n := range s.nodes {
		if pred(n.Path) {
			out = append(out, n)
		}
	}
	return out
}

// TotalNodes returns the number of observed nodes.
func (s *Schema) TotalNodes() int {
	return len(s.nodes)
}

// MaxDepth returns the deepest nesting level observed.
func (s *Schema) MaxDepth() int {
	return s.maxDepth
}
