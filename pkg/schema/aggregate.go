package schema

import (
	"iter"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Aggregator folds a walker's node stream into a Schema. It is the only
// mutable stage; the Schema it produces is read-only.
type Aggregator struct {
	name string
	kind DocKind

	fields   *orderedmap.OrderedMap[string, *FieldDescriptor]
	nodes    []DataNode
	rootType DataType
	maxDepth int

	// Optionality bookkeeping: object instances grouped by normalized path,
	// and the child names each literal instance exposed.
	instances  map[string][]string
	childNames map[string]map[string]bool
}

// NewAggregator creates an empty aggregator for one document.
func NewAggregator(kind DocKind, name string) *Aggregator {
	return &Aggregator{
		name:       name,
		kind:       kind,
		fields:     orderedmap.New[string, *FieldDescriptor](),
		instances:  make(map[string][]string),
		childNames: make(map[string]map[string]bool),
	}
}

// Aggregate consumes a node stream once and returns the resulting Schema.
// A walker error aborts with no partial schema.
func Aggregate(kind DocKind, name string, seq iter.Seq2[DataNode, error]) (*Schema, error) {
	agg := NewAggregator(kind, name)
	for node, err := range seq {
		if err != nil {
			return nil, err
		}
		agg.Add(node)
	}
	return agg.Finish(), nil
}

// Add records one observed node.
func (a *Aggregator) Add(node DataNode) {
	a.nodes = append(a.nodes, node)
	if node.Depth == 0 {
		a.rootType = node.Type
	}
	if node.Depth > a.maxDepth {
		a.maxDepth = node.Depth
	}

	norm := NormalizePath(node.Path)
	desc, ok := a.fields.Get(norm)
	if !ok {
		desc = &FieldDescriptor{Path: norm, Array: HasWildcard(norm)}
		a.fields.Set(norm, desc)
	}
	desc.addType(node.Type)
	desc.Count++

	if node.Type == TypeObject {
		a.instances[norm] = append(a.instances[norm], node.Path)
	}
	owner, name := a.ownerOf(node)
	if owner != "" {
		set := a.childNames[owner]
		if set == nil {
			set = make(map[string]bool)
			a.childNames[owner] = set
		}
		set[name] = true
	}
}

// ownerOf resolves the literal path of the container a node belongs to, and
// the node's normalized name within it. Children of the synthetic JSON root
// have no path prefix, so their owner is patched back to "$".
func (a *Aggregator) ownerOf(node DataNode) (string, string) {
	if node.Path == jsonRootPath {
		return "", ""
	}
	owner, name := splitOwner(node.Path)
	if name != "" && name[0] != '@' && name[0] != '#' {
		name = normalizeSegment(name)
	}
	if owner == "" && a.kind == KindJSON {
		owner = jsonRootPath
	}
	return owner, name
}

// Finish runs the optionality post-pass and seals the Schema.
//
// A field is optional when some repeated object instance could have exposed
// it but did not: instances sharing a normalized path are compared against
// the union of their sibling's child names. Arrays of scalars never vary
// this way (every element is the same "*" child), so only objects
// participate.
func (a *Aggregator) Finish() *Schema {
	for norm, insts := range a.instances {
		if len(insts) < 2 {
			continue
		}
		union := make(map[string]bool)
		for _, inst := range insts {
			for name := range a.childNames[inst] {
				union[name] = true
			}
		}
		for _, inst := range insts {
			have := a.childNames[inst]
			for name := range union {
				if have[name] {
					continue
				}
				if desc, ok := a.fields.Get(joinField(norm, name)); ok {
					desc.Optional = true
				}
			}
		}
	}

	return &Schema{
		Name:      a.name,
		Kind:      a.kind,
		RootType:  a.rootType,
		CreatedAt: time.Now(),
		fields:    a.fields,
		nodes:     a.nodes,
		maxDepth:  a.maxDepth,
	}
}
