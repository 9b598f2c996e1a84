package export

import (
	"strings"

	"github.com/usestring/schemax/pkg/schema"
)

// fieldNode is one position in the descriptor tree rebuilt from normalized
// paths, used by the nested renderings (XSD, JSON Schema).
type fieldNode struct {
	name     string // segment name; "@x" attribute, "#text" content, "*" array item
	desc     *schema.FieldDescriptor
	repeated bool
	children []*fieldNode
	index    map[string]*fieldNode
}

func newFieldNode(name string, repeated bool) *fieldNode {
	return &fieldNode{name: name, repeated: repeated, index: make(map[string]*fieldNode)}
}

func (n *fieldNode) child(name string, repeated bool) *fieldNode {
	if c, ok := n.index[name]; ok {
		return c
	}
	c := newFieldNode(name, repeated)
	n.index[name] = c
	n.children = append(n.children, c)
	return c
}

func (n *fieldNode) isAttr() bool { return strings.HasPrefix(n.name, "@") }
func (n *fieldNode) isText() bool { return n.name == "#text" }
func (n *fieldNode) isItem() bool { return n.name == "*" }

// step is one logical level of a normalized path.
type step struct {
	name     string
	repeated bool
}

// pathSteps expands a normalized path into logical levels. An element
// segment carrying an attribute or text suffix contributes two levels
// ("book[*]@id" is the "@id" child of the repeated "book" element).
func pathSteps(path string) []step {
	var steps []step
	for _, seg := range strings.Split(path, ".") {
		if seg == "*" {
			steps = append(steps, step{name: "*", repeated: true})
			continue
		}
		base := seg
		suffix := ""
		if i := strings.IndexAny(seg, "@#"); i > 0 {
			base, suffix = seg[:i], seg[i:]
		}
		repeated := false
		if strings.HasSuffix(base, "[*]") {
			base = strings.TrimSuffix(base, "[*]")
			repeated = true
		}
		steps = append(steps, step{name: base, repeated: repeated})
		if suffix != "" {
			steps = append(steps, step{name: suffix})
		}
	}
	return steps
}

// buildFieldTree reconstructs the nested structure from a schema's flat
// descriptor map. The returned node is a synthetic root whose children are
// the document's top-level positions (the root element for XML, the root
// container's fields for JSON).
func buildFieldTree(s *schema.Schema) *fieldNode {
	root := newFieldNode("", false)
	for desc := range s.Fields() {
		if desc.Path == "$" {
			root.desc = desc
			continue
		}
		cur := root
		for _, st := range pathSteps(desc.Path) {
			cur = cur.child(st.name, st.repeated)
		}
		cur.desc = desc
	}
	return root
}

// scalarType picks the type to render for a descriptor: the first observed
// scalar type, or empty when only containers (or nothing) were seen.
func scalarType(desc *schema.FieldDescriptor) schema.DataType {
	if desc == nil {
		return ""
	}
	for _, t := range desc.Types {
		if !t.Container() {
			return t
		}
	}
	return ""
}

// mixedScalars reports whether a descriptor saw more than one scalar type.
func mixedScalars(desc *schema.FieldDescriptor) bool {
	if desc == nil {
		return false
	}
	n := 0
	for _, t := range desc.Types {
		if !t.Container() {
			n++
		}
	}
	return n > 1
}
