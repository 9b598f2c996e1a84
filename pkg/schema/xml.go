package schema

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/antchfx/xmlquery"
)

// WalkXML walks a parsed XML tree in document order, emitting one node per
// element, one per attribute, and one per non-empty text content of a
// container element. The sequence is finite and single-pass; walk again from
// the root for a fresh traversal.
//
// Elements with child elements or attributes are objects; otherwise the
// element is a leaf typed from its text. Attributes ride at their owning
// element's depth as "path@name", mixed text content as "path#text". A tag
// repeated under the same parent becomes an array position: the literal path
// keeps the occurrence index ("user[1]"), the normalized path a wildcard.
func WalkXML(root *xmlquery.Node) iter.Seq2[DataNode, error] {
	return func(yield func(DataNode, error) bool) {
		elem := rootElement(root)
		if elem == nil {
			yield(DataNode{}, &ParseError{Kind: KindXML, Err: errors.New("document has no root element")})
			return
		}
		walkElement(elem, elem.Data, 0, yield)
	}
}

// rootElement accepts either a document node or an element node and returns
// the element to start from.
func rootElement(n *xmlquery.Node) *xmlquery.Node {
	if n == nil {
		return nil
	}
	if n.Type == xmlquery.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

func walkElement(elem *xmlquery.Node, path string, depth int, yield func(DataNode, error) bool) bool {
	var children []*xmlquery.Node
	var textParts []string
	for c := elem.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			children = append(children, c)
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if t := strings.TrimSpace(c.Data); t != "" {
				textParts = append(textParts, t)
			}
		}
	}
	text := strings.Join(textParts, " ")

	container := len(children) > 0 || len(elem.Attr) > 0
	if container {
		if !yield(newNode(path, nil, TypeObject, depth), nil) {
			return false
		}
	} else {
		if !yield(newNode(path, xmlLeafValue(text), InferString(text), depth), nil) {
			return false
		}
	}

	for _, attr := range elem.Attr {
		n := newNode(path+"@"+attr.Name.Local, attr.Value, InferString(attr.Value), depth)
		if !yield(n, nil) {
			return false
		}
	}

	// Tags repeated among siblings get per-occurrence index segments.
	tagTotals := make(map[string]int, len(children))
	for _, c := range children {
		tagTotals[c.Data]++
	}
	tagSeen := make(map[string]int, len(tagTotals))
	for _, c := range children {
		seg := c.Data
		if tagTotals[c.Data] > 1 {
			seg = fmt.Sprintf("%s[%d]", c.Data, tagSeen[c.Data])
		}
		tagSeen[c.Data]++
		if !walkElement(c, path+"."+seg, depth+1, yield) {
			return false
		}
	}

	if container && text != "" {
		if !yield(newNode(path+"#text", text, InferString(text), depth), nil) {
			return false
		}
	}
	return true
}

func xmlLeafValue(text string) any {
	if text == "" {
		return nil
	}
	return text
}
