package schema

import (
	"iter"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseXML(t *testing.T, doc string) *xmlquery.Node {
	t.Helper()
	root, err := xmlquery.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return root
}

func collect(t *testing.T, seq iter.Seq2[DataNode, error]) []DataNode {
	t.Helper()
	var out []DataNode
	for n, err := range seq {
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

func findNode(nodes []DataNode, path string) (DataNode, bool) {
	for _, n := range nodes {
		if n.Path == path {
			return n, true
		}
	}
	return DataNode{}, false
}

func TestWalkXML_DepthAndTypes(t *testing.T) {
	nodes := collect(t, WalkXML(parseXML(t, `<root><user><name>Bob</name></user></root>`)))

	name, ok := findNode(nodes, "root.user.name")
	require.True(t, ok)
	assert.Equal(t, 2, name.Depth)
	assert.True(t, name.Leaf)
	assert.Equal(t, TypeString, name.Type)
	assert.Equal(t, "Bob", name.Value)

	root, ok := findNode(nodes, "root")
	require.True(t, ok)
	assert.Equal(t, 0, root.Depth)
	assert.Equal(t, TypeObject, root.Type)
	assert.False(t, root.Leaf)
}

func TestWalkXML_Attributes(t *testing.T) {
	nodes := collect(t, WalkXML(parseXML(t, `<user id="123" role="admin"><name>Alice</name></user>`)))

	id, ok := findNode(nodes, "user@id")
	require.True(t, ok)
	assert.Equal(t, TypeInteger, id.Type, "attribute strings go through coercion")
	assert.Equal(t, "123", id.Value)
	assert.Equal(t, 0, id.Depth, "attributes sit at their element's depth")
	assert.True(t, id.Leaf)

	role, ok := findNode(nodes, "user@role")
	require.True(t, ok)
	assert.Equal(t, TypeString, role.Type)
}

func TestWalkXML_RepeatedSiblings(t *testing.T) {
	doc := `<catalog>
		<book><title>Go</title></book>
		<book><title>Rust</title></book>
		<isbn>x</isbn>
	</catalog>`
	nodes := collect(t, WalkXML(parseXML(t, doc)))

	first, ok := findNode(nodes, "catalog.book[0]")
	require.True(t, ok)
	assert.Equal(t, TypeObject, first.Type)
	_, ok = findNode(nodes, "catalog.book[1].title")
	assert.True(t, ok)

	// A lone sibling keeps its plain segment.
	_, ok = findNode(nodes, "catalog.isbn")
	assert.True(t, ok)

	assert.Equal(t, "catalog.book[*].title", NormalizePath("catalog.book[1].title"))
}

func TestWalkXML_TraversalOrder(t *testing.T) {
	doc := `<order id="1"><item>widget</item>note</order>`
	nodes := collect(t, WalkXML(parseXML(t, doc)))

	var paths []string
	for _, n := range nodes {
		paths = append(paths, n.Path)
	}
	// Element, attributes, child elements, then trailing text.
	assert.Equal(t, []string{"order", "order@id", "order.item", "order#text"}, paths)

	text, ok := findNode(nodes, "order#text")
	require.True(t, ok)
	assert.Equal(t, "note", text.Value)
	assert.Equal(t, 0, text.Depth)
}

func TestWalkXML_WhitespaceOnlyTextSkipped(t *testing.T) {
	nodes := collect(t, WalkXML(parseXML(t, "<a>\n  <b>1</b>\n</a>")))
	for _, n := range nodes {
		assert.NotContains(t, n.Path, "#text")
	}
}

func TestWalkXML_EmptyElement(t *testing.T) {
	nodes := collect(t, WalkXML(parseXML(t, `<root><empty/></root>`)))
	empty, ok := findNode(nodes, "root.empty")
	require.True(t, ok)
	assert.Equal(t, TypeString, empty.Type)
	assert.Nil(t, empty.Value)
	assert.True(t, empty.Leaf)
}
