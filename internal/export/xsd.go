package export

import (
	"fmt"
	"strings"

	"github.com/usestring/schemax/pkg/schema"
)

// xsdTypes maps observed data types onto XSD builtins.
var xsdTypes = map[schema.DataType]string{
	schema.TypeString:  "xs:string",
	schema.TypeInteger: "xs:integer",
	schema.TypeFloat:   "xs:decimal",
	schema.TypeBoolean: "xs:boolean",
	schema.TypeNull:    "xs:string",
}

// XSD renders a Schema as an XSD-flavored outline. It is a human-oriented
// rendering of the inferred structure, not a conformant XML Schema document.
func XSD(s *schema.Schema) string {
	tree := buildFieldTree(s)

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<xs:schema xmlns:xs=\"http://www.w3.org/2001/XMLSchema\">\n")
	if s.Kind == schema.KindJSON {
		writeXSDElement(&b, &fieldNode{name: s.Name, desc: tree.desc, children: tree.children}, 2)
	} else {
		for _, c := range tree.children {
			writeXSDElement(&b, c, 2)
		}
	}
	b.WriteString("</xs:schema>\n")
	return b.String()
}

func writeXSDElement(b *strings.Builder, n *fieldNode, indent int) {
	pad := strings.Repeat(" ", indent)
	name := n.name
	if n.isItem() {
		name = "item"
	}

	var elems, attrs []*fieldNode
	var text *fieldNode
	for _, c := range n.children {
		switch {
		case c.isAttr():
			attrs = append(attrs, c)
		case c.isText():
			text = c
		default:
			elems = append(elems, c)
		}
	}

	occurs := ""
	if n.desc != nil && n.desc.Optional {
		occurs += " minOccurs=\"0\""
	}
	if n.repeated {
		occurs += " maxOccurs=\"unbounded\""
	}

	if len(elems) == 0 && len(attrs) == 0 {
		fmt.Fprintf(b, "%s<xs:element name=\"%s\" type=\"%s\"%s/>\n", pad, name, xsdScalar(n.desc), occurs)
		return
	}

	fmt.Fprintf(b, "%s<xs:element name=\"%s\"%s>\n", pad, name, occurs)
	fmt.Fprintf(b, "%s  <xs:complexType>\n", pad)
	if text != nil {
		fmt.Fprintf(b, "%s    <xs:simpleContent><xs:extension base=\"%s\">\n", pad, xsdScalar(text.desc))
	}
	if len(elems) > 0 {
		fmt.Fprintf(b, "%s    <xs:sequence>\n", pad)
		for _, c := range elems {
			writeXSDElement(b, c, indent+6)
		}
		fmt.Fprintf(b, "%s    </xs:sequence>\n", pad)
	}
	for _, a := range attrs {
		use := ""
		if a.desc != nil && a.desc.Optional {
			use = " use=\"optional\""
		}
		fmt.Fprintf(b, "%s    <xs:attribute name=\"%s\" type=\"%s\"%s/>\n",
			pad, strings.TrimPrefix(a.name, "@"), xsdScalar(a.desc), use)
	}
	if text != nil {
		fmt.Fprintf(b, "%s    </xs:extension></xs:simpleContent>\n", pad)
	}
	fmt.Fprintf(b, "%s  </xs:complexType>\n", pad)
	fmt.Fprintf(b, "%s</xs:element>\n", pad)
}

func xsdScalar(desc *schema.FieldDescriptor) string {
	if mixedScalars(desc) {
		return "xs:anyType"
	}
	if t, ok := xsdTypes[scalarType(desc)]; ok {
		return t
	}
	return "xs:string"
}
