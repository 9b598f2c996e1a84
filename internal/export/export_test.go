package export

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/usestring/schemax/pkg/schema"
)

func jsonSchemaFixture(t *testing.T, doc string) *schema.Schema {
	t.Helper()
	s, err := schema.ExtractJSON("doc", []byte(doc))
	require.NoError(t, err)
	return s
}

func xmlSchemaFixture(t *testing.T, doc string) *schema.Schema {
	t.Helper()
	root, err := xmlquery.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	s, err := schema.ExtractXML("doc", root)
	require.NoError(t, err)
	return s
}

func TestBuildDocument_FieldOrder(t *testing.T) {
	s := jsonSchemaFixture(t, `{"zebra": 1, "apple": "x", "mango": true}`)
	doc := BuildDocument(s, Options{})

	var paths []string
	for pair := doc.Fields.Oldest(); pair != nil; pair = pair.Next() {
		paths = append(paths, pair.Key)
	}
	require.Equal(t, []string{"$", "zebra", "apple", "mango"}, paths)
	require.Empty(t, doc.Nodes)

	withNodes := BuildDocument(s, Options{Nodes: true})
	require.Len(t, withNodes.Nodes, 4)
}

func TestJSON_RoundTrip(t *testing.T) {
	s := jsonSchemaFixture(t, `{"items": [{"a": 1}, {"a": 2, "b": "x"}]}`)
	data, err := JSON(s, Options{Pretty: true})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, gojson.Unmarshal(data, &got))
	require.Equal(t, "doc", got["name"])
	require.Equal(t, "json", got["kind"])
	require.Equal(t, "object", got["root_type"])

	fields, ok := got["fields"].(map[string]any)
	require.True(t, ok)
	entry, ok := fields["items.*.b"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, true, entry["optional"])
	require.Equal(t, float64(1), entry["count"])
}

func TestJSON_PreservesFieldOrder(t *testing.T) {
	s := jsonSchemaFixture(t, `{"zebra": 1, "apple": 2}`)
	data, err := JSON(s, Options{})
	require.NoError(t, err)
	require.Less(t, strings.Index(string(data), `"zebra"`), strings.Index(string(data), `"apple"`))
}

func TestYAML(t *testing.T) {
	s := jsonSchemaFixture(t, `{"a": 1}`)
	data, err := YAML(s, Options{})
	require.NoError(t, err)

	text := string(data)
	require.Contains(t, text, "name: doc")
	require.Contains(t, text, "kind: json")
	require.Contains(t, text, "path: a")
	require.Contains(t, text, "- integer")
}

func TestCSV(t *testing.T) {
	s := jsonSchemaFixture(t, `{"a": 1, "b": "hi"}`)
	data, err := CSV(s)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "path,name,type,value,depth,leaf", lines[0])
	require.Equal(t, "$,$,object,,0,false", lines[1])
	require.Equal(t, "a,a,integer,1,1,true", lines[2])
	require.Equal(t, "b,b,string,hi,1,true", lines[3])
}

func TestXSD_XML(t *testing.T) {
	s := xmlSchemaFixture(t, `<order id="5"><item>pen</item><item>ink</item></order>`)
	out := XSD(s)

	require.Contains(t, out, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">`)
	require.Contains(t, out, `<xs:element name="order"`)
	require.Contains(t, out, `<xs:element name="item" type="xs:string" maxOccurs="unbounded"/>`)
	require.Contains(t, out, `<xs:attribute name="id" type="xs:integer"/>`)
}

func TestXSD_JSONWrapsRoot(t *testing.T) {
	s := jsonSchemaFixture(t, `{"count": 3}`)
	out := XSD(s)

	require.Contains(t, out, `<xs:element name="doc"`)
	require.Contains(t, out, `<xs:element name="count" type="xs:integer"/>`)
}

func TestJSONSchema_Object(t *testing.T) {
	s := jsonSchemaFixture(t, `{"items": [{"a": 1}, {"b": "x"}]}`)
	js := JSONSchema(s)

	require.Equal(t, "object", js.Type)
	require.Equal(t, []string{"items"}, js.Required)

	items, ok := js.Properties.Get("items")
	require.True(t, ok)
	require.Equal(t, "array", items.Type)
	require.NotNil(t, items.Items)
	require.Equal(t, "object", items.Items.Type)
	require.Empty(t, items.Items.Required)

	a, ok := items.Items.Properties.Get("a")
	require.True(t, ok)
	require.Equal(t, "integer", a.Type)
}

func TestJSONSchema_AnyOf(t *testing.T) {
	s := jsonSchemaFixture(t, `{"v": [1, "x", null]}`)
	js := JSONSchema(s)

	v, ok := js.Properties.Get("v")
	require.True(t, ok)
	require.Equal(t, "array", v.Type)
	require.Len(t, v.Items.AnyOf, 3)
	require.Equal(t, "integer", v.Items.AnyOf[0].Type)
	require.Equal(t, "string", v.Items.AnyOf[1].Type)
	require.Equal(t, "null", v.Items.AnyOf[2].Type)
}

func TestJSONSchema_XMLRoot(t *testing.T) {
	s := xmlSchemaFixture(t, `<user><name>Bob</name></user>`)
	js := JSONSchema(s)

	require.Equal(t, "object", js.Type)
	name, ok := js.Properties.Get("name")
	require.True(t, ok)
	require.Equal(t, "string", name.Type)
}

func TestTable(t *testing.T) {
	s := jsonSchemaFixture(t, `{"a": 1}`)
	out := Table(s)
	require.Contains(t, out, "doc")
	require.Contains(t, out, "PATH")
	require.Contains(t, out, "$")
}

func TestReportTable(t *testing.T) {
	valid := ReportTable(&schema.Report{Valid: true})
	require.Contains(t, valid, "VALID")

	invalid := ReportTable(&schema.Report{
		Valid: false,
		Discrepancies: []schema.Discrepancy{{
			Kind:     schema.TypeMismatch,
			Path:     "a",
			Got:      schema.TypeString,
			Expected: []schema.DataType{schema.TypeInteger},
		}},
	})
	require.Contains(t, invalid, "INVALID")
	require.Contains(t, invalid, "type_mismatch")
}
