package schema

import (
	"errors"

	"github.com/antchfx/xmlquery"
	gojson "github.com/goccy/go-json"
)

// ExtractXML builds a Schema from a parsed XML tree. The caller owns parsing
// (and therefore parse failures); the walk itself cannot fail on a valid
// tree.
func ExtractXML(name string, root *xmlquery.Node) (*Schema, error) {
	return Aggregate(KindXML, name, WalkXML(root))
}

// ExtractJSON builds a Schema from raw JSON bytes. Malformed input is
// rejected up front as a ParseError so no partial schema can escape.
func ExtractJSON(name string, data []byte) (*Schema, error) {
	if !gojson.Valid(data) {
		return nil, &ParseError{Kind: KindJSON, Err: errors.New("malformed JSON")}
	}
	return Aggregate(KindJSON, name, WalkJSON(data))
}
