package cli

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/usestring/schemax/pkg/schema"
)

// readInput reads a document from a file, or from stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes to a file, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// resolveKind applies an explicit --kind flag or falls back to detection
// from the file name and content.
func resolveKind(kindFlag, path string, data []byte) (schema.DocKind, error) {
	switch kindFlag {
	case "":
		return schema.DetectKind(path, data)
	case "xml":
		return schema.KindXML, nil
	case "json":
		return schema.KindJSON, nil
	}
	return "", fmt.Errorf("unknown document kind %q (want xml or json)", kindFlag)
}

// schemaName derives a schema name from a file path: the base name without
// its extension. Stdin input gets a fixed name.
func schemaName(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// extractDocument infers a schema from one raw document.
func extractDocument(name string, kind schema.DocKind, data []byte) (*schema.Schema, error) {
	switch kind {
	case schema.KindXML:
		root, err := xmlquery.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, &schema.ParseError{Kind: schema.KindXML, Err: err}
		}
		return schema.ExtractXML(name, root)
	case schema.KindJSON:
		return schema.ExtractJSON(name, data)
	}
	return nil, fmt.Errorf("unknown document kind %q", kind)
}

// documentWalker builds the node stream for one raw document, for commands
// that re-walk instead of aggregating.
func documentWalker(kind schema.DocKind, data []byte) (iter.Seq2[schema.DataNode, error], error) {
	switch kind {
	case schema.KindXML:
		root, err := xmlquery.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, &schema.ParseError{Kind: schema.KindXML, Err: err}
		}
		return schema.WalkXML(root), nil
	case schema.KindJSON:
		return schema.WalkJSON(data), nil
	}
	return nil, fmt.Errorf("unknown document kind %q", kind)
}
