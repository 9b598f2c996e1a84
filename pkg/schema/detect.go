package schema

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// DetectKind determines the document format from the file extension, falling
// back to sniffing the first bytes of content. Pure over its arguments; the
// caller reads the file.
func DetectKind(path string, head []byte) (DocKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".xhtml", ".svg":
		return KindXML, nil
	case ".json", ".js":
		return KindJSON, nil
	}

	trimmed := bytes.TrimLeft(head, " \t\r\n")
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '<':
			return KindXML, nil
		case '{', '[':
			return KindJSON, nil
		}
	}
	return "", fmt.Errorf("cannot detect document kind of %s", path)
}
