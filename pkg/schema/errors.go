package schema

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed source document. Extraction aborts and no
// partial Schema is returned.
type ParseError struct {
	Kind DocKind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s document: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidValueError reports a native value outside the families the type
// inferencer understands. It aborts the current walk.
type InvalidValueError struct {
	Value any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("cannot classify value of type %T", e.Value)
}

// SchemaFormatError reports a serialized schema file missing required
// structure. It is surfaced at load time, before any validation runs.
type SchemaFormatError struct {
	Path     string // file the schema was loaded from
	Problems []string
}

func (e *SchemaFormatError) Error() string {
	if len(e.Problems) == 0 {
		return fmt.Sprintf("invalid schema file %s", e.Path)
	}
	return fmt.Sprintf("invalid schema file %s: %s", e.Path, strings.Join(e.Problems, "; "))
}
