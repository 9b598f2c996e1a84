package schema

import (
	"fmt"
	"iter"
)

// DiscrepancyKind names one class of divergence between a document and a
// schema.
type DiscrepancyKind string

const (
	// UnknownField: the document has a path the schema never observed.
	// Fails validation only in strict mode.
	UnknownField DiscrepancyKind = "unknown_field"
	// TypeMismatch: a path exists in the schema but the observed type was
	// never seen there. Always fails validation.
	TypeMismatch DiscrepancyKind = "type_mismatch"
	// MissingRequiredField: a non-optional descriptor matched no node.
	// Always fails validation.
	MissingRequiredField DiscrepancyKind = "missing_required_field"
)

// Discrepancy is one detected divergence. Path is the literal node path for
// walk-phase discrepancies and the normalized descriptor path for missing
// fields.
type Discrepancy struct {
	Kind     DiscrepancyKind `json:"kind"`
	Path     string          `json:"path"`
	Got      DataType        `json:"got,omitempty"`
	Expected []DataType      `json:"expected,omitempty"`
}

func (d Discrepancy) String() string {
	switch d.Kind {
	case TypeMismatch:
		return fmt.Sprintf("%s: %s: got %s, schema has %v", d.Kind, d.Path, d.Got, d.Expected)
	case UnknownField:
		return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Path, d.Got)
	default:
		return fmt.Sprintf("%s: %s", d.Kind, d.Path)
	}
}

// ValidateOptions configures validation behavior.
type ValidateOptions struct {
	// Strict makes unknown fields fail validation.
	Strict bool
}

// Report is the outcome of validating one document against a schema.
// Discrepancies appear in detection order: traversal order first, then
// missing required fields in descriptor order.
type Report struct {
	Valid         bool          `json:"valid"`
	Discrepancies []Discrepancy `json:"discrepancies,omitempty"`
}

// Validate re-walks a document with the same walker used at extraction time
// and checks each node against the schema. The schema is only read, never
// modified.
func Validate(seq iter.Seq2[DataNode, error], s *Schema, opts ValidateOptions) (*Report, error) {
	report := &Report{}
	failed := false
	matched := make(map[string]bool, s.NumFields())

	for node, err := range seq {
		if err != nil {
			return nil, err
		}
		norm := NormalizePath(node.Path)
		desc, ok := s.Field(norm)
		if !ok {
			report.Discrepancies = append(report.Discrepancies, Discrepancy{
				Kind: UnknownField,
				Path: node.Path,
				Got:  node.Type,
			})
			if opts.Strict {
				failed = true
			}
			continue
		}
		matched[norm] = true
		if !desc.HasType(node.Type) {
			report.Discrepancies = append(report.Discrepancies, Discrepancy{
				Kind:     TypeMismatch,
				Path:     node.Path,
				Got:      node.Type,
				Expected: desc.Types,
			})
			failed = true
		}
	}

	for desc := range s.Fields() {
		if desc.Optional || matched[desc.Path] {
			continue
		}
		report.Discrepancies = append(report.Discrepancies, Discrepancy{
			Kind: MissingRequiredField,
			Path: desc.Path,
		})
		failed = true
	}

	report.Valid = !failed
	return report, nil
}
