package schema

import (
	"math"
	"regexp"
	"strings"
)

// String coercion grammars. Integer is probed before float, so "42" never
// reaches the float pattern even though it would match.
var (
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
	floatPattern   = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+|\d+)([eE][+-]?\d+)?$`)
)

// Infer determines the canonical DataType of a native value. Strings go
// through coercion probing (see InferString). Values outside the JSON/XML
// value families produce an InvalidValueError.
func Infer(v any) (DataType, error) {
	switch val := v.(type) {
	case nil:
		return TypeNull, nil
	case bool:
		return TypeBoolean, nil
	case string:
		return InferString(val), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInteger, nil
	case float64:
		if math.Trunc(val) == val && !math.IsInf(val, 0) && !math.IsNaN(val) {
			return TypeInteger, nil
		}
		return TypeFloat, nil
	case float32:
		return Infer(float64(val))
	case map[string]any:
		return TypeObject, nil
	case []any:
		return TypeArray, nil
	default:
		return "", &InvalidValueError{Value: v}
	}
}

// InferString classifies a string value by probing, in fixed priority order,
// boolean, integer, then float grammars. The order is a correctness contract:
// "1" must come out integer, "true" boolean. Anything unmatched is a string.
func InferString(s string) DataType {
	if s == "" {
		return TypeString
	}
	switch strings.ToLower(s) {
	case "true", "false":
		return TypeBoolean
	}
	if integerPattern.MatchString(s) {
		return TypeInteger
	}
	if floatPattern.MatchString(s) {
		return TypeFloat
	}
	return TypeString
}
