package schema

import (
	"fmt"
	"regexp"
)

// PathPredicate compiles a regular expression into a predicate over literal
// node paths. It is a pure function of the path string, decoupled from
// traversal, so it can be tested without a document.
func PathPredicate(pattern string) (func(string) bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid path pattern: %w", err)
	}
	return re.MatchString, nil
}
