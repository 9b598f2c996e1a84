package schema

import (
	"regexp"
	"strings"
)

// Path grammar: segments joined by ".". XML attributes and text content ride
// on their element's segment as "elem@attr" and "elem#text". Array positions
// carry a literal index ("items.0", "entry[2]") which NormalizePath rewrites
// to a wildcard ("items.*", "entry[*]") for schema aggregation keys.

// jsonRootPath is the path of the synthetic JSON root container. Child paths
// do not include it, so descriptor keys read "items.*.a" rather than
// "$.items.*.a".
const jsonRootPath = "$"

var bracketIndexPattern = regexp.MustCompile(`\[\d+\]`)

// NormalizePath replaces literal array indices with wildcard segments.
func NormalizePath(path string) string {
	segs := strings.Split(path, ".")
	changed := false
	for i, seg := range segs {
		if isIndexSegment(seg) {
			segs[i] = "*"
			changed = true
			continue
		}
		if norm := bracketIndexPattern.ReplaceAllString(seg, "[*]"); norm != seg {
			segs[i] = norm
			changed = true
		}
	}
	if !changed {
		return path
	}
	return strings.Join(segs, ".")
}

// HasWildcard reports whether a normalized path sits at or under a repeated
// array position.
func HasWildcard(path string) bool {
	for _, seg := range strings.Split(path, ".") {
		if seg == "*" || strings.Contains(seg, "[*]") {
			return true
		}
	}
	return false
}

func isIndexSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

// joinChild appends a key or element segment to a parent path. The JSON root
// is synthetic and does not prefix its children.
func joinChild(parent, seg string) string {
	if parent == jsonRootPath {
		return seg
	}
	return parent + "." + seg
}

// splitOwner returns the literal path of the node's owning container and the
// node's name within it. Attribute and text suffixes ("@id", "#text") belong
// to the element named by their own segment.
func splitOwner(path string) (owner, name string) {
	seg := lastSegment(path)
	if i := strings.IndexAny(seg, "@#"); i >= 0 {
		return path[:len(path)-len(seg)+i], seg[i:]
	}
	if len(seg) == len(path) {
		return "", seg
	}
	return path[:len(path)-len(seg)-1], seg
}

// joinField is the inverse of splitOwner for building descriptor keys from a
// normalized owner path and a child name.
func joinField(owner, name string) string {
	if name != "" && (name[0] == '@' || name[0] == '#') {
		return owner + name
	}
	return joinChild(owner, name)
}

// normalizeSegment rewrites one segment the way NormalizePath would.
func normalizeSegment(seg string) string {
	if isIndexSegment(seg) {
		return "*"
	}
	return bracketIndexPattern.ReplaceAllString(seg, "[*]")
}
