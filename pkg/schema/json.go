package schema

import (
	"errors"
	"iter"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

// errStopWalk aborts ObjectEach when the consumer stops pulling.
var errStopWalk = errors.New("walk stopped")

// WalkJSON walks raw JSON bytes in document order, emitting one node per
// object, array, and scalar. jsonparser preserves source key order, which a
// map-based decode would not. The synthetic root container is emitted at
// depth 0 under the path "$"; its children drop the root prefix, so literal
// paths read "items.0.a" and normalized ones "items.*.a".
//
// Scalar strings go through the same coercion probing as XML text, so a JSON
// "42" surfaces as an integer observation. Same single-pass contract as
// WalkXML.
func WalkJSON(data []byte) iter.Seq2[DataNode, error] {
	return func(yield func(DataNode, error) bool) {
		value, vt, _, err := jsonparser.Get(data)
		if err != nil {
			yield(DataNode{}, &ParseError{Kind: KindJSON, Err: err})
			return
		}
		w := &jsonWalker{yield: yield}
		w.walk(value, vt, jsonRootPath, 0)
	}
}

type jsonWalker struct {
	yield func(DataNode, error) bool
	done  bool
}

// emit forwards a node to the consumer; false means stop the walk.
func (w *jsonWalker) emit(n DataNode) bool {
	if w.done {
		return false
	}
	if !w.yield(n, nil) {
		w.done = true
	}
	return !w.done
}

func (w *jsonWalker) fail(err error) bool {
	if !w.done {
		w.yield(DataNode{}, &ParseError{Kind: KindJSON, Err: err})
		w.done = true
	}
	return false
}

func (w *jsonWalker) walk(value []byte, vt jsonparser.ValueType, path string, depth int) bool {
	switch vt {
	case jsonparser.Object:
		if !w.emit(newNode(path, nil, TypeObject, depth)) {
			return false
		}
		err := jsonparser.ObjectEach(value, func(key, v []byte, dt jsonparser.ValueType, _ int) error {
			k, kerr := jsonparser.ParseString(key)
			if kerr != nil {
				k = string(key)
			}
			if !w.walk(v, dt, joinChild(path, k), depth+1) {
				return errStopWalk
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			return w.fail(err)
		}
		return !w.done

	case jsonparser.Array:
		if !w.emit(newNode(path, nil, TypeArray, depth)) {
			return false
		}
		idx := 0
		_, err := jsonparser.ArrayEach(value, func(v []byte, dt jsonparser.ValueType, _ int, elemErr error) {
			if w.done {
				return
			}
			if elemErr != nil {
				w.fail(elemErr)
				return
			}
			seg := strconv.Itoa(idx)
			idx++
			w.walk(v, dt, joinChild(path, seg), depth+1)
		})
		if err != nil && !w.done {
			return w.fail(err)
		}
		return !w.done

	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return w.fail(err)
		}
		return w.emit(newNode(path, s, InferString(s), depth))

	case jsonparser.Number:
		raw := string(value)
		if strings.ContainsAny(raw, ".eE") {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return w.fail(err)
			}
			return w.emit(newNode(path, f, TypeFloat, depth))
		}
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			// Integer wider than int64; keep the integer classification.
			f, ferr := strconv.ParseFloat(raw, 64)
			if ferr != nil {
				return w.fail(ferr)
			}
			return w.emit(newNode(path, f, TypeInteger, depth))
		}
		return w.emit(newNode(path, i, TypeInteger, depth))

	case jsonparser.Boolean:
		return w.emit(newNode(path, string(value) == "true", TypeBoolean, depth))

	case jsonparser.Null:
		return w.emit(newNode(path, nil, TypeNull, depth))

	default:
		return w.fail(errors.New("unexpected JSON value"))
	}
}
