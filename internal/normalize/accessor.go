// Package normalize reconciles the upstream API's historical response shapes
// into the canonical records in internal/domain. The API has shipped several
// payload layouts over time (nested objects, flat fields, wrapper arrays);
// every field here is read through an ordered list of accessor strategies so
// a new shape is a data change, not new conditionals. All functions are pure
// and degrade to zero values instead of failing.
package normalize

import (
	"strconv"
	"strings"
)

// Raw is a decoded JSON object as handed over by encoding/json.
type Raw map[string]any

type sourceKind int

const (
	// byNestedObject walks object keys to a scalar leaf: company.name.
	byNestedObject sourceKind = iota
	// byFlatField reads a scalar top-level field: companyName.
	byFlatField
	// byArrayFirst reads the first element of an array field, optionally a
	// field inside it: emailAddresses[0].email.
	byArrayFirst
)

// fieldSource names one place a field has lived in some API version.
type fieldSource struct {
	kind sourceKind
	path []string
}

func nested(path ...string) fieldSource  { return fieldSource{kind: byNestedObject, path: path} }
func flat(key string) fieldSource        { return fieldSource{kind: byFlatField, path: []string{key}} }
func arrFirst(path ...string) fieldSource { return fieldSource{kind: byArrayFirst, path: path} }

// firstString evaluates sources in priority order, returning the first
// non-empty scalar hit.
func firstString(r Raw, sources ...fieldSource) string {
	for _, src := range sources {
		if s := src.resolve(r); s != "" {
			return s
		}
	}
	return ""
}

func (src fieldSource) resolve(r Raw) string {
	if len(src.path) == 0 {
		return ""
	}
	switch src.kind {
	case byFlatField:
		return scalar(r[src.path[0]])

	case byNestedObject:
		cur := r
		for _, key := range src.path[:len(src.path)-1] {
			next, ok := cur[key].(map[string]any)
			if !ok {
				return ""
			}
			cur = next
		}
		return scalar(cur[src.path[len(src.path)-1]])

	case byArrayFirst:
		arr, ok := r[src.path[0]].([]any)
		if !ok || len(arr) == 0 {
			return ""
		}
		if len(src.path) == 1 {
			return scalar(arr[0])
		}
		elem, ok := arr[0].(map[string]any)
		if !ok {
			return ""
		}
		return scalar(elem[src.path[1]])
	}
	return ""
}

// scalar renders a JSON leaf as a display string; objects and arrays are not
// scalars and yield "".
func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func (r Raw) Object(key string) Raw {
	m, _ := r[key].(map[string]any)
	return m
}

func (r Raw) Array(key string) []any {
	a, _ := r[key].([]any)
	return a
}
