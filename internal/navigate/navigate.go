// Package navigate locates values inside nested JSONValues and
// flattens nested objects into dotted-key form. Lookups report absence
// through their second result; nothing here panics.
package navigate

import (
	"fmt"

	"github.com/mcncl/jsonkit/internal/diag"
	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/models"
)

// FindFirstByKey searches obj depth-first, pre-order, for key: a
// direct member wins, otherwise each member that is itself an object
// is descended in sorted key order and the first match is returned.
// Arrays are not descended into. The result is a structural copy; the
// second result is false when no match exists anywhere in the tree.
func FindFirstByKey(obj models.JSONValue, key string) (models.JSONValue, bool) {
	m, ok := models.AsObject(obj)
	if !ok {
		return nil, false
	}
	if v, exists := m[key]; exists {
		return models.Copy(v), true
	}
	for _, k := range models.SortedKeys(m) {
		child, isObject := models.AsObject(m[k])
		if !isObject {
			continue
		}
		if v, found := FindFirstByKey(child, key); found {
			return v, true
		}
	}
	return nil, false
}

// FindFirstByKeySafe has the same contract as FindFirstByKey but
// additionally guarantees it never panics on malformed input: any
// internal fault degrades to absence.
func FindFirstByKeySafe(obj models.JSONValue, key string) (result models.JSONValue, found bool) {
	defer func() {
		if r := recover(); r != nil {
			diag.Report("find_first_by_key", errors.NewMalformedError(
				fmt.Sprintf("traversal failed: %v", r),
				errors.ErrMalformedJSON,
			))
			result, found = nil, false
		}
	}()
	return FindFirstByKey(obj, key)
}

// GetByPath walks path left to right by repeated member access. It
// reports absence as soon as a step names a missing key or lands on a
// non-object value. An empty path returns obj itself. The result is a
// structural copy of the value reached.
func GetByPath(obj models.JSONValue, path models.KeyPath) (models.JSONValue, bool) {
	current := obj
	for _, key := range path {
		m, ok := models.AsObject(current)
		if !ok {
			return nil, false
		}
		next, exists := m[key]
		if !exists {
			return nil, false
		}
		current = next
	}
	return models.Copy(current), true
}

// Flatten produces a single-level object in which every leaf of obj
// appears under the dot-joined sequence of its ancestor keys, e.g.
// {"a":{"b":1}} becomes {"a.b":1}. Arrays are leaves: they are kept
// intact as values, not descended into. Non-object input yields an
// empty result. prefix, when non-empty, is prepended to every key.
func Flatten(obj models.JSONValue, prefix string) models.JSONObject {
	out := models.JSONObject{}
	flattenInto(out, obj, prefix)
	return out
}

func flattenInto(out models.JSONObject, obj models.JSONValue, prefix string) {
	m, ok := models.AsObject(obj)
	if !ok {
		return
	}
	for _, k := range models.SortedKeys(m) {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if _, isObject := models.AsObject(m[k]); isObject {
			flattenInto(out, m[k], full)
			continue
		}
		out[full] = models.Copy(m[k])
	}
}
