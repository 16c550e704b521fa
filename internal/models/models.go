package models

import (
	"encoding/json"
	"sort"
)

// JSONValue is a generic type to represent any JSON value.
// This can be a string, number, boolean, null, object, or array.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// KeyPath is an ordered list of string keys identifying a location
// inside nested JSONValues, read left to right.
type KeyPath []string

// absentValue is the type of the Absent sentinel. It is deliberately
// unexported so Absent is the only value of this type.
type absentValue struct{}

func (absentValue) String() string { return "<absent>" }

// Absent marks "no value at this location". It is distinct from nil
// (JSON null) and is never serialized; the codec omits object members
// holding it.
var Absent JSONValue = absentValue{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v JSONValue) bool {
	_, ok := v.(absentValue)
	return ok
}

// Kind identifies the variant of a JSONValue.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindAbsent
	KindInvalid // outside the JSON domain (funcs, channels, structs, ...)
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindAbsent:
		return "absent"
	default:
		return "invalid"
	}
}

// KindOf classifies v into one of the JSON variants. Both the model
// types and the raw types produced by encoding/json are recognized.
func KindOf(v JSONValue) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case json.Number, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindNumber
	case JSONArray, []interface{}, []JSONValue:
		return KindArray
	case JSONObject, map[string]interface{}, map[string]JSONValue:
		return KindObject
	case absentValue:
		return KindAbsent
	default:
		return KindInvalid
	}
}

// AsObject returns v viewed as a JSONObject. The second result is
// false when v is not a mapping.
func AsObject(v JSONValue) (JSONObject, bool) {
	switch m := v.(type) {
	case JSONObject:
		return m, true
	case map[string]interface{}:
		out := make(JSONObject, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case map[string]JSONValue:
		return JSONObject(m), true
	default:
		return nil, false
	}
}

// AsArray returns v viewed as a JSONArray. The second result is false
// when v is not a sequence.
func AsArray(v JSONValue) (JSONArray, bool) {
	switch a := v.(type) {
	case JSONArray:
		return a, true
	case []interface{}:
		out := make(JSONArray, len(a))
		for i, val := range a {
			out[i] = val
		}
		return out, true
	case []JSONValue:
		return JSONArray(a), true
	default:
		return nil, false
	}
}

// SortedKeys returns the keys of obj in sorted order. Go maps have no
// insertion order, so every traversal in the toolkit walks keys this
// way to stay deterministic.
func SortedKeys(obj JSONObject) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Copy returns a structural copy of v sharing no containers with the
// input. Scalars pass through as-is; values outside the JSON domain
// are also passed through unchanged (they cannot be copied without
// knowing their type).
func Copy(v JSONValue) JSONValue {
	switch KindOf(v) {
	case KindObject:
		m, _ := AsObject(v)
		out := make(JSONObject, len(m))
		for k, val := range m {
			out[k] = Copy(val)
		}
		return out
	case KindArray:
		a, _ := AsArray(v)
		out := make(JSONArray, 0, len(a))
		for _, item := range a {
			out = append(out, Copy(item))
		}
		return out
	default:
		return v
	}
}
