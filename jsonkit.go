// Package jsonkit is a toolkit of pure, stateless functions for safely
// manipulating values drawn from the JSON value domain: null, booleans,
// numbers, strings, arrays and string-keyed objects. No function here
// panics on malformed or unusual input; failures surface as explicit
// fallbacks, absence results or errors at the call site.
//
// All operations are synchronous and reentrant. No function retains a
// reference to its inputs or outputs after returning, so any number of
// callers may use the toolkit concurrently with no coordination.
package jsonkit

import (
	"github.com/mcncl/jsonkit/internal/codec"
	"github.com/mcncl/jsonkit/internal/combine"
	"github.com/mcncl/jsonkit/internal/compare"
	"github.com/mcncl/jsonkit/internal/diag"
	"github.com/mcncl/jsonkit/internal/models"
	"github.com/mcncl/jsonkit/internal/navigate"
	"github.com/mcncl/jsonkit/internal/normalize"
)

// Value is any JSON value: nil, bool, string, a number
// (json.Number or a built-in numeric type), Array or Object.
type Value = models.JSONValue

// Object is a JSON object, a map of strings to Values.
type Object = models.JSONObject

// Array is a JSON array, a slice of Values.
type Array = models.JSONArray

// Path is an ordered list of string keys identifying a location inside
// nested Values.
type Path = models.KeyPath

// Kind identifies the variant of a Value.
type Kind = models.Kind

// Kind values reported by KindOf.
const (
	KindNull    = models.KindNull
	KindBool    = models.KindBool
	KindNumber  = models.KindNumber
	KindString  = models.KindString
	KindArray   = models.KindArray
	KindObject  = models.KindObject
	KindAbsent  = models.KindAbsent
	KindInvalid = models.KindInvalid
)

// Absent marks "no value at this location", distinct from nil (JSON
// null). It is never serialized.
var Absent = models.Absent

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v Value) bool { return models.IsAbsent(v) }

// KindOf classifies v into one of the JSON variants.
func KindOf(v Value) Kind { return models.KindOf(v) }

// SerializeOption configures Serialize.
type SerializeOption = codec.Option

// Transform is a per-member rewrite hook applied during serialization;
// returning false omits the member.
type Transform = codec.Transform

// WithIndent enables pretty-printed serialization.
func WithIndent(width int) SerializeOption { return codec.WithIndent(width) }

// WithTransform installs a rewrite hook invoked for every member
// during serialization.
func WithTransform(t Transform) SerializeOption { return codec.WithTransform(t) }

// Serialize renders v as JSON text; it returns an error instead of
// panicking when v contains values outside the JSON domain.
func Serialize(v Value, opts ...SerializeOption) (string, error) {
	return codec.Serialize(v, opts...)
}

// Deserialize parses text into a Value, returning fallback on any
// malformed input.
func Deserialize(text string, fallback Value) Value {
	return codec.Deserialize(text, fallback)
}

// IsWellFormed reports whether text parses as exactly one JSON value.
func IsWellFormed(text string) bool { return codec.IsWellFormed(text) }

// Clone produces a structurally equal copy of v sharing no nested
// structure with it, by round-tripping through the codec.
func Clone(v Value) (Value, error) { return codec.Clone(v) }

// SerializedEqual reports whether a and b serialize to the same text.
func SerializedEqual(a, b Value) bool { return compare.SerializedEqual(a, b) }

// StructuralEqual reports whether a and b denote the same JSON value,
// irrespective of numeric representation.
func StructuralEqual(a, b Value) bool { return compare.StructuralEqual(a, b) }

// ShallowCombine merges the top-level members of target and source;
// on key collision the source member wins as a whole value.
func ShallowCombine(target, source Value) Object {
	return combine.ShallowCombine(target, source)
}

// RecursiveCombine merges updates into target, descending into nested
// objects on colliding keys. This is the operation most people mean by
// "deep merge".
func RecursiveCombine(target, updates Value) Object {
	return combine.RecursiveCombine(target, updates)
}

// FilterKeys returns the members of obj whose key appears in allowed,
// values round-tripped through the codec.
func FilterKeys(obj Value, allowed []string) Object {
	return combine.FilterKeys(obj, allowed)
}

// RemoveAbsentMembers returns obj with every Absent member removed at
// all nesting levels.
func RemoveAbsentMembers(obj Value) Value {
	return combine.RemoveAbsentMembers(obj)
}

// FindFirstByKey searches obj depth-first, pre-order, for key.
func FindFirstByKey(obj Value, key string) (Value, bool) {
	return navigate.FindFirstByKey(obj, key)
}

// FindFirstByKeySafe is FindFirstByKey with the additional guarantee
// that internal faults degrade to absence instead of panicking.
func FindFirstByKeySafe(obj Value, key string) (Value, bool) {
	return navigate.FindFirstByKeySafe(obj, key)
}

// GetByPath walks path left to right inside obj, reporting absence on
// the first missing key or non-object step.
func GetByPath(obj Value, path Path) (Value, bool) {
	return navigate.GetByPath(obj, path)
}

// Flatten produces a single-level object keyed by dot-joined ancestor
// keys; arrays are treated as leaves.
func Flatten(obj Value) Object {
	return navigate.Flatten(obj, "")
}

// MergeUniqueByKey flattens a sequence of sequences of objects,
// keeping the first-encountered object per distinct value at key.
func MergeUniqueByKey(lists Value, key string) Array {
	return normalize.MergeUniqueByKey(lists, key)
}

// UniqueValuesByKey collects the distinct values found at key across
// all objects in list; objects lacking the key contribute Absent once.
func UniqueValuesByKey(list Value, key string) Array {
	return normalize.UniqueValuesByKey(list, key)
}

// RemoveEmptyValues drops top-level members whose value is null or the
// empty string.
func RemoveEmptyValues(obj Value) Object {
	return normalize.RemoveEmptyValues(obj)
}

// ToMap converts obj into a plain string-keyed Go map.
func ToMap(obj Value) map[string]Value { return normalize.ToMap(obj) }

// FromMap converts any Go map into an Object, stringifying non-string
// keys.
func FromMap(m interface{}) Object { return normalize.FromMap(m) }

// DiagnosticHandler receives errors the toolkit recovered from,
// together with the name of the recovering operation.
type DiagnosticHandler = diag.Handler

// SetDiagnosticHandler installs a process-wide handler for suppressed
// errors. It changes no return contract; passing nil discards
// diagnostics again.
func SetDiagnosticHandler(h DiagnosticHandler) { diag.SetHandler(h) }
