// Package combine produces new JSONValues from two inputs. The two
// combine operations are intentionally distinct: ShallowCombine never
// descends into nested objects, RecursiveCombine does. Neither mutates
// its operands.
package combine

import (
	"fmt"

	"github.com/mcncl/jsonkit/internal/codec"
	"github.com/mcncl/jsonkit/internal/diag"
	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/models"
)

// ShallowCombine returns a new object holding every top-level member
// of target and source. Where a key exists in both, the source member
// wins as a whole value, with no descent into nested structure. A
// non-mapping operand degrades to the empty object (reported to the
// diagnostics channel), so combining with {} on either side is well
// defined.
func ShallowCombine(target, source models.JSONValue) models.JSONObject {
	out := models.JSONObject{}
	copyMembers(out, target, "shallow_combine")
	copyMembers(out, source, "shallow_combine")
	return out
}

// copyMembers writes a structural copy of each member of v into dest.
func copyMembers(dest models.JSONObject, v models.JSONValue, op string) {
	obj, ok := models.AsObject(v)
	if !ok {
		if v != nil {
			diag.Report(op, errors.NewMalformedError(
				fmt.Sprintf("operand of type %T is not a JSON object", v),
				errors.ErrNotAMapping,
			))
		}
		return
	}
	for k, val := range obj {
		dest[k] = models.Copy(val)
	}
}

// RecursiveCombine applies updates to target, descending into nested
// objects: where both the existing and the incoming value are objects
// the two are combined recursively, otherwise the incoming value
// replaces the existing one (including object-for-scalar and
// scalar-for-object replacements). Keys present only in target are
// preserved. The result is a new object; target is never mutated.
func RecursiveCombine(target, updates models.JSONValue) models.JSONObject {
	out := models.JSONObject{}
	copyMembers(out, target, "recursive_combine")

	obj, ok := models.AsObject(updates)
	if !ok {
		if updates != nil {
			diag.Report("recursive_combine", errors.NewMalformedError(
				fmt.Sprintf("updates of type %T is not a JSON object", updates),
				errors.ErrNotAMapping,
			))
		}
		return out
	}

	for k, incoming := range obj {
		existing, exists := out[k]
		if exists {
			_, existingIsObject := models.AsObject(existing)
			_, incomingIsObject := models.AsObject(incoming)
			if existingIsObject && incomingIsObject {
				out[k] = RecursiveCombine(existing, incoming)
				continue
			}
		}
		out[k] = models.Copy(incoming)
	}
	return out
}

// FilterKeys returns a new object containing only the members of obj
// whose key appears in allowed. Each kept value is round-tripped
// through the codec, so members outside the JSON domain (funcs,
// non-finite numbers) are silently dropped. The order of allowed does
// not affect the result.
func FilterKeys(obj models.JSONValue, allowed []string) models.JSONObject {
	out := models.JSONObject{}
	m, ok := models.AsObject(obj)
	if !ok {
		if obj != nil {
			diag.Report("filter_keys", errors.NewMalformedError(
				fmt.Sprintf("value of type %T is not a JSON object", obj),
				errors.ErrNotAMapping,
			))
		}
		return out
	}

	for _, key := range allowed {
		val, exists := m[key]
		if !exists {
			continue
		}
		cloned, err := codec.Clone(val)
		if err != nil {
			diag.Report("filter_keys", err)
			continue
		}
		out[key] = cloned
	}
	return out
}

// RemoveAbsentMembers returns obj with every member holding the Absent
// sentinel removed, at all nesting levels. Serialization already omits
// absent members, so this is a codec round-trip; a value containing no
// absent members comes back structurally unchanged. If obj cannot be
// serialized at all it is returned as-is.
func RemoveAbsentMembers(obj models.JSONValue) models.JSONValue {
	text, err := codec.Serialize(obj)
	if err != nil {
		diag.Report("remove_absent_members", err)
		return obj
	}
	return codec.Deserialize(text, obj)
}
