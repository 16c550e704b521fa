// Package compare decides structural equality between JSONValues.
package compare

import (
	"encoding/json"

	"github.com/mcncl/jsonkit/internal/codec"
	"github.com/mcncl/jsonkit/internal/diag"
	"github.com/mcncl/jsonkit/internal/models"
)

// SerializedEqual reports whether a and b serialize to the same text.
// This is the cheap textual check: it is sensitive to number
// formatting (json.Number "1.0" versus "1"), unlike StructuralEqual.
// If either value cannot be serialized the result is false.
func SerializedEqual(a, b models.JSONValue) bool {
	textA, err := codec.Serialize(a)
	if err != nil {
		diag.Report("serialized_equal", err)
		return false
	}
	textB, err := codec.Serialize(b)
	if err != nil {
		diag.Report("serialized_equal", err)
		return false
	}
	return textA == textB
}

// StructuralEqual reports whether a and b denote the same JSON value:
// numeric equality for numbers regardless of representation,
// order-respecting element-wise comparison for arrays, and key-set
// plus pairwise value comparison for objects. Any variant mismatch is
// unequal.
func StructuralEqual(a, b models.JSONValue) bool {
	kindA, kindB := models.KindOf(a), models.KindOf(b)
	if kindA != kindB {
		return false
	}

	switch kindA {
	case models.KindNull, models.KindAbsent:
		return true
	case models.KindBool:
		return a.(bool) == b.(bool)
	case models.KindString:
		return a.(string) == b.(string)
	case models.KindNumber:
		return numbersEqual(a, b)
	case models.KindArray:
		arrA, _ := models.AsArray(a)
		arrB, _ := models.AsArray(b)
		if len(arrA) != len(arrB) {
			return false
		}
		for i := range arrA {
			if !StructuralEqual(arrA[i], arrB[i]) {
				return false
			}
		}
		return true
	case models.KindObject:
		objA, _ := models.AsObject(a)
		objB, _ := models.AsObject(b)
		if len(objA) != len(objB) {
			return false
		}
		for k, valA := range objA {
			valB, ok := objB[k]
			if !ok {
				return false
			}
			if !StructuralEqual(valA, valB) {
				return false
			}
		}
		return true
	default:
		// Values outside the JSON domain never compare equal.
		return false
	}
}

// numbersEqual compares two numeric values by magnitude, across the
// int / float / json.Number representations the decoder and callers
// produce.
func numbersEqual(a, b models.JSONValue) bool {
	fa, okA := asFloat(a)
	fb, okB := asFloat(b)
	if !okA || !okB {
		return false
	}
	return fa == fb
}

func asFloat(v models.JSONValue) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
