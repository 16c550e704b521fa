// Package codec converts between JSONValues and their textual
// representation. Nothing here panics: malformed text degrades to a
// caller-supplied fallback and values outside the JSON domain are
// reported as errors.
package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	stderrors "errors" // Standard errors package

	"github.com/mcncl/jsonkit/internal/diag"
	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/models"
)

// maxDepth bounds recursion so cyclic input fails with ErrTooDeep
// instead of exhausting the stack. JSON documents never get close.
const maxDepth = 10000

// Transform is a per-member rewrite hook applied during serialization.
// It receives the member key ("" for the root, the decimal index for
// array elements) and the value; returning false omits the member.
type Transform func(key string, value models.JSONValue) (models.JSONValue, bool)

type options struct {
	indent    int
	transform Transform
}

// Option configures Serialize.
type Option func(*options)

// WithIndent enables pretty-printing with the given number of spaces
// per nesting level. Zero or negative width keeps the output compact.
func WithIndent(width int) Option {
	return func(o *options) {
		o.indent = width
	}
}

// WithTransform installs a rewrite hook invoked for every member
// during serialization.
func WithTransform(t Transform) Option {
	return func(o *options) {
		o.transform = t
	}
}

// Serialize renders v as JSON text. It fails with a non-representable
// error, never a panic, when v contains values outside the JSON domain
// (funcs, non-finite numbers, cyclic structures) or when the transform
// omits the root.
func Serialize(v models.JSONValue, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	prepared, keep, err := prepare("", v, o.transform, 0)
	if err != nil {
		return "", err
	}
	if !keep {
		return "", errors.NewNonRepresentableError("the root value has no JSON representation", errors.ErrNonRepresentable)
	}

	var out []byte
	if o.indent > 0 {
		out, err = json.MarshalIndent(prepared, "", strings.Repeat(" ", o.indent))
	} else {
		out, err = json.Marshal(prepared)
	}
	if err != nil {
		return "", errors.NewNonRepresentableError("failed to render value as JSON", err)
	}
	return string(out), nil
}

// prepare walks v applying the transform, dropping Absent members and
// rejecting values outside the JSON domain before encoding/json sees
// them. The second result is false when the value should be omitted.
func prepare(key string, v models.JSONValue, xform Transform, depth int) (models.JSONValue, bool, error) {
	if depth > maxDepth {
		return nil, false, errors.NewNonRepresentableError(
			fmt.Sprintf("nesting deeper than %d levels", maxDepth),
			errors.ErrTooDeep,
		)
	}

	if xform != nil {
		var keep bool
		v, keep = xform(key, v)
		if !keep {
			return nil, false, nil
		}
	}

	switch models.KindOf(v) {
	case models.KindAbsent:
		return nil, false, nil
	case models.KindNull, models.KindBool, models.KindString:
		return v, true, nil
	case models.KindNumber:
		if err := checkFinite(v); err != nil {
			return nil, false, err
		}
		return v, true, nil
	case models.KindObject:
		obj, _ := models.AsObject(v)
		out := make(models.JSONObject, len(obj))
		for k, member := range obj {
			prepared, keep, err := prepare(k, member, xform, depth+1)
			if err != nil {
				return nil, false, err
			}
			if !keep {
				continue
			}
			out[k] = prepared
		}
		return out, true, nil
	case models.KindArray:
		arr, _ := models.AsArray(v)
		out := make(models.JSONArray, 0, len(arr))
		for i, element := range arr {
			prepared, keep, err := prepare(strconv.Itoa(i), element, xform, depth+1)
			if err != nil {
				return nil, false, err
			}
			if !keep {
				// An omitted array element still occupies its
				// position, encoded as null.
				prepared = nil
			}
			out = append(out, prepared)
		}
		return out, true, nil
	default:
		return nil, false, errors.NewNonRepresentableError(
			fmt.Sprintf("value of type %T is outside the JSON domain", v),
			errors.ErrNonRepresentable,
		)
	}
}

// checkFinite rejects NaN and infinities, which JSON cannot encode.
func checkFinite(v models.JSONValue) error {
	var f float64
	switch n := v.(type) {
	case float32:
		f = float64(n)
	case float64:
		f = n
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.NewNonRepresentableError(
			fmt.Sprintf("non-finite number %v", f),
			errors.ErrNonRepresentable,
		)
	}
	return nil
}

// Parse converts JSON text into a JSONValue. Exactly one value must be
// present; empty or whitespace-only text is malformed.
func Parse(text string) (models.JSONValue, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewMalformedError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber() // Ensure numbers are read as json.Number

	var root models.JSONValue
	if err := decoder.Decode(&root); err != nil {
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return nil, errors.NewMalformedError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrMalformedJSON,
			)
		}
		return nil, errors.NewMalformedError("failed to decode JSON", err)
	}

	// Anything but whitespace after the first value makes the text
	// ill-formed.
	var trailing interface{}
	if err := decoder.Decode(&trailing); !stderrors.Is(err, io.EOF) {
		if err == nil {
			return nil, errors.NewMalformedError("multiple JSON values found at the root", errors.ErrTrailingData)
		}
		return nil, errors.NewMalformedError("invalid trailing data after first JSON value", err)
	}

	return normalizeJSONValue(root), nil
}

// normalizeJSONValue converts raw JSON types into our model types
func normalizeJSONValue(val models.JSONValue) models.JSONValue {
	switch v := val.(type) {
	case map[string]interface{}:
		obj := make(models.JSONObject, len(v))
		for key, value := range v {
			obj[key] = normalizeJSONValue(value)
		}
		return obj
	case []interface{}:
		arr := make(models.JSONArray, len(v))
		for i, value := range v {
			arr[i] = normalizeJSONValue(value)
		}
		return arr
	default:
		return v // Primitives (string, json.Number, bool, nil) are returned as is
	}
}

// Deserialize parses text into a JSONValue. On any malformed input it
// reports the problem to the diagnostics channel and returns fallback.
func Deserialize(text string, fallback models.JSONValue) models.JSONValue {
	v, err := Parse(text)
	if err != nil {
		diag.Report("deserialize", err)
		return fallback
	}
	return v
}

// IsWellFormed reports whether text parses as exactly one JSON value.
// Empty or absent text is always ill-formed.
func IsWellFormed(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// Clone produces a value structurally equal to v sharing no nested
// structure with it, by round-tripping through the codec. A value not
// representable as JSON fails rather than partially copies.
func Clone(v models.JSONValue) (models.JSONValue, error) {
	text, err := Serialize(v)
	if err != nil {
		return nil, err
	}
	out, err := Parse(text)
	if err != nil {
		return nil, errors.NewNonRepresentableError("round-trip of serialized value failed", err)
	}
	return out, nil
}
