package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		value    JSONValue
		expected Kind
	}{
		{"nil", nil, KindNull},
		{"bool", true, KindBool},
		{"string", "x", KindString},
		{"json.Number", json.Number("1"), KindNumber},
		{"int", 42, KindNumber},
		{"float64", 1.5, KindNumber},
		{"model array", JSONArray{}, KindArray},
		{"raw array", []interface{}{}, KindArray},
		{"model object", JSONObject{}, KindObject},
		{"raw object", map[string]interface{}{}, KindObject},
		{"plain value map", map[string]JSONValue{}, KindObject},
		{"absent", Absent, KindAbsent},
		{"func", func() {}, KindInvalid},
		{"struct", struct{}{}, KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.value))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "absent", KindAbsent.String())
	assert.Equal(t, "invalid", Kind(200).String())
}

func TestAbsent_DistinctFromNull(t *testing.T) {
	assert.True(t, IsAbsent(Absent))
	assert.False(t, IsAbsent(nil))
	assert.False(t, IsAbsent("absent"))
	assert.NotEqual(t, nil, Absent)
}

func TestAsObject(t *testing.T) {
	obj, ok := AsObject(map[string]interface{}{"a": 1})
	require.True(t, ok)
	assert.Equal(t, 1, obj["a"])

	_, ok = AsObject(JSONArray{})
	assert.False(t, ok)
	_, ok = AsObject(nil)
	assert.False(t, ok)
}

func TestAsArray(t *testing.T) {
	arr, ok := AsArray([]interface{}{1, 2})
	require.True(t, ok)
	assert.Len(t, arr, 2)

	_, ok = AsArray(JSONObject{})
	assert.False(t, ok)
	_, ok = AsArray("string")
	assert.False(t, ok)
}

func TestSortedKeys(t *testing.T) {
	obj := JSONObject{"z": 1, "a": 2, "m": 3}
	assert.Equal(t, []string{"a", "m", "z"}, SortedKeys(obj))
}

func TestCopy_Independence(t *testing.T) {
	original := JSONObject{
		"nested": JSONObject{"k": json.Number("1")},
		"list":   JSONArray{"a"},
	}

	copied := Copy(original).(JSONObject)
	copied["nested"].(JSONObject)["k"] = json.Number("99")
	copied["list"].(JSONArray)[0] = "changed"

	assert.Equal(t, json.Number("1"), original["nested"].(JSONObject)["k"])
	assert.Equal(t, "a", original["list"].(JSONArray)[0])
}

func TestCopy_ScalarsPassThrough(t *testing.T) {
	assert.Equal(t, "s", Copy("s"))
	assert.Nil(t, Copy(nil))
	assert.Equal(t, json.Number("2"), Copy(json.Number("2")))
	assert.True(t, IsAbsent(Copy(Absent)))
}
