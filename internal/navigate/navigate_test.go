package navigate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonkit/internal/compare"
	"github.com/mcncl/jsonkit/internal/models"
)

func TestFindFirstByKey_DirectMember(t *testing.T) {
	obj := models.JSONObject{"name": "Ada", "id": json.Number("1")}

	value, found := FindFirstByKey(obj, "name")

	require.True(t, found)
	assert.Equal(t, "Ada", value)
}

func TestFindFirstByKey_DirectMemberWinsOverNested(t *testing.T) {
	obj := models.JSONObject{
		"target": "top",
		"child":  models.JSONObject{"target": "nested"},
	}

	value, found := FindFirstByKey(obj, "target")

	require.True(t, found)
	assert.Equal(t, "top", value)
}

func TestFindFirstByKey_DescendsInKeyOrder(t *testing.T) {
	// Both children hold the key; the alphabetically first child wins,
	// keeping the search deterministic.
	obj := models.JSONObject{
		"alpha": models.JSONObject{"target": "from alpha"},
		"beta":  models.JSONObject{"target": "from beta"},
	}

	value, found := FindFirstByKey(obj, "target")

	require.True(t, found)
	assert.Equal(t, "from alpha", value)
}

func TestFindFirstByKey_ArraysNotDescended(t *testing.T) {
	obj := models.JSONObject{
		"list": models.JSONArray{
			models.JSONObject{"target": "inside array"},
		},
	}

	_, found := FindFirstByKey(obj, "target")

	assert.False(t, found)
}

func TestFindFirstByKey_Misses(t *testing.T) {
	tests := []struct {
		name string
		obj  models.JSONValue
	}{
		{"missing everywhere", models.JSONObject{"a": models.JSONObject{"b": json.Number("1")}}},
		{"non-mapping input", "just a string"},
		{"nil input", nil},
		{"array input", models.JSONArray{models.JSONObject{"target": "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := FindFirstByKey(tt.obj, "target")
			assert.False(t, found)
			assert.Nil(t, value)
		})
	}
}

func TestFindFirstByKey_ResultDoesNotAliasInput(t *testing.T) {
	nested := models.JSONObject{"k": json.Number("1")}
	obj := models.JSONObject{"hit": nested}

	value, found := FindFirstByKey(obj, "hit")
	require.True(t, found)

	value.(models.JSONObject)["k"] = json.Number("99")
	assert.Equal(t, json.Number("1"), nested["k"], "mutating the result changed the input")
}

func TestFindFirstByKeySafe_SameContract(t *testing.T) {
	obj := models.JSONObject{
		"outer": models.JSONObject{"key": json.Number("7")},
	}

	value, found := FindFirstByKeySafe(obj, "key")

	require.True(t, found)
	assert.Equal(t, json.Number("7"), value)

	_, found = FindFirstByKeySafe("malformed input", "key")
	assert.False(t, found)
}

func TestGetByPath(t *testing.T) {
	obj := models.JSONObject{
		"a": models.JSONObject{
			"b": models.JSONObject{"c": json.Number("5")},
		},
	}

	tests := []struct {
		name     string
		path     models.KeyPath
		expected models.JSONValue
		found    bool
	}{
		{"full path", models.KeyPath{"a", "b", "c"}, json.Number("5"), true},
		{"partial path", models.KeyPath{"a", "b"}, models.JSONObject{"c": json.Number("5")}, true},
		{"missing key", models.KeyPath{"a", "z"}, nil, false},
		{"step into scalar", models.KeyPath{"a", "b", "c", "d"}, nil, false},
		{"missing root key", models.KeyPath{"z"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := GetByPath(obj, tt.path)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.True(t, compare.StructuralEqual(tt.expected, value),
					"got %#v, want %#v", value, tt.expected)
			}
		})
	}
}

func TestGetByPath_EmptyPathReturnsInput(t *testing.T) {
	obj := models.JSONObject{"a": json.Number("1")}

	value, found := GetByPath(obj, models.KeyPath{})

	require.True(t, found)
	assert.True(t, compare.StructuralEqual(obj, value))
}

func TestGetByPath_ArraysAreNotSteppedInto(t *testing.T) {
	obj := models.JSONObject{
		"list": models.JSONArray{models.JSONObject{"x": json.Number("1")}},
	}

	_, found := GetByPath(obj, models.KeyPath{"list", "0"})

	assert.False(t, found)
}

func TestFlatten(t *testing.T) {
	obj := models.JSONObject{
		"a": models.JSONObject{
			"b": json.Number("1"),
			"c": models.JSONObject{"d": json.Number("2")},
		},
	}

	flat := Flatten(obj, "")

	expected := models.JSONObject{
		"a.b":   json.Number("1"),
		"a.c.d": json.Number("2"),
	}
	assert.True(t, compare.StructuralEqual(expected, flat),
		"got %#v, want %#v", flat, expected)
}

func TestFlatten_ArraysAreLeaves(t *testing.T) {
	obj := models.JSONObject{
		"tags": models.JSONArray{"go", "json"},
		"meta": models.JSONObject{
			"versions": models.JSONArray{json.Number("1"), json.Number("2")},
		},
	}

	flat := Flatten(obj, "")

	require.Len(t, flat, 2)
	assert.True(t, compare.StructuralEqual(models.JSONArray{"go", "json"}, flat["tags"]))
	assert.True(t, compare.StructuralEqual(models.JSONArray{json.Number("1"), json.Number("2")}, flat["meta.versions"]))
}

func TestFlatten_WithPrefix(t *testing.T) {
	obj := models.JSONObject{"b": json.Number("1")}

	flat := Flatten(obj, "root")

	assert.True(t, compare.StructuralEqual(models.JSONObject{"root.b": json.Number("1")}, flat))
}

func TestFlatten_TopLevelScalarsKeepTheirKey(t *testing.T) {
	obj := models.JSONObject{"plain": "value", "null": nil}

	flat := Flatten(obj, "")

	assert.Equal(t, "value", flat["plain"])
	val, exists := flat["null"]
	assert.True(t, exists)
	assert.Nil(t, val)
}

func TestFlatten_NonMappingInput(t *testing.T) {
	assert.Empty(t, Flatten("scalar", ""))
	assert.Empty(t, Flatten(models.JSONArray{json.Number("1")}, ""))
	assert.Empty(t, Flatten(nil, ""))
}

func TestFlatten_EmptyNestedObjectContributesNothing(t *testing.T) {
	obj := models.JSONObject{"a": models.JSONObject{}, "b": json.Number("1")}

	flat := Flatten(obj, "")

	require.Len(t, flat, 1)
	assert.Equal(t, json.Number("1"), flat["b"])
}
