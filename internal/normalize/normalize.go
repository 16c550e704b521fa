// Package normalize reshapes collections of JSONValues: deduplication
// by key, removal of empty members, and conversion between plain Go
// maps and JSONObjects. Every function is total and degrades to an
// empty result on malformed input.
package normalize

import (
	"fmt"
	"reflect"

	"github.com/mcncl/jsonkit/internal/codec"
	"github.com/mcncl/jsonkit/internal/diag"
	"github.com/mcncl/jsonkit/internal/models"
)

// MergeUniqueByKey flattens a sequence of sequences of objects into
// one sequence, keeping only the first-encountered object for each
// distinct value at key. Objects lacking the key are excluded
// entirely; non-sequence input yields an empty result. Identity of a
// key value is its serialization, so object- and array-valued keys
// dedupe correctly too.
func MergeUniqueByKey(lists models.JSONValue, key string) models.JSONArray {
	out := models.JSONArray{}
	outer, ok := models.AsArray(lists)
	if !ok {
		return out
	}

	seen := make(map[string]bool)
	for _, inner := range outer {
		items, isArray := models.AsArray(inner)
		if !isArray {
			continue
		}
		for _, item := range items {
			obj, isObject := models.AsObject(item)
			if !isObject {
				continue
			}
			keyValue, exists := obj[key]
			if !exists {
				continue
			}
			id, err := codec.Serialize(keyValue)
			if err != nil {
				diag.Report("merge_unique_by_key", err)
				continue
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, models.Copy(obj))
		}
	}
	return out
}

// UniqueValuesByKey collects the distinct values found at key across
// all objects in list, in first-seen order. An object lacking the key
// contributes the Absent sentinel, counted once. Non-sequence input
// yields an empty result.
func UniqueValuesByKey(list models.JSONValue, key string) models.JSONArray {
	out := models.JSONArray{}
	items, ok := models.AsArray(list)
	if !ok {
		return out
	}

	seen := make(map[string]bool)
	missingSeen := false
	for _, item := range items {
		obj, isObject := models.AsObject(item)
		if !isObject {
			continue
		}
		keyValue, exists := obj[key]
		if !exists {
			if !missingSeen {
				missingSeen = true
				out = append(out, models.Absent)
			}
			continue
		}
		id, err := codec.Serialize(keyValue)
		if err != nil {
			diag.Report("unique_values_by_key", err)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, models.Copy(keyValue))
	}
	return out
}

// RemoveEmptyValues returns obj with any top-level member whose value
// is null or the empty string dropped. Nested members are untouched.
// Non-object input yields an empty object.
func RemoveEmptyValues(obj models.JSONValue) models.JSONObject {
	out := models.JSONObject{}
	m, ok := models.AsObject(obj)
	if !ok {
		return out
	}
	for k, v := range m {
		if v == nil {
			continue
		}
		if s, isString := v.(string); isString && s == "" {
			continue
		}
		out[k] = models.Copy(v)
	}
	return out
}

// ToMap converts obj into a plain string-keyed Go map decoupled from
// the model types. Malformed input degrades to an empty map.
func ToMap(obj models.JSONValue) map[string]models.JSONValue {
	out := make(map[string]models.JSONValue)
	m, ok := models.AsObject(obj)
	if !ok {
		return out
	}
	for k, v := range m {
		out[k] = models.Copy(v)
	}
	return out
}

// FromMap converts any Go map into a JSONObject, stringifying
// non-string keys with fmt.Sprint. Non-map input degrades to an empty
// object.
func FromMap(m interface{}) models.JSONObject {
	out := models.JSONObject{}
	switch typed := m.(type) {
	case nil:
		return out
	case models.JSONObject:
		for k, v := range typed {
			out[k] = models.Copy(v)
		}
		return out
	case map[string]models.JSONValue:
		for k, v := range typed {
			out[k] = models.Copy(v)
		}
		return out
	case map[string]interface{}:
		for k, v := range typed {
			out[k] = models.Copy(v)
		}
		return out
	case map[interface{}]interface{}:
		for k, v := range typed {
			out[stringifyKey(k)] = models.Copy(v)
		}
		return out
	}

	// Exotic map kinds (map[int]string and friends) go through
	// reflection.
	rv := reflect.ValueOf(m)
	if rv.Kind() != reflect.Map {
		return out
	}
	iter := rv.MapRange()
	for iter.Next() {
		out[stringifyKey(iter.Key().Interface())] = models.Copy(iter.Value().Interface())
	}
	return out
}

func stringifyKey(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
