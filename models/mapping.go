// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is an insertion-ordered key/value projection of an item's fields.
//
// Setting an existing key replaces its value and keeps its position, so a
// source with duplicate names collapses to the last value at the position of
// the first occurrence.
type Mapping struct {
	pairs *orderedmap.OrderedMap[string, string]
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{pairs: orderedmap.New[string, string]()}
}

// MappingOf builds a mapping from alternating keys and values. A trailing
// key without a value is ignored.
func MappingOf(keysAndValues ...string) *Mapping {
	m := NewMapping()
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		m.Set(keysAndValues[i], keysAndValues[i+1])
	}
	return m
}

// Set stores value under key and reports whether key was already present.
func (m *Mapping) Set(key, value string) bool {
	_, present := m.pairs.Set(key, value)
	return present
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (string, bool) {
	return m.pairs.Get(key)
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil || m.pairs == nil {
		return 0
	}
	return m.pairs.Len()
}

// Each calls fn for every pair in insertion order.
func (m *Mapping) Each(fn func(key, value string)) {
	if m == nil || m.pairs == nil {
		return
	}
	for pair := m.pairs.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, m.Len())
	m.Each(func(key, _ string) {
		keys = append(keys, key)
	})
	return keys
}

// ToMap returns an unordered copy of the mapping.
func (m *Mapping) ToMap() map[string]string {
	out := make(map[string]string, m.Len())
	m.Each(func(key, value string) {
		out[key] = value
	})
	return out
}
