package value

import (
	"golang.org/x/exp/slices"

	"github.com/samber/lo"
)

// Map is a string-keyed map that remembers insertion order. It is the Go
// counterpart of a literal hash and the representation used for captured
// hash rests.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap builds a Map from alternating key/value arguments.
func NewMap(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("value.NewMap: odd number of arguments")
	}
	m := &Map{values: make(map[string]any, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

// FromGoMap copies a Go map into a Map with keys in sorted order.
func FromGoMap(src map[string]any) *Map {
	keys := lo.Keys(src)
	slices.Sort(keys)
	m := &Map{keys: keys, values: make(map[string]any, len(src))}
	for k, v := range src {
		m.values[k] = v
	}
	return m
}

// Set inserts or replaces key. Replacing keeps the original position.
func (m *Map) Set(key string, v any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Without returns a new Map holding every entry whose key is not listed.
func (m *Map) Without(keys ...string) *Map {
	out := &Map{values: make(map[string]any)}
	for _, k := range m.Keys() {
		if !slices.Contains(keys, k) {
			out.Set(k, m.values[k])
		}
	}
	return out
}

// DeconstructKeys exposes the map to hash patterns.
func (m *Map) DeconstructKeys([]string) map[string]any {
	out := make(map[string]any, m.Len())
	for _, k := range m.Keys() {
		out[k] = m.values[k]
	}
	return out
}
