package book

import (
	"errors"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

// ErrFrozen is returned when setting a field on a frozen mapping.
var ErrFrozen = errors.New("mapping is frozen")

// Mapping is a string-keyed container that remembers insertion order.
// It is what a record looks like once it crosses the export boundary.
// A mapping is filled with Set and then frozen; after Freeze it is
// read-only and safe to share between goroutines.
type Mapping struct {
	keys   []string
	values map[string]any
	frozen bool
}

// NewMapping returns an empty, writable mapping sized for n entries.
func NewMapping(n int) *Mapping {
	return &Mapping{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// Set stores v under key. Re-setting a key keeps its original position.
func (m *Mapping) Set(key string, v any) error {
	if m.frozen {
		return ErrFrozen
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
	return nil
}

// Freeze makes the mapping read-only and returns it.
func (m *Mapping) Freeze() *Mapping {
	m.frozen = true
	return m
}

func (m *Mapping) Frozen() bool {
	return m != nil && m.frozen
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Equal reports whether both mappings hold the same keys, in the same
// order, with equal values. Frozenness is not compared.
func (m *Mapping) Equal(other *Mapping) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, k := range m.keys {
		if other.keys[i] != k {
			return false
		}
		if !reflect.DeepEqual(m.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the mapping as a JSON object with keys in insertion
// order. A nil mapping encodes as null.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	cfg := jsoniter.ConfigCompatibleWithStandardLibrary
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, k := range m.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(k)
		stream.WriteVal(m.values[k])
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}
