package pkg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// OrderedMap is a string keyed map which remembers key insertion order,
// also through its JSON form. Menu tabs and comment threads are shown and
// exported in the order the clients created them.
// The zero value is an empty map ready to use.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{}
}

// Set adds or overwrites the key. Overwriting keeps the original position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	return append([]string(nil), m.keys...)
}

// All iterates the entries in insertion order.
func (m *OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJson, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		valJson, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal value of [%s]: %w", k, err)
		}
		buf.Write(keyJson)
		buf.WriteByte(':')
		buf.Write(valJson)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping its key order. A repeated key
// keeps its first position and its last value. JSON null leaves the map untouched.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	return m.decode(data, false)
}

func (m *OrderedMap[V]) decode(data []byte, strict bool) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}

	decoded := OrderedMap[V]{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", tok)
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode value of [%s]: %w", key, err)
		}
		decoded.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = decoded
	return nil
}

// StrictOrderedMap decodes like OrderedMap, but rejects unknown fields in
// the values. Used for request bodies.
type StrictOrderedMap[V any] struct {
	OrderedMap[V]
}

func (m *StrictOrderedMap[V]) UnmarshalJSON(data []byte) error {
	return m.OrderedMap.decode(data, true)
}
