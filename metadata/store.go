// Copyright 2026 The Scitable Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metadata provides the keyed store of auxiliary values
// attached to a table at its three scopes: the table itself, the
// independent column, and the dependent columns.
package metadata

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/goccy/go-json"

	"github.com/scitable/scitable"
)

type entry struct {
	single  Value
	array   []Value
	isArray bool
}

// Store is an ordered mapping from string key to either a single
// tagged value or a homogeneous array of tagged values (one per
// applicable column). A key holds one flavor at a time; setting the
// other flavor replaces it. Key iteration order is insertion order and
// is stable for the lifetime of the store.
//
// A Store is not safe for concurrent use.
type Store struct {
	keys    []string
	entries map[string]entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]entry)}
}

func (s *Store) set(key string, e entry) {
	if _, ok := s.entries[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = e
}

func (s *Store) remove(key string) {
	delete(s.entries, key)
	if i := slices.Index(s.keys, key); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
}

// SetValue registers a single value under key, replacing any previous
// value or value array held there.
func (s *Store) SetValue(key string, v Value) {
	s.set(key, entry{single: v})
}

// Value returns the single value registered under key. It fails with
// ErrKeyNotFound if the key is absent and ErrTypeMismatch if the key
// holds a value array.
func (s *Store) Value(key string) (Value, error) {
	e, ok := s.entries[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: metadata key %q", scitable.ErrKeyNotFound, key)
	}
	if e.isArray {
		return Value{}, fmt.Errorf("%w: metadata key %q holds a value array",
			scitable.ErrTypeMismatch, key)
	}
	return e.single, nil
}

// SetValueArray registers a value array under key, replacing any
// previous value or value array held there. The array must be
// homogeneous: every entry valid and of the same kind.
func (s *Store) SetValueArray(key string, vals []Value) error {
	for i, v := range vals {
		if !v.IsValid() {
			return fmt.Errorf("%w: metadata array for key %q has an invalid value at %d",
				scitable.ErrInvalidArgument, key, i)
		}
		if v.Kind() != vals[0].Kind() {
			return fmt.Errorf("%w: metadata array for key %q mixes %s and %s values",
				scitable.ErrInvalidArgument, key, vals[0].Kind(), v.Kind())
		}
	}
	s.set(key, entry{array: slices.Clone(vals), isArray: true})
	return nil
}

// ValueArray returns the value array registered under key. The
// returned slice aliases the store; writes through it are visible to
// later reads. It fails with ErrKeyNotFound if the key is absent and
// ErrTypeMismatch if the key holds a single value.
func (s *Store) ValueArray(key string) ([]Value, error) {
	e, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: metadata key %q", scitable.ErrKeyNotFound, key)
	}
	if !e.isArray {
		return nil, fmt.Errorf("%w: metadata key %q holds a single value",
			scitable.ErrTypeMismatch, key)
	}
	return e.array, nil
}

// RemoveValueArray removes the value array registered under key. It is
// a no-op if the key is absent or holds a single value.
func (s *Store) RemoveValueArray(key string) {
	if e, ok := s.entries[key]; ok && e.isArray {
		s.remove(key)
	}
}

// Has reports whether key is registered, as either flavor.
func (s *Store) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Len returns the number of registered keys.
func (s *Store) Len() int { return len(s.keys) }

// Keys returns the registered keys in insertion order.
func (s *Store) Keys() []string {
	return slices.Clone(s.keys)
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	cp := NewStore()
	cp.keys = slices.Clone(s.keys)
	for k, e := range s.entries {
		if e.isArray {
			e.array = slices.Clone(e.array)
		}
		cp.entries[k] = e
	}
	return cp
}

// MarshalJSON renders the store as a JSON object in key order.
func (s *Store) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		e := s.entries[k]
		var vb []byte
		if e.isArray {
			vb, err = json.Marshal(e.array)
		} else {
			vb, err = json.Marshal(e.single)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
