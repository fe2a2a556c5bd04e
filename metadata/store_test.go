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

package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scitable/scitable"
	"github.com/scitable/scitable/metadata"
)

func TestStoreSingleValues(t *testing.T) {
	s := metadata.NewStore()
	s.SetValue("DataRate", metadata.Uint64(600))
	s.SetValue("Filename", metadata.String("/path/to/file"))

	v, err := s.Value("DataRate")
	require.NoError(t, err)
	u, err := v.AsUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(600), u)

	_, err = s.Value("missing")
	assert.ErrorIs(t, err, scitable.ErrKeyNotFound)

	// replacing keeps the key's position
	s.SetValue("DataRate", metadata.Uint64(1200))
	assert.Equal(t, []string{"DataRate", "Filename"}, s.Keys())
}

func TestStoreValueArrays(t *testing.T) {
	s := metadata.NewStore()
	require.NoError(t, s.SetValueArray("labels", metadata.StringArray("0", "1", "2")))

	arr, err := s.ValueArray("labels")
	require.NoError(t, err)
	assert.Len(t, arr, 3)

	_, err = s.ValueArray("missing")
	assert.ErrorIs(t, err, scitable.ErrKeyNotFound)

	// a single-value key is not a value array and vice versa
	s.SetValue("single", metadata.Uint64(1))
	_, err = s.ValueArray("single")
	assert.ErrorIs(t, err, scitable.ErrTypeMismatch)
	_, err = s.Value("labels")
	assert.ErrorIs(t, err, scitable.ErrTypeMismatch)
}

func TestStoreArrayHomogeneity(t *testing.T) {
	s := metadata.NewStore()
	err := s.SetValueArray("mixed", []metadata.Value{
		metadata.String("a"), metadata.Uint64(1),
	})
	assert.ErrorIs(t, err, scitable.ErrInvalidArgument)
	assert.False(t, s.Has("mixed"))

	err = s.SetValueArray("invalid", []metadata.Value{{}})
	assert.ErrorIs(t, err, scitable.ErrInvalidArgument)
}

func TestStoreArrayAliasing(t *testing.T) {
	s := metadata.NewStore()
	require.NoError(t, s.SetValueArray("labels", metadata.StringArray("a", "b")))

	arr, err := s.ValueArray("labels")
	require.NoError(t, err)
	arr[0] = metadata.String("z")

	arr2, err := s.ValueArray("labels")
	require.NoError(t, err)
	got, err := arr2[0].AsString()
	require.NoError(t, err)
	assert.Equal(t, "z", got)
}

func TestStoreRemoveValueArray(t *testing.T) {
	s := metadata.NewStore()
	require.NoError(t, s.SetValueArray("labels", metadata.StringArray("a")))
	s.SetValue("rate", metadata.Uint64(100))

	s.RemoveValueArray("labels")
	assert.False(t, s.Has("labels"))

	// no-op on absent keys and on single-value keys
	s.RemoveValueArray("labels")
	s.RemoveValueArray("rate")
	assert.True(t, s.Has("rate"))
	assert.Equal(t, []string{"rate"}, s.Keys())
}

func TestStoreKeyOrder(t *testing.T) {
	s := metadata.NewStore()
	keys := []string{"c", "a", "b", "d"}
	for i, k := range keys {
		s.SetValue(k, metadata.Int64(int64(i)))
	}
	assert.Equal(t, keys, s.Keys())
	assert.Equal(t, 4, s.Len())
}

func TestStoreClone(t *testing.T) {
	s := metadata.NewStore()
	s.SetValue("rate", metadata.Uint64(100))
	require.NoError(t, s.SetValueArray("labels", metadata.StringArray("a", "b")))

	cp := s.Clone()
	arr, err := cp.ValueArray("labels")
	require.NoError(t, err)
	arr[0] = metadata.String("z")
	cp.SetValue("rate", metadata.Uint64(999))

	orig, err := s.ValueArray("labels")
	require.NoError(t, err)
	got, err := orig[0].AsString()
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	v, err := s.Value("rate")
	require.NoError(t, err)
	u, err := v.AsUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(100), u)
}

func TestStoreMarshalJSON(t *testing.T) {
	s := metadata.NewStore()
	s.SetValue("rate", metadata.Uint64(100))
	require.NoError(t, s.SetValueArray("labels", metadata.StringArray("a", "b")))

	got, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"rate":100,"labels":["a","b"]}`, string(got))
}
