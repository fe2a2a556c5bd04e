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

package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scitable/scitable"
	"github.com/scitable/scitable/table"
)

func TestDense(t *testing.T) {
	dt := fiveByFour(t)

	m := table.Dense(dt)
	require.NotNil(t, m)
	r, c := m.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 3.0, m.At(3, 1))

	// the dense matrix shares storage with the table
	m.Set(0, 0, 42)
	row, err := dt.Row(0)
	require.NoError(t, err)
	assert.Equal(t, scitable.Scalar(42), row[0])

	row[1] = 7
	assert.Equal(t, 7.0, m.At(0, 1))
}

func TestDenseEmpty(t *testing.T) {
	dt := table.New[float64, scitable.Scalar]()
	assert.Nil(t, table.Dense(dt))
}
