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

package table

import (
	"gonum.org/v1/gonum/mat"

	"github.com/scitable/scitable"
)

// Dense exposes a scalar table's dependent matrix as a gonum dense
// matrix backed by the same storage: writes through the returned
// matrix are visible in the table and vice versa. Like the other
// views, the matrix is invalidated by an append that grows the table.
// Dense returns nil for an empty table.
func Dense[X scitable.Index](t *Table[X, scitable.Scalar]) *mat.Dense {
	if t.NumRows() == 0 || t.NumColumns() == 0 {
		return nil
	}
	data := scitable.ScalarTraits.CastToFloat64(t.dep.data[:t.dep.rows*t.dep.cols])
	return mat.NewDense(t.dep.rows, t.dep.cols, data)
}
