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
	"slices"

	"github.com/scitable/scitable"
	"github.com/scitable/scitable/internal/debug"
)

// matrix is the dense row-major store of dependent elements. The
// column count is fixed by the first appended row; appending re-uses
// spare slice capacity where available and otherwise copies, never
// losing or reordering existing rows.
type matrix[E scitable.Element] struct {
	data []E
	rows int
	cols int
}

func (m *matrix[E]) appendRow(row []E) {
	if m.rows == 0 {
		m.cols = len(row)
	}
	debug.Assert(len(row) == m.cols, "matrix row width mismatch")
	m.data = append(m.data, row...)
	m.rows++
}

func (m *matrix[E]) row(i int) []E {
	beg := i * m.cols
	end := beg + m.cols
	return m.data[beg:end:end]
}

func (m *matrix[E]) clone() matrix[E] {
	return matrix[E]{data: slices.Clone(m.data), rows: m.rows, cols: m.cols}
}

// ColumnView is a strided aliasing view of one dependent column.
// Writes through Set are visible in the owning table. The view is
// invalidated by any append that grows the table's storage.
type ColumnView[E scitable.Element] struct {
	data   []E
	stride int
	n      int
}

// Len returns the number of entries in the column.
func (c ColumnView[E]) Len() int { return c.n }

// At returns the entry at row i.
func (c ColumnView[E]) At(i int) E { return c.data[i*c.stride] }

// Set writes the entry at row i.
func (c ColumnView[E]) Set(i int, v E) { c.data[i*c.stride] = v }

// Values returns a copy of the column contents.
func (c ColumnView[E]) Values() []E {
	out := make([]E, c.n)
	for i := range out {
		out[i] = c.data[i*c.stride]
	}
	return out
}

// BlockView is an aliasing rectangular view into the dependent matrix.
// Writes through Set are visible in the owning table. The view is
// invalidated by any append that grows the table's storage.
type BlockView[E scitable.Element] struct {
	data   []E // origin of the block within the matrix storage
	stride int
	rows   int
	cols   int
}

// NumRows returns the number of rows in the block.
func (b BlockView[E]) NumRows() int { return b.rows }

// NumCols returns the number of columns in the block.
func (b BlockView[E]) NumCols() int { return b.cols }

// At returns the entry at (r, c) of the block.
func (b BlockView[E]) At(r, c int) E { return b.data[r*b.stride+c] }

// Set writes the entry at (r, c) of the block.
func (b BlockView[E]) Set(r, c int, v E) { b.data[r*b.stride+c] = v }

// Row returns the r-th row of the block as an aliasing slice.
func (b BlockView[E]) Row(r int) []E {
	beg := r * b.stride
	end := beg + b.cols
	return b.data[beg:end:end]
}
