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

// Package table provides the generic in-memory tabular container: an
// ordered independent column (time or another index) aligned with a
// dense matrix of dependent elements, plus metadata at table,
// independent-column and dependent-columns scope.
package table

import (
	"fmt"
	"slices"

	"github.com/scitable/scitable"
	"github.com/scitable/scitable/internal/debug"
	"github.com/scitable/scitable/metadata"
)

// LabelsKey is the reserved metadata key under which column labels are
// registered, in both the independent and dependents metadata stores.
const LabelsKey = "labels"

// RowValidator rejects a row/independent-value combination for
// domain-specific reasons. t is the table being mutated and rowIndex
// the index the row will occupy; validators that consult neighboring
// rows must read them through t, so that a validator copied by Clone
// checks the clone's own state. Errors reported from a validator fail
// the mutating operation with ErrInvalidRow.
type RowValidator[X scitable.Index, E scitable.Element] func(t *Table[X, E], rowIndex int, ind X, row []E) error

// Table is a strongly typed in-memory tabular container. X is the type
// of the independent column (e.g. float64 time stamps), E the element
// shape of the dependent matrix.
//
// A Table owns its storage and metadata exclusively. Row, column and
// block accessors return views that alias the internal matrix; a view
// is valid until the next mutation that resizes the table. A Table is
// not safe for concurrent use.
type Table[X scitable.Index, E scitable.Element] struct {
	ind []X
	dep matrix[E]

	tableMeta *metadata.Store
	indMeta   *metadata.Store
	depMeta   *metadata.Store

	validateRow RowValidator[X, E]
}

// New returns an empty table with zero rows and columns.
func New[X scitable.Index, E scitable.Element]() *Table[X, E] {
	return &Table[X, E]{
		tableMeta: metadata.NewStore(),
		indMeta:   metadata.NewStore(),
		depMeta:   metadata.NewStore(),
	}
}

// NumRows returns the number of rows.
func (t *Table[X, E]) NumRows() int {
	debug.Assert(len(t.ind) == t.dep.rows, "independent column out of sync with matrix")
	return t.dep.rows
}

// NumColumns returns the number of dependent columns.
func (t *Table[X, E]) NumColumns() int { return t.dep.cols }

// NumComponentsPerElement returns the scalar component count of the
// table's element shape: 1 for Scalar, 3 for Vec3, 6 for SpatialVec
// and so on.
func (t *Table[X, E]) NumComponentsPerElement() int {
	return scitable.NumElementComponents[E]()
}

// SetRowValidator installs the domain validation hook invoked before a
// row is appended or its independent value replaced. A nil validator
// accepts everything.
func (t *Table[X, E]) SetRowValidator(v RowValidator[X, E]) { t.validateRow = v }

func (t *Table[X, E]) rowIndexError(i int) error {
	return fmt.Errorf("%w: row %d not in [0, %d]",
		scitable.ErrRowIndexOutOfRange, i, t.dep.rows-1)
}

func (t *Table[X, E]) columnIndexError(i int) error {
	return fmt.Errorf("%w: column %d not in [0, %d]",
		scitable.ErrColumnIndexOutOfRange, i, t.dep.cols-1)
}

// AppendRow appends a row of dependent elements aligned with the given
// independent value. The first appended row fixes the table's column
// count for its lifetime; if column labels are already set, the row
// width must match the label count. Validation happens before any
// mutation: on error the table is unchanged, on success the
// independent value and the row commit together.
func (t *Table[X, E]) AppendRow(ind X, row []E) error {
	if len(row) == 0 {
		return fmt.Errorf("%w: cannot append an empty row", scitable.ErrInvalidArgument)
	}
	if t.validateRow != nil {
		if err := t.validateRow(t, len(t.ind), ind, row); err != nil {
			return invalidRow(err)
		}
	}
	if t.dep.rows == 0 || t.dep.cols == 0 {
		if labels, err := t.depMeta.ValueArray(LabelsKey); err == nil {
			if len(row) != len(labels) {
				return fmt.Errorf("%w: expected %d columns, got %d",
					scitable.ErrIncorrectNumColumns, len(labels), len(row))
			}
		}
	} else if len(row) != t.dep.cols {
		return fmt.Errorf("%w: expected %d columns, got %d",
			scitable.ErrIncorrectNumColumns, t.dep.cols, len(row))
	}

	t.ind = append(t.ind, ind)
	t.dep.appendRow(row)
	return nil
}

// Row returns the row at index i as an aliasing slice of the dependent
// matrix: writes through it are visible in the table.
func (t *Table[X, E]) Row(i int) ([]E, error) {
	if i < 0 || i >= t.dep.rows {
		return nil, t.rowIndexError(i)
	}
	return t.dep.row(i), nil
}

// RowForIndependent returns the row aligned with the first entry of
// the independent column exactly equal to ind, as an aliasing slice.
// Exact equality on a floating point independent column is fragile
// under accumulated arithmetic; callers producing index values
// iteratively should prefer Row.
func (t *Table[X, E]) RowForIndependent(ind X) ([]E, error) {
	i := slices.Index(t.ind, ind)
	if i < 0 {
		return nil, fmt.Errorf("%w: independent value %v", scitable.ErrKeyNotFound, ind)
	}
	return t.dep.row(i), nil
}

// IndependentColumn returns the independent column. The slice aliases
// the table and must be treated as read only; use
// SetIndependentValueAt to write.
func (t *Table[X, E]) IndependentColumn() []X { return t.ind }

// SetIndependentValueAt replaces the independent value at row i. The
// row is re-validated against the new value before the write commits.
func (t *Table[X, E]) SetIndependentValueAt(i int, ind X) error {
	if i < 0 || i >= t.dep.rows {
		return t.rowIndexError(i)
	}
	if t.validateRow != nil {
		if err := t.validateRow(t, i, ind, t.dep.row(i)); err != nil {
			return invalidRow(err)
		}
	}
	t.ind[i] = ind
	return nil
}

// Column returns the dependent column at index i as a strided aliasing
// view.
func (t *Table[X, E]) Column(i int) (ColumnView[E], error) {
	if i < 0 || i >= t.dep.cols {
		return ColumnView[E]{}, t.columnIndexError(i)
	}
	return ColumnView[E]{
		data:   t.dep.data[i:],
		stride: t.dep.cols,
		n:      t.dep.rows,
	}, nil
}

// ColumnByLabel returns the dependent column carrying the given label.
func (t *Table[X, E]) ColumnByLabel(label string) (ColumnView[E], error) {
	i, err := t.ColumnIndex(label)
	if err != nil {
		return ColumnView[E]{}, err
	}
	return t.Column(i)
}

// Matrix returns an aliasing view of the whole dependent matrix.
func (t *Table[X, E]) Matrix() BlockView[E] {
	return BlockView[E]{
		data:   t.dep.data,
		stride: t.dep.cols,
		rows:   t.dep.rows,
		cols:   t.dep.cols,
	}
}

// Block returns an aliasing view of the rectangular region of the
// dependent matrix starting at (rowStart, colStart) and spanning
// numRows by numCols entries. Both counts must be positive and the
// whole region must lie within the current bounds.
func (t *Table[X, E]) Block(rowStart, colStart, numRows, numCols int) (BlockView[E], error) {
	var zero BlockView[E]
	if numRows <= 0 || numCols <= 0 {
		return zero, fmt.Errorf("%w: block size %dx%d; either numRows or numCols is zero",
			scitable.ErrInvalidArgument, numRows, numCols)
	}
	if rowStart < 0 || rowStart >= t.dep.rows {
		return zero, t.rowIndexError(rowStart)
	}
	if last := rowStart + numRows - 1; last >= t.dep.rows {
		return zero, t.rowIndexError(last)
	}
	if colStart < 0 || colStart >= t.dep.cols {
		return zero, t.columnIndexError(colStart)
	}
	if last := colStart + numCols - 1; last >= t.dep.cols {
		return zero, t.columnIndexError(last)
	}
	return BlockView[E]{
		data:   t.dep.data[rowStart*t.dep.cols+colStart:],
		stride: t.dep.cols,
		rows:   numRows,
		cols:   numCols,
	}, nil
}

// TableMetaData returns the table-scope metadata store. The store is
// owned by the table; mutations through it are visible immediately.
func (t *Table[X, E]) TableMetaData() *metadata.Store { return t.tableMeta }

// IndependentMetaData returns the independent-column metadata store.
func (t *Table[X, E]) IndependentMetaData() *metadata.Store { return t.indMeta }

// DependentsMetaData returns the dependent-columns metadata store.
func (t *Table[X, E]) DependentsMetaData() *metadata.Store { return t.depMeta }

// SetIndependentMetaData replaces the independent-column metadata
// wholesale. The candidate store is validated before the table takes a
// copy of it.
func (t *Table[X, E]) SetIndependentMetaData(m *metadata.Store) error {
	if err := validateIndependentStore(m); err != nil {
		return err
	}
	t.indMeta = m.Clone()
	return nil
}

// SetDependentsMetaData replaces the dependent-columns metadata
// wholesale. The candidate store is validated against the current
// column count before the table takes a copy of it.
func (t *Table[X, E]) SetDependentsMetaData(m *metadata.Store) error {
	if err := validateDependentsStore(m, t.dep.cols); err != nil {
		return err
	}
	t.depMeta = m.Clone()
	return nil
}

// ValidateIndependentMetaData checks that the independent metadata
// carries a single "labels" value. It has no side effects and may be
// called repeatedly.
func (t *Table[X, E]) ValidateIndependentMetaData() error {
	return validateIndependentStore(t.indMeta)
}

// ValidateDependentsMetaData checks the cross-consistency invariants
// of the dependents metadata: a non-empty "labels" array whose length
// matches the column count once columns exist, and every other value
// array of the same length. It has no side effects and may be called
// repeatedly.
func (t *Table[X, E]) ValidateDependentsMetaData() error {
	return validateDependentsStore(t.depMeta, t.dep.cols)
}

func validateIndependentStore(m *metadata.Store) error {
	if _, err := m.Value(LabelsKey); err != nil {
		return fmt.Errorf("%w: independent metadata has no %q value",
			scitable.ErrMissingMetaData, LabelsKey)
	}
	return nil
}

func validateDependentsStore(m *metadata.Store, cols int) error {
	labels, err := m.ValueArray(LabelsKey)
	if err != nil {
		return fmt.Errorf("%w: dependents metadata has no %q array",
			scitable.ErrMissingMetaData, LabelsKey)
	}
	if len(labels) == 0 {
		return fmt.Errorf("%w: %q", scitable.ErrMetaDataLengthZero, LabelsKey)
	}
	if cols != 0 && len(labels) != cols {
		return fmt.Errorf("%w: %q has %d entries, table has %d columns",
			scitable.ErrIncorrectMetaDataLength, LabelsKey, len(labels), cols)
	}
	for _, key := range m.Keys() {
		arr, err := m.ValueArray(key)
		if err != nil {
			continue // single values have no per-column length to check
		}
		if len(arr) != len(labels) {
			return fmt.Errorf("%w: %q has %d entries, expected %d",
				scitable.ErrIncorrectMetaDataLength, key, len(arr), len(labels))
		}
	}
	return nil
}

func invalidRow(err error) error {
	return fmt.Errorf("%w: %s", scitable.ErrInvalidRow, err)
}

// Clone returns a deep copy of the table: storage, metadata and the
// row validator.
func (t *Table[X, E]) Clone() *Table[X, E] {
	return &Table[X, E]{
		ind:         slices.Clone(t.ind),
		dep:         t.dep.clone(),
		tableMeta:   t.tableMeta.Clone(),
		indMeta:     t.indMeta.Clone(),
		depMeta:     t.depMeta.Clone(),
		validateRow: t.validateRow,
	}
}
