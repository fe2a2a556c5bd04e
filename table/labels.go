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
	"fmt"

	"github.com/scitable/scitable"
	"github.com/scitable/scitable/metadata"
)

// HasColumnLabels reports whether column labels have been set.
func (t *Table[X, E]) HasColumnLabels() bool {
	_, err := t.depMeta.ValueArray(LabelsKey)
	return err == nil
}

// SetColumnLabels registers the column labels, replacing any previous
// set. The dependents metadata is re-validated against the new labels;
// on validation failure the previous labels (if any) are kept.
func (t *Table[X, E]) SetColumnLabels(labels []string) error {
	prev, prevErr := t.depMeta.ValueArray(LabelsKey)
	if err := t.depMeta.SetValueArray(LabelsKey, metadata.StringArray(labels...)); err != nil {
		return err
	}
	if err := t.ValidateDependentsMetaData(); err != nil {
		if prevErr == nil {
			t.depMeta.SetValueArray(LabelsKey, prev)
		} else {
			t.depMeta.RemoveValueArray(LabelsKey)
		}
		return err
	}
	return nil
}

// ColumnLabels returns the column labels. It fails with ErrKeyNotFound
// if no labels have been set.
func (t *Table[X, E]) ColumnLabels() ([]string, error) {
	labels, err := t.depMeta.ValueArray(LabelsKey)
	if err != nil {
		return nil, err
	}
	return metadata.Strings(labels)
}

// ColumnLabel returns the label of column i.
func (t *Table[X, E]) ColumnLabel(i int) (string, error) {
	labels, err := t.ColumnLabels()
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(labels) {
		return "", fmt.Errorf("%w: column %d not in [0, %d]",
			scitable.ErrColumnIndexOutOfRange, i, len(labels)-1)
	}
	return labels[i], nil
}

// SetColumnLabel replaces the label of column i, leaving the others
// untouched.
func (t *Table[X, E]) SetColumnLabel(i int, label string) error {
	labels, err := t.depMeta.ValueArray(LabelsKey)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(labels) {
		return fmt.Errorf("%w: column %d not in [0, %d]",
			scitable.ErrColumnIndexOutOfRange, i, len(labels)-1)
	}
	labels[i] = metadata.String(label)
	return nil
}

// ColumnIndex resolves a column label to its index. It fails with
// ErrKeyNotFound if the label is absent (or no labels are set).
func (t *Table[X, E]) ColumnIndex(label string) (int, error) {
	labels, err := t.ColumnLabels()
	if err != nil {
		return 0, fmt.Errorf("%w: column label %q", scitable.ErrKeyNotFound, label)
	}
	for i, l := range labels {
		if l == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: column label %q", scitable.ErrKeyNotFound, label)
}

// HasColumn reports whether some column carries the given label.
func (t *Table[X, E]) HasColumn(label string) bool {
	_, err := t.ColumnIndex(label)
	return err == nil
}

// HasColumnIndex reports whether i is a valid column index.
func (t *Table[X, E]) HasColumnIndex(i int) bool {
	return i >= 0 && i < t.dep.cols
}
