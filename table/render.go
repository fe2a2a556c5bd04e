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
	"strings"

	"github.com/goccy/go-json"
)

const renderSeparator = "----------------------------------------------------------\n"

// String renders the table for debugging: row and column counts, the
// column labels, then one line per row as the independent value
// followed by the dependent row values. Metadata is excluded since its
// values need not be printable. The format is a debug aid, not
// parseable, and has no inverse.
func (t *Table[X, E]) String() string {
	var b strings.Builder
	b.WriteString(renderSeparator)
	fmt.Fprintf(&b, "NumRows: %d\n", t.NumRows())
	fmt.Fprintf(&b, "NumCols: %d\n", t.NumColumns())
	b.WriteString("Column-Labels: ")
	if labels, err := t.ColumnLabels(); err == nil && len(labels) > 0 {
		fmt.Fprintf(&b, "['%s'", labels[0])
		for _, label := range labels[1:] {
			fmt.Fprintf(&b, " '%s'", label)
		}
		b.WriteString("]")
	}
	b.WriteString("\n")
	for r := 0; r < t.NumRows(); r++ {
		fmt.Fprintf(&b, "%v", t.ind[r])
		for _, elem := range t.dep.row(r) {
			fmt.Fprintf(&b, " %v", elem)
		}
		b.WriteString("\n")
	}
	b.WriteString(renderSeparator)
	return b.String()
}

// MarshalJSON renders the table's shape, labels and data as JSON, for
// debugging and loosely coupled consumers. Metadata is excluded, as in
// String.
func (t *Table[X, E]) MarshalJSON() ([]byte, error) {
	labels, err := t.ColumnLabels()
	if err != nil {
		labels = nil
	}
	rows := make([][]E, t.NumRows())
	for r := range rows {
		rows[r] = t.dep.row(r)
	}
	return json.Marshal(struct {
		NumRows     int      `json:"nrows"`
		NumCols     int      `json:"ncols"`
		Labels      []string `json:"labels,omitempty"`
		Independent []X      `json:"independent"`
		Rows        [][]E    `json:"rows"`
	}{
		NumRows:     t.NumRows(),
		NumCols:     t.NumColumns(),
		Labels:      labels,
		Independent: t.ind,
		Rows:        rows,
	})
}
