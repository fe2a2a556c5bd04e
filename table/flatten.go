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
	"strconv"

	"github.com/scitable/scitable"
	"github.com/scitable/scitable/metadata"
)

// Flatten re-expresses a composite-element table as a scalar-element
// table, expanding each column into its scalar components with default
// label suffixes "_1".."_N". See FlattenWithSuffixes.
func Flatten[X scitable.Index, E scitable.Element](src *Table[X, E]) (*Table[X, scitable.Scalar], error) {
	return FlattenWithSuffixes(src, nil)
}

// FlattenWithSuffixes re-expresses a composite-element table as a
// scalar-element table. Each source column labeled L becomes one
// destination column per element component, labeled L+suffix in
// component order; components split in the shape-defined order (vector
// components in order, matrix-of-vectors outer index major). Rows keep
// their independent values. The source table is untouched.
//
// String-valued dependents metadata is replicated per component to
// match the new column count; value arrays of any other kind are
// dropped, since there is no principled per-component expansion for
// them. Table and independent metadata are copied wholesale.
//
// The source must have column labels and at least one row and column,
// and suffixes, when supplied, must have exactly one entry per element
// component; ErrInvalidArgument otherwise.
func FlattenWithSuffixes[X scitable.Index, E scitable.Element](src *Table[X, E], suffixes []string) (*Table[X, scitable.Scalar], error) {
	n := scitable.NumElementComponents[E]()

	if !src.HasColumnLabels() {
		return nil, fmt.Errorf("%w: source table has no column labels",
			scitable.ErrInvalidArgument)
	}
	if src.NumRows() == 0 || src.NumColumns() == 0 {
		return nil, fmt.Errorf("%w: source table has zero rows/columns",
			scitable.ErrInvalidArgument)
	}
	if len(suffixes) != 0 && len(suffixes) != n {
		return nil, fmt.Errorf("%w: got %d suffixes for %d components per element",
			scitable.ErrInvalidArgument, len(suffixes), n)
	}

	dst := New[X, scitable.Scalar]()
	dst.tableMeta = src.tableMeta.Clone()
	dst.indMeta = src.indMeta.Clone()

	for _, key := range src.depMeta.Keys() {
		if key == LabelsKey {
			continue
		}
		vals, err := src.depMeta.ValueArray(key)
		if err != nil {
			continue // single values carry no per-column information
		}
		ss, err := metadata.Strings(vals)
		if err != nil {
			continue // not interpretable as string metadata: drop the key
		}
		rep := make([]metadata.Value, 0, len(ss)*n)
		for _, s := range ss {
			for k := 0; k < n; k++ {
				rep = append(rep, metadata.String(s))
			}
		}
		if err := dst.depMeta.SetValueArray(key, rep); err != nil {
			return nil, err
		}
	}

	srcLabels, err := src.ColumnLabels()
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(srcLabels)*n)
	for _, label := range srcLabels {
		if len(suffixes) == 0 {
			for k := 1; k <= n; k++ {
				labels = append(labels, label+"_"+strconv.Itoa(k))
			}
		} else {
			for _, suffix := range suffixes {
				labels = append(labels, label+suffix)
			}
		}
	}
	if err := dst.SetColumnLabels(labels); err != nil {
		return nil, err
	}

	comps := make([]float64, 0, src.NumColumns()*n)
	for r := 0; r < src.NumRows(); r++ {
		srcRow := src.dep.row(r)
		comps = comps[:0]
		for _, elem := range srcRow {
			comps = elem.AppendComponents(comps)
		}
		if err := dst.AppendRow(src.ind[r], scitable.ScalarTraits.CastFromFloat64(comps)); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
