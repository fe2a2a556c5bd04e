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
	"github.com/scitable/scitable/metadata"
	"github.com/scitable/scitable/table"
)

// threeByThreeVec3 builds the reference Vec3 table: columns col0..col2,
// rows cycling the vectors (1,1,1), (2,2,2), (3,3,3).
func threeByThreeVec3(t *testing.T) *table.Table[float64, scitable.Vec3] {
	t.Helper()
	dt := table.New[float64, scitable.Vec3]()
	require.NoError(t, dt.SetColumnLabels([]string{"col0", "col1", "col2"}))
	require.NoError(t, dt.AppendRow(0.1, []scitable.Vec3{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}))
	require.NoError(t, dt.AppendRow(0.2, []scitable.Vec3{{3, 3, 3}, {1, 1, 1}, {2, 2, 2}}))
	require.NoError(t, dt.AppendRow(0.3, []scitable.Vec3{{2, 2, 2}, {3, 3, 3}, {1, 1, 1}}))
	return dt
}

func TestFlattenVec3(t *testing.T) {
	src := threeByThreeVec3(t)

	flat, err := table.Flatten(src)
	require.NoError(t, err)

	labels, err := flat.ColumnLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"col0_1", "col0_2", "col0_3",
		"col1_1", "col1_2", "col1_3",
		"col2_1", "col2_2", "col2_3",
	}, labels)

	assert.Equal(t, 3, flat.NumRows())
	assert.Equal(t, 9, flat.NumColumns())
	assert.Equal(t, src.IndependentColumn(), flat.IndependentColumn())

	row0, err := flat.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []scitable.Scalar{1, 1, 1, 2, 2, 2, 3, 3, 3}, row0)

	row1, err := flat.Row(1)
	require.NoError(t, err)
	assert.Equal(t, scitable.Scalar(3), row1[0])
	assert.Equal(t, scitable.Scalar(2), row1[8])

	row2, err := flat.Row(2)
	require.NoError(t, err)
	assert.Equal(t, scitable.Scalar(2), row2[0])
	assert.Equal(t, scitable.Scalar(1), row2[8])
}

func TestFlattenWithSuffixes(t *testing.T) {
	src := threeByThreeVec3(t)

	flat, err := table.FlattenWithSuffixes(src, []string{"_x", "_y", "_z"})
	require.NoError(t, err)

	labels, err := flat.ColumnLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"col0_x", "col0_y", "col0_z",
		"col1_x", "col1_y", "col1_z",
		"col2_x", "col2_y", "col2_z",
	}, labels)
	assert.Equal(t, 3, flat.NumRows())
	assert.Equal(t, 9, flat.NumColumns())
}

func TestFlattenScalarIdentity(t *testing.T) {
	src := fiveByFour(t)

	flat, err := table.Flatten(src)
	require.NoError(t, err)

	assert.Equal(t, src.NumRows(), flat.NumRows())
	assert.Equal(t, src.NumColumns(), flat.NumColumns())

	labels, err := flat.ColumnLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{"0_1", "1_1", "2_1", "3_1"}, labels)

	for i := 0; i < src.NumRows(); i++ {
		want, err := src.Row(i)
		require.NoError(t, err)
		got, err := flat.Row(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFlattenQuaternion(t *testing.T) {
	dt := table.New[float64, scitable.Quaternion]()
	require.NoError(t, dt.SetColumnLabels([]string{"col0", "col1", "col2"}))
	require.NoError(t, dt.AppendRow(0.1, []scitable.Quaternion{{1, 1, 1, 1}, {2, 2, 2, 2}, {3, 3, 3, 3}}))
	require.NoError(t, dt.AppendRow(0.2, []scitable.Quaternion{{3, 3, 3, 3}, {1, 1, 1, 1}, {2, 2, 2, 2}}))

	flat, err := table.Flatten(dt)
	require.NoError(t, err)
	assert.Equal(t, 2, flat.NumRows())
	assert.Equal(t, 12, flat.NumColumns())
}

func TestFlattenSpatialVec(t *testing.T) {
	dt := table.New[float64, scitable.SpatialVec]()
	require.NoError(t, dt.SetColumnLabels([]string{"col0", "col1"}))
	require.NoError(t, dt.AppendRow(0.1, []scitable.SpatialVec{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	}))

	flat, err := table.Flatten(dt)
	require.NoError(t, err)
	assert.Equal(t, 1, flat.NumRows())
	assert.Equal(t, 12, flat.NumColumns())

	// outer index major within each element, elements in column order
	row, err := flat.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []scitable.Scalar{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, row)
}

func TestFlattenErrors(t *testing.T) {
	noLabels := table.New[float64, scitable.Vec3]()
	require.NoError(t, noLabels.AppendRow(0, []scitable.Vec3{{1, 1, 1}}))
	_, err := table.Flatten(noLabels)
	assert.ErrorIs(t, err, scitable.ErrInvalidArgument)

	empty := table.New[float64, scitable.Vec3]()
	require.NoError(t, empty.SetColumnLabels([]string{"a"}))
	_, err = table.Flatten(empty)
	assert.ErrorIs(t, err, scitable.ErrInvalidArgument)

	src := threeByThreeVec3(t)
	_, err = table.FlattenWithSuffixes(src, []string{"_x", "_y"})
	assert.ErrorIs(t, err, scitable.ErrInvalidArgument)
}

func TestFlattenMetaData(t *testing.T) {
	src := threeByThreeVec3(t)
	require.NoError(t, src.DependentsMetaData().SetValueArray("units",
		metadata.StringArray("m", "mm", "cm")))
	require.NoError(t, src.DependentsMetaData().SetValueArray("column-index",
		metadata.Uint64Array(0, 1, 2)))
	src.TableMetaData().SetValue("DataRate", metadata.Uint64(600))
	src.IndependentMetaData().SetValue(table.LabelsKey, metadata.String("time"))

	flat, err := table.Flatten(src)
	require.NoError(t, err)

	// string metadata is replicated per component, in label order
	units, err := flat.DependentsMetaData().ValueArray("units")
	require.NoError(t, err)
	got, err := metadata.Strings(units)
	require.NoError(t, err)
	assert.Equal(t, []string{"m", "m", "m", "mm", "mm", "mm", "cm", "cm", "cm"}, got)

	// non-string metadata cannot be replicated and is dropped
	assert.False(t, flat.DependentsMetaData().Has("column-index"))

	// table and independent metadata travel wholesale
	v, err := flat.TableMetaData().Value("DataRate")
	require.NoError(t, err)
	u, err := v.AsUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(600), u)
	require.NoError(t, flat.ValidateIndependentMetaData())

	// the source is untouched
	assert.Equal(t, 3, src.NumColumns())
	srcLabels, err := src.ColumnLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{"col0", "col1", "col2"}, srcLabels)
	assert.True(t, src.DependentsMetaData().Has("column-index"))
}
