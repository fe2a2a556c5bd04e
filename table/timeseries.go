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
	"math"

	"github.com/scitable/scitable"
)

// NewTimeSeriesTable returns a table whose independent column holds
// time stamps and whose row validator enforces the time-series
// invariants: every time must be finite and strictly greater than the
// previous row's time (and strictly less than the next row's time when
// an existing row's time is replaced). Violations fail the mutating
// operation with ErrInvalidRow.
func NewTimeSeriesTable[E scitable.Element]() *Table[float64, E] {
	t := New[float64, E]()
	t.SetRowValidator(validateTimeRow[E])
	return t
}

// validateTimeRow reads the neighbor times through the table it is
// invoked on, never the one that installed it, so clones of a
// time-series table validate against their own column.
func validateTimeRow[E scitable.Element](t *Table[float64, E], rowIndex int, time float64, _ []E) error {
	if math.IsNaN(time) || math.IsInf(time, 0) {
		return fmt.Errorf("time %v for row %d is not finite", time, rowIndex)
	}
	times := t.IndependentColumn()
	if rowIndex > 0 && time <= times[rowIndex-1] {
		return fmt.Errorf("time %v for row %d is not greater than the previous time %v",
			time, rowIndex, times[rowIndex-1])
	}
	if rowIndex+1 < len(times) && time >= times[rowIndex+1] {
		return fmt.Errorf("time %v for row %d is not less than the next time %v",
			time, rowIndex, times[rowIndex+1])
	}
	return nil
}
