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
	"slices"

	"github.com/scitable/scitable"
)

// AnyTable is the type-erased handle to a table of some instantiation.
// The set of implementations is closed: only *Table values satisfy it.
// FromFile recovers the concrete instantiation from an AnyTable.
type AnyTable interface {
	NumRows() int
	NumColumns() int
	NumComponentsPerElement() int

	isTable()
}

func (t *Table[X, E]) isTable() {}

// TableSet is an ordered mapping from table name to table, as produced
// by a file adapter for formats that may carry several named tables.
type TableSet struct {
	names  []string
	tables map[string]AnyTable
}

// NewTableSet returns an empty table set.
func NewTableSet() *TableSet {
	return &TableSet{tables: make(map[string]AnyTable)}
}

// Add registers a table under name. Names must be unique within the
// set; a duplicate fails with ErrInvalidArgument.
func (ts *TableSet) Add(name string, t AnyTable) error {
	if _, ok := ts.tables[name]; ok {
		return fmt.Errorf("%w: duplicate table name %q", scitable.ErrInvalidArgument, name)
	}
	ts.names = append(ts.names, name)
	ts.tables[name] = t
	return nil
}

// Len returns the number of tables in the set.
func (ts *TableSet) Len() int { return len(ts.names) }

// Names returns a copy of the table names in insertion order.
func (ts *TableSet) Names() []string { return slices.Clone(ts.names) }

// Table returns the table registered under name.
func (ts *TableSet) Table(name string) (AnyTable, bool) {
	t, ok := ts.tables[name]
	return t, ok
}

// Reader is the capability required of a file-adapter collaborator:
// given a file path, produce the named tables the file contains.
// Concrete adapters (CSV, motion capture formats, ...) live outside
// this module.
type Reader interface {
	Read(path string) (*TableSet, error)
}

// FromFile constructs a table of the requested instantiation from the
// named table of a file. If the file holds exactly one table the name
// may be empty; with several tables an empty name is ambiguous and
// fails with ErrInvalidArgument, as do an unknown name and a resolved
// table whose concrete element type differs from the one requested.
func FromFile[X scitable.Index, E scitable.Element](r Reader, path, name string) (*Table[X, E], error) {
	set, err := r.Read(path)
	if err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("%w: file %q contains no tables",
			scitable.ErrInvalidArgument, path)
	}

	var abs AnyTable
	if name == "" {
		if set.Len() > 1 {
			return nil, fmt.Errorf("%w: file %q contains more than one table and no table name was given",
				scitable.ErrInvalidArgument, path)
		}
		abs, _ = set.Table(set.Names()[0])
	} else {
		var ok bool
		abs, ok = set.Table(name)
		if !ok {
			return nil, fmt.Errorf("%w: file %q contains no table named %q",
				scitable.ErrInvalidArgument, path, name)
		}
	}

	t, ok := abs.(*Table[X, E])
	if !ok {
		return nil, fmt.Errorf("%w: table cannot be created from file %q: type mismatch",
			scitable.ErrInvalidArgument, path)
	}
	return t, nil
}
