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

package scitable

import "errors"

// Error kinds reported by the scitable packages. Callers match them
// with errors.Is; the wrapped message carries the offending index,
// bounds or counts.
var (
	// ErrInvalidArgument indicates malformed caller input, such as a
	// zero-sized block request or an ambiguous table selection.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIncorrectNumColumns indicates an appended row whose width
	// disagrees with the table's established column count.
	ErrIncorrectNumColumns = errors.New("incorrect number of columns")

	// ErrInvalidRow indicates a row rejected by a table's row
	// validation hook.
	ErrInvalidRow = errors.New("invalid row")

	// ErrRowIndexOutOfRange indicates a row index outside [0, rows-1].
	ErrRowIndexOutOfRange = errors.New("row index out of range")

	// ErrColumnIndexOutOfRange indicates a column index outside
	// [0, cols-1].
	ErrColumnIndexOutOfRange = errors.New("column index out of range")

	// ErrKeyNotFound indicates a failed label or metadata key lookup.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch indicates a metadata value accessed as the wrong
	// kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingMetaData indicates a mandatory metadata key (such as
	// "labels") absent at validation time.
	ErrMissingMetaData = errors.New("missing metadata")

	// ErrMetaDataLengthZero indicates a mandatory metadata array that
	// is present but empty.
	ErrMetaDataLengthZero = errors.New("metadata length zero")

	// ErrIncorrectMetaDataLength indicates a metadata array whose
	// length disagrees with the table's column count.
	ErrIncorrectMetaDataLength = errors.New("incorrect metadata length")
)
