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

import "unsafe"

var ScalarTraits scalarTraits

type scalarTraits struct{}

// CastToFloat64 reinterprets the slice s as a []float64 sharing the
// same backing storage. Scalar is a defined float64, so the layouts are
// identical.
func (scalarTraits) CastToFloat64(s []Scalar) []float64 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&s[0])), len(s))
}

// CastFromFloat64 reinterprets the slice f as a []Scalar sharing the
// same backing storage.
func (scalarTraits) CastFromFloat64(f []float64) []Scalar {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice((*Scalar)(unsafe.Pointer(&f[0])), len(f))
}
