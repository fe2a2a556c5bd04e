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

import "golang.org/x/exp/constraints"

// Scalar is the one-component element shape. A table of Scalar elements
// is the fully flattened form every composite-element table reduces to.
type Scalar float64

// Vec2 is a fixed two-component vector element.
type Vec2 [2]float64

// Vec3 is a fixed three-component vector element, the usual shape for
// marker positions and other spatial samples.
type Vec3 [3]float64

// Quaternion is a fixed four-component element (scalar part first).
type Quaternion [4]float64

// Vec6 is a fixed six-component vector element.
type Vec6 [6]float64

// SpatialVec is a fixed 2x3 matrix-of-vectors element, e.g. the
// rotational and translational halves of a spatial quantity. Its scalar
// components are ordered outer index major.
type SpatialVec [2]Vec3

// NumComponents returns 1.
func (Scalar) NumComponents() int { return 1 }

// NumComponents returns 2.
func (Vec2) NumComponents() int { return 2 }

// NumComponents returns 3.
func (Vec3) NumComponents() int { return 3 }

// NumComponents returns 4.
func (Quaternion) NumComponents() int { return 4 }

// NumComponents returns 6.
func (Vec6) NumComponents() int { return 6 }

// NumComponents returns 6.
func (SpatialVec) NumComponents() int { return 6 }

// AppendComponents appends the scalar value to dst.
func (s Scalar) AppendComponents(dst []float64) []float64 {
	return append(dst, float64(s))
}

// AppendComponents appends the vector components, in order, to dst.
func (v Vec2) AppendComponents(dst []float64) []float64 {
	return append(dst, v[0], v[1])
}

// AppendComponents appends the vector components, in order, to dst.
func (v Vec3) AppendComponents(dst []float64) []float64 {
	return append(dst, v[0], v[1], v[2])
}

// AppendComponents appends the quaternion components, in order, to dst.
func (q Quaternion) AppendComponents(dst []float64) []float64 {
	return append(dst, q[0], q[1], q[2], q[3])
}

// AppendComponents appends the vector components, in order, to dst.
func (v Vec6) AppendComponents(dst []float64) []float64 {
	return append(dst, v[0], v[1], v[2], v[3], v[4], v[5])
}

// AppendComponents appends the components outer index major: all of
// row 0, then all of row 1.
func (v SpatialVec) AppendComponents(dst []float64) []float64 {
	for i := range v {
		dst = v[i].AppendComponents(dst)
	}
	return dst
}

// Element is the type constraint for the dependent-element shape of a
// table. It is a closed set: exactly the shapes above satisfy it, so an
// unsupported shape is rejected when a table type is instantiated, not
// at run time. Every member knows its scalar component count and how to
// split itself into components in a deterministic order.
type Element interface {
	Scalar | Vec2 | Vec3 | Quaternion | Vec6 | SpatialVec

	NumComponents() int
	AppendComponents(dst []float64) []float64
}

// Index is the type constraint for the independent column of a table.
// We accept floating point types (time stamps) and signed integer types
// (sample or frame counters). Unsigned types are excluded: deltas on
// the independent axis are naturally signed.
type Index interface {
	constraints.Float | constraints.Signed
}

// NumElementComponents returns the scalar component count of the
// element shape E. It is a pure function of the type.
func NumElementComponents[E Element]() int {
	var zero E
	return zero.NumComponents()
}
