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

package metadata

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/scitable/scitable"
)

// Kind identifies the type a Value carries.
type Kind int8

const (
	KindInvalid Kind = iota
	KindString
	KindUint64
	KindInt64
	KindFloat64
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindUint64:
		return "uint64"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// Value is a tagged metadata value. The kind set is closed: metadata
// carries strings, unsigned and signed integers, and floating point
// values, nothing else. The zero Value is invalid.
type Value struct {
	kind Kind
	str  string
	num  uint64 // bit pattern for the numeric kinds
}

// String returns a Value carrying s.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Uint64 returns a Value carrying u.
func Uint64(u uint64) Value { return Value{kind: KindUint64, num: u} }

// Int64 returns a Value carrying i.
func Int64(i int64) Value { return Value{kind: KindInt64, num: uint64(i)} }

// Float64 returns a Value carrying f.
func Float64(f float64) Value {
	return Value{kind: KindFloat64, num: math.Float64bits(f)}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the value carries anything.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) kindError(want Kind) error {
	return fmt.Errorf("%w: metadata value is %s, not %s",
		scitable.ErrTypeMismatch, v.kind, want)
}

// AsString returns the carried string, or ErrTypeMismatch if the value
// is of another kind.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.kindError(KindString)
	}
	return v.str, nil
}

// AsUint64 returns the carried unsigned integer, or ErrTypeMismatch if
// the value is of another kind.
func (v Value) AsUint64() (uint64, error) {
	if v.kind != KindUint64 {
		return 0, v.kindError(KindUint64)
	}
	return v.num, nil
}

// AsInt64 returns the carried signed integer, or ErrTypeMismatch if
// the value is of another kind.
func (v Value) AsInt64() (int64, error) {
	if v.kind != KindInt64 {
		return 0, v.kindError(KindInt64)
	}
	return int64(v.num), nil
}

// AsFloat64 returns the carried float, or ErrTypeMismatch if the value
// is of another kind.
func (v Value) AsFloat64() (float64, error) {
	if v.kind != KindFloat64 {
		return 0, v.kindError(KindFloat64)
	}
	return math.Float64frombits(v.num), nil
}

// Equal reports whether two values have the same kind and contents.
func (v Value) Equal(o Value) bool { return v == o }

// String implements fmt.Stringer for debugging.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindUint64:
		return strconv.FormatUint(v.num, 10)
	case KindInt64:
		return strconv.FormatInt(int64(v.num), 10)
	case KindFloat64:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64)
	default:
		return "<invalid>"
	}
}

// MarshalJSON renders the carried value as a plain JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindUint64:
		return json.Marshal(v.num)
	case KindInt64:
		return json.Marshal(int64(v.num))
	case KindFloat64:
		return json.Marshal(math.Float64frombits(v.num))
	default:
		return []byte("null"), nil
	}
}

// StringArray builds a homogeneous value array from strings.
func StringArray(ss ...string) []Value {
	vals := make([]Value, len(ss))
	for i, s := range ss {
		vals[i] = String(s)
	}
	return vals
}

// Uint64Array builds a homogeneous value array from unsigned integers.
func Uint64Array(us ...uint64) []Value {
	vals := make([]Value, len(us))
	for i, u := range us {
		vals[i] = Uint64(u)
	}
	return vals
}

// Strings converts a value array to its carried strings. It fails with
// ErrTypeMismatch on the first entry of another kind.
func Strings(vals []Value) ([]string, error) {
	ss := make([]string, len(vals))
	for i, v := range vals {
		s, err := v.AsString()
		if err != nil {
			return nil, err
		}
		ss[i] = s
	}
	return ss, nil
}
