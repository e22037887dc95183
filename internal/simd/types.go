// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package simd provides the portable vector-lane primitives and runtime
// SIMD-level dispatch used by the row/column convolution passes and the
// ring-buffer blurs. A Vec[T] wraps a slice of lanes; on every dispatch
// level the arithmetic itself runs as plain Go, but MaxLanes grows with the
// probed CPU capability so callers batch more elements per inner-loop
// iteration on wider hardware.
package simd

// FloatsNative is a constraint for the floating-point element/accumulator
// types this library ever stores a raster in or accumulates with (f32, f64).
type FloatsNative interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer accumulator types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer storage types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32
}

// Integers is a constraint for all integer lane types used here.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for every type that can occupy a SIMD-shaped lane:
// the three storage element types (u8, u16, f32), their accumulator
// widenings (i32, i64, f64), and f32's own promotion (f64).
type Lanes interface {
	FloatsNative | Integers
}

// Vec is a portable vector handle. It always wraps a Go slice; there is no
// hardware-intrinsic backing (see DESIGN.md "Open Question resolutions"):
// every DispatchLevel here runs this slice-backed implementation, just at
// a different batch width.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes currently held.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data exposes the underlying lanes; for tests and tail handling only.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask holds one boolean per lane.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in the mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}
