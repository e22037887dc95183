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

package simd

import "math"

// This file implements the numeric-storage traits needed for narrowing:
// rounding a wide accumulator down to a narrow storage element with
// round-half-to-even and saturation to [type_min, type_max].

// StorageBounds returns the [min, max] representable values for a storage
// element type as float64, used by both the float and fixed-point store
// paths below.
func StorageBounds[T UnsignedInts | FloatsNative]() (lo, hi float64) {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 0, 255
	case uint16:
		return 0, 65535
	case uint32:
		return 0, 4294967295
	case float32:
		return -math.MaxFloat32, math.MaxFloat32
	case float64:
		return -math.MaxFloat64, math.MaxFloat64
	default:
		return 0, 0
	}
}

// RoundHalfToEven rounds x to the nearest integer, breaking exact .5 ties
// toward the even neighbor.
func RoundHalfToEven(x float64) float64 {
	floor := math.Floor(x)
	diff := x - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			return floor
		}
		return floor + 1
	}
}

// StoreFloatAccumulator rounds and saturates a float64 accumulator (used by
// Exact and Zealous convolution modes) into a storage element of type T.
func StoreFloatAccumulator[T UnsignedInts | FloatsNative](acc float64) T {
	var zero T
	if _, isFloat := any(zero).(float32); isFloat {
		return T(any(float32(acc)).(T))
	}
	if _, isFloat := any(zero).(float64); isFloat {
		return T(any(acc).(T))
	}
	lo, hi := StorageBounds[T]()
	rounded := RoundHalfToEven(acc)
	if rounded < lo {
		rounded = lo
	}
	if rounded > hi {
		rounded = hi
	}
	switch any(zero).(type) {
	case uint8:
		return T(any(uint8(rounded)).(T))
	case uint16:
		return T(any(uint16(rounded)).(T))
	case uint32:
		return T(any(uint32(rounded)).(T))
	default:
		return zero
	}
}

// StoreFixedPoint implements the Q-format store:
//
//	dest = saturate((acc + 2^(Q-1)) >> Q)
//
// acc is the integer accumulator after the dot product against Q-format
// integer weights; q is the fractional bit count (7, 15, or 31).
func StoreFixedPoint[T UnsignedInts](acc int64, q int) T {
	half := int64(1) << (q - 1)
	shifted := (acc + half) >> uint(q)
	lo, hi := StorageBounds[T]()
	if float64(shifted) < lo {
		shifted = int64(lo)
	}
	if float64(shifted) > hi {
		shifted = int64(hi)
	}
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(any(uint8(shifted)).(T))
	case uint16:
		return T(any(uint16(shifted)).(T))
	case uint32:
		return T(any(uint32(shifted)).(T))
	default:
		return zero
	}
}

// ClampFloat32 clamps x into [lo, hi] for the float storage paths (used
// when a float accumulator could produce NaN/Inf from a pathological
// kernel; saturating and continuing beats returning an error mid-pass).
func ClampFloat32(x, lo, hi float32) float32 {
	if math.IsNaN(float64(x)) {
		return x
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
