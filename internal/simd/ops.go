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

// This file provides the portable arithmetic the row/column convolution
// passes and ring-buffer blurs build on. Every operation is a plain Go loop
// over Vec[T]'s backing slice; see dispatch.go for how batch width varies
// with DispatchLevel.

// Load copies up to MaxLanes[T]() elements from src into a new vector.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes v's lanes into dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set returns a vector with every lane equal to value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero returns a vector of zero-valued lanes.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Add performs lanewise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: out}
}

// Sub performs lanewise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: out}
}

// Mul performs lanewise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: out}
}

// FMA computes a*b+c per lane. For float accumulators this uses math.FMA
// (single rounding); for integer accumulators it is a plain multiply-add
// (integers have no rounding to save).
func FMA[T Lanes](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	out := make([]T, n)
	for i := range n {
		switch av := any(a.data[i]).(type) {
		case float32:
			bv := any(b.data[i]).(float32)
			cv := any(c.data[i]).(float32)
			out[i] = any(float32(math.FMA(float64(av), float64(bv), float64(cv)))).(T)
		case float64:
			bv := any(b.data[i]).(float64)
			cv := any(c.data[i]).(float64)
			out[i] = any(math.FMA(av, bv, cv)).(T)
		default:
			out[i] = a.data[i]*b.data[i] + c.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Min returns the lanewise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		if a.data[i] < b.data[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Max returns the lanewise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		if a.data[i] > b.data[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Abs returns the lanewise absolute value.
func Abs[T FloatsNative | SignedInts](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			x = -x
		}
		out[i] = x
	}
	return Vec[T]{data: out}
}

// ClampScalars clamps each lane of v into [lo, hi].
func ClampScalars[T Lanes](v Vec[T], lo, hi T) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		if x < lo {
			x = lo
		}
		if x > hi {
			x = hi
		}
		out[i] = x
	}
	return Vec[T]{data: out}
}

// ShiftRight performs an arithmetic (sign-extending) right shift on signed
// integer lanes.
func ShiftRight[T SignedInts](v Vec[T], bits int) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = x >> bits
	}
	return Vec[T]{data: out}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}
