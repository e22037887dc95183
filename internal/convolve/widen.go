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

package convolve

import "github.com/ajroetker/goblur/internal/raster"

// toFloat64 widens one storage element to float64; the convolution inner
// loop then narrows the chosen accumulator type from this common widening,
// the same "no generic accumulator relationship" workaround internal/simd's
// convert.go uses for its Widen/Narrow pairs.
func toFloat64[T raster.Element](v T) float64 {
	switch x := any(v).(type) {
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case float32:
		return float64(x)
	default:
		return 0
	}
}

// toAccum narrows a float64 widening into accumulator lane type AccT.
func toAccum[AccT any](f float64) AccT {
	var zero AccT
	switch any(zero).(type) {
	case float32:
		return any(float32(f)).(AccT)
	case float64:
		return any(f).(AccT)
	case int64:
		return any(int64(f)).(AccT)
	default:
		return zero
	}
}

// widenLine fills out (preallocated, same length as src) with each
// element of src converted to accumulator type AccT.
func widenLine[T raster.Element, AccT any](src []T, out []AccT) {
	for i, v := range src {
		out[i] = toAccum[AccT](toFloat64(v))
	}
}

// toAccumSlice converts a float64 weight vector (kernel.Kernel's native
// representation) into accumulator lane type AccT.
func toAccumSlice[AccT any](weights []float64) []AccT {
	out := make([]AccT, len(weights))
	for i, w := range weights {
		out[i] = toAccum[AccT](w)
	}
	return out
}
