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

package ring

import (
	"github.com/ajroetker/goblur/internal/arena"
	"github.com/ajroetker/goblur/internal/border"
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/ajroetker/goblur/internal/simd"
)

// stackBlur1D computes the triangular-weighted blur of radius r (weight
// r+1-|d| at distance d, normalized by (r+1)^2, the weighting Mario
// Klingemann's stack blur algorithm uses) in O(n), independent of r.
//
// The triangular weighted sum T(x) = sum_{d=-r}^{r} (r+1-|d|) v[x+d] equals
// sum_{k=0}^{r} S_k(x), where S_k is the plain box sum of radius k: each
// v[x+d] appears in S_k for every k from |d| to r, i.e. exactly (r+1-|d|)
// times. Differencing that identity between x and x+1 gives a recurrence
// that needs no re-summation over the window:
//
//	T(x+1) = T(x) + sumIn(x) - sumOut(x)
//	sumIn(x)  = sum_{j=x+1}^{x+1+r}   v[j]   (the r+1 values entering ahead)
//	sumOut(x) = sum_{j=x-r}^{x}       v[j]   (the r+1 values at or behind x)
//
// and sumIn/sumOut are themselves plain running sums, each updated by one
// add and one subtract per step. This needs border-extended access out to
// r+1 ahead of the window, one more than the triangle's own radius (r
// behind it is enough); the line is padded by r+1 on both sides. The weights are
// integers, so u8/u16 storage carries tSum/sumIn/sumOut in an int32/int64
// accumulator; float storage accumulates in float64.
func stackBlur1D[T raster.Element](dst, src []T, n, k, radius int, policy border.Policy, fill []T) {
	if radius <= 0 {
		copy(dst[:n*k], src[:n*k])
		return
	}
	switch any(src).(type) {
	case []uint8:
		stackBlur1DU8(any(dst).([]uint8), any(src).([]uint8), n, k, radius, policy, any(fill).([]uint8))
	case []uint16:
		stackBlur1DU16(any(dst).([]uint16), any(src).([]uint16), n, k, radius, policy, any(fill).([]uint16))
	default:
		stackBlur1DFloat(any(dst).([]float32), any(src).([]float32), n, k, radius, policy, any(fill).([]float32))
	}
}

func stackBlur1DU8(dst, src []uint8, n, k, radius int, policy border.Policy, fill []uint8) {
	line := arena.NewLine[uint8](n, k, radius+1)
	arena.Fill(line, src, policy, fill)
	divisor := float64((radius + 1) * (radius + 1))

	for c := range k {
		var tSum int32
		for d := -radius; d <= radius; d++ {
			w := int32(radius + 1 - absInt(d))
			tSum += w * simd.WidenU8(line.At(d, c))
		}
		var sumIn int32
		for j := 1; j <= radius+1; j++ {
			sumIn += simd.WidenU8(line.At(j, c))
		}
		var sumOut int32
		for j := -radius; j <= 0; j++ {
			sumOut += simd.WidenU8(line.At(j, c))
		}

		for x := range n {
			dst[x*k+c] = simd.NarrowI32ToU8(int32(simd.RoundHalfToEven(float64(tSum) / divisor)))
			if x+1 < n {
				tSum += sumIn - sumOut
				sumIn += simd.WidenU8(line.At(x+radius+2, c)) - simd.WidenU8(line.At(x+1, c))
				sumOut += simd.WidenU8(line.At(x+1, c)) - simd.WidenU8(line.At(x-radius, c))
			}
		}
	}
}

func stackBlur1DU16(dst, src []uint16, n, k, radius int, policy border.Policy, fill []uint16) {
	line := arena.NewLine[uint16](n, k, radius+1)
	arena.Fill(line, src, policy, fill)
	divisor := float64((radius + 1) * (radius + 1))

	for c := range k {
		var tSum int64
		for d := -radius; d <= radius; d++ {
			w := int64(radius + 1 - absInt(d))
			tSum += w * simd.WidenU16(line.At(d, c))
		}
		var sumIn int64
		for j := 1; j <= radius+1; j++ {
			sumIn += simd.WidenU16(line.At(j, c))
		}
		var sumOut int64
		for j := -radius; j <= 0; j++ {
			sumOut += simd.WidenU16(line.At(j, c))
		}

		for x := range n {
			dst[x*k+c] = simd.NarrowI64ToU16(int64(simd.RoundHalfToEven(float64(tSum) / divisor)))
			if x+1 < n {
				tSum += sumIn - sumOut
				sumIn += simd.WidenU16(line.At(x+radius+2, c)) - simd.WidenU16(line.At(x+1, c))
				sumOut += simd.WidenU16(line.At(x+1, c)) - simd.WidenU16(line.At(x-radius, c))
			}
		}
	}
}

func stackBlur1DFloat(dst, src []float32, n, k, radius int, policy border.Policy, fill []float32) {
	line := arena.NewLine[float32](n, k, radius+1)
	arena.Fill(line, src, policy, fill)
	divisor := float64((radius + 1) * (radius + 1))

	for c := range k {
		tSum := 0.0
		for d := -radius; d <= radius; d++ {
			w := float64(radius + 1 - absInt(d))
			tSum += w * toFloat64(line.At(d, c))
		}
		sumIn := 0.0
		for j := 1; j <= radius+1; j++ {
			sumIn += toFloat64(line.At(j, c))
		}
		sumOut := 0.0
		for j := -radius; j <= 0; j++ {
			sumOut += toFloat64(line.At(j, c))
		}

		for x := range n {
			dst[x*k+c] = simd.StoreFloatAccumulator[float32](tSum / divisor)
			if x+1 < n {
				tSum += sumIn - sumOut
				sumIn += toFloat64(line.At(x+radius+2, c)) - toFloat64(line.At(x+1, c))
				sumOut += toFloat64(line.At(x+1, c)) - toFloat64(line.At(x-radius, c))
			}
		}
	}
}
