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

// Package ring implements the ring-buffer family of blurs (stack blur,
// fast gaussian, fast gaussian next, and the supplemented fast gaussian
// superior) whose cost per output pixel is O(1) regardless of kernel
// radius, unlike the general O(radius) separable convolution in
// internal/convolve. It reuses internal/arena for border-extended access
// to the small lookahead/lookbehind window each running sum needs.
package ring

import (
	"github.com/ajroetker/goblur/internal/arena"
	"github.com/ajroetker/goblur/internal/border"
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/ajroetker/goblur/internal/simd"
)

// toFloat64 widens the float32 ring-buffer line value to the float64
// accumulator the float storage path sums into. u8/u16 storage never
// reaches this: boxBlur1D/stackBlur1D route those through the int32/int64
// accumulators in boxBlur1DU8/U16 and stackBlur1DU8/U16 instead.
func toFloat64(v float32) float64 {
	return float64(v)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// boxBlur1D computes a running-sum box blur of the given radius along one
// axis: each output is the average of a window of 2*radius+1 samples.
// Sliding the window by one position adds exactly one incoming sample and
// removes exactly one outgoing sample, so the whole pass is O(n) regardless
// of radius. Integer storage (u8, u16) runs the running sum through an
// int32/int64 accumulator sized to the worst-case window total; float
// storage accumulates in float64.
func boxBlur1D[T raster.Element](dst, src []T, n, k, radius int, policy border.Policy, fill []T) {
	if radius <= 0 {
		copy(dst[:n*k], src[:n*k])
		return
	}
	switch any(src).(type) {
	case []uint8:
		boxBlur1DU8(any(dst).([]uint8), any(src).([]uint8), n, k, radius, policy, any(fill).([]uint8))
	case []uint16:
		boxBlur1DU16(any(dst).([]uint16), any(src).([]uint16), n, k, radius, policy, any(fill).([]uint16))
	default:
		boxBlur1DFloat(any(dst).([]float32), any(src).([]float32), n, k, radius, policy, any(fill).([]float32))
	}
}

func boxBlur1DU8(dst, src []uint8, n, k, radius int, policy border.Policy, fill []uint8) {
	line := arena.NewLine[uint8](n, k, radius)
	arena.Fill(line, src, policy, fill)
	divisor := float64(2*radius + 1)

	for c := range k {
		var sum int32
		for d := -radius; d <= radius; d++ {
			sum += simd.WidenU8(line.At(d, c))
		}
		for x := range n {
			dst[x*k+c] = simd.NarrowI32ToU8(int32(simd.RoundHalfToEven(float64(sum) / divisor)))
			if x+1 < n {
				sum += simd.WidenU8(line.At(x+1+radius, c)) - simd.WidenU8(line.At(x-radius, c))
			}
		}
	}
}

func boxBlur1DU16(dst, src []uint16, n, k, radius int, policy border.Policy, fill []uint16) {
	line := arena.NewLine[uint16](n, k, radius)
	arena.Fill(line, src, policy, fill)
	divisor := float64(2*radius + 1)

	for c := range k {
		var sum int64
		for d := -radius; d <= radius; d++ {
			sum += simd.WidenU16(line.At(d, c))
		}
		for x := range n {
			dst[x*k+c] = simd.NarrowI64ToU16(int64(simd.RoundHalfToEven(float64(sum) / divisor)))
			if x+1 < n {
				sum += simd.WidenU16(line.At(x+1+radius, c)) - simd.WidenU16(line.At(x-radius, c))
			}
		}
	}
}

func boxBlur1DFloat(dst, src []float32, n, k, radius int, policy border.Policy, fill []float32) {
	line := arena.NewLine[float32](n, k, radius)
	arena.Fill(line, src, policy, fill)
	divisor := float64(2*radius + 1)

	for c := range k {
		sum := 0.0
		for d := -radius; d <= radius; d++ {
			sum += toFloat64(line.At(d, c))
		}
		for x := range n {
			dst[x*k+c] = simd.StoreFloatAccumulator[float32](sum / divisor)
			if x+1 < n {
				sum += toFloat64(line.At(x+1+radius, c)) - toFloat64(line.At(x-radius, c))
			}
		}
	}
}
