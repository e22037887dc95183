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

import (
	"github.com/ajroetker/goblur/internal/arena"
	"github.com/ajroetker/goblur/internal/border"
	"github.com/ajroetker/goblur/internal/kernel"
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/ajroetker/goblur/internal/schedule"
	"github.com/ajroetker/goblur/internal/simd"
)

// Params bundles the per-pass configuration for the row/column pass: which
// weight vector, which precision mode, and how to extend the border.
// FixedPoint is required (non-nil) iff Precision == FixedPoint; Fill is
// required (len >= channel count) iff Border == border.Constant. Threads
// selects the band count RowPass/ColPass hand to internal/schedule; 0 or 1
// runs sequentially.
type Params[T raster.Element] struct {
	Kernel     *kernel.Kernel
	FixedPoint *kernel.FixedPoint
	Precision  Precision
	Border     border.Policy
	Fill       []T
	Threads    int
}

func validate[T raster.Element](dst, src *raster.Image[T], p Params[T]) error {
	if !raster.SameShape(dst, src) {
		return ErrDimensionMismatch
	}
	if p.Precision == FixedPoint && p.FixedPoint == nil {
		return ErrUnsupportedCombination
	}
	if p.Border == border.Constant && len(p.Fill) < src.Channels() {
		return ErrUnsupportedCombination
	}
	return nil
}

// RowPass filters every row of src independently along the horizontal
// axis into dst. Rows are partitioned into bands per p.Threads
// (internal/schedule), each band owning its own arena.Line scratch so
// bands run data-race-free and, since every row's result depends only on
// that row, the output never depends on band count. dst and src may alias
// distinct backing storage but must agree on shape (else ChannelMismatch).
func RowPass[T raster.Element](dst, src *raster.Image[T], p Params[T]) error {
	if err := validate(dst, src, p); err != nil {
		return err
	}
	width, height, channels := src.Width(), src.Height(), src.Channels()
	if width <= 0 {
		return ErrKernelTooLarge
	}
	radius := p.Kernel.Radius()
	outLen := width * channels

	return schedule.RunBands(height, p.Threads, func(start, end int) error {
		line := arena.NewLine[T](width, channels, radius)
		for y := start; y < end; y++ {
			arena.Fill(line, src.RowSlice(y), p.Border, p.Fill)
			out := convolveLine(line.Padded(), channels, outLen, p)
			copy(dst.RowSlice(y), out)
		}
		return nil
	})
}

// convolveLine runs the windowed dot product for one padded line (a row,
// for RowPass; a gathered column, for ColPass) and narrows the result back
// to storage type T, dispatching on precision and on whether the kernel is
// palindromic.
func convolveLine[T raster.Element](padded []T, channels, outLen int, p Params[T]) []T {
	switch p.Precision {
	case FixedPoint:
		wide := make([]int64, len(padded))
		widenLine(padded, wide)
		var acc []int64
		if p.Kernel.Symmetric() {
			center := p.Kernel.Radius()
			acc = convolveSymmetric(wide, p.FixedPoint.Weights[center:], channels, outLen)
		} else {
			acc = convolveFlat(wide, p.FixedPoint.Weights, channels, outLen)
		}
		out := make([]T, outLen)
		q := int(p.FixedPoint.Q)
		switch o := any(out).(type) {
		case []uint8:
			for i, a := range acc {
				o[i] = simd.StoreFixedPoint[uint8](a, q)
			}
		case []uint16:
			for i, a := range acc {
				o[i] = simd.StoreFixedPoint[uint16](a, q)
			}
		default:
			scale := float64(int64(1) << q)
			for i, a := range acc {
				out[i] = simd.StoreFloatAccumulator[T](float64(a) / scale)
			}
		}
		return out

	case Wide:
		wide := make([]float64, len(padded))
		widenLine(padded, wide)
		var acc []float64
		if p.Kernel.Symmetric() {
			acc = convolveSymmetric(wide, toAccumSlice[float64](p.Kernel.RightHalf()), channels, outLen)
		} else {
			acc = convolveFlat(wide, toAccumSlice[float64](p.Kernel.Weights()), channels, outLen)
		}
		out := make([]T, outLen)
		for i, a := range acc {
			out[i] = simd.StoreFloatAccumulator[T](a)
		}
		return out

	default: // Standard
		wide := make([]float32, len(padded))
		widenLine(padded, wide)
		var acc []float32
		if p.Kernel.Symmetric() {
			acc = convolveSymmetric(wide, toAccumSlice[float32](p.Kernel.RightHalf()), channels, outLen)
		} else {
			acc = convolveFlat(wide, toAccumSlice[float32](p.Kernel.Weights()), channels, outLen)
		}
		out := make([]T, outLen)
		for i, a := range acc {
			out[i] = simd.StoreFloatAccumulator[T](float64(a))
		}
		return out
	}
}
