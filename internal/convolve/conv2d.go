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
	"github.com/ajroetker/goblur/internal/border"
	"github.com/ajroetker/goblur/internal/kernel"
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/ajroetker/goblur/internal/schedule"
	"github.com/ajroetker/goblur/internal/simd"
)

// Convolve2D runs a direct, non-separable (width x height) convolution,
// the path MotionBlur uses for its line-locus kernel (a motion-blur locus
// generally isn't separable into a horizontal and vertical 1-D pass). It
// does not go through the row/column dispatch
// matrix; each output pixel samples the kw*kh window directly, which is
// fine for the small, non-recurring kernels this path serves.
func Convolve2D[T raster.Element](dst, src *raster.Image[T], weights []float64, kw, kh int, policy border.Policy, fill []T, threads int) error {
	if !raster.SameShape(dst, src) {
		return ErrDimensionMismatch
	}
	if !kernel.Is2DShapeValid(kw, kh, len(weights)) {
		return ErrKernelTooLarge
	}
	if policy == border.Constant && len(fill) < src.Channels() {
		return ErrUnsupportedCombination
	}

	width, height, channels := src.Width(), src.Height(), src.Channels()
	cx, cy := kw/2, kh/2

	sample := func(x, y, c int) float64 {
		mx := border.Map(x, width, policy)
		my := border.Map(y, height, policy)
		if mx == border.Out || my == border.Out {
			return toFloat64(fill[c])
		}
		return toFloat64(src.At(mx, my, c))
	}

	return schedule.RunBands(height, threads, func(start, end int) error {
		for y := start; y < end; y++ {
			for x := range width {
				for c := range channels {
					acc := 0.0
					for j := range kh {
						for i := range kw {
							acc += weights[j*kw+i] * sample(x+i-cx, y+j-cy, c)
						}
					}
					dst.Set(x, y, c, simd.StoreFloatAccumulator[T](acc))
				}
			}
		}
		return nil
	})
}
