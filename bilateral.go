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

package blur

import (
	"math"

	"github.com/ajroetker/goblur/internal/border"
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/ajroetker/goblur/internal/schedule"
	"github.com/ajroetker/goblur/internal/simd"
)

// BilateralParams bundles the edge-preserving filter's three knobs:
// window size and the spatial/range Gaussian falloffs.
type BilateralParams struct {
	// KernelSize is the window's side length; must be odd and >= 1.
	KernelSize int
	// SpatialSigma controls the Gaussian falloff over pixel distance.
	SpatialSigma float64
	// RangeSigma controls the Gaussian falloff over intensity difference.
	RangeSigma float64
}

// Bilateral applies an edge-preserving smoothing filter: each output pixel
// is a weighted average of its KernelSize x KernelSize neighborhood, where
// a neighbor's weight falls off both with its spatial distance (spatial
// Gaussian) and with how different its intensity is from the center pixel
// (range Gaussian). That range term makes the filter non-linear pixel by
// pixel, so it cannot be expressed as a separable 1-D pass the way
// BlurSeparable's kernels are; it is a direct nested-loop reduction instead.
func Bilateral[T raster.Element](dest, source *raster.Image[T], params BilateralParams, opts RingOptions[T]) error {
	if source.Width() <= 0 || source.Height() <= 0 {
		return ErrShapeInvalid
	}
	if !raster.SameShape(dest, source) {
		return ErrChannelMismatch
	}
	if params.KernelSize <= 0 || params.KernelSize%2 == 0 {
		return ErrKernelInvalid
	}
	if opts.Border == Constant && len(opts.Fill) < source.Channels() {
		return ErrFillMissing
	}
	if params.SpatialSigma <= 0 || params.RangeSigma <= 0 {
		return ErrRadiusInvalid
	}

	radius := params.KernelSize / 2
	width, height, channels := source.Width(), source.Height(), source.Channels()
	policy := opts.Border.toInternal()

	spatialDenom := 2 * params.SpatialSigma * params.SpatialSigma
	rangeDenom := 2 * params.RangeSigma * params.RangeSigma
	spatialWeight := make([]float64, params.KernelSize*params.KernelSize)
	for j := -radius; j <= radius; j++ {
		for i := -radius; i <= radius; i++ {
			d2 := float64(i*i + j*j)
			spatialWeight[(j+radius)*params.KernelSize+(i+radius)] = math.Exp(-d2 / spatialDenom)
		}
	}

	sample := func(x, y, c int) (float64, bool) {
		mx := border.Map(x, width, policy)
		my := border.Map(y, height, policy)
		if mx == border.Out || my == border.Out {
			return toF64(opts.Fill[c]), true
		}
		return toF64(source.At(mx, my, c)), true
	}

	threads := opts.Threads.inner.Resolve(width, height)
	return schedule.RunBands(height, threads, func(start, end int) error {
		for y := start; y < end; y++ {
			for x := range width {
				for c := range channels {
					center, _ := sample(x, y, c)
					var sum, weightTotal float64
					for j := -radius; j <= radius; j++ {
						for i := -radius; i <= radius; i++ {
							v, ok := sample(x+i, y+j, c)
							if !ok {
								continue
							}
							rangeW := math.Exp(-(v-center)*(v-center) / rangeDenom)
							w := spatialWeight[(j+radius)*params.KernelSize+(i+radius)] * rangeW
							sum += w * v
							weightTotal += w
						}
					}
					if weightTotal == 0 {
						weightTotal = 1
					}
					dest.Set(x, y, c, simd.StoreFloatAccumulator[T](sum/weightTotal))
				}
			}
		}
		return nil
	})
}

func toF64[T raster.Element](v T) float64 { return float64(v) }
