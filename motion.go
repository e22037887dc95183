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

	"github.com/ajroetker/goblur/internal/convolve"
	"github.com/ajroetker/goblur/internal/raster"
)

// MotionBlur simulates camera or subject motion along a straight line:
// angleDeg measured counterclockwise from the positive x axis, kernelSize
// the side length of the square locus window (must be odd and >= 1). The
// locus isn't generally separable into independent row/column passes, so
// this builds a 2-D kernel and runs it through convolve.Convolve2D rather
// than BlurSeparable's two 1-D passes.
func MotionBlur[T raster.Element](dest, source *raster.Image[T], angleDeg float64, kernelSize int, opts RingOptions[T]) error {
	if source.Width() <= 0 || source.Height() <= 0 {
		return ErrShapeInvalid
	}
	if !raster.SameShape(dest, source) {
		return ErrChannelMismatch
	}
	if kernelSize <= 0 || kernelSize%2 == 0 {
		return ErrKernelInvalid
	}
	if opts.Border == Constant && len(opts.Fill) < source.Channels() {
		return ErrFillMissing
	}

	weights, err := motionLocusKernel(kernelSize, angleDeg)
	if err != nil {
		return err
	}

	threads := opts.Threads.inner.Resolve(source.Width(), source.Height())
	return wrapError(convolve.Convolve2D(dest, source, weights, kernelSize, kernelSize, opts.Border.toInternal(), opts.Fill, threads))
}

// motionLocusKernel rasterizes the line through the center of a
// kernelSize x kernelSize grid, oriented at angleDeg, into a normalized
// weight matrix: cell (i, j) gets weight proportional to how close the
// line passes to that cell's center (its perpendicular distance from the
// line, so the locus spans the whole window), using a half-pixel falloff so the
// locus has a soft width of about one pixel rather than a single-cell-wide
// staircase.
func motionLocusKernel(kernelSize int, angleDeg float64) ([]float64, error) {
	if kernelSize <= 0 || kernelSize%2 == 0 {
		return nil, ErrKernelInvalid
	}
	radius := kernelSize / 2
	weights := make([]float64, kernelSize*kernelSize)

	if kernelSize == 1 {
		weights[0] = 1
		return weights, nil
	}

	theta := angleDeg * math.Pi / 180
	dx, dy := math.Cos(theta), math.Sin(theta)

	const falloff = 0.5
	var total float64
	for j := -radius; j <= radius; j++ {
		for i := -radius; i <= radius; i++ {
			// Perpendicular distance from (i, j) to the line through the
			// origin with direction (dx, dy).
			perp := math.Abs(float64(i)*dy - float64(j)*dx)
			w := math.Exp(-(perp * perp) / (2 * falloff * falloff))
			weights[(j+radius)*kernelSize+(i+radius)] = w
			total += w
		}
	}
	if total == 0 {
		weights[radius*kernelSize+radius] = 1
		return weights, nil
	}
	for idx := range weights {
		weights[idx] /= total
	}
	return weights, nil
}
