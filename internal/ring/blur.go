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
	"github.com/ajroetker/goblur/internal/border"
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/ajroetker/goblur/internal/schedule"
)

// Algorithm selects which ring-buffer blur runs each axis pass.
type Algorithm int

const (
	// StackBlur is Mario Klingemann's triangular-weight blur.
	StackBlur Algorithm = iota
	// FastGaussian cascades 2 box blurs of the same radius, the classic
	// box-blur approximation to a gaussian.
	FastGaussian
	// FastGaussianNext cascades 3 box blurs, a closer approximation.
	FastGaussianNext
	// FastGaussianSuperior cascades 4 box blurs, extending the same
	// cascade-depth progression one step further for the closest
	// approximation in the family.
	FastGaussianSuperior
)

func cascadeCount(algo Algorithm) int {
	switch algo {
	case FastGaussian:
		return 2
	case FastGaussianNext:
		return 3
	case FastGaussianSuperior:
		return 4
	default:
		return 0
	}
}

// Blur runs algo separably: a horizontal pass at radiusX, then an
// independent vertical pass at radiusY. A radius of 0 on either axis is
// that axis's identity. threads selects the internal/schedule band count
// for each pass; output is independent of it, the same determinism
// property the row/column convolution passes guarantee.
func Blur[T raster.Element](dst, src *raster.Image[T], algo Algorithm, radiusX, radiusY, threads int, policy border.Policy, fill []T) error {
	if !raster.SameShape(dst, src) {
		return ErrDimensionMismatch
	}
	if policy == border.Constant && len(fill) < src.Channels() {
		return ErrUnsupportedCombination
	}

	mid := src.Clone()
	if err := passRows(mid, src, algo, radiusX, threads, policy, fill); err != nil {
		return err
	}
	return passCols(dst, mid, algo, radiusY, threads, policy, fill)
}

func passRows[T raster.Element](dst, src *raster.Image[T], algo Algorithm, radius, threads int, policy border.Policy, fill []T) error {
	width, height, channels := src.Width(), src.Height(), src.Channels()
	cascades := cascadeCount(algo)
	return schedule.RunBands(height, threads, func(start, end int) error {
		for y := start; y < end; y++ {
			applyCascades(dst.RowSlice(y), src.RowSlice(y), width, channels, radius, cascades, policy, fill)
		}
		return nil
	})
}

func passCols[T raster.Element](dst, src *raster.Image[T], algo Algorithm, radius, threads int, policy border.Policy, fill []T) error {
	width, height, channels := src.Width(), src.Height(), src.Channels()
	cascades := cascadeCount(algo)
	return schedule.RunBands(width, threads, func(start, end int) error {
		col := make([]T, height*channels)
		out := make([]T, height*channels)
		for x := start; x < end; x++ {
			for y := range height {
				for c := range channels {
					col[y*channels+c] = src.At(x, y, c)
				}
			}
			applyCascades(out, col, height, channels, radius, cascades, policy, fill)
			for y := range height {
				for c := range channels {
					dst.Set(x, y, c, out[y*channels+c])
				}
			}
		}
		return nil
	})
}

// applyCascades runs stackBlur1D (cascades == 0) or cascades back-to-back
// applications of boxBlur1D, ping-ponging between two scratch buffers.
func applyCascades[T raster.Element](dst, src []T, n, k, radius, cascades int, policy border.Policy, fill []T) {
	if cascades == 0 {
		stackBlur1D(dst, src, n, k, radius, policy, fill)
		return
	}
	cur := append([]T(nil), src...)
	scratch := make([]T, n*k)
	for range cascades {
		boxBlur1D(scratch, cur, n, k, radius, policy, fill)
		cur, scratch = scratch, cur
	}
	copy(dst, cur)
}
