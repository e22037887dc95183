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
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/ajroetker/goblur/internal/schedule"
)

// ColPass filters every column of src independently along the vertical
// axis into dst. Columns are not
// contiguous in a row-major raster, so each is gathered into a flat,
// K-interleaved scratch buffer (reusing the same arena.Line machinery
// RowPass uses, with "n" now meaning image height) before convolution and
// scattered back afterward. Columns are partitioned into bands per
// p.Threads the same way RowPass partitions rows.
func ColPass[T raster.Element](dst, src *raster.Image[T], p Params[T]) error {
	if err := validate(dst, src, p); err != nil {
		return err
	}
	width, height, channels := src.Width(), src.Height(), src.Channels()
	if height <= 0 {
		return ErrKernelTooLarge
	}
	radius := p.Kernel.Radius()
	outLen := height * channels

	return schedule.RunBands(width, p.Threads, func(start, end int) error {
		line := arena.NewLine[T](height, channels, radius)
		col := make([]T, height*channels)
		for x := start; x < end; x++ {
			for y := range height {
				for c := range channels {
					col[y*channels+c] = src.At(x, y, c)
				}
			}
			arena.Fill(line, col, p.Border, p.Fill)
			out := convolveLine(line.Padded(), channels, outLen, p)
			for y := range height {
				for c := range channels {
					dst.Set(x, y, c, out[y*channels+c])
				}
			}
		}
		return nil
	})
}
