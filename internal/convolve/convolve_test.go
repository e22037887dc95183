// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package convolve

import (
	"testing"

	"github.com/ajroetker/goblur/internal/border"
	"github.com/ajroetker/goblur/internal/kernel"
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleKernel(t *testing.T) *kernel.Kernel {
	t.Helper()
	k, err := kernel.Analyze([]float64{0.25, 0.5, 0.25})
	require.NoError(t, err)
	return k
}

func TestRowPassSymmetricClampBorder(t *testing.T) {
	src := raster.Borrow([]uint8{10, 20, 30, 40, 50}, 5, 1, 1, 5)
	dst := raster.New[uint8](5, 1, 1)

	params := Params[uint8]{Kernel: triangleKernel(t), Precision: Standard, Border: border.Clamp}
	require.NoError(t, RowPass(dst, src, params))

	assert.Equal(t, []uint8{12, 20, 30, 40, 48}, dst.RowSlice(0))
}

func TestColPassMatchesRowPassOnTransposedData(t *testing.T) {
	// A single column of the same values the row test uses; ColPass must
	// gather/scatter to the identical numeric result.
	src := raster.New[uint8](1, 5, 1)
	for y, v := range []uint8{10, 20, 30, 40, 50} {
		src.Set(0, y, 0, v)
	}
	dst := raster.New[uint8](1, 5, 1)

	params := Params[uint8]{Kernel: triangleKernel(t), Precision: Standard, Border: border.Clamp}
	require.NoError(t, ColPass(dst, src, params))

	want := []uint8{12, 20, 30, 40, 48}
	for y, w := range want {
		assert.Equal(t, w, dst.At(0, y, 0), "row %d", y)
	}
}

func TestRowPassAsymmetricKernel(t *testing.T) {
	k, err := kernel.Analyze([]float64{0.2, 0.3, 0.5})
	require.NoError(t, err)
	assert.False(t, k.Symmetric())

	src := raster.Borrow([]uint8{10, 20, 30}, 3, 1, 1, 3)
	dst := raster.New[uint8](3, 1, 1)
	params := Params[uint8]{Kernel: k, Precision: Standard, Border: border.Clamp}
	require.NoError(t, RowPass(dst, src, params))

	// out[0] = 0.2*10(clamp) + 0.3*10 + 0.5*20 = 2+3+10 = 15
	// out[1] = 0.2*10 + 0.3*20 + 0.5*30 = 2+6+15 = 23
	// out[2] = 0.2*20 + 0.3*30 + 0.5*30(clamp) = 4+9+15 = 28
	assert.Equal(t, []uint8{15, 23, 28}, dst.RowSlice(0))
}

func TestRowPassConstantBorderRequiresFill(t *testing.T) {
	src := raster.Borrow([]uint8{10, 20, 30}, 3, 1, 1, 3)
	dst := raster.New[uint8](3, 1, 1)
	params := Params[uint8]{Kernel: triangleKernel(t), Precision: Standard, Border: border.Constant}
	err := RowPass(dst, src, params)
	assert.ErrorIs(t, err, ErrUnsupportedCombination)
}

func TestRowPassConstantBorderWithFill(t *testing.T) {
	src := raster.Borrow([]uint8{10, 20, 30}, 3, 1, 1, 3)
	dst := raster.New[uint8](3, 1, 1)
	params := Params[uint8]{Kernel: triangleKernel(t), Precision: Standard, Border: border.Constant, Fill: []uint8{0}}
	require.NoError(t, RowPass(dst, src, params))
	// out[0] = 0.25*0 + 0.5*10 + 0.25*20 = 0+5+5=10
	assert.Equal(t, uint8(10), dst.RowSlice(0)[0])
}

func TestRowPassDimensionMismatch(t *testing.T) {
	src := raster.New[uint8](3, 1, 1)
	dst := raster.New[uint8](4, 1, 1)
	err := RowPass(dst, src, Params[uint8]{Kernel: triangleKernel(t), Border: border.Clamp})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestRowPassThreadCountDeterminism(t *testing.T) {
	n := 64
	src := make([]uint8, n)
	for i := range src {
		src[i] = uint8(i * 3 % 251)
	}
	srcImg := raster.Borrow(src, n, 1, 1, n)

	k := triangleKernel(t)
	var reference []uint8
	for _, threads := range []int{0, 1, 2, 5, 16} {
		dst := raster.New[uint8](n, 1, 1)
		params := Params[uint8]{Kernel: k, Precision: Standard, Border: border.Reflect101, Threads: threads}
		require.NoError(t, RowPass(dst, srcImg, params))
		if reference == nil {
			reference = append([]uint8(nil), dst.RowSlice(0)...)
		} else {
			assert.Equal(t, reference, dst.RowSlice(0), "threads=%d", threads)
		}
	}
}

func TestRowPassFixedPointIdentity(t *testing.T) {
	k, err := kernel.Analyze([]float64{1})
	require.NoError(t, err)
	fp, ok := k.Quantize(kernel.Q7, 255, 32)
	require.True(t, ok)

	src := raster.Borrow([]uint8{0, 50, 128, 200, 255}, 5, 1, 1, 5)
	dst := raster.New[uint8](5, 1, 1)
	params := Params[uint8]{Kernel: k, FixedPoint: &fp, Precision: FixedPoint, Border: border.Clamp}
	require.NoError(t, RowPass(dst, src, params))

	assert.Equal(t, src.RowSlice(0), dst.RowSlice(0))
}

func TestRowPassWidePrecision(t *testing.T) {
	src := raster.Borrow([]uint8{10, 20, 30, 40, 50}, 5, 1, 1, 5)
	dst := raster.New[uint8](5, 1, 1)
	params := Params[uint8]{Kernel: triangleKernel(t), Precision: Wide, Border: border.Clamp}
	require.NoError(t, RowPass(dst, src, params))
	assert.Equal(t, []uint8{12, 20, 30, 40, 48}, dst.RowSlice(0))
}

func TestConvolveSymmetricMatchesFlatForSymmetricWeights(t *testing.T) {
	wide := []float64{1, 2, 3, 4, 5, 6, 7}
	flatWeights := []float64{0.25, 0.5, 0.25}
	k := triangleKernel(t)

	flat := convolveFlat(wide, flatWeights, 1, 5)
	symmetric := convolveSymmetric(wide, k.RightHalf(), 1, 5)
	assert.InDeltaSlice(t, flat, symmetric, 1e-9)
}

func TestConvolve2DIdentityKernel(t *testing.T) {
	src := raster.New[uint8](3, 3, 1)
	for y := range 3 {
		for x := range 3 {
			src.Set(x, y, 0, uint8(y*3+x+1))
		}
	}
	dst := raster.New[uint8](3, 3, 1)
	weights := []float64{0, 0, 0, 0, 1, 0, 0, 0, 0}
	require.NoError(t, Convolve2D(dst, src, weights, 3, 3, border.Clamp, nil, 1))
	for y := range 3 {
		for x := range 3 {
			assert.Equal(t, src.At(x, y, 0), dst.At(x, y, 0))
		}
	}
}

func TestConvolve2DRejectsBadShape(t *testing.T) {
	src := raster.New[uint8](3, 3, 1)
	dst := raster.New[uint8](3, 3, 1)
	err := Convolve2D(dst, src, []float64{1, 2, 3}, 2, 2, border.Clamp, nil, 1)
	assert.ErrorIs(t, err, ErrKernelTooLarge)
}
