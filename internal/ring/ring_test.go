// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package ring

import (
	"testing"

	"github.com/ajroetker/goblur/internal/border"
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxBlur1D(t *testing.T) {
	src := []uint8{10, 20, 30, 40}
	dst := make([]uint8, 4)
	boxBlur1D(dst, src, 4, 1, 1, border.Clamp, nil)
	assert.Equal(t, []uint8{13, 20, 30, 37}, dst)
}

func TestBoxBlur1DRadiusZeroIsIdentity(t *testing.T) {
	src := []uint8{10, 20, 30, 40}
	dst := make([]uint8, 4)
	boxBlur1D(dst, src, 4, 1, 0, border.Clamp, nil)
	assert.Equal(t, src, dst)
}

func TestStackBlur1D(t *testing.T) {
	src := []uint8{10, 20, 30, 40}
	dst := make([]uint8, 4)
	stackBlur1D(dst, src, 4, 1, 1, border.Clamp, nil)
	assert.Equal(t, []uint8{12, 20, 30, 38}, dst)
}

func TestStackBlur1DRadiusZeroIsIdentity(t *testing.T) {
	src := []uint8{10, 20, 30, 40}
	dst := make([]uint8, 4)
	stackBlur1D(dst, src, 4, 1, 0, border.Clamp, nil)
	assert.Equal(t, src, dst)
}

func TestBoxBlur1DUint16(t *testing.T) {
	src := []uint16{1000, 2000, 3000, 4000}
	dst := make([]uint16, 4)
	boxBlur1D(dst, src, 4, 1, 1, border.Clamp, nil)
	assert.Equal(t, []uint16{1333, 2000, 3000, 3667}, dst)
}

func TestStackBlur1DUint16(t *testing.T) {
	src := []uint16{1000, 2000, 3000, 4000}
	dst := make([]uint16, 4)
	stackBlur1D(dst, src, 4, 1, 1, border.Clamp, nil)
	assert.Equal(t, []uint16{1250, 2000, 3000, 3750}, dst)
}

func TestStackBlur1DConstantImageIsIdentity(t *testing.T) {
	src := []uint8{42, 42, 42, 42, 42}
	dst := make([]uint8, 5)
	stackBlur1D(dst, src, 5, 1, 2, border.Clamp, nil)
	assert.Equal(t, src, dst)
}

func TestBlurRadiusZeroIsIdentity(t *testing.T) {
	src := raster.New[uint8](4, 4, 1)
	for y := range 4 {
		for x := range 4 {
			src.Set(x, y, 0, uint8(x*4+y))
		}
	}
	dst := raster.New[uint8](4, 4, 1)
	require.NoError(t, Blur(dst, src, StackBlur, 0, 0, 1, border.Clamp, nil))
	for y := range 4 {
		assert.Equal(t, src.RowSlice(y), dst.RowSlice(y))
	}
}

func TestBlurDimensionMismatch(t *testing.T) {
	src := raster.New[uint8](4, 4, 1)
	dst := raster.New[uint8](3, 4, 1)
	err := Blur(dst, src, StackBlur, 1, 1, 1, border.Clamp, nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestBlurConstantBorderRequiresFill(t *testing.T) {
	src := raster.New[uint8](4, 4, 1)
	dst := raster.New[uint8](4, 4, 1)
	err := Blur(dst, src, StackBlur, 1, 1, 1, border.Constant, nil)
	assert.ErrorIs(t, err, ErrUnsupportedCombination)
}

func TestBlurThreadCountDeterminism(t *testing.T) {
	n := 32
	src := raster.New[uint8](n, n, 1)
	for y := range n {
		for x := range n {
			src.Set(x, y, 0, uint8((x*7+y*11)%251))
		}
	}
	var reference []byte
	for _, threads := range []int{0, 1, 3, 8} {
		dst := raster.New[uint8](n, n, 1)
		require.NoError(t, Blur(dst, src, FastGaussianNext, 3, 3, threads, border.Reflect101, nil))
		flat := make([]byte, 0, n*n)
		for y := range n {
			flat = append(flat, dst.RowSlice(y)...)
		}
		if reference == nil {
			reference = flat
		} else {
			assert.Equal(t, reference, flat, "threads=%d", threads)
		}
	}
}

func TestBlurAnisotropicRadii(t *testing.T) {
	src := raster.New[uint8](6, 1, 1)
	for x := range 6 {
		src.Set(x, 0, 0, uint8(x*10))
	}
	dst := raster.New[uint8](6, 1, 1)
	// radiusY 0 on a single-row image should make the vertical pass a
	// no-op; the horizontal pass still runs at radiusX.
	require.NoError(t, Blur(dst, src, StackBlur, 1, 0, 1, border.Clamp, nil))

	rowOnly := raster.New[uint8](6, 1, 1)
	require.NoError(t, Blur(rowOnly, src, StackBlur, 1, 1, 1, border.Clamp, nil))
	assert.Equal(t, rowOnly.RowSlice(0), dst.RowSlice(0))
}

func TestCascadeCount(t *testing.T) {
	assert.Equal(t, 0, cascadeCount(StackBlur))
	assert.Equal(t, 2, cascadeCount(FastGaussian))
	assert.Equal(t, 3, cascadeCount(FastGaussianNext))
	assert.Equal(t, 4, cascadeCount(FastGaussianSuperior))
}
