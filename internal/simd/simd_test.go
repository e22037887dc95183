// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(src)
	dst := make([]float32, len(src))
	Store(v, dst)
	assert.Equal(t, src[:v.NumLanes()], dst[:v.NumLanes()])
}

func TestSetAndZero(t *testing.T) {
	v := Set[int32](7)
	for _, x := range v.Data() {
		assert.Equal(t, int32(7), x)
	}
	z := Zero[int32]()
	for _, x := range z.Data() {
		assert.Equal(t, int32(0), x)
	}
	assert.Equal(t, v.NumLanes(), z.NumLanes())
}

func TestAddSubMul(t *testing.T) {
	a := Load([]int32{1, 2, 3, 4})
	b := Load([]int32{10, 20, 30, 40})
	sum := Add(a, b)
	assert.Equal(t, []int32{11, 22, 33, 44}, sum.Data())

	diff := Sub(b, a)
	assert.Equal(t, []int32{9, 18, 27, 36}, diff.Data())

	prod := Mul(a, b)
	assert.Equal(t, []int32{10, 40, 90, 160}, prod.Data())
}

func TestFMAFloat(t *testing.T) {
	a := Load([]float32{2, 3})
	b := Load([]float32{4, 5})
	c := Load([]float32{1, 1})
	out := FMA(a, b, c)
	assert.InDeltaSlice(t, []float64{9, 16}, toF64Slice(out.Data()), 1e-6)
}

func TestFMAInteger(t *testing.T) {
	a := Load([]int32{2, 3})
	b := Load([]int32{4, 5})
	c := Load([]int32{1, 1})
	out := FMA(a, b, c)
	assert.Equal(t, []int32{9, 16}, out.Data())
}

func TestMinMaxAbs(t *testing.T) {
	a := Load([]int32{-5, 3})
	b := Load([]int32{2, -7})
	assert.Equal(t, []int32{-5, -7}, Min(a, b).Data())
	assert.Equal(t, []int32{2, 3}, Max(a, b).Data())
	assert.Equal(t, []int32{5, 7}, Abs(b).Data())
}

func TestClampScalars(t *testing.T) {
	v := Load([]int32{-10, 5, 300})
	out := ClampScalars(v, 0, 255)
	assert.Equal(t, []int32{0, 5, 255}, out.Data())
}

func TestShiftRight(t *testing.T) {
	v := Load([]int64{-16, 16})
	out := ShiftRight(v, 2)
	assert.Equal(t, []int64{-4, 4}, out.Data())
}

func TestReduceSum(t *testing.T) {
	v := Load([]float32{1, 2, 3, 4})
	assert.InDelta(t, 10.0, float64(ReduceSum(v)), 1e-6)
}

func TestMaxLanesMatchesWidth(t *testing.T) {
	require.Greater(t, CurrentWidth(), 0)
	lanes := MaxLanes[uint8]()
	assert.Equal(t, CurrentWidth(), lanes)
	lanes32 := MaxLanes[float32]()
	assert.Equal(t, CurrentWidth()/4, lanes32)
}

func TestDispatchLevelString(t *testing.T) {
	assert.Equal(t, "scalar", DispatchScalar.String())
	assert.Equal(t, "narrow", DispatchNarrow.String())
	assert.Equal(t, "wide", DispatchWide.String())
	assert.Equal(t, "widest", DispatchWidest.String())
}

func TestStorageBounds(t *testing.T) {
	lo, hi := StorageBounds[uint8]()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 255.0, hi)

	lo16, hi16 := StorageBounds[uint16]()
	assert.Equal(t, 0.0, lo16)
	assert.Equal(t, 65535.0, hi16)
}

func TestRoundHalfToEven(t *testing.T) {
	assert.Equal(t, 2.0, RoundHalfToEven(2.5))
	assert.Equal(t, 4.0, RoundHalfToEven(3.5))
	assert.Equal(t, 3.0, RoundHalfToEven(3.2))
	assert.Equal(t, 4.0, RoundHalfToEven(3.8))
}

func TestStoreFloatAccumulatorSaturates(t *testing.T) {
	assert.Equal(t, uint8(255), StoreFloatAccumulator[uint8](1000))
	assert.Equal(t, uint8(0), StoreFloatAccumulator[uint8](-10))
	assert.Equal(t, uint8(128), StoreFloatAccumulator[uint8](128.0))
}

func TestStoreFixedPointRoundShift(t *testing.T) {
	// acc=100, Q=7: (100 + 64) >> 7 = 1.
	assert.Equal(t, uint8(1), StoreFixedPoint[uint8](100, 7))
}

func TestWidenNarrowU8(t *testing.T) {
	assert.Equal(t, int32(200), WidenU8(200))
	assert.Equal(t, uint8(255), NarrowI32ToU8(300))
	assert.Equal(t, uint8(0), NarrowI32ToU8(-5))
}

func TestWidenNarrowU16(t *testing.T) {
	assert.Equal(t, int64(60000), WidenU16(60000))
	assert.Equal(t, uint16(65535), NarrowI64ToU16(70000))
	assert.Equal(t, uint16(0), NarrowI64ToU16(-5))
}

func toF64Slice(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
