// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package arena

import (
	"testing"

	"github.com/ajroetker/goblur/internal/border"
	"github.com/stretchr/testify/assert"
)

func TestFillClamp(t *testing.T) {
	src := []uint8{10, 20, 30, 40}
	line := NewLine[uint8](4, 1, 2)
	Fill(line, src, border.Clamp, nil)

	padded := line.Padded()
	assert.Equal(t, []uint8{10, 10, 10, 20, 30, 40, 40, 40}, padded)
	assert.Equal(t, uint8(10), line.At(-1, 0))
	assert.Equal(t, uint8(40), line.At(4, 0))
}

func TestFillConstant(t *testing.T) {
	src := []uint8{10, 20, 30}
	line := NewLine[uint8](3, 1, 1)
	Fill(line, src, border.Constant, []uint8{99})

	assert.Equal(t, uint8(99), line.At(-1, 0))
	assert.Equal(t, uint8(99), line.At(3, 0))
	assert.Equal(t, uint8(10), line.At(0, 0))
}

func TestFillWrap(t *testing.T) {
	src := []uint8{10, 20, 30}
	line := NewLine[uint8](3, 1, 1)
	Fill(line, src, border.Wrap, nil)

	assert.Equal(t, uint8(30), line.At(-1, 0))
	assert.Equal(t, uint8(10), line.At(3, 0))
}

func TestFillMultiChannel(t *testing.T) {
	// 2 pixels, 2 channels each.
	src := []uint8{1, 2, 3, 4}
	line := NewLine[uint8](2, 2, 1)
	Fill(line, src, border.Clamp, nil)

	assert.Equal(t, uint8(1), line.At(-1, 0))
	assert.Equal(t, uint8(2), line.At(-1, 1))
	assert.Equal(t, uint8(3), line.At(2, 0))
	assert.Equal(t, uint8(4), line.At(2, 1))
}

func TestResetReusesBackingArray(t *testing.T) {
	line := NewLine[uint8](4, 1, 1)
	original := line.Padded()
	line.Reset(4, 1, 1)
	assert.Equal(t, &original[0], &line.Padded()[0])
}

func TestResetGrowsWhenNeeded(t *testing.T) {
	line := NewLine[uint8](2, 1, 1)
	line.Reset(100, 1, 1)
	assert.Len(t, line.Padded(), 102)
}
