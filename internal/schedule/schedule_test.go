// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptiveThreadCount(t *testing.T) {
	assert.Equal(t, 1, AdaptiveThreadCount(1, 1))
	assert.Equal(t, 1, AdaptiveThreadCount(256, 256)) // 65536 area, ceil(1)=1
	assert.Equal(t, 2, AdaptiveThreadCount(256, 257))
	assert.Equal(t, 12, AdaptiveThreadCount(4096, 4096)) // far past the ceiling
	assert.Equal(t, 1, AdaptiveThreadCount(0, 100))
}

func TestPolicyResolve(t *testing.T) {
	assert.Equal(t, 1, SinglePolicy().Resolve(1000, 1000))
	assert.Equal(t, 4, FixedPolicy(4).Resolve(10, 10))
	assert.Equal(t, 1, FixedPolicy(0).Resolve(10, 10))
	assert.Equal(t, AdaptiveThreadCount(500, 500), AdaptivePolicy().Resolve(500, 500))
}

func TestBandsCoverRangeExactlyOnce(t *testing.T) {
	bands := Bands(100, 7)
	covered := make([]bool, 100)
	for _, b := range bands {
		for i := b.Start; i < b.End; i++ {
			require.False(t, covered[i], "index %d covered twice", i)
			covered[i] = true
		}
	}
	for i, c := range covered {
		assert.True(t, c, "index %d not covered", i)
	}
}

func TestBandsEmptyRange(t *testing.T) {
	assert.Nil(t, Bands(0, 4))
}

func TestBandsCountClampedToN(t *testing.T) {
	bands := Bands(3, 10)
	assert.Len(t, bands, 3)
}

func TestRunBandsIndependentOfWorkerCount(t *testing.T) {
	n := 97
	for _, workers := range []int{1, 2, 3, 12} {
		results := make([]int, n)
		err := RunBands(n, workers, func(start, end int) error {
			for i := start; i < end; i++ {
				results[i] = i * i
			}
			return nil
		})
		require.NoError(t, err)
		for i := range n {
			assert.Equal(t, i*i, results[i])
		}
	}
}

func TestRunBandsSurfacesFirstErrorButFinishesOthers(t *testing.T) {
	n := 10
	var completed atomic.Int32
	sentinel := errors.New("band failed")

	err := RunBands(n, 5, func(start, end int) error {
		defer completed.Add(1)
		if start == 0 {
			return sentinel
		}
		return nil
	})

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, int32(5), completed.Load())
}
