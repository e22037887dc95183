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
	"github.com/ajroetker/goblur/internal/border"
	"github.com/ajroetker/goblur/internal/convolve"
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/ajroetker/goblur/internal/schedule"
)

// Border names one of the five border-extension policies a pass can use
// when it samples outside the image. Its values are ordered identically
// to internal/border.Policy so the conversion below is a plain cast.
type Border int

const (
	Clamp Border = iota
	Wrap
	Reflect
	Reflect101
	// Constant requires Options.Fill (or RingOptions.Fill) to carry at
	// least Channels() values; ErrFillMissing otherwise.
	Constant
)

func (b Border) toInternal() border.Policy { return border.Policy(b) }

// Precision selects the convolution accumulator. Exact and Normal both
// mean "f32 accumulator" (they differ only in which storage element type
// they're meant for); Zealous means "f64 accumulator" (float storage
// only); FixedPoint means "Q-format integer accumulator" (integer storage
// only).
type Precision int

const (
	Exact Precision = iota
	FixedPoint
	Normal
	Zealous
)

func (p Precision) toInternal() convolve.Precision {
	switch p {
	case FixedPoint:
		return convolve.FixedPoint
	case Zealous:
		return convolve.Wide
	default:
		return convolve.Standard
	}
}

// ThreadingPolicy selects how many worker goroutines a pass uses: single
// sequential, adaptive to image area, or a fixed count.
type ThreadingPolicy struct {
	inner schedule.Policy
}

// Single forces sequential execution.
func Single() ThreadingPolicy { return ThreadingPolicy{inner: schedule.SinglePolicy()} }

// Adaptive scales worker count to image area.
func Adaptive() ThreadingPolicy { return ThreadingPolicy{inner: schedule.AdaptivePolicy()} }

// Fixed pins the worker count to n.
func Fixed(n int) ThreadingPolicy { return ThreadingPolicy{inner: schedule.FixedPolicy(n)} }

// Options configures BlurSeparable.
type Options[T raster.Element] struct {
	Border    Border
	Fill      []T
	Precision Precision
	Threads   ThreadingPolicy
}

// RingOptions configures the ring-buffer blurs (StackBlur, FastGaussian,
// FastGaussianNext, FastGaussianSuperior) and the Bilateral/MotionBlur
// compositions built on the same border/convolution infrastructure.
type RingOptions[T raster.Element] struct {
	Border  Border
	Fill    []T
	Threads ThreadingPolicy
}

func storageBits[T raster.Element]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	default:
		return 32
	}
}
