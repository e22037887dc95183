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

package simd

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel names the batch width the row/column passes should use for
// their inner loop. Every level runs the same portable Go arithmetic; wider
// levels simply process more lanes per unrolled iteration, falling back from
// widest-vector to narrower-vector to scalar in the absence of real
// hardware intrinsics (see DESIGN.md).
type DispatchLevel int

const (
	// DispatchScalar processes one element at a time.
	DispatchScalar DispatchLevel = iota
	// DispatchNarrow corresponds to 128-bit SIMD (SSE2/NEON baseline).
	DispatchNarrow
	// DispatchWide corresponds to 256-bit SIMD (AVX2).
	DispatchWide
	// DispatchWidest corresponds to 512-bit SIMD (AVX-512).
	DispatchWidest
)

// String returns a human-readable dispatch level name.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchNarrow:
		return "narrow"
	case DispatchWide:
		return "wide"
	case DispatchWidest:
		return "widest"
	default:
		return "unknown"
	}
}

// currentLevel and currentWidth are set once by the platform-specific
// init() in dispatch_amd64.go / dispatch_arm64.go / dispatch_other.go.
var currentLevel DispatchLevel
var currentWidth int

// CurrentLevel returns the dispatch level selected for this process.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the batch width in bytes for the current level.
func CurrentWidth() int { return currentWidth }

// NoSimdEnv reports whether GOBLUR_NO_SIMD forces scalar dispatch. Useful
// for reproducing a failure against the reference scalar path; the level is
// fixed at init, so it applies to a whole process run.
func NoSimdEnv() bool {
	val := os.Getenv("GOBLUR_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many T elements make up one batch at the current
// dispatch level.
func MaxLanes[T Lanes]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return 1
	}
	n := currentWidth / size
	if n < 1 {
		return 1
	}
	return n
}
