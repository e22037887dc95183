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

// Package convolve implements the row pass and column pass of separable
// 1-D convolution over a border-extended arena, with an (element-type,
// accumulator-type, channel-count, symmetry, precision) dispatch matrix.
// It is grounded on a Load-FMA-Store-with-scalar-tail shape, generalized
// from single-channel point operations to a windowed dot product against
// a kernel arena.
package convolve

import "errors"

// Precision selects the accumulator width: Standard is a float32
// accumulator, used for both integer and float storage; Wide is a
// float64 accumulator (float storage only); FixedPoint is a Q-format
// integer accumulator (integer storage only).
type Precision int

const (
	// Standard accumulates in float32.
	Standard Precision = iota
	// Wide accumulates in float64 (float storage only).
	Wide
	// FixedPoint accumulates in a Q-format integer (int storage only).
	FixedPoint
)

// Errors for the row/column pass contract.
var (
	ErrDimensionMismatch      = errors.New("convolve: dimension mismatch between source and destination")
	ErrKernelTooLarge         = errors.New("convolve: kernel radius exceeds band/image extent")
	ErrUnsupportedCombination = errors.New("convolve: unsupported (element, precision) combination")
)
