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

// Package border implements a pure, table-free mapping from an arbitrary
// (possibly out-of-bounds) integer coordinate to an in-bounds index, per
// policy. Clamp, Wrap, and Reflect mirror common edge-extension rules;
// Reflect101 folds at the edge without duplicating it, and Constant maps
// every out-of-bounds coordinate to a sentinel so the caller can substitute
// a fill value instead of sampling the image.
package border

// Policy names one of the five border-extension rules.
type Policy int

const (
	// Clamp replicates the nearest edge pixel.
	Clamp Policy = iota
	// Wrap treats the image as periodic (modulo indexing).
	Wrap
	// Reflect mirrors with the edge pixel duplicated: fedcba|abcdef|fedcba.
	Reflect
	// Reflect101 mirrors without duplicating the edge pixel: fedcb|abcdef|edcba.
	Reflect101
	// Constant maps every out-of-bounds coordinate to the sentinel "out" index.
	Constant
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	case Reflect:
		return "reflect"
	case Reflect101:
		return "reflect101"
	case Constant:
		return "constant"
	default:
		return "unknown"
	}
}

// Out is the sentinel index Map returns for Constant when i is out of
// bounds; no valid raster column/row ever equals it.
const Out = -1

// Map resolves coordinate i against bounds [0, n) under policy p. n must be
// >= 1 (raster dimensions are always positive). For every
// policy other than Constant the result is always in [0, n); for Constant,
// an in-bounds i still maps to itself and an out-of-bounds i maps to Out,
// signaling the caller should use the supplied fill value instead of
// reading the source.
func Map(i, n int, p Policy) int {
	if n <= 0 {
		return 0
	}
	if i >= 0 && i < n {
		return i
	}
	switch p {
	case Clamp:
		return clamp(i, n)
	case Wrap:
		return wrap(i, n)
	case Reflect:
		return reflect(i, n)
	case Reflect101:
		return reflect101(i, n)
	case Constant:
		return Out
	default:
		return clamp(i, n)
	}
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	return n - 1
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// reflect implements fedcba|abcdef|fedcba: the edge pixel is duplicated
// across the fold, equivalent to mirroring about -0.5/n-0.5.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i < n {
		return i
	}
	return period - 1 - i
}

// reflect101 implements fedcb|abcdef|edcba: the fold line runs through the
// edge pixel's center, so it is never duplicated.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i < n {
		return i
	}
	return period - i
}
