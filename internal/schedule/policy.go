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

// Package schedule implements deciding how many worker goroutines a pass
// should use, partitioning an axis into contiguous bands, and running
// those bands with cooperative error surfacing via
// golang.org/x/sync/errgroup.
package schedule

// Policy selects how many worker goroutines a pass should use. The zero
// value is Single.
type Policy struct {
	kind  policyKind
	fixed int
}

type policyKind int

const (
	kindSingle policyKind = iota
	kindAdaptive
	kindFixed
)

// SinglePolicy forces sequential (single-goroutine) execution.
func SinglePolicy() Policy { return Policy{kind: kindSingle} }

// AdaptivePolicy scales worker count to image area:
// threads = clamp(ceil(W*H / 65536), 1, 12).
func AdaptivePolicy() Policy { return Policy{kind: kindAdaptive} }

// FixedPolicy pins the worker count to n (clamped to >= 1).
func FixedPolicy(n int) Policy { return Policy{kind: kindFixed, fixed: n} }

// Resolve returns the worker count this policy implies for an image of the
// given width and height.
func (p Policy) Resolve(width, height int) int {
	switch p.kind {
	case kindAdaptive:
		return AdaptiveThreadCount(width, height)
	case kindFixed:
		if p.fixed < 1 {
			return 1
		}
		return p.fixed
	default:
		return 1
	}
}

// AdaptiveThreadCount implements the adaptive thread-count formula:
// ceil(W*H / 65536) clamped to [1, 12] (see DESIGN.md Open Question
// resolutions for why ceiling, not floor, division). Ceiling division is
// computed as (W*H + 65535) / 65536 using integer arithmetic, avoiding a
// float round-trip.
func AdaptiveThreadCount(width, height int) int {
	area := width * height
	if area <= 0 {
		return 1
	}
	const unit = 65536
	threads := (area + unit - 1) / unit
	if threads < 1 {
		threads = 1
	}
	if threads > 12 {
		threads = 12
	}
	return threads
}

// Band is a contiguous, half-open [Start, End) range along one axis.
type Band struct {
	Start, End int
}

// Bands partitions [0, n) into at most count contiguous bands of equal
// size, with the final band absorbing any remainder.
func Bands(n, count int) []Band {
	if n <= 0 {
		return nil
	}
	if count < 1 {
		count = 1
	}
	if count > n {
		count = n
	}
	chunk := (n + count - 1) / count
	bands := make([]Band, 0, count)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		bands = append(bands, Band{Start: start, End: end})
	}
	return bands
}
