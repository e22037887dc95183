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

// Package arena implements a padded working copy of one source line (a
// row, for the horizontal pass; a gathered column, for the vertical pass)
// with borders already materialized per the chosen policy, so the inner
// convolution loop never branches on position. It reuses internal/border's
// coordinate mapping to fill the border regions.
package arena

import "github.com/ajroetker/goblur/internal/border"

// Line is a reusable padded-line scratch buffer: one row (or one gathered
// column) of K-interleaved samples, padded by radius R on each side. It is
// scoped to one worker thread and reused across every line in a tile, to
// avoid reallocating on every row or column pass.
type Line[T any] struct {
	buf      []T
	channels int
	radius   int
	n        int // logical (unpadded) length along the filtered axis
}

// NewLine preallocates a Line sized for n logical samples of k channels
// padded by radius r on each side.
func NewLine[T any](n, k, r int) *Line[T] {
	return &Line[T]{
		buf:      make([]T, (n+2*r)*k),
		channels: k,
		radius:   r,
		n:        n,
	}
}

// Reset resizes the line's logical extent without reallocating unless the
// new size is larger than the current backing capacity, so a pass can
// pre-size arenas once and reuse them across every tile.
func (l *Line[T]) Reset(n, k, r int) {
	needed := (n + 2*r) * k
	if cap(l.buf) < needed {
		l.buf = make([]T, needed)
	} else {
		l.buf = l.buf[:needed]
	}
	l.channels = k
	l.radius = r
	l.n = n
}

// Padded returns the full padded buffer: radius*channels elements of left
// border, n*channels elements of source, radius*channels elements of right
// border.
func (l *Line[T]) Padded() []T { return l.buf }

// At returns the element for logical position p in [-radius, n+radius) and
// channel c; p=0 is the first source sample.
func (l *Line[T]) At(p, c int) T {
	idx := (p+l.radius)*l.channels + c
	return l.buf[idx]
}

// Fill materializes one padded line from src (length n*channels, tightly
// interleaved) into the reusable buffer, applying policy p to the left and
// right border regions. For Constant, fill holds one value per channel;
// the caller is responsible for rejecting a short fill before Fill runs.
func Fill[T any](l *Line[T], src []T, p border.Policy, fill []T) {
	k := l.channels
	r := l.radius
	n := l.n

	// Center: copy the source line verbatim.
	copy(l.buf[r*k:r*k+n*k], src[:n*k])

	// Left border: logical positions -r..-1.
	for i := range r {
		logicalPos := i - r
		writeAt := i * k
		fillOne(l.buf[writeAt:writeAt+k], src, logicalPos, n, k, p, fill)
	}

	// Right border: logical positions n..n+r-1.
	for i := range r {
		logicalPos := n + i
		writeAt := (r + n + i) * k
		fillOne(l.buf[writeAt:writeAt+k], src, logicalPos, n, k, p, fill)
	}
}

func fillOne[T any](dst []T, src []T, logicalPos, n, k int, p border.Policy, fill []T) {
	if p == border.Constant {
		copy(dst, fill[:k])
		return
	}
	mapped := border.Map(logicalPos, n, p)
	copy(dst, src[mapped*k:mapped*k+k])
}
