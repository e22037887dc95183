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

package convolve

import "github.com/ajroetker/goblur/internal/simd"

// A padded line of W*K interleaved accumulator lanes has a property the
// channel interleaving doesn't disturb: tap j of the window for output
// pixel p, channel c sits at flat index (p+j)*K+c = (p*K+c) + j*K. So one
// output-channel's worth of taps is just the same flat array read at a
// constant offset j*K, for every flat output index at once. The windowed
// dot product reduces to a sum of shifted, scalar-weighted full-array
// adds, a Load/FMA/Store-with-tail shape that lends itself to batching.
// addTap and addPairTap are that shape; convolveFlat and convolveSymmetric
// just call them once per tap (or once per mirrored pair, for the
// palindromic fast path).

// addTap accumulates weight*wide[i+offset] into acc[i] for every i in
// [0, outLen), batching MaxLanes[AccT]() flat indices per iteration with a
// buffered scalar tail for the remainder.
func addTap[AccT simd.Lanes](acc, wide []AccT, weight AccT, offset, outLen, lanes int) {
	wVec := simd.Set(weight)
	i := 0
	for ; i+lanes <= outLen; i += lanes {
		v := simd.Load(wide[i+offset : i+offset+lanes])
		a := simd.Load(acc[i : i+lanes])
		a = simd.FMA(v, wVec, a)
		simd.Store(a, acc[i:i+lanes])
	}
	if rem := outLen - i; rem > 0 {
		vb := make([]AccT, lanes)
		ab := make([]AccT, lanes)
		copy(vb, wide[i+offset:i+offset+rem])
		copy(ab, acc[i:i+rem])
		a := simd.FMA(simd.Load(vb), wVec, simd.Load(ab))
		simd.Store(a, ab)
		copy(acc[i:i+rem], ab[:rem])
	}
}

// addPairTap accumulates weight*(wide[i+leftOffset]+wide[i+rightOffset])
// into acc[i], the halved-multiply step of the palindromic fast path:
// one add plus one FMA in place of two FMAs.
func addPairTap[AccT simd.Lanes](acc, wide []AccT, weight AccT, leftOffset, rightOffset, outLen, lanes int) {
	wVec := simd.Set(weight)
	i := 0
	for ; i+lanes <= outLen; i += lanes {
		l := simd.Load(wide[i+leftOffset : i+leftOffset+lanes])
		r := simd.Load(wide[i+rightOffset : i+rightOffset+lanes])
		pair := simd.Add(l, r)
		a := simd.Load(acc[i : i+lanes])
		a = simd.FMA(pair, wVec, a)
		simd.Store(a, acc[i:i+lanes])
	}
	if rem := outLen - i; rem > 0 {
		lb := make([]AccT, lanes)
		rb := make([]AccT, lanes)
		ab := make([]AccT, lanes)
		copy(lb, wide[i+leftOffset:i+leftOffset+rem])
		copy(rb, wide[i+rightOffset:i+rightOffset+rem])
		copy(ab, acc[i:i+rem])
		pair := simd.Add(simd.Load(lb), simd.Load(rb))
		a := simd.FMA(pair, wVec, simd.Load(ab))
		simd.Store(a, ab)
		copy(acc[i:i+rem], ab[:rem])
	}
}

// convolveFlat is the general (non-symmetric) windowed dot product: one
// addTap call per kernel tap.
func convolveFlat[AccT simd.Lanes](wide, weights []AccT, channels, outLen int) []AccT {
	acc := make([]AccT, outLen)
	lanes := simd.MaxLanes[AccT]()
	for j, w := range weights {
		addTap(acc, wide, w, j*channels, outLen, lanes)
	}
	return acc
}

// convolveSymmetric is the palindromic fast path: the center tap via
// addTap, then one addPairTap per mirrored pair, halving the multiply
// count against convolveFlat. rightHalf is ordered center-first,
// outermost-tap-last (kernel.Kernel.RightHalf / kernel.FixedPoint's
// mirror slice): rightHalf[0] is the center weight, rightHalf[k] is the
// weight shared by the taps at distance k on either side of center.
func convolveSymmetric[AccT simd.Lanes](wide, rightHalf []AccT, channels, outLen int) []AccT {
	acc := make([]AccT, outLen)
	lanes := simd.MaxLanes[AccT]()
	r := len(rightHalf) - 1
	addTap(acc, wide, rightHalf[0], r*channels, outLen, lanes)
	for k := 1; k <= r; k++ {
		addPairTap(acc, wide, rightHalf[k], (r-k)*channels, (r+k)*channels, outLen, lanes)
	}
	return acc
}
