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

// Package raster implements a borrowed or owned raster view over
// K-interleaved channel data (K in {1,3,4}) with an explicit row stride,
// generalizing a single-channel, SIMD-padded image type to a multi-channel,
// caller-supplied-stride raster.
package raster

import "github.com/ajroetker/goblur/internal/simd"

// Element is the constraint on pixel storage element types: u8, u16, f32.
type Element interface {
	~uint8 | ~uint16 | ~float32
}

// Image is a K-interleaved raster: width W, height H, channel count K, and
// row stride S >= W*K elements. Storage may be borrowed (a caller-owned
// slice, never retained beyond one call) or owned by Image itself.
type Image[T Element] struct {
	data     []T
	width    int
	height   int
	channels int
	stride   int // elements per row, >= width*channels
}

// New allocates an owned image of width x height with the given channel
// count, row stride equal to width*channels (tightly packed).
func New[T Element](width, height, channels int) *Image[T] {
	if width <= 0 || height <= 0 || channels <= 0 {
		return &Image[T]{}
	}
	stride := width * channels
	return &Image[T]{
		data:     make([]T, stride*height),
		width:    width,
		height:   height,
		channels: channels,
		stride:   stride,
	}
}

// Borrow wraps an existing slice as an image without copying. data must
// satisfy len(data) >= stride*height; stride is in elements, not bytes.
func Borrow[T Element](data []T, width, height, channels, stride int) *Image[T] {
	return &Image[T]{
		data:     data,
		width:    width,
		height:   height,
		channels: channels,
		stride:   stride,
	}
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image[T]) Height() int { return img.height }

// Channels returns the interleaved channel count K.
func (img *Image[T]) Channels() int { return img.channels }

// Stride returns the row stride in elements.
func (img *Image[T]) Stride() int { return img.stride }

// Row returns the raw element slice backing row y, including any stride
// padding beyond width*channels.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	end := start + img.stride
	if end > len(img.data) {
		end = len(img.data)
	}
	return img.data[start:end]
}

// RowSlice returns row y limited to width*channels elements (excluding
// stride padding).
func (img *Image[T]) RowSlice(y int) []T {
	row := img.Row(y)
	n := img.width * img.channels
	if n > len(row) {
		n = len(row)
	}
	return row[:n]
}

// At returns the value of channel c at pixel (x, y).
func (img *Image[T]) At(x, y, c int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || c < 0 || c >= img.channels {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x*img.channels+c]
}

// Set assigns the value of channel c at pixel (x, y).
func (img *Image[T]) Set(x, y, c int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || c < 0 || c >= img.channels {
		return
	}
	img.data[y*img.stride+x*img.channels+c] = value
}

// SameShape reports whether two images agree on width, height, and channel
// count.
func SameShape[T, U Element](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height && a.channels == b.channels
}

// Clone returns a deep, owned copy.
func (img *Image[T]) Clone() *Image[T] {
	out := &Image[T]{
		width:    img.width,
		height:   img.height,
		channels: img.channels,
		stride:   img.stride,
	}
	if img.data != nil {
		out.data = make([]T, len(img.data))
		copy(out.data, img.data)
	}
	return out
}

// CopyFrom overwrites img's pixels in place from src, which must agree on
// shape (SameShape). Used by in-place public operations that compute into
// a scratch image and then publish the result back into the caller's image.
func (img *Image[T]) CopyFrom(src *Image[T]) {
	for y := range img.height {
		copy(img.Row(y)[:img.width*img.channels], src.RowSlice(y))
	}
}

// Fill sets every pixel of every channel to value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}

// MaxValue returns the maximum representable storage value, used by
// callers that need the worst-case pixel magnitude for a fixed-point
// overflow check.
func MaxValue[T Element]() float64 {
	_, hi := simd.StorageBounds[T]()
	return hi
}
