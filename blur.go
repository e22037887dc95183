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

// Package blur is a separable 1-D image filtering engine: a horizontal
// pass and a vertical pass, each a windowed dot product against a finite
// weight vector, composed to implement both general linear filters
// (BlurSeparable) and the constant-time ring-buffer blurs (StackBlur and
// the fast-gaussian family). See internal/raster, internal/border,
// internal/kernel, internal/convolve, internal/schedule, and internal/ring
// for the components this package composes; this file is the public
// surface.
package blur

import (
	"fmt"

	"github.com/ajroetker/goblur/internal/convolve"
	"github.com/ajroetker/goblur/internal/kernel"
	"github.com/ajroetker/goblur/internal/raster"
	"github.com/ajroetker/goblur/internal/ring"
)

// BlurSeparable filters source into dest with two independent 1-D kernels:
// horizKernel along rows, then vertKernel along the resulting columns.
// Both must be finite, odd-length, non-empty weight vectors;
// a 2-D, non-separable shape is not expressible here (see MotionBlur for
// that path). dest and source must agree on width, height, and channel
// count but may be distinct backing storage.
func BlurSeparable[T raster.Element](dest, source *raster.Image[T], horizKernel, vertKernel []float64, opts Options[T]) error {
	if source.Width() <= 0 || source.Height() <= 0 {
		return ErrShapeInvalid
	}
	if !raster.SameShape(dest, source) {
		return ErrChannelMismatch
	}
	if opts.Border == Constant && len(opts.Fill) < source.Channels() {
		return ErrFillMissing
	}

	hk, err := kernel.Analyze(horizKernel)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKernelInvalid, err)
	}
	vk, err := kernel.Analyze(vertKernel)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKernelInvalid, err)
	}

	precision := opts.Precision.toInternal()
	var hfp, vfp *kernel.FixedPoint
	if precision == convolve.FixedPoint {
		q := kernel.QForStorage(storageBits[T](), false)
		maxPixel := raster.MaxValue[T]()
		const accBits = 32
		hq, ok := hk.Quantize(q, maxPixel, accBits)
		if !ok {
			return ErrPrecisionUnsupported
		}
		vq, ok := vk.Quantize(q, maxPixel, accBits)
		if !ok {
			return ErrPrecisionUnsupported
		}
		hfp, vfp = &hq, &vq
	}

	threads := opts.Threads.inner.Resolve(source.Width(), source.Height())
	border := opts.Border.toInternal()
	mid := raster.New[T](source.Width(), source.Height(), source.Channels())

	rowParams := convolve.Params[T]{
		Kernel: hk, FixedPoint: hfp, Precision: precision,
		Border: border, Fill: opts.Fill, Threads: threads,
	}
	if err := convolve.RowPass(mid, source, rowParams); err != nil {
		return wrapError(err)
	}

	colParams := convolve.Params[T]{
		Kernel: vk, FixedPoint: vfp, Precision: precision,
		Border: border, Fill: opts.Fill, Threads: threads,
	}
	return wrapError(convolve.ColPass(dest, mid, colParams))
}

func runRing[T raster.Element](img *raster.Image[T], algo ring.Algorithm, radiusX, radiusY int, opts RingOptions[T]) error {
	if img.Width() <= 0 || img.Height() <= 0 {
		return ErrShapeInvalid
	}
	if opts.Border == Constant && len(opts.Fill) < img.Channels() {
		return ErrFillMissing
	}
	threads := opts.Threads.inner.Resolve(img.Width(), img.Height())
	out := raster.New[T](img.Width(), img.Height(), img.Channels())
	if err := ring.Blur(out, img, algo, radiusX, radiusY, threads, opts.Border.toInternal(), opts.Fill); err != nil {
		return wrapError(err)
	}
	img.CopyFrom(out)
	return nil
}

// StackBlur applies Mario Klingemann's triangular-weight blur in place, at
// an isotropic radius. Radius 0 is the identity.
func StackBlur[T raster.Element](img *raster.Image[T], radius int, opts RingOptions[T]) error {
	return StackBlurAnisotropic(img, radius, radius, opts)
}

// StackBlurAnisotropic is StackBlur with independent horizontal and
// vertical radii.
func StackBlurAnisotropic[T raster.Element](img *raster.Image[T], radiusX, radiusY int, opts RingOptions[T]) error {
	return runRing(img, ring.StackBlur, radiusX, radiusY, opts)
}

// FastGaussian applies a 2-cascade box-blur approximation of a gaussian in
// place, at an isotropic radius.
func FastGaussian[T raster.Element](img *raster.Image[T], radius int, opts RingOptions[T]) error {
	return FastGaussianAnisotropic(img, radius, radius, opts)
}

// FastGaussianAnisotropic is FastGaussian with independent radii.
func FastGaussianAnisotropic[T raster.Element](img *raster.Image[T], radiusX, radiusY int, opts RingOptions[T]) error {
	return runRing(img, ring.FastGaussian, radiusX, radiusY, opts)
}

// FastGaussianNext applies a 3-cascade box-blur approximation, closer to a
// true gaussian than FastGaussian at the cost of one more pass.
func FastGaussianNext[T raster.Element](img *raster.Image[T], radius int, opts RingOptions[T]) error {
	return FastGaussianNextAnisotropic(img, radius, radius, opts)
}

// FastGaussianNextAnisotropic is FastGaussianNext with independent radii.
func FastGaussianNextAnisotropic[T raster.Element](img *raster.Image[T], radiusX, radiusY int, opts RingOptions[T]) error {
	return runRing(img, ring.FastGaussianNext, radiusX, radiusY, opts)
}

// FastGaussianSuperior applies a 4-cascade box-blur approximation, the
// closest of the cascade family to a true gaussian.
func FastGaussianSuperior[T raster.Element](img *raster.Image[T], radius int, opts RingOptions[T]) error {
	return FastGaussianSuperiorAnisotropic(img, radius, radius, opts)
}

// FastGaussianSuperiorAnisotropic is FastGaussianSuperior with independent
// radii.
func FastGaussianSuperiorAnisotropic[T raster.Element](img *raster.Image[T], radiusX, radiusY int, opts RingOptions[T]) error {
	return runRing(img, ring.FastGaussianSuperior, radiusX, radiusY, opts)
}
