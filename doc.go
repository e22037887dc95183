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

// Package blur provides general and constant-time image blur filters over
// interleaved u8/u16/f32 rasters:
//
//   - BlurSeparable: a general two-pass 1-D convolution against arbitrary
//     horizontal and vertical kernels, with exact, fixed-point, or wide
//     float accumulator precision.
//   - StackBlur, FastGaussian, FastGaussianNext, FastGaussianSuperior: a
//     family of O(1)-per-pixel ring-buffer blurs that never grow a
//     per-pixel window no matter how large the radius.
//   - Bilateral: edge-preserving smoothing, weighting neighbors by both
//     spatial distance and intensity similarity.
//   - MotionBlur: simulates linear camera or subject motion via a 2-D
//     locus kernel.
//
// Every operation accepts a Border policy for out-of-bounds sampling, a
// ThreadingPolicy controlling how many goroutines a pass uses, and reports
// failures through one of six sentinel errors (ErrShapeInvalid,
// ErrChannelMismatch, ErrKernelInvalid, ErrRadiusInvalid,
// ErrPrecisionUnsupported, ErrFillMissing) distinguishable with errors.Is.
package blur
