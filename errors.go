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
	"errors"
	"fmt"

	"github.com/ajroetker/goblur/internal/convolve"
	"github.com/ajroetker/goblur/internal/ring"
)

// The six public error kinds. Callers distinguish them with errors.Is;
// wrapped internal causes remain visible via errors.Is and errors.As.
var (
	ErrShapeInvalid         = errors.New("blur: width or height is zero, or stride too small")
	ErrChannelMismatch      = errors.New("blur: source and destination disagree on channel count")
	ErrKernelInvalid        = errors.New("blur: kernel is empty, has even length, or its 2-D area does not match its weight count")
	ErrRadiusInvalid        = errors.New("blur: radius is zero where disallowed, or exceeds the supported range")
	ErrPrecisionUnsupported = errors.New("blur: fixed-point mode would overflow the accumulator for this kernel")
	ErrFillMissing          = errors.New("blur: constant border selected but fewer fill values than channels were supplied")
)

// wrapError translates an internal package's sentinel into the matching
// public taxonomy entry, preserving the cause via %w so errors.Is still
// finds the specific internal error if a caller looks for it.
func wrapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, convolve.ErrDimensionMismatch), errors.Is(err, ring.ErrDimensionMismatch):
		return fmt.Errorf("%w: %w", ErrChannelMismatch, err)
	case errors.Is(err, convolve.ErrKernelTooLarge):
		return fmt.Errorf("%w: %w", ErrRadiusInvalid, err)
	case errors.Is(err, convolve.ErrUnsupportedCombination), errors.Is(err, ring.ErrUnsupportedCombination):
		return fmt.Errorf("%w: %w", ErrFillMissing, err)
	default:
		return err
	}
}
