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

package kernel

import "errors"

// These all map onto the public KernelInvalid error kind; the public blur
// package wraps them with its own sentinel so callers can errors.Is against
// a single taxonomy while still seeing the specific cause here.
var (
	errKernelEmpty    = errors.New("kernel: empty weight vector")
	errKernelEven     = errors.New("kernel: even-length weight vector, odd length required")
	errKernelTooLarge = errors.New("kernel: length exceeds 2^16")
)
