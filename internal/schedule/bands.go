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

package schedule

import "golang.org/x/sync/errgroup"

// RunBands partitions [0, n) into Bands(n, workers) contiguous bands and
// runs fn once per band concurrently, each band independent of the others
// (no shared mutable state, so the result never depends on worker count).
// RunBands surfaces errors: if one band's fn returns an
// error, the other already-started bands still run to completion
// (errgroup.Group never kills goroutines; Wait blocks for every Go call to
// return), and RunBands returns the first error seen after every band has
// finished.
func RunBands(n, workers int, fn func(start, end int) error) error {
	bands := Bands(n, workers)
	if len(bands) == 0 {
		return nil
	}

	var g errgroup.Group
	g.SetLimit(len(bands))
	for _, b := range bands {
		g.Go(func() error {
			return fn(b.Start, b.End)
		})
	}
	return g.Wait()
}
