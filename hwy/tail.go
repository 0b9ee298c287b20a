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

package hwy

// Tail handling.
//
// A slice whose length is not a multiple of the lane count leaves a tail.
// Two disciplines exist:
//
//   - Scalar tail: process VectorPrefix(size, lanes) elements with whole
//     vectors, then finish the remaining elements one at a time. Required for
//     anything that must see each element exactly once (sums, counts, searches).
//   - Overlapping tail: after the strided loop, load one more whole vector at
//     OverlapOffset(size, lanes). That window re-reads elements already folded.
//     This is only correct for idempotent combining functions such as min and
//     max, where f(x, x) == x.
//
// Example:
//
//	lanes := hwy.FixedTag128[int32]{}.MaxLanes()
//	end := hwy.VectorPrefix(len(data), lanes)
//	acc := hwy.Zero[int32](lanes)
//	for i := 0; i < end; i += lanes {
//	    acc = hwy.Add(acc, hwy.Load(data[i:], lanes))
//	}
//	sum := hwy.ReduceSum(acc)
//	for _, x := range data[end:] {
//	    sum += x
//	}

// VectorPrefix returns the length of the longest prefix of a size-element
// slice that whole vectors of the given lane count cover.
func VectorPrefix(size, lanes int) int {
	if lanes <= 0 {
		return 0
	}
	return size - size%lanes
}

// OverlapOffset returns the start of the final whole-vector window of a
// size-element slice. size must be at least lanes.
func OverlapOffset(size, lanes int) int {
	return size - lanes
}
