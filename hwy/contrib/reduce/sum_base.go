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

package reduce

import "github.com/ajroetker/simdagg/hwy"

// BaseSum computes the sum of all elements of v on the given tier.
//
// Returns 0 if v is empty. Integer sums wrap on overflow; the result equals
// the wrapped sequential sum bit for bit because modular addition is
// associative. Every element is read exactly once.
func BaseSum[T hwy.Lanes](v []T, tier Tier) T {
	n := len(v)
	lanes := fitLanes[T](tier, n)
	if ks := kernelsFor[T](lanes); ks != nil {
		return ks.sum(v)
	}

	var result T
	i := 0
	if lanes > 0 {
		sum := hwy.Zero[T](lanes)
		for ; i+lanes <= n; i += lanes {
			sum = hwy.Add(sum, hwy.Load(v[i:], lanes))
		}
		result = hwy.ReduceSum(sum)
	}

	// Handle tail elements with scalar code
	for ; i < n; i++ {
		result += v[i]
	}

	return result
}

// BaseWideningSum sums int32 elements into an int64 on the given tier.
// It cannot overflow for inputs shorter than 2^32 elements.
func BaseWideningSum(v []int32, tier Tier) int64 {
	lanes := fitLanes[int32](tier, len(v))
	if k := wideningKernel[int32](lanes); k != nil {
		// Flipping the sign bit maps every element x to x+2^31, which the
		// unsigned kernel sums exactly; the offset is removed afterwards.
		return int64(k(castSlice[uint32](v), 1<<31)) - int64(len(v))<<31
	}
	return wideningSum[int64](v, lanes)
}

// BaseWideningSumUnsigned sums uint32 elements into a uint64 on the given
// tier.
func BaseWideningSumUnsigned(v []uint32, tier Tier) uint64 {
	lanes := fitLanes[uint32](tier, len(v))
	if k := wideningKernel[uint32](lanes); k != nil {
		return k(v, 0)
	}
	return wideningSum[uint64](v, lanes)
}

// wideningSum is the portable widening sum over lanes-wide vectors, or a
// plain loop when lanes is 0. Each loaded vector is split into its lower
// and upper halves, both promoted to 64-bit lanes and added into one
// accumulator of lanes/2 lanes. Callers pair int32 with int64 and uint32
// with uint64.
func wideningSum[W ~int64 | ~uint64, T ~int32 | ~uint32](v []T, lanes int) W {
	n := len(v)
	var result W
	i := 0
	if lanes > 0 {
		acc := hwy.Zero[W](lanes / 2)
		for ; i+lanes <= n; i += lanes {
			va := hwy.Load(v[i:], lanes)
			acc = hwy.Add(acc, hwy.PromoteLower[W](va))
			acc = hwy.Add(acc, hwy.PromoteUpper[W](va))
		}
		result = hwy.ReduceSum(acc)
	}

	for ; i < n; i++ {
		result += W(v[i])
	}

	return result
}
