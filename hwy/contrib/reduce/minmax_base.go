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

// BaseMin returns the minimum value of v on the given tier.
//
// Panics if v is empty. Vector tiers finish with one overlapping load of the
// final full vector instead of a scalar tail; re-reading elements is harmless
// because min(x, x) == x.
func BaseMin[T hwy.Lanes](v []T, tier Tier) T {
	n := len(v)
	if n == 0 {
		panic("reduce: Min called on empty slice")
	}

	lanes := fitLanes[T](tier, n)
	if lanes == 0 {
		result := v[0]
		for _, x := range v[1:] {
			if x < result {
				result = x
			}
		}
		return result
	}
	if ks := kernelsFor[T](lanes); ks != nil {
		return ks.min(v)
	}

	minVec := hwy.Load(v, lanes)
	last := hwy.OverlapOffset(n, lanes)

	// Whole vectors that start strictly before the final window.
	for i := lanes; i < last; i += lanes {
		minVec = hwy.Min(minVec, hwy.Load(v[i:], lanes))
	}
	minVec = hwy.Min(minVec, hwy.Load(v[last:], lanes))

	return hwy.ReduceMin(minVec)
}

// BaseMax returns the maximum value of v on the given tier.
//
// Panics if v is empty. See BaseMin for the tail handling.
func BaseMax[T hwy.Lanes](v []T, tier Tier) T {
	n := len(v)
	if n == 0 {
		panic("reduce: Max called on empty slice")
	}

	lanes := fitLanes[T](tier, n)
	if lanes == 0 {
		result := v[0]
		for _, x := range v[1:] {
			if x > result {
				result = x
			}
		}
		return result
	}
	if ks := kernelsFor[T](lanes); ks != nil {
		return ks.max(v)
	}

	maxVec := hwy.Load(v, lanes)
	last := hwy.OverlapOffset(n, lanes)

	for i := lanes; i < last; i += lanes {
		maxVec = hwy.Max(maxVec, hwy.Load(v[i:], lanes))
	}
	maxVec = hwy.Max(maxVec, hwy.Load(v[last:], lanes))

	return hwy.ReduceMax(maxVec)
}

// BaseMinMax returns both the minimum and maximum values of v in one pass.
//
// Panics if v is empty.
func BaseMinMax[T hwy.Lanes](v []T, tier Tier) (min, max T) {
	n := len(v)
	if n == 0 {
		panic("reduce: MinMax called on empty slice")
	}

	lanes := fitLanes[T](tier, n)
	if lanes == 0 {
		min, max = v[0], v[0]
		for _, x := range v[1:] {
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
		}
		return min, max
	}
	if ks := kernelsFor[T](lanes); ks != nil {
		return ks.minMax(v)
	}

	minVec := hwy.Load(v, lanes)
	maxVec := minVec
	last := hwy.OverlapOffset(n, lanes)

	for i := lanes; i < last; i += lanes {
		va := hwy.Load(v[i:], lanes)
		minVec = hwy.Min(minVec, va)
		maxVec = hwy.Max(maxVec, va)
	}
	va := hwy.Load(v[last:], lanes)
	minVec = hwy.Min(minVec, va)
	maxVec = hwy.Max(maxVec, va)

	return hwy.ReduceMin(minVec), hwy.ReduceMax(maxVec)
}
