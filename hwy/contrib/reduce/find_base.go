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

// BaseIndexOf returns the index of the first element equal to value, or -1
// if not found.
func BaseIndexOf[T hwy.Lanes](v []T, value T, tier Tier) int {
	n := len(v)
	lanes := fitLanes[T](tier, n)
	i := 0

	if ks := kernelsFor[T](lanes); ks != nil {
		return ks.indexOf(v, value)
	}

	if lanes > 0 {
		target := hwy.Set(value, lanes)
		for ; i+lanes <= n; i += lanes {
			mask := hwy.Equal(hwy.Load(v[i:], lanes), target)
			if idx := hwy.FindFirstTrue(mask); idx >= 0 {
				return i + idx
			}
		}
	}

	// Handle tail elements
	for ; i < n; i++ {
		if v[i] == value {
			return i
		}
	}

	return -1
}

// BaseContains reports whether v holds an element equal to value.
// It stops at the first vector containing a match.
func BaseContains[T hwy.Lanes](v []T, value T, tier Tier) bool {
	n := len(v)
	lanes := fitLanes[T](tier, n)
	i := 0

	if ks := kernelsFor[T](lanes); ks != nil {
		return ks.indexOf(v, value) >= 0
	}

	if lanes > 0 {
		target := hwy.Set(value, lanes)
		for ; i+lanes <= n; i += lanes {
			if hwy.Equal(hwy.Load(v[i:], lanes), target).AnyTrue() {
				return true
			}
		}
	}

	for ; i < n; i++ {
		if v[i] == value {
			return true
		}
	}

	return false
}

// BaseCount returns the number of elements equal to value.
func BaseCount[T hwy.Lanes](v []T, value T, tier Tier) int {
	n := len(v)
	lanes := fitLanes[T](tier, n)
	count := 0
	i := 0

	if ks := kernelsFor[T](lanes); ks != nil {
		return ks.count(v, value)
	}

	if lanes > 0 {
		target := hwy.Set(value, lanes)
		for ; i+lanes <= n; i += lanes {
			count += hwy.CountTrue(hwy.Equal(hwy.Load(v[i:], lanes), target))
		}
	}

	for ; i < n; i++ {
		if v[i] == value {
			count++
		}
	}

	return count
}
