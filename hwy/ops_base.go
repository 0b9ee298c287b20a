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

import "math/bits"

// This file provides the portable implementations of the Highway operations
// used by the reduction kernels. Every operation works on Vec values whose
// storage is a fixed array, so nothing here touches the heap.
//
// Lane counts are explicit: callers pass the count for their tier, usually
// FixedTag128[T]{}.MaxLanes() or FixedTag256[T]{}.MaxLanes(). Passing a src
// shorter than lanes panics with the usual slice bounds error.

// Load creates a vector from the first lanes elements of src.
func Load[T Lanes](src []T, lanes int) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:lanes], src[:lanes])
	return v
}

// Store writes a vector's lanes to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:v.n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T, lanes int) Vec[T] {
	var v Vec[T]
	v.n = lanes
	for i := range v.data[:lanes] {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes](lanes int) Vec[T] {
	var v Vec[T]
	v.n = lanes
	_ = v.data[:lanes]
	return v
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	for i := range n {
		a.data[i] += b.data[i]
	}
	a.n = n
	return a
}

// Min returns element-wise minimum.
//
// Floating-point lanes follow IEEE ordering: a comparison involving NaN is
// false, so which operand survives depends on lane order.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	for i := range n {
		if b.data[i] < a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	a.n = n
	return a
}

// Max returns element-wise maximum. See Min for NaN behavior.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	for i := range n {
		if b.data[i] > a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	a.n = n
	return a
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(a.n, b.n)
	var m Mask[T]
	for i := range n {
		if a.data[i] == b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	m.n = n
	return m
}

// ReduceSum sums all lanes. Lane 0 seeds the result.
func ReduceSum[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	sum := v.data[0]
	for i := 1; i < v.n; i++ {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	min := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] < min {
			min = v.data[i]
		}
	}
	return min
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	max := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] > max {
			max = v.data[i]
		}
	}
	return max
}

// CountTrue returns the number of active lanes in the mask.
func CountTrue[T Lanes](m Mask[T]) int {
	return bits.OnesCount32(m.bits)
}

// FindFirstTrue returns the index of the first active lane, or -1.
func FindFirstTrue[T Lanes](m Mask[T]) int {
	if m.bits == 0 {
		return -1
	}
	return bits.TrailingZeros32(m.bits)
}
