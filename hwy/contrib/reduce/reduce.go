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

//go:generate go run ../../../cmd/reducegen -input reduce.go -output z_reduce_typed.go -funcs Sum,Min,Max,MinMax,Contains,IndexOf,Count,Average,SequenceEqual
//go:generate go run ../../../cmd/reducegen -input reduce.go -output z_reduce_amd64.go -kernels

import "github.com/ajroetker/simdagg/hwy"

// tierFor selects the tier for n elements of T on this machine.
func tierFor[T hwy.Lanes](n int) Tier {
	return SelectTier[T](DetectCapability[T](), n)
}

// Sum returns the sum of all elements. Returns 0 for an empty slice.
// Integer sums wrap on overflow.
//
// Example:
//
//	data := []int32{1, 2, 3, 4}
//	result := Sum(data)  // 10
func Sum[T hwy.Lanes](v []T) T {
	return BaseSum(v, tierFor[T](len(v)))
}

// WideningSum returns the sum of int32 elements as an int64. It does not
// overflow for inputs shorter than 2^32 elements.
func WideningSum(v []int32) int64 {
	return BaseWideningSum(v, tierFor[int32](len(v)))
}

// WideningSumUnsigned returns the sum of uint32 elements as a uint64.
func WideningSumUnsigned(v []uint32) uint64 {
	return BaseWideningSumUnsigned(v, tierFor[uint32](len(v)))
}

// Min returns the smallest element, or ErrEmptySequence.
func Min[T hwy.Lanes](v []T) (T, error) {
	if len(v) == 0 {
		var zero T
		return zero, opError("Min", ErrEmptySequence)
	}
	return BaseMin(v, tierFor[T](len(v))), nil
}

// Max returns the largest element, or ErrEmptySequence.
func Max[T hwy.Lanes](v []T) (T, error) {
	if len(v) == 0 {
		var zero T
		return zero, opError("Max", ErrEmptySequence)
	}
	return BaseMax(v, tierFor[T](len(v))), nil
}

// MinMax returns the smallest and largest elements in a single pass,
// or ErrEmptySequence.
//
// Example:
//
//	lo, hi, err := MinMax([]float64{3, 1, 4, 1, 5})  // 1, 5, nil
func MinMax[T hwy.Lanes](v []T) (T, T, error) {
	if len(v) == 0 {
		var zero T
		return zero, zero, opError("MinMax", ErrEmptySequence)
	}
	lo, hi := BaseMinMax(v, tierFor[T](len(v)))
	return lo, hi, nil
}

// Contains reports whether any element equals value.
// Float NaN never matches.
func Contains[T hwy.Lanes](v []T, value T) bool {
	return BaseContains(v, value, tierFor[T](len(v)))
}

// IndexOf returns the index of the first element equal to value, or -1.
func IndexOf[T hwy.Lanes](v []T, value T) int {
	return BaseIndexOf(v, value, tierFor[T](len(v)))
}

// Count returns how many elements equal value.
func Count[T hwy.Lanes](v []T, value T) int {
	return BaseCount(v, value, tierFor[T](len(v)))
}

// Average returns the arithmetic mean as float64, or ErrEmptySequence.
//
// The mean is Sum(v) / len(v), so integer inputs inherit Sum's wraparound
// in the element type. AverageWide avoids that for int32.
func Average[T hwy.Lanes](v []T) (float64, error) {
	if len(v) == 0 {
		return 0, opError("Average", ErrEmptySequence)
	}
	return float64(Sum(v)) / float64(len(v)), nil
}

// AverageWide returns the mean of int32 elements, summing in 64 bits.
func AverageWide(v []int32) (float64, error) {
	if len(v) == 0 {
		return 0, opError("AverageWide", ErrEmptySequence)
	}
	return float64(WideningSum(v)) / float64(len(v)), nil
}

// AverageWideUnsigned returns the mean of uint32 elements, summing in 64 bits.
func AverageWideUnsigned(v []uint32) (float64, error) {
	if len(v) == 0 {
		return 0, opError("AverageWideUnsigned", ErrEmptySequence)
	}
	return float64(WideningSumUnsigned(v)) / float64(len(v)), nil
}

// SequenceEqual reports whether a and b have equal length and equal
// elements. Two empty slices are equal. Float NaN equals NaN here, and
// +0 equals -0.
func SequenceEqual[T hwy.Lanes](a, b []T) bool {
	return BaseSequenceEqual(a, b, tierFor[T](len(a)))
}
