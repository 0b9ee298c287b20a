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

import (
	"bytes"
	"unsafe"

	"github.com/ajroetker/simdagg/hwy"
)

// BaseSequenceEqual reports whether a and b have the same length and equal
// elements at every index.
//
// Integer slices are compared as raw memory, which does not depend on the
// tier. Float slices are compared vector by vector; elements are equal when
// they compare == or are both NaN, so a slice always equals itself.
func BaseSequenceEqual[T hwy.Lanes](a, b []T, tier Tier) bool {
	if len(a) != len(b) {
		return false
	}
	if !hwy.IsFloat[T]() {
		return bytes.Equal(asBytes(a), asBytes(b))
	}

	n := len(a)
	lanes := fitLanes[T](tier, n)
	if ks := kernelsFor[T](lanes); ks != nil && ks.equal != nil {
		return ks.equal(a, b)
	}
	i := 0

	if lanes > 0 {
		for ; i+lanes <= n; i += lanes {
			if hwy.Equal(hwy.Load(a[i:], lanes), hwy.Load(b[i:], lanes)).AllTrue() {
				continue
			}
			// NaN lanes never compare equal; settle the window element-wise.
			if !equalScalar(a[i:i+lanes], b[i:i+lanes]) {
				return false
			}
		}
	}

	return equalScalar(a[i:], b[i:])
}

// equalScalar compares two slices of equal length element by element.
func equalScalar[T hwy.Lanes](a, b []T) bool {
	for i := range a {
		x, y := a[i], b[i]
		if x != y && (x == x || y == y) {
			return false
		}
	}
	return true
}

// asBytes views the backing array of s as bytes without copying.
func asBytes[T hwy.Lanes](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}
