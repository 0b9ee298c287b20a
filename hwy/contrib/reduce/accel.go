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
	"unsafe"

	"github.com/ajroetker/simdagg/hwy"
)

// kernelSet holds the hardware kernels for one element type at one vector
// width. Each kernel handles a whole slice, tail included. A nil field means
// the shape has no kernel for that operation.
//
// The min and max kernels require len(v) >= the vector's lane count.
type kernelSet[E hwy.Lanes] struct {
	sum     func(v []E) E
	min     func(v []E) E
	max     func(v []E) E
	minMax  func(v []E) (E, E)
	indexOf func(v []E, value E) int
	count   func(v []E, value E) int
	equal   func(a, b []E) bool
}

// Backend names the hardware kernels compiled into this build: "archsimd"
// on amd64 with GOEXPERIMENT=simd, otherwise "portable", in which case the
// public functions always run on the scalar tier.
func Backend() string {
	return backend
}

// vectorBytes is the widest vector, in bytes, that both the CPU at level and
// the compiled kernels support for T.
func vectorBytes[T hwy.Lanes](level hwy.DispatchLevel) int {
	return min(hwy.VectorBytes[T](level), accelBytes[T](level))
}

// kernelsReady reports whether the running CPU can execute kernels over
// lanes-wide vectors of T.
func kernelsReady[T hwy.Lanes](lanes int) bool {
	var zero T
	width := lanes * int(unsafe.Sizeof(zero))
	return width > 0 && width <= vectorBytes[T](hwy.CurrentLevel())
}

// castSlice views s as a slice of E. E and T must share size and layout.
func castSlice[E, T any](s []T) []E {
	return unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
