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


//go:build amd64 && goexperiment.simd

package reduce

import (
	"unsafe"

	"github.com/ajroetker/simdagg/hwy"
)

const backend = "archsimd"

// accelBytes returns the widest vector, in bytes, covered by the archsimd
// kernels for T at level. The kernels use VEX encodings, so levels below
// AVX get none.
func accelBytes[T hwy.Lanes](level hwy.DispatchLevel) int {
	switch level {
	case hwy.DispatchAVX, hwy.DispatchAVX2, hwy.DispatchAVX512:
	default:
		return 0
	}
	var zero T
	switch any(zero).(type) {
	case float32, float64, int32, int64, uint32:
		return 32
	}
	return 0
}

// kernelsFor returns the kernels for lanes-wide vectors of T, or nil when
// the CPU or the kernel set does not cover that shape.
func kernelsFor[T hwy.Lanes](lanes int) *kernelSet[T] {
	if !kernelsReady[T](lanes) {
		return nil
	}
	var zero T
	wide := lanes*int(unsafe.Sizeof(zero)) == 32

	var p unsafe.Pointer
	switch any(zero).(type) {
	case float32:
		p = pick(wide, unsafe.Pointer(&kernelsFloat32x8), unsafe.Pointer(&kernelsFloat32x4))
	case float64:
		p = pick(wide, unsafe.Pointer(&kernelsFloat64x4), unsafe.Pointer(&kernelsFloat64x2))
	case int32:
		p = pick(wide, unsafe.Pointer(&kernelsInt32x8), unsafe.Pointer(&kernelsInt32x4))
	case int64:
		p = pick(wide, unsafe.Pointer(&kernelsInt64x4), unsafe.Pointer(&kernelsInt64x2))
	case uint32:
		p = pick(wide, unsafe.Pointer(&kernelsUint32x8), unsafe.Pointer(&kernelsUint32x4))
	default:
		return nil
	}
	// T is exactly the kernels' element type here.
	return (*kernelSet[T])(p)
}

// wideningKernel returns the 32-to-64-bit sum kernel for lanes-wide vectors
// of T, which must be int32 or uint32.
func wideningKernel[T hwy.Lanes](lanes int) func(v []uint32, bias uint32) uint64 {
	if !kernelsReady[T](lanes) {
		return nil
	}
	switch lanes {
	case 8:
		return wideningSumUint32x8
	case 4:
		return wideningSumUint32x4
	}
	return nil
}

func pick(wide bool, p256, p128 unsafe.Pointer) unsafe.Pointer {
	if wide {
		return p256
	}
	return p128
}
