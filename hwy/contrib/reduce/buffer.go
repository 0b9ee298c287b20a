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

// FromPointer returns a slice viewing n elements starting at p.
//
// It is the adapter for callers that hold a raw location and a length, for
// example memory obtained through cgo. The memory must stay valid and
// unmodified for as long as the slice is used. A zero length yields a nil
// slice regardless of p.
func FromPointer[T hwy.Lanes](p *T, n int) ([]T, error) {
	switch {
	case n < 0:
		return nil, opError("FromPointer", ErrNegativeLength)
	case n == 0:
		return nil, nil
	case p == nil:
		return nil, opError("FromPointer", ErrNullBuffer)
	}
	return unsafe.Slice(p, n), nil
}

// FromBytes reinterprets raw bytes as a slice of T in host byte order
// without copying.
//
// The length of b must be a multiple of the element size and its first
// byte must be aligned for T; otherwise ErrMisalignedBuffer is returned.
func FromBytes[T hwy.Lanes](b []byte) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b)%size != 0 {
		return nil, opError("FromBytes", ErrMisalignedBuffer)
	}
	if len(b) == 0 {
		return nil, nil
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, opError("FromBytes", ErrMisalignedBuffer)
	}
	return unsafe.Slice((*T)(p), len(b)/size), nil
}
