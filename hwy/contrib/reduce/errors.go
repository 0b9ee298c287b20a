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
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned by Min, Max, MinMax and the Average
	// family when the input has no elements.
	ErrEmptySequence = errors.New("sequence contains no elements")

	// ErrNullBuffer is returned by FromPointer for a nil pointer with a
	// positive length.
	ErrNullBuffer = errors.New("nil buffer with non-zero length")

	// ErrNegativeLength is returned by FromPointer for a negative length.
	ErrNegativeLength = errors.New("negative length")

	// ErrMisalignedBuffer is returned by FromBytes when the byte slice cannot
	// be viewed as a slice of the element type.
	ErrMisalignedBuffer = errors.New("buffer is not aligned to the element type")
)

func opError(op string, err error) error {
	return fmt.Errorf("reduce: %s: %w", op, err)
}
