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

// Package reduce computes aggregate statistics over numeric slices using
// the vector operations of the hwy package.
//
// # Operations
//
//   - Sum, WideningSum, WideningSumUnsigned
//   - Min, Max, MinMax
//   - Contains, IndexOf, Count
//   - Average, AverageWide, AverageWideUnsigned
//   - SequenceEqual
//
// Every operation is generic over hwy.Lanes (fixed-width integers, float32
// and float64). Per-type entry points such as SumInt32 or MinFloat64 are
// generated into z_reduce_typed.go for callers that want a concrete symbol.
//
// # Tiers
//
// Each call picks one of three execution tiers: scalar, 128-bit or 256-bit
// lanes. The choice depends on what the CPU offers for the element type
// (detected once per process, see hwy.CurrentLevel) and on the input length:
// a slice shorter than one vector of a tier never runs on that tier.
//
// The vector tiers run archsimd kernels (z_reduce_amd64.go) when the module
// is built with GOEXPERIMENT=simd on amd64 and the CPU has AVX. Kernels exist
// for float32, float64, int32, int64 and uint32. Without them the public
// functions stay on the scalar tier, which is the fastest portable path.
//
// The Base* functions take the tier explicitly. A vector tier without a
// kernel runs on the portable hwy.Vec operations, which is how the tests
// cover every tier on any machine.
//
// # Semantics worth knowing
//
// Integer Sum wraps on overflow exactly like a sequential loop would. Use
// WideningSum for int32/uint32 inputs whose totals may leave the 32-bit range.
//
// Floating-point Sum adds lanes in a different order than a sequential loop,
// so results may differ in the last bits.
//
// Min, Max and MinMax do not special-case NaN. With NaN present the result
// is unspecified and may differ between tiers.
//
// Empty input: Min, Max, MinMax and Average return ErrEmptySequence, while
// Sum returns 0, Contains returns false and SequenceEqual of two empty slices
// returns true.
//
// No operation writes to, retains or allocates for its input.
//
// # Example Usage
//
//	import "github.com/ajroetker/simdagg/hwy/contrib/reduce"
//
//	total := reduce.Sum(values)
//	lo, hi, err := reduce.MinMax(values)
//	if errors.Is(err, reduce.ErrEmptySequence) {
//	    // handle empty input
//	}
package reduce
