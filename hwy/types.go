// Package hwy provides portable SIMD-style vector operations with runtime CPU
// dispatch.
//
// It follows the Highway C++ library's design philosophy: kernels are written
// once against Vec and Mask, and the lane count is chosen from the hardware
// tier detected at startup. Vec is a fixed-capacity value type, so kernels
// built on it keep their accumulators on the stack and never allocate.
//
// Basic usage:
//
//	import "github.com/ajroetker/simdagg/hwy"
//
//	lanes := hwy.FixedTag256[float32]{}.MaxLanes()
//	acc := hwy.Zero[float32](lanes)
//	for i := 0; i+lanes <= len(data); i += lanes {
//		acc = hwy.Add(acc, hwy.Load(data[i:], lanes))
//	}
//	total := hwy.ReduceSum(acc)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// The set is closed: fixed-width integers and IEEE binary32/binary64.
type Lanes interface {
	Floats | Integers
}

// MaxVectorBytes is the widest register Vec models (256 bits).
const MaxVectorBytes = 32

// Vec is a portable vector register holding up to MaxVectorBytes lanes of T.
// Only the first NumLanes lanes are meaningful.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data [MaxVectorBytes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the active lanes.
// It allocates; kernels use Store instead.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	v.Store(out)
	return out
}

// Store writes the vector's lanes to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a lane-wise comparison.
// Bit i is set when lane i compared true.
//
// Mask instances should not be created directly; use comparison operations
// like Equal instead.
type Mask[T Lanes] struct {
	bits uint32
	n    int
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == lowBits(m.n)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

func lowBits(n int) uint32 {
	return uint32(uint64(1)<<uint(n) - 1)
}
