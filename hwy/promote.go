package hwy

// This file provides type promotion (widening) for the portable Vec.
//
// Promotion splits a vector of n narrow lanes into two vectors of n/2 wide
// lanes, the lower half and the upper half, so that each result still fits
// the same register width. Values convert with Go's numeric conversion rules:
// signed sources sign-extend and unsigned sources zero-extend. Pair a signed
// source with a signed destination; mixing signedness reinterprets the bits.

// PromoteLower widens the lower half of v's lanes to W.
// Input: 8 int32 lanes -> Output: 4 int64 lanes (from lanes 0..3).
func PromoteLower[W, T Lanes](v Vec[T]) Vec[W] {
	var r Vec[W]
	r.n = v.n / 2
	for i := range r.n {
		r.data[i] = W(v.data[i])
	}
	return r
}

// PromoteUpper widens the upper half of v's lanes to W.
// Input: 8 int32 lanes -> Output: 4 int64 lanes (from lanes 4..7).
func PromoteUpper[W, T Lanes](v Vec[T]) Vec[W] {
	var r Vec[W]
	half := v.n / 2
	r.n = v.n - half
	for i := range r.n {
		r.data[i] = W(v.data[half+i])
	}
	return r
}
