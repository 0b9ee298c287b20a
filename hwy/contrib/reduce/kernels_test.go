package reduce

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ajroetker/simdagg/hwy"
)

var allTiers = []Tier{TierScalar, Tier128, Tier256}

// maxTestSize covers three 256-bit vectors of the narrowest type plus one.
const maxTestSize = 3*32 + 1

// boundarySizes returns the lengths around one and two vectors of every tier.
func boundarySizes[T hwy.Lanes]() []int {
	sizes := []int{1, 2, 3}
	for _, tier := range []Tier{Tier128, Tier256} {
		l := Lanes[T](tier)
		sizes = append(sizes, l-1, l, l+1, 2*l-1, 2*l, 2*l+1)
	}
	sizes = append(sizes, maxTestSize)
	slices.Sort(sizes)
	return slices.Compact(sizes)
}

// smallValues fills a slice with integers in [-100, 100). Unsigned types see
// the negative half wrapped to the top of their range. Float sums of these
// values are exact in any order.
func smallValues[T hwy.Lanes](n int, seed uint64) []T {
	r := rand.New(rand.NewPCG(seed, uint64(n)))
	v := make([]T, n)
	for i := range v {
		v[i] = T(r.IntN(200) - 100)
	}
	return v
}

// absent is a value smallValues never produces.
func absent[T hwy.Lanes]() T {
	return T(101)
}

func naiveSum[T hwy.Lanes](v []T) T {
	var s T
	for _, x := range v {
		s += x
	}
	return s
}

func naiveMin[T hwy.Lanes](v []T) T {
	m := v[0]
	for _, x := range v {
		if x < m {
			m = x
		}
	}
	return m
}

func naiveMax[T hwy.Lanes](v []T) T {
	m := v[0]
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}

func naiveCount[T hwy.Lanes](v []T, value T) int {
	c := 0
	for _, x := range v {
		if x == value {
			c++
		}
	}
	return c
}

func TestKernels(t *testing.T) {
	t.Run("int8", checkKernels[int8])
	t.Run("int16", checkKernels[int16])
	t.Run("int32", checkKernels[int32])
	t.Run("int64", checkKernels[int64])
	t.Run("uint8", checkKernels[uint8])
	t.Run("uint16", checkKernels[uint16])
	t.Run("uint32", checkKernels[uint32])
	t.Run("uint64", checkKernels[uint64])
	t.Run("float32", checkKernels[float32])
	t.Run("float64", checkKernels[float64])
}

// checkKernels compares every kernel on every tier with a sequential
// reference for all lengths up to maxTestSize.
func checkKernels[T hwy.Lanes](t *testing.T) {
	for _, tier := range allTiers {
		t.Run(tier.String(), func(t *testing.T) {
			for n := 0; n <= maxTestSize; n++ {
				v := smallValues[T](n, 1)
				orig := slices.Clone(v)

				if got, want := BaseSum(v, tier), naiveSum(v); got != want {
					t.Errorf("size_%d: BaseSum = %v, want %v", n, got, want)
				}

				if n > 0 {
					if got, want := BaseMin(v, tier), naiveMin(v); got != want {
						t.Errorf("size_%d: BaseMin = %v, want %v", n, got, want)
					}
					if got, want := BaseMax(v, tier), naiveMax(v); got != want {
						t.Errorf("size_%d: BaseMax = %v, want %v", n, got, want)
					}
					lo, hi := BaseMinMax(v, tier)
					if lo != naiveMin(v) || hi != naiveMax(v) {
						t.Errorf("size_%d: BaseMinMax = (%v, %v), want (%v, %v)", n, lo, hi, naiveMin(v), naiveMax(v))
					}
					last := v[n-1]
					if !BaseContains(v, last, tier) {
						t.Errorf("size_%d: BaseContains(last element %v) = false", n, last)
					}
					if got, want := BaseIndexOf(v, last, tier), slices.Index(v, last); got != want {
						t.Errorf("size_%d: BaseIndexOf = %d, want %d", n, got, want)
					}
					if got, want := BaseCount(v, v[0], tier), naiveCount(v, v[0]); got != want {
						t.Errorf("size_%d: BaseCount = %d, want %d", n, got, want)
					}
				}

				if BaseContains(v, absent[T](), tier) {
					t.Errorf("size_%d: BaseContains(absent) = true", n)
				}
				if got := BaseIndexOf(v, absent[T](), tier); got != -1 {
					t.Errorf("size_%d: BaseIndexOf(absent) = %d, want -1", n, got)
				}
				if got := BaseCount(v, absent[T](), tier); got != 0 {
					t.Errorf("size_%d: BaseCount(absent) = %d, want 0", n, got)
				}

				if !BaseSequenceEqual(v, orig, tier) {
					t.Errorf("size_%d: BaseSequenceEqual(v, copy) = false", n)
				}
				if !slices.Equal(v, orig) {
					t.Fatalf("size_%d: input was modified", n)
				}
			}
		})
	}
}

func TestExtremeAtEveryPosition(t *testing.T) {
	t.Run("int8", checkExtremes[int8])
	t.Run("uint16", checkExtremes[uint16])
	t.Run("int32", checkExtremes[int32])
	t.Run("uint64", checkExtremes[uint64])
	t.Run("float32", checkExtremes[float32])
	t.Run("float64", checkExtremes[float64])
}

// checkExtremes places a unique minimum, maximum and search target at each
// index in turn, which exercises every lane of the main loop, the
// overlapping final window and the scalar tail.
func checkExtremes[T hwy.Lanes](t *testing.T) {
	lo, hi, mid := T(1), T(100), T(50)
	for _, tier := range allTiers {
		for _, n := range boundarySizes[T]() {
			t.Run(fmt.Sprintf("%s/size_%d", tier, n), func(t *testing.T) {
				for pos := 0; pos < n; pos++ {
					v := make([]T, n)
					for i := range v {
						v[i] = mid
					}

					v[pos] = lo
					if got := BaseMin(v, tier); got != lo {
						t.Errorf("pos %d: BaseMin = %v, want %v", pos, got, lo)
					}
					if got := BaseIndexOf(v, lo, tier); got != pos {
						t.Errorf("pos %d: BaseIndexOf = %d, want %d", pos, got, pos)
					}
					if !BaseContains(v, lo, tier) {
						t.Errorf("pos %d: BaseContains = false", pos)
					}

					v[pos] = hi
					if got := BaseMax(v, tier); got != hi {
						t.Errorf("pos %d: BaseMax = %v, want %v", pos, got, hi)
					}
					wantLo := mid
					if n == 1 {
						wantLo = hi
					}
					gotLo, gotHi := BaseMinMax(v, tier)
					if gotLo != wantLo || gotHi != hi {
						t.Errorf("pos %d: BaseMinMax = (%v, %v), want (%v, %v)", pos, gotLo, gotHi, wantLo, hi)
					}

					other := slices.Clone(v)
					other[pos] = mid
					if BaseSequenceEqual(v, other, tier) {
						t.Errorf("pos %d: BaseSequenceEqual of differing slices = true", pos)
					}
				}
			})
		}
	}
}

func TestSumWraparound(t *testing.T) {
	t.Run("int8", checkWraparound[int8])
	t.Run("int16", checkWraparound[int16])
	t.Run("int32", checkWraparound[int32])
	t.Run("int64", checkWraparound[int64])
	t.Run("uint8", checkWraparound[uint8])
	t.Run("uint16", checkWraparound[uint16])
	t.Run("uint32", checkWraparound[uint32])
	t.Run("uint64", checkWraparound[uint64])
}

// checkWraparound feeds full-range values so nearly every addition
// overflows; the vector result must still match the sequential one.
func checkWraparound[T hwy.Integers](t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for _, tier := range allTiers {
		for n := 0; n <= maxTestSize; n++ {
			v := make([]T, n)
			for i := range v {
				v[i] = T(r.Uint64())
			}
			if got, want := BaseSum(v, tier), naiveSum(v); got != want {
				t.Errorf("%s size_%d: BaseSum = %v, want %v", tier, n, got, want)
			}
		}
	}
}

func TestWideningSum(t *testing.T) {
	for _, tier := range allTiers {
		for _, n := range []int{0, 1, 3, 4, 7, 8, 9, 17, 1000} {
			t.Run(fmt.Sprintf("%s/size_%d", tier, n), func(t *testing.T) {
				signed := make([]int32, n)
				unsigned := make([]uint32, n)
				var wantSigned int64
				var wantUnsigned uint64
				for i := range n {
					if i%3 == 2 {
						signed[i] = -2147483648
					} else {
						signed[i] = 2147483647
					}
					unsigned[i] = 4294967295 - uint32(i)
					wantSigned += int64(signed[i])
					wantUnsigned += uint64(unsigned[i])
				}

				if got := BaseWideningSum(signed, tier); got != wantSigned {
					t.Errorf("BaseWideningSum = %d, want %d", got, wantSigned)
				}
				if got := BaseWideningSumUnsigned(unsigned, tier); got != wantUnsigned {
					t.Errorf("BaseWideningSumUnsigned = %d, want %d", got, wantUnsigned)
				}
			})
		}
	}
}

func TestWideningSumNegative(t *testing.T) {
	v := make([]int32, 41)
	for i := range v {
		v[i] = -1
	}
	for _, tier := range allTiers {
		if got := BaseWideningSum(v, tier); got != -41 {
			t.Errorf("%s: BaseWideningSum(41 x -1) = %d, want -41", tier, got)
		}
	}
}

func TestSequenceEqualLengthMismatch(t *testing.T) {
	for _, tier := range allTiers {
		if BaseSequenceEqual([]int32{1, 2, 3}, []int32{1, 2}, tier) {
			t.Errorf("%s: int32 length mismatch reported equal", tier)
		}
		if BaseSequenceEqual([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, tier) {
			t.Errorf("%s: float64 length mismatch reported equal", tier)
		}
		if !BaseSequenceEqual[uint8](nil, []uint8{}, tier) {
			t.Errorf("%s: nil and empty reported unequal", tier)
		}
	}
}

func TestEmptyPanics(t *testing.T) {
	tests := map[string]func(){
		"Min":    func() { BaseMin[int32](nil, Tier256) },
		"Max":    func() { BaseMax[float32](nil, Tier128) },
		"MinMax": func() { BaseMinMax[uint8](nil, TierScalar) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Base%s on empty slice did not panic", name)
				}
			}()
			fn()
		})
	}
}
