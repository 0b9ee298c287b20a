package hwy

import (
	"math"
	"testing"
)

func TestPromoteLowerI32ToI64(t *testing.T) {
	input := Load([]int32{-1, math.MaxInt32, math.MinInt32, 4, 5, 6, 7, 8}, 8)
	result := PromoteLower[int64](input)

	want := []int64{-1, math.MaxInt32, math.MinInt32, 4}
	if result.NumLanes() != len(want) {
		t.Fatalf("PromoteLower: got %d lanes, want %d", result.NumLanes(), len(want))
	}
	for i, w := range want {
		if result.data[i] != w {
			t.Errorf("PromoteLower lane %d: got %v, want %v", i, result.data[i], w)
		}
	}
}

func TestPromoteUpperI32ToI64(t *testing.T) {
	input := Load([]int32{1, 2, 3, 4, -5, 6, math.MinInt32, 8}, 8)
	result := PromoteUpper[int64](input)

	want := []int64{-5, 6, math.MinInt32, 8}
	if result.NumLanes() != len(want) {
		t.Fatalf("PromoteUpper: got %d lanes, want %d", result.NumLanes(), len(want))
	}
	for i, w := range want {
		if result.data[i] != w {
			t.Errorf("PromoteUpper lane %d: got %v, want %v", i, result.data[i], w)
		}
	}
}

func TestPromoteU32ToU64(t *testing.T) {
	input := Load([]uint32{math.MaxUint32, 1, 2, math.MaxUint32}, 4)
	lo := PromoteLower[uint64](input)
	hi := PromoteUpper[uint64](input)

	sum := ReduceSum(Add(lo, hi))
	want := uint64(math.MaxUint32)*2 + 3
	if sum != want {
		t.Errorf("promoted sum: got %v, want %v", sum, want)
	}
}

func TestPromoteF32ToF64(t *testing.T) {
	input := Load([]float32{1.5, 2.25, 3.125, 4.0625}, 4)
	lo := PromoteLower[float64](input)
	hi := PromoteUpper[float64](input)

	got := append(lo.Data(), hi.Data()...)
	for i := range got {
		if want := float64(input.data[i]); got[i] != want {
			t.Errorf("promote lane %d: got %v, want %v", i, got[i], want)
		}
	}
}
