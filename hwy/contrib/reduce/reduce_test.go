package reduce

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestScenarios(t *testing.T) {
	seq := make([]int32, 10000)
	for i := range seq {
		seq[i] = int32(i + 1)
	}
	if got := Sum(seq); got != 50005000 {
		t.Errorf("Sum(1..10000) = %d, want 50005000", got)
	}
	if got := Sum([]int32{}); got != 0 {
		t.Errorf("Sum(empty) = %d, want 0", got)
	}

	data := []int32{5, 3, 8, 1}
	type result struct {
		Min, Max, Lo, Hi int32
	}
	var got result
	var err error
	if got.Min, err = Min(data); err != nil {
		t.Fatal(err)
	}
	if got.Max, err = Max(data); err != nil {
		t.Fatal(err)
	}
	if got.Lo, got.Hi, err = MinMax(data); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(result{Min: 1, Max: 8, Lo: 1, Hi: 8}, got); diff != "" {
		t.Errorf("Min/Max/MinMax([5 3 8 1]) mismatch (-want +got):\n%s", diff)
	}

	if !Contains([]int32{1, 2, 3}, 2) {
		t.Error("Contains([1 2 3], 2) = false")
	}
	if Contains([]int32{}, 5) {
		t.Error("Contains(empty, 5) = true")
	}

	lo, hi, err := MinMax([]int32{7})
	if err != nil || lo != 7 || hi != 7 {
		t.Errorf("MinMax([7]) = (%d, %d, %v), want (7, 7, nil)", lo, hi, err)
	}
}

// TestEmptyInput pins the asymmetry between total and partial operations.
func TestEmptyInput(t *testing.T) {
	var empty []float64

	if got := Sum(empty); got != 0 {
		t.Errorf("Sum(empty) = %v, want 0", got)
	}
	if got := WideningSum(nil); got != 0 {
		t.Errorf("WideningSum(empty) = %v, want 0", got)
	}
	if Contains(empty, 0) {
		t.Error("Contains(empty, 0) = true")
	}
	if got := IndexOf(empty, 0); got != -1 {
		t.Errorf("IndexOf(empty) = %d, want -1", got)
	}
	if got := Count(empty, 0); got != 0 {
		t.Errorf("Count(empty) = %d, want 0", got)
	}
	if !SequenceEqual(empty, []float64{}) {
		t.Error("SequenceEqual(empty, empty) = false")
	}

	errs := map[string]error{}
	_, errs["Min"] = Min(empty)
	_, errs["Max"] = Max(empty)
	_, _, errs["MinMax"] = MinMax(empty)
	_, errs["Average"] = Average(empty)
	_, errs["AverageWide"] = AverageWide(nil)
	_, errs["AverageWideUnsigned"] = AverageWideUnsigned(nil)
	for op, err := range errs {
		if !errors.Is(err, ErrEmptySequence) {
			t.Errorf("%s(empty) error = %v, want ErrEmptySequence", op, err)
		}
	}
	if _, err := Min(empty); err.Error() != "reduce: Min: sequence contains no elements" {
		t.Errorf("Min(empty) error text = %q", err.Error())
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name string
		got  func() (float64, error)
		want float64
	}{
		{"int32", func() (float64, error) { return Average([]int32{1, 2, 3, 4}) }, 2.5},
		{"uint8", func() (float64, error) { return Average([]uint8{10, 20, 30}) }, 20},
		{"float32", func() (float64, error) { return Average([]float32{0.5, 1.5}) }, 1},
		{"float64_single", func() (float64, error) { return Average([]float64{-3}) }, -3},
		{"wide", func() (float64, error) {
			return AverageWide([]int32{math.MaxInt32, math.MaxInt32, math.MaxInt32, math.MaxInt32})
		}, math.MaxInt32},
		{"wide_unsigned", func() (float64, error) {
			return AverageWideUnsigned([]uint32{math.MaxUint32, math.MaxUint32, 0, 0})
		}, math.MaxUint32 / 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestAverageWraps documents that Average sums in the element type.
func TestAverageWraps(t *testing.T) {
	v := []int32{math.MaxInt32, math.MaxInt32}
	got, err := Average(v)
	if err != nil {
		t.Fatal(err)
	}
	if got != -1 {
		t.Errorf("Average = %v, want -1 (wrapped int32 sum / 2)", got)
	}
	wide, _ := AverageWide(v)
	if wide != math.MaxInt32 {
		t.Errorf("AverageWide = %v, want %v", wide, math.MaxInt32)
	}
}

func TestWideningSumPublic(t *testing.T) {
	v := make([]int32, 100)
	for i := range v {
		v[i] = math.MaxInt32
	}
	if got, want := WideningSum(v), int64(100)*math.MaxInt32; got != want {
		t.Errorf("WideningSum = %d, want %d", got, want)
	}
	u := make([]uint32, 100)
	for i := range u {
		u[i] = math.MaxUint32
	}
	if got, want := WideningSumUnsigned(u), uint64(100)*math.MaxUint32; got != want {
		t.Errorf("WideningSumUnsigned = %d, want %d", got, want)
	}
}

func TestFloatSpecialValues(t *testing.T) {
	nan := math.NaN()
	negZero := math.Copysign(0, -1)

	withNaN := make([]float64, 37)
	for i := range withNaN {
		withNaN[i] = float64(i)
	}
	withNaN[20] = nan

	if Contains(withNaN, nan) {
		t.Error("Contains(NaN) = true; NaN never compares equal")
	}
	if got := IndexOf(withNaN, nan); got != -1 {
		t.Errorf("IndexOf(NaN) = %d, want -1", got)
	}
	if !SequenceEqual(withNaN, withNaN) {
		t.Error("SequenceEqual of a slice with NaN against itself = false")
	}
	for _, tier := range allTiers {
		if !BaseSequenceEqual(withNaN, append([]float64(nil), withNaN...), tier) {
			t.Errorf("%s: SequenceEqual with NaN copy = false", tier)
		}
	}
	other := append([]float64(nil), withNaN...)
	other[20] = 20
	if SequenceEqual(withNaN, other) {
		t.Error("SequenceEqual(NaN, 20) = true")
	}

	zeros := []float32{0, 0, 0, 0, 0, 0, 0, 0, 0}
	negZeros := make([]float32, len(zeros))
	for i := range negZeros {
		negZeros[i] = float32(negZero)
	}
	if !SequenceEqual(zeros, negZeros) {
		t.Error("SequenceEqual(+0, -0) = false")
	}
	if !Contains(zeros, float32(negZero)) {
		t.Error("Contains(+0 slice, -0) = false")
	}

	// Min and Max with NaN are unspecified; they must still return a value
	// from the slice or NaN without panicking.
	if _, err := Min(withNaN); err != nil {
		t.Errorf("Min with NaN: %v", err)
	}
	inf := []float64{math.Inf(1), 1, math.Inf(-1), 2, 3}
	lo, hi, _ := MinMax(inf)
	if !math.IsInf(lo, -1) || !math.IsInf(hi, 1) {
		t.Errorf("MinMax(±Inf) = (%v, %v)", lo, hi)
	}
}

func TestFloatSumTolerance(t *testing.T) {
	v := make([]float32, 1001)
	for i := range v {
		v[i] = 0.1
	}
	var seq float64
	for _, x := range v {
		seq += float64(x)
	}
	opt := cmpopts.EquateApprox(1e-5, 0)
	if got := float64(Sum(v)); !cmp.Equal(seq, got, opt) {
		t.Errorf("Sum(0.1 x 1001) = %v, want about %v", got, seq)
	}
}

func TestIndexOfAndCount(t *testing.T) {
	v := []uint16{4, 9, 4, 4, 1, 9, 4, 4, 4, 2, 4, 4, 4, 4, 4, 4, 9}
	if got := IndexOf(v, 9); got != 1 {
		t.Errorf("IndexOf(9) = %d, want 1", got)
	}
	if got := IndexOf(v, 2); got != 9 {
		t.Errorf("IndexOf(2) = %d, want 9", got)
	}
	if got := Count(v, 4); got != 12 {
		t.Errorf("Count(4) = %d, want 12", got)
	}
	if got := Count(v, 9); got != 3 {
		t.Errorf("Count(9) = %d, want 3", got)
	}
}

func TestTypedEntryPoints(t *testing.T) {
	f := []float64{2.5, -1, 4}
	lo, hi, err := MinMaxFloat64(f)
	if diff := cmp.Diff([]any{-1.0, 4.0, nil}, []any{lo, hi, err}); diff != "" {
		t.Errorf("MinMaxFloat64 mismatch (-want +got):\n%s", diff)
	}
	if got := SumInt32([]int32{1, 2, 3}); got != 6 {
		t.Errorf("SumInt32 = %d, want 6", got)
	}
	if got := SumUint8([]uint8{200, 100}); got != 44 {
		t.Errorf("SumUint8 = %d, want 44 (wrapped)", got)
	}
	if !ContainsInt64([]int64{1 << 40}, 1<<40) {
		t.Error("ContainsInt64 = false")
	}
	if got := IndexOfUint32([]uint32{5, 6}, 6); got != 1 {
		t.Errorf("IndexOfUint32 = %d, want 1", got)
	}
	if got := CountInt8([]int8{-1, -1, 0}, -1); got != 2 {
		t.Errorf("CountInt8 = %d, want 2", got)
	}
	if _, err := MaxInt16(nil); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("MaxInt16(nil) error = %v", err)
	}
	if avg, _ := AverageUint64([]uint64{1, 2}); avg != 1.5 {
		t.Errorf("AverageUint64 = %v, want 1.5", avg)
	}
	if !SequenceEqualFloat32([]float32{1, 2}, []float32{1, 2}) {
		t.Error("SequenceEqualFloat32 = false")
	}
	if got, _ := MinUint16([]uint16{3, 2}); got != 2 {
		t.Errorf("MinUint16 = %d, want 2", got)
	}
}
