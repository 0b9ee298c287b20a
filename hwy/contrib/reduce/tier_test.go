package reduce

import (
	"testing"

	"github.com/ajroetker/simdagg/hwy"
)

// allLevels lists every dispatch level, including ones foreign to GOARCH.
var allLevels = []hwy.DispatchLevel{
	hwy.DispatchScalar, hwy.DispatchSSE2, hwy.DispatchAVX,
	hwy.DispatchAVX2, hwy.DispatchAVX512, hwy.DispatchNEON,
}

// checkCapabilityBacked asserts that any vector capability reported for T
// comes with kernels for it, so the public functions never select a tier
// that would run on the portable Vec operations.
func checkCapabilityBacked[T hwy.Lanes](t *testing.T) {
	for _, level := range allLevels {
		c := CapabilityFor[T](level)
		if c != CapabilityNone && accelBytes[T](level) == 0 {
			t.Errorf("level %s: capability %s without kernels", level, c)
		}
		if c != CapabilityNone && hwy.VectorBytes[T](level) == 0 {
			t.Errorf("level %s: capability %s beyond the hardware", level, c)
		}
	}

	for _, n := range []int{16, 1000, 1 << 16} {
		tier := SelectTier[T](DetectCapability[T](), n)
		if tier == TierScalar {
			continue
		}
		if kernelsFor[T](Lanes[T](tier)) == nil {
			t.Errorf("size_%d: tier %s selected without kernels", n, tier)
		}
	}
}

func TestCapabilityBacked(t *testing.T) {
	t.Run("int8", checkCapabilityBacked[int8])
	t.Run("int16", checkCapabilityBacked[int16])
	t.Run("int32", checkCapabilityBacked[int32])
	t.Run("int64", checkCapabilityBacked[int64])
	t.Run("uint8", checkCapabilityBacked[uint8])
	t.Run("uint16", checkCapabilityBacked[uint16])
	t.Run("uint32", checkCapabilityBacked[uint32])
	t.Run("uint64", checkCapabilityBacked[uint64])
	t.Run("float32", checkCapabilityBacked[float32])
	t.Run("float64", checkCapabilityBacked[float64])
}

func TestDetectCapability(t *testing.T) {
	got := DetectCapability[float64]()
	if want := CapabilityFor[float64](hwy.CurrentLevel()); got != want {
		t.Errorf("DetectCapability[float64]() = %v, want %v", got, want)
	}
	if hwy.NoSimdEnv() && got != CapabilityNone {
		t.Errorf("HWY_NO_SIMD set but capability is %v", got)
	}
	t.Logf("level %s: float64 capability %s", hwy.CurrentName(), got)
}

func TestSelectTier(t *testing.T) {
	tests := []struct {
		name string
		c    Capability
		n    int
		want Tier
	}{
		{"none_large", CapabilityNone, 1000, TierScalar},
		{"256_empty", Capability256, 0, TierScalar},
		{"256_below_128", Capability256, 3, TierScalar},
		{"256_exact_128", Capability256, 4, Tier128},
		{"256_below_256", Capability256, 7, Tier128},
		{"256_exact_256", Capability256, 8, Tier256},
		{"256_large", Capability256, 1000, Tier256},
		{"128_below", Capability128, 3, TierScalar},
		{"128_exact", Capability128, 4, Tier128},
		{"128_large", Capability128, 1000, Tier128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectTier[int32](tt.c, tt.n); got != tt.want {
				t.Errorf("SelectTier[int32](%v, %d) = %v, want %v", tt.c, tt.n, got, tt.want)
			}
		})
	}

	// Lane counts scale with element size.
	if got := SelectTier[int8](Capability256, 31); got != Tier128 {
		t.Errorf("SelectTier[int8](256, 31) = %v, want %v", got, Tier128)
	}
	if got := SelectTier[int8](Capability256, 15); got != TierScalar {
		t.Errorf("SelectTier[int8](256, 15) = %v, want %v", got, TierScalar)
	}
	if got := SelectTier[float64](Capability256, 4); got != Tier256 {
		t.Errorf("SelectTier[float64](256, 4) = %v, want %v", got, Tier256)
	}
}

func TestLanes(t *testing.T) {
	tests := []struct {
		tier            Tier
		int8s, float64s int
	}{
		{TierScalar, 1, 1},
		{Tier128, 16, 2},
		{Tier256, 32, 4},
	}
	for _, tt := range tests {
		if got := Lanes[int8](tt.tier); got != tt.int8s {
			t.Errorf("Lanes[int8](%v) = %d, want %d", tt.tier, got, tt.int8s)
		}
		if got := Lanes[float64](tt.tier); got != tt.float64s {
			t.Errorf("Lanes[float64](%v) = %d, want %d", tt.tier, got, tt.float64s)
		}
	}
}

func TestFitLanes(t *testing.T) {
	if got := fitLanes[int32](Tier256, 5); got != 4 {
		t.Errorf("fitLanes[int32](256, 5) = %d, want 4", got)
	}
	if got := fitLanes[int32](Tier256, 2); got != 0 {
		t.Errorf("fitLanes[int32](256, 2) = %d, want 0", got)
	}
	if got := fitLanes[int32](Tier(42), 100); got != 0 {
		t.Errorf("fitLanes[int32](unknown, 100) = %d, want 0", got)
	}
}

func TestStrings(t *testing.T) {
	if CapabilityNone.String() != "none" || Capability256.String() != "256bit" || Capability(9).String() != "unknown" {
		t.Error("unexpected Capability strings")
	}
	if TierScalar.String() != "scalar" || Tier128.String() != "128bit" || Tier(9).String() != "unknown" {
		t.Error("unexpected Tier strings")
	}
}
