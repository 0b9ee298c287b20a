//go:build amd64 && goexperiment.simd

package reduce

import (
	"math"
	"testing"

	"github.com/ajroetker/simdagg/hwy"
)

func TestCapabilityForKernels(t *testing.T) {
	tests := []struct {
		level   hwy.DispatchLevel
		int32s  Capability
		float32 Capability
		int8s   Capability
	}{
		{hwy.DispatchScalar, CapabilityNone, CapabilityNone, CapabilityNone},
		{hwy.DispatchSSE2, CapabilityNone, CapabilityNone, CapabilityNone},
		{hwy.DispatchNEON, CapabilityNone, CapabilityNone, CapabilityNone},
		{hwy.DispatchAVX, Capability128, Capability256, CapabilityNone},
		{hwy.DispatchAVX2, Capability256, Capability256, CapabilityNone},
		{hwy.DispatchAVX512, Capability256, Capability256, CapabilityNone},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := CapabilityFor[int32](tt.level); got != tt.int32s {
				t.Errorf("CapabilityFor[int32] = %v, want %v", got, tt.int32s)
			}
			if got := CapabilityFor[float32](tt.level); got != tt.float32 {
				t.Errorf("CapabilityFor[float32] = %v, want %v", got, tt.float32)
			}
			if got := CapabilityFor[int8](tt.level); got != tt.int8s {
				t.Errorf("CapabilityFor[int8] = %v, want %v", got, tt.int8s)
			}
		})
	}
}

func TestWideningKernelBias(t *testing.T) {
	if wideningKernel[int32](8) == nil {
		t.Skipf("no 256-bit kernels at level %s", hwy.CurrentName())
	}
	v := make([]int32, 37)
	for i := range v {
		v[i] = math.MinInt32 + int32(i)
	}
	var want int64
	for _, x := range v {
		want += int64(x)
	}
	for _, tier := range []Tier{Tier128, Tier256} {
		if got := BaseWideningSum(v, tier); got != want {
			t.Errorf("%s: BaseWideningSum = %d, want %d", tier, got, want)
		}
	}
}

func TestKernelsSelected(t *testing.T) {
	if !kernelsReady[float32](8) {
		t.Skipf("no 256-bit kernels at level %s", hwy.CurrentName())
	}
	if kernelsFor[float32](8) != &kernelsFloat32x8 {
		t.Error("float32 256-bit lookup returned the wrong kernel set")
	}
	if kernelsFor[int64](2) != &kernelsInt64x2 {
		t.Error("int64 128-bit lookup returned the wrong kernel set")
	}
	if kernelsFor[uint8](32) != nil {
		t.Error("uint8 has no kernels")
	}
	type celsius float32
	if kernelsFor[celsius](8) != nil {
		t.Error("named float32 types use the portable path")
	}
}
