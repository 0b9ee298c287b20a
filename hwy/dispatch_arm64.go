//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture, but we still consult the
	// cpu package so that emulated or restricted environments are honored.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON)
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}
}
