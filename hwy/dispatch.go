package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the SIMD instruction set detected for this process.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX indicates AVX without AVX2: 256-bit float lanes but only
	// 128-bit integer lanes.
	DispatchAVX

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX:
		return "avx"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
// Scalar reports 16 so lane arithmetic stays well defined.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX, DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

func setLevel(level DispatchLevel) {
	currentLevel = level
	currentWidth = level.Width()
	currentName = level.String()
}

func setScalarMode() {
	setLevel(DispatchScalar)
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Highway will use scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	return envFlag("HWY_NO_SIMD")
}

// NoAVX2Env checks if the HWY_NO_AVX2 environment variable is set.
// When set on amd64, detection stops at SSE2 even on wider hardware.
func NoAVX2Env() bool {
	return envFlag("HWY_NO_AVX2")
}

func envFlag(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// VectorBytes returns the register width in bytes that level offers for
// element type T, capped at MaxVectorBytes. It returns 0 when the level has
// no vector support for T.
//
// AVX without AVX2 only widens floating-point lanes to 256 bits; integer
// lanes stay at 128 bits.
func VectorBytes[T Lanes](level DispatchLevel) int {
	switch level {
	case DispatchScalar:
		return 0
	case DispatchAVX:
		if IsFloat[T]() {
			return 32
		}
		return 16
	}
	return min(level.Width(), MaxVectorBytes)
}

// MaxLanes returns the maximum number of lanes for type T with the current
// SIMD width, capped at what a Vec can hold.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return min(currentWidth, MaxVectorBytes) / elementSize
}

// IsFloat reports whether T is a floating-point lane type.
func IsFloat[T Lanes]() bool {
	one := T(1)
	return one/2 != 0
}
