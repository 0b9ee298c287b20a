//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures fall back to scalar mode.
	// wasm SIMD128 and the RISC-V vector extension are not wired yet.
	setScalarMode()
}
