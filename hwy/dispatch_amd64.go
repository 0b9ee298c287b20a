// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// x86Features is the subset of CPUID bits that select a dispatch level.
type x86Features struct {
	SSE2     bool
	AVX      bool
	AVX2     bool
	AVX512F  bool
	AVX512BW bool
}

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	setLevel(detectLevel(x86Features{
		SSE2:     cpu.X86.HasSSE2,
		AVX:      cpu.X86.HasAVX,
		AVX2:     cpu.X86.HasAVX2,
		AVX512F:  cpu.X86.HasAVX512F,
		AVX512BW: cpu.X86.HasAVX512BW,
	}, NoAVX2Env()))
}

// detectLevel maps CPUID feature bits to a dispatch level.
// AVX-512 requires BW so that 8/16-bit lanes are covered as well.
func detectLevel(f x86Features, noAVX2 bool) DispatchLevel {
	switch {
	case noAVX2 && f.SSE2:
		return DispatchSSE2
	case f.AVX512F && f.AVX512BW:
		return DispatchAVX512
	case f.AVX2:
		return DispatchAVX2
	case f.AVX:
		return DispatchAVX
	case f.SSE2:
		// SSE2 is baseline for amd64
		return DispatchSSE2
	default:
		return DispatchScalar
	}
}
