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

package reduce

import "github.com/ajroetker/simdagg/hwy"

// Capability is the widest vector support the CPU offers for an element type.
type Capability int

const (
	// CapabilityNone means no vector acceleration for the type.
	CapabilityNone Capability = iota
	// Capability128 means 128-bit vectors are available.
	Capability128
	// Capability256 means 256-bit vectors are available.
	Capability256
)

func (c Capability) String() string {
	switch c {
	case CapabilityNone:
		return "none"
	case Capability128:
		return "128bit"
	case Capability256:
		return "256bit"
	default:
		return "unknown"
	}
}

// Tier is the execution path chosen for one call.
type Tier int

const (
	// TierScalar processes one element at a time.
	TierScalar Tier = iota
	// Tier128 processes 128-bit vectors.
	Tier128
	// Tier256 processes 256-bit vectors.
	Tier256
)

func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case Tier128:
		return "128bit"
	case Tier256:
		return "256bit"
	default:
		return "unknown"
	}
}

// CapabilityFor maps a dispatch level to the capability it provides for T.
//
// A capability needs both the CPU and a compiled hardware kernel for T: on
// amd64 built with GOEXPERIMENT=simd, AVX2 yields Capability256 for float32,
// float64, int32, int64 and uint32, and AVX without AVX2 yields
// Capability128 for the integers. Every other combination, including any
// build without the experiment, yields CapabilityNone so calls stay on the
// scalar tier.
func CapabilityFor[T hwy.Lanes](level hwy.DispatchLevel) Capability {
	switch width := vectorBytes[T](level); {
	case width >= 32:
		return Capability256
	case width >= 16:
		return Capability128
	default:
		return CapabilityNone
	}
}

// DetectCapability returns the capability of the running CPU for T.
func DetectCapability[T hwy.Lanes]() Capability {
	return CapabilityFor[T](hwy.CurrentLevel())
}

// SelectTier picks the tier for an input of n elements of T.
//
// A tier is only chosen when the CPU supports it and the input holds at
// least one full vector of it.
func SelectTier[T hwy.Lanes](c Capability, n int) Tier {
	lanes128 := hwy.FixedTag128[T]{}.MaxLanes()
	lanes256 := hwy.FixedTag256[T]{}.MaxLanes()
	if c == CapabilityNone || n < lanes128 {
		return TierScalar
	}
	if c == Capability128 || n < lanes256 {
		return Tier128
	}
	return Tier256
}

// Lanes returns the lane count of tier t for T, or 1 for TierScalar.
func Lanes[T hwy.Lanes](t Tier) int {
	switch t {
	case Tier128:
		return hwy.FixedTag128[T]{}.MaxLanes()
	case Tier256:
		return hwy.FixedTag256[T]{}.MaxLanes()
	default:
		return 1
	}
}

// fitLanes returns the vector lane count to use for n elements on tier t,
// stepping down to a narrower tier when the input is shorter than a vector.
// It returns 0 when the call should run scalar.
func fitLanes[T hwy.Lanes](t Tier, n int) int {
	c := CapabilityNone
	switch t {
	case Tier128:
		c = Capability128
	case Tier256:
		c = Capability256
	}
	if tier := SelectTier[T](c, n); tier != TierScalar {
		return Lanes[T](tier)
	}
	return 0
}
