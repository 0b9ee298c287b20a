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


//go:build !amd64 || !goexperiment.simd

package reduce

import "github.com/ajroetker/simdagg/hwy"

// Without a hardware backend every public call runs on the scalar tier.
// The portable Vec tiers stay reachable through the Base functions.

const backend = "portable"

func accelBytes[T hwy.Lanes](hwy.DispatchLevel) int {
	return 0
}

func kernelsFor[T hwy.Lanes](int) *kernelSet[T] {
	return nil
}

func wideningKernel[T hwy.Lanes](int) func(v []uint32, bias uint32) uint64 {
	return nil
}
