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

package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/klauspost/cpuid/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/simdagg/hwy"
	"github.com/ajroetker/simdagg/hwy/contrib/reduce"
)

// vectorFeatures are the cpuid feature names relevant to tier selection.
var vectorFeatures = []string{
	"SSE2", "SSE3", "SSSE3", "SSE4", "SSE42",
	"AVX", "AVX2", "FMA3",
	"AVX512F", "AVX512BW", "AVX512VL",
	"ASIMD", "SVE", "SVE2",
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the detected dispatch level and per-type tiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeInfo(cmd.OutOrStdout(), hwy.CurrentLevel())
		},
	}
}

func writeInfo(w io.Writer, level hwy.DispatchLevel) error {
	fmt.Fprintf(w, "GOOS/GOARCH: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "CPU: %s %s (%d physical cores)\n", cpuid.CPU.VendorString, cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores)

	features := lo.Filter(cpuid.CPU.FeatureSet(), func(f string, _ int) bool {
		return lo.Contains(vectorFeatures, f)
	})
	fmt.Fprintf(w, "Vector features: %s\n", strings.Join(features, " "))
	fmt.Fprintf(w, "Dispatch level: %s (%d bytes)\n", level, level.Width())
	fmt.Fprintf(w, "Kernel backend: %s\n", reduce.Backend())
	if hwy.NoSimdEnv() {
		fmt.Fprintln(w, "HWY_NO_SIMD is set: scalar tier forced")
	}
	if hwy.NoAVX2Env() {
		fmt.Fprintln(w, "HWY_NO_AVX2 is set: 128-bit tier cap")
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "TYPE\tCAPABILITY\tLANES %s\tLANES %s\n",
		hwy.FixedTag128[int8]{}.Name(), hwy.FixedTag256[int8]{}.Name())
	for _, e := range elemTypes {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", e.name, e.capability(level), e.lanes128, e.lanes256)
	}
	return tw.Flush()
}
