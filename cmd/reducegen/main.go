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

// Command reducegen generates per-type entry points for the generic
// reductions of a package.
//
// Usage:
//
//	reducegen -input reduce.go -output z_reduce_typed.go
//	reducegen -input reduce.go -funcs Sum,Min -types int32,float64
//	reducegen -input reduce.go -kernels
//
// Or via go:generate:
//
//	//go:generate reducegen -input $GOFILE -output z_reduce_typed.go
//
// Every exported function of the input file with a single hwy.Lanes type
// parameter gets one wrapper per element type, named after the function and
// the type (SumInt32, MinFloat64, ...). The wrapper calls the generic
// function, so no logic is duplicated.
//
// With -kernels it instead emits the archsimd kernel sets for amd64, built
// only with GOEXPERIMENT=simd.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	inputFile  = flag.String("input", "", "Input Go source file (required)")
	outputFile = flag.String("output", "", "Output file (default: z_<input>_typed.go next to the input)")
	elemTypes  = flag.String("types", strings.Join(DefaultTypes, ","), "Comma-separated element types")
	funcs      = flag.String("funcs", "", "Comma-separated function names (default: all eligible)")
	kernels    = flag.Bool("kernels", false, "Emit archsimd kernel sets (z_<input>_amd64.go) instead of typed wrappers")
)

func main() {
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	typeList := splitList(*elemTypes)
	if len(typeList) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no element types specified\n")
		os.Exit(1)
	}

	gen := &Generator{
		InputFile:  *inputFile,
		OutputFile: *outputFile,
		Types:      typeList,
		Funcs:      splitList(*funcs),
		Kernels:    *kernels,
	}

	n, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	what := "functions"
	if gen.Kernels {
		what = "kernel sets"
	}
	fmt.Printf("Successfully generated %d %s in %s\n", n, what, gen.Output())
}

func splitList(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
