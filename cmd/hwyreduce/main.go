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

// Command hwyreduce reports the SIMD tier this machine offers and computes
// statistics over numeric files with the reduce package.
//
// Usage:
//
//	hwyreduce info
//	hwyreduce stat --type int32 values.txt
//	hwyreduce stat --type float64 --binary samples.bin --contains 0.5
//	seq 1 100 | hwyreduce stat --type uint16 --verbose
//
// Set HWY_NO_SIMD=1 to force the scalar tier, or HWY_NO_AVX2=1 to cap amd64
// at 128-bit vectors.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	verbose bool
}

// newLogger returns the command logger. Diagnostics go to stderr so stdout
// stays machine readable.
func newLogger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "hwyreduce: ", 0)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "hwyreduce",
		Short:         "SIMD reductions over numeric data",
		Long:          "hwyreduce inspects the vector tier selected for this CPU and aggregates numeric input with it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log tier selection and input details to stderr")

	root.AddCommand(newInfoCmd(), newStatCmd(opts))
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		newLogger(root).Print(err)
		os.Exit(1)
	}
}
