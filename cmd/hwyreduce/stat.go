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
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/simdagg/hwy"
	"github.com/ajroetker/simdagg/hwy/contrib/reduce"
	"github.com/ajroetker/simdagg/hwy/contrib/workerpool"
)

type statOptions struct {
	*globalOptions
	typeName string
	binary   bool
	contains string
	equal    string
	jobs     int
}

// statInput is everything computeStats needs for one run.
type statInput struct {
	data   []byte
	other  []byte // second input for --equal, nil when unset
	opts   *statOptions
	logger *log.Logger
}

type statRow struct {
	name, value string
}

func newStatCmd(global *globalOptions) *cobra.Command {
	opts := &statOptions{globalOptions: global}
	cmd := &cobra.Command{
		Use:   "stat [file...]",
		Short: "Print sum, min, max and average of numeric input",
		Long: `Reads numbers from each file, or stdin when no file is given, and prints
every aggregate computed by the reduce package.

Text input holds numbers separated by whitespace or commas; lines starting
with '#' are ignored. With --binary the input is raw elements in host byte
order and is aggregated in place without parsing.

Several files are reduced concurrently, one file per worker.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.typeName, "type", "t", "float64", "element type")
	flags.BoolVarP(&opts.binary, "binary", "b", false, "input is raw host-endian elements")
	flags.StringVar(&opts.contains, "contains", "", "also report whether this value occurs, and where")
	flags.StringVar(&opts.equal, "equal", "", "also report whether the input equals the contents of this file")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "files reduced in parallel (0 means GOMAXPROCS)")
	return cmd
}

func runStat(cmd *cobra.Command, args []string, opts *statOptions) error {
	et, err := lookupType(opts.typeName)
	if err != nil {
		return err
	}

	base := statInput{opts: opts, logger: newLogger(cmd)}
	if opts.equal != "" {
		if base.other, err = os.ReadFile(opts.equal); err != nil {
			return fmt.Errorf("reading --equal input: %w", err)
		}
	}

	if len(args) == 0 {
		in := base
		if in.data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		rows, err := et.stat(in)
		if err != nil {
			return err
		}
		return writeRows(cmd.OutOrStdout(), rows)
	}

	pool := workerpool.New(opts.jobs)
	defer pool.Close()

	type result struct {
		rows []statRow
		err  error
	}
	results := workerpool.Apply(pool, args, func(path string) result {
		in := base
		data, err := os.ReadFile(path)
		if err != nil {
			return result{err: fmt.Errorf("reading input: %w", err)}
		}
		in.data = data
		rows, err := et.stat(in)
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
		}
		return result{rows, err}
	})

	out := cmd.OutOrStdout()
	for i, r := range results {
		if r.err != nil {
			return r.err
		}
		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", args[i])
		}
		if err := writeRows(out, r.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(w io.Writer, rows []statRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.name, r.value)
	}
	return tw.Flush()
}

func decode[T hwy.Lanes](data []byte, binary bool) ([]T, error) {
	if binary {
		return reduce.FromBytes[T](data)
	}
	return parseText[T](string(data))
}

// computeStats decodes the input as T and aggregates it.
func computeStats[T hwy.Lanes](in statInput) ([]statRow, error) {
	v, err := decode[T](in.data, in.opts.binary)
	if err != nil {
		return nil, fmt.Errorf("decoding %s input: %w", in.opts.typeName, err)
	}

	capability := reduce.DetectCapability[T]()
	tier := reduce.SelectTier[T](capability, len(v))
	if in.opts.verbose {
		in.logger.Printf("%d %s elements, level %s, capability %s, tier %s (%d lanes)",
			len(v), in.opts.typeName, hwy.CurrentName(), capability, tier, reduce.Lanes[T](tier))
	}

	rows := []statRow{
		{"type", in.opts.typeName},
		{"count", fmt.Sprint(len(v))},
		{"tier", tier.String()},
		{"sum", fmt.Sprint(reduce.Sum(v))},
	}

	switch s := any(v).(type) {
	case []int32:
		rows = append(rows, statRow{"wide sum", fmt.Sprint(reduce.WideningSum(s))})
	case []uint32:
		rows = append(rows, statRow{"wide sum", fmt.Sprint(reduce.WideningSumUnsigned(s))})
	}

	lo, hi, err := reduce.MinMax(v)
	switch {
	case errors.Is(err, reduce.ErrEmptySequence):
		if in.opts.verbose {
			in.logger.Print(err)
		}
		rows = append(rows, statRow{"min", "-"}, statRow{"max", "-"}, statRow{"average", "-"})
	case err != nil:
		return nil, err
	default:
		avg, err := reduce.Average(v)
		if err != nil {
			return nil, err
		}
		rows = append(rows,
			statRow{"min", fmt.Sprint(lo)},
			statRow{"max", fmt.Sprint(hi)},
			statRow{"average", fmt.Sprint(avg)},
		)
	}

	if in.opts.contains != "" {
		value, err := parseValue[T](in.opts.contains)
		if err != nil {
			return nil, fmt.Errorf("--contains: %w", err)
		}
		rows = append(rows,
			statRow{"contains", fmt.Sprint(reduce.Contains(v, value))},
			statRow{"index", fmt.Sprint(reduce.IndexOf(v, value))},
			statRow{"occurrences", fmt.Sprint(reduce.Count(v, value))},
		)
	}

	if in.other != nil {
		other, err := decode[T](in.other, in.opts.binary)
		if err != nil {
			return nil, fmt.Errorf("decoding --equal input: %w", err)
		}
		rows = append(rows, statRow{"equal", fmt.Sprint(reduce.SequenceEqual(v, other))})
	}

	return rows, nil
}
