// Copyright 2026 litmusgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"v.io/x/lib/vlog"
)

// series is one column of a benchmark table: a verifier fed with the tests
// of one dialect.
type series struct {
	name     string
	dialect  Dialect
	verifier Verifier
}

// Timings maps a thread count to the wall time of one verifier run.
type Timings map[int]time.Duration

// Benchmark runs every series over growing thread counts and tabulates the
// timings per pattern.
type Benchmark struct {
	root     string
	results  string
	limit    int
	patterns []Pattern
	series   []series
	out      io.Writer
	run      func(ctx context.Context, v Verifier, test string) (*Result, error)
}

func NewBenchmark(cfg Config, out io.Writer) (*Benchmark, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	patterns, _ := cfg.patterns()
	lookup := func(name string) Dialect {
		return lo.Must(GetDialect(name))
	}
	return &Benchmark{
		root:     cfg.OutputDir,
		results:  cfg.ResultsDir,
		limit:    cfg.Limit,
		patterns: patterns,
		series: []series{
			{"Dartagnan-PTX", lookup("dat3m-ptx"), &Dartagnan{
				Home: cfg.Dat3MHome, Cat: "ptx-v7.5", Property: "program_spec", Target: "ptx", Bound: cfg.Bound}},
			{"Alloy-PTX", lookup("alloy-ptx"), &AlloyPTX{Home: cfg.AlloyPTXHome}},
			{"Dartagnan-Vulkan", lookup("dat3m-vulkan"), &Dartagnan{
				Home: cfg.Dat3MHome, Cat: "spirv", Property: "program_spec", Target: "vulkan", Bound: cfg.Bound}},
			{"Alloy-Vulkan", lookup("alloy-vulkan"), &AlloyVulkan{Home: cfg.AlloyVulkanHome}},
		},
		out: out,
		run: Run,
	}, nil
}

// scanRange lists the thread counts benchmarked for p. Counts step by two so
// IRIW always splits evenly.
func scanRange(p Pattern, limit int) []int {
	return lo.RangeWithSteps(p.MinThreads(), limit, 2)
}

// Scan collects the timings of every series for p. A series stops at the
// first run without timing, since larger instances will not fit either.
func (b *Benchmark) Scan(ctx context.Context, p Pattern) ([]Timings, error) {
	all := make([]Timings, len(b.series))
	for i, s := range b.series {
		all[i] = Timings{}
		for _, threads := range scanRange(p, b.limit) {
			r, err := b.run(ctx, s.verifier, testPath(b.root, s.dialect, p, threads))
			if err != nil {
				return nil, err
			}
			if !r.Timed {
				vlog.Infof("%s ran out of memory on %s-%d, skipping larger tests", s.name, p, threads)
				break
			}
			vlog.VI(1).Infof("%s %s-%d: %s in %v", s.name, p, threads, r.Verdict, r.Elapsed)
			all[i][threads] = r.Elapsed
		}
	}
	return all, nil
}

// Run benchmarks all configured patterns, writing {results}/{PATTERN}.csv
// and printing each table.
func (b *Benchmark) Run(ctx context.Context) error {
	for _, p := range b.patterns {
		timings, err := b.Scan(ctx, p)
		if err != nil {
			return err
		}
		table := b.table(p, timings)
		path := filepath.Join(b.results, fmt.Sprintf("%s.csv", p))
		if err = writeTable(path, table); err != nil {
			return err
		}
		fmt.Fprintf(b.out, "%s Benchmarks\n", p)
		if err = printTable(b.out, table); err != nil {
			return err
		}
		fmt.Fprintf(b.out, "Table written to %s\n", path)
	}
	return nil
}

// table lays timings out one row per thread count, in milliseconds. Cells of
// series that stopped early stay empty.
func (b *Benchmark) table(p Pattern, timings []Timings) [][]string {
	header := append([]string{"Threads"}, lo.Map(b.series, func(s series, _ int) string {
		return s.name
	})...)
	table := [][]string{header}
	for _, threads := range scanRange(p, b.limit) {
		row := []string{strconv.Itoa(threads)}
		for _, t := range timings {
			cell := ""
			if elapsed, ok := t[threads]; ok {
				cell = strconv.FormatInt(elapsed.Milliseconds(), 10)
			}
			row = append(row, cell)
		}
		table = append(table, row)
	}
	return table
}

func writeTable(path string, table [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err = w.WriteAll(table); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return f.Close()
}

func printTable(out io.Writer, table [][]string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, row := range table {
		fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
		if i == 0 {
			rule := lo.Map(row, func(cell string, _ int) string {
				return strings.Repeat("-", len(cell))
			})
			fmt.Fprintln(w, strings.Join(rule, "\t")+"\t")
		}
	}
	return w.Flush()
}
