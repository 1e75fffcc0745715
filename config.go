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
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/pflag"
)

// Config carries everything the generator and the benchmark scan need. It
// is filled from flags once and passed down explicitly.
type Config struct {
	Generate        bool
	OutputDir       string   // root of the generated tests
	ResultsDir      string   // CSV tables
	Limit           int      // exclusive upper bound on the thread count
	Dialects        []string // empty means all registered dialects
	Patterns        []string // empty means all patterns
	Jobs            int
	Bound           int // Dartagnan unrolling bound
	Dat3MHome       string
	AlloyPTXHome    string
	AlloyVulkanHome string
	Verbosity       int
}

func DefaultConfig() Config {
	return Config{
		OutputDir:  "benchmarks",
		ResultsDir: "output",
		Limit:      41,
		Jobs:       runtime.NumCPU(),
		Bound:      1,
	}
}

func addConfigFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.BoolVar(&cfg.Generate, "generate-tests", cfg.Generate, "generate litmus tests instead of running the benchmarks")
	flags.StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "root directory of generated tests")
	flags.StringVar(&cfg.ResultsDir, "results", cfg.ResultsDir, "directory for benchmark tables")
	flags.IntVar(&cfg.Limit, "limit", cfg.Limit, "exclusive upper bound on the number of threads")
	flags.StringSliceVar(&cfg.Dialects, "dialect", cfg.Dialects, "dialects to generate (default all)")
	flags.StringSliceVar(&cfg.Patterns, "pattern", cfg.Patterns, "patterns to generate or run (default all)")
	flags.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "number of files generated in parallel")
	flags.IntVar(&cfg.Bound, "bound", cfg.Bound, "loop unrolling bound passed to Dartagnan")
	flags.StringVar(&cfg.Dat3MHome, "dat3m-home", cfg.Dat3MHome, "Dat3M checkout containing dartagnan/target/dartagnan.jar")
	flags.StringVar(&cfg.AlloyPTXHome, "alloy-ptx-home", cfg.AlloyPTXHome, "Alloy PTX model checkout")
	flags.StringVar(&cfg.AlloyVulkanHome, "alloy-vulkan-home", cfg.AlloyVulkanHome, "Alloy Vulkan model checkout")
	flags.CountVarP(&cfg.Verbosity, "verbose", "v", "increase verbosity level")
}

// Validate checks the configuration and resolves the dialect and pattern
// names.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	if c.Limit <= 2 {
		return fmt.Errorf("thread limit must be greater than 2, got %d", c.Limit)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be positive, got %d", c.Jobs)
	}
	if c.Bound < 1 {
		return fmt.Errorf("bound must be positive, got %d", c.Bound)
	}
	if _, err := c.dialects(); err != nil {
		return err
	}
	if _, err := c.patterns(); err != nil {
		return err
	}
	if !c.Generate {
		if c.ResultsDir == "" {
			return errors.New("results directory must not be empty")
		}
		if c.Dat3MHome == "" || c.AlloyPTXHome == "" || c.AlloyVulkanHome == "" {
			return errors.New("running benchmarks requires --dat3m-home, --alloy-ptx-home and --alloy-vulkan-home")
		}
	}
	return nil
}

func (c *Config) dialects() ([]Dialect, error) {
	names := c.Dialects
	if len(names) == 0 {
		names = ListDialects()
	}
	var result []Dialect
	for _, name := range names {
		d, err := GetDialect(name)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

func (c *Config) patterns() ([]Pattern, error) {
	if len(c.Patterns) == 0 {
		return Patterns, nil
	}
	var result []Pattern
	for _, name := range c.Patterns {
		p, err := ParsePattern(name)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}
