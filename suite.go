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
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"v.io/x/lib/vlog"
)

const minThreads = 2

// Suite writes every (dialect, pattern, thread count) combination below a
// root directory.
type Suite struct {
	root     string
	limit    int
	jobs     int
	dialects []Dialect
	patterns []Pattern
}

func NewSuite(cfg Config) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dialects, _ := cfg.dialects()
	patterns, _ := cfg.patterns()
	return &Suite{
		root:     cfg.OutputDir,
		limit:    cfg.Limit,
		jobs:     cfg.Jobs,
		dialects: dialects,
		patterns: patterns,
	}, nil
}

// testPath is the location of one generated test,
// {root}/{dialect dir}/{PATTERN}/{PATTERN}-{N}{ext}.
func testPath(root string, d Dialect, p Pattern, threads int) string {
	return filepath.Join(root, d.Dir(), string(p), fmt.Sprintf("%s-%d%s", p, threads, d.Ext()))
}

// cases lists the (pattern, thread count) pairs to generate. Counts a
// pattern is not defined for are skipped.
func (s *Suite) cases() []lo.Tuple2[Pattern, int] {
	var cases []lo.Tuple2[Pattern, int]
	for _, threads := range lo.RangeFrom(minThreads, s.limit-minThreads) {
		for _, p := range s.patterns {
			if err := p.Validate(threads); err != nil {
				vlog.VI(2).Infof("skipping %s-%d: %v", p, threads, err)
				continue
			}
			cases = append(cases, lo.Tuple2[Pattern, int]{A: p, B: threads})
		}
	}
	return cases
}

// Generate writes all tests and returns the number of files written.
// Existing files are overwritten.
func (s *Suite) Generate(ctx context.Context) (int, error) {
	for _, d := range s.dialects {
		for _, p := range s.patterns {
			if err := os.MkdirAll(filepath.Join(s.root, d.Dir(), string(p)), 0o755); err != nil {
				return 0, err
			}
		}
	}
	cases := s.cases()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.jobs)
	for _, d := range s.dialects {
		for _, c := range cases {
			d, c := d, c
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return s.write(d, c.A, c.B)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	written := len(cases) * len(s.dialects)
	vlog.Infof("generated %d tests in %s", written, s.root)
	return written, nil
}

func (s *Suite) write(d Dialect, p Pattern, threads int) error {
	t, err := Build(p, threads)
	if err != nil {
		return err
	}
	path := testPath(s.root, d, p, threads)
	if err = os.WriteFile(path, []byte(Render(d, t)), 0o644); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	vlog.VI(1).Infof("wrote %s", path)
	return nil
}
