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
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Dialect renders abstract litmus tests in the input format of one verifier.
type Dialect interface {
	// Name returns the dialect name used on the command line (e.g., "alloy-ptx")
	Name() string

	// Dir returns the directory under the benchmarks root holding this dialect's files
	Dir() string

	// Ext returns the file extension including the leading dot
	Ext() string

	// Header returns declarations preceding the thread bodies
	Header(t *Test) []string

	// Operation renders one access
	Operation(op Op) string

	// Body returns the threads, framed and separated the way the dialect expects
	Body(t *Test) []string

	// Oracle returns the closing statement describing the probed outcome
	Oracle(t *Test) []string
}

// dialects holds the registered dialects
var dialects = map[string]Dialect{}

// RegisterDialect registers a dialect
func RegisterDialect(name string, d Dialect) {
	dialects[name] = d
}

// GetDialect returns the dialect with the given name
func GetDialect(name string) (Dialect, error) {
	if d, ok := dialects[name]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("unsupported dialect: %s (available: %s)", name, strings.Join(ListDialects(), ", "))
}

// ListDialects returns the registered dialect names in sorted order
func ListDialects() []string {
	names := lo.Keys(dialects)
	sort.Strings(names)
	return names
}

// Render returns the complete file contents of t in dialect d.
func Render(d Dialect, t *Test) string {
	var builder strings.Builder
	for _, part := range [][]string{d.Header(t), d.Body(t), d.Oracle(t)} {
		for _, line := range part {
			builder.WriteString(line)
			builder.WriteRune('\n')
		}
	}
	return builder.String()
}

// threadBlocks renders each thread as open, one indented statement per
// access, then close. Used by the dialects that list threads one after the
// other.
func threadBlocks(t *Test, d Dialect, open func(th Thread) []string, indent, terminator string, close []string) []string {
	var lines []string
	for _, th := range t.Threads {
		lines = append(lines, open(th)...)
		for _, op := range th.Ops {
			lines = append(lines, indent+d.Operation(op)+terminator)
		}
		lines = append(lines, close...)
	}
	return lines
}
