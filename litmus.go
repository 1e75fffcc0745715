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
	"strings"

	"github.com/samber/lo"
)

// Pattern is one of the canonical litmus shapes.
type Pattern string

const (
	MP   Pattern = "MP"
	SB   Pattern = "SB"
	LB   Pattern = "LB"
	IRIW Pattern = "IRIW"
)

// Patterns lists every supported pattern in generation order.
var Patterns = []Pattern{MP, SB, LB, IRIW}

var errUnsupportedThreads = errors.New("unsupported thread count")

// ParsePattern accepts a pattern name in any case.
func ParsePattern(name string) (Pattern, error) {
	p := Pattern(strings.ToUpper(name))
	if !lo.Contains(Patterns, p) {
		return "", fmt.Errorf("unsupported pattern: %s (available: MP, SB, LB, IRIW)", name)
	}
	return p, nil
}

// MinThreads returns the smallest thread count the pattern is defined for.
func (p Pattern) MinThreads() int {
	if p == IRIW {
		return 4
	}
	return 2
}

// Validate reports whether the pattern can be generated with n threads.
// IRIW splits its threads into two equal halves and rejects odd counts.
func (p Pattern) Validate(n int) error {
	if n < p.MinThreads() {
		return fmt.Errorf("%w: %s needs at least %d threads, got %d", errUnsupportedThreads, p, p.MinThreads(), n)
	}
	if p == IRIW && n%2 != 0 {
		return fmt.Errorf("%w: %s needs an even number of threads, got %d", errUnsupportedThreads, p, n)
	}
	return nil
}

// Supports is Validate as a predicate.
func (p Pattern) Supports(n int) bool {
	return p.Validate(n) == nil
}

type OpKind int

const (
	Store OpKind = iota
	Load
)

func (k OpKind) String() string {
	switch k {
	case Store:
		return "st"
	case Load:
		return "ld"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Order is the memory ordering class of an access.
type Order int

const (
	Weak Order = iota
	Acquire
	Release
)

func (o Order) String() string {
	switch o {
	case Weak:
		return "weak"
	case Acquire:
		return "acquire"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Scope is the synchronization scope of an atomic access. Weak accesses
// carry ScopeNone.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeDevice
)

func (s Scope) String() string {
	switch s {
	case ScopeNone:
		return "none"
	case ScopeDevice:
		return "device"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Guard is an inline assumption on the value a load returns.
type Guard struct {
	Set   bool
	Value int
}

func guard(v int) Guard {
	return Guard{Set: true, Value: v}
}

// Op is a single dialect-independent memory access.
type Op struct {
	Kind  OpKind
	Var   Var
	Reg   Reg // loads only
	Value int // stores only
	Order Order
	Scope Scope
	// Expect is the value a load observes in the outcome the test probes.
	Expect int
	Guard  Guard
}

func storeOp(v Var, order Order) Op {
	return Op{Kind: Store, Var: v, Value: 1, Order: order, Scope: scopeOf(order)}
}

func loadOp(r Reg, v Var, order Order, expect int) Op {
	return Op{Kind: Load, Var: v, Reg: r, Order: order, Scope: scopeOf(order), Expect: expect}
}

func scopeOf(order Order) Scope {
	if order == Weak {
		return ScopeNone
	}
	return ScopeDevice
}

type Thread struct {
	ID  int
	Ops []Op
}

// Loads returns the thread's loads in program order.
func (t Thread) Loads() []Op {
	return lo.Filter(t.Ops, func(op Op, _ int) bool {
		return op.Kind == Load
	})
}

// Cond compares a register of a thread against a value.
type Cond struct {
	Thread int
	Reg    Reg
	Var    Var
	Value  int
}

// Verdict is the expected answer for the outcome under test.
type Verdict int

const (
	Allowed Verdict = iota
	Forbidden
	Racy
)

func (v Verdict) String() string {
	switch v {
	case Allowed:
		return "allowed"
	case Forbidden:
		return "forbidden"
	case Racy:
		return "racy"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

type ClaimKind int

const (
	Assert ClaimKind = iota
	Permit
)

func (k ClaimKind) String() string {
	if k == Assert {
		return "assert"
	}
	return "permit"
}

// Claim is the single named statement of the declarative dialect. Its
// register is the final load of the test, which carries no guard.
type Claim struct {
	Kind ClaimKind
	Cond Cond
	Name string
}

// Oracle describes the outcome a test probes.
type Oracle struct {
	// Outcome is a conjunction over every load of the test.
	Outcome []Cond
	Verdict Verdict
	Claim   Claim
}

// Test is a litmus test before rendering.
type Test struct {
	Pattern Pattern
	Threads []Thread
	Vars    []Var
	Oracle  Oracle
}

// Name is the test name shared by all dialects, e.g. "MP-3".
func (t *Test) Name() string {
	return fmt.Sprintf("%s-%d", t.Pattern, len(t.Threads))
}

// Registers returns the thread-qualified registers in outcome order.
func (t *Test) Registers() []Cond {
	return lo.Map(t.Oracle.Outcome, func(c Cond, _ int) Cond {
		return Cond{Thread: c.Thread, Reg: c.Reg, Var: c.Var}
	})
}

// Steps is the length of the longest thread.
func (t *Test) Steps() int {
	return lo.Max(lo.Map(t.Threads, func(th Thread, _ int) int {
		return len(th.Ops)
	}))
}
