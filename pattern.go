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

	"github.com/samber/lo"
)

// Build returns the n-thread instance of pattern p.
func Build(p Pattern, n int) (*Test, error) {
	if err := p.Validate(n); err != nil {
		return nil, err
	}
	var t *Test
	switch p {
	case MP:
		t = buildMP(n)
	case SB:
		t = buildSB(n)
	case LB:
		t = buildLB(n)
	case IRIW:
		t = buildIRIW(n)
	default:
		return nil, fmt.Errorf("unsupported pattern: %s", p)
	}
	t.Pattern = p
	return t, nil
}

// buildMP chains message passing through n threads. Thread 0 writes x0 and
// releases x1, every middle thread acquires its own variable and releases the
// next one, and the last thread acquires the end of the chain before reading
// x0. The probed outcome sees every flag set but the stale x0.
func buildMP(n int) *Test {
	threads := make([]Thread, n)
	threads[0] = Thread{ID: 0, Ops: []Op{
		storeOp(location(0), Weak),
		storeOp(location(1), Release),
	}}
	for i := 1; i < n; i++ {
		acquire := loadOp(threadReg(location(i)), location(i), Acquire, 1)
		acquire.Guard = guard(1)
		var next Op
		if i < n-1 {
			next = storeOp(location(i+1), Release)
		} else {
			next = loadOp(threadReg(location(0)), location(0), Weak, 0)
		}
		threads[i] = Thread{ID: i, Ops: []Op{acquire, next}}
	}
	return &Test{
		Threads: threads,
		Vars:    lo.Times(n, location),
		Oracle: Oracle{
			Outcome: programOrderOutcome(threads),
			Verdict: Allowed,
			Claim:   claimLast(threads, Assert, 1, "mp_transitive"),
		},
	}
}

// buildSB arranges n threads in a ring: each releases its own variable and
// then acquires its neighbor's. The probed outcome reads every old value.
func buildSB(n int) *Test {
	threads := lo.Times(n, func(i int) Thread {
		j := neighbor(i, n)
		read := loadOp(threadReg(location(j)), location(j), Acquire, 0)
		read.Guard = guard(0)
		return Thread{ID: i, Ops: []Op{storeOp(location(i), Release), read}}
	})
	return &Test{
		Threads: threads,
		Vars:    lo.Times(n, location),
		Oracle: Oracle{
			Outcome: programOrderOutcome(threads),
			Verdict: Allowed,
			Claim:   claimLast(threads, Permit, 0, "sb_transitive"),
		},
	}
}

// buildLB is SB with each thread's accesses swapped. The probed outcome
// reads every new value, a causality cycle that must not be satisfiable.
// Inline guards in the declarative dialect stay on the initial values.
func buildLB(n int) *Test {
	threads := lo.Times(n, func(i int) Thread {
		j := neighbor(i, n)
		read := loadOp(threadReg(location(j)), location(j), Acquire, 1)
		read.Guard = guard(0)
		return Thread{ID: i, Ops: []Op{read, storeOp(location(i), Release)}}
	})
	return &Test{
		Threads: threads,
		Vars:    lo.Times(n, location),
		Oracle: Oracle{
			Outcome: programOrderOutcome(threads),
			Verdict: Forbidden,
			Claim:   claimLast(threads, Permit, 0, "lb_transitive"),
		},
	}
}

// buildIRIW gives the first half of the threads one write each and has every
// thread of the second half read all written variables. Reader k starts with
// its designated variable x_k and then walks x_1..x_{half-1}, reading x0 in
// the slot where x_k would repeat. The probed outcome has each reader see
// its designated write and none of the others, so readers disagree on the
// order of independent writes.
func buildIRIW(n int) *Test {
	half := iriwHalves(n)
	threads := make([]Thread, 0, 2*half)
	for w := 0; w < half; w++ {
		threads = append(threads, Thread{ID: w, Ops: []Op{storeOp(location(w), Release)}})
	}
	for k := 0; k < half; k++ {
		ops := make([]Op, half)
		for slot := 0; slot < half; slot++ {
			j := k
			if slot > 0 {
				j = slot
				if slot == k {
					j = 0
				}
			}
			expect := lo.Ternary(j == k, 1, 0)
			ops[slot] = loadOp(iriwReg(k, slot, j, half), location(j), Acquire, expect)
			ops[slot].Guard = guard(expect)
		}
		threads = append(threads, Thread{ID: half + k, Ops: ops})
	}

	var outcome []Cond
	for _, th := range threads[half:] {
		conds := opConds(th)
		sort.Slice(conds, func(a, b int) bool {
			return conds[a].Reg.ID < conds[b].Reg.ID
		})
		outcome = append(outcome, conds...)
	}
	return &Test{
		Threads: threads,
		Vars:    lo.Times(half, location),
		Oracle: Oracle{
			Outcome: outcome,
			Verdict: Allowed,
			Claim:   claimLast(threads, Permit, 0, "iriw_transitive"),
		},
	}
}

func opConds(th Thread) []Cond {
	return lo.Map(th.Loads(), func(op Op, _ int) Cond {
		return Cond{Thread: th.ID, Reg: op.Reg, Var: op.Var, Value: op.Expect}
	})
}

func programOrderOutcome(threads []Thread) []Cond {
	return lo.FlatMap(threads, func(th Thread, _ int) []Cond {
		return opConds(th)
	})
}

// claimLast strips the guard of the final load of the test and names it in
// the claim.
func claimLast(threads []Thread, kind ClaimKind, value int, name string) Claim {
	last := &threads[len(threads)-1]
	_, i, ok := lo.FindLastIndexOf(last.Ops, func(op Op) bool {
		return op.Kind == Load
	})
	if !ok {
		panic(fmt.Sprintf("claim %s: thread %d has no load", name, last.ID))
	}
	last.Ops[i].Guard = Guard{}
	op := last.Ops[i]
	return Claim{
		Kind: kind,
		Cond: Cond{Thread: last.ID, Reg: op.Reg, Var: op.Var, Value: value},
		Name: name,
	}
}
