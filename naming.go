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

import "fmt"

// Var is a shared memory location. Locations are numbered from zero in
// thread order, so growing a test only appends new names.
type Var int

func (v Var) String() string {
	return fmt.Sprintf("x%d", int(v))
}

// Reg is a load destination. ID is the name inside its owning thread and Seq
// is a number unique across the whole file, for dialects that have no
// per-thread register namespace.
type Reg struct {
	ID  int
	Seq int
}

func (r Reg) String() string {
	return fmt.Sprintf("r%d", r.ID)
}

// Global returns the file-wide register name.
func (r Reg) Global() string {
	return fmt.Sprintf("r%d", r.Seq)
}

// location returns the variable written by thread i in the chain and ring
// patterns.
func location(i int) Var {
	return Var(i)
}

// neighbor returns the thread whose variable thread i reads in a ring of n.
func neighbor(i, n int) int {
	return (i + 1) % n
}

// threadReg names the register holding a load of location v. Ring and chain
// patterns load each variable exactly once, so the variable index is unique.
func threadReg(v Var) Reg {
	return Reg{ID: int(v), Seq: int(v)}
}

// iriwHalves splits n threads into the writer and reader halves.
func iriwHalves(n int) (half int) {
	return n / 2
}

// iriwReg names the register of reader k for writer variable j, loaded in
// the given slot of the reader's program order.
func iriwReg(k, slot, j, half int) Reg {
	return Reg{ID: j, Seq: k*half + slot}
}

// procName is the litmus process name of a thread.
func procName(thread int) string {
	return fmt.Sprintf("P%d", thread)
}

// ptxBlock names a thread as the only thread of its own CTA on device 0.
func ptxBlock(thread int) string {
	return fmt.Sprintf("d0.b%d.t0", thread)
}
