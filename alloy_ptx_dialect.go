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

	"github.com/samber/lo"
)

// AlloyPTXDialect emits the .test format of the Alloy PTX model. Registers
// share one namespace across the file, so loads print their Seq number.
type AlloyPTXDialect struct{}

func (d *AlloyPTXDialect) Name() string {
	return "alloy-ptx"
}

func (d *AlloyPTXDialect) Dir() string {
	return "alloy_ptx"
}

func (d *AlloyPTXDialect) Ext() string {
	return ".test"
}

func (d *AlloyPTXDialect) Header(t *Test) []string {
	lines := lo.Map(t.Vars, func(v Var, _ int) string {
		return fmt.Sprintf(".global %v;", v)
	})
	return append(lines, "")
}

func (d *AlloyPTXDialect) Operation(op Op) string {
	mnemonic := ptxMnemonics.lookup(op)
	if op.Kind == Store {
		return fmt.Sprintf("%s [%v], %d", mnemonic, op.Var, op.Value)
	}
	line := fmt.Sprintf("%s %s, [%v]", mnemonic, op.Reg.Global(), op.Var)
	if op.Guard.Set {
		line += fmt.Sprintf(" == %d", op.Guard.Value)
	}
	return line
}

func (d *AlloyPTXDialect) Body(t *Test) []string {
	return threadBlocks(t, d, func(th Thread) []string {
		return []string{ptxBlock(th.ID) + " {"}
	}, "  ", ";", []string{"}", ""})
}

func (d *AlloyPTXDialect) Oracle(t *Test) []string {
	claim := t.Oracle.Claim
	return []string{fmt.Sprintf("%v (%s == %d) as %s;", claim.Kind, claim.Cond.Reg.Global(), claim.Cond.Value, claim.Name)}
}

func init() {
	RegisterDialect("alloy-ptx", &AlloyPTXDialect{})
}
