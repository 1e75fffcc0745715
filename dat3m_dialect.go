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
	"strings"

	"github.com/samber/lo"
)

const (
	dat3mColumnSeparator = " | "
	dat3mRowTerminator   = " ;"
	dat3mEmptyCell       = " "
)

// Dat3MDialect emits herd-style .litmus files as read by Dartagnan. Threads
// are columns and each row holds the i-th access of every thread.
type Dat3MDialect struct {
	name      string
	dir       string
	arch      string
	mnemonics mnemonicTable
	// placement declares where a thread runs in the GPU hierarchy.
	placement func(thread int) string
}

func (d *Dat3MDialect) Name() string {
	return d.name
}

func (d *Dat3MDialect) Dir() string {
	return d.dir
}

func (d *Dat3MDialect) Ext() string {
	return ".litmus"
}

func (d *Dat3MDialect) Header(t *Test) []string {
	lines := []string{fmt.Sprintf("%s %s", d.arch, t.Name()), "{"}
	for _, v := range t.Vars {
		lines = append(lines, fmt.Sprintf("%v=0;", v))
	}
	for _, r := range t.Registers() {
		lines = append(lines, fmt.Sprintf("%s:%v=0;", procName(r.Thread), r.Reg))
	}
	lines = append(lines, "}")
	placements := lo.Times(len(t.Threads), d.placement)
	lines = append(lines, strings.Join(placements, dat3mColumnSeparator)+dat3mRowTerminator)
	return lines
}

func (d *Dat3MDialect) Operation(op Op) string {
	mnemonic := d.mnemonics.lookup(op)
	if op.Kind == Store {
		return fmt.Sprintf("%s %v, %d", mnemonic, op.Var, op.Value)
	}
	return fmt.Sprintf("%s %v, %v", mnemonic, op.Reg, op.Var)
}

func (d *Dat3MDialect) Body(t *Test) []string {
	rows := make([]string, t.Steps())
	for step := range rows {
		cells := lo.Map(t.Threads, func(th Thread, _ int) string {
			if step < len(th.Ops) {
				return d.Operation(th.Ops[step])
			}
			return dat3mEmptyCell
		})
		rows[step] = strings.Join(cells, dat3mColumnSeparator) + dat3mRowTerminator
	}
	return rows
}

func (d *Dat3MDialect) Oracle(t *Test) []string {
	conds := lo.Map(t.Oracle.Outcome, func(c Cond, _ int) string {
		return fmt.Sprintf("%s:%v == %d", procName(c.Thread), c.Reg, c.Value)
	})
	return []string{"exists", "(" + strings.Join(conds, ` /\ `) + ")"}
}

func init() {
	RegisterDialect("dat3m-ptx", &Dat3MDialect{
		name:      "dat3m-ptx",
		dir:       "dat3m_ptx",
		arch:      "PTX",
		mnemonics: ptxMnemonics,
		placement: func(thread int) string {
			// one CTA per thread, all on gpu 0
			return fmt.Sprintf("%s@cta %d, gpu 0", procName(thread), thread)
		},
	})
	RegisterDialect("dat3m-vulkan", &Dat3MDialect{
		name:      "dat3m-vulkan",
		dir:       "dat3m_vkn",
		arch:      "Vulkan",
		mnemonics: dat3mVulkanMnemonics,
		placement: func(thread int) string {
			// one workgroup per thread, subgroup 0, queue family 0
			return fmt.Sprintf("%s@sg 0, wg %d, qf 0", procName(thread), thread)
		},
	})
}
