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

// scope markers opening a fresh workgroup, subgroup and thread
var alloyVulkanThreadMarkers = []string{"NEWWG", "NEWSG", "NEWTHREAD"}

var alloyVulkanVerdicts = map[Verdict]string{
	Allowed:   "SATISFIABLE consistent[X]",
	Forbidden: "NOSOLUTION consistent[X]",
	Racy:      "SATISFIABLE consistent[X] && #dr>0",
}

// AlloyVulkanDialect emits the .test format of the Alloy Vulkan model. There
// are no registers: a load states the value it reads, and the file ends
// with the expected verdict instead of an expression.
type AlloyVulkanDialect struct{}

func (d *AlloyVulkanDialect) Name() string {
	return "alloy-vulkan"
}

func (d *AlloyVulkanDialect) Dir() string {
	return "alloy_vkn"
}

func (d *AlloyVulkanDialect) Ext() string {
	return ".test"
}

func (d *AlloyVulkanDialect) Header(*Test) []string {
	return nil
}

func (d *AlloyVulkanDialect) Operation(op Op) string {
	mnemonic := alloyVulkanMnemonics.lookup(op)
	if op.Kind == Store {
		return fmt.Sprintf("%s %v = %d", mnemonic, op.Var, op.Value)
	}
	return fmt.Sprintf("%s %v = %d", mnemonic, op.Var, op.Expect)
}

func (d *AlloyVulkanDialect) Body(t *Test) []string {
	return threadBlocks(t, d, func(Thread) []string {
		return alloyVulkanThreadMarkers
	}, "", "", nil)
}

func (d *AlloyVulkanDialect) Oracle(t *Test) []string {
	verdict, ok := alloyVulkanVerdicts[t.Oracle.Verdict]
	if !ok {
		panic(fmt.Sprintf("no alloy-vulkan keyword for verdict %v", t.Oracle.Verdict))
	}
	return []string{verdict}
}

func init() {
	RegisterDialect("alloy-vulkan", &AlloyVulkanDialect{})
}
