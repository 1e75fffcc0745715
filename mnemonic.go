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

type mnemonicKey struct {
	Kind  OpKind
	Order Order
	Scope Scope
}

// mnemonicTable maps an abstract access to a dialect instruction name.
type mnemonicTable map[mnemonicKey]string

// lookup panics on a missing entry: every dialect must cover every access
// the pattern builders emit.
func (m mnemonicTable) lookup(op Op) string {
	name, ok := m[mnemonicKey{Kind: op.Kind, Order: op.Order, Scope: op.Scope}]
	if !ok {
		panic(fmt.Sprintf("no mnemonic for %v %v at scope %v", op.Kind, op.Order, op.Scope))
	}
	return name
}

var (
	// PTX memory consistency model, gpu scope.
	ptxMnemonics = mnemonicTable{
		{Store, Weak, ScopeNone}:      "st.weak",
		{Load, Weak, ScopeNone}:       "ld.weak",
		{Store, Release, ScopeDevice}: "st.release.gpu",
		{Load, Acquire, ScopeDevice}:  "ld.acquire.gpu",
	}

	// Vulkan model as spelled by Dartagnan litmus files: storage class 0,
	// device scope, semantics on storage class 0.
	dat3mVulkanMnemonics = mnemonicTable{
		{Store, Weak, ScopeNone}:      "st.sc0",
		{Load, Weak, ScopeNone}:       "ld.sc0",
		{Store, Release, ScopeDevice}: "st.atom.rel.dv.sc0.semsc0",
		{Load, Acquire, ScopeDevice}:  "ld.atom.acq.dv.sc0.semsc0",
	}

	// Vulkan model as spelled by the Alloy test format.
	alloyVulkanMnemonics = mnemonicTable{
		{Store, Weak, ScopeNone}:      "st.sc0",
		{Load, Weak, ScopeNone}:       "ld.sc0",
		{Store, Release, ScopeDevice}: "st.atom.rel.scopedev.sc0.semsc0",
		{Load, Acquire, ScopeDevice}:  "ld.atom.acq.scopedev.sc0.semsc0",
	}
)
