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
	"testing"
)

func TestNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"var", location(7).String(), "x7"},
		{"reg", Reg{ID: 3, Seq: 11}.String(), "r3"},
		{"global reg", Reg{ID: 3, Seq: 11}.Global(), "r11"},
		{"proc", procName(12), "P12"},
		{"ptx block", ptxBlock(5), "d0.b5.t0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestNeighbor(t *testing.T) {
	tests := []struct {
		i, n int
		want int
	}{
		{0, 2, 1},
		{1, 2, 0},
		{3, 5, 4},
		{4, 5, 0},
	}
	for _, tt := range tests {
		if got := neighbor(tt.i, tt.n); got != tt.want {
			t.Errorf("neighbor(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestIRIWRegUnique(t *testing.T) {
	for n := 4; n < 40; n += 2 {
		half := iriwHalves(n)
		seen := map[int]bool{}
		for k := 0; k < half; k++ {
			for slot := 0; slot < half; slot++ {
				seq := iriwReg(k, slot, slot, half).Seq
				if seen[seq] {
					t.Fatalf("n=%d: register r%d assigned twice", n, seq)
				}
				seen[seq] = true
			}
		}
		if len(seen) != half*half {
			t.Errorf("n=%d: got %d registers, want %d", n, len(seen), half*half)
		}
	}
}
