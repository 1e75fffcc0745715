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

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestDat3MDialect_Render(t *testing.T) {
	tests := []struct {
		dialect string
		pattern Pattern
		threads int
		want    string
	}{
		{"dat3m-ptx", MP, 2, `PTX MP-2
{
x0=0;
x1=0;
P1:r1=0;
P1:r0=0;
}
P0@cta 0, gpu 0 | P1@cta 1, gpu 0 ;
st.weak x0, 1 | ld.acquire.gpu r1, x1 ;
st.release.gpu x1, 1 | ld.weak r0, x0 ;
exists
(P1:r1 == 1 /\ P1:r0 == 0)
`},
		{"dat3m-vulkan", SB, 2, `Vulkan SB-2
{
x0=0;
x1=0;
P0:r1=0;
P1:r0=0;
}
P0@sg 0, wg 0, qf 0 | P1@sg 0, wg 1, qf 0 ;
st.atom.rel.dv.sc0.semsc0 x0, 1 | st.atom.rel.dv.sc0.semsc0 x1, 1 ;
ld.atom.acq.dv.sc0.semsc0 r1, x1 | ld.atom.acq.dv.sc0.semsc0 r0, x0 ;
exists
(P0:r1 == 0 /\ P1:r0 == 0)
`},
		{"dat3m-ptx", LB, 3, `PTX LB-3
{
x0=0;
x1=0;
x2=0;
P0:r1=0;
P1:r2=0;
P2:r0=0;
}
P0@cta 0, gpu 0 | P1@cta 1, gpu 0 | P2@cta 2, gpu 0 ;
ld.acquire.gpu r1, x1 | ld.acquire.gpu r2, x2 | ld.acquire.gpu r0, x0 ;
st.release.gpu x0, 1 | st.release.gpu x1, 1 | st.release.gpu x2, 1 ;
exists
(P0:r1 == 1 /\ P1:r2 == 1 /\ P2:r0 == 1)
`},
		{"dat3m-ptx", IRIW, 4, `PTX IRIW-4
{
x0=0;
x1=0;
P2:r0=0;
P2:r1=0;
P3:r0=0;
P3:r1=0;
}
P0@cta 0, gpu 0 | P1@cta 1, gpu 0 | P2@cta 2, gpu 0 | P3@cta 3, gpu 0 ;
st.release.gpu x0, 1 | st.release.gpu x1, 1 | ld.acquire.gpu r0, x0 | ld.acquire.gpu r1, x1 ;
  |   | ld.acquire.gpu r1, x1 | ld.acquire.gpu r0, x0 ;
exists
(P2:r0 == 1 /\ P2:r1 == 0 /\ P3:r0 == 0 /\ P3:r1 == 1)
`},
	}
	for _, tt := range tests {
		t.Run(tt.dialect+"/"+string(tt.pattern), func(t *testing.T) {
			d := lo.Must(GetDialect(tt.dialect))
			test := lo.Must(Build(tt.pattern, tt.threads))
			assert.Equal(t, tt.want, Render(d, test))
		})
	}
}

func TestDat3MDialect_Operation(t *testing.T) {
	d := lo.Must(GetDialect("dat3m-vulkan"))
	tests := []struct {
		op   Op
		want string
	}{
		{storeOp(3, Weak), "st.sc0 x3, 1"},
		{storeOp(3, Release), "st.atom.rel.dv.sc0.semsc0 x3, 1"},
		{loadOp(Reg{ID: 2, Seq: 9}, 2, Weak, 0), "ld.sc0 r2, x2"},
		{loadOp(Reg{ID: 2, Seq: 9}, 2, Acquire, 1), "ld.atom.acq.dv.sc0.semsc0 r2, x2"},
	}
	for _, tt := range tests {
		if got := d.Operation(tt.op); got != tt.want {
			t.Errorf("Operation(%+v) = %q, want %q", tt.op, got, tt.want)
		}
	}
}
