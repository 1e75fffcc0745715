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
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dat3mOutput = `Verification finished with result PASS
======== Summary ========
#Annotations: 4
#Stores: 12
#Loads: 8
#Inits: 6
#Others: 3
Total verification time: %s
`

func TestDartagnan_Parse(t *testing.T) {
	tests := []struct {
		name     string
		time     string
		reported time.Duration
	}{
		{"secs", "2.5 secs", 2500 * time.Millisecond},
		{"whole secs", "7 secs", 7 * time.Second},
		{"mins", "3:05 mins", 3*time.Minute + 5*time.Second},
		{"hours", "1:02:03 hours", time.Hour + 2*time.Minute + 3*time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{Stdout: strings.Replace(dat3mOutput, "%s", tt.time, 1)}
			require.NoError(t, (&Dartagnan{}).Parse(r))
			assert.Equal(t, verdictPass, r.Verdict)
			assert.Equal(t, tt.reported, r.Reported)
			assert.Equal(t, 33, r.Events)
		})
	}
}

func TestDartagnan_ParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
	}{
		{"no result", "Total verification time: 1 secs\n"},
		{"no time", "Verification finished with result FAIL\n"},
		{"no events", "Verification finished with result FAIL\nTotal verification time: 1 secs\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, (&Dartagnan{}).Parse(&Result{Stdout: tt.stdout}))
		})
	}
}

func TestDartagnan_Command(t *testing.T) {
	d := &Dartagnan{Home: "/opt/dat3m", Cat: "ptx-v7.5", Property: "program_spec", Target: "ptx", Bound: 1}
	cmd := d.Command(context.Background(), "/tmp/MP-2.litmus")
	assert.Equal(t, "/opt/dat3m", cmd.Dir)
	assert.Equal(t, []string{"java", "-jar", "dartagnan/target/dartagnan.jar",
		"/tmp/MP-2.litmus", "cat/ptx-v7.5.cat",
		"--property=program_spec", "--target=ptx", "--bound=1",
		"--encoding.integers=true", "--method=assume"}, cmd.Args)
}

func TestAlloyPTX_Parse(t *testing.T) {
	tests := []struct {
		stdout  string
		want    string
		wantErr bool
	}{
		{"test MP-2: outcome matches expectation\n", verdictPass, false},
		{"test SB-2: outcome permitted\n", verdictPass, false},
		{"test LB-2: outcome breaks expectation\n", verdictFail, false},
		{"Traceback (most recent call last):\n", "", true},
	}
	for _, tt := range tests {
		r := &Result{Stdout: tt.stdout}
		err := (&AlloyPTX{}).Parse(r)
		if tt.wantErr {
			assert.Error(t, err, tt.stdout)
			continue
		}
		require.NoError(t, err, tt.stdout)
		assert.Equal(t, tt.want, r.Verdict, tt.stdout)
	}
}

func TestAlloyVulkan_Parse(t *testing.T) {
	r := &Result{Stdout: "Test /b/alloy_vkn/MP/MP-2.test.gen failed\n"}
	require.NoError(t, (&AlloyVulkan{}).Parse(r))
	assert.Equal(t, verdictFail, r.Verdict)

	r = &Result{Stdout: "make: Leaving directory\n"}
	require.NoError(t, (&AlloyVulkan{}).Parse(r))
	assert.Equal(t, verdictPass, r.Verdict)

	cmd := (&AlloyVulkan{Home: "/opt/vkn"}).Command(context.Background(), "/b/x.test")
	assert.Equal(t, []string{"make", "-j4", "-C", "/opt/vkn", "runtests", "TEST_FILE=/b/x.test"}, cmd.Args)
}

// shellVerifier runs a shell script in place of a real verifier and accepts
// any output.
type shellVerifier struct {
	script string
	parsed bool
}

func (v *shellVerifier) Name() string {
	return "shell"
}

func (v *shellVerifier) Command(ctx context.Context, test string) *exec.Cmd {
	return exec.CommandContext(ctx, "sh", "-c", v.script, "sh", test)
}

func (v *shellVerifier) Parse(r *Result) error {
	v.parsed = true
	r.Verdict = strings.TrimSpace(r.Stdout)
	return nil
}

func TestRun(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	tests := []struct {
		name    string
		script  string
		timed   bool
		verdict string
	}{
		{"pass", `echo PASS`, true, "PASS"},
		{"non-zero exit", `echo FAIL; exit 3`, true, "FAIL"},
		{"out of memory", `echo 'Exception in thread "main" ` + outOfMemoryMarker + `' >&2; exit 1`, false, ""},
		{"absolute path", `case "$1" in /*) echo abs ;; *) echo rel ;; esac`, true, "abs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &shellVerifier{script: tt.script}
			r, err := Run(context.Background(), v, "benchmarks/MP-2.litmus")
			require.NoError(t, err)
			assert.Equal(t, tt.timed, r.Timed)
			assert.Equal(t, tt.timed, v.parsed)
			assert.Equal(t, tt.verdict, r.Verdict)
			if !tt.timed {
				assert.Zero(t, r.Elapsed)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(context.Background(), &AlloyPTX{Home: t.TempDir()}, "MP-2.test")
	// either python3 is missing or the driver script is
	assert.Error(t, err)

	_, err = Run(context.Background(), &missingVerifier{}, "MP-2.test")
	assert.ErrorContains(t, err, "failed to run missing")
}

type missingVerifier struct{}

func (missingVerifier) Name() string {
	return "missing"
}

func (missingVerifier) Command(ctx context.Context, test string) *exec.Cmd {
	return exec.CommandContext(ctx, "litmusgen-no-such-verifier", test)
}

func (missingVerifier) Parse(*Result) error {
	return nil
}
