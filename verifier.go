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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"v.io/x/lib/vlog"
)

// outOfMemoryMarker in stderr means the verifier gave up; the run has no
// timing and is not an error.
const outOfMemoryMarker = "java.lang.OutOfMemoryError: Java heap space"

const (
	verdictPass = "PASS"
	verdictFail = "FAIL"
)

// Result is the outcome of one verifier invocation.
type Result struct {
	Elapsed time.Duration
	// Timed is false when the verifier ran out of memory.
	Timed   bool
	Stdout  string
	Stderr  string
	Verdict string
	// Reported is the verification time printed by the verifier itself, if any.
	Reported time.Duration
	Events   int
}

// Verifier is an external tool checking a generated test.
type Verifier interface {
	Name() string

	// Command returns the invocation checking the test at the given absolute path
	Command(ctx context.Context, test string) *exec.Cmd

	// Parse fills the verdict and metrics of r from its output
	Parse(r *Result) error
}

// Run executes v on test and parses its output. The verifier's exit status
// is ignored since some verifiers report failed checks through it.
func Run(ctx context.Context, v Verifier, test string) (*Result, error) {
	test, err := filepath.Abs(test)
	if err != nil {
		return nil, err
	}
	cmd := v.Command(ctx, test)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	vlog.VI(1).Infof("Running %v", cmd.Args)
	start := time.Now()
	err = cmd.Run()
	elapsed := time.Since(start)
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to run %s on %s: %w", v.Name(), test, err)
	}
	r := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if strings.Contains(r.Stderr, outOfMemoryMarker) {
		return r, nil
	}
	r.Elapsed, r.Timed = elapsed, true
	if err = v.Parse(r); err != nil {
		return nil, fmt.Errorf("%s on %s: %w", v.Name(), test, err)
	}
	return r, nil
}

var (
	dat3mResultLine = regexp.MustCompile(`Verification finished with result (FAIL|PASS|UNKNOWN)`)
	dat3mTimeLine   = regexp.MustCompile(`Total verification time: (?:(\d+(?:\.\d+)?) secs|(\d+):(\d+) mins|(\d+):(\d+):(\d+) hours)`)
	dat3mEventLines = []*regexp.Regexp{
		regexp.MustCompile(`#Annotations: (\d+)`),
		regexp.MustCompile(`#Stores: (\d+)`),
		regexp.MustCompile(`#Loads: (\d+)`),
		regexp.MustCompile(`#Inits: (\d+)`),
		regexp.MustCompile(`#Others: (\d+)`),
	}

	alloyPTXFail = regexp.MustCompile(`breaks expectation`)
	alloyPTXPass = regexp.MustCompile(`matches expectation|outcome permitted`)

	alloyVulkanFail = regexp.MustCompile(`Test \S+\.test\.gen failed`)
)

// Dartagnan runs the Dat3M bounded model checker on .litmus files.
type Dartagnan struct {
	Home     string
	Cat      string // memory model, e.g. "ptx-v7.5"
	Property string // e.g. "program_spec"
	Target   string // e.g. "ptx"
	Bound    int
}

func (d *Dartagnan) Name() string {
	return "dartagnan"
}

func (d *Dartagnan) Command(ctx context.Context, test string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "java", "-jar", "dartagnan/target/dartagnan.jar",
		test, fmt.Sprintf("cat/%s.cat", d.Cat),
		"--property="+d.Property, "--target="+d.Target, fmt.Sprintf("--bound=%d", d.Bound),
		"--encoding.integers=true", "--method=assume")
	cmd.Dir = d.Home
	return cmd
}

func (d *Dartagnan) Parse(r *Result) error {
	match := dat3mResultLine.FindStringSubmatch(r.Stdout)
	if match == nil {
		return errors.New("cannot find verification result")
	}
	r.Verdict = match[1]
	reported, err := parseDat3MTime(r.Stdout)
	if err != nil {
		return err
	}
	r.Reported = reported
	r.Events = 0
	for _, re := range dat3mEventLines {
		match = re.FindStringSubmatch(r.Stdout)
		if match == nil {
			return fmt.Errorf("cannot find event count %q", re.String())
		}
		r.Events += lo.Must(strconv.Atoi(match[1]))
	}
	return nil
}

// parseDat3MTime reads "Total verification time" in any of its three forms:
// "1.5 secs", "2:03 mins" or "1:02:03 hours".
func parseDat3MTime(out string) (time.Duration, error) {
	match := dat3mTimeLine.FindStringSubmatch(out)
	if match == nil {
		return 0, errors.New("cannot find verification time")
	}
	atoi := func(s string) time.Duration {
		return time.Duration(lo.Must(strconv.Atoi(s)))
	}
	switch {
	case match[1] != "":
		secs, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return 0, fmt.Errorf("malformed verification time seconds: %w", err)
		}
		return time.Duration(secs * float64(time.Second)), nil
	case match[2] != "":
		return atoi(match[2])*time.Minute + atoi(match[3])*time.Second, nil
	default:
		return atoi(match[4])*time.Hour + atoi(match[5])*time.Minute + atoi(match[6])*time.Second, nil
	}
}

// AlloyPTX runs the Alloy encoding of the PTX model through its Python driver.
type AlloyPTX struct {
	Home string
}

func (a *AlloyPTX) Name() string {
	return "alloy-ptx"
}

func (a *AlloyPTX) Command(ctx context.Context, test string) *exec.Cmd {
	return exec.CommandContext(ctx, "python3", filepath.Join(a.Home, "src", "test_to_alloy.py"), test)
}

func (a *AlloyPTX) Parse(r *Result) error {
	switch {
	case alloyPTXFail.MatchString(r.Stdout):
		r.Verdict = verdictFail
	case alloyPTXPass.MatchString(r.Stdout):
		r.Verdict = verdictPass
	default:
		return errors.New("cannot find verification result")
	}
	return nil
}

// AlloyVulkan runs the Alloy Vulkan model test target.
type AlloyVulkan struct {
	Home string
}

func (a *AlloyVulkan) Name() string {
	return "alloy-vulkan"
}

func (a *AlloyVulkan) Command(ctx context.Context, test string) *exec.Cmd {
	return exec.CommandContext(ctx, "make", "-j4", "-C", a.Home, "runtests", "TEST_FILE="+test)
}

// Parse never fails: the make target only reports failing tests.
func (a *AlloyVulkan) Parse(r *Result) error {
	if alloyVulkanFail.MatchString(r.Stdout) {
		r.Verdict = verdictFail
	} else {
		r.Verdict = verdictPass
	}
	return nil
}
