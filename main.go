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

// Command litmusgen generates scalable GPU litmus tests (MP, SB, LB, IRIW)
// for Dartagnan, Alloy-PTX and Alloy-Vulkan, and benchmarks the verifiers
// on them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"v.io/x/lib/vlog"
)

var config = DefaultConfig()

var command = &cobra.Command{
	Use:   "litmusgen [--generate-tests] [-o benchmarks_directory]",
	Short: "Generate GPU litmus tests and benchmark verifiers on them",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := configureLogging(config.Verbosity); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := execute(cmd.Context(), config); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func configureLogging(verbosity int) error {
	return vlog.Log.Configure(
		vlog.OverridePriorConfiguration(true),
		vlog.LogToStderr(true),
		vlog.Level(verbosity),
	)
}

// execute dispatches on the mode flag: generate the tests, or run the
// verifiers on previously generated ones.
func execute(ctx context.Context, cfg Config) error {
	if cfg.Generate {
		suite, err := NewSuite(cfg)
		if err != nil {
			return err
		}
		_, err = suite.Generate(ctx)
		return err
	}
	bench, err := NewBenchmark(cfg, os.Stdout)
	if err != nil {
		return err
	}
	return bench.Run(ctx)
}

func init() {
	addConfigFlags(command.PersistentFlags(), &config)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := command.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
