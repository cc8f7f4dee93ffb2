// Copyright 2024 The Proglog Authors.
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
	"os"

	"github.com/rksharma2180/proglog/pkg/log"
)

func main() {
	// The defaults: program.log, truncated each run, debug threshold, and
	// records of the form 2024-01-01 00:00:00-app-DEBUG-started.
	cfg := log.DefaultConfig()
	if err := log.Init(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Info("service starting")

	logger := log.Named("app")
	logger.Debugf("pid %d", os.Getpid())
	logger.Warning("cache cold")

	// slog call sites route through the same sink.
	sl := log.Slogger("web")
	sl.Info("request served", "status", 200, "path", "/healthz")

	// A second Init is a no-op; the original configuration stays in effect.
	other := cfg
	other.SinkPath = "elsewhere.log"
	if err := log.Init(other); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	active, _ := log.ActiveConfig()
	fmt.Println("records written to", active.SinkPath)
}
