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

package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

// tempConfig returns a default configuration pointed at a sink under a
// per-test temporary directory.
func tempConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.SinkPath = filepath.Join(t.TempDir(), "program.log")
	return cfg
}

func readSink(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestInitCreatesEmptySink(t *testing.T) {
	reset()
	cfg := tempConfig(t)

	if err := Init(cfg); err != nil {
		t.Fatal(err)
	}
	if !Initialized() {
		t.Error("expected facility to be initialized")
	}
	if got := readSink(t, cfg.SinkPath); got != "" {
		t.Errorf("expected empty sink after initialization, got: %q", got)
	}
}

func TestTruncateErasesPriorRun(t *testing.T) {
	reset()
	cfg := tempConfig(t)
	if err := os.WriteFile(cfg.SinkPath, []byte("left over from a previous run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Init(cfg); err != nil {
		t.Fatal(err)
	}
	if got := readSink(t, cfg.SinkPath); got != "" {
		t.Errorf("expected truncated sink, got: %q", got)
	}
}

func TestAppendPreservesPriorRun(t *testing.T) {
	reset()
	cfg := tempConfig(t)
	cfg.WriteMode = AppendMode
	if err := os.WriteFile(cfg.SinkPath, []byte("previous run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Init(cfg); err != nil {
		t.Fatal(err)
	}
	Info("this run")

	got := readSink(t, cfg.SinkPath)
	regex := "^previous run\n" + stampRegex + "-root-INFO-this run\n$"
	match, err := regexp.MatchString(regex, got)
	if err != nil {
		t.Error(err)
	}
	if !match {
		t.Errorf("expected pattern: \"%s\", got: %s", regex, got)
	}
}

func TestReinitializeIsNoOp(t *testing.T) {
	reset()
	first := tempConfig(t)
	second := tempConfig(t)
	second.MinSeverity = ErrorSeverity

	if err := Init(first); err != nil {
		t.Fatal(err)
	}
	if err := Init(second); err != nil {
		t.Fatal(err)
	}

	active, ok := ActiveConfig()
	if !ok {
		t.Fatal("expected an active configuration")
	}
	if active.SinkPath != first.SinkPath {
		t.Errorf("expected sink %q to remain in effect, got %q", first.SinkPath, active.SinkPath)
	}
	if active.MinSeverity != DebugSeverity {
		t.Errorf("expected debug threshold to remain in effect, got %v", active.MinSeverity)
	}

	Debug("still here")
	if got := readSink(t, first.SinkPath); got == "" {
		t.Error("expected record in the original sink")
	}
	if _, err := os.Stat(second.SinkPath); !os.IsNotExist(err) {
		t.Errorf("expected the second sink to never be created, stat err: %v", err)
	}
}

func TestForceReplacesConfiguration(t *testing.T) {
	reset()
	first := tempConfig(t)
	second := tempConfig(t)

	if err := Init(first); err != nil {
		t.Fatal(err)
	}
	if err := Init(second, Force()); err != nil {
		t.Fatal(err)
	}

	active, _ := ActiveConfig()
	if active.SinkPath != second.SinkPath {
		t.Errorf("expected sink %q after force, got %q", second.SinkPath, active.SinkPath)
	}

	Info("rerouted")
	if got := readSink(t, first.SinkPath); got != "" {
		t.Errorf("expected nothing in the replaced sink, got: %q", got)
	}
	if got := readSink(t, second.SinkPath); got == "" {
		t.Error("expected record in the replacement sink")
	}
}

func TestInitUnwritableSink(t *testing.T) {
	reset()
	cfg := DefaultConfig()
	cfg.SinkPath = filepath.Join(t.TempDir(), "missing", "program.log")

	err := Init(cfg)
	if err == nil {
		t.Fatal("expected initialization to fail")
	}
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigurationError, got %T: %v", err, err)
	}
	if cerr.Field != "sink" {
		t.Errorf("expected the sink field at fault, got %q", cerr.Field)
	}
	if Initialized() {
		t.Error("expected no facility to be installed")
	}
	if _, err := os.Stat(cfg.SinkPath); !os.IsNotExist(err) {
		t.Errorf("expected no file to be created, stat err: %v", err)
	}
}

func TestInitInvalidConfig(t *testing.T) {
	reset()
	cfg := tempConfig(t)
	cfg.RecordFormat = "{bogus}"

	err := Init(cfg)
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigurationError, got %T: %v", err, err)
	}
	if Initialized() {
		t.Error("expected no facility to be installed")
	}
}

func TestNamedLoggerRecords(t *testing.T) {
	reset()
	cfg := tempConfig(t)
	if err := Init(cfg); err != nil {
		t.Fatal(err)
	}

	Named("app").Debug("started")
	Named("worker").Errorf("job %d failed", 3)

	got := readSink(t, cfg.SinkPath)
	regex := "^" + stampRegex + "-app-DEBUG-started\n" +
		stampRegex + "-worker-ERROR-job 3 failed\n$"
	match, err := regexp.MatchString(regex, got)
	if err != nil {
		t.Error(err)
	}
	if !match {
		t.Errorf("expected pattern: \"%s\", got: %s", regex, got)
	}
}

func TestThresholdAppliesGlobally(t *testing.T) {
	reset()
	cfg := tempConfig(t)
	cfg.MinSeverity = WarningSeverity
	if err := Init(cfg); err != nil {
		t.Fatal(err)
	}

	Debug("suppressed")
	Named("app").Info("suppressed")
	Named("app").Warning("kept")

	got := readSink(t, cfg.SinkPath)
	regex := "^" + stampRegex + "-app-WARNING-kept\n$"
	match, err := regexp.MatchString(regex, got)
	if err != nil {
		t.Error(err)
	}
	if !match {
		t.Errorf("expected pattern: \"%s\", got: %s", regex, got)
	}
}

func TestLastResortBeforeInit(t *testing.T) {
	reset()
	buffer := new(bytes.Buffer)
	prev := lastResortWriter
	lastResortWriter = buffer
	defer func() { lastResortWriter = prev }()

	Debug("dropped")
	Info("dropped")
	if buffer.Len() != 0 {
		t.Errorf("expected sub-warning records to be dropped, got: %q", buffer.String())
	}

	Warning("bare warning")
	Named("app").Criticalf("bare %s", "critical")
	if got := buffer.String(); got != "bare warning\nbare critical\n" {
		t.Errorf("expected bare messages on the last-resort writer, got: %q", got)
	}
}
