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
	"context"
	"log/slog"
	"regexp"
	"testing"
)

func TestSlogBridgeRecord(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), Name("web"))
	sl := slog.New(logger.SlogHandler())

	sl.Info("request served", "status", 200, "path", "/healthz")

	regex := "^" + stampRegex + `-web-INFO-request served status=200 path=/healthz\n$`
	match, err := regexp.Match(regex, buffer.Bytes())
	if err != nil {
		t.Error(err)
	}
	if !match {
		t.Errorf("expected pattern: \"%s\", got: %s", regex, buffer.String())
	}
}

func TestSlogBridgeLevels(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), Name("web"))
	sl := slog.New(logger.SlogHandler())

	for _, tc := range []struct {
		level slog.Level
		name  string
	}{
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelWarn, "WARNING"},
		{slog.LevelError, "ERROR"},
		{slog.LevelError + 4, "CRITICAL"},
	} {
		sl.Log(context.Background(), tc.level, "message")
		regex := "^" + stampRegex + "-web-" + tc.name + "-message\n$"
		match, err := regexp.Match(regex, buffer.Bytes())
		if err != nil {
			t.Error(err)
		}
		if !match {
			t.Errorf("expected pattern: \"%s\", got: %s", regex, buffer.String())
		}
		buffer.Reset()
	}
}

func TestSlogBridgeThreshold(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), Threshold(ErrorSeverity))
	sl := slog.New(logger.SlogHandler())

	if sl.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled under an error threshold")
	}
	sl.Info("suppressed")
	if buffer.Len() != 0 {
		t.Errorf("expected suppressed output, got: %s", buffer.String())
	}

	sl.Error("kept")
	if buffer.Len() == 0 {
		t.Error("expected the error record to be written")
	}
}

func TestSlogBridgeAttrsAndGroups(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), Name("web"))
	sl := slog.New(logger.SlogHandler()).With("service", "api").WithGroup("req")

	sl.Info("handled", "id", 7)

	regex := "^" + stampRegex + `-web-INFO-handled service=api req\.id=7\n$`
	match, err := regexp.Match(regex, buffer.Bytes())
	if err != nil {
		t.Error(err)
	}
	if !match {
		t.Errorf("expected pattern: \"%s\", got: %s", regex, buffer.String())
	}
}

func TestSlogBridgeGlobal(t *testing.T) {
	reset()
	cfg := tempConfig(t)
	if err := Init(cfg); err != nil {
		t.Fatal(err)
	}

	Slogger("svc").Warn("disk pressure", "free", "5%")

	got := readSink(t, cfg.SinkPath)
	regex := "^" + stampRegex + `-svc-WARNING-disk pressure free=5%\n$`
	match, err := regexp.MatchString(regex, got)
	if err != nil {
		t.Error(err)
	}
	if !match {
		t.Errorf("expected pattern: \"%s\", got: %s", regex, got)
	}
}

func TestSlogBridgeBeforeInit(t *testing.T) {
	reset()
	buffer := new(bytes.Buffer)
	prev := lastResortWriter
	lastResortWriter = buffer
	defer func() { lastResortWriter = prev }()

	h := NewSlogHandler("svc")
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled before initialization")
	}
	if !h.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("expected warnings to pass before initialization")
	}

	slog.New(h).Warn("early warning")
	if got := buffer.String(); got != "early warning\n" {
		t.Errorf("expected the bare message on the last-resort writer, got: %q", got)
	}
}
