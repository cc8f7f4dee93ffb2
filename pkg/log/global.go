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
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// rootName is the logger name used by the package-level helpers.
const rootName = "root"

// Process-wide facility state. Readers load a snapshot through the atomic;
// Init serializes writers through the mutex. Emission never blocks on
// initialization.
var gstate struct {
	mu  sync.Mutex
	fac atomic.Value // type: *facility
}

func loadFacility() *facility {
	f, _ := gstate.fac.Load().(*facility)
	return f
}

type initOptions struct {
	force bool
}

// InitOption adjusts how Init applies a configuration.
type InitOption func(*initOptions)

// Force makes Init replace an already-installed configuration instead of
// leaving it untouched. The previous sink handle is closed after the swap.
func Force() InitOption {
	return func(o *initOptions) {
		o.force = true
	}
}

// Init establishes the process-wide logging facility from cfg: it validates
// the configuration, opens (creating or truncating, per cfg.WriteMode) the
// sink file, and installs the facility so that every subsequent record at or
// above cfg.MinSeverity, from any logger name, is rendered per
// cfg.RecordFormat and written to the sink.
//
// Init is a one-shot startup action. If a configuration is already in
// effect, Init without the Force option changes nothing and returns nil.
// On failure a *ConfigurationError is returned and no state is installed;
// callers should treat that as fatal, since logging underpins the visibility
// of every later failure.
//
// The sink handle is owned by the facility for the life of the process and
// released implicitly at exit (or when a Force re-initialization replaces
// it).
func Init(cfg Config, options ...InitOption) error {
	var opts initOptions
	for _, option := range options {
		option(&opts)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := CompileFormat(cfg.RecordFormat, cfg.TimestampFormat)
	if err != nil {
		return err
	}

	gstate.mu.Lock()
	defer gstate.mu.Unlock()

	prev := loadFacility()
	if prev != nil && !opts.force {
		return nil
	}

	sink, err := openSink(cfg.SinkPath, cfg.WriteMode)
	if err != nil {
		return &ConfigurationError{
			Field:  "sink",
			Reason: fmt.Sprintf("cannot open sink path %q", cfg.SinkPath),
			Err:    err,
		}
	}

	gstate.fac.Store(&facility{
		w:         SynchronizedWriter(sink),
		threshold: cfg.MinSeverity,
		format:    format,
		config:    cfg,
		closer:    sink,
	})
	if prev != nil && prev.closer != nil {
		prev.closer.Close()
	}
	return nil
}

// Initialized reports whether a process-wide configuration is in effect.
func Initialized() bool {
	return loadFacility() != nil
}

// ActiveConfig returns the configuration currently in effect, if any.
func ActiveConfig() (Config, bool) {
	if f := loadFacility(); f != nil {
		return f.config, true
	}
	return Config{}, false
}

// reset returns the package to its uninitialized state, closing the sink.
// Tests only.
func reset() {
	gstate.mu.Lock()
	defer gstate.mu.Unlock()
	if f := loadFacility(); f != nil && f.closer != nil {
		f.closer.Close()
	}
	gstate.fac.Store((*facility)(nil))
}

// lastResortWriter receives pre-initialization output. Tests intercept it.
var lastResortWriter io.Writer = SynchronizedWriter(os.Stderr)

// lastResort handles emission before Init: records at WarningSeverity or
// above write the bare message to stderr, everything below is dropped.
func lastResort(s Severity, msg string) {
	if s < WarningSeverity {
		return
	}
	fmt.Fprintln(lastResortWriter, msg)
}

// Named returns a Logger bound to the process-wide facility under the given
// name. The name fills the {name} token of every record the Logger emits.
func Named(name string) *Logger {
	return &Logger{name: name}
}

var root = &Logger{name: rootName}

// Debug logs to the process-wide DEBUG log under the root logger name.
// Arguments are handled in the manner of fmt.Println.
func Debug(v ...interface{}) { root.Debug(v...) }

// Debugf logs to the process-wide DEBUG log under the root logger name.
// Arguments are handled in the manner of fmt.Printf.
func Debugf(format string, v ...interface{}) { root.Debugf(format, v...) }

// Info logs to the process-wide INFO log under the root logger name.
// Arguments are handled in the manner of fmt.Println.
func Info(v ...interface{}) { root.Info(v...) }

// Infof logs to the process-wide INFO log under the root logger name.
// Arguments are handled in the manner of fmt.Printf.
func Infof(format string, v ...interface{}) { root.Infof(format, v...) }

// Warning logs to the process-wide WARNING log under the root logger name.
// Arguments are handled in the manner of fmt.Println.
func Warning(v ...interface{}) { root.Warning(v...) }

// Warningf logs to the process-wide WARNING log under the root logger name.
// Arguments are handled in the manner of fmt.Printf.
func Warningf(format string, v ...interface{}) { root.Warningf(format, v...) }

// Error logs to the process-wide ERROR log under the root logger name.
// Arguments are handled in the manner of fmt.Println.
func Error(v ...interface{}) { root.Error(v...) }

// Errorf logs to the process-wide ERROR log under the root logger name.
// Arguments are handled in the manner of fmt.Printf.
func Errorf(format string, v ...interface{}) { root.Errorf(format, v...) }

// Critical logs to the process-wide CRITICAL log under the root logger name.
// Arguments are handled in the manner of fmt.Println.
func Critical(v ...interface{}) { root.Critical(v...) }

// Criticalf logs to the process-wide CRITICAL log under the root logger
// name. Arguments are handled in the manner of fmt.Printf.
func Criticalf(format string, v ...interface{}) { root.Criticalf(format, v...) }
