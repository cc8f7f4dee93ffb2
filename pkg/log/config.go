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
	"os"
	"strings"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// WriteMode determines how the sink file is opened at initialization.
type WriteMode int

const (
	// TruncateMode erases the sink at initialization; each run starts with
	// an empty log.
	TruncateMode WriteMode = iota
	// AppendMode preserves the sink across runs.
	AppendMode
)

// String returns the mode name as accepted by ParseWriteMode.
func (m WriteMode) String() string {
	switch m {
	case TruncateMode:
		return "truncate"
	case AppendMode:
		return "append"
	default:
		return "unknown"
	}
}

func (m WriteMode) valid() bool {
	return m == TruncateMode || m == AppendMode
}

// ParseWriteMode maps a mode name, case-insensitively, to its WriteMode.
func ParseWriteMode(str string) (WriteMode, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "truncate":
		return TruncateMode, nil
	case "append":
		return AppendMode, nil
	}
	return TruncateMode, fmt.Errorf("unknown write mode: %q", str)
}

// Config is the write-once description of the process-wide logging facility:
// where records go, which severities pass, and how each record is rendered.
// The zero value is not usable directly; DefaultConfig fills in the documented
// defaults.
type Config struct {
	// SinkPath is the destination file for rendered records.
	SinkPath string `yaml:"sink" default:"program.log"`

	// WriteMode controls whether the sink is truncated or appended to when
	// the facility is initialized.
	WriteMode WriteMode `yaml:"mode"`

	// MinSeverity is the minimum severity a record needs to reach the sink.
	MinSeverity Severity `yaml:"level"`

	// RecordFormat is a template over the tokens {time}, {name}, {level} and
	// {message}. Text outside tokens is copied through literally.
	RecordFormat string `yaml:"format" default:"{time}-{name}-{level}-{message}"`

	// TimestampFormat is a strftime pattern rendering the {time} token.
	TimestampFormat string `yaml:"timefmt" default:"%Y-%m-%d %H:%M:%S"`
}

// DefaultConfig returns the configuration matching the documented defaults:
// sink program.log, truncate mode, debug threshold, and the
// {time}-{name}-{level}-{message} record format at second resolution.
func DefaultConfig() Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		// The default tags are literals; Set only fails on malformed tags.
		panic(err)
	}
	return cfg
}

// Validate checks every field of the configuration. It returns a
// *ConfigurationError describing the first offending field, or nil.
func (c Config) Validate() error {
	if c.SinkPath == "" {
		return &ConfigurationError{Field: "sink", Reason: "empty sink path"}
	}
	if !c.WriteMode.valid() {
		return &ConfigurationError{
			Field:  "mode",
			Reason: fmt.Sprintf("invalid write mode %d", int(c.WriteMode)),
		}
	}
	if !c.MinSeverity.valid() {
		return &ConfigurationError{
			Field:  "level",
			Reason: fmt.Sprintf("invalid severity %d", int(c.MinSeverity)),
		}
	}
	if _, err := CompileFormat(c.RecordFormat, c.TimestampFormat); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a YAML configuration file. Fields absent from the file
// keep their defaults. The returned configuration has been validated.
//
// Example file:
//
//	sink: program.log
//	mode: truncate
//	level: debug
//	format: "{time}-{name}-{level}-{message}"
//	timefmt: "%Y-%m-%d %H:%M:%S"
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigurationError{
			Field:  "config",
			Reason: "unreadable configuration file",
			Err:    err,
		}
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ConfigurationError{
			Field:  "config",
			Reason: "malformed configuration file",
			Err:    err,
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UnmarshalYAML accepts severities by level name ("debug" through
// "critical").
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	sev, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// MarshalYAML renders severities by level name.
func (s Severity) MarshalYAML() (interface{}, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return strings.ToLower(s.String()), nil
}

// UnmarshalYAML accepts write modes by name ("truncate" or "append").
func (m *WriteMode) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	mode, err := ParseWriteMode(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalYAML renders write modes by name.
func (m WriteMode) MarshalYAML() (interface{}, error) {
	if !m.valid() {
		return nil, fmt.Errorf("invalid write mode %d", int(m))
	}
	return m.String(), nil
}

// ConfigurationError describes a configuration that cannot be applied: an
// unwritable sink path, a malformed record format, or an out-of-range field.
// Initialization surfaces it synchronously; callers are expected to treat it
// as fatal since later failures depend on logging being up.
type ConfigurationError struct {
	Field  string // configuration field at fault, by yaml key
	Reason string
	Err    error // underlying cause, if any
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("logging configuration: %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("logging configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
