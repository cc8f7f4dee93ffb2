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
	"strings"
)

// Severity is the ordered severity of a log record. Records below the
// facility's minimum severity are suppressed.
type Severity int

const (
	DebugSeverity Severity = iota
	InfoSeverity
	WarningSeverity
	ErrorSeverity
	CriticalSeverity
)

// String returns the level name as it appears in rendered records.
func (s Severity) String() string {
	switch s {
	case DebugSeverity:
		return "DEBUG"
	case InfoSeverity:
		return "INFO"
	case WarningSeverity:
		return "WARNING"
	case ErrorSeverity:
		return "ERROR"
	case CriticalSeverity:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) valid() bool {
	return s >= DebugSeverity && s <= CriticalSeverity
}

// ParseSeverity maps a level name, case-insensitively, to its Severity.
func ParseSeverity(str string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "debug":
		return DebugSeverity, nil
	case "info":
		return InfoSeverity, nil
	case "warning":
		return WarningSeverity, nil
	case "error":
		return ErrorSeverity, nil
	case "critical":
		return CriticalSeverity, nil
	}
	return DebugSeverity, fmt.Errorf("unknown severity: %q", str)
}
