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
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// slogHandler adapts a Logger to log/slog, so call sites written against the
// standard structured API route through the configured facility. Attributes
// are folded into the {message} token as trailing key=value pairs; the
// record format has no structured fields of its own.
type slogHandler struct {
	logger *Logger
	attrs  []slog.Attr
	group  string
}

// SlogHandler returns a slog.Handler writing through the Logger.
func (l *Logger) SlogHandler() slog.Handler {
	return &slogHandler{logger: l}
}

// NewSlogHandler returns a slog.Handler bound to the process-wide facility
// under the given logger name.
func NewSlogHandler(name string) slog.Handler {
	return Named(name).SlogHandler()
}

// Slogger returns a *slog.Logger bound to the process-wide facility under
// the given logger name.
func Slogger(name string) *slog.Logger {
	return slog.New(NewSlogHandler(name))
}

// Enabled gates by the resolved facility's threshold; before Init only
// warnings and above pass, matching the last-resort path.
func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	s := severityFromSlog(level)
	if fac := h.logger.resolve(); fac != nil {
		return s >= fac.threshold
	}
	return s >= WarningSeverity
}

// Handle renders the slog record through the facility, preserving the
// record's own timestamp.
func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		appendAttr(&sb, a.Key, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.qualify(a.Key), a)
		return true
	})

	s := severityFromSlog(r.Level)
	fac := h.logger.resolve()
	if fac == nil {
		lastResort(s, sb.String())
		return nil
	}
	t := r.Time
	if t.IsZero() {
		t = timeNow()
	}
	fac.emit(t, h.logger.name, s, sb.String())
	return nil
}

// qualify prefixes a key with the handler's open group, if any.
func (h *slogHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

func appendAttr(sb *strings.Builder, key string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(sb, " %s=%v", key, a.Value.Any())
}

// WithAttrs returns a copy of the handler with additional base attributes.
// Keys are qualified with the group open at the time the attribute is added.
func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		a.Key = h.qualify(a.Key)
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

// WithGroup returns a copy of the handler that prefixes attribute keys with
// the group name.
func (h *slogHandler) WithGroup(name string) slog.Handler {
	nh := *h
	if name != "" {
		if nh.group != "" {
			nh.group = nh.group + "." + name
		} else {
			nh.group = name
		}
	}
	return &nh
}

// severityFromSlog maps slog levels onto the ordered severities. Levels
// above slog.LevelError land on CriticalSeverity.
func severityFromSlog(level slog.Level) Severity {
	switch {
	case level < slog.LevelInfo:
		return DebugSeverity
	case level < slog.LevelWarn:
		return InfoSeverity
	case level < slog.LevelError:
		return WarningSeverity
	case level == slog.LevelError:
		return ErrorSeverity
	default:
		return CriticalSeverity
	}
}
