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
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const newline string = "\n"

// timeNow is swapped out by tests that assert on rendered timestamps.
var timeNow = time.Now

// Logger emits records under a fixed logger name. A Logger returned by Named
// (or the package-level helpers) is bound to the process-wide facility
// established by Init; a Logger returned by New carries its own writer,
// threshold and format, independent of global state.
type Logger struct {
	name string
	fac  *facility // nil means the process-wide facility
}

// facility is one resolved logging destination: a writer, a threshold and a
// compiled format. The process-wide instance additionally owns the sink
// handle and remembers the configuration it was built from.
type facility struct {
	w         io.Writer
	threshold Severity
	format    *Format
	config    Config    // global facility only
	closer    io.Closer // sink handle, global facility only
}

var defaultFormat = mustCompile(
	"{time}-{name}-{level}-{message}", "%Y-%m-%d %H:%M:%S")

// configure sets up the default options for a standalone Logger: a
// synchronized os.Stderr writer, the root logger name, a debug threshold and
// the default record format.
func configure(l *Logger) {
	l.name = rootName
	l.fac = &facility{
		w:         SynchronizedWriter(os.Stderr),
		threshold: DebugSeverity,
		format:    defaultFormat,
	}
}

type option func(*Logger)

// New returns a standalone Logger, configured with the provided options, if
// any. Unlike Named, the result does not touch process-wide state.
func New(options ...option) *Logger {
	l := &Logger{}
	configure(l)

	// Overrides.
	for _, option := range options {
		option(l)
	}
	return l
}

// Writer directs the Logger's records to the given io.Writer.
func Writer(w io.Writer) option {
	return func(l *Logger) {
		l.fac.w = w
	}
}

// Name sets the Logger's name, filling the {name} token of its records.
func Name(name string) option {
	return func(l *Logger) {
		l.name = name
	}
}

// Threshold sets the Logger's minimum severity.
func Threshold(s Severity) option {
	return func(l *Logger) {
		l.fac.threshold = s
	}
}

// Render sets the Logger's compiled record format.
func Render(f *Format) option {
	return func(l *Logger) {
		l.fac.format = f
	}
}

// Discarder returns a Logger configured to discard all writes.
func Discarder() *Logger {
	return New(Writer(io.Discard))
}

// Debug logs to the DEBUG log. Arguments are handled in the manner of
// fmt.Println.
func (l *Logger) Debug(v ...interface{}) {
	l.log(DebugSeverity, fmt.Sprintln(v...))
}

// Debugf logs to the DEBUG log. Arguments are handled in the manner of
// fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.log(DebugSeverity, fmt.Sprintf(format, v...))
}

// Info logs to the INFO log. Arguments are handled in the manner of
// fmt.Println.
func (l *Logger) Info(v ...interface{}) {
	l.log(InfoSeverity, fmt.Sprintln(v...))
}

// Infof logs to the INFO log. Arguments are handled in the manner of
// fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.log(InfoSeverity, fmt.Sprintf(format, v...))
}

// Warning logs to the WARNING log. Arguments are handled in the manner of
// fmt.Println.
func (l *Logger) Warning(v ...interface{}) {
	l.log(WarningSeverity, fmt.Sprintln(v...))
}

// Warningf logs to the WARNING log. Arguments are handled in the manner of
// fmt.Printf.
func (l *Logger) Warningf(format string, v ...interface{}) {
	l.log(WarningSeverity, fmt.Sprintf(format, v...))
}

// Error logs to the ERROR log. Arguments are handled in the manner of
// fmt.Println.
func (l *Logger) Error(v ...interface{}) {
	l.log(ErrorSeverity, fmt.Sprintln(v...))
}

// Errorf logs to the ERROR log. Arguments are handled in the manner of
// fmt.Printf.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.log(ErrorSeverity, fmt.Sprintf(format, v...))
}

// Critical logs to the CRITICAL log. Arguments are handled in the manner of
// fmt.Println. Unlike a fatal log, Critical returns to the caller.
func (l *Logger) Critical(v ...interface{}) {
	l.log(CriticalSeverity, fmt.Sprintln(v...))
}

// Criticalf logs to the CRITICAL log. Arguments are handled in the manner of
// fmt.Printf.
func (l *Logger) Criticalf(format string, v ...interface{}) {
	l.log(CriticalSeverity, fmt.Sprintf(format, v...))
}

// Log emits at an arbitrary severity. Arguments are handled in the manner of
// fmt.Println.
func (l *Logger) Log(s Severity, v ...interface{}) {
	l.log(s, fmt.Sprintln(v...))
}

// resolve returns the facility this Logger writes through: its own for
// standalone Loggers, otherwise the process-wide one (nil before Init).
func (l *Logger) resolve() *facility {
	if l.fac != nil {
		return l.fac
	}
	return loadFacility()
}

// Logger.log is only to be called from the public wrappers above. The
// message has any trailing newline stripped; the record format supplies its
// own terminator.
func (l *Logger) log(s Severity, msg string) {
	msg = strings.TrimSuffix(msg, newline)
	fac := l.resolve()
	if fac == nil {
		lastResort(s, msg)
		return
	}
	fac.emit(timeNow(), l.name, s, msg)
}

// emit renders and writes one record, provided it passes the threshold.
func (f *facility) emit(t time.Time, name string, s Severity, msg string) {
	if s < f.threshold {
		return
	}
	var buf bytes.Buffer
	f.format.render(&buf, t, name, s, msg)
	f.w.Write(buf.Bytes())
}
