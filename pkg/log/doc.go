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

// Package log implements a process-wide, file-backed, leveled logging
// facility with a fixed textual record format.
//
// The facility is established exactly once, at process startup, from a
// Config describing the sink file, the write mode, the minimum severity and
// the record/timestamp formats:
//
//	cfg := log.DefaultConfig() // program.log, truncate, debug, {time}-{name}-{level}-{message}
//	if err := log.Init(cfg); err != nil {
//		// *log.ConfigurationError; the sink is unwritable or a format
//		// string is malformed. Treat as fatal.
//	}
//
//	log.Info("started")                  // 2024-01-01 00:00:00-root-INFO-started
//	logger := log.Named("app")
//	logger.Debugf("pid %d", os.Getpid()) // 2024-01-01 00:00:00-app-DEBUG-pid 42
//
// A second Init within the same process is a no-op unless the Force option
// is passed, in which case the configuration is replaced wholesale:
//
//	log.Init(cfg)              // no-op if already initialized
//	log.Init(cfg, log.Force()) // replace, closing the previous sink
//
// Configurations can also be loaded from YAML files (see LoadConfig), and
// standalone loggers can be constructed with explicit writers for use in
// isolation from global state:
//
//	logger := log.New(log.Writer(buf), log.Name("worker"),
//		log.Threshold(log.InfoSeverity))
//
// Call sites written against log/slog can route through the facility via
// the bridge in Slogger and NewSlogHandler.
package log
