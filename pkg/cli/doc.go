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

// Package cli allows the construction of structured command-line interfaces with sub-commands and
// help topics. This is very similar to the interface in git where the top-level program name (git)
// is preceded by a qualifier that determines what sub-command to execute
// (git {reflog,commit,cherry-pick}).
//
// Package cli explicitly avoids init time global hooks and has a minimal binary size footprint.
//
// Example (from this repository's main.go):
//
//	// We aggregate all the top-level commands, accessible via 'proglog <command> ...', as needed.
//	var commands cli.Commands
//
//	// We include the runnable emit and check commands.
//	commands = append(commands, emit.EmitCmd)
//	commands = append(commands, check.CheckCmd)
//
//	// We also include documentation pseudo-commands for the record format
//	// and the initialization semantics.
//	commands = append(commands, doc.RecordFormatCmd)
//	commands = append(commands, doc.InitializationCmd)
//
//	// We define the top level CLI abstract here.
//	abstract := "Proglog is a process-wide, file-backed, leveled logging facility."
//	if err := cli.Process(abstract, commands); err != nil {
//		os.Exit(1)
//	}
//
// This generates the following top-level behaviour:
//
//	$ proglog {,-h,help}
//	Proglog is a process-wide, file-backed, leveled logging facility.
//
//	Usage:
//
//	    proglog command [arguments]
//
//	The commands are:
//
//	        emit                   initialize the facility and emit records
//	        check                  validate a logging configuration file
//
//	Use 'proglog help [command]' for more information about a command.
//
//	Additional help topics:
//
//	        record-format          the rendered record line format
//	        initialization         once-only initialization semantics
//
//	Use "proglog help [topic]" for more information about that topic.
//
// Using help for a listed command displays the following:
//
//	$ proglog help check
//	Usage: proglog check [-config file]
//
//	Check detailed overview.
//
// Individual commands also have their own '-h' switches for additional command details.
package cli
