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

package doc

import "github.com/rksharma2180/proglog/pkg/cli"

var InitializationCmd = &cli.Command{
	UsageLine: "initialization",
	Short:     "once-only initialization semantics",
	Long: `
The logging facility is established exactly once per process, before any
other activity that logs. Initialization validates the configuration, opens
the sink file (truncating it in the default write mode, so each run starts
with an empty log), and installs the process-wide state.

A second initialization in the same process is a no-op: the sink path,
severity threshold and formats already in effect stay in effect. Passing the
force option replaces the configuration wholesale and closes the previous
sink handle.

Initialization failures (an unwritable sink path, a malformed format) are
surfaced immediately and should abort startup: the facility underpins the
visibility of every later failure, so there is no degraded logging mode.

Records emitted before initialization fall back to standard error: warnings
and above print the bare message, everything below is dropped.
`,
}
