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

package main

import (
	"os"

	"github.com/rksharma2180/proglog/doc"
	"github.com/rksharma2180/proglog/pkg/cli"

	"github.com/rksharma2180/proglog/cmd/check"
	"github.com/rksharma2180/proglog/cmd/emit"
)

func main() {
	// We aggregate all the top-level commands (i.e. 'proglog <command> ...')
	// as needed.
	var commands cli.Commands

	// We include the runnable emit and check commands.
	commands = append(commands, emit.EmitCmd)
	commands = append(commands, check.CheckCmd)

	// We also include documentation pseudo-commands for the record format
	// and the initialization semantics.
	commands = append(commands, doc.RecordFormatCmd)
	commands = append(commands, doc.InitializationCmd)

	// We define the top level CLI abstract here.
	abstract := "Proglog is a process-wide, file-backed, leveled logging facility."
	if err := cli.Process(abstract, commands); err != nil {
		os.Exit(1)
	}
}
