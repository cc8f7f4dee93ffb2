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

package check

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rksharma2180/proglog/pkg/cli"
	"github.com/rksharma2180/proglog/pkg/log"
)

var CheckCmd = &cli.Command{
	Run:       checkCmdRun,
	UsageLine: "check [-config file]",
	Short:     "validate a logging configuration file",
	Long: `
Check loads a YAML logging configuration, validates every field, and prints
the effective settings (file values merged over the defaults). A sink that
cannot be opened is only diagnosed by 'emit'; check is side-effect free.
    `,
}

func checkCmdRun(cmd *cli.Command, args []string) error {
	var configPath string
	cmd.FlagSet.StringVar(&configPath, "config", "", "YAML configuration file to validate")
	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.CmdParseError(err)
	}
	if configPath == "" {
		err := errors.New("no configuration file given, see -config")
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	cfg, err := log.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	fmt.Printf("sink:    %s\n", cfg.SinkPath)
	fmt.Printf("mode:    %s\n", cfg.WriteMode)
	fmt.Printf("level:   %s\n", strings.ToLower(cfg.MinSeverity.String()))
	fmt.Printf("format:  %s\n", cfg.RecordFormat)
	fmt.Printf("timefmt: %s\n", cfg.TimestampFormat)
	return nil
}
