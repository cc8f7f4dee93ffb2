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

var RecordFormatCmd = &cli.Command{
	UsageLine: "record-format",
	Short:     "the rendered record line format",
	Long: `
Each record is rendered as one line by a template over four tokens:

    {time}      the record timestamp, rendered per the timefmt pattern
    {name}      the emitting logger's name
    {level}     the level name: DEBUG, INFO, WARNING, ERROR or CRITICAL
    {message}   the formatted message

Text outside tokens is copied through literally. The default template

    {time}-{name}-{level}-{message}

with the default timefmt pattern '%Y-%m-%d %H:%M:%S' produces lines like

    2024-01-01 00:00:00-app-DEBUG-started

The timefmt pattern uses strftime directives; a directive that cannot be
expressed (or an unknown token or unclosed brace in the record template) is
rejected at initialization with a configuration error.
`,
}
