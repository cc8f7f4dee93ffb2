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
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Format is a compiled record template. Compilation happens once, at
// configuration time; rendering a record is a straight walk over the
// precomputed segments with no further parsing.
type Format struct {
	segments []segment
	layout   string // Go time layout converted from the strftime pattern
}

type token int

const (
	literalToken token = iota
	timeToken
	nameToken
	levelToken
	messageToken
)

type segment struct {
	token   token
	literal string // set for literalToken only
}

var tokens = map[string]token{
	"time":    timeToken,
	"name":    nameToken,
	"level":   levelToken,
	"message": messageToken,
}

// CompileFormat compiles a record template and a strftime timestamp pattern
// into a Format. The template is text interleaved with the tokens {time},
// {name}, {level} and {message}; anything else between braces, an unclosed
// brace, or an unsupported strftime directive is a *ConfigurationError.
func CompileFormat(record, stamp string) (*Format, error) {
	layout, err := strftime.Layout(stamp)
	if err != nil {
		return nil, &ConfigurationError{
			Field:  "timefmt",
			Reason: fmt.Sprintf("unsupported timestamp pattern %q", stamp),
			Err:    err,
		}
	}
	if record == "" {
		return nil, &ConfigurationError{Field: "format", Reason: "empty record format"}
	}

	var segments []segment
	for len(record) > 0 {
		open := strings.IndexByte(record, '{')
		if open < 0 {
			segments = append(segments, segment{token: literalToken, literal: record})
			break
		}
		if open > 0 {
			segments = append(segments, segment{token: literalToken, literal: record[:open]})
			record = record[open:]
		}
		end := strings.IndexByte(record, '}')
		if end < 0 {
			return nil, &ConfigurationError{
				Field:  "format",
				Reason: fmt.Sprintf("unclosed token at %q", record),
			}
		}
		name := record[1:end]
		tok, ok := tokens[name]
		if !ok {
			return nil, &ConfigurationError{
				Field:  "format",
				Reason: fmt.Sprintf("unknown token {%s}", name),
			}
		}
		segments = append(segments, segment{token: tok})
		record = record[end+1:]
	}

	return &Format{segments: segments, layout: layout}, nil
}

// mustCompile is for package-internal literal formats known to be valid.
func mustCompile(record, stamp string) *Format {
	f, err := CompileFormat(record, stamp)
	if err != nil {
		panic(err)
	}
	return f
}

// render writes one record line, newline-terminated, to buf.
func (f *Format) render(buf *bytes.Buffer, t time.Time, name string, s Severity, msg string) {
	for _, seg := range f.segments {
		switch seg.token {
		case literalToken:
			buf.WriteString(seg.literal)
		case timeToken:
			buf.WriteString(t.Format(f.layout))
		case nameToken:
			buf.WriteString(name)
		case levelToken:
			buf.WriteString(s.String())
		case messageToken:
			buf.WriteString(msg)
		}
	}
	buf.WriteString(newline)
}
