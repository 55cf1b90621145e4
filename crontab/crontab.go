// Copyright 2026 xgfone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package crontab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xgfone/cronparse"
)

// Entry is a job line of the crontab file.
type Entry struct {
	Line    int    `json:"line" yaml:"line"`
	Source  string `json:"source" yaml:"source"`
	Command string `json:"command" yaml:"command"`

	Expr *cronparse.Expression `json:"fields" yaml:"-"`
}

// Env is an environment assignment line, such as "MAILTO=ops@example.com".
type Env struct {
	Line  int    `json:"line" yaml:"line"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// LineError is the error of a line in the crontab file.
type LineError struct {
	Line int
	Err  error
}

// Error implements the interface error.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

// Unwrap returns the inner error.
func (e *LineError) Unwrap() error { return e.Err }

// Table is the parsed crontab file.
type Table struct {
	entries []*Entry
	envs    []Env
}

// Entries returns all the job entries in order.
func (t *Table) Entries() []*Entry {
	return append([]*Entry(nil), t.entries...)
}

// Env returns all the environment assignments in order.
func (t *Table) Env() []Env {
	return append([]Env(nil), t.envs...)
}

// Parse parses the crontab file from r, and returns the first error.
func Parse(r io.Reader) (*Table, error) {
	var t Table
	err := scan(r, &t, func(err error) bool { return false })
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseFile is the same as Parse, but reads the crontab file from path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Check is the same as Parse, but goes on after the invalid lines
// and returns the table of the valid lines and the errors of all
// the invalid lines.
//
// The returned error list only contains the *LineError, unless reading
// from r fails, which is the last one.
func Check(r io.Reader) (t *Table, errs []error) {
	t = new(Table)
	err := scan(r, t, func(err error) bool {
		errs = append(errs, err)
		return true
	})
	if err != nil {
		errs = append(errs, err)
	}
	return
}

// scan parses the lines into t. onError is called with each *LineError,
// and scanning stops with the error if it returns false.
func scan(r io.Reader, t *Table, onError func(error) bool) error {
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "", line[0] == '#':
			continue
		}

		if name, value, ok := parseEnv(line); ok {
			t.envs = append(t.envs, Env{Line: lineno, Name: name, Value: value})
			continue
		}

		expr, cmd, err := cronparse.ParseLine(line)
		if err != nil {
			err = &LineError{Line: lineno, Err: err}
			if !onError(err) {
				return err
			}
			continue
		}

		t.entries = append(t.entries, &Entry{
			Line:    lineno,
			Source:  line,
			Command: cmd,
			Expr:    expr,
		})
	}

	return scanner.Err()
}

func parseEnv(line string) (name, value string, ok bool) {
	index := strings.IndexByte(line, '=')
	if index < 1 {
		return
	}

	name = strings.TrimSpace(line[:index])
	if !isEnvName(name) {
		return "", "", false
	}

	value = strings.TrimSpace(line[index+1:])
	if _len := len(value); _len > 1 {
		if q := value[0]; (q == '"' || q == '\'') && value[_len-1] == q {
			value = value[1 : _len-1]
		}
	}
	return name, value, true
}

func isEnvName(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
