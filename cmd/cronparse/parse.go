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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/xgfone/cronparse"
)

// report is the output of a parsed crontab line.
type report struct {
	Minute     cronparse.FieldResult `json:"minute" yaml:"minute,flow"`
	Hour       cronparse.FieldResult `json:"hour" yaml:"hour,flow"`
	DayOfMonth cronparse.FieldResult `json:"dayOfMonth" yaml:"dayOfMonth,flow"`
	Month      cronparse.FieldResult `json:"month" yaml:"month,flow"`
	DayOfWeek  cronparse.FieldResult `json:"dayOfWeek" yaml:"dayOfWeek,flow"`
	Command    string                `json:"command" yaml:"command"`
}

func newReport(expr *cronparse.Expression, command string) report {
	return report{
		Minute:     expr.Minute(),
		Hour:       expr.Hour(),
		DayOfMonth: expr.DayOfMonth(),
		Month:      expr.Month(),
		DayOfWeek:  expr.DayOfWeek(),
		Command:    command,
	}
}

// errorReport is the output of the failure to parse a crontab line.
type errorReport struct {
	Line  int    `json:"line,omitempty" yaml:"line,omitempty"`
	Kind  string `json:"kind" yaml:"kind"`
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	Error string `json:"error" yaml:"error"`
}

func newErrorReport(line int, err error) errorReport {
	r := errorReport{Line: line, Error: err.Error()}

	var perr *cronparse.Error
	if errors.As(err, &perr) {
		r.Kind = perr.Kind.String()
		r.Field = perr.Field
		r.Error = perr.Error()
	}
	return r
}

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func render(w io.Writer, format string, expr *cronparse.Expression, command string) error {
	switch format {
	case formatText, "":
		return expr.Format(w, command)

	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(expr, command))

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(expr, command)); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}

func getParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a crontab line and print the values of each field",
		ArgsUsage: `"MINUTE HOUR DAY_OF_MONTH MONTH DAY_OF_WEEK COMMAND"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				Usage:   "The output format, such as text, json or yaml",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("missing the crontab line")
			}

			// Accept both the quoted line and the unquoted fields.
			line := strings.Join(c.Args().Slice(), " ")
			expr, cmd, err := cronparse.ParseLine(line)
			if err != nil {
				return err
			}
			return render(c.App.Writer, c.String("format"), expr, cmd)
		},
	}
}
