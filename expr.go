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

package cronparse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	idxDayOfMonth = 2
	idxMonth      = 3
)

// Expression is the parsed schedule expression, which is immutable.
type Expression struct {
	orig   string
	fields [len(fieldSpecs)]FieldResult
}

// MustParse is the same as Parse, but panics if there is an error.
func MustParse(s string) *Expression {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// Parse parses the schedule line, which is made of five schedule fields
// and a command, such as "*/15 0 1,15 * 1-5 /usr/bin/find".
//
// The command is required but discarded. Use ParseLine to get it.
func Parse(s string) (*Expression, error) {
	e, _, err := ParseLine(s)
	return e, err
}

// ParseLine is the same as Parse, but also returns the command.
func ParseLine(s string) (e *Expression, command string, err error) {
	tokens := strings.Fields(s)
	if len(tokens) != len(fieldSpecs)+1 {
		return nil, "", newError(KindMalformedExpression, "", s, "Invalid cron expression")
	}

	e = &Expression{orig: strings.Join(tokens[:len(fieldSpecs)], " ")}
	for i, spec := range fieldSpecs {
		if e.fields[i], err = ParseField(spec, tokens[i]); err != nil {
			return nil, "", err
		}
	}

	if err = e.adjustDayOfMonth(); err != nil {
		return nil, "", err
	}

	return e, tokens[len(fieldSpecs)], nil
}

// adjustDayOfMonth drops the days that the month does not have when only
// one month is specified. Only the first day is checked to be an error.
func (e *Expression) adjustDayOfMonth() error {
	months := e.fields[idxMonth]
	if len(months) != 1 {
		return nil
	}

	month, ok := months[0].Int()
	if !ok {
		return nil
	}

	maxDays, ok := MaxDaysInMonth(month)
	if !ok {
		return nil
	}

	days := e.fields[idxDayOfMonth]
	if len(days) > 0 {
		if day, ok := days[0].Int(); ok && day > maxDays {
			return newError(KindInvalidDayOfMonth, DayOfMonth, days[0].String(),
				"Invalid explicit day of month definition")
		}
	}

	adjusted := make(FieldResult, 0, len(days))
	for _, v := range days {
		if day, ok := v.Int(); ok && day <= maxDays {
			adjusted = append(adjusted, v)
		}
	}
	adjusted.Sort()

	e.fields[idxDayOfMonth] = adjusted
	return nil
}

// String returns the five schedule fields separated by a space.
func (e *Expression) String() string { return e.orig }

// Field returns the resolved values of the field named name.
//
// Return nil if the field does not exist.
func (e *Expression) Field(name string) FieldResult {
	for i, spec := range fieldSpecs {
		if spec.Name == name {
			return e.fields[i].clone()
		}
	}
	return nil
}

// Fields returns the mapping from the field name to its resolved values.
func (e *Expression) Fields() map[string]FieldResult {
	fields := make(map[string]FieldResult, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		fields[spec.Name] = e.fields[i].clone()
	}
	return fields
}

// Minute returns the resolved values of the minute field.
func (e *Expression) Minute() FieldResult { return e.fields[0].clone() }

// Hour returns the resolved values of the hour field.
func (e *Expression) Hour() FieldResult { return e.fields[1].clone() }

// DayOfMonth returns the resolved values of the day-of-month field.
func (e *Expression) DayOfMonth() FieldResult { return e.fields[idxDayOfMonth].clone() }

// Month returns the resolved values of the month field.
func (e *Expression) Month() FieldResult { return e.fields[idxMonth].clone() }

// DayOfWeek returns the resolved values of the day-of-week field,
// which are in [0, 6] and 0 is Sunday.
func (e *Expression) DayOfWeek() FieldResult { return e.fields[4].clone() }

// Format writes the table of the expression into w, one field per line,
// such as
//
//   minute        0,15,30,45
//   hour          0
//   dayOfMonth    1,15
//   month         1,2,3,4,5,6,7,8,9,10,11,12
//   dayOfWeek     1,2,3,4,5
//   command       /usr/bin/find
//
// The command line is omitted if command is empty.
func (e *Expression) Format(w io.Writer, command string) (err error) {
	for i, spec := range fieldSpecs {
		if _, err = fmt.Fprintf(w, "%-14s%s\n", spec.Name, e.fields[i].Join(",")); err != nil {
			return
		}
	}

	if command != "" {
		_, err = fmt.Fprintf(w, "%-14s%s\n", "command", command)
	}
	return
}

// MarshalJSON implements json.Marshaler, which keeps the order of the fields.
func (e *Expression) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.Grow(512)
	buf.WriteByte('{')
	for i, spec := range fieldSpecs {
		if i > 0 {
			buf.WriteByte(',')
		}

		data, err := json.Marshal(e.fields[i])
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(buf, `"%s":`, spec.Name)
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
