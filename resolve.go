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
	"strconv"
	"strings"
)

// ParseField parses the text of a single schedule field and returns
// the sorted values.
//
// The field text is made of the comma-separated items, each of which is
// a value, a range "min-max" or "*", optionally followed by a step "/n".
// "*" is the same as the full range of the field, and "n/step" is the same
// as "n-max/step".
func ParseField(spec FieldSpec, value string) (FieldResult, error) {
	if !isValidField(value) {
		return nil, errInvalidCharacter(spec.Name, value)
	}

	fullRange := strconv.Itoa(spec.Min) + "-" + strconv.Itoa(spec.Max)
	if strings.IndexByte(value, '*') > -1 {
		value = strings.Replace(value, "*", fullRange, -1)
	} else if strings.IndexByte(value, '?') > -1 {
		// '?' has been rejected by isValidField, so this is never reached
		// until the allowed characters include it.
		value = strings.Replace(value, "?", fullRange, -1)
	}

	return parseSequence(spec, value)
}

func isValidField(s string) bool {
	if s == "" {
		return false
	}

	for i, _len := 0, len(s); i < _len; i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == ',', c == '*', c == '/', c == '-':
		default:
			return false
		}
	}
	return true
}

// parseNumber parses s as a decimal integer, and the empty string is zero.
func parseNumber(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func formatNumber(s string) string {
	if n, ok := parseNumber(s); ok {
		return strconv.Itoa(n)
	}
	return s
}

func parseSequence(spec FieldSpec, value string) (FieldResult, error) {
	atoms := strings.Split(value, ",")
	for _, atom := range atoms {
		if atom == "" {
			return nil, errInvalidListFormat(spec.Name, value)
		}
	}

	result := make(FieldResult, 0, spec.Max-spec.Min+1)
	for _, atom := range atoms {
		values, err := parseRepeat(spec, atom)
		if err != nil {
			return nil, err
		}

		for _, v := range values {
			n, ok := v.Int()
			if !ok || n < spec.Min || n > spec.Max {
				return nil, errValueConstraint(spec, v.String())
			}

			if spec.Name == DayOfWeek {
				n %= 7
			}
			result = append(result, Int(n))
		}
	}

	result.Sort()
	return result, nil
}

func parseRepeat(spec FieldSpec, atom string) ([]Value, error) {
	index := strings.IndexByte(atom, '/')
	if index < 0 {
		return parseRange(spec, atom, "1")
	}

	head, step := atom[:index], atom[index+1:]
	if strings.IndexByte(step, '/') > -1 {
		return nil, errInvalidStep(spec.Name, step)
	}

	if strings.IndexByte(head, '-') < 0 {
		if _, ok := parseNumber(head); ok {
			head = head + "-" + strconv.Itoa(spec.Max)
		}
	}

	return parseRange(spec, head, step)
}

func parseRange(spec FieldSpec, value, step string) ([]Value, error) {
	index := strings.IndexByte(value, '-')
	if index < 0 {
		if n, ok := parseNumber(value); ok {
			return []Value{Int(n)}, nil
		}
		return []Value{Token(value)}, nil
	}

	// Only the first two atoms make up the range, so "1-2-3" is "1-2".
	first, last := value[:index], value[index+1:]
	if index = strings.IndexByte(last, '-'); index > -1 {
		last = last[:index]
	}

	if first == "" {
		if last == "" {
			return nil, errInvalidRange(spec.Name, value)
		}

		// "-n" is parsed as a negative scalar, which will be rejected
		// by the field bound check.
		if n, ok := parseNumber(value); ok {
			return []Value{Int(n)}, nil
		}
		return []Value{Token(value)}, nil
	}

	min, ok1 := parseNumber(first)
	max, ok2 := parseNumber(last)
	if !ok1 || !ok2 || min < spec.Min || max > spec.Max {
		return nil, errRangeConstraint(spec, formatNumber(first), formatNumber(last))
	} else if min >= max {
		return nil, errInvalidRange(spec.Name, value)
	}

	interval, ok := parseNumber(step)
	if !ok || interval <= 0 {
		return nil, errInvalidStep(spec.Name, formatNumber(step))
	}

	values := make([]Value, 0, (max-min)/interval+1)
	for v := min; ; v += interval {
		values = append(values, Int(v))
		if max-v < interval { // Avoid the overflow of v for a huge interval.
			break
		}
	}
	return values, nil
}
