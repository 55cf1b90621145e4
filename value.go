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
	"sort"
	"strconv"
	"strings"
)

// Value is a resolved field value, which is either an integer or a literal
// token that could not be resolved to an integer.
type Value struct {
	num   int
	tok   string
	isNum bool
}

// Int returns a numeric value.
func Int(n int) Value { return Value{num: n, isNum: true} }

// Token returns a literal token value.
func Token(s string) Value { return Value{tok: s} }

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool { return v.isNum }

// Int returns the integer and true if the value is numeric.
func (v Value) Int() (int, bool) { return v.num, v.isNum }

// String returns the string representation of the value.
func (v Value) String() string {
	if v.isNum {
		return strconv.Itoa(v.num)
	}
	return v.tok
}

// MarshalJSON implements json.Marshaler. A number is encoded as the JSON
// number and a token as the JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return strconv.AppendInt(nil, int64(v.num), 10), nil
	}
	return []byte(strconv.Quote(v.tok)), nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.isNum {
		return v.num, nil
	}
	return v.tok, nil
}

// Compare returns an integer comparing two values.
//
// Numbers are compared by magnitude and always sort before tokens,
// and tokens are compared lexicographically.
func Compare(a, b Value) int {
	switch {
	case a.isNum && b.isNum:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	case a.isNum:
		return -1
	case b.isNum:
		return 1
	default:
		return strings.Compare(a.tok, b.tok)
	}
}

// FieldResult is the sorted sequence of the resolved values of a field.
//
// The duplicated values from the overlapped list items are kept.
type FieldResult []Value

func (r FieldResult) Len() int           { return len(r) }
func (r FieldResult) Less(i, j int) bool { return Compare(r[i], r[j]) < 0 }
func (r FieldResult) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }

// Sort sorts the values in place by Compare.
func (r FieldResult) Sort() { sort.Stable(r) }

// Ints returns the numeric values in order, skipping the tokens.
func (r FieldResult) Ints() []int {
	ints := make([]int, 0, len(r))
	for _, v := range r {
		if v.isNum {
			ints = append(ints, v.num)
		}
	}
	return ints
}

// Join joins the values with sep.
func (r FieldResult) Join(sep string) string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(v.String())
	}
	return b.String()
}

func (r FieldResult) clone() FieldResult {
	if r == nil {
		return nil
	}
	return append(make(FieldResult, 0, len(r)), r...)
}
