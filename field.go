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

// The names of the schedule fields.
const (
	Minute     = "minute"
	Hour       = "hour"
	DayOfMonth = "dayOfMonth"
	Month      = "month"
	DayOfWeek  = "dayOfWeek"
)

// FieldSpec is the inclusive numeric range of a schedule field.
type FieldSpec struct {
	Name string
	Min  int
	Max  int
}

var fieldSpecs = [...]FieldSpec{
	{Name: Minute, Min: 0, Max: 59},
	{Name: Hour, Min: 0, Max: 23},
	{Name: DayOfMonth, Min: 1, Max: 31},
	{Name: Month, Min: 1, Max: 12},
	{Name: DayOfWeek, Min: 0, Max: 7}, // 7 is Sunday, the same as 0.
}

// February is always 29 days, which is not aware of the leap year.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Fields returns the specs of the five schedule fields in order.
func Fields() []FieldSpec {
	specs := make([]FieldSpec, len(fieldSpecs))
	copy(specs, fieldSpecs[:])
	return specs
}

// LookupField returns the spec of the field named name.
func LookupField(name string) (spec FieldSpec, ok bool) {
	for _, spec = range fieldSpecs {
		if spec.Name == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// MaxDaysInMonth returns the maximum number of the days of the month,
// which is in [1, 12].
func MaxDaysInMonth(month int) (days int, ok bool) {
	if month < 1 || month > len(daysInMonth) {
		return 0, false
	}
	return daysInMonth[month-1], true
}
