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

import "fmt"

// Kind is the category of a parse error.
type Kind uint8

// Predefine some error kinds.
const (
	KindInvalidCharacter Kind = iota + 1
	KindInvalidListFormat
	KindInvalidRange
	KindConstraintViolation
	KindZeroOrInvalidStep
	KindMalformedExpression
	KindInvalidDayOfMonth
)

var kindNames = map[Kind]string{
	KindInvalidCharacter:    "InvalidCharacter",
	KindInvalidListFormat:   "InvalidListFormat",
	KindInvalidRange:        "InvalidRange",
	KindConstraintViolation: "ConstraintViolation",
	KindZeroOrInvalidStep:   "ZeroOrInvalidStep",
	KindMalformedExpression: "MalformedExpression",
	KindInvalidDayOfMonth:   "InvalidDayOfMonth",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Predefine the sentinel errors, which match any *Error with the same kind
// by errors.Is.
var (
	ErrInvalidCharacter    = &Error{Kind: KindInvalidCharacter}
	ErrInvalidListFormat   = &Error{Kind: KindInvalidListFormat}
	ErrInvalidRange        = &Error{Kind: KindInvalidRange}
	ErrConstraintViolation = &Error{Kind: KindConstraintViolation}
	ErrZeroOrInvalidStep   = &Error{Kind: KindZeroOrInvalidStep}
	ErrMalformedExpression = &Error{Kind: KindMalformedExpression}
	ErrInvalidDayOfMonth   = &Error{Kind: KindInvalidDayOfMonth}
)

// Error is the error returned when failing to parse the expression.
type Error struct {
	Kind  Kind
	Field string // The name of the field, which is empty for the whole expression.
	Value string // The offending text.

	msg string
}

func newError(kind Kind, field, value, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Field: field, Value: value, msg: fmt.Sprintf(format, args...)}
}

// Error implements the interface error.
func (e *Error) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return e.msg
}

// Is reports whether target is an *Error with the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func errInvalidCharacter(field, value string) *Error {
	return newError(KindInvalidCharacter, field, value,
		"Invalid characters, got value: %s", value)
}

func errInvalidListFormat(field, value string) *Error {
	return newError(KindInvalidListFormat, field, value, "Invalid list value format")
}

func errInvalidRange(field, value string) *Error {
	return newError(KindInvalidRange, field, value, "Invalid range: %s", value)
}

func errValueConstraint(spec FieldSpec, value string) *Error {
	return newError(KindConstraintViolation, spec.Name, value,
		"Constraint error, got value %s expected range %d-%d", value, spec.Min, spec.Max)
}

func errRangeConstraint(spec FieldSpec, min, max string) *Error {
	return newError(KindConstraintViolation, spec.Name, min+"-"+max,
		"Constraint error, got range %s-%s expected range %d-%d", min, max, spec.Min, spec.Max)
}

func errInvalidStep(field, step string) *Error {
	return newError(KindZeroOrInvalidStep, field, step,
		"Constraint error, cannot repeat at every %s time.", step)
}
