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

/*
Package crontab parses the crontab file, each job line of which is parsed
by github.com/xgfone/cronparse.

Crontab File Format

A crontab file is made of lines, which are one of

	Kind        | Example                          | Description
	----        | -------                          | -----------
	blank       |                                  | ignored
	comment     | # backup at midnight             | the first non-space character is '#'
	environment | MAILTO=ops@example.com           | NAME=value, kept in order
	job         | 0 0 * * * /usr/local/bin/backup  | five schedule fields and a command

The command of a job is a single token, that's, it must not contain any
space. Wrap the complex command in a script.

Errors

Each error is a *LineError carrying the 1-based line number, which unwraps
to the *cronparse.Error. So

	errors.Is(err, cronparse.ErrInvalidDayOfMonth)

reports whether a job line has an invalid day of month.
*/
package crontab
