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

// Package cronparse parses a crontab line into the sorted values of each
// schedule field.
//
// Format
//
// A line is made of five schedule fields and a command, separated by
// one or more spaces.
//
//    Field name   | Allowed values | Allowed special characters
//    ----------   | -------------- | --------------------------
//    minute       | 0-59           | * / , -
//    hour         | 0-23           | * / , -
//    dayOfMonth   | 1-31           | * / , -
//    month        | 1-12           | * / , -
//    dayOfWeek    | 0-7            | * / , -
//
// The day of week 7 is Sunday, which is resolved to 0.
//
// Lists
//
//   1-15 *        * * *  /bin/job  at 1, 2, 3...15 minute of each hour
//   0    0-5,10   * * *  /bin/job  on every hour from 0-5 and in 10 oclock
//   *    10,15,19 * * *  /bin/job  at 10:00, 15:00 and 19:00
//
// Steps
//
//    */2    *   *   * *  /bin/job  every two minutes
//    10     */3 *   * *  /bin/job  every 3 hours on 10th min
//    0      12  */2 * *  /bin/job  at noon on every two days
//    1-59/2 *   *   * *  /bin/job  every two minutes, but on odd minutes
//    5/15   *   *   * *  /bin/job  the same as 5-59/15
//
// When the month field resolves to a single month, the days of month that
// the month does not have are dropped, and it is an error if none is left.
// February always has 29 days.
//
// Example
//
//      package main
//
//      import (
//      	"fmt"
//      	"os"
//
//      	"github.com/xgfone/cronparse"
//      )
//
//      func main() {
//      	expr, cmd, err := cronparse.ParseLine("*/15 0 1,15 * 1-5 /usr/bin/find")
//      	if err != nil {
//      		fmt.Println(err)
//      		return
//      	}
//
//      	expr.Format(os.Stdout, cmd)
//      	// minute        0,15,30,45
//      	// hour          0
//      	// dayOfMonth    1,15
//      	// month         1,2,3,4,5,6,7,8,9,10,11,12
//      	// dayOfWeek     1,2,3,4,5
//      	// command       /usr/bin/find
//      }
//
package cronparse
