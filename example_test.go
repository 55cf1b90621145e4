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

package cronparse_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/xgfone/cronparse"
)

func ExampleParseLine() {
	expr, cmd, err := cronparse.ParseLine("*/15 0 1,15 * 1-5 /usr/bin/find")
	if err != nil {
		fmt.Println(err)
		return
	}

	expr.Format(os.Stdout, cmd)

	// Output:
	// minute        0,15,30,45
	// hour          0
	// dayOfMonth    1,15
	// month         1,2,3,4,5,6,7,8,9,10,11,12
	// dayOfWeek     1,2,3,4,5
	// command       /usr/bin/find
}

func ExampleParse() {
	expr := cronparse.MustParse("0 9-17/4 * 2 0,7 /usr/bin/report")
	fmt.Println(expr.Hour().Ints())
	fmt.Println(expr.DayOfMonth().Ints()[28])
	fmt.Println(expr.DayOfWeek())

	_, err := cronparse.Parse("0 0 31 4 * /usr/bin/report")
	fmt.Println(errors.Is(err, cronparse.ErrInvalidDayOfMonth), err)

	// Output:
	// [9 13 17]
	// 29
	// [0 0]
	// true Invalid explicit day of month definition
}

func ExampleParseField() {
	spec, _ := cronparse.LookupField(cronparse.Minute)
	values, _ := cronparse.ParseField(spec, "5/15,1-3")
	fmt.Println(values.Join(" "))

	// Output:
	// 1 2 3 5 20 35 50
}
