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
	"encoding/json"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Value
		want int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Int(1), 1},
		{Int(3), Int(3), 0},
		{Int(-1), Int(0), -1},
		{Int(100), Token("1"), -1},
		{Token("1"), Int(100), 1},
		{Token("a"), Token("b"), -1},
		{Token("b"), Token("a"), 1},
		{Token("B"), Token("a"), -1},
		{Token("x"), Token("x"), 0},
	}

	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%s, %s): expected %d, but got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestFieldResultSort(t *testing.T) {
	r := FieldResult{Token("b"), Int(10), Token("a"), Int(2), Int(2), Int(-5)}
	r.Sort()

	expect := FieldResult{Int(-5), Int(2), Int(2), Int(10), Token("a"), Token("b")}
	if len(r) != len(expect) {
		t.Fatalf("expected %d values, but got %d", len(expect), len(r))
	}
	for i := range expect {
		if Compare(r[i], expect[i]) != 0 {
			t.Errorf("%d: expected '%s', but got '%s'", i, expect[i], r[i])
		}
	}

	// Sorting again must not change the order.
	again := r.clone()
	again.Sort()
	for i := range r {
		if Compare(r[i], again[i]) != 0 {
			t.Errorf("%d: the order is changed from '%s' to '%s'", i, r[i], again[i])
		}
	}

	if s := r.Join(","); s != "-5,2,2,10,a,b" {
		t.Errorf("unexpected joined values '%s'", s)
	}

	if ints := r.Ints(); len(ints) != 4 || ints[0] != -5 || ints[3] != 10 {
		t.Errorf("unexpected ints %v", ints)
	}
}

func TestValueMarshalJSON(t *testing.T) {
	data, err := json.Marshal(FieldResult{Int(1), Int(30), Token("L")})
	if err != nil {
		t.Fatal(err)
	} else if s := string(data); s != `[1,30,"L"]` {
		t.Errorf(`expected '[1,30,"L"]', but got '%s'`, s)
	}

	v, _ := Int(7).MarshalYAML()
	if n, ok := v.(int); !ok || n != 7 {
		t.Errorf("expected the yaml value 7, but got %v", v)
	}
}
