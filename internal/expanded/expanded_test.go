// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package expanded

import (
	"fmt"
	"testing"
)

func TestBase(t *testing.T) {
	t.Parallel()

	for _, a := range []int{0, 1, -3} {
		for _, b := range []bool{true, false} {
			t.Run(fmt.Sprintf("%d_%t", a, b), func(t *testing.T) {
				t.Parallel()

				if got, want := base(a, b, "c"), base_orig(a, b, "c"); got != want {
					t.Errorf("base(%d, %t) = %q, want %q", a, b, got, want)
				}
			})
		}
	}
}

func TestBaseVariants(t *testing.T) {
	t.Parallel()

	if got, want := base_A[base_A_0](false, "c"), base_orig(0, false, "c"); got != want {
		t.Errorf("base_A = %q, want %q", got, want)
	}

	if got, want := base_B[base_B_0](7, "c"), base_orig(7, true, "c"); got != want {
		t.Errorf("base_B = %q, want %q", got, want)
	}

	if got, want := base_A_B[base_A_0, base_B_0]("c"), base_orig(0, true, "c"); got != want {
		t.Errorf("base_A_B = %q, want %q", got, want)
	}
}

func TestLike(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		s, p   string
		escape byte
		ci     bool
	}{
		{"backslash", "Hello", "ell", '\\', false},
		{"caret", "Hello", "ELL", '^', true},
		{"caret_sensitive", "Hello", "ELL", '^', false},
		{"unmatched", "Hello", "lo", '%', false},
		{"unmatched_ci", "Hello", "LO", '%', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, want := like(tt.s, tt.p, tt.escape, tt.ci), like_orig(tt.s, tt.p, tt.escape, tt.ci)
			if got != want {
				t.Errorf("like(%q, %q, %q, %t) = %t, want %t", tt.s, tt.p, tt.escape, tt.ci, got, want)
			}
		})
	}
}

type caseInsensitive bool

func TestLikeTypeArgument(t *testing.T) {
	t.Parallel()

	if got, want := like("ABC", "b", '\\', caseInsensitive(true)), like_orig("ABC", "b", '\\', caseInsensitive(true)); got != want {
		t.Errorf("like = %t, want %t", got, want)
	}
}

func TestSum(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		scale  int
		values []int
	}{
		{"candidate", 1, []int{1, 2, 3}},
		{"candidate_empty", 1, nil},
		{"unmatched", 3, []int{1, 2, 3}},
		{"zero", 0, []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got, want := sum(tt.scale, tt.values...), sum_orig(tt.scale, tt.values...); got != want {
				t.Errorf("sum(%d, %v) = %d, want %d", tt.scale, tt.values, got, want)
			}
		})
	}
}

func TestIgnore(t *testing.T) {
	t.Parallel()

	if got, want := ignore(1, 2, 3, "s"), ignore_orig(1, 2, 3, "s"); got != want {
		t.Errorf("ignore = %q, want %q", got, want)
	}

	if got, want := inert(5), 5; got != want {
		t.Errorf("inert = %d, want %d", got, want)
	}
}
