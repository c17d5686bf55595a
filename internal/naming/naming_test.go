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

package naming_test

import (
	"testing"

	. "fillmore-labs.com/constcurry/internal/naming"
)

func TestNames(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		got  string
		want string
	}{
		{"fallback", Fallback("base"), "base_orig"},
		{"no_aliases", Variant("base", nil), "base_orig"},
		{"one", Variant("base", []string{"A"}), "base_A"},
		{"two", Variant("base", []string{"A", "B"}), "base_A_B"},
		{"source", Source("base", "A", 0), "base_A_0"},
		{"source_index", Source("like", "esc", 12), "like_esc_12"},
		{"type_param", TypeParam("escape"), "escapeConst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.got != tt.want {
				t.Errorf("Got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestVariantDeterministic(t *testing.T) {
	t.Parallel()

	aliases := []string{"x", "y"}

	first := Variant("f", aliases)
	for range 10 {
		if got := Variant("f", aliases); got != first {
			t.Fatalf("Variant is not deterministic: %q != %q", got, first)
		}
	}
}
