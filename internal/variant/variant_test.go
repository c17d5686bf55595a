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

package variant_test

import (
	"go/types"
	"slices"
	"testing"

	"fillmore-labs.com/constcurry/internal/directive"
	"fillmore-labs.com/constcurry/internal/signature"
	"fillmore-labs.com/constcurry/internal/testsource"
	. "fillmore-labs.com/constcurry/internal/variant"
)

func function(t *testing.T, src, name string) *signature.Function {
	t.Helper()

	s := testsource.Parse(t, src)
	decl := s.Func(t, name)

	_, info := s.Check(t)

	fn, err := signature.Analyzer{Info: info}.Analyze(decl, directive.Attach(s.File, decl.Type.Params))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	return fn
}

const workedExample = `
func base(
	//constcurry:promote dispatch=A consts=[0]
	a int,
	//constcurry:promote dispatch=B consts=[true]
	b bool,
	c string,
) string {
	if b {
		return c
	}

	return c + string(rune(a))
}
`

func TestGenerateWorkedExample(t *testing.T) {
	t.Parallel()

	fn := function(t, workedExample, "base")

	variants := Generate(fn)

	tests := [...]struct {
		name       string
		typeParams []string
		params     []string
		bindings   []string
	}{
		{"base_orig", nil, []string{"a", "b", "c"}, nil},
		{"base_A", []string{"aConst"}, []string{"b", "c"}, []string{"a"}},
		{"base_B", []string{"bConst"}, []string{"a", "c"}, []string{"b"}},
		{"base_A_B", []string{"aConst", "bConst"}, []string{"c"}, []string{"a", "b"}},
	}

	if len(variants) != len(tests) {
		t.Fatalf("Got %d variants, want %d", len(variants), len(tests))
	}

	for i, tt := range tests {
		v := variants[i]

		if v.Name != tt.name {
			t.Errorf("Variant %d is %s, want %s", i, v.Name, tt.name)
		}

		if v.Fallback() != (i == 0) {
			t.Errorf("Variant %s: Fallback() = %v", v.Name, v.Fallback())
		}

		var typeParams []string
		for _, field := range v.TypeParams {
			typeParams = append(typeParams, field.Names[0].Name)
		}

		if !slices.Equal(typeParams, tt.typeParams) {
			t.Errorf("Variant %s type parameters = %v, want %v", v.Name, typeParams, tt.typeParams)
		}

		var params []string
		for _, p := range v.Params {
			params = append(params, p.Name)
		}

		if !slices.Equal(params, tt.params) {
			t.Errorf("Variant %s parameters = %v, want %v", v.Name, params, tt.params)
		}

		var bindings []string
		for _, b := range v.Bindings {
			bindings = append(bindings, b.Name)

			if !b.Used {
				t.Errorf("Variant %s: binding %s reported unused", v.Name, b.Name)
			}
		}

		if !slices.Equal(bindings, tt.bindings) {
			t.Errorf("Variant %s bindings = %v, want %v", v.Name, bindings, tt.bindings)
		}

		if v.Body != fn.Body {
			t.Errorf("Variant %s does not share the original body", v.Name)
		}
	}
}

func TestGenerateCount(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want int
	}{
		{"none", "func f(x int) {}", 1},
		{"one", "func f(/*constcurry:promote*/ x int) {}", 2},
		{"three", "func f(/*constcurry:promote*/ x int, /*constcurry:promote*/ y int, /*constcurry:promote*/ z int) {}", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fn := function(t, tt.src, "f")

			variants := Generate(fn)
			if len(variants) != tt.want {
				t.Fatalf("Got %d variants, want %d", len(variants), tt.want)
			}

			names := make(map[string]bool, len(variants))
			for _, v := range variants {
				if names[v.Name] {
					t.Errorf("Duplicate variant name %s", v.Name)
				}

				names[v.Name] = true
			}

			if !variants[0].Fallback() || variants[0].Name != "f_orig" {
				t.Errorf("First variant is %s, want fallback f_orig", variants[0].Name)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	fn := function(t, workedExample, "base")

	names := func() []string {
		var names []string
		for _, v := range Generate(fn) {
			names = append(names, v.Name)
		}

		return names
	}

	first := names()
	for range 5 {
		if got := names(); !slices.Equal(got, first) {
			t.Fatalf("Generate is not deterministic: %v != %v", got, first)
		}
	}
}

func TestSources(t *testing.T) {
	t.Parallel()

	const src = `
func like(
	//constcurry:promote dispatch=esc consts=['\\', '^']
	escape byte,
	//constcurry:promote
	ci bool,
) bool {
	return ci
}
`

	fn := function(t, src, "like")

	sources := Sources(fn)
	if len(sources) != 2 {
		t.Fatalf("Got sources for %d parameters, want 2", len(sources))
	}

	var names, literals []string
	for _, s := range sources[0] {
		names = append(names, s.Name)
		literals = append(literals, s.Literal.Text)
	}

	if want := []string{"like_esc_0", "like_esc_1"}; !slices.Equal(names, want) {
		t.Errorf("Source names = %v, want %v", names, want)
	}

	if want := []string{`'\\'`, "'^'"}; !slices.Equal(literals, want) {
		t.Errorf("Source literals = %v, want %v", literals, want)
	}

	if len(sources[1]) != 0 {
		t.Errorf("Got %d sources for ci, want none", len(sources[1]))
	}

	variants := Generate(fn)
	if b := variants[1].Bindings; len(b) != 1 || b[0].Used {
		t.Errorf("Binding of escape = %+v, want unused", b)
	}

	if got, want := types.ExprString(SourceConstraint(sources[0][0].Type)), "interface{Value() byte}"; got != want {
		t.Errorf("SourceConstraint = %q, want %q", got, want)
	}
}
