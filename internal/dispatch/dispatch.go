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

// Package dispatch synthesizes the routing function forwarding each call to the most
// specialized applicable variant.
package dispatch

import (
	"cmp"
	"go/constant"
	"slices"

	"fillmore-labs.com/constcurry/internal/directive"
	"fillmore-labs.com/constcurry/internal/powerset"
	"fillmore-labs.com/constcurry/internal/signature"
	"fillmore-labs.com/constcurry/internal/variant"
)

// Dispatcher is the routing function replacing the original declaration.
type Dispatcher struct {
	// Name is the original function name.
	Name string

	// Params are the original runtime parameters, with forwardable names in [signature.Param.Arg].
	Params []signature.Param

	// Subjects are the names of the promotable parameters forming the matched tuple.
	Subjects []string

	// Branches are ordered most specific first, the fallback branch is last.
	// The first matching branch wins.
	Branches []Branch
}

// Branch is one arm of the dispatcher.
type Branch struct {
	// Subset holds the promoted slots of the target variant.
	Subset powerset.Subset

	// Pattern holds, per promotable slot, the literal the argument must equal.
	// Slots outside Subset are nil and match any value.
	Pattern []*directive.Literal

	// Target is the name of the called variant.
	Target string

	// TypeArgs are the original type parameters followed by the source types of the chosen literals.
	TypeArgs []string

	// Args are the forwarded runtime arguments in original order.
	Args []string

	// Variadic reports whether the last argument is forwarded with "...".
	Variadic bool

	// dynamic marks the slots of interface typed parameters.
	dynamic []bool
}

// Fallback reports whether this is the unconditional branch to the fallback variant.
func (b Branch) Fallback() bool { return b.Subset.Empty() }

// Specificity is the number of fixed positions of the pattern.
func (b Branch) Specificity() int { return b.Subset.Len() }

// Matches reports whether the pattern matches the values of the promotable parameters.
//
// An interface typed parameter only matches values of the same constant kind, so 1.0 does
// not match a candidate 1. Kinds can't tell a rune from an int, both are [constant.Int].
func (b Branch) Matches(values []constant.Value) bool {
	for slot, lit := range b.Pattern {
		if lit == nil {
			continue
		}

		if slot >= len(values) || !directive.Equal(lit.Value, values[slot]) {
			return false
		}

		if slot < len(b.dynamic) && b.dynamic[slot] && lit.Value.Kind() != values[slot].Kind() {
			return false
		}
	}

	return true
}

// Synthesize builds the dispatcher of fn from its variants (in subset enumeration order, as
// returned by [variant.Generate]) and candidate sources (as returned by [variant.Sources]).
func Synthesize(fn *signature.Function, variants []variant.Variant, sources [][]variant.Source) Dispatcher {
	d := Dispatcher{
		Name:     fn.Name,
		Params:   fn.Params,
		Subjects: make([]string, 0, len(fn.Promoted)),
	}

	for _, p := range fn.Promoted {
		d.Subjects = append(d.Subjects, p.Name)
	}

	typeArgs := fn.TypeArgs()

	for _, v := range variants {
		d.Branches = append(d.Branches, branches(fn, typeArgs, v, sources)...)
	}

	// most specific first, stable within equal specificity; the fallback matches
	// everything and must come last
	slices.SortStableFunc(d.Branches, func(a, b Branch) int {
		if a.Fallback() != b.Fallback() {
			if a.Fallback() {
				return 1
			}

			return -1
		}

		return cmp.Compare(b.Specificity(), a.Specificity())
	})

	return d
}

// branches returns one branch per element of the cartesian product of the candidate lists
// of the promoted parameters of v. The fallback variant yields exactly one branch.
func branches(fn *signature.Function, typeArgs []string, v variant.Variant, sources [][]variant.Source) []Branch {
	slots := v.Subset.Members()

	size := 1
	for _, slot := range slots {
		size *= len(sources[slot])
	}

	if size == 0 {
		return nil
	}

	args, variadic := forward(v.Params)

	dynamic := make([]bool, len(fn.Promoted))
	for slot, p := range fn.Promoted {
		dynamic[slot] = p.Dynamic
	}

	result := make([]Branch, 0, size)

	choice := make([]int, len(slots)) // candidate index per member, the last one varies fastest
	for {
		b := Branch{
			Subset:   v.Subset,
			Pattern:  make([]*directive.Literal, len(fn.Promoted)),
			Target:   v.Name,
			TypeArgs: slices.Clone(typeArgs),
			Args:     args,
			Variadic: variadic,
			dynamic:  dynamic,
		}

		for i, slot := range slots {
			src := sources[slot][choice[i]]
			b.Pattern[slot] = &src.Literal
			b.TypeArgs = append(b.TypeArgs, src.Name)
		}

		result = append(result, b)

		if !advance(choice, slots, sources) {
			return result
		}
	}
}

// advance steps choice to the next element of the cartesian product, reporting false when done.
func advance(choice, slots []int, sources [][]variant.Source) bool {
	for i := len(choice) - 1; i >= 0; i-- {
		choice[i]++
		if choice[i] < len(sources[slots[i]]) {
			return true
		}

		choice[i] = 0
	}

	return false
}

func forward(params []signature.Param) (args []string, variadic bool) {
	args = make([]string, 0, len(params))
	for _, p := range params {
		args = append(args, p.Arg)
	}

	if n := len(params); n > 0 {
		variadic = params[n-1].Variadic()
	}

	return args, variadic
}

// Route returns the index of the branch selected for the values of the promotable parameters
// and the number of branch tests performed. Every valuation selects exactly one branch.
func (d Dispatcher) Route(values []constant.Value) (branch, tests int) {
	for i, b := range d.Branches {
		if b.Matches(values) {
			return i, i + 1
		}
	}

	return -1, len(d.Branches)
}
