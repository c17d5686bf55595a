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

package signature

import (
	"go/ast"

	"fillmore-labs.com/constcurry/internal/directive"
)

// Function describes an opted-in function declaration after analysis.
// It is computed once and never mutated afterwards.
type Function struct {
	// Name is the externally visible name, reused by the dispatcher.
	Name string

	// Decl is the analyzed declaration.
	Decl *ast.FuncDecl

	// TypeParams are the original type parameters, nil when the function is not generic.
	TypeParams *ast.FieldList

	// Params are all runtime parameters in declaration order.
	Params []Param

	// Promoted are the promotable parameters in declaration order.
	Promoted []Promotable

	// Results are the original results, nil when there are none.
	Results *ast.FieldList

	// Body is the original body. It is never introspected, only copied.
	Body *ast.BlockStmt
}

// Param is a runtime parameter of the original function.
type Param struct {
	// Name is the declared name, empty for unnamed parameters.
	Name string

	// Arg is the name the dispatcher uses to forward this argument.
	// It differs from Name only for unnamed and blank parameters.
	Arg string

	// Index is the position in the original parameter list.
	Index int

	// Field is the declaring field, shared by grouped parameters like "x, y int".
	Field *ast.Field

	// Type is the declared type. For a variadic parameter this is the *[ast.Ellipsis].
	Type ast.Expr

	// Slot is the index into [Function.Promoted], or -1 for residual parameters.
	Slot int
}

// Variadic reports whether this is a variadic parameter.
func (p Param) Variadic() bool {
	_, ok := p.Type.(*ast.Ellipsis)

	return ok
}

// Promotable reports whether the parameter is promotable.
func (p Param) Promotable() bool { return p.Slot >= 0 }

// Promotable is a parameter eligible to be fixed to a constant in some variant.
type Promotable struct {
	// Name is the parameter name.
	Name string

	// Alias is the dispatch alias used for naming, defaults to Name.
	Alias string

	// Index is the position in the original parameter list.
	Index int

	// Type is the declared type.
	Type ast.Expr

	// Consts are the candidate literals, possibly empty.
	Consts []directive.Literal

	// Used reports whether the original body references the parameter.
	Used bool

	// Dynamic reports whether the parameter has interface type, so candidates of
	// different default types never match the same argument.
	Dynamic bool
}

// TypeArgs returns the names of the original type parameters in order, suitable for
// forwarding them as type arguments.
func (f *Function) TypeArgs() []string {
	if f.TypeParams == nil {
		return nil
	}

	var args []string
	for _, field := range f.TypeParams.List {
		for _, name := range field.Names {
			args = append(args, name.Name)
		}
	}

	return args
}

// Aliases returns the dispatch aliases of the given promoted slots.
func (f *Function) Aliases(slots []int) []string {
	aliases := make([]string, 0, len(slots))
	for _, slot := range slots {
		aliases = append(aliases, f.Promoted[slot].Alias)
	}

	return aliases
}
