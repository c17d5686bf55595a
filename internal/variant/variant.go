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

package variant

import (
	"go/ast"

	"fillmore-labs.com/constcurry/internal/directive"
	"fillmore-labs.com/constcurry/internal/naming"
	"fillmore-labs.com/constcurry/internal/powerset"
	"fillmore-labs.com/constcurry/internal/signature"
)

// Variant is the specialization of a function for one subset of its promotable parameters.
type Variant struct {
	// Name is derived from the aliases of the promoted parameters.
	Name string

	// Subset holds the promoted slots.
	Subset powerset.Subset

	// TypeParams are the original type parameters followed by one source type parameter per promoted slot.
	TypeParams []*ast.Field

	// Params are the remaining runtime parameters in original order.
	Params []signature.Param

	// Bindings bind the promoted parameters at the start of the body, in original order.
	Bindings []Binding

	// Body is the shared original body.
	Body *ast.BlockStmt
}

// Fallback reports whether this is the fallback variant, promoting nothing.
func (v Variant) Fallback() bool { return v.Subset.Empty() }

// Binding declares a promoted parameter as a local variable initialized from its source type parameter.
type Binding struct {
	// Name is the parameter name.
	Name string

	// TypeParam is the name of the source type parameter.
	TypeParam string

	// Used reports whether the body references the parameter.
	Used bool
}

// Source is a zero-size type supplying one candidate literal of a promotable parameter.
type Source struct {
	// Name is the generated type name.
	Name string

	// Type is the type of the promoted parameter.
	Type ast.Expr

	// Literal is the supplied constant.
	Literal directive.Literal
}

// Generate returns the variants of fn for all 2^k subsets of its k promotable parameters,
// in subset enumeration order. The first variant is the fallback.
func Generate(fn *signature.Function) []Variant {
	variants := make([]Variant, 0, powerset.Count(len(fn.Promoted)))
	for s := range powerset.All(len(fn.Promoted)) {
		variants = append(variants, generate(fn, s))
	}

	return variants
}

func generate(fn *signature.Function, s powerset.Subset) Variant {
	slots := s.Members()

	v := Variant{
		Name:   naming.Variant(fn.Name, fn.Aliases(slots)),
		Subset: s,
		Body:   fn.Body,
	}

	if fn.TypeParams != nil {
		v.TypeParams = append(v.TypeParams, fn.TypeParams.List...)
	}

	for _, slot := range slots {
		p := fn.Promoted[slot]
		tp := naming.TypeParam(p.Name)

		v.TypeParams = append(v.TypeParams, &ast.Field{
			Names: []*ast.Ident{ast.NewIdent(tp)},
			Type:  SourceConstraint(p.Type),
		})

		v.Bindings = append(v.Bindings, Binding{Name: p.Name, TypeParam: tp, Used: p.Used})
	}

	for _, param := range fn.Params {
		if param.Promotable() && s.Contains(param.Slot) {
			continue
		}

		v.Params = append(v.Params, param)
	}

	return v
}

// Sources returns the candidate source types of every promotable parameter, indexed by slot.
func Sources(fn *signature.Function) [][]Source {
	sources := make([][]Source, len(fn.Promoted))
	for slot, p := range fn.Promoted {
		for i, lit := range p.Consts {
			sources[slot] = append(sources[slot], Source{
				Name:    naming.Source(fn.Name, p.Alias, i),
				Type:    p.Type,
				Literal: lit,
			})
		}
	}

	return sources
}

// SourceConstraint returns the constraint interface{ Value() typ }.
func SourceConstraint(typ ast.Expr) *ast.InterfaceType {
	return &ast.InterfaceType{
		Methods: &ast.FieldList{List: []*ast.Field{{
			Names: []*ast.Ident{ast.NewIdent(ValueMethod)},
			Type: &ast.FuncType{
				Params:  &ast.FieldList{},
				Results: &ast.FieldList{List: []*ast.Field{{Type: typ}}},
			},
		}}},
	}
}

// ValueMethod is the method supplying the constant of a source type.
const ValueMethod = "Value"
